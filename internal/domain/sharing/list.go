package sharing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sharelist/backend/internal/domain/shared"
)

// Item represents a single named entry in a list. An item belongs to exactly
// one list and is destroyed with it.
type Item struct {
	shared.BaseEntity
	Name   string
	ListID uuid.UUID
}

// List represents a named collection of items owned by a single user.
// It is the aggregate root for all list, item, and invitation operations.
// The owner is set at creation and never changes; invited users never
// include the owner, whose rights are implicit.
type List struct {
	shared.BaseAggregateRoot
	Name           string
	OwnerID        uuid.UUID
	Items          []Item
	InvitedUserIDs []uuid.UUID
}

// NewList creates a new list owned by the given user
func NewList(name string, ownerID uuid.UUID) (*List, error) {
	if err := validateListName(name); err != nil {
		return nil, err
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "List owner cannot be empty")
	}

	return &List{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		OwnerID:           ownerID,
		Items:             make([]Item, 0),
		InvitedUserIDs:    make([]uuid.UUID, 0),
	}, nil
}

// AddItem appends a new item to the list
func (l *List) AddItem(name string) (*Item, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}

	item := Item{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		ListID:     l.ID,
	}
	l.Items = append(l.Items, item)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return &l.Items[len(l.Items)-1], nil
}

// Item returns the item with the given ID, if it belongs to this list
func (l *List) Item(itemID uuid.UUID) (*Item, bool) {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return &l.Items[i], true
		}
	}
	return nil, false
}

// RemoveItem removes the item with the given ID from the list
func (l *List) RemoveItem(itemID uuid.UUID) error {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			l.UpdatedAt = time.Now()
			l.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Item not found in list")
}

// Invite adds a user to the list's invite set. Inviting the owner or an
// already invited user is a no-op; the return value reports whether the
// invite set changed.
func (l *List) Invite(userID uuid.UUID) bool {
	if userID == l.OwnerID || l.IsInvited(userID) {
		return false
	}
	l.InvitedUserIDs = append(l.InvitedUserIDs, userID)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	return true
}

// IsInvited reports whether the user is in the list's invite set
func (l *List) IsInvited(userID uuid.UUID) bool {
	for _, id := range l.InvitedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func validateListName(name string) error {
	if len(strings.TrimSpace(name)) < 3 {
		return shared.NewDomainError("INVALID_LIST_NAME", "List name must be at least 3 characters")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_LIST_NAME", "List name cannot exceed 200 characters")
	}
	return nil
}

func validateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_ITEM_NAME", "Item name must be provided")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}
