package sharing

import (
	"context"

	"github.com/google/uuid"
)

// ListRepository defines the store adapter contract for lists, items, and
// invitations. Each call is atomic on its own; callers sequence load,
// authorize, and mutate themselves and tolerate a concurrent delete
// surfacing as a not-found error.
type ListRepository interface {
	// Create persists a new list together with its seed items
	Create(ctx context.Context, list *List) error

	// FindByID loads a list with its items and invite set
	FindByID(ctx context.Context, id uuid.UUID) (*List, error)

	// FindAllForUser returns the lists a user owns or is invited to
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*List, error)

	// Delete removes a list and cascades to its items and invites
	Delete(ctx context.Context, id uuid.UUID) error

	// AddInvite records an invitation; adding an existing invite is a no-op
	AddInvite(ctx context.Context, listID, userID uuid.UUID) error

	// AddItem appends an item to its list
	AddItem(ctx context.Context, item *Item) error

	// RemoveItem deletes a single item from a list
	RemoveItem(ctx context.Context, listID, itemID uuid.UUID) error
}
