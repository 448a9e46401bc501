package sharing

import (
	"context"
	"time"

	"github.com/google/uuid"
	identitydomain "github.com/sharelist/backend/internal/domain/identity"
	"github.com/sharelist/backend/internal/domain/shared"
	"github.com/sharelist/backend/internal/domain/sharing"
	"go.uber.org/zap"
)

// ListService composes identity, policy, and store access for every list
// operation. Each method runs the same pipeline: load the target list,
// ask the policy engine for a decision, and only then touch the store.
type ListService struct {
	listRepo sharing.ListRepository
	userRepo identitydomain.UserRepository
	logger   *zap.Logger
}

// NewListService creates a new list service
func NewListService(
	listRepo sharing.ListRepository,
	userRepo identitydomain.UserRepository,
	logger *zap.Logger,
) *ListService {
	return &ListService{
		listRepo: listRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateListInput contains input for creating a list
type CreateListInput struct {
	Name  string
	Items []string
}

// ItemDTO represents item data returned to callers
type ItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListDTO represents list data returned to callers
type ListDTO struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	OwnerID        uuid.UUID   `json:"owner_id"`
	Items          []ItemDTO   `json:"items"`
	InvitedUserIDs []uuid.UUID `json:"invited_user_ids"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Create creates a new list owned by the caller. Validation happens before
// any store call; the owner is always the verified identity, never a
// caller-supplied field.
func (s *ListService) Create(ctx context.Context, ident identitydomain.Identity, input CreateListInput) (*ListDTO, error) {
	list, err := sharing.NewList(input.Name, ident.UserID)
	if err != nil {
		return nil, err
	}
	for _, name := range input.Items {
		if _, err := list.AddItem(name); err != nil {
			return nil, err
		}
	}

	if decision := sharing.Authorize(ident.UserID, sharing.ActionCreateList, sharing.ListRef(list)); !decision.Allowed {
		return nil, sharing.NewAccessDeniedError(sharing.ActionCreateList, decision)
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		s.logger.Error("Failed to create list", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create list")
	}

	s.logger.Info("List created",
		zap.String("list_id", list.ID.String()),
		zap.String("owner_id", list.OwnerID.String()))

	return toListDTO(list), nil
}

// Get returns a list if the caller is its owner or a collaborator.
// A list hidden from the caller is reported as forbidden, not absent.
func (s *ListService) Get(ctx context.Context, ident identitydomain.Identity, listID uuid.UUID) (*ListDTO, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	if decision := sharing.Authorize(ident.UserID, sharing.ActionReadList, sharing.ListRef(list)); !decision.Allowed {
		return nil, sharing.NewAccessDeniedError(sharing.ActionReadList, decision)
	}

	return toListDTO(list), nil
}

// ListForUser returns every list the caller owns or is invited to
func (s *ListService) ListForUser(ctx context.Context, ident identitydomain.Identity) ([]ListDTO, error) {
	lists, err := s.listRepo.FindAllForUser(ctx, ident.UserID)
	if err != nil {
		s.logger.Error("Failed to list lists", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to retrieve lists")
	}

	dtos := make([]ListDTO, len(lists))
	for i, list := range lists {
		dtos[i] = *toListDTO(list)
	}
	return dtos, nil
}

// Delete removes a list and all its items. Owner only.
func (s *ListService) Delete(ctx context.Context, ident identitydomain.Identity, listID uuid.UUID) error {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return err
	}

	if decision := sharing.Authorize(ident.UserID, sharing.ActionDeleteList, sharing.ListRef(list)); !decision.Allowed {
		return sharing.NewAccessDeniedError(sharing.ActionDeleteList, decision)
	}

	if err := s.listRepo.Delete(ctx, listID); err != nil {
		// A concurrent delete surfaces as not found on the losing request.
		if err == shared.ErrNotFound {
			return err
		}
		s.logger.Error("Failed to delete list", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete list")
	}

	s.logger.Info("List deleted", zap.String("list_id", listID.String()))
	return nil
}

// Invite adds a user to the list's invite set. Owner only; the invitee must
// exist; inviting an already invited user (or the owner) changes nothing.
func (s *ListService) Invite(ctx context.Context, ident identitydomain.Identity, listID, inviteeID uuid.UUID) (*ListDTO, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	if decision := sharing.Authorize(ident.UserID, sharing.ActionInviteToList, sharing.ListRef(list)); !decision.Allowed {
		return nil, sharing.NewAccessDeniedError(sharing.ActionInviteToList, decision)
	}

	exists, err := s.userRepo.ExistsByID(ctx, inviteeID)
	if err != nil {
		s.logger.Error("Failed to check invitee existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check invitee")
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Invitee user not found")
	}

	if list.Invite(inviteeID) {
		if err := s.listRepo.AddInvite(ctx, listID, inviteeID); err != nil {
			s.logger.Error("Failed to add invite", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to invite user")
		}
		s.logger.Info("User invited to list",
			zap.String("list_id", listID.String()),
			zap.String("invitee_id", inviteeID.String()))
	}

	return toListDTO(list), nil
}

// AddItem appends a named item to a list. Owner or collaborator.
func (s *ListService) AddItem(ctx context.Context, ident identitydomain.Identity, listID uuid.UUID, itemName string) (*ItemDTO, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	if decision := sharing.Authorize(ident.UserID, sharing.ActionAddItem, sharing.ListRef(list)); !decision.Allowed {
		return nil, sharing.NewAccessDeniedError(sharing.ActionAddItem, decision)
	}

	item, err := list.AddItem(itemName)
	if err != nil {
		return nil, err
	}

	if err := s.listRepo.AddItem(ctx, item); err != nil {
		s.logger.Error("Failed to add item", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add item")
	}

	return toItemDTO(item), nil
}

// RemoveItem deletes one item from a list. Owner only; the item must
// belong to the list.
func (s *ListService) RemoveItem(ctx context.Context, ident identitydomain.Identity, listID, itemID uuid.UUID) error {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return err
	}

	item, ok := list.Item(itemID)
	if !ok {
		return shared.NewDomainError("NOT_FOUND", "Item not found in list")
	}

	if decision := sharing.Authorize(ident.UserID, sharing.ActionRemoveItem, sharing.ItemRef(list, item)); !decision.Allowed {
		return sharing.NewAccessDeniedError(sharing.ActionRemoveItem, decision)
	}

	if err := s.listRepo.RemoveItem(ctx, listID, itemID); err != nil {
		if err == shared.ErrNotFound {
			return err
		}
		s.logger.Error("Failed to remove item", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove item")
	}

	return nil
}

func toListDTO(list *sharing.List) *ListDTO {
	items := make([]ItemDTO, len(list.Items))
	for i := range list.Items {
		items[i] = *toItemDTO(&list.Items[i])
	}
	invited := make([]uuid.UUID, len(list.InvitedUserIDs))
	copy(invited, list.InvitedUserIDs)
	return &ListDTO{
		ID:             list.ID,
		Name:           list.Name,
		OwnerID:        list.OwnerID,
		Items:          items,
		InvitedUserIDs: invited,
		CreatedAt:      list.CreatedAt,
		UpdatedAt:      list.UpdatedAt,
	}
}

func toItemDTO(item *sharing.Item) *ItemDTO {
	return &ItemDTO{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}
}
