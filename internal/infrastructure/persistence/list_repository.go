package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sharelist/backend/internal/domain/shared"
	"github.com/sharelist/backend/internal/domain/sharing"
	"github.com/sharelist/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormListRepository implements sharing.ListRepository using GORM
type GormListRepository struct {
	db *gorm.DB
}

// NewGormListRepository creates a new GormListRepository
func NewGormListRepository(db *gorm.DB) *GormListRepository {
	return &GormListRepository{db: db}
}

// Create persists a new list together with its seed items
func (r *GormListRepository) Create(ctx context.Context, list *sharing.List) error {
	model := models.ListModelFromDomain(list)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID loads a list with its items and invite set
func (r *GormListRepository) FindByID(ctx context.Context, id uuid.UUID) (*sharing.List, error) {
	var model models.ListModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.created_at ASC")
		}).
		Preload("Invites").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForUser returns the lists a user owns or is invited to
func (r *GormListRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*sharing.List, error) {
	var listModels []*models.ListModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.created_at ASC")
		}).
		Preload("Invites").
		Where("owner_id = ? OR id IN (?)",
			userID,
			r.db.Model(&models.ListInviteModel{}).Select("list_id").Where("user_id = ?", userID),
		).
		Order("created_at ASC").
		Find(&listModels).Error
	if err != nil {
		return nil, err
	}

	lists := make([]*sharing.List, len(listModels))
	for i, m := range listModels {
		lists[i] = m.ToDomain()
	}
	return lists, nil
}

// Delete removes a list and cascades to its items and invites
func (r *GormListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&models.ItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", id).Delete(&models.ListInviteModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ListModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// AddInvite records an invitation; adding an existing invite is a no-op
func (r *GormListRepository) AddInvite(ctx context.Context, listID, userID uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ListInviteModel{}).
		Where("list_id = ? AND user_id = ?", listID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	invite := models.ListInviteModel{ListID: listID, UserID: userID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).Create(&invite).Error
}

// AddItem appends an item to its list
func (r *GormListRepository) AddItem(ctx context.Context, item *sharing.Item) error {
	model := models.ItemModelFromDomain(item)
	return r.db.WithContext(ctx).Create(model).Error
}

// RemoveItem deletes a single item from a list
func (r *GormListRepository) RemoveItem(ctx context.Context, listID, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Delete(&models.ItemModel{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
