package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sharelist/backend/internal/domain/shared"
	"github.com/sharelist/backend/internal/domain/sharing"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))

	return db
}

func newStoredList(t *testing.T, repo *GormListRepository, ownerID uuid.UUID, items ...string) *sharing.List {
	t.Helper()

	list, err := sharing.NewList("Groceries", ownerID)
	require.NoError(t, err)
	for _, name := range items {
		_, err := list.AddItem(name)
		require.NoError(t, err)
	}
	require.NoError(t, repo.Create(context.Background(), list))
	return list
}

func TestGormListRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	list := newStoredList(t, repo, ownerID, "Milk", "Bread")

	found, err := repo.FindByID(ctx, list.ID)
	require.NoError(t, err)

	assert.Equal(t, list.ID, found.ID)
	assert.Equal(t, "Groceries", found.Name)
	assert.Equal(t, ownerID, found.OwnerID)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "Milk", found.Items[0].Name)
	assert.Equal(t, "Bread", found.Items[1].Name)
	assert.Empty(t, found.InvitedUserIDs)
}

func TestGormListRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormListRepository_FindAllForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	otherID := uuid.New()

	owned := newStoredList(t, repo, userID)
	invited := newStoredList(t, repo, otherID)
	newStoredList(t, repo, otherID) // unrelated list

	require.NoError(t, repo.AddInvite(ctx, invited.ID, userID))

	lists, err := repo.FindAllForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, lists, 2)

	ids := []uuid.UUID{lists[0].ID, lists[1].ID}
	assert.Contains(t, ids, owned.ID)
	assert.Contains(t, ids, invited.ID)
}

func TestGormListRepository_Delete_Cascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListRepository(db)
	ctx := context.Background()

	list := newStoredList(t, repo, uuid.New(), "Milk")
	require.NoError(t, repo.AddInvite(ctx, list.ID, uuid.New()))

	require.NoError(t, repo.Delete(ctx, list.ID))

	_, err := repo.FindByID(ctx, list.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var itemCount, inviteCount int64
	db.Table("items").Where("list_id = ?", list.ID).Count(&itemCount)
	db.Table("list_invites").Where("list_id = ?", list.ID).Count(&inviteCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, inviteCount)
}

func TestGormListRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormListRepository_AddInvite_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListRepository(db)
	ctx := context.Background()

	list := newStoredList(t, repo, uuid.New())
	userID := uuid.New()

	require.NoError(t, repo.AddInvite(ctx, list.ID, userID))
	require.NoError(t, repo.AddInvite(ctx, list.ID, userID))

	found, err := repo.FindByID(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userID}, found.InvitedUserIDs)
}

func TestGormListRepository_AddItem(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListRepository(db)
	ctx := context.Background()

	list := newStoredList(t, repo, uuid.New())

	item, err := list.AddItem("Milk")
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(ctx, item))

	found, err := repo.FindByID(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Milk", found.Items[0].Name)
}

func TestGormListRepository_RemoveItem(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListRepository(db)
	ctx := context.Background()

	list := newStoredList(t, repo, uuid.New(), "Milk")
	itemID := list.Items[0].ID

	t.Run("removes existing item", func(t *testing.T) {
		require.NoError(t, repo.RemoveItem(ctx, list.ID, itemID))

		found, err := repo.FindByID(ctx, list.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Items)
	})

	t.Run("missing item reports not found", func(t *testing.T) {
		err := repo.RemoveItem(ctx, list.ID, itemID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("item under another list is untouched", func(t *testing.T) {
		other := newStoredList(t, repo, uuid.New(), "Bread")

		err := repo.RemoveItem(ctx, list.ID, other.Items[0].ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		found, err := repo.FindByID(ctx, other.ID)
		require.NoError(t, err)
		assert.Len(t, found.Items, 1)
	})
}
