package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharelist/backend/internal/domain/identity"
	"github.com/sharelist/backend/internal/domain/shared"
)

func newStoredUser(t *testing.T, repo *GormUserRepository) *identity.User {
	t.Helper()

	user, err := identity.NewUser("alice.smith", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGormUserRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newStoredUser(t, repo)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice.smith", found.Username)
	assert.Equal(t, "alice@example.com", found.Email)
	assert.True(t, found.VerifyPassword("secret123"))
}

func TestGormUserRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	newStoredUser(t, repo)

	found, err := repo.FindByUsername(ctx, "Alice.Smith")
	require.NoError(t, err)
	assert.Equal(t, "alice.smith", found.Username)

	_, err = repo.FindByUsername(ctx, "nobody.here")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUserRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newStoredUser(t, repo)

	exists, err := repo.ExistsByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "ALICE.SMITH")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "other@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
