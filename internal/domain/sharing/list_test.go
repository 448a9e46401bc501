package sharing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharelist/backend/internal/domain/shared"
)

func TestNewList(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates list with valid inputs", func(t *testing.T) {
		list, err := NewList("Groceries", ownerID)
		require.NoError(t, err)
		require.NotNil(t, list)

		assert.Equal(t, "Groceries", list.Name)
		assert.Equal(t, ownerID, list.OwnerID)
		assert.Empty(t, list.Items)
		assert.Empty(t, list.InvitedUserIDs)
		assert.NotEqual(t, uuid.Nil, list.ID)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		list, err := NewList("  Groceries  ", ownerID)
		require.NoError(t, err)
		assert.Equal(t, "Groceries", list.Name)
	})

	t.Run("fails with short name", func(t *testing.T) {
		_, err := NewList("ab", ownerID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_LIST_NAME", domainErr.Code)
	})

	t.Run("fails when name is only whitespace", func(t *testing.T) {
		_, err := NewList("      ", ownerID)
		require.Error(t, err)
	})

	t.Run("fails with nil owner", func(t *testing.T) {
		_, err := NewList("Groceries", uuid.Nil)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_OWNER", domainErr.Code)
	})
}

func TestList_AddItem(t *testing.T) {
	list, err := NewList("Groceries", uuid.New())
	require.NoError(t, err)

	t.Run("appends item in order", func(t *testing.T) {
		milk, err := list.AddItem("Milk")
		require.NoError(t, err)
		bread, err := list.AddItem("Bread")
		require.NoError(t, err)

		require.Len(t, list.Items, 2)
		assert.Equal(t, "Milk", list.Items[0].Name)
		assert.Equal(t, "Bread", list.Items[1].Name)
		assert.Equal(t, list.ID, milk.ListID)
		assert.NotEqual(t, milk.ID, bread.ID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := list.AddItem("")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ITEM_NAME", domainErr.Code)
	})

	t.Run("fails with whitespace-only name", func(t *testing.T) {
		_, err := list.AddItem("   ")
		require.Error(t, err)
	})
}

func TestList_Item(t *testing.T) {
	list, err := NewList("Groceries", uuid.New())
	require.NoError(t, err)

	milk, err := list.AddItem("Milk")
	require.NoError(t, err)

	found, ok := list.Item(milk.ID)
	require.True(t, ok)
	assert.Equal(t, "Milk", found.Name)

	_, ok = list.Item(uuid.New())
	assert.False(t, ok)
}

func TestList_RemoveItem(t *testing.T) {
	list, err := NewList("Groceries", uuid.New())
	require.NoError(t, err)

	milk, err := list.AddItem("Milk")
	require.NoError(t, err)
	_, err = list.AddItem("Bread")
	require.NoError(t, err)

	t.Run("removes existing item", func(t *testing.T) {
		require.NoError(t, list.RemoveItem(milk.ID))
		require.Len(t, list.Items, 1)
		assert.Equal(t, "Bread", list.Items[0].Name)
	})

	t.Run("fails for unknown item", func(t *testing.T) {
		err := list.RemoveItem(uuid.New())
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestList_Invite(t *testing.T) {
	ownerID := uuid.New()
	list, err := NewList("Groceries", ownerID)
	require.NoError(t, err)

	userID := uuid.New()

	t.Run("adds user to invite set", func(t *testing.T) {
		assert.True(t, list.Invite(userID))
		assert.True(t, list.IsInvited(userID))
	})

	t.Run("inviting again is a no-op", func(t *testing.T) {
		assert.False(t, list.Invite(userID))
		assert.Len(t, list.InvitedUserIDs, 1)
	})

	t.Run("inviting the owner is a no-op", func(t *testing.T) {
		assert.False(t, list.Invite(ownerID))
		assert.False(t, list.IsInvited(ownerID))
	})
}
