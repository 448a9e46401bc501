package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sharelist/backend/internal/domain/identity"
	"github.com/sharelist/backend/internal/domain/shared"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func validRegisterInput() RegisterUserInput {
	return RegisterUserInput{
		Username: "alice.smith",
		Email:    "alice@example.com",
		Password: "secret123",
	}
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, zap.NewNop())

		repo.On("ExistsByUsername", ctx, "alice.smith").Return(false, nil)
		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		user, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)
		assert.Equal(t, "alice.smith", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEqual(t, uuid.Nil, user.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, zap.NewNop())

		repo.On("ExistsByUsername", ctx, "alice.smith").Return(true, nil)

		_, err := svc.Register(ctx, validRegisterInput())
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "USERNAME_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, zap.NewNop())

		repo.On("ExistsByUsername", ctx, "alice.smith").Return(false, nil)
		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)

		_, err := svc.Register(ctx, validRegisterInput())
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, zap.NewNop())

		repo.On("ExistsByUsername", ctx, "bob").Return(false, nil)
		repo.On("ExistsByEmail", ctx, "bob@example.com").Return(false, nil)

		_, err := svc.Register(ctx, RegisterUserInput{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "secret123",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_USERNAME", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, zap.NewNop())

		repo.On("ExistsByUsername", ctx, "alice.smith").Return(false, nil)
		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(errors.New("connection refused"))

		_, err := svc.Register(ctx, validRegisterInput())
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	})
}
