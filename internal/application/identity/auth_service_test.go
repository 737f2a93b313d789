package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/domain/shared"
	"github.com/taskflow/backend/internal/infrastructure/auth"
	"github.com/taskflow/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// fakeHasher avoids bcrypt cost in service tests
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Verify(plaintext, digest string) bool {
	return digest == "hashed:"+plaintext
}

func newTestAuthService(repo *MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-auth-service-tests",
		Expiration: time.Hour,
		Issuer:     "taskflow-test",
	})
	return NewAuthService(repo, fakeHasher{}, jwtService, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registers new account and issues token", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(false, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Email == "ana@example.com" &&
				u.PasswordHash == "hashed:secret123" &&
				u.Role == identity.RoleUser
		})).Return(nil)

		result, err := service.Register(context.Background(), RegisterInput{
			Name:     "Ana Souza",
			Email:    "Ana@Example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, "ana@example.com", result.User.Email)
		assert.Equal(t, "USER", result.User.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email before any write", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

		result, err := service.Register(context.Background(), RegisterInput{
			Name:     "Ana Souza",
			Email:    "taken@example.com",
			Password: "secret123",
		})

		assert.Nil(t, result)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates invalid input from domain", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)

		result, err := service.Register(context.Background(), RegisterInput{
			Name:     "",
			Email:    "ana@example.com",
			Password: "secret123",
		})

		assert.Nil(t, result)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	existingUser := func(t *testing.T) *identity.User {
		t.Helper()
		user, err := identity.NewUser("Ana Souza", "ana@example.com", "hashed:secret123")
		require.NoError(t, err)
		return user
	}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)
		user := existingUser(t)

		repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

		result, err := service.Authenticate(context.Background(), AuthenticateInput{
			Email:    "ana@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, user.ID, result.User.ID)
		repo.AssertExpectations(t)
	})

	t.Run("returns invalid credentials for unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)

		result, err := service.Authenticate(context.Background(), AuthenticateInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.Nil(t, result)
		assert.Equal(t, shared.ErrInvalidCredentials, err)
	})

	t.Run("returns invalid credentials for wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)
		user := existingUser(t)

		repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

		result, err := service.Authenticate(context.Background(), AuthenticateInput{
			Email:    "ana@example.com",
			Password: "wrong-password",
		})

		assert.Nil(t, result)
		assert.Equal(t, shared.ErrInvalidCredentials, err)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)
		user := existingUser(t)

		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)
		repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

		_, errUnknown := service.Authenticate(context.Background(), AuthenticateInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		_, errWrong := service.Authenticate(context.Background(), AuthenticateInput{
			Email:    "ana@example.com",
			Password: "wrong-password",
		})

		assert.Equal(t, errUnknown, errWrong)
	})

	t.Run("propagates repository failures distinct from bad credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "ana@example.com").
			Return(nil, errors.New("connection refused"))

		result, err := service.Authenticate(context.Background(), AuthenticateInput{
			Email:    "ana@example.com",
			Password: "secret123",
		})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.NotEqual(t, shared.ErrInvalidCredentials, err)
	})
}
