package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with default role", func(t *testing.T) {
		user, err := NewUser("Alice", "alice@example.com", "$2a$12$hash")

		require.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "$2a$12$hash", user.PasswordHash)
		assert.Equal(t, RoleUser, user.Role)
		assert.NotEqual(t, user.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("lowercases and trims email", func(t *testing.T) {
		user, err := NewUser("Alice", "  Alice@Example.COM ", "$2a$12$hash")

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		user, err := NewUser("  ", "alice@example.com", "$2a$12$hash")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "Name is required")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		user, err := NewUser("Alice", "not-an-email", "$2a$12$hash")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "Invalid email format")
	})

	t.Run("fails with empty password hash", func(t *testing.T) {
		user, err := NewUser("Alice", "alice@example.com", "")

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("SUPERUSER").IsValid())
}
