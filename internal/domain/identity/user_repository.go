package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the persistence contract for users
type UserRepository interface {
	// FindByID finds a user by ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (stored lowercased),
	// returning shared.ErrNotFound when absent
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether a user with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists a new user
	Save(ctx context.Context, user *User) error
}
