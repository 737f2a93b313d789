package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains data for registering a new account
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthenticateInput contains credentials for logging in
type AuthenticateInput struct {
	Email    string
	Password string
}

// UserInfo contains user information returned to callers
type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// AuthResult is the outcome of a successful registration or login
type AuthResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserInfo  `json:"user"`
}
