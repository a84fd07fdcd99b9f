package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user and auth operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User represents a registered user. The password hash never leaves the server.
// swagger:model User
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Admin        bool   `json:"admin"`
}

// UserProjection is the non-sensitive view of a user returned by auth endpoints.
// swagger:model UserProjection
type UserProjection struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// Projection returns the non-sensitive view of the user.
func (u *User) Projection() UserProjection {
	return UserProjection{Email: u.Email, Admin: u.Admin}
}

// PasswordHasher handles one-way hashing and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
// Create must reject duplicate emails with ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	GetByID(ctx context.Context, id string) (*User, error)
}
