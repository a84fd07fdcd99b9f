package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the reset-code lifecycle.
var (
	ErrResetCodeInvalid = errors.New("invalid reset code")
	ErrResetCodeExpired = errors.New("reset code expired")
)

// ResetCode is a short-lived numeric credential proving email ownership.
// Code is a 4-digit string with leading zeros preserved.
type ResetCode struct {
	ID        string
	Email     string
	Code      string
	ExpiresAt time.Time
}

// Expired reports whether the code is past its expiry at the given instant.
func (c *ResetCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// ResetCodeRepository defines the interface for reset-code storage.
// At most one live code per email: callers DeleteByEmail before Create.
type ResetCodeRepository interface {
	Create(ctx context.Context, code *ResetCode) error
	GetByEmailAndCode(ctx context.Context, email, code string) (*ResetCode, error)
	DeleteByEmail(ctx context.Context, email string) error
	Delete(ctx context.Context, id string) error
}

// PasswordResetService drives the reset-code state machine:
// None -> Issued -> Consumed|Expired -> None.
type PasswordResetService interface {
	Request(ctx context.Context, email string) error
	Redeem(ctx context.Context, email, code, newPassword string) error
}
