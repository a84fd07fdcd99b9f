package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"eventoslisting/internal/domain"
)

const (
	resetCodeDigits     = 4
	resetCodeExpiryMins = 15
)

var resetCodeRegexp = regexp.MustCompile(`^\d{4}$`)

type passwordResetService struct {
	userRepo     domain.UserRepository
	resetRepo    domain.ResetCodeRepository
	hasher       domain.PasswordHasher
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewPasswordResetService creates a PasswordResetService with the given
// repositories, hasher, and email service.
func NewPasswordResetService(userRepo domain.UserRepository, resetRepo domain.ResetCodeRepository, hasher domain.PasswordHasher, emailService domain.EmailService, logger *slog.Logger) domain.PasswordResetService {
	return &passwordResetService{
		userRepo:     userRepo,
		resetRepo:    resetRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

// Request issues a fresh code for the email, superseding any prior one, and
// mails it. If the mail cannot be sent the stored code is rolled back so no
// unreachable code stays live.
func (s *passwordResetService) Request(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	code, err := generateResetCode(resetCodeDigits)
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	if err := s.resetRepo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("failed to clear previous code: %w", err)
	}
	record := &domain.ResetCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeExpiryMins * time.Minute),
	}
	if err := s.resetRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	data := &domain.ResetCodeEmailData{
		Email:            email,
		Code:             code,
		ExpiresInMinutes: resetCodeExpiryMins,
	}
	if err := s.emailService.SendResetCode(ctx, data); err != nil {
		if delErr := s.resetRepo.Delete(ctx, record.ID); delErr != nil {
			s.logger.Error("failed to roll back reset code after mail failure", "email", email, "err", delErr)
		}
		return fmt.Errorf("failed to send reset code email: %w", err)
	}
	return nil
}

// Redeem consumes the code: the record is deleted whether the redeem succeeds
// or the code turns out expired, so no code survives a redeem attempt that
// reached it.
func (s *passwordResetService) Redeem(ctx context.Context, email, code, newPassword string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	code = strings.TrimSpace(code)
	if !resetCodeRegexp.MatchString(code) {
		return domain.ErrResetCodeInvalid
	}
	record, err := s.resetRepo.GetByEmailAndCode(ctx, email, code)
	if err != nil {
		if errors.Is(err, domain.ErrResetCodeInvalid) {
			return err
		}
		return fmt.Errorf("failed to look up reset code: %w", err)
	}
	if record.Expired(time.Now()) {
		if err := s.resetRepo.Delete(ctx, record.ID); err != nil {
			return fmt.Errorf("failed to delete expired code: %w", err)
		}
		return domain.ErrResetCodeExpired
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, email, hash); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.resetRepo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete consumed code: %w", err)
	}
	return nil
}

// generateResetCode returns a uniformly random numeric code of the given
// length, leading zeros preserved as text.
func generateResetCode(digits int) (string, error) {
	const digitspace = "0123456789"
	b := make([]byte, digits)
	for i := range b {
		// Rejection sampling keeps each digit uniform.
		for {
			var one [1]byte
			if _, err := rand.Read(one[:]); err != nil {
				return "", err
			}
			if one[0] < 250 {
				b[i] = digitspace[int(one[0])%len(digitspace)]
				break
			}
		}
	}
	return string(b), nil
}
