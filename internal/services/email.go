package services

import (
	"context"
	"fmt"
	"log"

	"eventoslisting/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendResetCode sends the password-reset code email using the "reset_code" template.
func (s *emailService) SendResetCode(ctx context.Context, data *domain.ResetCodeEmailData) error {
	if data == nil {
		return fmt.Errorf("reset code email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reset_code", data)
	if err != nil {
		return fmt.Errorf("failed to render reset_code template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reset code email: %w", err)
	}
	log.Printf("[EMAIL] Reset code sent to %s", data.Email)
	return nil
}
