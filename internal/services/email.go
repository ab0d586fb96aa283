package services

import (
	"context"
	"fmt"
	"log"

	"wealthmindset/internal/domain"
)

// detailPlaceholder substitutes for absent event details so every detail line in
// the email renders.
const detailPlaceholder = "TBD"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendWelcome sends the lead welcome email using the "welcome" template.
func (s *emailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	log.Printf("[EMAIL] Welcome email sent to %s", data.Email)
	return nil
}

// SendRegistrationConfirmation sends the registration confirmation email using the
// "registration_confirmation" template. Absent event details render as "TBD"; the
// subject and body branch on whether payment is due.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationData) error {
	if data == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	filled := *data
	filled.EventTitle = orPlaceholder(filled.EventTitle)
	filled.DisplayDate = orPlaceholder(filled.DisplayDate)
	filled.Venue = orPlaceholder(filled.Venue)
	filled.Address = orPlaceholder(filled.Address)

	subject, htmlBody, textBody, err := s.renderer.Render("registration_confirmation", &filled)
	if err != nil {
		return fmt.Errorf("failed to render registration_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Registration confirmation sent to %s", data.Email)
	return nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return detailPlaceholder
	}
	return s
}
