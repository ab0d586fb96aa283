package services

import (
	"context"
	"log/slog"
	"time"

	"wealthmindset/internal/domain"
)

type leadService struct {
	leadRepo     domain.LeadRepository
	emailService domain.EmailService
	logger       *slog.Logger
	now          func() time.Time
}

// NewLeadService creates a LeadService with the given repository and email service.
func NewLeadService(leadRepo domain.LeadRepository, emailService domain.EmailService, logger *slog.Logger) domain.LeadService {
	return &leadService{
		leadRepo:     leadRepo,
		emailService: emailService,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *leadService) Submit(ctx context.Context, sub *domain.LeadSubmission) (*domain.Lead, error) {
	var missing []string
	if sub.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if sub.LastName == "" {
		missing = append(missing, "lastName")
	}
	if sub.Email == "" {
		missing = append(missing, "email")
	}
	if sub.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	lead := &domain.Lead{
		FirstName:      sub.FirstName,
		LastName:       sub.LastName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Interest:       orDefault(sub.Interest, "general"),
		ReferralSource: nullable(sub.ReferralSource),
		Source:         domain.LeadSourceForm,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	// Welcome email is fire-and-forget: the response never waits on it, and a
	// failure is only logged.
	if s.emailService != nil {
		emailCtx := context.WithoutCancel(ctx)
		go func() {
			data := &domain.WelcomeEmailData{Email: lead.Email, FirstName: lead.FirstName}
			if err := s.emailService.SendWelcome(emailCtx, data); err != nil {
				s.logger.Error("welcome email failed", "lead_id", lead.ID, "email", lead.Email, "err", err)
			}
		}()
	}
	return lead, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
