package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wealthmindset/internal/domain"
)

// DispatchPolicy controls how the confirmation email is dispatched after a
// successful registration insert.
type DispatchPolicy string

const (
	// DispatchSync awaits the email send; a failure is reported as advisory
	// metadata on the otherwise-successful result.
	DispatchSync DispatchPolicy = "sync"
	// DispatchDetached sends the email in a goroutine; a failure is only logged.
	DispatchDetached DispatchPolicy = "detached"
)

type registrationService struct {
	regRepo      domain.RegistrationRepository
	catalog      domain.EventCatalog
	emailService domain.EmailService
	policy       DispatchPolicy
	logger       *slog.Logger
	now          func() time.Time
}

// NewRegistrationService creates a RegistrationService. The catalog supplies the
// event snapshot and server-side pricing; policy selects the email dispatch mode.
func NewRegistrationService(
	regRepo domain.RegistrationRepository,
	catalog domain.EventCatalog,
	emailService domain.EmailService,
	policy DispatchPolicy,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		regRepo:      regRepo,
		catalog:      catalog,
		emailService: emailService,
		policy:       policy,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *registrationService) Submit(ctx context.Context, sub *domain.RegistrationSubmission) (*domain.RegistrationResult, error) {
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
	if sub.FullPhone == "" {
		missing = append(missing, "fullPhone")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	// Event snapshot, denormalized at submission time. The catalog is consulted
	// when it knows the event; otherwise the caller-supplied title stands alone.
	eventTitle := sub.EventTitle
	var event *domain.Event
	if s.catalog != nil && sub.EventID != "" {
		ev, err := s.catalog.GetByID(sub.EventID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("look up event: %w", err)
		}
		if ev != nil {
			event = ev
			eventTitle = ev.Title
		}
	}

	// Payment fields. A caller-supplied amount is stored verbatim together with
	// its currency and reference (the client pre-computes them; known integrity
	// gap, kept to match the submission contract). Otherwise pricing is resolved
	// from the event and the registrant's country, and the reference from the
	// registrant's name.
	var (
		amount    float64
		currency  string
		reference string
	)
	if sub.Amount != nil {
		amount = *sub.Amount
		currency = orDefault(sub.Currency, "ZAR")
		reference = sub.PaymentReference
	} else {
		price := domain.Price{Amount: 0, Currency: "ZAR"}
		if event != nil {
			price = event.ResolvePrice(sub.Country)
		}
		amount = price.Amount
		currency = price.Currency
		reference = domain.PaymentReference(sub.FirstName, sub.LastName)
	}

	status := domain.PaymentStatusConfirmed
	if amount > 0 {
		status = domain.PaymentStatusPending
	}

	phone := sub.FullPhone
	if phone == "" {
		phone = sub.Phone
	}

	reg := &domain.Registration{
		FirstName:          sub.FirstName,
		LastName:           sub.LastName,
		Email:              sub.Email,
		Phone:              phone,
		Country:            nullable(sub.Country),
		City:               nullable(sub.City),
		StateProvince:      nullable(sub.StateProvince),
		PostalCode:         nullable(sub.PostalCode),
		Interest:           orDefault(sub.Interest, "general"),
		ReferralSource:     nullable(sub.ReferralSource),
		ReasonForAttending: nullable(sub.ReasonForAttending),
		Occupation:         nullable(sub.Occupation),
		ExperienceLevel:    nullable(sub.ExperienceLevel),
		MarketingConsent:   sub.MarketingConsent,
		EventID:            nullable(sub.EventID),
		EventTitle:         nullable(eventTitle),
		PaymentReference:   nullable(reference),
		Amount:             amount,
		Currency:           currency,
		PaymentStatus:      status,
		Source:             domain.RegistrationSourceWebsite,
		CreatedAt:          s.now().UTC(),
	}
	if event != nil {
		reg.EventDate = nullable(event.DisplayDate)
		reg.EventTime = nullable(event.Time)
		reg.EventVenue = nullable(event.Venue)
		reg.EventAddress = nullable(event.Address)
	}

	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, err
	}

	result := &domain.RegistrationResult{Registration: reg}
	if s.emailService == nil {
		return result, nil
	}

	data := &domain.RegistrationConfirmationData{
		Email:            reg.Email,
		FirstName:        reg.FirstName,
		EventTitle:       eventTitle,
		PaymentReference: reference,
		Amount:           amount,
		Currency:         currency,
		Paid:             amount > 0,
	}
	if event != nil {
		data.DisplayDate = event.DisplayDate
		data.Venue = event.Venue
		data.Address = event.Address
	}

	switch s.policy {
	case DispatchDetached:
		emailCtx := context.WithoutCancel(ctx)
		go func() {
			if err := s.emailService.SendRegistrationConfirmation(emailCtx, data); err != nil {
				s.logger.Error("confirmation email failed", "registration_id", reg.ID, "email", reg.Email, "err", err)
			}
		}()
	default:
		// Synchronous with advisory failure: the registration already succeeded,
		// so an email error never becomes a request error.
		if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
			s.logger.Warn("confirmation email failed", "registration_id", reg.ID, "email", reg.Email, "err", err)
			result.EmailError = err.Error()
		}
	}
	return result, nil
}
