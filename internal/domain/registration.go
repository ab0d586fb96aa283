package domain

import (
	"context"
	"time"
)

// PaymentStatus is the manual-reconciliation state of a registration's payment.
type PaymentStatus string

const (
	// PaymentStatusConfirmed means the registration needs no payment (free event).
	PaymentStatusConfirmed PaymentStatus = "Confirmed"
	// PaymentStatusPending means payment has not yet been verified by staff.
	// Verification is an out-of-band manual process; no in-system update path exists.
	PaymentStatusPending PaymentStatus = "Pending Payment"
)

// RegistrationSourceWebsite is the source recorded for website registrations.
const RegistrationSourceWebsite = "website"

// Registration is a commitment to attend a specific event, with full demographic
// and payment metadata. The event fields are a denormalized snapshot taken at
// submission time, not a live reference. Rows are append-only and immutable.
// swagger:model Registration
type Registration struct {
	ID                 string        `json:"id"`
	FirstName          string        `json:"first_name"`
	LastName           string        `json:"last_name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	Country            *string       `json:"country"`
	City               *string       `json:"city"`
	StateProvince      *string       `json:"state_province"`
	PostalCode         *string       `json:"postal_code"`
	Interest           string        `json:"interest"`
	ReferralSource     *string       `json:"referral_source"`
	ReasonForAttending *string       `json:"reason_for_attending"`
	Occupation         *string       `json:"occupation"`
	ExperienceLevel    *string       `json:"experience_level"`
	MarketingConsent   bool          `json:"marketing_consent"`
	EventID            *string       `json:"event_id"`
	EventTitle         *string       `json:"event_title"`
	EventDate          *string       `json:"event_date"`
	EventTime          *string       `json:"event_time"`
	EventVenue         *string       `json:"event_venue"`
	EventAddress       *string       `json:"event_address"`
	PaymentReference   *string       `json:"payment_reference"`
	Amount             float64       `json:"amount"`
	Currency           string        `json:"currency"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	Source             string        `json:"source"`
	CreatedAt          time.Time     `json:"created_at"`
}

// RegistrationSubmission is the inbound registration payload. Amount, Currency and
// PaymentReference may be pre-computed by the caller; when all are absent the
// service resolves them from the event catalog and the registrant's name.
type RegistrationSubmission struct {
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	FullPhone          string   `json:"fullPhone"`
	Country            string   `json:"country"`
	City               string   `json:"city"`
	StateProvince      string   `json:"stateProvince"`
	PostalCode         string   `json:"postalCode"`
	Interest           string   `json:"interest"`
	ReferralSource     string   `json:"referralSource"`
	ReasonForAttending string   `json:"reasonForAttending"`
	Occupation         string   `json:"occupation"`
	ExperienceLevel    string   `json:"experienceLevel"`
	MarketingConsent   bool     `json:"marketingConsent"`
	EventID            string   `json:"eventId"`
	EventTitle         string   `json:"eventTitle"`
	Amount             *float64 `json:"amount"`
	Currency           string   `json:"currency"`
	PaymentReference   string   `json:"paymentReference"`
}

// RegistrationResult reports the outcome of a registration submission.
// EmailError is advisory: a failed confirmation email never rolls back or masks a
// successful registration.
type RegistrationResult struct {
	Registration *Registration
	EmailError   string
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	ListAll(ctx context.Context) ([]*Registration, error)
}

// RegistrationService handles event-registration submissions.
type RegistrationService interface {
	Submit(ctx context.Context, sub *RegistrationSubmission) (*RegistrationResult, error)
}
