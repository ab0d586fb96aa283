package domain

import (
	"context"
	"time"
)

// LeadSourceForm is the source recorded for leads captured by the landing-page form.
const LeadSourceForm = "lead_form"

// Lead is a prospective contact who expressed interest without registering for a
// specific event. Rows are append-only: never mutated or deleted by the application.
// swagger:model Lead
type Lead struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Interest  string    `json:"interest"`
	// ReferralSource is how the lead heard about us; optional.
	ReferralSource *string   `json:"referral_source"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}

// LeadSubmission is the inbound lead-capture payload.
type LeadSubmission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone          string `json:"phone"`
	Interest       string `json:"interest"`
	ReferralSource string `json:"referralSource"`
}

// LeadRepository defines storage operations for leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	ListAll(ctx context.Context) ([]*Lead, error)
}

// LeadService captures leads and triggers the welcome email.
type LeadService interface {
	// Submit validates and stores the lead. The welcome email is dispatched
	// fire-and-forget: its outcome never affects the returned lead or error.
	Submit(ctx context.Context, sub *LeadSubmission) (*Lead, error)
}
