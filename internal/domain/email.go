package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the lead welcome email.
type WelcomeEmailData struct {
	Email     string
	FirstName string
}

// RegistrationConfirmationData holds data for the registration confirmation email.
// Paid selects the payment branch of the subject and body. DisplayDate, Venue and
// Address are rendered as "TBD" when empty; their lines are never omitted.
type RegistrationConfirmationData struct {
	Email            string
	FirstName        string
	EventTitle       string
	DisplayDate      string
	Venue            string
	Address          string
	PaymentReference string
	Amount           float64
	Currency         string
	Paid             bool
}

// EmailService defines the contract for sending domain-level emails. Failures are
// returned as tagged errors, never raised as faults past the caller.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationData) error
}
