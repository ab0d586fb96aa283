package domain

import "context"

// ActivityDays is the fixed width of the dashboard's daily-activity histogram.
const ActivityDays = 30

// GroupCount is one bucket of a grouped count, e.g. registrations per event title.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DayBucket is one day of the registration activity histogram. Days with no
// registrations are present with a zero count, never omitted.
type DayBucket struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
}

// DashboardOverview is the admin read model: raw rows newest-first plus derived
// aggregates. It is purely read-only; an empty underlying set yields zero values.
// swagger:model DashboardOverview
type DashboardOverview struct {
	TotalLeads              int `json:"total_leads"`
	TotalRegistrations      int `json:"total_registrations"`
	RegistrationsLast30Days int `json:"registrations_last_30_days"`
	MarketingConsentCount   int `json:"marketing_consent_count"`

	RegistrationsByEvent []GroupCount `json:"registrations_by_event"`
	LeadsByInterest      []GroupCount `json:"leads_by_interest"`
	LeadsBySource        []GroupCount `json:"leads_by_source"`
	DailyActivity        []DayBucket  `json:"daily_activity"`

	Leads         []*Lead         `json:"leads"`
	Registrations []*Registration `json:"registrations"`
}

// DashboardService builds the admin read model.
type DashboardService interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}

// AdminService authenticates the single password-gated admin and issues session tokens.
type AdminService interface {
	Login(ctx context.Context, password string) (token string, err error)
}

// TokenIssuer signs admin session tokens.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenVerifier validates admin session tokens and returns the subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// PasswordVerifier compares a stored password hash with a login attempt.
type PasswordVerifier interface {
	Compare(hash, password string) error
}
