package postgres

import (
	"context"
	"database/sql"

	"wealthmindset/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO event_registrations (
			first_name, last_name, email, phone,
			country, city, state_province, postal_code,
			interest, referral_source, reason_for_attending,
			occupation, experience_level, marketing_consent,
			event_id, event_title, event_date, event_time, event_venue, event_address,
			payment_reference, amount, currency, payment_status,
			source, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		reg.FirstName, reg.LastName, reg.Email, reg.Phone,
		reg.Country, reg.City, reg.StateProvince, reg.PostalCode,
		reg.Interest, reg.ReferralSource, reg.ReasonForAttending,
		reg.Occupation, reg.ExperienceLevel, reg.MarketingConsent,
		reg.EventID, reg.EventTitle, reg.EventDate, reg.EventTime, reg.EventVenue, reg.EventAddress,
		reg.PaymentReference, reg.Amount, reg.Currency, reg.PaymentStatus,
		reg.Source, reg.CreatedAt,
	).Scan(&reg.ID)
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (r *registrationRepository) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	query := `
		SELECT id, first_name, last_name, email, phone,
			country, city, state_province, postal_code,
			interest, referral_source, reason_for_attending,
			occupation, experience_level, marketing_consent,
			event_id, event_title, event_date, event_time, event_venue, event_address,
			payment_reference, amount, currency, payment_status,
			source, created_at
		FROM event_registrations
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(
			&reg.ID, &reg.FirstName, &reg.LastName, &reg.Email, &reg.Phone,
			&reg.Country, &reg.City, &reg.StateProvince, &reg.PostalCode,
			&reg.Interest, &reg.ReferralSource, &reg.ReasonForAttending,
			&reg.Occupation, &reg.ExperienceLevel, &reg.MarketingConsent,
			&reg.EventID, &reg.EventTitle, &reg.EventDate, &reg.EventTime, &reg.EventVenue, &reg.EventAddress,
			&reg.PaymentReference, &reg.Amount, &reg.Currency, &reg.PaymentStatus,
			&reg.Source, &reg.CreatedAt,
		); err != nil {
			return nil, storeError(err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}
