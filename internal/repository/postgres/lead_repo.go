package postgres

import (
	"context"
	"database/sql"

	"wealthmindset/internal/domain"
)

type leadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &leadRepository{
		DB: db,
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	query := `
		INSERT INTO leads (first_name, last_name, email, phone, interest, referral_source, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		lead.FirstName, lead.LastName, lead.Email, lead.Phone,
		lead.Interest, lead.ReferralSource, lead.Source, lead.CreatedAt,
	).Scan(&lead.ID)
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (r *leadRepository) ListAll(ctx context.Context) ([]*domain.Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, interest, referral_source, source, created_at
		FROM leads
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		lead := &domain.Lead{}
		if err := rows.Scan(
			&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
			&lead.Phone, &lead.Interest, &lead.ReferralSource, &lead.Source, &lead.CreatedAt,
		); err != nil {
			return nil, storeError(err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}
	if leads == nil {
		leads = []*domain.Lead{}
	}
	return leads, nil
}
