package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"wealthmindset/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	reg := &domain.Registration{
		FirstName:        "Thandi",
		LastName:         "Nkosi",
		Email:            "thandi@example.com",
		Phone:            "+27821234567",
		Country:          strPtr("South Africa"),
		City:             strPtr("Johannesburg"),
		Interest:         "wealth-preservation",
		MarketingConsent: true,
		EventID:          strPtr("jhb-2026"),
		EventTitle:       strPtr("Johannesburg Wealth Seminar"),
		PaymentReference: strPtr("Thandi Nkosi"),
		Amount:           250,
		Currency:         "ZAR",
		PaymentStatus:    domain.PaymentStatusPending,
		Source:           domain.RegistrationSourceWebsite,
		CreatedAt:        createdAt,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO event_registrations`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("reg-uuid-1"))

		repo := NewRegistrationRepository(db)
		require.NoError(t, repo.Create(ctx, reg))
		require.Equal(t, "reg-uuid-1", reg.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error wraps store error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO event_registrations`).
			WillReturnError(sql.ErrConnDone)

		repo := NewRegistrationRepository(db)
		err = repo.Create(ctx, reg)
		require.Error(t, err)
		var storeErr *domain.StoreError
		require.True(t, errors.As(err, &storeErr))
		require.Equal(t, sql.ErrConnDone.Error(), storeErr.Message)
	})
}

func TestRegistrationRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	cols := []string{
		"id", "first_name", "last_name", "email", "phone",
		"country", "city", "state_province", "postal_code",
		"interest", "referral_source", "reason_for_attending",
		"occupation", "experience_level", "marketing_consent",
		"event_id", "event_title", "event_date", "event_time", "event_venue", "event_address",
		"payment_reference", "amount", "currency", "payment_status",
		"source", "created_at",
	}

	t.Run("scans nullable fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		createdAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`FROM event_registrations\s+ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("r1", "Thandi", "Nkosi", "thandi@example.com", "+27821234567",
					"South Africa", nil, nil, nil,
					"general", nil, nil,
					nil, nil, true,
					"jhb-2026", "Johannesburg Wealth Seminar", nil, nil, nil, nil,
					"Thandi Nkosi", 250.0, "ZAR", "Pending Payment",
					"website", createdAt))

		repo := NewRegistrationRepository(db)
		regs, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, regs, 1)
		require.Equal(t, "r1", regs[0].ID)
		require.Nil(t, regs[0].City)
		require.Equal(t, "South Africa", *regs[0].Country)
		require.Equal(t, domain.PaymentStatusPending, regs[0].PaymentStatus)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM event_registrations`).WillReturnRows(sqlmock.NewRows(cols))

		repo := NewRegistrationRepository(db)
		regs, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.NotNil(t, regs)
		require.Empty(t, regs)
	})
}
