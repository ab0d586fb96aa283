package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"wealthmindset/internal/domain"
)

// Fallback keys for grouped counts when the underlying field is absent.
const (
	unknownEventKey    = "Unknown"
	generalInterestKey = "General"
	noReferralKey      = "Not specified"
)

type dashboardService struct {
	leadRepo domain.LeadRepository
	regRepo  domain.RegistrationRepository
	now      func() time.Time
}

// NewDashboardService creates the admin read model over the lead and registration stores.
func NewDashboardService(leadRepo domain.LeadRepository, regRepo domain.RegistrationRepository) domain.DashboardService {
	return &dashboardService{
		leadRepo: leadRepo,
		regRepo:  regRepo,
		now:      time.Now,
	}
}

// Overview fetches all leads and registrations (newest-first) and derives the
// dashboard aggregates. The two bulk reads run concurrently; both must complete
// before aggregation. An empty store yields zero counts, not an error.
func (s *dashboardService) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	var (
		leads []*domain.Lead
		regs  []*domain.Registration
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = s.leadRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list leads: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		regs, err = s.regRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list registrations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	cutoff := now.Add(-domain.ActivityDays * 24 * time.Hour)

	overview := &domain.DashboardOverview{
		TotalLeads:         len(leads),
		TotalRegistrations: len(regs),
		Leads:              leads,
		Registrations:      regs,
	}
	for _, r := range regs {
		if r.CreatedAt.After(cutoff) {
			overview.RegistrationsLast30Days++
		}
		if r.MarketingConsent {
			overview.MarketingConsentCount++
		}
	}

	overview.RegistrationsByEvent = groupCounts(regs, func(r *domain.Registration) string {
		if r.EventTitle == nil || *r.EventTitle == "" {
			return unknownEventKey
		}
		return *r.EventTitle
	})
	overview.LeadsByInterest = groupCounts(leads, func(l *domain.Lead) string {
		if l.Interest == "" {
			return generalInterestKey
		}
		return l.Interest
	})
	overview.LeadsBySource = groupCounts(leads, func(l *domain.Lead) string {
		if l.ReferralSource == nil || *l.ReferralSource == "" {
			return noReferralKey
		}
		return *l.ReferralSource
	})
	overview.DailyActivity = dailyActivity(regs, now)

	return overview, nil
}

// groupCounts tallies rows by key and returns buckets sorted by descending count,
// key ascending on ties so the output is stable.
func groupCounts[T any](rows []T, key func(T) string) []domain.GroupCount {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[key(row)]++
	}
	out := make([]domain.GroupCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.GroupCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// dailyActivity buckets registrations by UTC creation day over the trailing
// window, oldest day first. Days with no registrations stay at zero.
func dailyActivity(regs []*domain.Registration, now time.Time) []domain.DayBucket {
	buckets := make([]domain.DayBucket, domain.ActivityDays)
	index := make(map[string]int, domain.ActivityDays)
	for i := range buckets {
		day := now.AddDate(0, 0, -(domain.ActivityDays - 1 - i))
		date := day.Format("2006-01-02")
		buckets[i] = domain.DayBucket{Date: date}
		index[date] = i
	}
	for _, r := range regs {
		date := r.CreatedAt.UTC().Format("2006-01-02")
		if i, ok := index[date]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}
