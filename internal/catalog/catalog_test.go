package catalog

import (
	"errors"
	"testing"

	"wealthmindset/internal/domain"
)

const sampleCatalog = `
events:
  - id: jhb-2026
    title: Johannesburg Wealth Seminar
    display_date: 14 March 2026
    time: "18:30"
    venue: Sandton Convention Centre
    address: 161 Maude St, Sandton
    prices:
      South Africa:
        amount: 250
        currency: ZAR
    default_price:
      amount: 20
      currency: USD
  - id: online-intro
    title: Intro Webinar
`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := len(cat.List()); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}

	ev, err := cat.GetByID("jhb-2026")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if ev.Title != "Johannesburg Wealth Seminar" {
		t.Fatalf("unexpected title %q", ev.Title)
	}
	if p := ev.ResolvePrice("South Africa"); p.Amount != 250 || p.Currency != "ZAR" {
		t.Fatalf("unexpected SA price %+v", p)
	}
	if p := ev.ResolvePrice("Kenya"); p.Amount != 20 || p.Currency != "USD" {
		t.Fatalf("unexpected rest-of-world price %+v", p)
	}

	// Event with no pricing at all is free.
	free, err := cat.GetByID("online-intro")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p := free.ResolvePrice("South Africa"); p.Amount != 0 || p.Currency != "ZAR" {
		t.Fatalf("expected free 0 ZAR, got %+v", p)
	}

	if _, err := cat.GetByID("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParse_DuplicateID(t *testing.T) {
	raw := `
events:
  - id: a
    title: First
  - id: a
    title: Second
`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestParse_MissingID(t *testing.T) {
	raw := `
events:
  - title: No ID
`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("expected missing id error")
	}
}
