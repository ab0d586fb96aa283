package email

import (
	"strings"
	"testing"

	"wealthmindset/internal/domain"
)

func TestTemplateRenderer_RegistrationConfirmation_Paid(t *testing.T) {
	r, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}

	data := &domain.RegistrationConfirmationData{
		FirstName:        "Thandi",
		EventTitle:       "Johannesburg Wealth Seminar",
		DisplayDate:      "14 March 2026",
		Venue:            "Sandton Convention Centre",
		Address:          "161 Maude St, Sandton",
		PaymentReference: "Thandi Nkosi",
		Amount:           250,
		Currency:         "ZAR",
		Paid:             true,
	}

	subject, html, text, err := r.Render("registration_confirmation", data)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if subject != "[Ref: Thandi Nkosi] Action Required: Payment: Johannesburg Wealth Seminar" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(html, "ZAR 250") {
		t.Fatalf("html body missing amount due:\n%s", html)
	}
	if !strings.Contains(html, "Thandi Nkosi") {
		t.Fatal("html body missing booking reference")
	}
	if !strings.Contains(text, "Amount Due: ZAR 250") {
		t.Fatalf("text body missing amount due:\n%s", text)
	}
	if !strings.Contains(text, "Proof of Payment") {
		t.Fatal("text body missing proof-of-payment instructions")
	}
}

func TestTemplateRenderer_RegistrationConfirmation_Free(t *testing.T) {
	r, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}

	data := &domain.RegistrationConfirmationData{
		FirstName:   "Sipho",
		EventTitle:  "Intro Webinar",
		DisplayDate: "TBD",
		Venue:       "TBD",
		Address:     "TBD",
		Paid:        false,
	}

	subject, html, text, err := r.Render("registration_confirmation", data)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if subject != "Confirmed: Intro Webinar" {
		t.Fatalf("unexpected subject %q", subject)
	}
	// The payment section is omitted entirely on the free branch.
	if strings.Contains(html, "Payment Summary") || strings.Contains(text, "Payment Summary") {
		t.Fatal("free branch must omit payment section")
	}
	// Every event-detail line is present with the placeholder substituted.
	for _, line := range []string{"Date: TBD", "Venue: TBD", "Address: TBD"} {
		if !strings.Contains(text, line) {
			t.Fatalf("text body missing %q:\n%s", line, text)
		}
	}
	if !strings.Contains(html, "GGC-REG-PENDING") {
		t.Fatal("missing reference fallback")
	}
}

func TestTemplateRenderer_Welcome(t *testing.T) {
	r, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}

	subject, html, text, err := r.Render("welcome", &domain.WelcomeEmailData{FirstName: "Thandi"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if subject != "Welcome to The Wealth Mindset" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(html, "Hello Thandi") || !strings.Contains(text, "Hello Thandi") {
		t.Fatal("welcome bodies missing greeting")
	}
}
