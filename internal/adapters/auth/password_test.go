package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"wealthmindset/internal/domain"
)

func TestBcryptVerifier_Compare(t *testing.T) {
	hash, err := HashPassword("Legacy@Wealth2026!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	v := NewBcryptVerifier()
	if err := v.Compare(hash, "Legacy@Wealth2026!"); err != nil {
		t.Fatalf("expected matching password to verify, got %v", err)
	}
	if err := v.Compare(hash, "wrong-password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
