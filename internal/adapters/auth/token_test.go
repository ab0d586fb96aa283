package auth

import (
	"testing"
	"time"
)

func TestJWTAuth_IssueAndVerify(t *testing.T) {
	a := NewJWTAuth("test-secret", time.Hour)

	token, err := a.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	subject, err := a.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "admin" {
		t.Fatalf("expected subject admin, got %q", subject)
	}
}

func TestJWTAuth_VerifyExpired(t *testing.T) {
	a := NewJWTAuth("test-secret", -time.Minute)

	token, err := a.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := a.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestJWTAuth_VerifyWrongSecret(t *testing.T) {
	token, err := NewJWTAuth("secret-a", time.Hour).Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewJWTAuth("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatal("expected token signed with a different secret to fail")
	}
}
