package services

import (
	"context"

	"wealthmindset/internal/domain"
)

type adminService struct {
	passwordHash string
	verifier     domain.PasswordVerifier
	issuer       domain.TokenIssuer
}

// NewAdminService creates the single-admin login service. The password hash comes
// from configuration; there are no admin accounts in the store.
func NewAdminService(passwordHash string, verifier domain.PasswordVerifier, issuer domain.TokenIssuer) domain.AdminService {
	return &adminService{
		passwordHash: passwordHash,
		verifier:     verifier,
		issuer:       issuer,
	}
}

func (s *adminService) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.verifier.Compare(s.passwordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.issuer.Issue("admin")
}
