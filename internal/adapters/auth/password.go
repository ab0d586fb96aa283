package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"wealthmindset/internal/domain"
)

type bcryptVerifier struct{}

// NewBcryptVerifier returns a PasswordVerifier that compares bcrypt hashes.
// The admin password is stored only as a hash in configuration.
func NewBcryptVerifier() domain.PasswordVerifier {
	return bcryptVerifier{}
}

func (bcryptVerifier) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// HashPassword generates a bcrypt hash for the given password. Used to provision
// the ADMIN_PASSWORD_HASH configuration value.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
