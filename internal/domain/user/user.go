package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"ringgate/internal/shared/biztime"
)

// User is a storefront account. Registration and login are the sensitive
// actions gated behind CAPTCHA verification.
type User struct {
	ID           uint
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user from a normalized email and an already-hashed
// password. Plaintext passwords never reach the domain layer.
func NewUser(email, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", err)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
