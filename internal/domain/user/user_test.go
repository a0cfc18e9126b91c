package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Shopper@Example.COM ", "$2a$12$hash")
	require.NoError(t, err)

	assert.Equal(t, "shopper@example.com", u.Email)
	assert.Equal(t, "$2a$12$hash", u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestNewUser_InvalidEmail(t *testing.T) {
	_, err := NewUser("not-an-email", "$2a$12$hash")
	assert.Error(t, err)
}

func TestNewUser_MissingPasswordHash(t *testing.T) {
	_, err := NewUser("shopper@example.com", "")
	assert.Error(t, err)
}
