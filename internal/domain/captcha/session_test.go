package captcha

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringgate/internal/shared/biztime"
)

func TestNewChallengeSession(t *testing.T) {
	session, err := NewChallengeSession("203.0.113.7", 3, 10*time.Minute)
	require.NoError(t, err)

	assert.Len(t, session.ID, sessionIDBytes*2)
	assert.Equal(t, 3, session.SolutionIndex)
	assert.Equal(t, "203.0.113.7", session.IPAddress)
	assert.Zero(t, session.Attempts)
	assert.False(t, session.Verified)
	assert.Nil(t, session.VerificationToken)
	assert.Nil(t, session.VerifiedAt)
	assert.Equal(t, 10*time.Minute, session.ExpiresAt.Sub(session.CreatedAt))
	assert.False(t, session.IsExpired())
}

func TestNewChallengeSession_RejectsNegativeSolutionIndex(t *testing.T) {
	_, err := NewChallengeSession("203.0.113.7", -1, 10*time.Minute)
	assert.Error(t, err)
}

func TestNewChallengeSession_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		session, err := NewChallengeSession("unknown", 0, time.Minute)
		require.NoError(t, err)
		require.False(t, seen[session.ID])
		seen[session.ID] = true
	}
}

func TestChallengeSession_IsExpired(t *testing.T) {
	session, err := NewChallengeSession("unknown", 0, time.Minute)
	require.NoError(t, err)

	session.ExpiresAt = biztime.NowUTC().Add(-time.Second)
	assert.True(t, session.IsExpired())
}

func TestChallengeSession_TokenExpired(t *testing.T) {
	session, err := NewChallengeSession("unknown", 0, 10*time.Minute)
	require.NoError(t, err)

	// No token issued yet: always outside the freshness window.
	assert.True(t, session.TokenExpired(5*time.Minute))

	fresh := biztime.NowUTC().Add(-time.Minute)
	session.VerifiedAt = &fresh
	assert.False(t, session.TokenExpired(5*time.Minute))

	stale := biztime.NowUTC().Add(-6 * time.Minute)
	session.VerifiedAt = &stale
	assert.True(t, session.TokenExpired(5*time.Minute))
}

func TestChallengeSession_AttemptsRemaining(t *testing.T) {
	session, err := NewChallengeSession("unknown", 0, time.Minute)
	require.NoError(t, err)

	assert.Equal(t, MaxAttempts, session.AttemptsRemaining())

	session.Attempts = 2
	assert.Equal(t, 1, session.AttemptsRemaining())

	session.Attempts = MaxAttempts + 1
	assert.Zero(t, session.AttemptsRemaining())
}

func TestNewVerificationToken(t *testing.T) {
	token, err := NewVerificationToken()
	require.NoError(t, err)
	assert.Len(t, token, verificationTokenBytes*2)

	other, err := NewVerificationToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
