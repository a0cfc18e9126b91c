package captcha

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"ringgate/internal/shared/biztime"
)

// MaxAttempts is the verification attempt ceiling. A session whose attempt
// count exceeds it is destroyed and treated as never having existed.
const MaxAttempts = 3

const (
	sessionIDBytes         = 16 // 128 bits
	verificationTokenBytes = 32 // 256 bits
)

// ChallengeSession is the server-side state of one CAPTCHA challenge.
// The solution index is never exposed to the client; the client only ever
// sees the generated geometry.
type ChallengeSession struct {
	ID                string
	SolutionIndex     int
	IPAddress         string
	Attempts          int
	Verified          bool
	VerificationToken *string
	VerifiedAt        *time.Time
	CreatedAt         time.Time
	ExpiresAt         time.Time
}

// NewChallengeSession creates a pending session for a freshly generated
// puzzle. ttl is the fixed offset from creation after which the session is
// invalid.
func NewChallengeSession(clientIP string, solutionIndex int, ttl time.Duration) (*ChallengeSession, error) {
	if solutionIndex < 0 {
		return nil, fmt.Errorf("solution index must not be negative")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := biztime.NowUTC()
	return &ChallengeSession{
		ID:            id,
		SolutionIndex: solutionIndex,
		IPAddress:     clientIP,
		Attempts:      0,
		Verified:      false,
		CreatedAt:     now,
		ExpiresAt:     now.Add(ttl),
	}, nil
}

// IsExpired reports whether the session is past its expiry.
func (s *ChallengeSession) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

// TokenExpired reports whether the verification token is older than the
// given freshness window. The window is independent of, and typically
// shorter than, the session expiry.
func (s *ChallengeSession) TokenExpired(window time.Duration) bool {
	if s.VerifiedAt == nil {
		return true
	}
	return biztime.NowUTC().Sub(*s.VerifiedAt) > window
}

// AttemptsRemaining returns how many verification attempts are left.
func (s *ChallengeSession) AttemptsRemaining() int {
	remaining := MaxAttempts - s.Attempts
	if remaining < 0 {
		return 0
	}
	return remaining
}

func generateSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewVerificationToken mints the opaque single-use credential issued on a
// correct guess.
func NewVerificationToken() (string, error) {
	b := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
