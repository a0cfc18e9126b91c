package captcha

import (
	"context"
	"time"
)

// ChallengeSessionRepository is the persistence contract for challenge
// sessions. The store is the single source of truth; no challenge state is
// cached in memory across requests.
type ChallengeSessionRepository interface {
	Create(ctx context.Context, session *ChallengeSession) error

	// GetActive returns the session only when it exists and has not expired.
	// An expired row and a missing row are indistinguishable to callers.
	GetActive(ctx context.Context, sessionID string) (*ChallengeSession, error)

	// IncrementAttempts atomically increments the attempt counter and
	// returns the post-increment value. Concurrent calls on the same row
	// must never observe the same pre-increment count.
	IncrementAttempts(ctx context.Context, sessionID string) (int, error)

	// MarkVerified flips the session to verified and records the issued
	// token and verification time.
	MarkVerified(ctx context.Context, sessionID, token string, verifiedAt time.Time) error

	// GetByToken returns the verified session holding the given token.
	GetByToken(ctx context.Context, token string) (*ChallengeSession, error)

	Delete(ctx context.Context, sessionID string) error

	// DeleteExpired removes every session past its expiry and returns the
	// number of rows removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
