package usecases

import (
	"context"
	"sync"
	"time"

	"ringgate/internal/domain/captcha"
	"ringgate/internal/shared/biztime"
	apperrors "ringgate/internal/shared/errors"
)

// memorySessionRepo is an in-memory ChallengeSessionRepository with the same
// observable semantics as the GORM implementation: expiry-filtered reads,
// atomic attempt increments and not-found errors from the shared errors
// package. Reads return copies so callers never alias stored state.
type memorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*captcha.ChallengeSession

	failCreate bool
	failDelete bool
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[string]*captcha.ChallengeSession)}
}

func (r *memorySessionRepo) Create(ctx context.Context, session *captcha.ChallengeSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreate {
		return apperrors.NewInternalError("storage down")
	}
	stored := *session
	r.sessions[session.ID] = &stored
	return nil
}

func (r *memorySessionRepo) GetActive(ctx context.Context, sessionID string) (*captcha.ChallengeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok || biztime.NowUTC().After(session.ExpiresAt) {
		return nil, apperrors.NewNotFoundError("challenge session not found")
	}
	copied := *session
	return &copied, nil
}

func (r *memorySessionRepo) IncrementAttempts(ctx context.Context, sessionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return 0, apperrors.NewNotFoundError("challenge session not found")
	}
	session.Attempts++
	return session.Attempts, nil
}

func (r *memorySessionRepo) MarkVerified(ctx context.Context, sessionID, token string, verifiedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return apperrors.NewNotFoundError("challenge session not found")
	}
	session.Verified = true
	session.VerificationToken = &token
	session.VerifiedAt = &verifiedAt
	return nil
}

func (r *memorySessionRepo) GetByToken(ctx context.Context, token string) (*captcha.ChallengeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, session := range r.sessions {
		if session.Verified && session.VerificationToken != nil && *session.VerificationToken == token {
			copied := *session
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFoundError("challenge session not found")
}

func (r *memorySessionRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failDelete {
		return apperrors.NewInternalError("storage down")
	}
	if _, ok := r.sessions[sessionID]; !ok {
		return apperrors.NewNotFoundError("challenge session not found")
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *memorySessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := biztime.NowUTC()
	var removed int64
	for id, session := range r.sessions {
		if now.After(session.ExpiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memorySessionRepo) get(sessionID string) *captcha.ChallengeSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[sessionID]
}

func (r *memorySessionRepo) put(session *captcha.ChallengeSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *session
	r.sessions[session.ID] = &stored
}
