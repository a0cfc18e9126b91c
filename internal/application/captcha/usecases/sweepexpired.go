package usecases

import (
	"context"
	"fmt"

	"ringgate/internal/domain/captcha"
	"ringgate/internal/shared/logger"
)

// SweepExpiredSessionsUseCase eagerly deletes sessions past their expiry.
// Lazy expiry in the verifier already makes stale rows unusable; the sweep
// bounds storage growth.
type SweepExpiredSessionsUseCase struct {
	sessions captcha.ChallengeSessionRepository
	logger   logger.Interface
}

func NewSweepExpiredSessionsUseCase(
	sessions captcha.ChallengeSessionRepository,
	logger logger.Interface,
) *SweepExpiredSessionsUseCase {
	return &SweepExpiredSessionsUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute removes all expired sessions, verified or not, and returns the
// number of rows removed.
func (uc *SweepExpiredSessionsUseCase) Execute(ctx context.Context) (int64, error) {
	removed, err := uc.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired challenge sessions: %w", err)
	}

	if removed > 0 {
		uc.logger.Infow("expired challenge sessions removed", "count", removed)
	}

	return removed, nil
}
