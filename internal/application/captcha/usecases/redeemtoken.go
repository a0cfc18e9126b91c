package usecases

import (
	"context"
	"time"

	"ringgate/internal/domain/captcha"
	apperrors "ringgate/internal/shared/errors"
	"ringgate/internal/shared/logger"
)

// RedeemTokenUseCase consumes a verification token exactly once. Redemption
// deletes the backing session before the protected action runs, so a token
// can never be replayed even when the downstream action fails.
type RedeemTokenUseCase struct {
	sessions captcha.ChallengeSessionRepository
	tokenTTL time.Duration
	logger   logger.Interface
}

func NewRedeemTokenUseCase(
	sessions captcha.ChallengeSessionRepository,
	tokenTTL time.Duration,
	logger logger.Interface,
) *RedeemTokenUseCase {
	return &RedeemTokenUseCase{
		sessions: sessions,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Execute validates and consumes the token. All failures are fail-closed.
func (uc *RedeemTokenUseCase) Execute(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.NewUnauthorizedError("captcha token is required")
	}

	session, err := uc.sessions.GetByToken(ctx, token)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewUnauthorizedError("invalid captcha token")
		}
		uc.logger.Errorw("failed to look up captcha token", "error", err)
		return apperrors.NewInternalError("challenge service unavailable")
	}

	if session.TokenExpired(uc.tokenTTL) {
		if err := uc.sessions.Delete(ctx, session.ID); err != nil && !apperrors.IsNotFoundError(err) {
			uc.logger.Warnw("failed to delete session with stale token",
				"session_id", session.ID,
				"error", err,
			)
		}
		return apperrors.NewUnauthorizedError("captcha token expired")
	}

	// Consume before the protected action proceeds. If the delete fails the
	// token is not consumed and the action is refused.
	if err := uc.sessions.Delete(ctx, session.ID); err != nil {
		if apperrors.IsNotFoundError(err) {
			// A concurrent redemption won the race.
			return apperrors.NewUnauthorizedError("invalid captcha token")
		}
		uc.logger.Errorw("failed to consume captcha token",
			"session_id", session.ID,
			"error", err,
		)
		return apperrors.NewInternalError("challenge service unavailable")
	}

	uc.logger.Debugw("captcha token redeemed", "session_id", session.ID)
	return nil
}
