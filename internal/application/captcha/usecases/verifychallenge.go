package usecases

import (
	"context"

	"ringgate/internal/application/captcha/dto"
	"ringgate/internal/domain/captcha"
	"ringgate/internal/shared/biztime"
	apperrors "ringgate/internal/shared/errors"
	"ringgate/internal/shared/logger"
)

// VerifyChallengeCommand carries a guess against a stored challenge.
// SelectedIndex is caller-supplied and deliberately not range-checked: an
// out-of-range value can never equal the solution and counts as a wrong
// guess.
type VerifyChallengeCommand struct {
	SessionID     string
	SelectedIndex int
}

// VerifyChallengeUseCase adjudicates a guess, enforces the attempt ceiling
// and issues the one-time verification token on success.
type VerifyChallengeUseCase struct {
	sessions captcha.ChallengeSessionRepository
	logger   logger.Interface
}

func NewVerifyChallengeUseCase(
	sessions captcha.ChallengeSessionRepository,
	logger logger.Interface,
) *VerifyChallengeUseCase {
	return &VerifyChallengeUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute runs the verification flow. The ordering is load-bearing: the
// attempt increment is persisted before the ceiling check, the ceiling check
// precedes the already-verified check, and both precede the correctness
// comparison. A 4th attempt is rejected even when it is the first correct
// guess.
func (uc *VerifyChallengeUseCase) Execute(ctx context.Context, cmd VerifyChallengeCommand) (*dto.VerifyResultDTO, error) {
	session, err := uc.sessions.GetActive(ctx, cmd.SessionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			// Expired and never-existed are deliberately indistinguishable.
			return nil, apperrors.NewNotFoundError("invalid or expired challenge")
		}
		uc.logger.Errorw("failed to load challenge session",
			"session_id", cmd.SessionID,
			"error", err,
		)
		return nil, apperrors.NewInternalError("challenge service unavailable")
	}

	attempts, err := uc.sessions.IncrementAttempts(ctx, session.ID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("invalid or expired challenge")
		}
		uc.logger.Errorw("failed to increment challenge attempts",
			"session_id", session.ID,
			"error", err,
		)
		return nil, apperrors.NewInternalError("challenge service unavailable")
	}

	if attempts > captcha.MaxAttempts {
		if err := uc.sessions.Delete(ctx, session.ID); err != nil && !apperrors.IsNotFoundError(err) {
			uc.logger.Warnw("failed to delete exhausted challenge session",
				"session_id", session.ID,
				"error", err,
			)
		}
		uc.logger.Infow("challenge attempt ceiling exceeded",
			"session_id", session.ID,
			"attempts", attempts,
			"client_ip", session.IPAddress,
		)
		return nil, apperrors.NewTooManyRequestsError("too many attempts, request a new challenge")
	}

	if session.Verified {
		return nil, apperrors.NewConflictError("challenge already verified")
	}

	if cmd.SelectedIndex != session.SolutionIndex {
		return &dto.VerifyResultDTO{
			Verified:          false,
			AttemptsRemaining: captcha.MaxAttempts - attempts,
		}, nil
	}

	token, err := captcha.NewVerificationToken()
	if err != nil {
		uc.logger.Errorw("failed to mint verification token",
			"session_id", session.ID,
			"error", err,
		)
		return nil, apperrors.NewInternalError("challenge service unavailable")
	}

	if err := uc.sessions.MarkVerified(ctx, session.ID, token, biztime.NowUTC()); err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("invalid or expired challenge")
		}
		uc.logger.Errorw("failed to mark challenge session verified",
			"session_id", session.ID,
			"error", err,
		)
		return nil, apperrors.NewInternalError("challenge service unavailable")
	}

	uc.logger.Debugw("challenge verified",
		"session_id", session.ID,
		"attempts", attempts,
	)

	return &dto.VerifyResultDTO{Verified: true, Token: token}, nil
}
