package usecases

import (
	"context"
	"time"

	"ringgate/internal/application/captcha/dto"
	"ringgate/internal/domain/captcha"
	apperrors "ringgate/internal/shared/errors"
	"ringgate/internal/shared/logger"
)

// CreateChallengeUseCase generates a ring puzzle, persists its answer key
// server-side and returns the geometry to the client.
type CreateChallengeUseCase struct {
	sessions   captcha.ChallengeSessionRepository
	sessionTTL time.Duration
	logger     logger.Interface
}

func NewCreateChallengeUseCase(
	sessions captcha.ChallengeSessionRepository,
	sessionTTL time.Duration,
	logger logger.Interface,
) *CreateChallengeUseCase {
	return &CreateChallengeUseCase{
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Execute creates a new challenge for the given client IP. The session id is
// only returned once the session has been durably persisted.
func (uc *CreateChallengeUseCase) Execute(ctx context.Context, clientIP string) (*dto.ChallengeDTO, error) {
	if clientIP == "" {
		clientIP = "unknown"
	}

	puzzle := captcha.GeneratePuzzle()

	session, err := captcha.NewChallengeSession(clientIP, puzzle.BrokenIndex, uc.sessionTTL)
	if err != nil {
		uc.logger.Errorw("failed to create challenge session", "error", err)
		return nil, apperrors.NewInternalError("failed to create challenge")
	}

	if err := uc.sessions.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist challenge session",
			"session_id", session.ID,
			"error", err,
		)
		return nil, apperrors.NewInternalError("challenge service unavailable")
	}

	uc.logger.Debugw("challenge created",
		"session_id", session.ID,
		"shape_count", len(puzzle.Shapes),
		"client_ip", clientIP,
	)

	return dto.ToChallengeDTO(session, puzzle), nil
}
