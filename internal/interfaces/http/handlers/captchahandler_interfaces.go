package handlers

import (
	"context"

	captchadto "ringgate/internal/application/captcha/dto"
	"ringgate/internal/application/captcha/usecases"
)

// Use case interfaces for CaptchaHandler

type createChallengeUseCase interface {
	Execute(ctx context.Context, clientIP string) (*captchadto.ChallengeDTO, error)
}

type verifyChallengeUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyChallengeCommand) (*captchadto.VerifyResultDTO, error)
}
