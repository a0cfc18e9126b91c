package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"ringgate/internal/shared/logger"
	"ringgate/internal/shared/utils"
)

// maxGateBodyBytes bounds how much of the request body the gate will buffer.
const maxGateBodyBytes = 1 << 20

type redeemTokenUseCase interface {
	Execute(ctx context.Context, token string) error
}

// CaptchaGate guards protected endpoints behind a redeemed CAPTCHA token.
// The token travels in the JSON request body so the gate buffers the body,
// extracts the token and restores the body for the downstream handler.
type CaptchaGate struct {
	redeemUC redeemTokenUseCase
	logger   logger.Interface
}

func NewCaptchaGate(redeemUC redeemTokenUseCase, logger logger.Interface) *CaptchaGate {
	return &CaptchaGate{
		redeemUC: redeemUC,
		logger:   logger,
	}
}

// Require returns a middleware that consumes the captchaToken body field
// before the handler runs. Redemption is fail-closed: any failure aborts the
// request and the handler never executes.
func (g *CaptchaGate) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxGateBodyBytes))
		if err != nil {
			g.logger.Warnw("failed to read request body for captcha gate", "error", err)
			utils.ErrorResponse(c, 400, "invalid request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var envelope struct {
			CaptchaToken string `json:"captchaToken"`
		}
		// A malformed body leaves the token empty; the use case rejects it.
		_ = json.Unmarshal(body, &envelope)

		if err := g.redeemUC.Execute(c.Request.Context(), envelope.CaptchaToken); err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
