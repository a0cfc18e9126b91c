package routes

import (
	"github.com/gin-gonic/gin"

	"ringgate/internal/interfaces/http/handlers"
	"ringgate/internal/interfaces/http/middleware"
)

// CaptchaRouteConfig holds dependencies for captcha routes.
type CaptchaRouteConfig struct {
	CaptchaHandler *handlers.CaptchaHandler
	RateLimiter    *middleware.RateLimiter
}

// SetupCaptchaRoutes configures challenge creation and verification routes.
// Both are public but rate limited per client IP when a limiter is present.
func SetupCaptchaRoutes(engine *gin.Engine, cfg *CaptchaRouteConfig) {
	captcha := engine.Group("/captcha")
	if cfg.RateLimiter != nil {
		captcha.Use(cfg.RateLimiter.Limit())
	}
	{
		captcha.POST("/challenge", cfg.CaptchaHandler.CreateChallenge)
		captcha.POST("/verify", cfg.CaptchaHandler.VerifyChallenge)
	}
}
