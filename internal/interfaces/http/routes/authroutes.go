package routes

import (
	"github.com/gin-gonic/gin"

	"ringgate/internal/interfaces/http/handlers"
	"ringgate/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	CaptchaGate    *middleware.CaptchaGate
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures registration and login routes. Both sit behind
// the captcha gate: the gate consumes the captchaToken body field before the
// handler runs.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if cfg.RateLimiter != nil {
		auth.Use(cfg.RateLimiter.Limit())
	}
	{
		gated := auth.Group("")
		gated.Use(cfg.CaptchaGate.Require())
		{
			gated.POST("/register", cfg.AuthHandler.Register)
			gated.POST("/login", cfg.AuthHandler.Login)
		}

		protected := auth.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.GET("/me", cfg.AuthHandler.Me)
		}
	}
}
