package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	captchaUsecases "ringgate/internal/application/captcha/usecases"
	userUsecases "ringgate/internal/application/user/usecases"
	"ringgate/internal/infrastructure/auth"
	"ringgate/internal/infrastructure/config"
	"ringgate/internal/infrastructure/repository"
	"ringgate/internal/interfaces/http/handlers"
	"ringgate/internal/interfaces/http/middleware"
	"ringgate/internal/interfaces/http/routes"
	"ringgate/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates the HTTP router with all dependencies.
// redisClient may be nil, in which case IP rate limiting is disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	sessionRepo := repository.NewCaptchaSessionRepository(db)
	userRepo := repository.NewUserRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	sessionTTL := time.Duration(cfg.Captcha.SessionTTLMinutes) * time.Minute
	tokenTTL := time.Duration(cfg.Captcha.TokenTTLMinutes) * time.Minute

	createChallengeUC := captchaUsecases.NewCreateChallengeUseCase(sessionRepo, sessionTTL, log)
	verifyChallengeUC := captchaUsecases.NewVerifyChallengeUseCase(sessionRepo, log)
	redeemTokenUC := captchaUsecases.NewRedeemTokenUseCase(sessionRepo, tokenTTL, log)

	registerUC := userUsecases.NewRegisterWithPasswordUseCase(userRepo, hasher, log)
	loginUC := userUsecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtService, log)

	captchaHandler := handlers.NewCaptchaHandler(createChallengeUC, verifyChallengeUC, log)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)

	captchaGate := middleware.NewCaptchaGate(redeemTokenUC, log)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupCaptchaRoutes(engine, &routes.CaptchaRouteConfig{
		CaptchaHandler: captchaHandler,
		RateLimiter:    rateLimiter,
	})
	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		CaptchaGate:    captchaGate,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
	})

	return &Router{engine: engine}, nil
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
