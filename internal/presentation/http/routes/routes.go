package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipt-api/internal/config"
	"github.com/sangkips/receipt-api/internal/presentation/http/handler"
	"github.com/sangkips/receipt-api/internal/presentation/http/middleware"
	"github.com/sangkips/receipt-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Receipt *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Logger     *zap.Logger
}

// Setup creates the Gin router and registers all routes. The returned stop
// function ends the rate limiter's background cleanup and must be called on shutdown.
func Setup(h *Handlers, deps *Deps) (*gin.Engine, func()) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(rateLimiterConfig(&deps.Cfg.RateLimit))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "ok",
			"service":      deps.Cfg.App.Name,
			"rate_limiter": rateLimiter.Stats(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		api := v1.Group("")
		if deps.Cfg.JWT.Enabled {
			api.Use(middleware.AuthMiddleware(deps.JWTManager))
		}
		api.Use(rateLimiter.Middleware())

		registerReceiptRoutes(api, h)
	}

	return router, rateLimiter.Stop
}

func registerReceiptRoutes(api *gin.RouterGroup, h *Handlers) {
	receipts := api.Group("/receipts")
	{
		receipts.POST("/summary", h.Receipt.Summary)
		receipts.POST("/preview", h.Receipt.Preview)
		receipts.POST("/export", h.Receipt.Export)
	}
}

func rateLimiterConfig(cfg *config.RateLimitConfig) middleware.RateLimiterConfig {
	rl := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rl.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rl.BurstSize = cfg.Requests
	}
	rl.CleanupInterval = 5 * time.Minute
	rl.EntryTTL = 10 * time.Minute
	return rl
}
