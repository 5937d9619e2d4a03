package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/analyses"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/server/middleware"
	"resume-analyzer/internal/shared/server/respond"
)

// Reads are cheaper than analyses, so their bucket is this many times larger.
const readBudgetFactor = 4

// RouterDeps holds dependencies for routing.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(rateLimitConfig(deps.Config)))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return middleware.RateLimitConfig{}
	}
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			middleware.GroupWrite: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			middleware.GroupRead:  {Rate: cfg.RateLimitRPS * readBudgetFactor, Burst: cfg.RateLimitBurst * readBudgetFactor},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
