package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bizledger/cmd/docs"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	apiLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}
	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}

	v1 := r.Group("/api/v1", middleware.RateLimit(apiLimiter))
	registerAuthRoutes(v1, services.Auth, middleware.RateLimit(loginLimiter))

	// Everything below requires a valid access token.
	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	registerAccountRoutes(authed, services.Account, adminOnly)
	registerJournalRoutes(authed, services.Journal, adminOnly)
	registerReportingRoutes(authed, services.Reporting)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cc.AllowOrigins = nil
		cc.AllowAllOrigins = true
		cc.AllowCredentials = false
	}
	return cc
}
