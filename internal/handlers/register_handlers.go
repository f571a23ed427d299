package handlers

import (
	"fmt"

	"github.com/SscSPs/simple_ledger/cmd/docs"
	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
	"github.com/SscSPs/simple_ledger/internal/dto"
	"github.com/SscSPs/simple_ledger/internal/middleware"
	"github.com/SscSPs/simple_ledger/internal/platform/config"
	"github.com/SscSPs/simple_ledger/internal/utils/money"
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
	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register request validators: %w", err)
	}

	r.GET("/health", func(c *gin.Context) {
		middleware.GetLoggerFromContext(c).Debug("Health check")
		c.String(200, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the rate-limited /api/v1 group and delegates to entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	v1 := r.Group("/api/v1")
	if cfg.RateLimit != "" {
		lim, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		v1.Use(middleware.RateLimit(lim))
	}

	formatter := money.NewFormatter(cfg.CurrencyExponent, cfg.DefaultCurrencyLabel)
	registerAccountRoutes(v1, service.Account)
	registerTransactionRoutes(v1, service.Transaction, formatter)
	registerReportingRoutes(v1, service.Reporting, formatter)
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
