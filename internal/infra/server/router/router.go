// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/print-shop/ledger/internal/integration/entrypoint/controller"
	"github.com/print-shop/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	sourceController      *controller.SourceController
	transactionController *controller.TransactionController
	reportController      *controller.ReportController
	exportRateLimiter     *middleware.RateLimiter
	logger                *slog.Logger
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	sourceController *controller.SourceController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
	exportRateLimiter *middleware.RateLimiter,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		sourceController:      sourceController,
		transactionController: transactionController,
		reportController:      reportController,
		exportRateLimiter:     exportRateLimiter,
		logger:                logger,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger(r.logger))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.GET("/:id", r.categoryController.Get)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		sources := v1.Group("/sources")
		{
			sources.GET("", r.sourceController.List)
			sources.GET("/:id", r.sourceController.Get)
			sources.POST("", r.sourceController.Create)
			sources.PATCH("/:id", r.sourceController.Update)
			sources.DELETE("/:id", r.sourceController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/summary", r.reportController.Summary)
			reports.GET("/periods", r.reportController.Periods)

			export := []gin.HandlerFunc{r.reportController.Export}
			if r.exportRateLimiter != nil {
				export = append([]gin.HandlerFunc{r.exportRateLimiter.Middleware()}, export...)
			}
			reports.GET("/summary/export", export...)
		}
	}
}
