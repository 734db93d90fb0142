package routes

import (
	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, migrationHandler *handler.MigrationHandler) {
	// GET /healthz
	router.GET("/healthz", migrationHandler.Health)

	// GET /migrations
	router.GET("/migrations", migrationHandler.ListMigrations)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Request id first so the other middlewares can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
}

// NewRouter builds a gin engine with middlewares and routes
func NewRouter(migrationHandler *handler.MigrationHandler, logger coreport.Logger, timeProvider coreport.TimeProvider) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, timeProvider)
	SetupRoutes(router, migrationHandler)
	return router
}
