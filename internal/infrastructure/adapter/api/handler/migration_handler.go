package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// MigrationHandler serves the read-only migration status endpoints
type MigrationHandler struct {
	runner usecase.MigrationRunner
	health persistence.HealthChecker
	logger coreport.Logger
}

// NewMigrationHandler creates a new migration handler instance
func NewMigrationHandler(
	runner usecase.MigrationRunner,
	health persistence.HealthChecker,
	logger coreport.Logger,
) *MigrationHandler {
	return &MigrationHandler{
		runner: runner,
		health: health,
		logger: logger,
	}
}

// ListMigrations handles the GET /migrations endpoint
func (h *MigrationHandler) ListMigrations(c *gin.Context) {
	statuses := make([]dto.MigrationStatusResponse, 0)

	for status, err := range h.runner.Status(c.Request.Context()) {
		if err != nil {
			fields := domainerr.LogFieldsOf(err)
			fields["path"] = c.Request.URL.Path
			h.logger.Error("Error listing migrations", fields)

			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ExitCode(err),
				Message: "Failed to read migration records",
			})
			return
		}
		statuses = append(statuses, dto.NewMigrationStatusResponse(status))
	}

	c.JSON(http.StatusOK, statuses)
}

// Health handles the GET /healthz endpoint
func (h *MigrationHandler) Health(c *gin.Context) {
	if err := h.health.Check(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status: "unavailable",
			Error:  err.Error(),
		})
		return
	}

	resp := dto.HealthResponse{Status: "ok"}
	if stats, err := h.health.Stats(); err == nil {
		resp.Pool = &dto.PoolResponse{
			OpenConnections: stats.OpenConnections,
			InUse:           stats.InUse,
			Idle:            stats.Idle,
			WaitCount:       stats.WaitCount,
		}
	}
	c.JSON(http.StatusOK, resp)
}
