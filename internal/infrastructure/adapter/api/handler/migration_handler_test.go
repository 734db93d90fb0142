package handler

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	statuses []entity.UnitStatus
	err      error
}

func (s *stubRunner) MigrateUp(context.Context, string) (*entity.MigrationReport, error) {
	return nil, errors.New("not used")
}

func (s *stubRunner) MigrateDown(context.Context, string) (*entity.MigrationReport, error) {
	return nil, errors.New("not used")
}

func (s *stubRunner) Status(context.Context) iter.Seq2[entity.UnitStatus, error] {
	return func(yield func(entity.UnitStatus, error) bool) {
		if s.err != nil {
			yield(entity.UnitStatus{}, s.err)
			return
		}
		for _, st := range s.statuses {
			if !yield(st, nil) {
				return
			}
		}
	}
}

type stubHealth struct{ err error }

var _ persistence.HealthChecker = stubHealth{}

func (s stubHealth) Check(context.Context) error { return s.err }

func (s stubHealth) Stats() (persistence.PoolStats, error) {
	return persistence.PoolStats{MaxOpenConnections: 1, OpenConnections: 1, Idle: 1}, nil
}

func setupRouter(h *MigrationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/migrations", h.ListMigrations)
	router.GET("/healthz", h.Health)
	return router
}

func TestListMigrations(t *testing.T) {
	appliedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	runner := &stubRunner{statuses: []entity.UnitStatus{
		{Name: "m20220101_000000_create_schema_migrations", State: entity.StateApplied, AppliedAt: &appliedAt},
		{Name: "m20220101_000001_create_table", State: entity.StatePending},
	}}
	router := setupRouter(NewMigrationHandler(runner, stubHealth{}, logger.NewNoopLogger()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/migrations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"name":"m20220101_000000_create_schema_migrations","applied":true,"appliedAt":"2024-05-01T12:00:00Z"},
		{"name":"m20220101_000001_create_table","applied":false,"appliedAt":null}
	]`, w.Body.String())
}

func TestListMigrationsEmptyRegistry(t *testing.T) {
	router := setupRouter(NewMigrationHandler(&stubRunner{}, stubHealth{}, logger.NewNoopLogger()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/migrations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListMigrationsStoreError(t *testing.T) {
	runner := &stubRunner{err: domainerr.ErrRecordStore}
	router := setupRouter(NewMigrationHandler(runner, stubHealth{}, logger.NewNoopLogger()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/migrations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domainerr.ExitCodeExecution, resp.Code)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"ok","pool":{"openConnections":1,"inUse":0,"idle":1,"waitCount":0}}`},
		{"unavailable", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"unavailable","error":"connection refused"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(NewMigrationHandler(&stubRunner{}, stubHealth{err: tt.err}, logger.NewNoopLogger()))

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
