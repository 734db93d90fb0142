package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	router := gin.New()
	router.Use(RequestID(), ErrorHandler(log), Logger(log, timeprovider.NewRealTimeProvider()))
	return router
}

func TestRequestIDIsGeneratedOrEchoed(t *testing.T) {
	router := newEngine()
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	router := newEngine()
	router.GET("/boom", func(*gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":1,"message":"Internal server error"}`, w.Body.String())
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Success", statusText(http.StatusOK))
	assert.Equal(t, "Client Error", statusText(http.StatusNotFound))
	assert.Equal(t, "Server Error", statusText(http.StatusServiceUnavailable))
}
