//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"pass-config-engine/internal/handler/httperr"
	"pass-config-engine/internal/handler/middleware"
	"pass-config-engine/internal/pkg/config"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.CORS = config.CORSConfig{
		AllowOrigins:  []string{"http://editor.example.com"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.NewCORSMiddleware(cfg.CORS))
	r.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	r.Use(middleware.ErrorHandler())

	r.GET("/drafts/:sessionId", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})
	r.GET("/missing", func(c *gin.Context) {
		httperr.FromError(c, errs.NotFound(errors.New("configuration not found")))
	})
	r.GET("/raw-error", func(c *gin.Context) {
		_ = c.Error(errors.New("untyped"))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter(t)

	t.Run("incoming id is kept and echoed", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/drafts/abc", nil, httptest.WithRequestID("editor-42"))

		var body struct {
			RequestID string `json:"request_id"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, "editor-42", body.RequestID)
		assert.Equal(t, "editor-42", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/drafts/abc", nil)
		id := w.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		assert.Len(t, strings.Split(id, "-"), 2)
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		long := strings.Repeat("x", 65)
		w := httptest.PerformRequest(t, r, http.MethodGet, "/drafts/abc", nil, httptest.WithRequestID(long))
		assert.NotEqual(t, long, w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestErrorHandling(t *testing.T) {
	r := newRouter(t)

	t.Run("panic becomes a 500 envelope", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("categorised error keeps its status", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/missing", nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "configuration not found")
	})

	t.Run("private error falls back to 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/raw-error", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCORSExposesLocation(t *testing.T) {
	r := newRouter(t)

	w := httptest.PerformRequest(t, r, http.MethodGet, "/drafts/abc", nil,
		httptest.WithHeader("Origin", "http://editor.example.com"))

	require.Equal(t, http.StatusOK, w.Code)
	exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "location")
	assert.Contains(t, exposed, "x-request-id")
	assert.Contains(t, exposed, "content-length")
}
