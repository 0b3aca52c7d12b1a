package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware_InjectsLogger(t *testing.T) {
	router := gin.New()
	router.Use(StructuredLoggingMiddleware(slog.Default()))

	var fromGin, fromRequest *slog.Logger
	router.GET("/ping", func(c *gin.Context) {
		fromGin = GetLogger(c)
		fromRequest = GetLoggerFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	require.NotNil(t, fromRequest)
	assert.Same(t, fromGin, fromRequest)
}

func TestStructuredLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	router := gin.New()
	router.Use(StructuredLoggingMiddleware(slog.Default()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestGetLoggerFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetLoggerFromContext(req.Context()))
}

func TestRateLimit(t *testing.T) {
	l, err := NewLimiter("2-M")
	require.NoError(t, err)

	router := gin.New()
	router.Use(RateLimit(l))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := NewLimiter("lots")
	assert.Error(t, err)
}
