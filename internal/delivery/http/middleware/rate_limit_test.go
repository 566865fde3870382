package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adamcc31/devconnect-api/config"
	"github.com/adamcc31/devconnect-api/internal/delivery/http/middleware"
	"github.com/adamcc31/devconnect-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
}

// Redis is never initialized in tests, so every counter lives in the
// in-memory fallback.
func serve(r *gin.Engine, method, path, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = ip + ":54321"
	r.ServeHTTP(w, req)
	return w
}

func TestStrictRateLimitUsesConfiguredThreshold(t *testing.T) {
	cfg := &config.Config{
		RateLimitWindowSeconds:  60,
		RateLimitLoginThreshold: 2,
	}

	r := gin.New()
	r.POST("/auth", middleware.StrictRateLimitMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := serve(r, http.MethodPost, "/auth", "10.1.0.1")
	assert.Equal(t, http.StatusOK, first.Code)
	// The advertised limit is the configured one, not a built-in default.
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/auth", "10.1.0.1").Code)

	third := serve(r, http.MethodPost, "/auth", "10.1.0.1")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}

func TestGlobalRateLimitUsesConfiguredThreshold(t *testing.T) {
	cfg := &config.Config{
		RateLimitWindowSeconds:   60,
		RateLimitGlobalThreshold: 3,
	}

	r := gin.New()
	r.GET("/profile", middleware.GlobalRateLimitMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/profile", "10.2.0.1").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/profile", "10.2.0.1").Code)

	// Counters are keyed per client, so another address is unaffected.
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/profile", "10.2.0.2").Code)
}
