package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func setupRateLimitedRouter(t *testing.T, client *redis.Client, cfg RateLimiterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(client, cfg, zaptest.NewLogger(t)))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := setupRateLimitedRouter(t, nil, RateLimiterConfig{Enabled: false})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_EnforcesBurstCapacity(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	r := setupRateLimitedRouter(t, client, RateLimiterConfig{
		RequestsPerSecond: 0.01,
		BurstCapacity:     1,
		Enabled:           true,
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Bucket holds a single token and refills far too slowly for a
	// second request in the same instant.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	mr.Close()

	r := setupRateLimitedRouter(t, client, RateLimiterConfig{
		RequestsPerSecond: 0.01,
		BurstCapacity:     1,
		Enabled:           true,
	})

	// With Redis unreachable every request goes through.
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
