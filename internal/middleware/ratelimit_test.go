package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BurstThenBlocks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(0, 3) // sem reposição: só o burst passa

	r := gin.New()
	r.POST("/x", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "requisição %d dentro do burst", i+1)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too_many_requests")
}

func TestRateLimiter_PerIPIsolation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(0, 1)

	r := gin.New()
	r.POST("/x", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodPost, "/x", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(first, req1)
	assert.Equal(t, http.StatusOK, first.Code)

	blocked := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/x", nil)
	req2.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(blocked, req2)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	other := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPost, "/x", nil)
	req3.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(other, req3)
	assert.Equal(t, http.StatusOK, other.Code, "IP diferente tem limite próprio")
}

func TestNewRateLimiter_BurstFloor(t *testing.T) {
	limiter := NewRateLimiter(5, 0)
	assert.Equal(t, 5, limiter.burst)
}
