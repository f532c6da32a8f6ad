package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 -> always deny
	r := gin.New()
	r.Use(Middleware(lim, ByIP))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "Rate limit exceeded. Try again later.", body["error"])
	require.Contains(t, body, "reset_time")
	require.Equal(t, float64(0), body["limit"])
	require.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestMiddleware_AllowsWithinLimitAndSetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(2, time.Minute)
	r := gin.New()
	r.Use(Middleware(lim, ByIP))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, w.Code)
	require.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, w.Code)

	// Third request from the same client exceeds the limit.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 429, w.Code)
}

func TestMiddleware_ByUserKeysOnUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(1, time.Minute)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Set("userID", c.Query("u"))
	}, Middleware(lim, ByUser), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// Two different users from the same IP each get their own budget.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/?u=alice", nil))
	require.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/?u=bob", nil))
	require.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/?u=alice", nil))
	require.Equal(t, 429, w.Code)
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	lim := New(1, 50*time.Millisecond)
	require.True(t, lim.Allow("k"))
	require.False(t, lim.Allow("k"))

	time.Sleep(60 * time.Millisecond)
	require.True(t, lim.Allow("k"))
}

func TestRateLimiter_CleanupDropsExpiredKeys(t *testing.T) {
	lim := New(5, 10*time.Millisecond)
	require.True(t, lim.Allow("k"))

	time.Sleep(20 * time.Millisecond)
	lim.Cleanup()

	lim.mu.Lock()
	_, exists := lim.requests["k"]
	lim.mu.Unlock()
	require.False(t, exists)
}
