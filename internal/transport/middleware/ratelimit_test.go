package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T) (*RateLimiter, *fakeClock) {
	t.Helper()
	rl := NewRateLimiter(time.Hour)
	t.Cleanup(rl.Stop)

	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	rl.now = clock.Now
	return rl, clock
}

func hit(h http.Handler, addr string) int {
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=a", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func TestRateLimiter_BlocksOverBurst(t *testing.T) {
	rl, _ := newTestLimiter(t)
	h := rl.Limit(3)(okHandler())

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1000"), "request %d", i)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	req.RemoteAddr = "1.2.3.4:1000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "21", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_KeysByHostNotPort(t *testing.T) {
	rl, _ := newTestLimiter(t)
	h := rl.Limit(1)(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "1.1.1.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "1.1.1.1:2000"))
	assert.Equal(t, http.StatusOK, hit(h, "2.2.2.2:1000"))
}

func TestRateLimiter_Refill(t *testing.T) {
	rl, clock := newTestLimiter(t)
	h := rl.Limit(60)(okHandler())

	for i := 0; i < 60; i++ {
		require.Equal(t, http.StatusOK, hit(h, "3.3.3.3:1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "3.3.3.3:1"))

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "3.3.3.3:1"))
}

func TestRateLimiter_DisabledIsNil(t *testing.T) {
	rl, _ := newTestLimiter(t)
	assert.Nil(t, rl.Limit(0))
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl, clock := newTestLimiter(t)
	h := rl.Limit(5)(okHandler())
	hit(h, "4.4.4.4:1")

	clock.Advance(idleBucketTTL + time.Second)
	rl.evictIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.buckets)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(time.Hour)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
