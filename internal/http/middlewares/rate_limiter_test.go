package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok, "third request in the window should be rejected")

	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "other clients have their own bucket")

	now = now.Add(time.Minute + time.Second)
	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "a new window resets the count")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func serve(t *testing.T, mw echo.MiddlewareFunc) int {
	t.Helper()

	e := echo.New()
	e.Use(mw)
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_Middleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := RateLimiter(NewMemoryLimiter(1, time.Minute), logger)

	assert.Equal(t, http.StatusNoContent, serve(t, mw))
	assert.Equal(t, http.StatusTooManyRequests, serve(t, mw))
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := RateLimiter(failingLimiter{}, logger)

	assert.Equal(t, http.StatusNoContent, serve(t, mw))
}

func TestMemoryLimiter_SweepsExpiredBuckets(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(5, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, err := l.Allow(ctx, ip)
		require.NoError(t, err)
	}
	assert.Len(t, l.buckets, 3)

	now = now.Add(2 * time.Minute)
	ok, err := l.Allow(ctx, "10.0.0.4")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "10.0.0.4")
}
