package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 2026-01-01T00:00:00Z, slot 29453760 for a one minute window.
var fixedNow = time.Unix(1767225600, 0)

func newMockedRedisLimiter(t *testing.T, limit int, window time.Duration) (*RedisLimiter, *mock.Client) {
	t.Helper()

	client := mock.NewClient(gomock.NewController(t))
	l := NewRedisLimiter(client, "taskflow:ratelimit", limit, window)
	l.now = func() time.Time { return fixedNow }
	return l, client
}

func TestRedisLimiter_ExpiresOnFirstHitOnly(t *testing.T) {
	l, client := newMockedRedisLimiter(t, 2, time.Minute)
	ctx := context.Background()
	key := "taskflow:ratelimit:10.0.0.1:29453760"

	gomock.InOrder(
		client.EXPECT().Do(gomock.Any(), mock.Match("INCR", key)).Return(mock.Result(mock.RedisInt64(1))),
		client.EXPECT().Do(gomock.Any(), mock.Match("EXPIRE", key, "60")).Return(mock.Result(mock.RedisInt64(1))),
		client.EXPECT().Do(gomock.Any(), mock.Match("INCR", key)).Return(mock.Result(mock.RedisInt64(2))),
		client.EXPECT().Do(gomock.Any(), mock.Match("INCR", key)).Return(mock.Result(mock.RedisInt64(3))),
	)

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok, "third request in the window should be rejected")
}

func TestRedisLimiter_IncrErrorFailsOpen(t *testing.T) {
	l, client := newMockedRedisLimiter(t, 1, time.Minute)
	down := errors.New("connection refused")

	client.EXPECT().Do(gomock.Any(), mock.Match("INCR", "taskflow:ratelimit:192.0.2.1:29453760")).
		Return(mock.ErrorResult(down)).
		Times(2)

	_, err := l.Allow(context.Background(), "192.0.2.1")
	assert.ErrorIs(t, err, down)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, http.StatusNoContent, serve(t, RateLimiter(l, logger)))
}

func TestRedisLimiter_SubSecondWindowRoundsUp(t *testing.T) {
	l, client := newMockedRedisLimiter(t, 1, 500*time.Millisecond)
	assert.Equal(t, int64(1), l.window)

	key := "taskflow:ratelimit:10.0.0.1:1767225600"
	assert.Equal(t, key, l.windowKey("10.0.0.1"))

	gomock.InOrder(
		client.EXPECT().Do(gomock.Any(), mock.Match("INCR", key)).Return(mock.Result(mock.RedisInt64(1))),
		client.EXPECT().Do(gomock.Any(), mock.Match("EXPIRE", key, "1")).Return(mock.Result(mock.RedisInt64(1))),
	)

	ok, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, int64(2), NewRedisLimiter(nil, "p", 1, 1500*time.Millisecond).window)
}

// Needs a reachable Redis; set TEST_REDIS_ADDR (e.g. 127.0.0.1:6379) to run.
func TestRedisLimiter_FixedWindow(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{InitAddress: []string{addr}})
	require.NoError(t, err)
	defer client.Close()

	l := NewRedisLimiter(client, "taskflow-test:"+uuid.NewString(), 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
}
