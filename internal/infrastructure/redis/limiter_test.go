package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &Limiter{Client: rdb}, mr
}

func TestLimiter_AllowRequest_FixedWindow(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()

	ip := "1.2.3.4"
	limit := 3
	window := 2 * time.Second

	for i := 0; i < limit; i++ {
		ok, err := l.AllowRequest(ctx, ip, limit, window)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := l.AllowRequest(ctx, ip, limit, window)
	require.NoError(t, err)
	require.False(t, ok, "4th request should be blocked")

	// other clients have their own window
	ok, err = l.AllowRequest(ctx, "5.6.7.8", limit, window)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(window + 100*time.Millisecond)
	ok, err = l.AllowRequest(ctx, ip, limit, window)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLimiter_FailsOpen(t *testing.T) {
	l, mr := newTestLimiter(t)
	mr.Close()

	ok, err := l.AllowRequest(context.Background(), "1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	l, err := NewFromURL(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer l.Close()

	_, err = NewFromURL(context.Background(), "not a url")
	require.Error(t, err)
}

func TestLimiter_PingContext(t *testing.T) {
	l, mr := newTestLimiter(t)
	require.NoError(t, l.PingContext(context.Background()))

	mr.Close()
	require.Error(t, l.PingContext(context.Background()))
}
