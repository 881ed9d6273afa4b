package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
)

const keyPrefix = "hbnb:ratelimit:"

// Limiter is a fixed-window request limiter shared across API replicas.
type Limiter struct {
	Client *redis.Client
}

// NewFromURL parses a redis:// URL and pings the server.
func NewFromURL(ctx context.Context, url string) (*Limiter, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Limiter{Client: rdb}, nil
}

// AllowRequest counts one request for ip in the current window. Redis
// failures fail open.
func (l *Limiter) AllowRequest(ctx context.Context, ip string, limit int, window time.Duration) (bool, error) {
	key := keyPrefix + ip
	count, err := l.Client.Incr(ctx, key).Result()
	if err != nil {
		zlog.Warn().Err(err).Str("ip", ip).Msg("rate limiter unavailable, allowing request")
		return true, nil
	}
	if count == 1 {
		_ = l.Client.Expire(ctx, key, window).Err()
	}
	return count <= int64(limit), nil
}

func (l *Limiter) Close() error {
	return l.Client.Close()
}

// PingContext lets the readiness probe check the limiter backend.
func (l *Limiter) PingContext(ctx context.Context) error {
	return l.Client.Ping(ctx).Err()
}
