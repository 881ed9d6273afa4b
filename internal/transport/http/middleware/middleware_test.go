package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appCtx "github.com/baechuer/hbnb-service/internal/pkg/context"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestRequestID(t *testing.T) {
	t.Run("keeps_incoming_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXRequestID, "req-1")
		rr := httptest.NewRecorder()

		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "req-1", appCtx.GetRequestID(r.Context()))
		})).ServeHTTP(rr, req)

		assert.Equal(t, "req-1", rr.Header().Get(HeaderXRequestID))
	})

	t.Run("mints_id_when_absent", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RequestID(http.HandlerFunc(ok)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, rr.Header().Get(HeaderXRequestID), 36)
	})
}

func TestAccessLog_WritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	prev := zlog.Logger
	zlog.Logger = zerolog.New(&buf)
	t.Cleanup(func() { zlog.Logger = prev })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/states", nil)
	req = req.WithContext(appCtx.WithRequestID(req.Context(), "req-9"))
	rr := httptest.NewRecorder()

	AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("{}"))
	})).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"message":"http_request"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"request_id":"req-9"`)
	assert.Contains(t, out, `"bytes":2`)
}

func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	SecurityHeaders(http.HandlerFunc(ok)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))
}

func TestMetrics_PassesThrough(t *testing.T) {
	rr := httptest.NewRecorder()
	Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

type countingLimiter struct {
	seen  map[string]int
	err   error
	calls int
}

func (c *countingLimiter) AllowRequest(ctx context.Context, ip string, limit int, window time.Duration) (bool, error) {
	c.calls++
	if c.err != nil {
		return false, c.err
	}
	c.seen[ip]++
	return c.seen[ip] <= limit, nil
}

func TestRateLimitByIP(t *testing.T) {
	t.Run("blocks_after_limit", func(t *testing.T) {
		l := &countingLimiter{seen: map[string]int{}}
		h := RateLimitByIP(l, 2, time.Minute)(http.HandlerFunc(ok))

		codes := []int{}
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:5555"
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)
			if rr.Code == http.StatusTooManyRequests {
				assert.Equal(t, "60", rr.Header().Get("Retry-After"))
				assert.Contains(t, rr.Body.String(), `"rate_limited"`)
			}
		}
		assert.Equal(t, []int{200, 200, 429}, codes)
		assert.Equal(t, 3, l.seen["10.0.0.1"])
	})

	t.Run("limiter_error_fails_open", func(t *testing.T) {
		l := &countingLimiter{err: errors.New("redis down")}
		rr := httptest.NewRecorder()
		RateLimitByIP(l, 1, time.Minute)(http.HandlerFunc(ok)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, 1, l.calls)
	})

	t.Run("nil_limiter_is_passthrough", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RateLimitByIP(nil, 1, time.Minute)(http.HandlerFunc(ok)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.7:41000"
	assert.Equal(t, "192.168.1.7", clientIP(req))

	req.RemoteAddr = "192.168.1.8"
	assert.Equal(t, "192.168.1.8", clientIP(req))
}
