package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/baechuer/hbnb-service/internal/domain"
	"github.com/baechuer/hbnb-service/internal/metrics"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
)

// Limiter decides whether ip may make another request in the current window.
type Limiter interface {
	AllowRequest(ctx context.Context, ip string, limit int, window time.Duration) (bool, error)
}

// RateLimitByIP rejects requests over limit per window with 429. Limiter
// errors let the request through.
func RateLimitByIP(l Limiter, limit int, window time.Duration) func(http.Handler) http.Handler {
	if window <= 0 {
		window = time.Minute
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil {
				next.ServeHTTP(w, r)
				return
			}

			ok, err := l.AllowRequest(r.Context(), clientIP(r), limit, window)
			if err != nil || ok {
				next.ServeHTTP(w, r)
				return
			}

			metrics.RecordRateLimited()
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			response.Err(w, r, domain.ErrRateLimited("too many requests"))
		})
	}
}

// clientIP expects middleware.RealIP to have rewritten RemoteAddr already.
func clientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
		return host
	}
	return addr
}
