package middlewares

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
)

// WindowCounter counts hits per client within a fixed window.
type WindowCounter interface {
	Incr(ctx context.Context, clientIP string, window time.Duration) (int64, error)
}

// RateLimitMiddleware rejects clients that exceed max requests within
// the window. Requests over the ceiling get an immediate 429; nothing
// is queued. If the counter backend is unreachable the middleware fails
// open, so an analytics outage never takes the site down with it.
func RateLimitMiddleware(counter WindowCounter, max int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := r.RemoteAddr
			if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
				clientIP = host
			}

			count, err := counter.Incr(r.Context(), clientIP, window)
			if err != nil {
				logger.Log.Errorw("rate limit counter unavailable, failing open", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > max {
				logger.Log.Infow("rate limit exceeded", "client_ip", clientIP, "count", count)
				writeEnvelopeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
