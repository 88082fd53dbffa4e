package ratelimit

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/infratech/site/internal/syncx"
	"github.com/infratech/site/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client key.
type RateLimiter struct {
	rate    rate.Limit
	burst   int
	clients syncx.Map[string, *rate.Limiter]
}

type GetClientKeyFunc func(r *http.Request) (string, error)

func (l *RateLimiter) Allow(key string) bool {
	limiter, _ := l.clients.LoadOrStore(key, rate.NewLimiter(l.rate, l.burst))
	return limiter.Allow()
}

// Prune forgets the clients whose bucket is full again, i.e. the clients
// idle for long enough to be indistinguishable from new ones. It returns the
// number of clients still tracked.
func (l *RateLimiter) Prune() int {
	remaining := 0

	l.clients.Range(func(key string, limiter *rate.Limiter) bool {
		if limiter.Tokens() >= float64(l.burst) {
			l.clients.Delete(key)
			return true
		}

		remaining++

		return true
	})

	return remaining
}

// PruneEvery calls Prune every interval until ctx is done.
func (l *RateLimiter) PruneEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remaining := l.Prune()
			slog.DebugContext(ctx, "rate limiter pruned", slog.Int("clients", remaining))
		}
	}
}

func (l *RateLimiter) Middleware(getClientKey GetClientKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			clientKey, err := getClientKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve client key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.Allow(clientKey) {
				slog.WarnContext(ctx, "rate limit exceeded", slog.String("client", clientKey))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientAddress keys requests by the remote host, without its port.
func ClientAddress(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr == "" {
			return "", errors.New("empty remote address")
		}

		// RemoteAddr may already be a bare host when set by a proxy middleware
		return r.RemoteAddr, nil
	}

	return host, nil
}

func New(rate rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate,
		burst: burst,
	}
}
