package ratelimit

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bornholm/navbar/internal/syncx"
	"github.com/bornholm/navbar/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type client struct {
	limiter *rate.Limiter
	// Unix nanoseconds of the last request
	lastSeen atomic.Int64
}

type RateLimiter struct {
	rate    rate.Limit
	burst   int
	clients syncx.Map[string, *client]
	now     func() time.Time
}

type GetClientKeyFunc func(r *http.Request) (string, error)

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

func (l *RateLimiter) Allow(clientKey string) bool {
	c, _ := l.clients.LoadOrStore(clientKey, &client{limiter: rate.NewLimiter(l.rate, l.burst)})
	c.lastSeen.Store(l.now().UnixNano())
	return c.limiter.Allow()
}

// Evict forgets the clients without any request for longer than ttl and
// returns how many were removed.
func (l *RateLimiter) Evict(ttl time.Duration) int {
	deadline := l.now().Add(-ttl).UnixNano()
	evicted := 0

	l.clients.Range(func(key string, c *client) bool {
		if c.lastSeen.Load() < deadline {
			l.clients.Delete(key)
			evicted++
		}

		return true
	})

	return evicted
}

// Run evicts idle clients every ttl until ctx is done.
func (l *RateLimiter) Run(ctx context.Context, ttl time.Duration) {
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := l.Evict(ttl); evicted > 0 {
				slog.DebugContext(ctx, "evicted idle rate limited clients", slog.Int("clients", evicted))
			}
		}
	}
}

// RemoteAddr keys clients by the host part of the request remote address.
func RemoteAddr(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return host, nil
}

func New(rate rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate,
		burst: burst,
		now:   time.Now,
	}
}
