// Package ratelimit implements a fixed-window per-client request budget
// backed by an expiring counter in the shared cache store.
package ratelimit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"weathercards.app/metrics"
	"weathercards.app/providers/cache"
)

// Limiter tracks a remaining-request counter per client key. The counter
// expires with the window, so an absent counter means a fresh window with a
// full budget. The limiter is advisory: two concurrent requests may both
// read the same counter value and both decrement, so enforcement is
// approximate rather than exact.
type Limiter struct {
	store   cache.Store
	max     int
	window  time.Duration
	metrics *metrics.RateLimitMetrics
}

func New(store cache.Store, max int, window time.Duration, m *metrics.RateLimitMetrics) *Limiter {
	return &Limiter{
		store:   store,
		max:     max,
		window:  window,
		metrics: m,
	}
}

// Allow reports whether the client may proceed, consuming one unit of budget
// when it does. The first request of a window initializes the counter to
// max-1 (its own unit already spent), so exactly max requests pass before
// the limiter trips.
func (l *Limiter) Allow(ctx context.Context, clientKey string) bool {
	key := "ratelimit:" + clientKey

	data, found := l.store.Get(ctx, key)
	if !found {
		l.store.Set(ctx, key, []byte(strconv.Itoa(l.max-1)), l.window)
		l.metrics.RecordAllowed()
		return true
	}

	remaining, err := strconv.Atoi(string(data))
	if err != nil {
		// Corrupt counter: start a fresh window rather than lock the client out
		slog.Error("rate limit counter unreadable, resetting", "key", key, "value", string(data))
		l.store.Set(ctx, key, []byte(strconv.Itoa(l.max-1)), l.window)
		l.metrics.RecordAllowed()
		return true
	}

	if remaining <= 0 {
		l.metrics.RecordLimited()
		return false
	}

	l.store.Set(ctx, key, []byte(strconv.Itoa(remaining-1)), l.window)
	l.metrics.RecordAllowed()
	return true
}
