package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rateLimitOutcomes *prometheus.CounterVec
	rateLimitOnce     sync.Once
)

// RateLimitMetrics counts rate limiter decisions by outcome
// ("allowed" | "limited").
type RateLimitMetrics struct {
	outcomes *prometheus.CounterVec
}

func NewRateLimitMetrics() *RateLimitMetrics {
	rateLimitOnce.Do(func() {
		rateLimitOutcomes = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathercards_ratelimit_decisions_total",
				Help: "The total number of rate limiter decisions by outcome",
			},
			[]string{"outcome"},
		)
	})
	return &RateLimitMetrics{outcomes: rateLimitOutcomes}
}

func (m *RateLimitMetrics) RecordAllowed() {
	m.outcomes.WithLabelValues("allowed").Inc()
}

func (m *RateLimitMetrics) RecordLimited() {
	m.outcomes.WithLabelValues("limited").Inc()
}
