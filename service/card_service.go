package service

import (
	"context"
	"log/slog"
	"time"

	"weathercards.app/errors"
	"weathercards.app/metrics"
	"weathercards.app/providers"
)

// CardService renders weather cards through a short-lived PNG cache, so a
// burst of requests for one location pays for a single render.
type CardService struct {
	renderer CardRenderer
	store    providers.Store
	cacheTTL time.Duration
	metrics  *metrics.CacheMetrics
}

// NewCardService creates a new card service backed by the given renderer and
// rendered-image store.
func NewCardService(renderer CardRenderer, store providers.Store, cacheTTL time.Duration, m *metrics.CacheMetrics) *CardService {
	return &CardService{
		renderer: renderer,
		store:    store,
		cacheTTL: cacheTTL,
		metrics:  m,
	}
}

// GetCard returns the PNG card for a location, rendering it on cache miss
func (s *CardService) GetCard(ctx context.Context, location string) ([]byte, error) {
	if location == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	cacheKey := s.generateCacheKey(location)

	if data, found := s.store.Get(ctx, cacheKey); found {
		slog.Info("card cache hit", "location", location)
		s.metrics.RecordHit()
		return data, nil
	}

	slog.Info("card cache miss", "location", location)
	s.metrics.RecordMiss()

	start := time.Now()
	data, err := s.renderer.Render(ctx, location)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordLatency("render", time.Since(start).Seconds())

	s.store.Set(ctx, cacheKey, data, s.cacheTTL)
	return data, nil
}

func (s *CardService) generateCacheKey(location string) string {
	return "image:" + providers.NormalizeLocation(location)
}
