package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"weathercards.app/metrics"
	"weathercards.app/models"
)

// WeatherCacheProxy is a read-through cache in front of a WeatherProvider.
// Entries are keyed by the normalized location, so equivalent spellings of
// the same place share one upstream call per TTL window.
type WeatherCacheProxy struct {
	realProvider WeatherProvider
	store        Store
	cacheTTL     time.Duration
	metrics      *metrics.CacheMetrics
}

func NewWeatherCacheProxy(realProvider WeatherProvider, store Store, cacheTTL time.Duration, m *metrics.CacheMetrics) WeatherProvider {
	return &WeatherCacheProxy{
		realProvider: realProvider,
		store:        store,
		cacheTTL:     cacheTTL,
		metrics:      m,
	}
}

func (p *WeatherCacheProxy) CurrentWeather(ctx context.Context, location string) (*models.WeatherObservation, error) {
	cacheKey := p.generateCacheKey(location)

	if data, found := p.store.Get(ctx, cacheKey); found {
		var cached models.WeatherObservation
		if err := json.Unmarshal(data, &cached); err == nil {
			slog.Info("weather cache hit", "location", location)
			p.metrics.RecordHit()
			return &cached, nil
		}
		slog.Error("weather cache unmarshal error, treating as miss", "key", cacheKey)
	}

	slog.Info("weather cache miss", "location", location)
	p.metrics.RecordMiss()

	start := time.Now()
	observation, err := p.realProvider.CurrentWeather(ctx, location)
	if err != nil {
		return nil, err
	}
	p.metrics.RecordLatency("upstream", time.Since(start).Seconds())

	if data, err := json.Marshal(observation); err == nil {
		p.store.Set(ctx, cacheKey, data, p.cacheTTL)
	}

	return observation, nil
}

func (p *WeatherCacheProxy) generateCacheKey(location string) string {
	return "openweathermap:" + NormalizeLocation(location)
}
