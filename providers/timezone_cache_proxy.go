package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"weathercards.app/metrics"
	"weathercards.app/models"
)

// TimezoneCacheProxy is a read-through cache in front of a TimezoneProvider.
// Keys use the literal coordinate pair from the weather observation, not a
// rounded one; nearby-but-distinct coordinates get separate entries.
type TimezoneCacheProxy struct {
	realProvider TimezoneProvider
	store        Store
	cacheTTL     time.Duration
	metrics      *metrics.CacheMetrics
}

func NewTimezoneCacheProxy(realProvider TimezoneProvider, store Store, cacheTTL time.Duration, m *metrics.CacheMetrics) TimezoneProvider {
	return &TimezoneCacheProxy{
		realProvider: realProvider,
		store:        store,
		cacheTTL:     cacheTTL,
		metrics:      m,
	}
}

func (p *TimezoneCacheProxy) Timezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error) {
	cacheKey := p.generateCacheKey(lat, lon)

	if data, found := p.store.Get(ctx, cacheKey); found {
		var cached models.TimezoneInfo
		if err := json.Unmarshal(data, &cached); err == nil {
			slog.Info("timezone cache hit", "lat", lat, "lon", lon)
			p.metrics.RecordHit()
			return &cached, nil
		}
		slog.Error("timezone cache unmarshal error, treating as miss", "key", cacheKey)
	}

	slog.Info("timezone cache miss", "lat", lat, "lon", lon)
	p.metrics.RecordMiss()

	start := time.Now()
	info, err := p.realProvider.Timezone(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	p.metrics.RecordLatency("upstream", time.Since(start).Seconds())

	if data, err := json.Marshal(info); err == nil {
		p.store.Set(ctx, cacheKey, data, p.cacheTTL)
	}

	return info, nil
}

func (p *TimezoneCacheProxy) generateCacheKey(lat, lon float64) string {
	return fmt.Sprintf("googleapi:timezone:%s,%s", formatCoord(lat), formatCoord(lon))
}
