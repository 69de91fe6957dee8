package providers

import (
	"context"

	"weathercards.app/models"
	"weathercards.app/providers/cache"
)

// WeatherProvider defines the interface for current-weather lookups
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, location string) (*models.WeatherObservation, error)
}

// TimezoneProvider defines the interface for coordinate timezone lookups
type TimezoneProvider interface {
	Timezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error)
}

// Store is an alias to avoid repeating the cache import path
type Store = cache.Store
