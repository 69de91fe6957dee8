package service

import (
	"context"

	"weathercards.app/models"
)

// WeatherServiceInterface defines the interface for weather lookups
type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, location string) (*models.WeatherObservation, error)
}

// TimezoneServiceInterface defines the interface for timezone lookups
type TimezoneServiceInterface interface {
	GetTimezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error)
}

// MoonServiceInterface defines the interface for lunar state lookups
type MoonServiceInterface interface {
	GetMoon(ctx context.Context, lat, lon float64) (*models.MoonInfo, error)
}

// CardServiceInterface defines the interface for rendered-card retrieval
type CardServiceInterface interface {
	GetCard(ctx context.Context, location string) ([]byte, error)
}

// CardRenderer produces PNG card bytes for a location
type CardRenderer interface {
	Render(ctx context.Context, location string) ([]byte, error)
}

// Ensure implementations satisfy interfaces
var _ WeatherServiceInterface = (*WeatherService)(nil)
var _ TimezoneServiceInterface = (*TimezoneService)(nil)
var _ MoonServiceInterface = (*MoonService)(nil)
var _ CardServiceInterface = (*CardService)(nil)
