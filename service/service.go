// Package service holds the request-facing business logic in front of the
// providers and the card renderer.
package service

import (
	"context"
	"log/slog"

	"weathercards.app/errors"
	"weathercards.app/models"
	"weathercards.app/providers"
)

// WeatherService handles weather lookup operations
type WeatherService struct {
	provider providers.WeatherProvider
}

// NewWeatherService creates a new weather service with the specified provider
func NewWeatherService(provider providers.WeatherProvider) *WeatherService {
	return &WeatherService{
		provider: provider,
	}
}

// GetWeather retrieves the current weather observation for a location
func (s *WeatherService) GetWeather(ctx context.Context, location string) (*models.WeatherObservation, error) {
	if location == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	observation, err := s.provider.CurrentWeather(ctx, location)
	if err != nil {
		slog.Error("weather provider error", "location", location, "error", err)
		return nil, err
	}

	return observation, nil
}

// TimezoneService handles coordinate timezone lookups
type TimezoneService struct {
	provider providers.TimezoneProvider
}

// NewTimezoneService creates a new timezone service with the specified provider
func NewTimezoneService(provider providers.TimezoneProvider) *TimezoneService {
	return &TimezoneService{
		provider: provider,
	}
}

// GetTimezone retrieves the timezone covering a coordinate pair. A provider
// status of ZERO_RESULTS is an error; any other non-OK status is returned to
// the caller as data.
func (s *TimezoneService) GetTimezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	info, err := s.provider.Timezone(ctx, lat, lon)
	if err != nil {
		slog.Error("timezone provider error", "lat", lat, "lon", lon, "error", err)
		return nil, err
	}

	if info.Status == models.TimezoneStatusZeroResults {
		return nil, errors.NewTimezoneUnavailableError(info.Status)
	}

	return info, nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < 0 || lat > 90 {
		return errors.NewValidationError("lat must be between 0 and 90")
	}
	if lon < -180 || lon > 180 {
		return errors.NewValidationError("lon must be between -180 and 180")
	}
	return nil
}
