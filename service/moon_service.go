package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weathercards.app/astro"
	"weathercards.app/errors"
	"weathercards.app/models"
	"weathercards.app/providers"
)

// MoonService reports lunar illumination for a coordinate pair. The timezone
// lookup anchors the computation to the location's local instant.
type MoonService struct {
	timezone providers.TimezoneProvider
	now      func() time.Time
}

// NewMoonService creates a new moon service with the specified timezone provider
func NewMoonService(timezone providers.TimezoneProvider) *MoonService {
	return &MoonService{
		timezone: timezone,
		now:      time.Now,
	}
}

// GetMoon computes the moon's current illumination at a coordinate pair
func (s *MoonService) GetMoon(ctx context.Context, lat, lon float64) (*models.MoonInfo, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	tz, err := s.timezone.Timezone(ctx, lat, lon)
	if err != nil {
		slog.Error("timezone provider error", "lat", lat, "lon", lon, "error", err)
		return nil, err
	}
	if tz.Status != models.TimezoneStatusOK {
		return nil, errors.NewTimezoneUnavailableError(tz.Status)
	}

	loc, err := time.LoadLocation(tz.TimeZoneID)
	if err != nil {
		return nil, errors.NewTimezoneUnavailableError(
			fmt.Sprintf("unknown timezone id %q", tz.TimeZoneID))
	}

	return astro.Illumination(s.now().In(loc)), nil
}
