package card

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"weathercards.app/assets"
	"weathercards.app/errors"
	"weathercards.app/models"
)

// stubLoader backs the registry with synthetic sprites and a real typeface
type stubLoader struct{}

func (stubLoader) LoadImage(path string) (image.Image, error) {
	return solidImage(CanvasWidth, CanvasHeight, color.RGBA{R: 40, G: 40, B: 80, A: 255}), nil
}

func (stubLoader) LoadFont(path string) (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
}

func newTestRegistry(t *testing.T) *assets.Registry {
	t.Helper()
	registry := assets.NewRegistry(stubLoader{})
	require.NoError(t, assets.RegisterAll(registry, "assets"))
	_, err := registry.LoadAll()
	require.NoError(t, err)
	return registry
}

type fakeWeather struct {
	observation *models.WeatherObservation
	err         error
}

func (f *fakeWeather) CurrentWeather(ctx context.Context, location string) (*models.WeatherObservation, error) {
	return f.observation, f.err
}

type fakeTimezone struct {
	info *models.TimezoneInfo
	err  error
}

func (f *fakeTimezone) Timezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error) {
	return f.info, f.err
}

func londonObservation(now time.Time) *models.WeatherObservation {
	return &models.WeatherObservation{
		Name:  "London",
		Coord: models.Coordinates{Lat: 51.5, Lon: -0.12},
		Weather: []models.WeatherCondition{
			{Main: "Rain", Description: "light rain"},
		},
		Main: models.MainMetrics{Temp: 280, Humidity: 81},
		Wind: models.Wind{Speed: 4.1},
		Sys: models.SysInfo{
			Country: "GB",
			Sunrise: now.Add(-6 * time.Hour).Unix(),
			Sunset:  now.Add(6 * time.Hour).Unix(),
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	now := time.Date(2024, time.June, 1, 14, 0, 0, 0, time.UTC)

	renderer := NewRenderer(
		&fakeWeather{observation: londonObservation(now)},
		&fakeTimezone{info: &models.TimezoneInfo{Status: models.TimezoneStatusOK, TimeZoneID: "UTC"}},
		newTestRegistry(t),
	)
	renderer.now = func() time.Time { return now }

	data, err := renderer.Render(context.Background(), "London,UK")
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, CanvasWidth, decoded.Bounds().Dx())
	assert.Equal(t, CanvasHeight, decoded.Bounds().Dy())
}

func TestRenderer_MissingBackdrop(t *testing.T) {
	now := time.Date(2024, time.June, 1, 14, 0, 0, 0, time.UTC)

	// A registry holding only the frame overlay has no day backdrop
	registry := assets.NewRegistry(stubLoader{})
	require.NoError(t, registry.RegisterImage("overlay", "elements/overlay.png"))
	_, err := registry.LoadAll()
	require.NoError(t, err)

	renderer := NewRenderer(
		&fakeWeather{observation: londonObservation(now)},
		&fakeTimezone{info: &models.TimezoneInfo{Status: models.TimezoneStatusOK, TimeZoneID: "UTC"}},
		registry,
	)
	renderer.now = func() time.Time { return now }

	data, err := renderer.Render(context.Background(), "London,UK")
	assert.Nil(t, data)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.MissingAssetError, appErr.Type)
}

func TestRenderer_ErrorPaths(t *testing.T) {
	now := time.Date(2024, time.June, 1, 14, 0, 0, 0, time.UTC)
	registry := newTestRegistry(t)

	t.Run("WeatherFailurePropagates", func(t *testing.T) {
		renderer := NewRenderer(
			&fakeWeather{err: errors.NewNotFoundError("location not found")},
			&fakeTimezone{},
			registry,
		)

		_, err := renderer.Render(context.Background(), "Atlantis")

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.NotFoundError, appErr.Type)
	})

	t.Run("NonOKTimezoneStatus", func(t *testing.T) {
		renderer := NewRenderer(
			&fakeWeather{observation: londonObservation(now)},
			&fakeTimezone{info: &models.TimezoneInfo{Status: models.TimezoneStatusZeroResults}},
			registry,
		)

		_, err := renderer.Render(context.Background(), "London,UK")

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.TimezoneUnavailableError, appErr.Type)
		assert.Equal(t, models.TimezoneStatusZeroResults, appErr.Message)
	})

	t.Run("UnknownTimezoneID", func(t *testing.T) {
		renderer := NewRenderer(
			&fakeWeather{observation: londonObservation(now)},
			&fakeTimezone{info: &models.TimezoneInfo{Status: models.TimezoneStatusOK, TimeZoneID: "Not/AZone"}},
			registry,
		)

		_, err := renderer.Render(context.Background(), "London,UK")

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.TimezoneUnavailableError, appErr.Type)
	})
}

func TestConvertTemps(t *testing.T) {
	celsius, fahrenheit := convertTemps(280)

	// The lossy Fahrenheit round-trip lands on 7.0 rather than 6.85
	assert.InDelta(t, 44.6, fahrenheit, 0.001)
	assert.InDelta(t, 7.0, celsius, 0.001)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "81", formatNumber(81))
	assert.Equal(t, "4.1", formatNumber(4.1))
}
