package card

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/image/font/opentype"
	"weathercards.app/assets"
	"weathercards.app/astro"
	"weathercards.app/errors"
	"weathercards.app/models"
	"weathercards.app/providers"
)

// Weather Icons glyph codepoints (wi-humidity, wi-strong-wind)
const (
	glyphHumidity = '\uf07a'
	glyphWind     = '\uf050'
)

// Renderer turns a location into a finished weather-card PNG
type Renderer struct {
	weather  providers.WeatherProvider
	timezone providers.TimezoneProvider
	registry *assets.Registry
	now      func() time.Time
}

func NewRenderer(weather providers.WeatherProvider, timezone providers.TimezoneProvider, registry *assets.Registry) *Renderer {
	return &Renderer{
		weather:  weather,
		timezone: timezone,
		registry: registry,
		now:      time.Now,
	}
}

// Render fetches the current conditions for a location and composites them
// into a PNG card.
func (r *Renderer) Render(ctx context.Context, location string) ([]byte, error) {
	observation, err := r.weather.CurrentWeather(ctx, location)
	if err != nil {
		return nil, err
	}

	local, err := r.localTime(ctx, observation.Coord.Lat, observation.Coord.Lon)
	if err != nil {
		return nil, err
	}

	phase := ClassifyDayPhase(local, observation.Sys.Sunrise, observation.Sys.Sunset)
	tags := DeriveTags(observation.Description())
	sky := SkyConditions{
		MoonStage:  astro.Stage(astro.Illumination(local).Phase),
		Northern:   astro.NorthernHemisphere(observation.Coord.Lat),
		LocalMonth: local.Month(),
	}

	slog.Debug("Composing weather card",
		"location", location,
		"phase", phase,
		"tags", tags,
		"moonStage", sky.MoonStage,
	)

	canvas := NewCanvas(CanvasWidth, CanvasHeight)
	if err := r.drawLayers(canvas, ComputeLayers(phase, tags, sky)); err != nil {
		return nil, err
	}
	r.drawReadout(canvas, observation, local)

	return canvas.EncodePNG()
}

func (r *Renderer) localTime(ctx context.Context, lat, lon float64) (time.Time, error) {
	tz, err := r.timezone.Timezone(ctx, lat, lon)
	if err != nil {
		return time.Time{}, err
	}
	if tz.Status != models.TimezoneStatusOK {
		return time.Time{}, errors.NewTimezoneUnavailableError(tz.Status)
	}

	loc, err := time.LoadLocation(tz.TimeZoneID)
	if err != nil {
		return time.Time{}, errors.NewTimezoneUnavailableError(
			fmt.Sprintf("unknown timezone id %q", tz.TimeZoneID))
	}
	return r.now().In(loc), nil
}

func (r *Renderer) drawLayers(canvas *Canvas, layers []LayerInstruction) error {
	for _, layer := range layers {
		img := r.registry.Image(layer.AssetID)
		if img == nil {
			if layer.Required {
				return errors.NewMissingAssetError(
					fmt.Sprintf("backdrop asset %q is not registered", layer.AssetID))
			}
			slog.Debug("Skipping unregistered layer", "asset", layer.AssetID)
			continue
		}

		if layer.MaskAssetID != "" {
			mask := r.registry.Image(layer.MaskAssetID)
			canvas.DrawMaskedImage(img, mask, layer.MaskOffsetX, layer.X, layer.Y, layer.FlipHorizontal)
			continue
		}
		canvas.DrawImage(img, layer.X, layer.Y, layer.Opacity)
	}
	return nil
}

// drawReadout paints the textual weather summary over the composited layers.
// A font that failed to register degrades to a card without its text rather
// than failing the render.
func (r *Renderer) drawReadout(canvas *Canvas, observation *models.WeatherObservation, local time.Time) {
	celsius, fahrenheit := convertTemps(observation.Main.Temp)

	if regular := r.registry.Font(assets.FontOpenSansRegular); regular != nil {
		r.drawText(canvas, regular, 20, fmt.Sprintf("%s, %s", observation.Name, observation.Sys.Country), 17, 12)
		r.drawText(canvas, regular, 15, fmt.Sprintf("%s (%s)", observation.ConditionMain(), observation.Description()), 17, 38)
		r.drawText(canvas, regular, 15, local.Format("Monday, 3:04pm"), 12, 76)
		r.drawText(canvas, regular, 15, formatNumber(observation.Main.Humidity)+"%", 305, 78)
		r.drawText(canvas, regular, 15, formatNumber(observation.Wind.Speed)+"mph", 380, 78)
	}

	if light := r.registry.Font(assets.FontOpenSansLight); light != nil {
		// Truncation, not rounding: 44.6°F displays as 44°F
		r.drawText(canvas, light, 23, fmt.Sprintf("%d°C", int(celsius)), 270, 5)
		r.drawText(canvas, light, 23, fmt.Sprintf("%d°F", int(fahrenheit)), 270, 35)
	}

	if icons := r.registry.Font(assets.FontWeatherIcons); icons != nil {
		r.drawText(canvas, icons, 15, string(glyphHumidity), 287, 78)
		r.drawText(canvas, icons, 15, string(glyphWind), 359, 78)
	}
}

func (r *Renderer) drawText(canvas *Canvas, fnt *opentype.Font, size float64, text string, x, y int) {
	if err := canvas.DrawText(fnt, size, text, x, y); err != nil {
		slog.Warn("Failed to draw card text", "text", text, "error", err)
	}
}

// convertTemps converts a Kelvin reading to Celsius and Fahrenheit. Celsius
// is derived from the Fahrenheit value rather than from Kelvin directly,
// matching the readings historical cards displayed.
func convertTemps(kelvin float64) (celsius, fahrenheit float64) {
	fahrenheit = 1.8*(kelvin-273) + 32
	celsius = (fahrenheit - 32) * 5 / 9
	return celsius, fahrenheit
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
