package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"weathercards.app/config"
	"weathercards.app/errors"
	"weathercards.app/models"
)

// OpenWeatherMapProvider implements WeatherProvider for OpenWeatherMap
type OpenWeatherMapProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(config *config.WeatherConfig) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// CurrentWeather retrieves the current observation for a location query.
// Temperature is returned in the provider's source unit (Kelvin).
func (p *OpenWeatherMapProvider) CurrentWeather(ctx context.Context, location string) (*models.WeatherObservation, error) {
	if location == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	requestURL := fmt.Sprintf("%s/weather?q=%s&appid=%s", p.baseURL, url.QueryEscape(location), p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build weather request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to get weather data", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NewNotFoundError("location not found")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("weather API returned status code %d", resp.StatusCode), nil)
	}

	var observation models.WeatherObservation
	if err := json.NewDecoder(resp.Body).Decode(&observation); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode weather data", err)
	}

	return &observation, nil
}
