package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"weathercards.app/config"
	"weathercards.app/errors"
	"weathercards.app/models"
)

// GoogleTimezoneProvider implements TimezoneProvider for the Google Maps
// Time Zone API. Lookup failures are reported through the payload's status
// field rather than HTTP status codes; callers decide how to treat non-OK
// statuses.
type GoogleTimezoneProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewGoogleTimezoneProvider creates a new Google Time Zone API provider
func NewGoogleTimezoneProvider(config *config.TimezoneConfig) *GoogleTimezoneProvider {
	return &GoogleTimezoneProvider{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
}

// Timezone retrieves timezone information for a coordinate pair
func (p *GoogleTimezoneProvider) Timezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error) {
	requestURL := fmt.Sprintf("%s?key=%s&timestamp=%d&location=%s,%s",
		p.baseURL, p.apiKey, p.now().Unix(), formatCoord(lat), formatCoord(lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build timezone request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to get timezone data", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NewNotFoundError("timezone not found")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("timezone API returned status code %d", resp.StatusCode), nil)
	}

	var info models.TimezoneInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode timezone data", err)
	}

	return &info, nil
}

// formatCoord renders a coordinate the way the cache keys expect: shortest
// representation that round-trips, no trailing zeros.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
