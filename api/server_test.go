package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathercards.app/config"
	"weathercards.app/errors"
	"weathercards.app/metrics"
	"weathercards.app/models"
	"weathercards.app/providers/cache"
	"weathercards.app/ratelimit"
)

type stubWeatherService struct {
	observation *models.WeatherObservation
	err         error
}

func (s *stubWeatherService) GetWeather(ctx context.Context, location string) (*models.WeatherObservation, error) {
	return s.observation, s.err
}

type stubTimezoneService struct {
	info *models.TimezoneInfo
	err  error
}

func (s *stubTimezoneService) GetTimezone(ctx context.Context, lat, lon float64) (*models.TimezoneInfo, error) {
	return s.info, s.err
}

type stubMoonService struct {
	info *models.MoonInfo
	err  error
}

func (s *stubMoonService) GetMoon(ctx context.Context, lat, lon float64) (*models.MoonInfo, error) {
	return s.info, s.err
}

type stubCardService struct {
	data []byte
	err  error
}

func (s *stubCardService) GetCard(ctx context.Context, location string) ([]byte, error) {
	return s.data, s.err
}

type serverStubs struct {
	weather  *stubWeatherService
	timezone *stubTimezoneService
	moon     *stubMoonService
	card     *stubCardService
}

func newTestServer(t *testing.T, stubs serverStubs, rateLimitMax int) (*Server, *cache.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if stubs.weather == nil {
		stubs.weather = &stubWeatherService{}
	}
	if stubs.timezone == nil {
		stubs.timezone = &stubTimezoneService{}
	}
	if stubs.moon == nil {
		stubs.moon = &stubMoonService{}
	}
	if stubs.card == nil {
		stubs.card = &stubCardService{}
	}

	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.RateLimit.MaxRequests = rateLimitMax
	cfg.RateLimit.WindowSeconds = 60
	cfg.RateLimit.TrustedProxies = []string{"10.0.0.1"}

	store := cache.NewMemoryStore()
	t.Cleanup(store.Stop)

	limiter := ratelimit.New(store, rateLimitMax, time.Minute, metrics.NewRateLimitMetrics())
	server := NewServer(cfg, stubs.weather, stubs.timezone, stubs.moon, stubs.card, limiter)
	return server, store
}

func performRequest(server *Server, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "192.0.2.10:54321"
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(w, req)
	return w
}

func TestServer_GetWeather(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			weather: &stubWeatherService{observation: &models.WeatherObservation{Name: "London"}},
		}, 100)

		w := performRequest(server, "/v1/weather?location=London,UK", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var observation models.WeatherObservation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &observation))
		assert.Equal(t, "London", observation.Name)
	})

	t.Run("MissingLocation", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{}, 100)

		w := performRequest(server, "/v1/weather", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			weather: &stubWeatherService{err: errors.NewNotFoundError("location not found")},
		}, 100)

		w := performRequest(server, "/v1/weather?location=Atlantis", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			weather: &stubWeatherService{err: errors.NewExternalAPIError("provider down", nil)},
		}, 100)

		w := performRequest(server, "/v1/weather?location=London,UK", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestServer_GetCard(t *testing.T) {
	t.Run("ServesPNG", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			card: &stubCardService{data: []byte("png-bytes")},
		}, 100)

		w := performRequest(server, "/v1/card?location=London,UK", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", w.Body.String())
	})

	t.Run("MissingBackdrop", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			card: &stubCardService{err: errors.NewMissingAssetError("backdrop missing")},
		}, 100)

		w := performRequest(server, "/v1/card?location=London,UK", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_GetTimezone(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			timezone: &stubTimezoneService{info: &models.TimezoneInfo{Status: "OK", TimeZoneID: "Europe/London"}},
		}, 100)

		w := performRequest(server, "/v1/timezone?lat=51.5&lon=-0.12", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var info models.TimezoneInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, "Europe/London", info.TimeZoneID)
	})

	t.Run("ZeroCoordinatesAreValid", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			timezone: &stubTimezoneService{info: &models.TimezoneInfo{Status: "OK", TimeZoneID: "Etc/GMT"}},
		}, 100)

		w := performRequest(server, "/v1/timezone?lat=0&lon=0", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("MissingCoordinates", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{}, 100)

		w := performRequest(server, "/v1/timezone?lat=51.5", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ZeroResults", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			timezone: &stubTimezoneService{err: errors.NewTimezoneUnavailableError(models.TimezoneStatusZeroResults)},
		}, 100)

		w := performRequest(server, "/v1/timezone?lat=51.5&lon=-0.12", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("OtherUnavailableStatusIsServerError", func(t *testing.T) {
		server, _ := newTestServer(t, serverStubs{
			timezone: &stubTimezoneService{err: errors.NewTimezoneUnavailableError("REQUEST_DENIED")},
		}, 100)

		w := performRequest(server, "/v1/timezone?lat=51.5&lon=-0.12", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_GetMoon(t *testing.T) {
	server, _ := newTestServer(t, serverStubs{
		moon: &stubMoonService{info: &models.MoonInfo{Fraction: 0.42, Phase: 0.2, PhaseName: "Waxing Crescent"}},
	}, 100)

	w := performRequest(server, "/v1/moon?lat=51.5&lon=-0.12", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var info models.MoonInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "Waxing Crescent", info.PhaseName)
}

func TestServer_RateLimiting(t *testing.T) {
	server, _ := newTestServer(t, serverStubs{
		weather: &stubWeatherService{observation: &models.WeatherObservation{Name: "London"}},
	}, 2)

	for i := 0; i < 2; i++ {
		w := performRequest(server, "/v1/weather?location=London,UK", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := performRequest(server, "/v1/weather?location=London,UK", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	t.Run("MetricsEndpointIsNotLimited", func(t *testing.T) {
		w := performRequest(server, "/metrics", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestServer_TrustedProxy(t *testing.T) {
	server, store := newTestServer(t, serverStubs{
		weather: &stubWeatherService{observation: &models.WeatherObservation{Name: "London"}},
	}, 5)

	t.Run("ForwardedAddressFromTrustedPeer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/weather?location=London,UK", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		w := httptest.NewRecorder()
		server.GetRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		_, found := store.Get(context.Background(), "ratelimit:203.0.113.7")
		assert.True(t, found, "rate limit budget keyed by the forwarded address")
	})

	t.Run("ForwardedHeaderFromUntrustedPeerIgnored", func(t *testing.T) {
		w := performRequest(server, "/v1/weather?location=London,UK",
			map[string]string{"X-Forwarded-For": "198.51.100.9"})

		require.Equal(t, http.StatusOK, w.Code)
		_, found := store.Get(context.Background(), "ratelimit:198.51.100.9")
		assert.False(t, found)
		_, found = store.Get(context.Background(), "ratelimit:192.0.2.10")
		assert.True(t, found)
	})
}

func TestServer_RequestID(t *testing.T) {
	server, _ := newTestServer(t, serverStubs{
		weather: &stubWeatherService{observation: &models.WeatherObservation{}},
	}, 100)

	t.Run("Generated", func(t *testing.T) {
		w := performRequest(server, "/v1/weather?location=London,UK", nil)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("CallerSuppliedPreserved", func(t *testing.T) {
		w := performRequest(server, "/v1/weather?location=London,UK",
			map[string]string{"X-Request-ID": "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}
