// Package app wires configuration, providers, services and the HTTP server
// into a runnable application.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"weathercards.app/api"
	"weathercards.app/assets"
	"weathercards.app/card"
	"weathercards.app/config"
	"weathercards.app/metrics"
	"weathercards.app/providers"
	"weathercards.app/providers/cache"
	"weathercards.app/ratelimit"
	"weathercards.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config   *config.Config
	store    cache.Store
	registry *assets.Registry
	server   *api.Server
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeStore(); err != nil {
		return nil, err
	}

	if err := app.initializeAssets(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeStore() error {
	slog.Info("Initializing cache store...", "type", app.config.Cache.Type)

	store, err := cache.NewStoreFromConfig(&app.config.Cache, &app.config.Redis)
	if err != nil {
		slog.Error("Failed to initialize cache store", "error", err)
		return fmt.Errorf("initialize cache store: %w", err)
	}

	app.store = store
	slog.Info("Cache store initialized successfully")
	return nil
}

func (app *Application) initializeAssets() error {
	slog.Info("Loading card assets...", "dir", app.config.Assets.Dir)

	registry := assets.NewRegistry(assets.NewFileLoader())
	if err := assets.RegisterAll(registry, app.config.Assets.Dir); err != nil {
		return fmt.Errorf("register card assets: %w", err)
	}
	if _, err := registry.LoadAll(); err != nil {
		slog.Error("Failed to load card assets", "error", err)
		return fmt.Errorf("load card assets: %w", err)
	}

	app.registry = registry
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	weatherProvider := providers.NewWeatherCacheProxy(
		providers.NewOpenWeatherMapProvider(&app.config.Weather),
		app.store,
		time.Duration(app.config.Cache.WeatherTTLSeconds)*time.Second,
		metrics.NewCacheMetrics("weather"),
	)
	timezoneProvider := providers.NewTimezoneCacheProxy(
		providers.NewGoogleTimezoneProvider(&app.config.Timezone),
		app.store,
		time.Duration(app.config.Cache.TimezoneTTLSeconds)*time.Second,
		metrics.NewCacheMetrics("timezone"),
	)

	renderer := card.NewRenderer(weatherProvider, timezoneProvider, app.registry)

	cardService := service.NewCardService(
		renderer,
		app.store,
		time.Duration(app.config.Cache.ImageTTLSeconds)*time.Second,
		metrics.NewCacheMetrics("image"),
	)

	limiter := ratelimit.New(
		app.store,
		app.config.RateLimit.MaxRequests,
		time.Duration(app.config.RateLimit.WindowSeconds)*time.Second,
		metrics.NewRateLimitMetrics(),
	)

	app.server = api.NewServer(
		app.config,
		service.NewWeatherService(weatherProvider),
		service.NewTimezoneService(timezoneProvider),
		service.NewMoonService(timezoneProvider),
		cardService,
		limiter,
	)

	slog.Info("Services initialized successfully")
	return nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	switch store := app.store.(type) {
	case *cache.RedisStore:
		if err := store.Close(); err != nil {
			slog.Warn("Error closing cache store", "error", err)
		}
	case *cache.MemoryStore:
		store.Stop()
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
