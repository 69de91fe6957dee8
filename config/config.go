package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weathercards.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Redis     RedisConfig     `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Timezone  TimezoneConfig  `split_words:"true"`
	RateLimit RateLimitConfig `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Assets    AssetsConfig    `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// RedisConfig contains connection settings for the cache/counter store
type RedisConfig struct {
	Addr            string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password        string `envconfig:"REDIS_PASSWORD" default:""`
	DB              int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeoutSec  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeoutSec  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeoutSec int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// WeatherConfig contains settings for the weather data provider
type WeatherConfig struct {
	APIKey  string `envconfig:"WEATHER_API_KEY" required:"true"`
	BaseURL string `envconfig:"WEATHER_API_BASE_URL" default:"http://api.openweathermap.org/data/2.5"`
}

// TimezoneConfig contains settings for the timezone provider
type TimezoneConfig struct {
	APIKey  string `envconfig:"TIMEZONE_API_KEY" required:"true"`
	BaseURL string `envconfig:"TIMEZONE_API_BASE_URL" default:"https://maps.googleapis.com/maps/api/timezone/json"`
}

// RateLimitConfig contains the per-client request budget settings
type RateLimitConfig struct {
	MaxRequests    int      `envconfig:"RATE_LIMIT_MAX" default:"30"`
	WindowSeconds  int      `envconfig:"RATE_LIMIT_WINDOW" default:"60"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES" default:""`
}

// CacheConfig contains cache backend selection and TTL settings
type CacheConfig struct {
	Type               string `envconfig:"CACHE_TYPE" default:"redis"`
	WeatherTTLSeconds  int    `envconfig:"CACHE_WEATHER_TTL" default:"300"`
	TimezoneTTLSeconds int    `envconfig:"CACHE_TIMEZONE_TTL" default:"3600"`
	ImageTTLSeconds    int    `envconfig:"CACHE_IMAGE_TTL" default:"60"`
}

// AssetsConfig contains the location of the card image/font assets
type AssetsConfig struct {
	Dir string `envconfig:"ASSETS_DIR" default:"assets"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Timezone.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Assets.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks cache store configuration
func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty", nil)
	}
	if r.DB < 0 {
		return errors.NewConfigurationError("REDIS_DB cannot be negative", nil)
	}
	return nil
}

// Validate checks weather provider configuration
func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY is required", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	return nil
}

// Validate checks timezone provider configuration
func (t *TimezoneConfig) Validate() error {
	if t.APIKey == "" {
		return errors.NewConfigurationError("TIMEZONE_API_KEY is required", nil)
	}
	if !strings.HasPrefix(t.BaseURL, "http://") && !strings.HasPrefix(t.BaseURL, "https://") {
		return errors.NewConfigurationError("TIMEZONE_API_BASE_URL must start with http:// or https://", nil)
	}
	return nil
}

// Validate checks rate limiter configuration
func (r *RateLimitConfig) Validate() error {
	if r.MaxRequests < 1 {
		return errors.NewConfigurationError("RATE_LIMIT_MAX must be at least 1", nil)
	}
	if r.WindowSeconds < 1 {
		return errors.NewConfigurationError("RATE_LIMIT_WINDOW must be at least 1 second", nil)
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	if c.Type != "redis" && c.Type != "memory" {
		return errors.NewConfigurationError(
			fmt.Sprintf("CACHE_TYPE must be one of: redis, memory (got %q)", c.Type), nil)
	}
	if c.WeatherTTLSeconds < 1 || c.TimezoneTTLSeconds < 1 || c.ImageTTLSeconds < 1 {
		return errors.NewConfigurationError("cache TTLs must be at least 1 second", nil)
	}
	return nil
}

// Validate checks asset configuration
func (a *AssetsConfig) Validate() error {
	if a.Dir == "" {
		return errors.NewConfigurationError("ASSETS_DIR cannot be empty", nil)
	}
	return nil
}
