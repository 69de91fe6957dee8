package app

import (
	"log"
	"os"
	"sort"
	"strings"

	"weathercards.app/config"
)

// ConfigDisplayer handles configuration and environment variable display
type ConfigDisplayer struct{}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer() *ConfigDisplayer {
	return &ConfigDisplayer{}
}

// PrintConfig prints all fields in the configuration
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	log.Println("==== APPLICATION CONFIGURATION ====")

	log.Printf("SERVER:\n")
	log.Printf("  Port: %d\n", cfg.Server.Port)

	log.Printf("\nREDIS:\n")
	log.Printf("  Addr: %s\n", cfg.Redis.Addr)
	log.Printf("  Password: %s\n", cd.maskString(cfg.Redis.Password))
	log.Printf("  DB: %d\n", cfg.Redis.DB)

	log.Printf("\nWEATHER API:\n")
	log.Printf("  API Key: %s\n", cd.maskString(cfg.Weather.APIKey))
	log.Printf("  Base URL: %s\n", cfg.Weather.BaseURL)

	log.Printf("\nTIMEZONE API:\n")
	log.Printf("  API Key: %s\n", cd.maskString(cfg.Timezone.APIKey))
	log.Printf("  Base URL: %s\n", cfg.Timezone.BaseURL)

	log.Printf("\nRATE LIMIT:\n")
	log.Printf("  Max Requests: %d\n", cfg.RateLimit.MaxRequests)
	log.Printf("  Window: %d seconds\n", cfg.RateLimit.WindowSeconds)
	log.Printf("  Trusted Proxies: %v\n", cfg.RateLimit.TrustedProxies)

	log.Printf("\nCACHE:\n")
	log.Printf("  Type: %s\n", cfg.Cache.Type)
	log.Printf("  Weather TTL: %d seconds\n", cfg.Cache.WeatherTTLSeconds)
	log.Printf("  Timezone TTL: %d seconds\n", cfg.Cache.TimezoneTTLSeconds)
	log.Printf("  Image TTL: %d seconds\n", cfg.Cache.ImageTTLSeconds)

	log.Printf("\nASSETS DIR: %s\n", cfg.Assets.Dir)

	log.Println("===================================")
}

// PrintAllEnvVars prints all environment variables available to the application
func (cd *ConfigDisplayer) PrintAllEnvVars() {
	log.Println("==== ENVIRONMENT VARIABLES ====")

	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}

		key := pair[0]
		value := pair[1]

		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}

		log.Printf("%s=%s\n", key, value)
	}

	log.Println("===============================")
}

// maskString masks sensitive information like passwords and API keys
func (cd *ConfigDisplayer) maskString(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}

// isSensitive checks if an environment variable key is considered sensitive
func (cd *ConfigDisplayer) isSensitive(key string) bool {
	sensitiveKeys := []string{
		"API_KEY", "PASSWORD", "SECRET", "TOKEN", "KEY", "PASS", "PWD",
	}

	key = strings.ToUpper(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return true
		}
	}

	return false
}
