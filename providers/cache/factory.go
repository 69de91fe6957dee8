package cache

import (
	"time"

	"weathercards.app/config"
	"weathercards.app/errors"
)

// NewStoreFromConfig selects a cache backend from configuration. The memory
// backend keeps rate-limit counters and cached entries process-local, so it
// is only suitable for single-instance setups.
func NewStoreFromConfig(cfg *config.CacheConfig, redisCfg *config.RedisConfig) (Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		store, err := NewRedisStore(&RedisStoreConfig{
			Addr:         redisCfg.Addr,
			Password:     redisCfg.Password,
			DB:           redisCfg.DB,
			DialTimeout:  time.Duration(redisCfg.DialTimeoutSec) * time.Second,
			ReadTimeout:  time.Duration(redisCfg.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(redisCfg.WriteTimeoutSec) * time.Second,
		})
		if err != nil {
			return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError("unknown cache type "+cfg.Type, nil)
	}
}
