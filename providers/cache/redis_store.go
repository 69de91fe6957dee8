package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore backs Store with a shared Redis instance. Keys written here
// ("openweathermap:*", "googleapi:timezone:*", "image:*", "ratelimit:*")
// are interoperable with other deployments pointing at the same server.
type RedisStore struct {
	client *redis.Client
}

type RedisStoreConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func NewRedisStore(config *RedisStoreConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	slog.Info("Redis cache connected successfully", "addr", config.Addr)

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Error("Redis get error", "error", err, "key", key)
		}
		return nil, false
	}

	return val, true
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if value == nil {
		return
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Error("Redis set error", "error", err, "key", key)
	}
}

func (r *RedisStore) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		slog.Error("Redis delete error", "error", err, "key", key)
	}
}

func (r *RedisStore) Clear(ctx context.Context) {
	if err := r.client.FlushDB(ctx).Err(); err != nil {
		slog.Error("Redis clear error", "error", err)
	}
}

// Close releases the underlying client connections
func (r *RedisStore) Close() error {
	return r.client.Close()
}
