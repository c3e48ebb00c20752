package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"movie-service/internal/config"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Store is a JSON cache. GetJSON reports false when the key is missing.
type Store interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// New picks Redis when REDIS_ADDR is configured and an in-process cache otherwise.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.RedisAddr == "" {
		slog.Info("cache: REDIS_ADDR not set, using in-process cache")
		return NewMemory(cfg.CacheTTL), nil
	}
	return NewRedis(ctx, cfg.RedisAddr, cfg.RedisPass)
}

// =======================================================
//  Redis
// =======================================================

type Redis struct {
	client *redis.Client
}

func NewRedis(ctx context.Context, addr, password string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	slog.Info("redis connected", "addr", addr)
	return &Redis{client: client}, nil
}

func (r *Redis) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, b, ttl).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

// =======================================================
//  In-process
// =======================================================

// Memory keeps encoded JSON so callers never share mutable values with the cache.
type Memory struct {
	c *gocache.Cache
}

func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{c: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (m *Memory) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return false, fmt.Errorf("cache: unexpected value type %T for %s", v, key)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.c.Set(key, b, ttl)
	return nil
}
