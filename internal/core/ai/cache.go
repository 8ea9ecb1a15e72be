package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"nutrismart/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// Cache stores model responses in Redis, keyed by prompt hash.
type Cache struct {
	client *redis.Client
	config *config.Config
}

// NewCache creates the response cache. Returns (nil, nil) when caching is
// disabled.
func NewCache(cfg *config.Config) (*Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client: client,
		config: cfg,
	}, nil
}

// Get returns the cached response for a prompt, or an error on a miss.
func (c *Cache) Get(ctx context.Context, prompt string) (string, error) {
	data, err := c.client.Get(ctx, c.key(prompt)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("cache miss")
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return data, nil
}

// Set stores a response under the prompt's key.
func (c *Cache) Set(ctx context.Context, prompt, response string) error {
	if err := c.client.Set(ctx, c.key(prompt), response, c.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "nutrismart:ai:" + hex.EncodeToString(sum[:])
}
