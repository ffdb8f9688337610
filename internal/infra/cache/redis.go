// Package cache provides Redis-backed caching for computed budget reports.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/scheduling-of-care/backend/config"
	"github.com/scheduling-of-care/backend/internal/application/usecase/budget"
)

// NewRedisClient creates a Redis client from configuration and verifies
// connectivity.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	slog.Info("Redis connection established")
	return client, nil
}

// breakdownCache implements budget.BreakdownCache on top of Redis. Entries
// are JSON-encoded per client and expire after the configured TTL.
type breakdownCache struct {
	client *redis.Client
}

// NewBreakdownCache creates a Redis-backed breakdown cache.
func NewBreakdownCache(client *redis.Client) budget.BreakdownCache {
	return &breakdownCache{client: client}
}

func breakdownKey(clientID uuid.UUID) string {
	return fmt.Sprintf("budget:breakdown:%s", clientID)
}

// Get returns the cached breakdown for the client, if present.
func (c *breakdownCache) Get(ctx context.Context, clientID uuid.UUID) ([]budget.CategoryBreakdown, bool, error) {
	data, err := c.client.Get(ctx, breakdownKey(clientID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read breakdown cache: %w", err)
	}

	var breakdown []budget.CategoryBreakdown
	if err := json.Unmarshal(data, &breakdown); err != nil {
		// A corrupt entry is treated as a miss so it gets recomputed.
		slog.Warn("Discarding unreadable breakdown cache entry", "client_id", clientID, "error", err)
		return nil, false, nil
	}

	return breakdown, true, nil
}

// Set stores the breakdown for the client with the given TTL.
func (c *breakdownCache) Set(ctx context.Context, clientID uuid.UUID, breakdown []budget.CategoryBreakdown, ttl time.Duration) error {
	data, err := json.Marshal(breakdown)
	if err != nil {
		return fmt.Errorf("failed to encode breakdown: %w", err)
	}

	if err := c.client.Set(ctx, breakdownKey(clientID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write breakdown cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached breakdown for the client.
func (c *breakdownCache) Invalidate(ctx context.Context, clientID uuid.UUID) error {
	if err := c.client.Del(ctx, breakdownKey(clientID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate breakdown cache: %w", err)
	}
	return nil
}
