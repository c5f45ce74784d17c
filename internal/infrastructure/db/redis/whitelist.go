package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gatekeep/auth-service/internal/api/metrics"
)

const whitelistKey = "whitelist:tokens"

// Whitelist is a Redis-backed token whitelist for deployments that share the
// elevated-access set across replicas. Members carry no TTL: entries are
// never expired or removed, matching the in-memory contract.
type Whitelist struct {
	client *redis.Client
}

// NewWhitelist creates a Whitelist wrapping the given Redis client.
func NewWhitelist(client *redis.Client) *Whitelist {
	return &Whitelist{client: client}
}

// Add inserts the token into the whitelist set. Idempotent.
func (w *Whitelist) Add(ctx context.Context, token string) error {
	if err := w.client.SAdd(ctx, whitelistKey, token).Err(); err != nil {
		return fmt.Errorf("whitelist add: %w", err)
	}
	if n, err := w.client.SCard(ctx, whitelistKey).Result(); err == nil {
		metrics.WhitelistSize.Set(float64(n))
	}
	return nil
}

// Contains reports whether the token is whitelisted.
func (w *Whitelist) Contains(ctx context.Context, token string) (bool, error) {
	ok, err := w.client.SIsMember(ctx, whitelistKey, token).Result()
	if err != nil {
		return false, fmt.Errorf("whitelist check: %w", err)
	}
	return ok, nil
}
