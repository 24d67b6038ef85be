// Package redis implements the balance cache on Redis. Snapshots are
// stored as JSON under "balance:<account>" keys. Cache content is
// untrusted: a value that fails to decode is reported as a miss so the
// reader rehydrates it from the ledger store.
package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/devquest/banking-ledger-cache/internal/interfaces"
	"github.com/devquest/banking-ledger-cache/internal/models"
)

type BalanceCache struct {
	client *redis.Client
}

func NewBalanceCache(client *redis.Client) *BalanceCache {
	return &BalanceCache{
		client: client,
	}
}

func (c *BalanceCache) Get(ctx context.Context, key string) (models.CachedSnapshot, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return models.CachedSnapshot{}, false, nil
	}
	if err != nil {
		return models.CachedSnapshot{}, false, err
	}

	var snapshot models.CachedSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		// undecodable snapshot, let the caller rebuild it
		return models.CachedSnapshot{}, false, nil
	}
	return snapshot, true, nil
}

// Set overwrites the snapshot wholesale. No TTL is applied; eviction
// policy is left to the Redis deployment.
func (c *BalanceCache) Set(ctx context.Context, key string, snapshot models.CachedSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, 0).Err()
}

var _ interfaces.BalanceCache = (*BalanceCache)(nil)
