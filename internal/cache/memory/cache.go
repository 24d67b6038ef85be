// Package memory provides an in-memory balance cache for tests and
// local runs.
package memory

import (
	"context"
	"sync"

	"github.com/devquest/banking-ledger-cache/internal/interfaces"
	"github.com/devquest/banking-ledger-cache/internal/models"
)

type MemoryBalanceCache struct {
	mu        sync.Mutex
	snapshots map[string]models.CachedSnapshot
}

func NewMemoryBalanceCache() *MemoryBalanceCache {
	return &MemoryBalanceCache{
		snapshots: make(map[string]models.CachedSnapshot),
	}
}

func (c *MemoryBalanceCache) Get(ctx context.Context, key string) (models.CachedSnapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot, ok := c.snapshots[key]
	if !ok {
		return models.CachedSnapshot{}, false, nil
	}
	return copySnapshot(snapshot), true, nil
}

func (c *MemoryBalanceCache) Set(ctx context.Context, key string, snapshot models.CachedSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshots[key] = copySnapshot(snapshot)
	return nil
}

// copySnapshot detaches the history slice so callers holding a
// returned snapshot can't mutate the cached one.
func copySnapshot(s models.CachedSnapshot) models.CachedSnapshot {
	historic := make([]models.HistoryItem, len(s.Historic))
	copy(historic, s.Historic)
	s.Historic = historic
	return s
}

var _ interfaces.BalanceCache = (*MemoryBalanceCache)(nil)
