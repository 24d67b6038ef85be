package interfaces

import (
	"context"

	"github.com/devquest/banking-ledger-cache/internal/models"
)

// BalanceCache is a best-effort key-value store holding derived
// balance snapshots. Cache content is never authoritative: callers
// must be able to rebuild any snapshot from the LedgerStore.
type BalanceCache interface {
	// Get returns the snapshot stored under key. found is false on a
	// miss; err is reserved for transport failures.
	Get(ctx context.Context, key string) (snapshot models.CachedSnapshot, found bool, err error)

	// Set overwrites the snapshot stored under key wholesale.
	Set(ctx context.Context, key string, snapshot models.CachedSnapshot) error
}
