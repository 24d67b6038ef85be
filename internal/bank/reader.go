package bank

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/devquest/banking-ledger-cache/internal/interfaces"
	"github.com/devquest/banking-ledger-cache/internal/models"
)

// Reader serves balance queries. A fully populated cache snapshot is
// returned as-is; anything else is rebuilt from the ledger store and
// written back (cache-aside rehydration).
type Reader struct {
	store  interfaces.LedgerStore
	cache  interfaces.BalanceCache
	logger *slog.Logger
}

// NewReader creates a Reader backed by the given store and cache.
// A nil logger falls back to slog.Default().
func NewReader(store interfaces.LedgerStore, cache interfaces.BalanceCache, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Query returns the current balance and transaction history for an
// account. Three cache states are handled: a hit with a balance is
// served directly, while a miss and a hit without a balance (a
// partially populated snapshot) both trigger rehydration from the
// durable store. Cache failures never fail the query; the store data
// is served regardless.
func (r *Reader) Query(ctx context.Context, accountKey string) (models.BalanceStatement, error) {
	key := CacheKey(accountKey)

	cached, found, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache read failed, serving from ledger store",
			"account", accountKey,
			"error", err,
		)
	} else if found && cached.TotalBalance.Valid {
		return models.BalanceStatement{
			TotalBalance: cached.TotalBalance.Decimal,
			Historic:     cached.Historic,
		}, nil
	}

	stored, err := r.store.GetAccountBalance(ctx, accountKey)
	if err != nil {
		return models.BalanceStatement{}, err
	}
	total := decimal.Zero
	if stored.Valid {
		total = stored.Decimal
	}

	txs, err := r.store.ListTransactions(ctx, accountKey)
	if err != nil {
		return models.BalanceStatement{}, err
	}

	items := make([]models.HistoryItem, 0, len(txs))
	for _, tx := range txs {
		items = append(items, models.NewHistoryItem(tx))
	}

	// Rehydration replays the complete stored history, so no 200-entry
	// cap applies here.
	snapshot := models.CachedSnapshot{
		TotalBalance: decimal.NewNullDecimal(total),
		Historic:     items,
	}
	if err := r.cache.Set(ctx, key, snapshot); err != nil {
		r.logger.Warn("cache rehydration write failed",
			"account", accountKey,
			"error", err,
		)
	}

	return models.BalanceStatement{
		TotalBalance: total,
		Historic:     items,
	}, nil
}
