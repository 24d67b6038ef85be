// Package bank implements the balance ledger core: credit and debit
// mutations against the durable store with a synchronous write-through
// cache, and balance queries served from the cache with cache-aside
// rehydration on a miss.
package bank

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/devquest/banking-ledger-cache/internal/interfaces"
	"github.com/devquest/banking-ledger-cache/internal/models"
	"github.com/devquest/banking-ledger-cache/internal/models/events"
)

// interestRate is the penalty assessed when a credit arrives on a
// negative balance: the debt grows by 10.2% before the credit is
// applied. Interest is computed on the pre-credit debt; this order is
// a financial contract, not an implementation detail.
var interestRate = decimal.RequireFromString("0.102")

// CacheKey derives the cache key holding an account's balance snapshot.
func CacheKey(accountKey string) string {
	return "balance:" + accountKey
}

// Engine applies credit and debit mutations to the ledger. It holds a
// per-account mutex map so concurrent mutations on the same account
// serialize their read-modify-write, while different accounts proceed
// independently.
type Engine struct {
	store  interfaces.LedgerStore
	cache  interfaces.BalanceCache
	events interfaces.EventPublisher // optional, see SetEventPublisher
	logger *slog.Logger

	muMap map[string]*sync.Mutex // per-account mutation locks
	mapMu sync.Mutex             // protects muMap itself

	now func() time.Time
}

// NewEngine creates an Engine backed by the given store and cache.
// A nil logger falls back to slog.Default().
func NewEngine(store interfaces.LedgerStore, cache interfaces.BalanceCache, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:  store,
		cache:  cache,
		logger: logger,
		muMap:  make(map[string]*sync.Mutex),
		now:    time.Now,
	}
}

// SetEventPublisher attaches an optional publisher notified after each
// committed mutation. Publish failures are logged, never surfaced.
func (e *Engine) SetEventPublisher(pub interfaces.EventPublisher) {
	e.events = pub
}

func (e *Engine) getAccountLock(accountKey string) *sync.Mutex {
	e.mapMu.Lock()
	defer e.mapMu.Unlock()

	if _, exists := e.muMap[accountKey]; !exists {
		e.muMap[accountKey] = &sync.Mutex{}
	}
	return e.muMap[accountKey]
}

// Credit adds amount to the account balance. When the balance is
// negative the debt first grows by the penalty interest, then the
// credit is applied. The recorded transaction always carries the
// original credited amount.
func (e *Engine) Credit(ctx context.Context, accountKey string, amount decimal.Decimal) error {
	return e.apply(ctx, accountKey, models.KindCredit, amount)
}

// Debit subtracts amount from the account balance unconditionally; the
// balance may go negative. No interest is assessed on the debit
// itself, only on the next credit while the balance stays negative.
func (e *Engine) Debit(ctx context.Context, accountKey string, amount decimal.Decimal) error {
	return e.apply(ctx, accountKey, models.KindDebit, amount)
}

func (e *Engine) apply(ctx context.Context, accountKey string, kind models.TransactionKind, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return models.ErrInvalidAmount
	}

	mu := e.getAccountLock(accountKey)
	mu.Lock()
	defer mu.Unlock()

	stored, err := e.store.GetAccountBalance(ctx, accountKey)
	if err != nil {
		return err
	}
	balance := decimal.Zero
	if stored.Valid {
		balance = stored.Decimal
	}

	var newBalance decimal.Decimal
	switch kind {
	case models.KindCredit:
		if balance.IsNegative() {
			interest := balance.Abs().Mul(interestRate).Round(2)
			newBalance = balance.Sub(interest).Add(amount)
		} else {
			newBalance = balance.Add(amount)
		}
	case models.KindDebit:
		newBalance = balance.Sub(amount)
	default:
		return fmt.Errorf("unknown transaction kind %q", kind)
	}

	tx := models.Transaction{
		ID:         uuid.New(),
		AccountKey: accountKey,
		Kind:       kind,
		Amount:     amount,
		CreatedAt:  e.now(),
	}

	if err := e.store.SaveBalanceAndTransaction(ctx, accountKey, newBalance, tx); err != nil {
		return err
	}

	// The ledger write is committed. Everything below is best effort
	// and must not fail the operation, even if the request context has
	// been cancelled in the meantime.
	bgCtx := context.WithoutCancel(ctx)
	e.writeThrough(bgCtx, accountKey, newBalance, tx)
	e.publish(bgCtx, tx, newBalance)
	return nil
}

// writeThrough pushes the freshly committed balance into the cache:
// load the existing snapshot (a miss or an unreadable value starts an
// empty one), set the total, prepend the new history entry and store
// the whole snapshot back.
func (e *Engine) writeThrough(ctx context.Context, accountKey string, balance decimal.Decimal, tx models.Transaction) {
	key := CacheKey(accountKey)

	snapshot, found, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("cache read failed during write-through",
			"account", accountKey,
			"error", err,
		)
		snapshot = models.CachedSnapshot{}
	} else if !found {
		snapshot = models.CachedSnapshot{}
	}

	snapshot.TotalBalance = decimal.NewNullDecimal(balance)
	snapshot.PushFront(models.NewHistoryItem(tx))

	if err := e.cache.Set(ctx, key, snapshot); err != nil {
		e.logger.Warn("cache write-through failed, snapshot rehydrates on next read",
			"account", accountKey,
			"error", err,
		)
	}
}

func (e *Engine) publish(ctx context.Context, tx models.Transaction, balance decimal.Decimal) {
	if e.events == nil {
		return
	}
	evt := events.TransactionApplied{
		TransactionID: tx.ID.String(),
		AccountKey:    tx.AccountKey,
		Kind:          string(tx.Kind),
		Amount:        tx.Amount,
		NewBalance:    balance,
		OccurredAt:    tx.CreatedAt,
	}
	if err := e.events.Publish(ctx, evt); err != nil {
		e.logger.Warn("event publish failed",
			"account", tx.AccountKey,
			"transaction", evt.TransactionID,
			"error", err,
		)
	}
}
