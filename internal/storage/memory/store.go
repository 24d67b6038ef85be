// Package memory provides an in-memory ledger store used by tests and
// local runs. It is thread-safe and mirrors the semantics of the
// PostgreSQL store, including the distinction between a missing
// account and an account with a NULL balance.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/devquest/banking-ledger-cache/internal/interfaces"
	"github.com/devquest/banking-ledger-cache/internal/models"
)

type MemoryLedgerStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	history  map[string][]models.Transaction // oldest first, reversed on read
}

func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{
		accounts: make(map[string]*models.Account),
		history:  make(map[string][]models.Transaction),
	}
}

// CreateAccount registers an account with the given stored balance.
// Account opening sits outside the mutation path, so this is not part
// of interfaces.LedgerStore.
func (m *MemoryLedgerStore) CreateAccount(accountKey string, balance decimal.NullDecimal) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts[accountKey] = &models.Account{
		Key:            accountKey,
		CurrentBalance: balance,
	}
}

func (m *MemoryLedgerStore) GetAccountBalance(ctx context.Context, accountKey string) (decimal.NullDecimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[accountKey]
	if !ok {
		return decimal.NullDecimal{}, models.ErrAccountNotFound
	}
	return acc.CurrentBalance, nil
}

func (m *MemoryLedgerStore) SaveBalanceAndTransaction(ctx context.Context, accountKey string, balance decimal.Decimal, tx models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[accountKey]
	if !ok {
		return models.ErrAccountNotFound
	}
	acc.CurrentBalance = decimal.NewNullDecimal(balance)
	m.history[accountKey] = append(m.history[accountKey], tx)
	return nil
}

func (m *MemoryLedgerStore) ListTransactions(ctx context.Context, accountKey string) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := m.history[accountKey]
	// return a reversed copy so external code can't modify internal state
	txs := make([]models.Transaction, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		txs = append(txs, stored[i])
	}
	return txs, nil
}

// Compile-time check: ensure MemoryLedgerStore implements LedgerStore.
var _ interfaces.LedgerStore = (*MemoryLedgerStore)(nil)
