package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/devquest/banking-ledger-cache/internal/models"
)

// LedgerStore is the durable source of truth for account balances and
// their transaction history.
type LedgerStore interface {
	// GetAccountBalance returns the stored balance for an account.
	// The NullDecimal is invalid when the stored balance is NULL;
	// callers treat that as zero. Returns models.ErrAccountNotFound
	// when no account exists for the key.
	GetAccountBalance(ctx context.Context, accountKey string) (decimal.NullDecimal, error)

	// SaveBalanceAndTransaction commits the updated balance and the
	// new transaction record as one atomic unit for the account.
	SaveBalanceAndTransaction(ctx context.Context, accountKey string, balance decimal.Decimal, tx models.Transaction) error

	// ListTransactions returns the full transaction history for an
	// account, newest first.
	ListTransactions(ctx context.Context, accountKey string) ([]models.Transaction, error)
}
