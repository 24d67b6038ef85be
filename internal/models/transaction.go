package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind tags a ledger record as a credit or a debit.
type TransactionKind string

const (
	KindCredit TransactionKind = "CREDIT"
	KindDebit  TransactionKind = "DEBIT"
)

// Label returns the lower-case display name used in cached history
// entries and balance responses.
func (k TransactionKind) Label() string {
	if k == KindCredit {
		return "deposit"
	}
	return "payment"
}

// Transaction is one immutable, append-only ledger record. Amount is
// always the positive amount the caller requested, never the
// interest-adjusted balance delta.
type Transaction struct {
	ID         uuid.UUID
	AccountKey string
	Kind       TransactionKind
	Amount     decimal.Decimal
	CreatedAt  time.Time
}
