package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionApplied is emitted after a credit or debit has been
// durably committed to the ledger. NewBalance is the authoritative
// post-mutation balance.
type TransactionApplied struct {
	TransactionID string          `json:"transaction_id"`
	AccountKey    string          `json:"account_key"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	NewBalance    decimal.Decimal `json:"new_balance"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
