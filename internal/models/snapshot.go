package models

import "github.com/shopspring/decimal"

// HistoryTimeFormat is the timestamp layout used in cached history
// entries (DD-MM-YYYY HH:MM:SS).
const HistoryTimeFormat = "02-01-2006 15:04:05"

// MaxCachedHistory caps the history list maintained incrementally by
// the write-through path. Rehydration from the ledger store replays
// the complete stored history and is not capped.
const MaxCachedHistory = 200

// HistoryItem is one denormalized history entry inside a cached
// snapshot.
type HistoryItem struct {
	Kind   string          `json:"type"`
	Amount decimal.Decimal `json:"value"`
	Date   string          `json:"date"`
}

// NewHistoryItem builds the cached representation of a transaction.
func NewHistoryItem(tx Transaction) HistoryItem {
	return HistoryItem{
		Kind:   tx.Kind.Label(),
		Amount: tx.Amount,
		Date:   tx.CreatedAt.Format(HistoryTimeFormat),
	}
}

// CachedSnapshot is the derived balance view held in the cache. It is
// disposable: the ledger store stays authoritative and the snapshot can
// be rebuilt from it at any time. A snapshot whose TotalBalance is not
// valid is only partially populated and must be treated like a miss.
type CachedSnapshot struct {
	TotalBalance decimal.NullDecimal `json:"totalBalance"`
	Historic     []HistoryItem       `json:"historic"`
}

// PushFront prepends an entry, evicting the oldest one past
// MaxCachedHistory.
func (s *CachedSnapshot) PushFront(item HistoryItem) {
	s.Historic = append([]HistoryItem{item}, s.Historic...)
	if len(s.Historic) > MaxCachedHistory {
		s.Historic = s.Historic[:MaxCachedHistory]
	}
}

// BalanceStatement is the read-model returned by balance queries.
type BalanceStatement struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
	Historic     []HistoryItem   `json:"historic"`
}
