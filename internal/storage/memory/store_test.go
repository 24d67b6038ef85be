package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/devquest/banking-ledger-cache/internal/models"
)

func TestGetAccountBalanceUnknownAccount(t *testing.T) {
	store := NewMemoryLedgerStore()

	_, err := store.GetAccountBalance(context.Background(), "nobody")
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestNullBalanceIsPreserved(t *testing.T) {
	store := NewMemoryLedgerStore()
	store.CreateAccount("a", decimal.NullDecimal{})

	balance, err := store.GetAccountBalance(context.Background(), "a")
	if err != nil {
		t.Fatalf("GetAccountBalance failed: %v", err)
	}
	if balance.Valid {
		t.Errorf("balance = %+v, want an invalid (NULL) decimal", balance)
	}
}

func TestSaveRejectsUnknownAccount(t *testing.T) {
	store := NewMemoryLedgerStore()

	tx := models.Transaction{ID: uuid.New(), AccountKey: "nobody", Kind: models.KindCredit, Amount: decimal.NewFromInt(1)}
	err := store.SaveBalanceAndTransaction(context.Background(), "nobody", decimal.NewFromInt(1), tx)
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestListTransactionsNewestFirst(t *testing.T) {
	store := NewMemoryLedgerStore()
	store.CreateAccount("a", decimal.NewNullDecimal(decimal.Zero))

	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		tx := models.Transaction{
			ID:         uuid.New(),
			AccountKey: "a",
			Kind:       models.KindCredit,
			Amount:     decimal.NewFromInt(int64(i)),
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		if err := store.SaveBalanceAndTransaction(context.Background(), "a", decimal.NewFromInt(int64(i)), tx); err != nil {
			t.Fatalf("save #%d failed: %v", i, err)
		}
	}

	txs, err := store.ListTransactions(context.Background(), "a")
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txs))
	}
	for i, want := range []int64{3, 2, 1} {
		if !txs[i].Amount.Equal(decimal.NewFromInt(want)) {
			t.Errorf("txs[%d].Amount = %v, want %d", i, txs[i].Amount, want)
		}
	}

	balance, _ := store.GetAccountBalance(context.Background(), "a")
	if !balance.Valid || !balance.Decimal.Equal(decimal.NewFromInt(3)) {
		t.Errorf("balance = %+v, want 3", balance)
	}
}
