package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/devquest/banking-ledger-cache/internal/models"
)

func TestGetMiss(t *testing.T) {
	cache := NewMemoryBalanceCache()

	_, found, err := cache.Get(context.Background(), "balance:1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("found = true, want a miss")
	}
}

func TestSetOverwritesWholesale(t *testing.T) {
	cache := NewMemoryBalanceCache()
	ctx := context.Background()

	first := models.CachedSnapshot{
		TotalBalance: decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Historic:     []models.HistoryItem{{Kind: "deposit"}, {Kind: "payment"}},
	}
	if err := cache.Set(ctx, "balance:1", first); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	second := models.CachedSnapshot{
		TotalBalance: decimal.NewNullDecimal(decimal.NewFromInt(20)),
		Historic:     []models.HistoryItem{{Kind: "deposit"}},
	}
	if err := cache.Set(ctx, "balance:1", second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found, err := cache.Get(ctx, "balance:1")
	if err != nil || !found {
		t.Fatalf("Get = (%v, %v), want a hit", found, err)
	}
	if !got.TotalBalance.Decimal.Equal(decimal.NewFromInt(20)) || len(got.Historic) != 1 {
		t.Errorf("snapshot = %+v, want the second value only", got)
	}
}

func TestReturnedSnapshotIsDetached(t *testing.T) {
	cache := NewMemoryBalanceCache()
	ctx := context.Background()

	stored := models.CachedSnapshot{
		TotalBalance: decimal.NewNullDecimal(decimal.NewFromInt(5)),
		Historic:     []models.HistoryItem{{Kind: "deposit"}},
	}
	if err := cache.Set(ctx, "balance:2", stored); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, _, _ := cache.Get(ctx, "balance:2")
	got.Historic[0].Kind = "mutated"

	again, _, _ := cache.Get(ctx, "balance:2")
	if again.Historic[0].Kind != "deposit" {
		t.Errorf("cached item was mutated through a returned snapshot: %+v", again.Historic[0])
	}
}
