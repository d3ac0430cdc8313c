package analysis

import (
	"testing"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

func TestInferLiquidityLockLikelyLocked(t *testing.T) {
	t.Parallel()

	lock := InferLiquidityLock(&domain.TokenData{
		Liquidity: 200_000,
		MarketCap: 1_000_000,
		Source:    domain.SourceDexScreener,
	})
	if !lock.IsLocked {
		t.Fatal("deep liquidity with healthy ratio should read locked")
	}
	if lock.Confidence != "medium" {
		t.Fatalf("heuristic lock should never exceed medium confidence, got %s", lock.Confidence)
	}
	if lock.LockedPercentage != 20 {
		t.Fatalf("expected 20%% of market cap, got %f", lock.LockedPercentage)
	}
}

func TestInferLiquidityLockShallow(t *testing.T) {
	t.Parallel()

	lock := InferLiquidityLock(&domain.TokenData{
		Liquidity: 60_000,
		MarketCap: 10_000_000,
		Source:    domain.SourceBirdeye,
	})
	if lock.IsLocked {
		t.Fatal("thin ratio should not read locked")
	}
	if lock.Confidence != "low" || lock.DataSource != domain.SourceBirdeye {
		t.Fatalf("unexpected record: %+v", lock)
	}
}

func TestUnavailableLiquidityLock(t *testing.T) {
	t.Parallel()

	lock := UnavailableLiquidityLock()
	if lock.IsLocked || lock.DataSource != domain.SourceUnavailable {
		t.Fatalf("unexpected record: %+v", lock)
	}
}
