package analysis

import (
	"sort"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

// SimulateWhaleActivity builds the placeholder holder and transaction
// views from the address-seeded generator. The caller supplies now so
// transaction timestamps stay reproducible in tests.
func SimulateWhaleActivity(address string, now time.Time) *domain.WhaleActivity {
	rng := addressRand(address)

	holders := make([]domain.TopHolder, 10)
	for i := range holders {
		holders[i] = domain.TopHolder{
			Address:    "0x" + randomHex(rng, 40),
			Balance:    rng.Float64() * 1_000_000,
			Percentage: rng.Float64() * 15,
		}
	}
	sort.SliceStable(holders, func(i, j int) bool {
		return holders[i].Balance > holders[j].Balance
	})

	txs := make([]domain.WhaleTransaction, 5)
	for i := range txs {
		txType := "sell"
		if rng.Float64() > 0.5 {
			txType = "buy"
		}
		txs[i] = domain.WhaleTransaction{
			Type:      txType,
			Amount:    rng.Float64() * 100_000,
			USDValue:  rng.Float64() * 50_000,
			Timestamp: now.Add(-time.Duration(rng.Float64() * float64(time.Hour))),
			TxHash:    "0x" + randomHex(rng, 64),
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})

	whaleAlert := false
	for _, tx := range txs {
		if tx.USDValue > 10_000 {
			whaleAlert = true
			break
		}
	}

	return &domain.WhaleActivity{
		TopHolders:         holders,
		RecentTransactions: txs,
		WhaleAlert:         whaleAlert,
	}
}
