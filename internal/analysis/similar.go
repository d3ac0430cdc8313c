package analysis

import (
	"fmt"
	"sort"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

var similarOutcomes = []string{"success", "failed", "active"}

// SimulateSimilarTokens lists five placeholder comparable tokens,
// seeded from the subject's address so results repeat per token.
func SimulateSimilarTokens(token *domain.TokenData) []domain.SimilarToken {
	rng := addressRand(token.Address)

	out := make([]domain.SimilarToken, 5)
	for i := range out {
		outcome := similarOutcomes[rng.Intn(len(similarOutcomes))]
		maxMC := token.MarketCap * (rng.Float64()*50 + 1)

		currentMC := 0.0
		roi := -100.0
		switch outcome {
		case "success":
			currentMC = maxMC
			roi = rng.Float64() * 1000
		case "active":
			currentMC = maxMC * rng.Float64()
			roi = rng.Float64() * 200
		}

		out[i] = domain.SimilarToken{
			Address:          "0x" + randomHex(rng, 40),
			Name:             fmt.Sprintf("Similar Token %d", i+1),
			Symbol:           fmt.Sprintf("SIM%d", i+1),
			Similarity:       rng.Intn(30) + 70,
			Outcome:          outcome,
			MaxMarketCap:     maxMC,
			CurrentMarketCap: currentMC,
			ROI:              roi,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out
}
