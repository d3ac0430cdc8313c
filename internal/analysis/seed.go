package analysis

import "math/rand"

// addressSeed folds a token address into a deterministic seed by
// summing its byte values. The simulated views (sentiment, whales,
// similar tokens) all draw from a generator seeded this way so repeated
// calls for the same token return identical data.
func addressSeed(address string) int64 {
	var sum int64
	for _, ch := range address {
		sum += int64(ch)
	}
	return sum
}

func addressRand(address string) *rand.Rand {
	return rand.New(rand.NewSource(addressSeed(address)))
}

const hexDigits = "0123456789abcdef"

// randomHex emits n deterministic hex characters from the generator.
func randomHex(rng *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = hexDigits[rng.Intn(len(hexDigits))]
	}
	return string(buf)
}
