package analysis

import (
	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

// SimulateSentiment produces the placeholder community-sentiment view.
// The legacy behaviour drew unseeded random numbers; here the generator
// is seeded from the token address so identical inputs always yield
// identical records.
func SimulateSentiment(address string) *domain.SentimentData {
	rng := addressRand(address)

	score := rng.Intn(100)
	mentions := rng.Intn(10_000)

	twitterSentiment := "negative"
	if score > 60 {
		twitterSentiment = "positive"
	} else if score > 40 {
		twitterSentiment = "neutral"
	}
	redditSentiment := "neutral"
	if score > 50 {
		redditSentiment = "positive"
	}

	return &domain.SentimentData{
		Score:    score,
		Mentions: mentions,
		Trending: score > 70 && mentions > 1000,
		Sources: []domain.SentimentSource{
			{
				Platform:  "Twitter",
				Sentiment: twitterSentiment,
				URL:       "https://twitter.com/search?q=" + address,
			},
			{
				Platform:  "Reddit",
				Sentiment: redditSentiment,
				URL:       "https://reddit.com/search?q=" + address,
			},
		},
	}
}
