package analysis

import (
	"math"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
)

// ComputeHype folds per-channel counts into a 0-100 composite. Twitter
// contributes up to 50 points (saturating at 200 mentions), Reddit up
// to 30 (at 30 posts), Telegram up to 20 (at 5000 members).
func ComputeHype(twitterMentions, redditPosts, telegramMembers int) (score int, velocity domain.Velocity, organic bool) {
	normalizedTwitter := math.Min(50, float64(twitterMentions)/200*50)
	normalizedReddit := math.Min(30, float64(redditPosts)/30*30)
	normalizedTelegram := 0.0
	if telegramMembers > 0 {
		normalizedTelegram = math.Min(20, float64(telegramMembers)/5000*20)
	}

	score = int(math.Floor(normalizedTwitter + normalizedReddit + normalizedTelegram))

	switch {
	case score > 60 && twitterMentions > 50 && redditPosts > 5:
		velocity = domain.VelocityAccelerating
	case score < 20 || (twitterMentions < 5 && redditPosts < 2):
		velocity = domain.VelocityDeclining
	default:
		velocity = domain.VelocityStable
	}

	hasBalancedGrowth := twitterMentions > 0 && redditPosts > 0
	notExcessivelyHyped := score < 85 && twitterMentions < 1000
	organic = hasBalancedGrowth && notExcessivelyHyped

	return score, velocity, organic
}
