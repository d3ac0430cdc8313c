package provider

// SearchResult is one hit from a web-search provider.
type SearchResult struct {
	Title          string
	URL            string
	Snippet        string
	Date           string
	RelevanceScore float64
}

// TimeRange restricts search results by recency.
type TimeRange string

const (
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	RangeAll TimeRange = "all"
)

// CommunityStats holds CoinGecko community counters for a token.
type CommunityStats struct {
	TwitterFollowers  int64
	RedditSubscribers int64
	TelegramMembers   int64
}

// SecurityReport carries the raw contract flags returned by GoPlus.
// Scoring happens in the analysis package.
type SecurityReport struct {
	IsHoneypot           bool
	HiddenOwner          bool
	IsProxy              bool
	CanTakeBackOwnership bool
	OwnerChangeBalance   bool
	SelfDestruct         bool
	OwnerAddress         string
	OpenSource           bool
}
