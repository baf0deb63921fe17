package pattern

// Leaderboard is the ranked list of variants, cheapest first.
type Leaderboard struct {
	Label      string            `json:"label"`
	MetricName string            `json:"metric"` // e.g. "memory", "objects"
	Items      []LeaderboardItem `json:"items"`
}

// LeaderboardItem is one ranked variant.
type LeaderboardItem struct {
	Rank     int     `json:"rank"`
	Name     string  `json:"name"`
	Metric   string  `json:"formatted"` // ranking value, e.g. "40.00 kB"
	Value    float64 `json:"value"`
	Objects  string  `json:"objects"`  // allocated object count
	Retained string  `json:"retained"` // retained bytes and objects
	Baseline bool    `json:"baseline"`
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }
