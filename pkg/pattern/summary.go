package pattern

// Summary is the scope line of a run: what was measured and how.
type Summary struct {
	Label   string        `json:"label"`
	Metrics []SummaryItem `json:"metrics"`
}

// SummaryItem is a single labelled fact in a summary.
type SummaryItem struct {
	Label string `json:"label"` // e.g. "variants", "iterations", "ranked by"
	Value string `json:"value"` // formatted value
	Kind  string `json:"kind"`  // "success", "error", "warning", "info"; affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
