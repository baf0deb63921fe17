package pattern

import "strconv"

// Comparison reports each variant's overhead relative to the baseline.
type Comparison struct {
	Label    string           `json:"label"`
	Baseline string           `json:"baseline"` // baseline variant name
	Changes  []ComparisonItem `json:"changes"`
}

// ComparisonItem is one variant measured against the baseline.
type ComparisonItem struct {
	Label     string  `json:"label"`     // variant name
	Baseline  string  `json:"baseline"`  // formatted baseline value
	Value     string  `json:"value"`     // formatted variant value
	Ratio     float64 `json:"ratio"`     // Value / Baseline; 1 means same
	Unbounded bool    `json:"unbounded"` // baseline is zero, variant is not
	Unit      string  `json:"unit"`      // "bytes" or "objects"
}

// Overhead describes the item the way the report prints it:
// "same", "4.00× more" or "Inf× more".
func (c ComparisonItem) Overhead() string {
	switch {
	case c.Unbounded:
		return "Inf× more"
	case c.Ratio == 1:
		return "same"
	default:
		return strconv.FormatFloat(c.Ratio, 'f', 2, 64) + "× more"
	}
}

func (c *Comparison) Type() PatternType { return PatternTypeComparison }
