package pattern

import "testing"

func TestComparisonItem_Overhead(t *testing.T) {
	tests := []struct {
		item ComparisonItem
		want string
	}{
		{ComparisonItem{Ratio: 1}, "same"},
		{ComparisonItem{Ratio: 4}, "4.00× more"},
		{ComparisonItem{Ratio: 1.5}, "1.50× more"},
		{ComparisonItem{Unbounded: true}, "Inf× more"},
	}
	for _, tt := range tests {
		if got := tt.item.Overhead(); got != tt.want {
			t.Errorf("Overhead(%+v) = %q, want %q", tt.item, got, tt.want)
		}
	}
}

func TestPatternTypes(t *testing.T) {
	patterns := map[PatternType]Pattern{
		PatternTypeSummary:     &Summary{},
		PatternTypeLeaderboard: &Leaderboard{},
		PatternTypeComparison:  &Comparison{},
	}
	for want, p := range patterns {
		if got := p.Type(); got != want {
			t.Errorf("Type() = %q, want %q", got, want)
		}
	}
}
