// Package mapper converts comparison reports into visualization patterns.
package mapper

import (
	"fmt"

	"github.com/tacit7/membench/pkg/bench"
	"github.com/tacit7/membench/pkg/compare"
	"github.com/tacit7/membench/pkg/pattern"
)

const (
	kindInfo    = "info"
	kindSuccess = "success"
	kindWarning = "warning"
)

// FromReport converts a comparison report into a Summary, a Leaderboard and,
// when there is more than one entry, a Comparison.
func FromReport(r compare.Report) []pattern.Pattern {
	if len(r.Entries) == 0 {
		return nil
	}
	patterns := []pattern.Pattern{summary(r), leaderboard(r)}
	if len(r.Entries) > 1 {
		patterns = append(patterns, comparison(r))
	}
	return patterns
}

func summary(r compare.Report) *pattern.Summary {
	s := &pattern.Summary{
		Label: fmt.Sprintf("MEMORY: %d variants", len(r.Entries)),
		Metrics: []pattern.SummaryItem{
			{Label: "iterations", Value: iterations(r.Entries), Kind: kindInfo},
			{Label: "ranked by", Value: string(r.Metric), Kind: kindInfo},
			{Label: "baseline", Value: r.Baseline().Measurement.Variant, Kind: kindSuccess},
		},
	}
	if len(r.Entries) > 1 {
		worst := r.Entries[len(r.Entries)-1]
		item := pattern.ComparisonItem{Ratio: worst.Ratio, Unbounded: worst.Unbounded}
		kind := kindWarning
		if worst.Same() {
			kind = kindSuccess
		}
		s.Metrics = append(s.Metrics, pattern.SummaryItem{
			Label: "costliest",
			Value: worst.Measurement.Variant + " (" + item.Overhead() + ")",
			Kind:  kind,
		})
	}
	return s
}

// iterations reports the shared iteration count, or "mixed".
func iterations(entries []compare.Entry) string {
	n := entries[0].Measurement.Iterations
	for _, e := range entries[1:] {
		if e.Measurement.Iterations != n {
			return "mixed"
		}
	}
	return FormatCount(uint64(n))
}

func leaderboard(r compare.Report) *pattern.Leaderboard {
	lb := &pattern.Leaderboard{
		Label:      "Calculating",
		MetricName: string(r.Metric),
		Items:      make([]pattern.LeaderboardItem, 0, len(r.Entries)),
	}
	for i, e := range r.Entries {
		m := e.Measurement
		lb.Items = append(lb.Items, pattern.LeaderboardItem{
			Rank:     i + 1,
			Name:     m.Variant,
			Metric:   formatValue(r.Metric, e.Value),
			Value:    float64(e.Value),
			Objects:  FormatCount(m.Allocated.Objects) + " objects",
			Retained: retained(m),
			Baseline: e.Baseline,
		})
	}
	return lb
}

func retained(m bench.Measurement) string {
	return FormatBytes(m.Retained.Bytes) + " / " + FormatCount(m.Retained.Objects) + " objects"
}

func comparison(r compare.Report) *pattern.Comparison {
	base := r.Baseline()
	c := &pattern.Comparison{
		Label:    "Comparison",
		Baseline: base.Measurement.Variant,
		Changes:  make([]pattern.ComparisonItem, 0, len(r.Entries)-1),
	}
	for _, e := range r.Entries[1:] {
		c.Changes = append(c.Changes, pattern.ComparisonItem{
			Label:     e.Measurement.Variant,
			Baseline:  formatValue(r.Metric, base.Value),
			Value:     formatValue(r.Metric, e.Value),
			Ratio:     e.Ratio,
			Unbounded: e.Unbounded,
			Unit:      r.Metric.Unit(),
		})
	}
	return c
}

func formatValue(m compare.Metric, v uint64) string {
	if m.Unit() == "objects" {
		return FormatCount(v) + " objects"
	}
	return FormatBytes(v)
}
