package render

import (
	"fmt"
	"strings"

	"github.com/tacit7/membench/pkg/pattern"
)

// LLM renders patterns as terse plain text for logs and AI consumption.
// Zero ANSI codes, stable order, one SCOPE line.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.Leaderboard:
			l.renderLeaderboard(&sb, v)
		case *pattern.Comparison:
			l.renderComparison(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	parts := make([]string, 0, len(s.Metrics)+1)
	if s.Label != "" {
		parts = append(parts, s.Label)
	}
	for _, m := range s.Metrics {
		parts = append(parts, m.Label+"="+m.Value)
	}
	sb.WriteString("SCOPE: " + strings.Join(parts, ", ") + "\n")
}

func (l *LLM) renderLeaderboard(sb *strings.Builder, lb *pattern.Leaderboard) {
	if len(lb.Items) == 0 {
		return
	}
	sb.WriteString("\n## ranking")
	if lb.MetricName != "" {
		sb.WriteString(" by " + lb.MetricName)
	}
	sb.WriteString("\n")
	for _, item := range lb.Items {
		line := fmt.Sprintf("  %d. %s %s, %s", item.Rank, item.Name, item.Metric, item.Objects)
		if item.Retained != "" {
			line += ", retained " + item.Retained
		}
		if item.Baseline {
			line += " [baseline]"
		}
		sb.WriteString(line + "\n")
	}
}

func (l *LLM) renderComparison(sb *strings.Builder, c *pattern.Comparison) {
	if len(c.Changes) == 0 {
		return
	}
	sb.WriteString("\n## comparison")
	if c.Baseline != "" {
		sb.WriteString(" vs " + c.Baseline)
	}
	sb.WriteString("\n")
	for _, item := range c.Changes {
		sb.WriteString(fmt.Sprintf("  %s %s (baseline %s) %s\n", item.Label, item.Value, item.Baseline, item.Overhead()))
	}
}
