package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tacit7/membench/pkg/pattern"
)

const maxNameWidth = 40

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Leaderboard:
		return t.renderLeaderboard(v)
	case *pattern.Comparison:
		return t.renderComparison(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Title.Render(s.Label))
		sb.WriteString("\n")
	}
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(style.Render(icon + " " + m.Label + ": " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderLeaderboard(l *pattern.Leaderboard) string {
	if len(l.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	if l.Label != "" {
		header := l.Label
		if l.MetricName != "" {
			header += " (" + l.MetricName + ")"
		}
		sb.WriteString(t.theme.Title.Render(header))
		sb.WriteString("\n")
	}

	maxName, maxMetric, maxObjects := 0, 0, 0
	for _, item := range l.Items {
		maxName = max(maxName, runewidth.StringWidth(item.Name))
		maxMetric = max(maxMetric, runewidth.StringWidth(item.Metric))
		maxObjects = max(maxObjects, runewidth.StringWidth(item.Objects))
	}
	maxName = min(maxName, t.nameCap())

	for _, item := range l.Items {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%2d. ", item.Rank)))
		nameStyle := t.theme.Label
		if item.Baseline {
			nameStyle = t.theme.Leader
		}
		name := runewidth.Truncate(item.Name, maxName, "...")
		sb.WriteString(nameStyle.Render(padRight(name, maxName)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Value.Render(padLeft(item.Metric, maxMetric)))
		sb.WriteString("  ")
		sb.WriteString(padLeft(item.Objects, maxObjects))
		if item.Retained != "" {
			sb.WriteString(t.theme.Muted.Render("  (retained " + item.Retained + ")"))
		}
		if item.Baseline {
			sb.WriteString(" ")
			sb.WriteString(t.theme.Leader.Render(t.theme.Icons.Baseline))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderComparison(c *pattern.Comparison) string {
	if len(c.Changes) == 0 {
		return ""
	}
	var sb strings.Builder
	if c.Label != "" {
		sb.WriteString(t.theme.Title.Render(c.Label))
		sb.WriteString("\n")
	}

	maxName := runewidth.StringWidth(c.Baseline)
	for _, item := range c.Changes {
		maxName = max(maxName, runewidth.StringWidth(item.Label))
	}
	maxName = min(maxName, t.nameCap())

	if c.Baseline != "" && len(c.Changes) > 0 {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Leader.Render(padRight(runewidth.Truncate(c.Baseline, maxName, "..."), maxName)))
		sb.WriteString(": ")
		sb.WriteString(t.theme.Muted.Render(c.Changes[0].Baseline))
		sb.WriteString("\n")
	}

	for _, item := range c.Changes {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Label.Render(padRight(runewidth.Truncate(item.Label, maxName, "..."), maxName)))
		sb.WriteString(": ")
		sb.WriteString(t.theme.Muted.Render(item.Value))
		sb.WriteString(" - ")
		icon, style := t.theme.costTier(item.Ratio, item.Unbounded)
		sb.WriteString(style.Render(icon + " " + item.Overhead()))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Icons.Baseline, t.theme.Leader
	case "error":
		return t.theme.Icons.Steep, t.theme.Steep
	case "warning":
		return t.theme.Icons.Costlier, t.theme.Costly
	default:
		return t.theme.Icons.Info, t.theme.Muted
	}
}

// nameCap bounds the name column so a row fits the terminal.
func (t *Terminal) nameCap() int {
	return max(8, min(maxNameWidth, t.width/3))
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
