package render

import "github.com/charmbracelet/lipgloss"

// SteepRatio is the overhead at which a variant is drawn as steep rather
// than merely costlier.
const SteepRatio = 2.0

// Theme styles a ranking. Leader marks the baseline row; the cost styles
// grade each comparison line by how far it sits above the baseline.
type Theme struct {
	Name   string
	Title  lipgloss.Style
	Label  lipgloss.Style
	Leader lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Same   lipgloss.Style
	Costly lipgloss.Style
	Steep  lipgloss.Style
	Icons  ThemeIcons
}

// ThemeIcons marks rank positions and cost tiers.
type ThemeIcons struct {
	Baseline string
	Same     string
	Costlier string
	Steep    string
	Info     string
}

func fg(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  fg("39"),
		Leader: fg("34").Bold(true),
		Value:  fg("255"),
		Muted:  fg("242"),
		Same:   fg("34"),
		Costly: fg("214"),
		Steep:  fg("196").Bold(true),
		Icons: ThemeIcons{
			Baseline: "★",
			Same:     "=",
			Costlier: "↑",
			Steep:    "⇈",
			Info:     "●",
		},
	}
}

// OrcaTheme returns a muted theme for long sessions.
func OrcaTheme() Theme {
	return Theme{
		Name:   "orca",
		Title:  lipgloss.NewStyle().Bold(true).Underline(true),
		Label:  fg("75"),
		Leader: fg("108").Underline(true),
		Value:  fg("252"),
		Muted:  fg("245"),
		Same:   fg("108"),
		Costly: fg("179"),
		Steep:  fg("167"),
		Icons: ThemeIcons{
			Baseline: "*",
			Same:     "=",
			Costlier: "↑",
			Steep:    "↑↑",
			Info:     "·",
		},
	}
}

// MonoTheme returns a colorless theme with ASCII icons.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:   "mono",
		Title:  plain,
		Label:  plain,
		Leader: plain,
		Value:  plain,
		Muted:  plain,
		Same:   plain,
		Costly: plain,
		Steep:  plain,
		Icons: ThemeIcons{
			Baseline: "*",
			Same:     "=",
			Costlier: "^",
			Steep:    "^^",
			Info:     "-",
		},
	}
}

// Themes lists the built-in theme names.
var Themes = []string{"default", "orca", "mono"}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// costTier picks the icon and style for an overhead against the baseline.
func (th Theme) costTier(ratio float64, unbounded bool) (string, lipgloss.Style) {
	switch {
	case unbounded || ratio >= SteepRatio:
		return th.Icons.Steep, th.Steep
	case ratio > 1:
		return th.Icons.Costlier, th.Costly
	default:
		return th.Icons.Same, th.Same
	}
}
