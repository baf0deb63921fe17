package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tacit7/membench/pkg/compare"
	"github.com/tacit7/membench/pkg/render"
)

// Source names where a resolved value came from.
type Source string

const (
	SourceCLI     Source = "cli"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// CliFlags holds parsed command-line values. The *Set fields record whether
// the user passed the flag explicitly.
type CliFlags struct {
	ConfigPath string
	Iterations int
	Format     string
	Theme      string
	Metric     string
	NoColor    bool
	Debug      bool
	Variants   []string

	IterationsSet bool
	FormatSet     bool
	ThemeSet      bool
	MetricSet     bool
	NoColorSet    bool
	DebugSet      bool
}

// Resolved is the final configuration after applying all priority rules.
type Resolved struct {
	Iterations int
	Format     string
	Theme      string
	Metric     compare.Metric
	NoColor    bool
	Debug      bool
	Variants   []string

	// ConfigFile is the file that was read, "" if none.
	ConfigFile string
	// Sources maps a field name ("iterations", "format", ...) to its origin.
	Sources map[string]Source
}

// Resolve merges defaults, the config file, the environment and CLI flags.
func Resolve(flags CliFlags) (*Resolved, error) {
	file, path, err := LoadFile(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Iterations: DefaultIterations,
		Format:     DefaultFormat,
		Theme:      DefaultTheme,
		ConfigFile: path,
		Sources: map[string]Source{
			"iterations": SourceDefault,
			"format":     SourceDefault,
			"theme":      SourceDefault,
			"metric":     SourceDefault,
			"no_color":   SourceDefault,
			"debug":      SourceDefault,
			"variants":   SourceDefault,
		},
	}
	metric := DefaultMetric

	// file
	if file.Iterations != nil {
		r.Iterations, r.Sources["iterations"] = *file.Iterations, SourceFile
	}
	if file.Format != "" {
		r.Format, r.Sources["format"] = file.Format, SourceFile
	}
	if file.Theme != "" {
		r.Theme, r.Sources["theme"] = file.Theme, SourceFile
	}
	if file.Metric != "" {
		metric, r.Sources["metric"] = file.Metric, SourceFile
	}
	if file.NoColor != nil {
		r.NoColor, r.Sources["no_color"] = *file.NoColor, SourceFile
	}
	if file.Debug != nil {
		r.Debug, r.Sources["debug"] = *file.Debug, SourceFile
	}
	if len(file.Variants) > 0 {
		r.Variants, r.Sources["variants"] = file.Variants, SourceFile
	}

	// env
	if v := os.Getenv("MEMBENCH_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MEMBENCH_ITERATIONS: %w", err)
		}
		r.Iterations, r.Sources["iterations"] = n, SourceEnv
	}
	if v := os.Getenv("MEMBENCH_FORMAT"); v != "" {
		r.Format, r.Sources["format"] = v, SourceEnv
	}
	if v := os.Getenv("MEMBENCH_THEME"); v != "" {
		r.Theme, r.Sources["theme"] = v, SourceEnv
	}
	if v := os.Getenv("MEMBENCH_METRIC"); v != "" {
		metric, r.Sources["metric"] = v, SourceEnv
	}
	if b := envNoColor(); b != nil {
		r.NoColor, r.Sources["no_color"] = *b, SourceEnv
	}
	if b := getEnvBool("MEMBENCH_DEBUG"); b != nil {
		r.Debug, r.Sources["debug"] = *b, SourceEnv
	}

	// cli
	if flags.IterationsSet {
		r.Iterations, r.Sources["iterations"] = flags.Iterations, SourceCLI
	}
	if flags.FormatSet {
		r.Format, r.Sources["format"] = flags.Format, SourceCLI
	}
	if flags.ThemeSet {
		r.Theme, r.Sources["theme"] = flags.Theme, SourceCLI
	}
	if flags.MetricSet {
		metric, r.Sources["metric"] = flags.Metric, SourceCLI
	}
	if flags.NoColorSet {
		r.NoColor, r.Sources["no_color"] = flags.NoColor, SourceCLI
	}
	if flags.DebugSet {
		r.Debug, r.Sources["debug"] = flags.Debug, SourceCLI
	}
	if len(flags.Variants) > 0 {
		r.Variants, r.Sources["variants"] = flags.Variants, SourceCLI
	}

	if r.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be greater than zero (got %d from %s)", r.Iterations, r.Sources["iterations"])
	}
	if r.Format != "auto" && !render.ValidFormat(r.Format) {
		return nil, fmt.Errorf("unknown format %q (expected auto, %s)", r.Format, strings.Join(render.Formats, ", "))
	}
	if !validTheme(r.Theme) {
		return nil, fmt.Errorf("unknown theme %q (expected %s)", r.Theme, strings.Join(render.Themes, ", "))
	}
	if r.Metric, err = compare.ParseMetric(metric); err != nil {
		return nil, err
	}
	return r, nil
}

func validTheme(name string) bool {
	for _, t := range render.Themes {
		if t == name {
			return true
		}
	}
	return false
}

// envNoColor honors MEMBENCH_NO_COLOR as a bool and NO_COLOR as "set means on".
func envNoColor() *bool {
	if b := getEnvBool("MEMBENCH_NO_COLOR"); b != nil {
		return b
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		on := true
		if b, err := strconv.ParseBool(v); err == nil {
			on = b
		}
		return &on
	}
	return nil
}

// getEnvBool returns the parsed value of the first set, parseable variable.
func getEnvBool(keys ...string) *bool {
	for _, k := range keys {
		v := os.Getenv(k)
		if v == "" {
			continue
		}
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}
