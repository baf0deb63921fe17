package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacit7/membench/pkg/compare"
)

// isolate runs the test from an empty directory with no config file and no
// membench environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, k := range []string{
		"MEMBENCH_ITERATIONS", "MEMBENCH_FORMAT", "MEMBENCH_THEME", "MEMBENCH_METRIC",
		"MEMBENCH_NO_COLOR", "NO_COLOR", "MEMBENCH_DEBUG",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadFile_NoFile(t *testing.T) {
	isolate(t)
	cfg, path, err := LoadFile("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, &FileConfig{}, cfg)
}

func TestLoadFile_LocalBeatsXDG(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, FileName), "iterations: 10\n")
	writeFile(t, filepath.Join(dir, "xdg", "membench", FileName), "iterations: 20\n")

	cfg, path, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, FileName, path)
	require.NotNil(t, cfg.Iterations)
	assert.Equal(t, 10, *cfg.Iterations)
}

func TestLoadFile_UsesXDGWhenLocalMissing(t *testing.T) {
	dir := isolate(t)
	xdg := filepath.Join(dir, "xdg", "membench", FileName)
	writeFile(t, xdg, "theme: orca\nvariants: [symbols]\nno_color: true\n")

	cfg, path, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, xdg, path)
	assert.Equal(t, "orca", cfg.Theme)
	assert.Equal(t, []string{"symbols"}, cfg.Variants)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)
}

func TestLoadFile_ExplicitMissingIsError(t *testing.T) {
	dir := isolate(t)
	_, _, err := LoadFile(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, FileName), "iterations: [not a number\n")
	_, _, err := LoadFile("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestResolve_Defaults(t *testing.T) {
	isolate(t)
	r, err := Resolve(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, DefaultIterations, r.Iterations)
	assert.Equal(t, "auto", r.Format)
	assert.Equal(t, "default", r.Theme)
	assert.Equal(t, compare.MetricAllocatedBytes, r.Metric)
	assert.False(t, r.NoColor)
	assert.Empty(t, r.ConfigFile)
	for field, src := range r.Sources {
		assert.Equal(t, SourceDefault, src, field)
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		env        map[string]string
		flags      CliFlags
		want       int
		wantSource Source
	}{
		{name: "file over default", file: "iterations: 50\n", want: 50, wantSource: SourceFile},
		{
			name:       "env over file",
			file:       "iterations: 50\n",
			env:        map[string]string{"MEMBENCH_ITERATIONS": "75"},
			want:       75,
			wantSource: SourceEnv,
		},
		{
			name:       "cli over env",
			file:       "iterations: 50\n",
			env:        map[string]string{"MEMBENCH_ITERATIONS": "75"},
			flags:      CliFlags{Iterations: 99, IterationsSet: true},
			want:       99,
			wantSource: SourceCLI,
		},
		{
			name:       "unset cli flag does not override",
			env:        map[string]string{"MEMBENCH_ITERATIONS": "75"},
			flags:      CliFlags{Iterations: 1000},
			want:       75,
			wantSource: SourceEnv,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, FileName), tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			r, err := Resolve(tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Iterations)
			assert.Equal(t, tt.wantSource, r.Sources["iterations"])
		})
	}
}

func TestResolve_NoColor(t *testing.T) {
	t.Run("NO_COLOR any value", func(t *testing.T) {
		isolate(t)
		t.Setenv("NO_COLOR", "yes")
		r, err := Resolve(CliFlags{})
		require.NoError(t, err)
		assert.True(t, r.NoColor)
		assert.Equal(t, SourceEnv, r.Sources["no_color"])
	})
	t.Run("MEMBENCH_NO_COLOR wins over NO_COLOR", func(t *testing.T) {
		isolate(t)
		t.Setenv("NO_COLOR", "1")
		t.Setenv("MEMBENCH_NO_COLOR", "false")
		r, err := Resolve(CliFlags{})
		require.NoError(t, err)
		assert.False(t, r.NoColor)
	})
	t.Run("flag wins", func(t *testing.T) {
		isolate(t)
		t.Setenv("NO_COLOR", "1")
		r, err := Resolve(CliFlags{NoColor: false, NoColorSet: true})
		require.NoError(t, err)
		assert.False(t, r.NoColor)
		assert.Equal(t, SourceCLI, r.Sources["no_color"])
	})
}

func TestResolve_FileFields(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, FileName), "format: json\ntheme: mono\nmetric: objects\ndebug: true\nvariants: [strings]\n")

	r, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, "json", r.Format)
	assert.Equal(t, "mono", r.Theme)
	assert.Equal(t, compare.MetricAllocatedObjects, r.Metric)
	assert.True(t, r.Debug)
	assert.Equal(t, []string{"strings"}, r.Variants)
	assert.Equal(t, FileName, r.ConfigFile)
}

func TestResolve_CLIVariantsReplaceFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, FileName), "variants: [strings]\n")

	r, err := Resolve(CliFlags{Variants: []string{"symbols"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"symbols"}, r.Variants)
	assert.Equal(t, SourceCLI, r.Sources["variants"])
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		env   map[string]string
		flags CliFlags
		want  string
	}{
		{name: "zero file iterations", file: "iterations: 0\n", want: "iterations must be greater than zero (got 0 from file)"},
		{name: "negative file iterations", file: "iterations: -1\n", want: "iterations must be greater than zero (got -1 from file)"},
		{name: "zero iterations", flags: CliFlags{Iterations: 0, IterationsSet: true}, want: "iterations must be greater than zero"},
		{name: "negative env iterations", env: map[string]string{"MEMBENCH_ITERATIONS": "-3"}, want: "iterations must be greater than zero"},
		{name: "non-numeric env iterations", env: map[string]string{"MEMBENCH_ITERATIONS": "many"}, want: "MEMBENCH_ITERATIONS"},
		{name: "unknown format", flags: CliFlags{Format: "xml", FormatSet: true}, want: `unknown format "xml"`},
		{name: "unknown theme", env: map[string]string{"MEMBENCH_THEME": "neon"}, want: `unknown theme "neon"`},
		{name: "unknown metric", flags: CliFlags{Metric: "cpu", MetricSet: true}, want: "unknown metric"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, FileName), tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Resolve(tt.flags)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
