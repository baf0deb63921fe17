// membench measures and compares the memory allocated by named workloads.
//
// Usage:
//
//	membench                          # strings vs symbols, 1000 iterations each
//	membench --iterations 10000 --metric objects
//	membench --variant symbols --format json
//
// Output modes (auto-detected):
//
//	terminal  styled Unicode output (default when TTY)
//	llm       terse plain text (default when piped)
//	json      structured JSON for automation
//
// Exit codes: 0 success, 1 a workload failed, 2 usage or config error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/term"

	"github.com/tacit7/membench/internal/config"
	"github.com/tacit7/membench/internal/diag"
	"github.com/tacit7/membench/internal/logging"
	"github.com/tacit7/membench/internal/variants"
	"github.com/tacit7/membench/internal/version"
	"github.com/tacit7/membench/pkg/bench"
	"github.com/tacit7/membench/pkg/compare"
	"github.com/tacit7/membench/pkg/mapper"
	"github.com/tacit7/membench/pkg/render"
)

// builtinVariants is swapped in tests.
var builtinVariants = variants.Builtin

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, showVersion, diagAddr, code := parseFlags(args, stderr)
	if code >= 0 {
		return code
	}
	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	cfg, err := config.Resolve(flags)
	if err != nil {
		fmt.Fprintf(stderr, "membench: %v\n", err)
		return 2
	}

	logging.Setup(stderr, cfg.Debug)
	defer logging.Close()
	logConfig(cfg)

	if diagAddr != "" {
		if diagAddr == "auto" {
			diagAddr = ""
		}
		stop, err := diag.Start(diagAddr)
		if err != nil {
			fmt.Fprintf(stderr, "membench: %v\n", err)
			return 2
		}
		defer stop()
	}

	selected, err := variants.Select(builtinVariants(cfg.Iterations), cfg.Variants)
	if err != nil {
		fmt.Fprintf(stderr, "membench: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := bench.Runner{OnMeasured: func(m bench.Measurement, elapsed time.Duration) {
		logx.Debugf("measured %s: %d iterations, %d bytes, %d objects in %s",
			m.Variant, m.Iterations, m.Allocated.Bytes, m.Allocated.Objects, elapsed)
	}}
	measurements, err := runner.Run(ctx, selected)
	if err != nil {
		var werr *bench.WorkloadError
		if errors.As(err, &werr) {
			logx.Debugf("workload failure: variant=%s iteration=%d", werr.Variant, werr.Iteration)
		}
		fmt.Fprintf(stderr, "membench: %v\n", err)
		return 1
	}

	report, err := compare.Compare(measurements, cfg.Metric)
	if err != nil {
		fmt.Fprintf(stderr, "membench: %v\n", err)
		return 1
	}

	output := selectRenderer(resolveFormat(cfg.Format, stdout), cfg.Theme, cfg.NoColor, stdout).
		Render(mapper.FromReport(report))
	fmt.Fprint(stdout, output)
	return 0
}

// parseFlags returns (flags, showVersion, diagAddr, -1) on success, or an
// exit code >= 0 when parsing failed.
func parseFlags(args []string, stderr io.Writer) (config.CliFlags, bool, string, int) {
	var flags config.CliFlags
	var variantNames stringList

	fs := flag.NewFlagSet("membench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.ConfigPath, "config", "", "Path to a .membench.yaml config file")
	fs.IntVar(&flags.Iterations, "iterations", config.DefaultIterations, "Workload calls per variant")
	fs.StringVar(&flags.Format, "format", config.DefaultFormat, "Output format: auto, terminal, llm, json")
	fs.StringVar(&flags.Theme, "theme", config.DefaultTheme, "Theme: default, orca, mono")
	fs.StringVar(&flags.Metric, "metric", config.DefaultMetric, "Rank by: memory, objects, retained")
	fs.BoolVar(&flags.NoColor, "no-color", false, "Disable colors")
	fs.BoolVar(&flags.Debug, "debug", false, "Log diagnostics to stderr")
	fs.Var(&variantNames, "variant", "Variant to run (repeatable; default all)")
	diagAddr := fs.String("diag", "", `Start a gops agent on this address ("auto" for any free port)`)
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return flags, false, "", 0
		}
		return flags, false, "", 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "membench: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return flags, false, "", 2
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			flags.IterationsSet = true
		case "format":
			flags.FormatSet = true
		case "theme":
			flags.ThemeSet = true
		case "metric":
			flags.MetricSet = true
		case "no-color":
			flags.NoColorSet = true
		case "debug":
			flags.DebugSet = true
		}
	})
	flags.Variants = variantNames
	return flags, *showVersion, *diagAddr, -1
}

func logConfig(cfg *config.Resolved) {
	if cfg.ConfigFile != "" {
		logx.Debugf("config file: %s", cfg.ConfigFile)
	}
	fields := make([]string, 0, len(cfg.Sources))
	for field := range cfg.Sources {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		logx.Debugf("config %s from %s", field, cfg.Sources[field])
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

func selectRenderer(mode, themeName string, noColor bool, w io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "llm":
		return render.NewLLM()
	default:
		theme := render.ThemeByName(themeName)
		if noColor {
			theme = render.MonoTheme()
		}
		return render.NewTerminal(theme, termWidth(w))
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if isTTYWriter(w) {
		return "terminal"
	}
	return "llm"
}
