// Package variants holds the built-in workloads membench compares.
package variants

import (
	"errors"
	"fmt"
	"strings"
	"unique"

	"github.com/tacit7/membench/pkg/bench"
)

// ErrUnknownVariant is returned by Select for names not in the set.
var ErrUnknownVariant = errors.New("unknown variant")

const (
	literal = "this is a string"
	symbol  = "this_is_a_symbol"
)

// Sinks keep the compiler from proving the results dead.
var (
	stringSink string
	symbolSink unique.Handle[string]
)

// Strings builds a fresh heap copy of a literal on every call, like a
// mutable string literal that is allocated each time it is evaluated.
func Strings() {
	stringSink = strings.Clone(literal)
}

// Symbols interns a literal on every call. After the first call the
// canonical handle already exists and is only looked up.
func Symbols() {
	symbolSink = unique.Make(symbol)
}

// Builtin returns the built-in variants in their fixed run order.
func Builtin(iterations int) []bench.Variant {
	return []bench.Variant{
		{Name: "strings", Workload: bench.Func(Strings), Iterations: iterations},
		{Name: "symbols", Workload: bench.Func(Symbols), Iterations: iterations},
	}
}

// Names lists the variant names in order.
func Names(vs []bench.Variant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name
	}
	return out
}

// Select keeps the variants named in names, preserving the order of all.
// An empty names selects everything.
func Select(all []bench.Variant, names []string) ([]bench.Variant, error) {
	if len(names) == 0 {
		return all, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []bench.Variant
	for _, v := range all {
		if want[v.Name] {
			out = append(out, v)
			delete(want, v.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownVariant, n, strings.Join(Names(all), ", "))
		}
	}
	return out, nil
}
