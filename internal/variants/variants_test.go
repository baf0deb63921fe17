package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacit7/membench/pkg/bench"
)

func TestBuiltin_FixedOrder(t *testing.T) {
	vs := Builtin(1000)
	assert.Equal(t, []string{"strings", "symbols"}, Names(vs))
	for _, v := range vs {
		assert.Equal(t, 1000, v.Iterations)
		require.NotNil(t, v.Workload)
		assert.NoError(t, v.Workload())
	}
}

func TestStrings_AllocatesPerCall(t *testing.T) {
	allocs := testing.AllocsPerRun(100, Strings)
	assert.GreaterOrEqual(t, allocs, 1.0)
}

func TestSymbols_InternsToSameHandle(t *testing.T) {
	Symbols()
	first := symbolSink
	Symbols()
	assert.Equal(t, first, symbolSink)
	assert.Equal(t, symbol, symbolSink.Value())
}

func TestBuiltin_Measurable(t *testing.T) {
	for _, v := range Builtin(100) {
		m, err := bench.Measure(v.Name, v.Iterations, v.Workload)
		require.NoError(t, err)
		assert.Equal(t, v.Name, m.Variant)
	}
}

func TestSelect(t *testing.T) {
	all := Builtin(10)

	got, err := Select(all, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"strings", "symbols"}, Names(got))

	got, err = Select(all, []string{"symbols", "strings"})
	require.NoError(t, err)
	assert.Equal(t, []string{"strings", "symbols"}, Names(got), "run order is fixed")

	got, err = Select(all, []string{"symbols"})
	require.NoError(t, err)
	assert.Equal(t, []string{"symbols"}, Names(got))

	_, err = Select(all, []string{"floats"})
	require.ErrorIs(t, err, ErrUnknownVariant)
	assert.Contains(t, err.Error(), "strings, symbols")
}

func BenchmarkStrings(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		Strings()
	}
}

func BenchmarkSymbols(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		Symbols()
	}
}
