// Package compare ranks measurements and reports relative allocation overhead.
package compare

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tacit7/membench/pkg/bench"
)

var (
	// ErrNoMeasurements is returned when Compare is given nothing to rank.
	ErrNoMeasurements = errors.New("no measurements to compare")
	// ErrUnknownMetric is returned by ParseMetric for unrecognised names.
	ErrUnknownMetric = errors.New("unknown metric")
)

// Metric selects the measurement field entries are ranked by.
type Metric string

const (
	MetricAllocatedBytes   Metric = "memory"
	MetricAllocatedObjects Metric = "objects"
	MetricRetainedBytes    Metric = "retained"
)

// DefaultMetric ranks by total bytes allocated.
const DefaultMetric = MetricAllocatedBytes

// Metrics lists the supported metrics in display order.
func Metrics() []Metric {
	return []Metric{MetricAllocatedBytes, MetricAllocatedObjects, MetricRetainedBytes}
}

// ParseMetric maps a metric name to a Metric. The empty string selects
// DefaultMetric.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultMetric, nil
	case "memory", "bytes", "allocated":
		return MetricAllocatedBytes, nil
	case "objects":
		return MetricAllocatedObjects, nil
	case "retained":
		return MetricRetainedBytes, nil
	default:
		return "", fmt.Errorf("%w %q (expected memory, objects, retained)", ErrUnknownMetric, name)
	}
}

// Unit is the display unit for values of m.
func (m Metric) Unit() string {
	if m == MetricAllocatedObjects {
		return "objects"
	}
	return "bytes"
}

// Value extracts the metric from a measurement.
func (m Metric) Value(ms bench.Measurement) uint64 {
	switch m {
	case MetricAllocatedObjects:
		return ms.Allocated.Objects
	case MetricRetainedBytes:
		return ms.Retained.Bytes
	default:
		return ms.Allocated.Bytes
	}
}

// Entry is one ranked measurement.
type Entry struct {
	Measurement bench.Measurement `json:"measurement"`
	Value       uint64            `json:"value"`
	// Ratio is Value over the baseline's value. It is 1 for the baseline and
	// 0 when Unbounded.
	Ratio float64 `json:"ratio"`
	// Baseline marks the first (smallest) entry.
	Baseline bool `json:"baseline"`
	// Unbounded is set when the baseline value is zero and this one is not.
	Unbounded bool `json:"unbounded"`
}

// Same reports whether the entry costs the same as the baseline.
func (e Entry) Same() bool {
	return !e.Unbounded && e.Ratio == 1
}

// Report is a ranked summary. Entries are ascending by Metric.
type Report struct {
	Metric  Metric  `json:"metric"`
	Entries []Entry `json:"entries"`
}

// Baseline returns the smallest entry.
func (r Report) Baseline() Entry {
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[0]
}

// Compare ranks measurements ascending by metric and computes each entry's
// ratio to the minimum. Ties keep their input order. The input slice is not
// modified.
func Compare(measurements []bench.Measurement, metric Metric) (Report, error) {
	if len(measurements) == 0 {
		return Report{}, ErrNoMeasurements
	}
	if metric == "" {
		metric = DefaultMetric
	}
	if _, err := ParseMetric(string(metric)); err != nil {
		return Report{}, err
	}

	entries := make([]Entry, len(measurements))
	for i, m := range measurements {
		entries[i] = Entry{Measurement: m, Value: metric.Value(m)}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		default:
			return 0
		}
	})

	base := entries[0].Value
	for i := range entries {
		e := &entries[i]
		switch {
		case e.Value == base:
			e.Ratio = 1
		case base == 0:
			e.Unbounded = true
		default:
			e.Ratio = float64(e.Value) / float64(base)
		}
	}
	entries[0].Baseline = true

	return Report{Metric: metric, Entries: entries}, nil
}
