// Package bench measures the memory allocated by named workloads.
//
// A Variant is run a fixed number of times in a tight loop between two
// runtime.MemStats reads. The deltas are recorded as a Measurement; a third
// read after a forced GC records what the loop left live on the heap.
package bench

import (
	"errors"
	"fmt"
)

// DefaultIterations is the iteration count used when a Variant leaves
// Iterations unset.
const DefaultIterations = 1000

var (
	// ErrInvalidIterations is returned when the iteration count is not positive.
	ErrInvalidIterations = errors.New("iterations must be greater than zero")
	// ErrEmptyName is returned when a variant has no name.
	ErrEmptyName = errors.New("variant name is empty")
	// ErrNilWorkload is returned when a variant has no workload.
	ErrNilWorkload = errors.New("workload is nil")
	// ErrWorkloadPanic wraps a value recovered from a panicking workload.
	ErrWorkloadPanic = errors.New("workload panicked")
)

// Workload is one unit of benchmarked work. A non-nil error stops the run.
type Workload func() error

// Func adapts a plain closure to a Workload that never fails.
func Func(fn func()) Workload {
	if fn == nil {
		return nil
	}
	return func() error {
		fn()
		return nil
	}
}

// Variant is one named workload under benchmark.
type Variant struct {
	Name       string
	Workload   Workload
	Iterations int // 0 = DefaultIterations
}

// Allocation is a pair of heap counters.
type Allocation struct {
	Bytes   uint64 `json:"bytes"`
	Objects uint64 `json:"objects"`
}

// Measurement is the allocation cost recorded for one variant run.
type Measurement struct {
	Variant    string     `json:"variant"`
	Iterations int        `json:"iterations"`
	Allocated  Allocation `json:"allocated"` // total allocated during the loop
	Retained   Allocation `json:"retained"`  // still live after a GC
}

// PerIteration returns the allocated bytes and objects averaged over the
// iteration count.
func (m Measurement) PerIteration() (bytes, objects float64) {
	if m.Iterations <= 0 {
		return 0, 0
	}
	n := float64(m.Iterations)
	return float64(m.Allocated.Bytes) / n, float64(m.Allocated.Objects) / n
}

// WorkloadError reports a workload that failed while being measured.
type WorkloadError struct {
	Variant   string
	Iteration int // zero-based index of the failing call
	Err       error
}

func (e *WorkloadError) Error() string {
	return fmt.Sprintf("variant %q failed at iteration %d: %v", e.Variant, e.Iteration, e.Err)
}

func (e *WorkloadError) Unwrap() error { return e.Err }
