package bench

import (
	"fmt"
	"runtime"
)

// Measure invokes workload exactly iterations times and records the memory
// allocated while doing so.
//
// Allocation counters come from runtime.MemStats and are process-wide; other
// goroutines allocating during the loop are counted too. If the workload
// fails or panics, Measure returns a *WorkloadError and no Measurement.
func Measure(name string, iterations int, workload Workload) (Measurement, error) {
	switch {
	case name == "":
		return Measurement{}, ErrEmptyName
	case workload == nil:
		return Measurement{}, fmt.Errorf("variant %q: %w", name, ErrNilWorkload)
	case iterations <= 0:
		return Measurement{}, fmt.Errorf("variant %q: %w (got %d)", name, ErrInvalidIterations, iterations)
	}

	// All three snapshots exist before the first read so their storage is
	// not attributed to the loop.
	var before, after, settled runtime.MemStats

	runtime.GC()
	runtime.ReadMemStats(&before)
	failedAt, err := loop(workload, iterations)
	runtime.ReadMemStats(&after)
	if err != nil {
		return Measurement{}, &WorkloadError{Variant: name, Iteration: failedAt, Err: err}
	}

	runtime.GC()
	runtime.ReadMemStats(&settled)

	return Measurement{
		Variant:    name,
		Iterations: iterations,
		Allocated: Allocation{
			Bytes:   delta(before.TotalAlloc, after.TotalAlloc),
			Objects: delta(before.Mallocs, after.Mallocs),
		},
		Retained: Allocation{
			Bytes:   delta(before.HeapAlloc, settled.HeapAlloc),
			Objects: delta(before.HeapObjects, settled.HeapObjects),
		},
	}, nil
}

// loop runs w n times. On failure it returns the index of the failing call.
func loop(w Workload, n int) (i int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkloadPanic, r)
		}
	}()
	for i = 0; i < n; i++ {
		if err = w(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// delta clamps at zero; heap gauges can shrink across a GC.
func delta(from, to uint64) uint64 {
	if to < from {
		return 0
	}
	return to - from
}
