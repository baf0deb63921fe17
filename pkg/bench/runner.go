package bench

import (
	"context"
	"time"
)

// Runner measures variants one after another.
type Runner struct {
	// OnMeasured, if set, is called after each successful measurement with
	// the wall time the variant took. It runs outside the measured loop.
	OnMeasured func(m Measurement, elapsed time.Duration)
}

// Run measures variants in order with a zero Runner.
func Run(ctx context.Context, variants []Variant) ([]Measurement, error) {
	var r Runner
	return r.Run(ctx, variants)
}

// Run measures each variant to completion before starting the next and stops
// at the first failure. ctx is checked between variants only; a workload that
// never returns blocks the run.
func (r *Runner) Run(ctx context.Context, variants []Variant) ([]Measurement, error) {
	out := make([]Measurement, 0, len(variants))
	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := v.Iterations
		if n == 0 {
			n = DefaultIterations
		}
		start := time.Now()
		m, err := Measure(v.Name, n, v.Workload)
		if err != nil {
			return nil, err
		}
		if r.OnMeasured != nil {
			r.OnMeasured(m, time.Since(start))
		}
		out = append(out, m)
	}
	return out, nil
}
