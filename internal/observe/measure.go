package observe

import (
	"context"
	"time"
)

// Measurement is the before/after telemetry around one call
type Measurement struct {
	Value   int
	Elapsed time.Duration
	Before  Snapshot
	After   Snapshot
}

// Measure samples the process, runs fn, then samples again.
// The sequence is strictly before -> compute -> after; an error from fn stops it
// without taking the after sample.
func Measure(ctx context.Context, s *Sampler, fn func() (int, error)) (Measurement, error) {
	before, err := s.Sample(ctx)
	if err != nil {
		return Measurement{}, err
	}

	timing := NewTiming()
	value, err := fn()
	timing.Complete()
	if err != nil {
		return Measurement{}, err
	}

	after, err := s.Sample(ctx)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{
		Value:   value,
		Elapsed: timing.Duration(),
		Before:  before,
		After:   after,
	}, nil
}
