package report

import (
	"fmt"
	"time"

	"github.com/psantana5/fibmeter/internal/logging"
	"github.com/psantana5/fibmeter/internal/observe"
)

// Result is the immutable outcome of one measured computation. Set once, never change.
type Result struct {
	N            int    `json:"n" yaml:"n"`
	Value        int    `json:"value" yaml:"value"`
	Words        string `json:"words,omitempty" yaml:"words,omitempty"`
	IncludeWords bool   `json:"-" yaml:"-"`

	Elapsed time.Duration `json:"-" yaml:"-"`
	TimeUS  int64         `json:"time_us" yaml:"time_us"`

	MemoryBeforeKB   uint64  `json:"memory_before_kb" yaml:"memory_before_kb"`
	MemoryAfterKB    uint64  `json:"memory_after_kb" yaml:"memory_after_kb"`
	CPUBeforePercent float64 `json:"cpu_before_percent" yaml:"cpu_before_percent"`
	CPUAfterPercent  float64 `json:"cpu_after_percent" yaml:"cpu_after_percent"`
}

// NewResult freezes a measurement into a Result.
// words is only kept when includeWords is set.
func NewResult(n int, m observe.Measurement, words string, includeWords bool) *Result {
	r := &Result{
		N:                n,
		Value:            m.Value,
		IncludeWords:     includeWords,
		Elapsed:          m.Elapsed,
		TimeUS:           m.Elapsed.Microseconds(),
		MemoryBeforeKB:   m.Before.MemoryKB,
		MemoryAfterKB:    m.After.MemoryKB,
		CPUBeforePercent: m.Before.CPUPercent,
		CPUAfterPercent:  m.After.CPUPercent,
	}
	if includeWords {
		r.Words = words
	}
	return r
}

// MemoryDeltaKB returns after minus before, which may be negative
func (r *Result) MemoryDeltaKB() int64 {
	return int64(r.MemoryAfterKB) - int64(r.MemoryBeforeKB)
}

// LogSummary emits a one-line summary
func (r *Result) LogSummary(logger *logging.Logger) {
	logger.Info(fmt.Sprintf("FIB n=%d | value=%d | runtime=%dus | mem=%dKB->%dKB | cpu=%.2f%%->%.2f%%",
		r.N,
		r.Value,
		r.TimeUS,
		r.MemoryBeforeKB,
		r.MemoryAfterKB,
		r.CPUBeforePercent,
		r.CPUAfterPercent,
	), map[string]interface{}{"words_bytes": len(r.Words)})
}
