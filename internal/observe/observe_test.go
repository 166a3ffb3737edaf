package observe

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTimingDuration(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timing := &Timing{
		StartedAt:   start,
		CompletedAt: start.Add(1500 * time.Microsecond),
	}

	if got := timing.Duration(); got != 1500*time.Microsecond {
		t.Errorf("Duration() = %v, want 1.5ms", got)
	}
	if got := timing.Micros(); got != 1500 {
		t.Errorf("Micros() = %d, want 1500", got)
	}
}

func TestTimingIncomplete(t *testing.T) {
	timing := NewTiming()
	if timing.Duration() < 0 {
		t.Error("Expected non-negative duration before Complete")
	}
	if !timing.CompletedAt.IsZero() {
		t.Error("Expected CompletedAt to be zero before Complete")
	}
}

func TestSamplerCurrentProcess(t *testing.T) {
	s, err := NewSampler()
	if err != nil {
		t.Fatalf("Failed to create sampler: %v", err)
	}

	first, err := s.Sample(context.Background())
	if err != nil {
		t.Fatalf("Failed to sample: %v", err)
	}
	if first.MemoryKB == 0 {
		t.Error("Expected non-zero resident memory for the test process")
	}
	if first.CPUPercent != 0 {
		t.Errorf("Expected first CPU sample to be 0, got %f", first.CPUPercent)
	}

	second, err := s.Sample(context.Background())
	if err != nil {
		t.Fatalf("Failed to sample: %v", err)
	}
	if second.CPUPercent < 0 {
		t.Errorf("Expected non-negative CPU usage, got %f", second.CPUPercent)
	}
}

func TestSamplerMissingProcess(t *testing.T) {
	// PIDs are capped well below this on every supported platform
	if _, err := NewSamplerForPID(1 << 30); err == nil {
		t.Error("Expected error for non-existent PID")
	}
}

func TestMeasure(t *testing.T) {
	s, err := NewSampler()
	if err != nil {
		t.Fatalf("Failed to create sampler: %v", err)
	}

	m, err := Measure(context.Background(), s, func() (int, error) {
		time.Sleep(2 * time.Millisecond)
		return 55, nil
	})
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if m.Value != 55 {
		t.Errorf("Expected value 55, got %d", m.Value)
	}
	if m.Elapsed < 2*time.Millisecond {
		t.Errorf("Expected elapsed >= 2ms, got %v", m.Elapsed)
	}
	if m.Before.MemoryKB == 0 || m.After.MemoryKB == 0 {
		t.Error("Expected memory samples on both sides of the call")
	}
}

func TestMeasurePropagatesError(t *testing.T) {
	s, err := NewSampler()
	if err != nil {
		t.Fatalf("Failed to create sampler: %v", err)
	}

	boom := errors.New("boom")
	_, err = Measure(context.Background(), s, func() (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped boom error, got %v", err)
	}
}
