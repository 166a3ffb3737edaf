package observe

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// Snapshot is a single read of process memory and CPU usage
type Snapshot struct {
	MemoryKB   uint64
	CPUPercent float64
}

// Sampler reads telemetry for one process. Nothing else.
type Sampler struct {
	pid  int32
	proc *process.Process
}

// NewSampler creates a sampler for the current process
func NewSampler() (*Sampler, error) {
	return NewSamplerForPID(int32(os.Getpid()))
}

// NewSamplerForPID creates a sampler for an arbitrary PID.
// Fails if the process cannot be found.
func NewSamplerForPID(pid int32) (*Sampler, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return nil, fmt.Errorf("failed to look up process %d: %w", pid, err)
	}
	return &Sampler{pid: pid, proc: proc}, nil
}

// PID returns the sampled process id
func (s *Sampler) PID() int32 {
	return s.pid
}

// Sample reads resident memory (KB) and CPU usage (%).
// CPU usage is the delta since the previous Sample call; the first call reports 0.
func (s *Sampler) Sample(ctx context.Context) (Snapshot, error) {
	mem, err := s.proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read memory for pid %d: %w", s.pid, err)
	}

	cpu, err := s.proc.PercentWithContext(ctx, 0)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read cpu for pid %d: %w", s.pid, err)
	}
	if cpu < 0 {
		cpu = 0
	}

	return Snapshot{
		MemoryKB:   mem.RSS / 1024,
		CPUPercent: cpu,
	}, nil
}
