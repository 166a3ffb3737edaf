package report

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Exporter holds gauges for a single run on a private registry.
// It is written out once as a node_exporter textfile, never served.
type Exporter struct {
	registry *prometheus.Registry

	value     prometheus.Gauge
	n         prometheus.Gauge
	duration  prometheus.Gauge
	wordBytes prometheus.Gauge
	memoryKB  *prometheus.GaugeVec
	cpu       *prometheus.GaugeVec
	runs      prometheus.Counter
}

// NewExporter creates an exporter with its own registry
func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		value: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibmeter_value",
			Help: "Computed Fibonacci value",
		}),
		n: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibmeter_n",
			Help: "Requested Fibonacci index",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibmeter_duration_seconds",
			Help: "Wall-clock time of the computation in seconds",
		}),
		wordBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibmeter_words_bytes",
			Help: "Length of the accumulated words buffer in bytes",
		}),
		memoryKB: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fibmeter_memory_kb",
			Help: "Process resident memory in KB",
		}, []string{"phase"}), // "before", "after"
		cpu: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fibmeter_cpu_percent",
			Help: "Process CPU usage percentage",
		}, []string{"phase"}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibmeter_runs_total",
			Help: "Measured computations recorded by this exporter",
		}),
	}

	e.registry.MustRegister(e.value, e.n, e.duration, e.wordBytes, e.memoryKB, e.cpu, e.runs)
	return e
}

// Record sets every gauge from r
func (e *Exporter) Record(r *Result) {
	e.runs.Inc()
	e.value.Set(float64(r.Value))
	e.n.Set(float64(r.N))
	e.duration.Set(r.Elapsed.Seconds())
	e.wordBytes.Set(float64(len(r.Words)))
	e.memoryKB.WithLabelValues("before").Set(float64(r.MemoryBeforeKB))
	e.memoryKB.WithLabelValues("after").Set(float64(r.MemoryAfterKB))
	e.cpu.WithLabelValues("before").Set(r.CPUBeforePercent)
	e.cpu.WithLabelValues("after").Set(r.CPUAfterPercent)
}

// WriteText writes the Prometheus text exposition to w
func (e *Exporter) WriteText(w io.Writer) error {
	families, err := e.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes the exposition to path atomically (temp file + rename)
func (e *Exporter) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
