package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/psantana5/fibmeter/internal/fibo"
	"github.com/psantana5/fibmeter/internal/observe"
	"github.com/psantana5/fibmeter/internal/report"
)

// measure runs the linear sample -> compute -> sample -> print sequence
func (a *app) measure(ctx context.Context, n int, includeWords bool) error {
	logger := a.logger.WithField("n", n)

	sampler, err := observe.NewSampler()
	if err != nil {
		return err
	}
	logger.Debug("Sampler attached", map[string]interface{}{"pid": sampler.PID()})

	var words strings.Builder
	m, err := observe.Measure(ctx, sampler, func() (int, error) {
		return fibo.Compute(n, &words)
	})
	if err != nil {
		return fmt.Errorf("measurement failed: %w", err)
	}

	result := report.NewResult(n, m, words.String(), includeWords)
	if err := result.Write(a.stdout, a.settings.Output); err != nil {
		return err
	}
	result.LogSummary(logger)

	if a.settings.MetricsFile != "" {
		exporter := report.NewExporter()
		exporter.Record(result)
		if err := exporter.WriteFile(a.settings.MetricsFile); err != nil {
			return err
		}
		logger.Debug("Metrics written", map[string]interface{}{"path": a.settings.MetricsFile})
	}

	return nil
}
