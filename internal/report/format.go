package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// ErrUnknownFormat is returned for an output format Write does not support
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported output format
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatTable}
}

// Write renders r in the given format
func (r *Result) Write(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	case FormatTable:
		return r.WriteTable(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText writes the fixed key=value report.
// Line order never changes.
func (r *Result) WriteText(w io.Writer) error {
	lines := []string{fmt.Sprintf("value=%d", r.Value)}
	if r.IncludeWords {
		lines = append(lines, "words="+r.Words)
	}
	lines = append(lines,
		"",
		"--- METRICS ---",
		fmt.Sprintf("time_us=%d in microseconds", r.TimeUS),
		fmt.Sprintf("memory_before_kb=%d", r.MemoryBeforeKB),
		fmt.Sprintf("memory_after_kb=%d", r.MemoryAfterKB),
		"cpu_before_percent="+formatPercent(r.CPUBeforePercent),
		"cpu_after_percent="+formatPercent(r.CPUAfterPercent),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// WriteJSON writes r as indented JSON
func (r *Result) WriteJSON(w io.Writer) error {
	output, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// WriteYAML writes r as YAML
func (r *Result) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

// WriteTable writes r as a two-column table. Words are summarised by length.
func (r *Result) WriteTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	rows := [][]string{
		{"n", strconv.Itoa(r.N)},
		{"value", strconv.Itoa(r.Value)},
	}
	if r.IncludeWords {
		rows = append(rows, []string{"words_bytes", strconv.Itoa(len(r.Words))})
	}
	rows = append(rows,
		[]string{"time_us", strconv.FormatInt(r.TimeUS, 10)},
		[]string{"memory_before_kb", strconv.FormatUint(r.MemoryBeforeKB, 10)},
		[]string{"memory_after_kb", strconv.FormatUint(r.MemoryAfterKB, 10)},
		[]string{"cpu_before_percent", formatPercent(r.CPUBeforePercent)},
		[]string{"cpu_after_percent", formatPercent(r.CPUAfterPercent)},
	)

	for _, row := range rows {
		if err := table.Append(row[0], row[1]); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}
	return table.Render()
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
