package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes one row per run, with a header.
func WriteCSV(w io.Writer, records []RunRecord) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing runs: %w", err)
	}
	return nil
}

// WriteCSVFile writes records to path, creating parent directories.
func WriteCSVFile(path string, records []RunRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses records previously written by WriteCSV.
func ReadCSV(r io.Reader) ([]RunRecord, error) {
	var records []RunRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading runs: %w", err)
	}
	return records, nil
}

// WriteSummary prints a human-readable summary table.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"runs: %d (ended %d)\n"+
			"%-6s %10s %10s %10s %10s %10s %10s\n"+
			"%s%s%s"+
			"hits per run: %.2f\n",
		s.Runs, s.Ended,
		"", "mean", "stddev", "p10", "p50", "p90", "max",
		row("score", s.Score), row("level", s.Level), row("ticks", s.Ticks),
		s.HitsMean,
	)
	return err
}

func row(name string, d Distribution) string {
	return fmt.Sprintf("%-6s %10.1f %10.1f %10.1f %10.1f %10.1f %10.1f\n",
		name, d.Mean, d.StdDev, d.P10, d.P50, d.P90, d.Max)
}
