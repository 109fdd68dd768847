package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SolverConfig is the benchmark-wide engine configuration, recorded
// alongside the run records so results stay interpretable.
type SolverConfig struct {
	Iterations  int
	Duration    time.Duration
	Exploration float64
	Policy      string
	Seed        uint64
}

// RunRecord is one row of the benchmark output: an instance and what
// the solver did with it.
type RunRecord struct {
	ID       int
	Input    string
	Vertices int
	Edges    int
	Valid    bool
	RunMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped run directory under root.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory records are written into.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteSolverConfig(config SolverConfig) error {
	path := filepath.Join(w.baseDir, "solver_config.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create solver config file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"iterations", "duration", "exploration", "policy", "seed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write solver config header: %w", err)
	}

	row := []string{
		strconv.Itoa(config.Iterations),
		config.Duration.String(),
		strconv.FormatFloat(config.Exploration, 'g', -1, 64),
		config.Policy,
		strconv.FormatUint(config.Seed, 10),
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("failed to write solver config row: %w", err)
	}

	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	path := filepath.Join(w.baseDir, "run_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "input", "vertices", "edges", "iterations", "elapsed", "answer", "closed", "valid"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Input,
			strconv.Itoa(record.Vertices),
			strconv.Itoa(record.Edges),
			strconv.Itoa(record.Iterations),
			record.Elapsed.String(),
			strconv.Itoa(record.Answer),
			strconv.FormatBool(record.Closed),
			strconv.FormatBool(record.Valid),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	return nil
}
