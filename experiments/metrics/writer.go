package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder for one experiment's
// output files under dir.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the writer stores files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBudgetConfigs(configs []BudgetConfig) error {
	path := filepath.Join(w.baseDir, "budget_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create budget configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "iterations"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write budget configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Iterations),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write budget config row: %w", err)
		}
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

	header := []string{"budget", "run", "best_action", "correct", "node_count", "max_depth", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Budget),
			strconv.Itoa(record.Run),
			strconv.Itoa(record.BestAction),
			strconv.FormatBool(record.Correct),
			strconv.Itoa(record.NodeCount),
			strconv.Itoa(record.MaxDepth),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummaries(summaries []BudgetSummary) error {
	path := filepath.Join(w.baseDir, "budget_summaries.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summaries file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"budget", "runs", "accuracy", "mean_nodes", "mean_depth", "stddev_depth", "mean_duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summaries header: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			strconv.Itoa(summary.Budget),
			strconv.Itoa(summary.Runs),
			strconv.FormatFloat(summary.Accuracy, 'f', 4, 64),
			strconv.FormatFloat(summary.MeanNodes, 'f', 2, 64),
			strconv.FormatFloat(summary.MeanDepth, 'f', 2, 64),
			strconv.FormatFloat(summary.StdDevDepth, 'f', 2, 64),
			summary.MeanDuration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}
