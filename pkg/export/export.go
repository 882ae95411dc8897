package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"beauty-trends/pkg/analysis"
	"beauty-trends/pkg/logger"
	"beauty-trends/pkg/trends"
)

// ErrNothingToExport is returned instead of writing an empty file
var ErrNothingToExport = errors.New("no results to export")

// TimestampLayout is used for the Data / timestamp column
const TimestampLayout = time.RFC3339

// ExportCSV writes results to path, ranked by interest score, and returns the path
func ExportCSV(path string, results []trends.ScoredResult) (string, error) {
	return exportFile(path, results, WriteCSV)
}

// ExportJSON writes results to path in accumulation order and returns the path
func ExportJSON(path string, results []trends.ScoredResult) (string, error) {
	return exportFile(path, results, WriteJSON)
}

type encodeFunc func(w io.Writer, results []trends.ScoredResult) error

func exportFile(path string, results []trends.ScoredResult, encode encodeFunc) (string, error) {
	log := logger.GetLogger().WithField("component", "exporter")
	if len(results) == 0 {
		log.Warn("Nenhum resultado para exportar")
		return "", ErrNothingToExport
	}

	var buf bytes.Buffer
	if err := encode(&buf, results); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	log.WithField("file", path).Info(fmt.Sprintf("✓ Dados exportados para %s", path))
	return path, nil
}

func ranked(results []trends.ScoredResult) []trends.ScoredResult {
	return analysis.Rank(results)
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(TimestampLayout)
}
