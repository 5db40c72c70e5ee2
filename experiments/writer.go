package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Writer stores one batch's outputs under a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the batch directory under outDir.
func NewWriter(outDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the batch directory.
func (w *Writer) BaseDir() string { return w.baseDir }

// WriteGameRecords stores the batch summary as games.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "winner", "turns", "scores", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for _, r := range records {
		scores := make([]string, len(r.Scores))
		for i, s := range r.Scores {
			scores[i] = strconv.Itoa(s)
		}
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Winner),
			strconv.Itoa(r.Turns),
			strings.Join(scores, " "),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record %d: %w", r.ID, err)
		}
	}
	return nil
}
