package history

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteFile stores a history as JSON.
func (h *History) WriteFile(path string) error {
	return writeJSON(path, h)
}

// ReadFile loads a history stored by WriteFile.
func ReadFile(path string) (*History, error) {
	var h History
	if err := readJSON(path, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// WriteFile stores a packed history as JSON. The vector fields are
// arbitrary-precision integers, which JSON numbers carry exactly.
func (d *DiskHistory) WriteFile(path string) error {
	return writeJSON(path, d)
}

// ReadDiskFile loads a packed history stored by DiskHistory.WriteFile.
func ReadDiskFile(path string) (*DiskHistory, error) {
	var d DiskHistory
	if err := readJSON(path, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode history file %s: %w", path, err)
	}
	return nil
}
