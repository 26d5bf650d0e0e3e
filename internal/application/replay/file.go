package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmpty is returned when saving a recording without frames
var ErrEmpty = errors.New("replay has no frames")

// Load reads a recording written by Save
func Load(path string) (ReplayData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ReplayData{}, fmt.Errorf("failed to read replay: %w", err)
	}

	var data ReplayData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ReplayData{}, fmt.Errorf("failed to decode replay %s: %w", path, err)
	}
	if data.Version != Version {
		return ReplayData{}, fmt.Errorf("%s: replay version %q, want %q", path, data.Version, Version)
	}
	return data, nil
}

// Save writes data to path as indented JSON
func Save(path string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrEmpty
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	return nil
}
