// Package persist provides file-based persistence for sequence snapshots,
// in JSON and YAML encodings.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comalice/sequencex"
)

// SaveJSON writes a snapshot to path as indented JSON, creating parent
// directories as needed.
func SaveJSON[E any](path string, snap sequencex.Snapshot[E]) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return writeFile(path, data)
}

// LoadJSON reads a JSON snapshot from path. A missing file is reported via
// os.ErrNotExist so callers can distinguish absence from corruption.
func LoadJSON[E any](path string) (sequencex.Snapshot[E], error) {
	var snap sequencex.Snapshot[E]
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snap, fmt.Errorf("snapshot %q: %w", path, os.ErrNotExist)
		}
		return snap, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("json unmarshal: %w", err)
	}
	return snap, nil
}

// SaveYAML writes a snapshot to path as YAML, creating parent directories
// as needed.
func SaveYAML[E any](path string, snap sequencex.Snapshot[E]) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return writeFile(path, data)
}

// LoadYAML reads a YAML snapshot from path.
func LoadYAML[E any](path string) (sequencex.Snapshot[E], error) {
	var snap sequencex.Snapshot[E]
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snap, fmt.Errorf("snapshot %q: %w", path, os.ErrNotExist)
		}
		return snap, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return snap, nil
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
