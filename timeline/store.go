// ABOUTME: Reading and writing project files as JSON on disk
// ABOUTME: Saves keep a .bak of the previous file; all times are integer microseconds

package timeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadProject reads a project file and reconstructs the full aggregate.
func LoadProject(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("failed to open project: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("failed to parse project: %w", err)
	}

	// Derived fields are never trusted from disk.
	p.RecomputeDuration()
	p.SyncTrackIndices()

	return p, nil
}

// SaveProject writes a project to disk as indented JSON.
// Creates a backup (.bak) of the existing file before overwriting.
func SaveProject(path string, p Project) error {
	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".bak"
		if err := os.Rename(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}

	return nil
}
