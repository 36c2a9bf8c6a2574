package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/shoresquad/internal/squad"
)

// Debug export of the app state. Written on demand, never read at startup.

// ErrNoSnapshot is returned by Load when nothing was exported yet.
var ErrNoSnapshot = errors.New("no snapshot exported yet")

func dataPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, name), nil
}

// Load reads a snapshot written by Save.
func Load(name string) (squad.Snapshot, error) {
	p, err := dataPath(name)
	if err != nil {
		return squad.Snapshot{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return squad.Snapshot{}, ErrNoSnapshot
		}
		return squad.Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	var snap squad.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return squad.Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return snap, nil
}

// Save writes snap as indented JSON and returns the absolute path.
func Save(name string, snap squad.Snapshot) (string, error) {
	p, err := dataPath(name)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}
