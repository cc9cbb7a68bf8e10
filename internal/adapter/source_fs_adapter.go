// Package adapter contains infrastructure adapters for the AlgoLab CLI.
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// ErrInvalidCase is returned when a case file cannot be decoded.
var ErrInvalidCase = errors.New("invalid case file")

// SourceFSAdapter abstracts the filesystem reads the workflow relies on:
// practice sources and YAML case files. It hides direct `os` access so the
// workflow can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// LoadCase decodes a YAML run case.
	LoadCase(path m.Path) (m.Case, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// LoadCase reads path and decodes it as a case. Unknown keys are rejected so
// typos do not silently fall back to generated input.
func (a *LocalSourceFSAdapter) LoadCase(path m.Path) (m.Case, error) {
	data, err := a.ReadFile(path)
	if err != nil {
		return m.Case{}, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var c m.Case
	if err := decoder.Decode(&c); err != nil {
		return m.Case{}, fmt.Errorf("%w %s: %w", ErrInvalidCase, path, err)
	}

	return c, nil
}
