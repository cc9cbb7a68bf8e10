// Package controller provides output adapters for displaying algorithm runs.
package controller

import (
	"context"
	"time"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeCompare
	ModePractice
)

func (s StartMode) String() string {
	switch s {
	case ModeCompare:
		return "compare"
	case ModePractice:
		return "practice"
	default:
		return "run"
	}
}

// Controls is the part of a stepper the UI may drive while a run is shown.
type Controls interface {
	Pause() error
	Resume() error
	SetSpeed(period time.Duration) error
	Speed() time.Duration
	Reset()
	State() m.State
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode     StartMode
	titles   []string
	listing  []string
	controls Controls
}

// WithRunMode shows a single algorithm run.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithCompareMode shows two lanes side by side.
func WithCompareMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCompare
	}
}

// WithPracticeMode shows an interpreted run next to its source code.
func WithPracticeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePractice
	}
}

// WithTitles names the lanes, left first.
func WithTitles(titles ...string) StartOption {
	return func(c *StartConfig) {
		c.titles = titles
	}
}

// WithListing sets the code listing that snapshot lines refer to.
func WithListing(lines []string) StartOption {
	return func(c *StartConfig) {
		c.listing = lines
	}
}

// WithControls lets an interactive UI pause, resume, retime and reset the run.
func WithControls(controls Controls) StartOption {
	return func(c *StartConfig) {
		c.controls = controls
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

func (c StartConfig) title(lane m.Lane) string {
	if int(lane) < len(c.titles) {
		return c.titles[lane]
	}

	return lane.String()
}

// UI defines the interface for displaying algorithm runs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayAlgorithms(ctx context.Context, algorithms []m.AlgorithmInfo) error
	DisplayFrame(ctx context.Context, frame m.Frame)
	DisplayOutcome(ctx context.Context, outcomes []m.Outcome)
}
