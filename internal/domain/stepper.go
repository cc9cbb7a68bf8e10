package domain

import (
	"context"
	"time"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// Stepper drives one step source on a timer and keeps its run statistics.
//
// States move idle -> running <-> paused -> completed. Reset returns to idle
// from any state. A failing source moves the stepper back to idle with its
// statistics kept and the failure available from Err.
type Stepper struct {
	d *driver
}

// NewStepper creates an idle stepper.
func NewStepper(opts ...Option) *Stepper {
	return &Stepper{d: newDriver(opts)}
}

// Start builds a fresh source from factory and begins ticking. It fails
// with ErrInvalidState unless the stepper is idle or completed, and with
// ErrInvalidInput when the factory rejects its input.
func (s *Stepper) Start(factory SourceFactory) error {
	return s.d.start(factory)
}

// Pause stops the timer and keeps the source.
func (s *Stepper) Pause() error {
	return s.d.pause()
}

// Resume continues a paused run from where it stopped.
func (s *Stepper) Resume() error {
	return s.d.resume()
}

// SetSpeed changes the tick period, replacing a running timer in place.
func (s *Stepper) SetSpeed(period time.Duration) error {
	return s.d.setSpeed(period)
}

// Speed returns the current tick period.
func (s *Stepper) Speed() time.Duration {
	return s.d.speed()
}

// Reset discards the source, zeroes statistics and returns to idle.
func (s *Stepper) Reset() {
	s.d.reset()
}

// State returns the current lifecycle state.
func (s *Stepper) State() m.State {
	return s.d.currentState()
}

// Stats returns the statistics of the current or last run.
func (s *Stepper) Stats() m.RunStatistics {
	return s.d.laneStats(0)
}

// Result returns the final value once the source is exhausted.
func (s *Stepper) Result() (m.Result, bool) {
	return s.d.laneResult(0)
}

// Err returns the failure of the last run, if any.
func (s *Stepper) Err() error {
	return s.d.lastErr()
}

// Wait blocks until the current run ends and its frames are delivered.
// It returns the run failure, if any.
func (s *Stepper) Wait(ctx context.Context) error {
	return s.d.wait(ctx)
}
