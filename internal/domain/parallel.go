package domain

import (
	"context"
	"time"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// ParallelStepper advances two step sources once per shared tick. A lane
// that finishes early stops advancing; the run completes when both have.
// A failure in either lane aborts the whole run.
type ParallelStepper struct {
	d *driver
}

// NewParallelStepper creates an idle parallel stepper.
func NewParallelStepper(opts ...Option) *ParallelStepper {
	return &ParallelStepper{d: newDriver(opts)}
}

// Start builds both sources and begins ticking.
func (p *ParallelStepper) Start(left, right SourceFactory) error {
	return p.d.start(left, right)
}

// Pause stops the shared timer.
func (p *ParallelStepper) Pause() error {
	return p.d.pause()
}

// Resume restarts the shared timer.
func (p *ParallelStepper) Resume() error {
	return p.d.resume()
}

// SetSpeed changes the shared tick period.
func (p *ParallelStepper) SetSpeed(period time.Duration) error {
	return p.d.setSpeed(period)
}

// Speed returns the shared tick period.
func (p *ParallelStepper) Speed() time.Duration {
	return p.d.speed()
}

// Reset discards both sources and returns to idle.
func (p *ParallelStepper) Reset() {
	p.d.reset()
}

// State returns the shared lifecycle state.
func (p *ParallelStepper) State() m.State {
	return p.d.currentState()
}

// Stats returns the statistics of one lane.
func (p *ParallelStepper) Stats(lane m.Lane) m.RunStatistics {
	return p.d.laneStats(int(lane))
}

// Result returns the final value of one lane once it is exhausted.
func (p *ParallelStepper) Result(lane m.Lane) (m.Result, bool) {
	return p.d.laneResult(int(lane))
}

// Err returns the failure of the last run, if any.
func (p *ParallelStepper) Err() error {
	return p.d.lastErr()
}

// Wait blocks until the run ends and its frames are delivered.
func (p *ParallelStepper) Wait(ctx context.Context) error {
	return p.d.wait(ctx)
}
