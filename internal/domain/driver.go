package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// Speed limits.
const (
	MinSpeed     = 31 * time.Millisecond
	MaxSpeed     = 2000 * time.Millisecond
	DefaultSpeed = 500 * time.Millisecond
)

// Option configures a Stepper or ParallelStepper.
type Option func(*options)

type options struct {
	scheduler Scheduler
	period    time.Duration
	onFrame   func(m.Frame)
	onFinish  func([]m.Outcome)
	now       func() time.Time
}

// WithScheduler replaces the ticker based scheduler.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithSpeed sets the initial tick period. Out of range values are clamped.
func WithSpeed(period time.Duration) Option {
	return func(o *options) {
		if period > 0 {
			o.period = clampSpeed(period)
		}
	}
}

// WithFrameHandler receives every published frame in production order.
// The handler may call back into the stepper.
func WithFrameHandler(fn func(m.Frame)) Option {
	return func(o *options) { o.onFrame = fn }
}

// WithFinishHandler receives the lane outcomes when a run completes or fails.
func WithFinishHandler(fn func([]m.Outcome)) Option {
	return func(o *options) { o.onFinish = fn }
}

// WithClock overrides time.Now for statistics.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func clampSpeed(period time.Duration) time.Duration {
	return min(max(period, MinSpeed), MaxSpeed)
}

type lane struct {
	source StepSource
	prev   []int
	stats  m.RunStatistics
	result m.Result
	done   bool
}

type run struct {
	id   string
	done chan struct{}
	once sync.Once
	err  error
}

func (r *run) finish() {
	r.once.Do(func() { close(r.done) })
}

// event is a queued publication: a frame, or the end of a run.
type event struct {
	frame    *m.Frame
	outcomes []m.Outcome
	run      *run
}

// driver advances one or more lanes on a shared timer.
type driver struct {
	options

	mu        sync.Mutex
	state     m.State
	lanes     []*lane
	run       *run
	err       error
	token     uint64
	stopTimer func()
	pending   []event

	// publishMu serializes delivery so frames arrive in production order.
	publishMu sync.Mutex
}

func newDriver(opts []Option) *driver {
	d := &driver{
		options: options{
			scheduler: TickerScheduler{},
			period:    DefaultSpeed,
			now:       time.Now,
		},
	}

	for _, opt := range opts {
		opt(&d.options)
	}

	return d
}

func (d *driver) start(factories ...SourceFactory) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != m.StateIdle && d.state != m.StateCompleted {
		return fmt.Errorf("%w: cannot start while %s", ErrInvalidState, d.state)
	}

	lanes := make([]*lane, 0, len(factories))

	for _, factory := range factories {
		source, err := factory()
		if err != nil {
			for _, l := range lanes {
				l.source.Close()
			}

			if !errors.Is(err, ErrInvalidInput) {
				err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}

			slog.Debug("run rejected", "error", err)

			return err
		}

		lanes = append(lanes, &lane{source: source})
	}

	r := &run{id: uuid.NewString(), done: make(chan struct{})}
	startedAt := d.now()

	for _, l := range lanes {
		l.stats = m.RunStatistics{RunID: r.id, StartedAt: startedAt}
	}

	if d.run != nil {
		d.run.finish()
	}

	d.lanes = lanes
	d.run = r
	d.err = nil
	d.pending = nil
	d.state = m.StateRunning
	d.arm()

	slog.Debug("run started", "run_id", r.id, "lanes", len(lanes), "period", d.period)

	return nil
}

func (d *driver) pause() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != m.StateRunning {
		return fmt.Errorf("%w: cannot pause while %s", ErrInvalidState, d.state)
	}

	d.disarm()
	d.state = m.StatePaused

	slog.Debug("run paused", "run_id", d.run.id)

	return nil
}

func (d *driver) resume() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != m.StatePaused {
		return fmt.Errorf("%w: cannot resume while %s", ErrInvalidState, d.state)
	}

	d.state = m.StateRunning
	d.arm()

	slog.Debug("run resumed", "run_id", d.run.id)

	return nil
}

func (d *driver) setSpeed(period time.Duration) error {
	if period <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %s", ErrInvalidInput, period)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.period = clampSpeed(period)

	if d.state == m.StateRunning {
		d.disarm()
		d.arm()
	}

	return nil
}

func (d *driver) speed() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.period
}

func (d *driver) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.disarm()
	d.closeSources()

	if d.run != nil {
		d.run.finish()
		slog.Debug("run reset", "run_id", d.run.id)
	}

	d.lanes = nil
	d.run = nil
	d.err = nil
	d.pending = nil
	d.state = m.StateIdle
}

func (d *driver) currentState() m.State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

func (d *driver) lastErr() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.err
}

func (d *driver) laneStats(i int) m.RunStatistics {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i >= len(d.lanes) {
		return m.RunStatistics{}
	}

	return d.lanes[i].stats
}

func (d *driver) laneResult(i int) (m.Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i >= len(d.lanes) || !d.lanes[i].done {
		return m.Result{}, false
	}

	return d.lanes[i].result, true
}

// wait blocks until the current run has completed, failed or been reset,
// and every frame it produced has been delivered.
func (d *driver) wait(ctx context.Context) error {
	d.mu.Lock()
	r := d.run
	d.mu.Unlock()

	if r == nil {
		return nil
	}

	select {
	case <-r.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return r.err
}

// arm starts a timer for the current token. Callers hold mu.
func (d *driver) arm() {
	d.token++
	token := d.token
	d.stopTimer = d.scheduler.Every(d.period, func() { d.tick(token) })
}

// disarm invalidates the current token so a tick already in flight is
// discarded, then stops the timer. Callers hold mu.
func (d *driver) disarm() {
	d.token++

	if d.stopTimer != nil {
		d.stopTimer()
		d.stopTimer = nil
	}
}

func (d *driver) closeSources() {
	for _, l := range d.lanes {
		if !l.done {
			l.source.Close()
		}
	}
}

func (d *driver) tick(token uint64) {
	d.mu.Lock()

	if token != d.token || d.state != m.StateRunning {
		d.mu.Unlock()
		return
	}

	now := d.now()

	var failure error

	for i, l := range d.lanes {
		if l.done {
			continue
		}

		step, err := l.source.Next()
		if err != nil {
			failure = fmt.Errorf("%s lane: %w", m.Lane(i), err)
			break
		}

		if step.Pending {
			continue
		}

		if step.Done {
			l.done = true
			l.result = step.Result
			l.stats.Elapsed = now.Sub(l.stats.StartedAt)
			l.source.Close()

			continue
		}

		values := step.Snapshot.Values()
		swaps := InferSwaps(l.prev, values)

		l.stats.Steps++
		l.stats.Comparisons += len(step.Snapshot.Highlighted())
		l.stats.Swaps += len(swaps)
		l.stats.Elapsed = now.Sub(l.stats.StartedAt)
		l.prev = slices.Clone(values)

		d.pending = append(d.pending, event{frame: &m.Frame{
			RunID:    d.run.id,
			Lane:     m.Lane(i),
			Snapshot: step.Snapshot,
			Swaps:    swaps,
			Stats:    l.stats,
		}})
	}

	switch {
	case failure != nil:
		if !errors.Is(failure, ErrExecution) {
			failure = fmt.Errorf("%w: %w", ErrExecution, failure)
		}

		d.disarm()
		d.closeSources()
		d.err = failure
		d.run.err = failure
		d.state = m.StateIdle
		d.pending = append(d.pending, event{outcomes: d.outcomes(), run: d.run})

		slog.Warn("run failed", "run_id", d.run.id, "error", failure)
	case d.allDone():
		d.disarm()
		d.state = m.StateCompleted
		d.pending = append(d.pending, event{outcomes: d.outcomes(), run: d.run})

		slog.Debug("run completed", "run_id", d.run.id)
	}

	d.mu.Unlock()

	d.flush()
}

func (d *driver) allDone() bool {
	for _, l := range d.lanes {
		if !l.done {
			return false
		}
	}

	return true
}

func (d *driver) outcomes() []m.Outcome {
	out := make([]m.Outcome, len(d.lanes))
	for i, l := range d.lanes {
		out[i] = m.Outcome{
			Lane:   m.Lane(i),
			State:  d.state,
			Stats:  l.stats,
			Result: l.result,
			Err:    d.err,
		}
	}

	return out
}

// flush delivers queued events outside mu. Only one goroutine delivers at
// a time; it keeps draining until the queue is empty.
func (d *driver) flush() {
	d.publishMu.Lock()
	defer d.publishMu.Unlock()

	for {
		d.mu.Lock()
		batch := d.pending
		d.pending = nil
		d.mu.Unlock()

		if len(batch) == 0 {
			return
		}

		for _, ev := range batch {
			if ev.frame != nil && d.onFrame != nil {
				d.onFrame(*ev.frame)
			}

			if ev.run != nil {
				if d.onFinish != nil {
					d.onFinish(ev.outcomes)
				}

				ev.run.finish()
			}
		}
	}
}
