package domain_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

type frameLog struct {
	mu     sync.Mutex
	frames []m.Frame
}

func (l *frameLog) add(f m.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.frames = append(l.frames, f)
}

func (l *frameLog) all() []m.Frame {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]m.Frame(nil), l.frames...)
}

func bubble(values ...int) domain.SourceFactory {
	return domain.NewSourceFactory(m.RunInput{Algorithm: m.AlgorithmBubble, Array: values})
}

// drain fires ticks until the stepper leaves the running state.
func drain(t *testing.T, sched *manualScheduler, state func() m.State) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		if state() != m.StateRunning {
			return
		}

		sched.Fire()
		runtime.Gosched()
	}

	t.Fatal("run did not finish")
}

// failingSource yields one snapshot, then fails.
type failingSource struct {
	pulls  int
	closed bool
}

func (s *failingSource) Next() (m.Step, error) {
	s.pulls++
	if s.pulls == 1 {
		return m.Step{Snapshot: m.Snapshot{Payload: m.NewArrayTrace([]int{1, 2})}}, nil
	}

	return m.Step{}, errors.New("source broke")
}

func (s *failingSource) Close() { s.closed = true }

func TestStepper_Start_RunsToCompletion(t *testing.T) {
	sched := newManualScheduler()
	log := &frameLog{}

	var outcomes []m.Outcome

	stepper := domain.NewStepper(
		domain.WithScheduler(sched),
		domain.WithFrameHandler(log.add),
		domain.WithFinishHandler(func(o []m.Outcome) { outcomes = o }),
	)

	require.NoError(t, stepper.Start(bubble(5, 3, 8, 1)))
	assert.Equal(t, m.StateRunning, stepper.State())
	assert.Equal(t, 1, sched.Active())

	drain(t, sched, stepper.State)

	assert.Equal(t, m.StateCompleted, stepper.State())
	assert.Equal(t, 0, sched.Active())

	frames := log.all()
	require.NotEmpty(t, frames)

	for i, f := range frames {
		assert.Equal(t, i+1, f.Stats.Steps, "steps grow by one per tick")
		assert.Equal(t, frames[0].RunID, f.RunID)
	}

	last := frames[len(frames)-1].Snapshot.Array()
	assert.Equal(t, []int{1, 3, 5, 8}, last.Array)
	assert.Equal(t, []int{0, 1, 2, 3}, last.Finalized)

	result, ok := stepper.Result()
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 5, 8}, result.Array)

	stats := stepper.Stats()
	assert.Equal(t, len(frames), stats.Steps)
	assert.Positive(t, stats.Swaps)

	require.Len(t, outcomes, 1)
	assert.Equal(t, m.StateCompleted, outcomes[0].State)
	assert.Equal(t, stats, outcomes[0].Stats)

	require.NoError(t, stepper.Wait(context.Background()))
}

func TestStepper_Statistics_CountComparisonsAndSwaps(t *testing.T) {
	sched := newManualScheduler()
	log := &frameLog{}
	stepper := domain.NewStepper(domain.WithScheduler(sched), domain.WithFrameHandler(log.add))

	require.NoError(t, stepper.Start(bubble(2, 1)))
	drain(t, sched, stepper.State)

	// initial, pass, compare, swap, terminal
	frames := log.all()
	require.Len(t, frames, 5)
	assert.Empty(t, frames[0].Swaps, "first snapshot never counts swaps")
	assert.Equal(t, []m.Swap{{From: 1, To: 0}}, frames[3].Swaps)

	stats := stepper.Stats()
	assert.Equal(t, 5, stats.Steps)
	assert.Equal(t, 4, stats.Comparisons)
	assert.Equal(t, 1, stats.Swaps)
}

func TestStepper_PauseResume_Continuity(t *testing.T) {
	input := []int{9, 4, 7, 1, 8, 2}

	run := func(pauseAt int) ([]m.Frame, m.Result) {
		sched := newManualScheduler()
		log := &frameLog{}
		stepper := domain.NewStepper(domain.WithScheduler(sched), domain.WithFrameHandler(log.add))

		require.NoError(t, stepper.Start(domain.NewSourceFactory(m.RunInput{
			Algorithm: m.AlgorithmQuick, Array: input,
		})))

		for tick := 0; stepper.State() == m.StateRunning; tick++ {
			if tick == pauseAt {
				require.NoError(t, stepper.Pause())
				assert.Equal(t, 0, sched.Active())

				sched.Fire()
				assert.Equal(t, m.StatePaused, stepper.State())

				require.NoError(t, stepper.Resume())
			}

			sched.Fire()
		}

		result, _ := stepper.Result()

		return log.all(), result
	}

	straight, straightResult := run(-1)
	paused, pausedResult := run(5)

	require.Len(t, paused, len(straight))
	assert.Equal(t, straightResult, pausedResult)

	for i := range straight {
		assert.Equal(t, straight[i].Snapshot, paused[i].Snapshot)
		assert.Equal(t, straight[i].Stats.Steps, paused[i].Stats.Steps)
	}
}

func TestStepper_StateMisuse(t *testing.T) {
	sched := newManualScheduler()
	stepper := domain.NewStepper(domain.WithScheduler(sched))

	assert.ErrorIs(t, stepper.Pause(), domain.ErrInvalidState)
	assert.ErrorIs(t, stepper.Resume(), domain.ErrInvalidState)
	assert.Equal(t, m.StateIdle, stepper.State())

	require.NoError(t, stepper.Start(bubble(3, 2, 1)))
	sched.Fire()

	assert.ErrorIs(t, stepper.Start(bubble(1)), domain.ErrInvalidState)
	assert.ErrorIs(t, stepper.Resume(), domain.ErrInvalidState)
	assert.Equal(t, m.StateRunning, stepper.State())
	assert.Equal(t, 1, stepper.Stats().Steps)

	require.NoError(t, stepper.Pause())
	assert.ErrorIs(t, stepper.Pause(), domain.ErrInvalidState)
	assert.ErrorIs(t, stepper.Start(bubble(1)), domain.ErrInvalidState)
	assert.Equal(t, m.StatePaused, stepper.State())
}

func TestStepper_Start_InvalidInputStaysIdle(t *testing.T) {
	sched := newManualScheduler()
	stepper := domain.NewStepper(domain.WithScheduler(sched))

	err := stepper.Start(domain.NewSourceFactory(m.RunInput{
		Algorithm: m.AlgorithmBinarySearch,
		Array:     []int{1, 2, 3},
	}))

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, m.StateIdle, stepper.State())
	assert.Equal(t, 0, sched.Active())
}

func TestStepper_Start_AfterCompletion(t *testing.T) {
	sched := newManualScheduler()
	stepper := domain.NewStepper(domain.WithScheduler(sched))

	require.NoError(t, stepper.Start(bubble(2, 1)))
	drain(t, sched, stepper.State)

	first := stepper.Stats().RunID

	require.NoError(t, stepper.Start(bubble(1, 2)))
	assert.Zero(t, stepper.Stats().Steps)
	assert.NotEqual(t, first, stepper.Stats().RunID)
}

func TestStepper_SetSpeed(t *testing.T) {
	sched := newManualScheduler()
	log := &frameLog{}
	stepper := domain.NewStepper(domain.WithScheduler(sched), domain.WithFrameHandler(log.add))

	assert.Equal(t, domain.DefaultSpeed, stepper.Speed())
	assert.ErrorIs(t, stepper.SetSpeed(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, stepper.SetSpeed(-time.Second), domain.ErrInvalidInput)

	require.NoError(t, stepper.SetSpeed(time.Millisecond))
	assert.Equal(t, domain.MinSpeed, stepper.Speed())

	require.NoError(t, stepper.SetSpeed(time.Hour))
	assert.Equal(t, domain.MaxSpeed, stepper.Speed())

	require.NoError(t, stepper.Start(bubble(4, 3, 2, 1)))
	sched.Fire()
	sched.Fire()

	stale := sched.Armed(0)

	require.NoError(t, stepper.SetSpeed(100*time.Millisecond))
	assert.Equal(t, 1, sched.Active(), "old timer is replaced, not duplicated")
	assert.Equal(t, 100*time.Millisecond, sched.LastPeriod())

	stale()
	assert.Equal(t, 2, stepper.Stats().Steps, "a tick from the replaced timer is discarded")

	sched.Fire()
	assert.Equal(t, 3, stepper.Stats().Steps)

	frames := log.all()
	require.Len(t, frames, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{frames[0].Snapshot.Line, frames[1].Snapshot.Line, frames[2].Snapshot.Line})
}

func TestStepper_Reset(t *testing.T) {
	sched := newManualScheduler()
	source := &failingSource{}
	stepper := domain.NewStepper(domain.WithScheduler(sched))

	require.NoError(t, stepper.Start(func() (domain.StepSource, error) { return source, nil }))
	sched.Fire()

	stale := sched.Armed(0)

	stepper.Reset()

	assert.Equal(t, m.StateIdle, stepper.State())
	assert.Equal(t, m.RunStatistics{}, stepper.Stats())
	assert.Equal(t, 0, sched.Active())
	assert.True(t, source.closed)

	stale()
	assert.Equal(t, 1, source.pulls, "torn down source is never advanced")

	require.NoError(t, stepper.Wait(context.Background()))
}

func TestStepper_SourceFailure(t *testing.T) {
	sched := newManualScheduler()
	source := &failingSource{}
	log := &frameLog{}

	var outcomes []m.Outcome

	stepper := domain.NewStepper(
		domain.WithScheduler(sched),
		domain.WithFrameHandler(log.add),
		domain.WithFinishHandler(func(o []m.Outcome) { outcomes = o }),
	)

	require.NoError(t, stepper.Start(func() (domain.StepSource, error) { return source, nil }))
	sched.Fire()
	sched.Fire()

	assert.Equal(t, m.StateIdle, stepper.State())
	assert.Equal(t, 0, sched.Active())
	assert.True(t, source.closed)
	assert.Len(t, log.all(), 1)
	assert.Equal(t, 1, stepper.Stats().Steps, "statistics are kept for display")

	require.ErrorIs(t, stepper.Err(), domain.ErrExecution)
	assert.Contains(t, stepper.Err().Error(), "source broke")

	err := stepper.Wait(context.Background())
	require.ErrorIs(t, err, domain.ErrExecution)

	require.Len(t, outcomes, 1)
	assert.Equal(t, m.StateIdle, outcomes[0].State)
	require.Error(t, outcomes[0].Err)

	require.NoError(t, stepper.Start(bubble(1)), "stepper is reusable after a failure")
	assert.NoError(t, stepper.Err())
}

func TestStepper_HandlerMayCallBack(t *testing.T) {
	sched := newManualScheduler()

	var stepper *domain.Stepper

	stepper = domain.NewStepper(
		domain.WithScheduler(sched),
		domain.WithFrameHandler(func(f m.Frame) {
			if f.Stats.Steps == 2 {
				assert.NoError(t, stepper.Pause())
			}
		}),
	)

	require.NoError(t, stepper.Start(bubble(3, 2, 1)))

	sched.Fire()
	sched.Fire()
	sched.Fire()

	assert.Equal(t, m.StatePaused, stepper.State())
	assert.Equal(t, 2, stepper.Stats().Steps)
}

func TestStepper_Wait_WithTicker(t *testing.T) {
	log := &frameLog{}
	stepper := domain.NewStepper(domain.WithSpeed(domain.MinSpeed), domain.WithFrameHandler(log.add))

	require.NoError(t, stepper.Start(bubble(2, 1)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, stepper.Wait(ctx))
	assert.Equal(t, m.StateCompleted, stepper.State())
	assert.Len(t, log.all(), 5)
}

func TestStepper_Wait_ContextCancelled(t *testing.T) {
	stepper := domain.NewStepper(domain.WithScheduler(newManualScheduler()))
	require.NoError(t, stepper.Start(bubble(2, 1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, stepper.Wait(ctx), context.Canceled)
}
