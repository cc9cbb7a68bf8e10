package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

func TestParallelStepper_CompletesWhenBothLanesFinish(t *testing.T) {
	input := []int{4, 1, 5, 2, 3}
	sched := newManualScheduler()
	log := &frameLog{}

	stepper := domain.NewParallelStepper(domain.WithScheduler(sched), domain.WithFrameHandler(log.add))

	require.NoError(t, stepper.Start(
		domain.NewSourceFactory(m.RunInput{Algorithm: m.AlgorithmBubble, Array: input}),
		domain.NewSourceFactory(m.RunInput{Algorithm: m.AlgorithmMerge, Array: input}),
	))

	sawOneLaneDone := false

	for range 10_000 {
		if stepper.State() != m.StateRunning {
			break
		}

		_, leftDone := stepper.Result(m.LaneLeft)
		_, rightDone := stepper.Result(m.LaneRight)

		if leftDone != rightDone {
			sawOneLaneDone = true
			assert.Equal(t, m.StateRunning, stepper.State(), "run continues while one lane is still active")
		}

		sched.Fire()
	}

	assert.True(t, sawOneLaneDone, "lanes of different length finish at different ticks")
	assert.Equal(t, m.StateCompleted, stepper.State())
	assert.Equal(t, 0, sched.Active())

	var left, right []m.Frame

	for _, f := range log.all() {
		if f.Lane == m.LaneLeft {
			left = append(left, f)
		} else {
			right = append(right, f)
		}
	}

	require.NotEmpty(t, left)
	require.NotEmpty(t, right)
	assert.NotEqual(t, len(left), len(right))

	for _, lane := range [][]m.Frame{left, right} {
		last := lane[len(lane)-1]
		assert.Equal(t, []int{1, 2, 3, 4, 5}, last.Snapshot.Array().Array)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, last.Snapshot.Array().Finalized)
		assert.Equal(t, len(lane), last.Stats.Steps)
	}

	assert.Equal(t, len(left), stepper.Stats(m.LaneLeft).Steps)
	assert.Equal(t, len(right), stepper.Stats(m.LaneRight).Steps)

	leftResult, ok := stepper.Result(m.LaneLeft)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, leftResult.Array)

	require.NoError(t, stepper.Wait(context.Background()))
}

func TestParallelStepper_LaneFailureAbortsRun(t *testing.T) {
	sched := newManualScheduler()
	broken := &failingSource{}

	stepper := domain.NewParallelStepper(domain.WithScheduler(sched))

	require.NoError(t, stepper.Start(
		bubble(3, 2, 1),
		func() (domain.StepSource, error) { return broken, nil },
	))

	sched.Fire()
	sched.Fire()

	assert.Equal(t, m.StateIdle, stepper.State())
	require.ErrorIs(t, stepper.Err(), domain.ErrExecution)
	assert.Contains(t, stepper.Err().Error(), "right lane")
	assert.Equal(t, 2, stepper.Stats(m.LaneLeft).Steps)
}

func TestParallelStepper_InvalidLaneRejectsStart(t *testing.T) {
	sched := newManualScheduler()
	stepper := domain.NewParallelStepper(domain.WithScheduler(sched))

	err := stepper.Start(bubble(1, 2), domain.NewSourceFactory(m.RunInput{Algorithm: "bogus"}))

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, m.StateIdle, stepper.State())
	assert.Equal(t, 0, sched.Active())
}

func TestParallelStepper_PauseResumeReset(t *testing.T) {
	sched := newManualScheduler()
	stepper := domain.NewParallelStepper(domain.WithScheduler(sched))

	require.NoError(t, stepper.Start(bubble(2, 1), bubble(3, 1, 2)))
	sched.Fire()

	require.NoError(t, stepper.Pause())
	sched.Fire()
	assert.Equal(t, 1, stepper.Stats(m.LaneLeft).Steps)

	require.NoError(t, stepper.Resume())
	require.NoError(t, stepper.SetSpeed(domain.MinSpeed))
	assert.Equal(t, domain.MinSpeed, stepper.Speed())
	sched.Fire()
	assert.Equal(t, 2, stepper.Stats(m.LaneRight).Steps)

	stepper.Reset()
	assert.Equal(t, m.StateIdle, stepper.State())
	assert.Zero(t, stepper.Stats(m.LaneRight))
}
