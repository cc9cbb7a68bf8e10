package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain/algorithms"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

func TestTraceSource_DoneIsSticky(t *testing.T) {
	source := domain.NewTraceSource(algorithms.InsertionSort([]int{2, 1}))
	defer source.Close()

	var last m.Step

	for range 100 {
		step, err := source.Next()
		require.NoError(t, err)

		if step.Done {
			last = step
			break
		}
	}

	require.True(t, last.Done)
	assert.Equal(t, []int{1, 2}, last.Result.Array)

	again, err := source.Next()
	require.NoError(t, err)
	assert.True(t, again.Done)
	assert.Equal(t, last.Result, again.Result)
}

func TestTraceSource_CloseStopsEarly(t *testing.T) {
	source := domain.NewTraceSource(algorithms.QuickSort([]int{9, 4, 7, 1, 3}))

	step, err := source.Next()
	require.NoError(t, err)
	assert.False(t, step.Done)

	source.Close()
	source.Close()

	step, err = source.Next()
	require.NoError(t, err)
	assert.True(t, step.Done)
}
