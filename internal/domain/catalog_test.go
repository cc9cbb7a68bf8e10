package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

func TestAlgorithms_CatalogIsComplete(t *testing.T) {
	infos := domain.Algorithms()
	require.Len(t, infos, 22)

	seen := map[m.AlgorithmID]bool{}
	for _, info := range infos {
		assert.False(t, seen[info.ID], "duplicate id %s", info.ID)
		assert.NotEmpty(t, info.Name)

		seen[info.ID] = true
	}

	assert.Equal(t, m.AlgorithmBubble, infos[0].ID)
}

func TestLookup(t *testing.T) {
	info, ok := domain.Lookup(m.AlgorithmBinarySearch)
	require.True(t, ok)
	assert.Equal(t, m.KindSearch, info.Kind)
	assert.True(t, info.NeedsTarget)

	info, ok = domain.Lookup(m.AlgorithmDFS)
	require.True(t, ok)
	assert.Equal(t, m.SnapshotGraph, info.Family)
	assert.True(t, info.NeedsGraph)

	_, ok = domain.Lookup(m.AlgorithmPractice)
	assert.False(t, ok, "practice runs are built by the interpreted factory")
}

func TestNewSourceFactory_Validation(t *testing.T) {
	graph := m.Graph{0: {1}, 1: {0}}

	tests := []struct {
		name    string
		input   m.RunInput
		wantErr bool
	}{
		{"sort", m.RunInput{Algorithm: m.AlgorithmQuick, Array: []int{3, 1, 2}}, false},
		{"empty sort", m.RunInput{Algorithm: m.AlgorithmMerge}, false},
		{"unknown", m.RunInput{Algorithm: "bogo"}, true},
		{"search without target", m.RunInput{Algorithm: m.AlgorithmLinearSearch, Array: []int{1}}, true},
		{"search", m.RunInput{Algorithm: m.AlgorithmLinearSearch, Array: []int{1}, Target: m.IntPtr(1)}, false},
		{"bfs without graph", m.RunInput{Algorithm: m.AlgorithmBFS}, true},
		{"bfs start missing", m.RunInput{Algorithm: m.AlgorithmBFS, Graph: graph, Start: 7}, true},
		{"bfs", m.RunInput{Algorithm: m.AlgorithmBFS, Graph: graph}, false},
		{"two sum without target", m.RunInput{Algorithm: m.AlgorithmTwoSum, Array: []int{1, 2}}, true},
		{"list reverse", m.RunInput{Algorithm: m.AlgorithmListReverse, Array: []int{1, 2}}, false},
		{"counting negative", m.RunInput{Algorithm: m.AlgorithmCounting, Array: []int{-5, 3, 0}}, false},
		{"counting at range limit", m.RunInput{Algorithm: m.AlgorithmCounting, Array: []int{-5000, 5000}}, false},
		{"counting range too wide", m.RunInput{Algorithm: m.AlgorithmCounting, Array: []int{1, 1_000_000_000}}, true},
		{"counting extreme values", m.RunInput{Algorithm: m.AlgorithmCounting, Array: []int{math.MinInt, math.MaxInt}}, true},
		{"empty counting", m.RunInput{Algorithm: m.AlgorithmCounting}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := domain.NewSourceFactory(tt.input)()
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Nil(t, source)

				return
			}

			require.NoError(t, err)

			defer source.Close()

			step, err := source.Next()
			require.NoError(t, err)
			assert.False(t, step.Done, "every native source starts with an initial snapshot")
		})
	}
}

func TestNewSourceFactory_FreshSourcePerCall(t *testing.T) {
	factory := domain.NewSourceFactory(m.RunInput{Algorithm: m.AlgorithmBubble, Array: []int{2, 1}})

	first, err := factory()
	require.NoError(t, err)

	for {
		step, err := first.Next()
		require.NoError(t, err)

		if step.Done {
			break
		}
	}

	second, err := factory()
	require.NoError(t, err)

	step, err := second.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, step.Snapshot.Values())
}
