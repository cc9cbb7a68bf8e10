package adapter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

func TestRandomInputGenerator_Array(t *testing.T) {
	tests := []struct {
		name  string
		kind  m.ArrayType
		check func(t *testing.T, values []int)
	}{
		{"random", m.ArrayRandom, func(*testing.T, []int) {}},
		{"default", "", func(*testing.T, []int) {}},
		{"sorted", m.ArraySorted, func(t *testing.T, values []int) {
			assert.True(t, slices.IsSorted(values))
		}},
		{"reversed", m.ArrayReversed, func(t *testing.T, values []int) {
			reversed := slices.Clone(values)
			slices.Reverse(reversed)
			assert.True(t, slices.IsSorted(reversed))
		}},
		{"nearly sorted", m.ArrayNearlySorted, func(t *testing.T, values []int) {
			sorted := slices.Sorted(slices.Values(values))

			misplaced := 0
			for i := range values {
				if values[i] != sorted[i] {
					misplaced++
				}
			}

			// 30 values allow 3 swapped pairs
			assert.LessOrEqual(t, misplaced, 6)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewRandomInputGenerator(42)

			values, err := generator.Array(30, tt.kind)
			require.NoError(t, err)
			require.Len(t, values, 30)

			for _, v := range values {
				assert.GreaterOrEqual(t, v, MinValue)
				assert.LessOrEqual(t, v, MaxValue)
			}

			tt.check(t, values)
		})
	}
}

func TestRandomInputGenerator_Array_Deterministic(t *testing.T) {
	first, err := NewRandomInputGenerator(7).Array(12, m.ArrayRandom)
	require.NoError(t, err)

	second, err := NewRandomInputGenerator(7).Array(12, m.ArrayRandom)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRandomInputGenerator_Array_Errors(t *testing.T) {
	generator := NewRandomInputGenerator(1)

	_, err := generator.Array(5, "zigzag")
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	_, err = generator.Array(-1, m.ArrayRandom)
	assert.ErrorIs(t, err, ErrUnsupportedShape)

	values, err := generator.Array(0, m.ArrayNearlySorted)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func assertUndirected(t *testing.T, graph m.Graph) {
	t.Helper()

	for node, neighbors := range graph {
		for _, next := range neighbors {
			assert.NotEqual(t, node, next, "self loop at %d", node)
			assert.Contains(t, graph[next], node, "edge %d-%d is one-way", node, next)
		}
	}
}

func TestRandomInputGenerator_Graph(t *testing.T) {
	generator := NewRandomInputGenerator(3)

	t.Run("random", func(t *testing.T) {
		graph, err := generator.Graph(8, m.GraphRandom)
		require.NoError(t, err)

		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, graph.Nodes())
		assert.Equal(t, 12, graph.EdgeCount())
		assertUndirected(t, graph)
	})

	t.Run("random graph is capped by the complete graph", func(t *testing.T) {
		graph, err := generator.Graph(2, m.GraphRandom)
		require.NoError(t, err)
		assert.Equal(t, 1, graph.EdgeCount())

		graph, err = generator.Graph(1, m.GraphRandom)
		require.NoError(t, err)
		assert.Equal(t, 0, graph.EdgeCount())
	})

	t.Run("tree", func(t *testing.T) {
		graph, err := generator.Graph(8, m.GraphTree)
		require.NoError(t, err)

		assert.Equal(t, 7, graph.EdgeCount())
		assertUndirected(t, graph)
	})

	t.Run("grid", func(t *testing.T) {
		graph, err := generator.Graph(9, m.GraphGrid)
		require.NoError(t, err)

		assert.Equal(t, 12, graph.EdgeCount())
		assert.ElementsMatch(t, []int{1, 3, 5, 7}, graph[4])
		assert.ElementsMatch(t, []int{1, 3}, graph[0])
		assertUndirected(t, graph)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := generator.Graph(0, m.GraphTree)
		assert.ErrorIs(t, err, ErrUnsupportedShape)

		_, err = generator.Graph(4, "ring")
		assert.ErrorIs(t, err, ErrUnsupportedShape)
	})
}

func TestRandomInputGenerator_Target(t *testing.T) {
	generator := NewRandomInputGenerator(9)
	values := []int{15, 40, 77}

	for range 20 {
		assert.Contains(t, values, generator.Target(values))
	}

	assert.Equal(t, MinValue, generator.Target(nil))
}
