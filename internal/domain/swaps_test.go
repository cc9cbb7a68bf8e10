package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

func unordered(swaps []m.Swap) [][2]int {
	out := make([][2]int, len(swaps))
	for i, s := range swaps {
		out[i] = [2]int{min(s.From, s.To), max(s.From, s.To)}
	}

	return out
}

func TestInferSwaps_Transposition(t *testing.T) {
	a := []int{10, 20, 30, 40, 50}

	for i := range a {
		for j := range a {
			if i == j {
				continue
			}

			b := append([]int(nil), a...)
			b[i], b[j] = b[j], b[i]

			assert.Equal(t, [][2]int{{min(i, j), max(i, j)}}, unordered(InferSwaps(a, b)), "swap %d,%d", i, j)
		}
	}
}

func TestInferSwaps_ScenarioD(t *testing.T) {
	swaps := InferSwaps([]int{1, 2, 3, 4}, []int{1, 4, 3, 2})

	assert.Equal(t, []m.Swap{{From: 3, To: 1}}, swaps)
	assert.Equal(t, [][2]int{{1, 3}}, unordered(swaps))
}

func TestInferSwaps_Empty(t *testing.T) {
	tests := []struct {
		name string
		prev []int
		cur  []int
	}{
		{"identical", []int{3, 1, 2}, []int{3, 1, 2}},
		{"empty previous", []int{}, []int{1, 2}},
		{"length mismatch", []int{1, 2}, []int{2, 1, 3}},
		{"overwrite without exchange", []int{1, 2, 3}, []int{1, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, InferSwaps(tt.prev, tt.cur))
		})
	}
}

func TestInferSwaps_RotationIsNotASwap(t *testing.T) {
	assert.Empty(t, InferSwaps([]int{1, 2, 3}, []int{3, 1, 2}))
}
