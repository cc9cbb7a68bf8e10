package domain

import (
	"slices"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// InferSwaps guesses which positions exchanged values between two
// consecutive arrays. For every changed index i it records the first j with
// prev[j] == cur[i] and cur[j] == prev[i] as the pair (j, i). Both ends of an
// exchange match each other, so a pair is only recorded once. Rotations such
// as insertion sort shifts may be misattributed.
func InferSwaps(prev, cur []int) []m.Swap {
	swaps := []m.Swap{}

	if len(prev) == 0 || len(prev) != len(cur) {
		return swaps
	}

	for i := range cur {
		if cur[i] == prev[i] {
			continue
		}

		for j := range prev {
			if j != i && prev[j] == cur[i] && cur[j] == prev[i] {
				if !slices.Contains(swaps, m.Swap{From: i, To: j}) {
					swaps = append(swaps, m.Swap{From: j, To: i})
				}

				break
			}
		}
	}

	return swaps
}
