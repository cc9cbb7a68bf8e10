package algorithms

import m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"

// BubbleSort repeatedly swaps adjacent out-of-order pairs, stopping early
// after a pass without swaps.
func BubbleSort(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		n := len(array)

		if !yield(plain(1, array)) {
			return
		}

		for i := 0; i < n-1; i++ {
			swapped := false
			sorted := tail(n, n-i-1)

			if !yield(step(3, array, func(t *m.ArrayTrace) { t.Finalized = sorted })) {
				return
			}

			for j := 0; j < n-i-1; j++ {
				compare := func(t *m.ArrayTrace) {
					t.Comparing = []int{j, j + 1}
					t.Finalized = sorted
				}

				if !yield(step(4, array, compare)) {
					return
				}

				if array[j] > array[j+1] {
					array[j], array[j+1] = array[j+1], array[j]
					swapped = true

					if !yield(step(5, array, compare)) {
						return
					}
				}
			}

			if !swapped {
				break
			}
		}

		if !yield(step(8, array, func(t *m.ArrayTrace) { t.Finalized = upTo(n) })) {
			return
		}

		arrayResult(result, array)
	})
}
