package algorithms

import m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"

// SelectionSort moves the minimum of the unsorted suffix to its front.
func SelectionSort(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		n := len(array)

		if !yield(plain(1, array)) {
			return
		}

		for i := 0; i < n-1; i++ {
			if !yield(plain(2, array)) {
				return
			}

			minIndex := i

			if !yield(plain(3, array)) {
				return
			}

			sorted := upTo(i)

			for j := i + 1; j < n; j++ {
				scan := func(t *m.ArrayTrace) {
					t.Comparing = []int{j, minIndex}
					t.Finalized = sorted
					t.Min = minIndex
				}

				if !yield(step(5, array, scan)) {
					return
				}

				if array[j] < array[minIndex] {
					minIndex = j

					if !yield(step(6, array, scan)) {
						return
					}
				}
			}

			if minIndex != i {
				exchange := func(t *m.ArrayTrace) {
					t.Comparing = []int{i, minIndex}
					t.Finalized = sorted
				}

				if !yield(step(9, array, exchange)) {
					return
				}

				array[i], array[minIndex] = array[minIndex], array[i]

				if !yield(step(10, array, exchange)) {
					return
				}
			}

			if !yield(step(13, array, func(t *m.ArrayTrace) { t.Finalized = upTo(i + 1) })) {
				return
			}
		}

		if !yield(step(15, array, func(t *m.ArrayTrace) { t.Finalized = upTo(n) })) {
			return
		}

		arrayResult(result, array)
	})
}
