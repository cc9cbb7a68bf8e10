package algorithms

import m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"

// ShellSort runs gapped insertion sorts with gaps n/2, n/4, ..., 1.
func ShellSort(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		n := len(array)

		if !yield(plain(1, array)) {
			return
		}

		for gap := n / 2; gap > 0; gap /= 2 {
			if !yield(plain(3, array)) {
				return
			}

			for i := gap; i < n; i++ {
				temp := array[i]

				if !yield(step(4, array, func(t *m.ArrayTrace) {
					t.Comparing = []int{i}
					t.Gap = gap
				})) {
					return
				}

				j := i
				for ; j >= gap && array[j-gap] > temp; j -= gap {
					if !yield(step(7, array, func(t *m.ArrayTrace) {
						t.Comparing = []int{j, j - gap}
						t.Gap = gap
					})) {
						return
					}

					array[j] = array[j-gap]

					if !yield(step(8, array, func(t *m.ArrayTrace) {
						t.Comparing = []int{j}
						t.Gap = gap
					})) {
						return
					}
				}

				array[j] = temp

				if !yield(step(11, array, func(t *m.ArrayTrace) { t.Gap = gap })) {
					return
				}
			}
		}

		if !yield(step(m.NoLine, array, func(t *m.ArrayTrace) { t.Finalized = upTo(n) })) {
			return
		}

		arrayResult(result, array)
	})
}
