package algorithms

import m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"

// InsertionSort grows a sorted prefix by shifting each new key left into place.
func InsertionSort(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		n := len(array)

		if !yield(plain(1, array)) {
			return
		}

		for i := 1; i < n; i++ {
			if !yield(plain(3, array)) {
				return
			}

			key := array[i]
			j := i - 1
			sorted := upTo(i)

			if !yield(step(4, array, func(t *m.ArrayTrace) {
				t.Comparing = []int{i}
				t.Inserting = i
				t.Finalized = sorted
			})) {
				return
			}

			for j >= 0 && array[j] > key {
				if !yield(step(6, array, func(t *m.ArrayTrace) {
					t.Comparing = []int{j, j + 1}
					t.Inserting = i
					t.Finalized = sorted
				})) {
					return
				}

				array[j+1] = array[j]
				j--

				if !yield(step(7, array, func(t *m.ArrayTrace) {
					t.Comparing = []int{j + 1}
					t.Inserting = i
					t.Finalized = sorted
				})) {
					return
				}
			}

			array[j+1] = key

			if !yield(step(10, array, func(t *m.ArrayTrace) { t.Finalized = upTo(i + 1) })) {
				return
			}
		}

		if !yield(step(12, array, func(t *m.ArrayTrace) { t.Finalized = upTo(n) })) {
			return
		}

		arrayResult(result, array)
	})
}
