package algorithms

import (
	"iter"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// QuickSort uses Lomuto partitioning with the last element as pivot.
func QuickSort(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)

		if !yield(plain(2, array)) {
			return
		}

		if !forward(quickSortRange(array, 0, len(array)-1), yield) {
			return
		}

		if !yield(step(4, array, func(t *m.ArrayTrace) { t.Finalized = upTo(len(array)) })) {
			return
		}

		arrayResult(result, array)
	})
}

func quickSortRange(array []int, low, high int) iter.Seq[m.Snapshot] {
	return func(yield func(m.Snapshot) bool) {
		if low >= high {
			return
		}

		var pivot int

		_ = forward(partition(array, low, high, &pivot), yield) &&
			forward(quickSortRange(array, low, pivot-1), yield) &&
			forward(quickSortRange(array, pivot+1, high), yield)
	}
}

// partition stores the final pivot position in pivotIndex once exhausted.
func partition(array []int, low, high int, pivotIndex *int) iter.Seq[m.Snapshot] {
	return func(yield func(m.Snapshot) bool) {
		pivot := array[high]
		bounds := &m.Range{Start: low, End: high}
		i := low - 1

		for j := low; j < high; j++ {
			compare := func(t *m.ArrayTrace) {
				t.Comparing = []int{j, high}
				t.Pivot = high
				t.Partition = bounds
			}

			if !yield(step(8, array, compare)) {
				return
			}

			if array[j] < pivot {
				i++
				array[i], array[j] = array[j], array[i]

				if !yield(step(9, array, compare)) {
					return
				}
			}
		}

		array[i+1], array[high] = array[high], array[i+1]
		*pivotIndex = i + 1

		yield(step(m.NoLine, array, func(t *m.ArrayTrace) {
			t.Pivot = i + 1
			t.Partition = bounds
		}))
	}
}
