package algorithms

import (
	"iter"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// MergeSort sorts top-down: both halves are traced first, then their merge.
func MergeSort(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		sorted := []int{}

		if !yield(plain(1, array)) {
			return
		}

		if !forward(mergeSortRange(array, 0, len(array)-1, &sorted), yield) {
			return
		}

		if !yield(step(5, array, func(t *m.ArrayTrace) { t.Finalized = upTo(len(array)) })) {
			return
		}

		arrayResult(result, array)
	})
}

func mergeSortRange(array []int, left, right int, sorted *[]int) iter.Seq[m.Snapshot] {
	return func(yield func(m.Snapshot) bool) {
		switch {
		case left < right:
			mid := (left + right) / 2

			_ = forward(mergeSortRange(array, left, mid, sorted), yield) &&
				forward(mergeSortRange(array, mid+1, right, sorted), yield) &&
				forward(merge(array, left, mid, right, *sorted), yield)
		case left == right:
			*sorted = append(*sorted, left)
			yield(step(m.NoLine, array, func(t *m.ArrayTrace) { t.Finalized = *sorted }))
		}
	}
}

func merge(array []int, left, mid, right int, sorted []int) iter.Seq[m.Snapshot] {
	return func(yield func(m.Snapshot) bool) {
		leftPart := clone(array[left : mid+1])
		rightPart := clone(array[mid+1 : right+1])
		merging := &m.Range{Start: left, End: right}

		i, j, k := 0, 0, left

		placed := func() bool {
			return yield(step(m.NoLine, array, func(t *m.ArrayTrace) {
				t.Comparing = []int{k - 1}
				t.Merging = merging
				t.Finalized = sorted
			}))
		}

		for i < len(leftPart) && j < len(rightPart) {
			if !yield(step(6, array, func(t *m.ArrayTrace) {
				t.Comparing = []int{left + i, mid + 1 + j}
				t.Merging = merging
				t.Finalized = sorted
			})) {
				return
			}

			if leftPart[i] <= rightPart[j] {
				array[k] = leftPart[i]
				i++
			} else {
				array[k] = rightPart[j]
				j++
			}
			k++

			if !placed() {
				return
			}
		}

		for ; i < len(leftPart); i++ {
			array[k] = leftPart[i]
			k++

			if !placed() {
				return
			}
		}

		for ; j < len(rightPart); j++ {
			array[k] = rightPart[j]
			k++

			if !placed() {
				return
			}
		}
	}
}
