package algorithms

import (
	"slices"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// LinearSearch scans left to right for target.
func LinearSearch(input []int, target int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)

		at := func(line, current int, found bool) m.Snapshot {
			return step(line, array, func(t *m.ArrayTrace) {
				if current != m.NoIndex {
					t.Comparing = []int{current}
				}
				t.Target = m.IntPtr(target)
				t.Current = current
				t.Found = found
			})
		}

		if !yield(at(1, m.NoIndex, false)) {
			return
		}

		for i := range array {
			if !yield(at(3, i, false)) {
				return
			}

			if array[i] == target {
				if !yield(at(4, i, true)) || !yield(at(5, i, true)) {
					return
				}

				indexResult(result, i)

				return
			}
		}

		if !yield(at(7, m.NoIndex, false)) {
			return
		}

		indexResult(result, m.NoIndex)
	})
}

// BinarySearch halves the window [left, right] around mid. The input is
// sorted first since the search is only correct on sorted data.
func BinarySearch(input []int, target int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		slices.Sort(array)

		left, right := 0, len(array)-1

		at := func(line, mid int, compare, found bool) m.Snapshot {
			return step(line, array, func(t *m.ArrayTrace) {
				if compare {
					t.Comparing = []int{mid}
				}
				t.Target = m.IntPtr(target)
				t.Left = left
				t.Right = right
				t.Mid = mid
				t.Found = found
			})
		}

		if !yield(at(1, m.NoIndex, false, false)) {
			return
		}

		for left <= right {
			mid := (left + right) / 2

			if !yield(at(3, mid, true, false)) || !yield(at(4, mid, true, false)) {
				return
			}

			if array[mid] == target {
				if !yield(at(6, mid, true, true)) || !yield(at(7, mid, true, true)) {
					return
				}

				indexResult(result, mid)

				return
			}

			if array[mid] < target {
				if !yield(at(9, mid, true, false)) {
					return
				}

				left = mid + 1

				if !yield(at(10, mid, false, false)) {
					return
				}
			} else {
				if !yield(at(12, mid, true, false)) {
					return
				}

				right = mid - 1

				if !yield(at(13, mid, false, false)) {
					return
				}
			}
		}

		if !yield(at(16, m.NoIndex, false, false)) {
			return
		}

		indexResult(result, m.NoIndex)
	})
}
