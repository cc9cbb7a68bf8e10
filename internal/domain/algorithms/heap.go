package algorithms

import (
	"iter"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// HeapSort builds a max heap, then repeatedly moves the root behind the heap.
func HeapSort(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		n := len(array)
		sorted := []int{}

		if !yield(plain(1, array)) {
			return
		}

		for i := n/2 - 1; i >= 0; i-- {
			if !forward(heapify(array, n, i, &sorted), yield) {
				return
			}
		}

		for i := n - 1; i > 0; i-- {
			if !yield(plain(4, array)) {
				return
			}

			array[0], array[i] = array[i], array[0]

			if !yield(step(5, array, func(t *m.ArrayTrace) {
				t.Comparing = []int{0, i}
				t.Heap = &m.HeapState{Root: 0, Size: i}
				t.Finalized = from(i+1, n)
			})) {
				return
			}

			if !forward(heapify(array, i, 0, &sorted), yield) {
				return
			}

			sorted = from(i, n)

			if !yield(step(7, array, func(t *m.ArrayTrace) {
				t.Heap = &m.HeapState{Root: 0, Size: i}
				t.Finalized = sorted
			})) {
				return
			}
		}

		if !yield(step(10, array, func(t *m.ArrayTrace) {
			t.Heap = &m.HeapState{Root: m.NoIndex, Size: 0}
			t.Finalized = upTo(n)
		})) {
			return
		}

		arrayResult(result, array)
	})
}

// heapify sifts array[root] down within the first size elements.
func heapify(array []int, size, root int, sorted *[]int) iter.Seq[m.Snapshot] {
	return func(yield func(m.Snapshot) bool) {
		largest := root
		left := 2*root + 1
		right := 2*root + 2
		heap := &m.HeapState{Root: root, Size: size}

		if !yield(step(m.NoLine, array, func(t *m.ArrayTrace) {
			t.Comparing = in(size, root, left, right)
			t.Heap = heap
			t.Finalized = *sorted
		})) {
			return
		}

		if left < size && array[left] > array[largest] {
			largest = left
		}

		if right < size && array[right] > array[largest] {
			largest = right
		}

		if largest == root {
			return
		}

		array[root], array[largest] = array[largest], array[root]

		if !yield(step(m.NoLine, array, func(t *m.ArrayTrace) {
			t.Comparing = []int{root, largest}
			t.Heap = heap
			t.Finalized = *sorted
		})) {
			return
		}

		forward(heapify(array, size, largest, sorted), yield)
	}
}
