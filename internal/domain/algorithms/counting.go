package algorithms

import (
	"slices"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// MaxCountingRange bounds max-min of a counting sort input.
const MaxCountingRange = 10_000

// CountingSpan returns max-min of values without overflowing.
func CountingSpan(values []int) uint64 {
	if len(values) == 0 {
		return 0
	}

	return uint64(slices.Max(values)) - uint64(slices.Min(values))
}

// CountingSort counts occurrences offset by the minimum value, so negative
// inputs are supported. Callers keep CountingSpan(input) within
// MaxCountingRange.
func CountingSort(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		n := len(array)

		if !yield(plain(1, array)) {
			return
		}

		if n > 0 && !countingPasses(array, yield) {
			return
		}

		if !yield(step(m.NoLine, array, func(t *m.ArrayTrace) {
			t.Counting = &m.CountingState{Index: m.NoIndex, OutputIndex: m.NoIndex}
			t.Finalized = upTo(n)
		})) {
			return
		}

		arrayResult(result, array)
	})
}

func countingPasses(array []int, yield func(m.Snapshot) bool) bool {
	n := len(array)
	lo, hi := slices.Min(array), slices.Max(array)
	count := make([]int, hi-lo+1)
	output := make([]*int, n)

	for i := range n {
		count[array[i]-lo]++

		if !yield(step(7, array, func(t *m.ArrayTrace) {
			t.Comparing = []int{i}
			t.Counting = &m.CountingState{
				Value:       m.IntPtr(array[i]),
				Counts:      clone(count),
				Index:       array[i] - lo,
				OutputIndex: m.NoIndex,
			}
		})) {
			return false
		}
	}

	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]

		if !yield(step(10, array, func(t *m.ArrayTrace) {
			t.Counting = &m.CountingState{Counts: clone(count), Index: i, OutputIndex: m.NoIndex}
		})) {
			return false
		}
	}

	for i := n - 1; i >= 0; i-- {
		value := array[i]
		index := count[value-lo] - 1
		output[index] = m.IntPtr(value)
		count[value-lo]--

		if !yield(step(13, array, func(t *m.ArrayTrace) {
			t.Comparing = []int{i}
			t.Counting = &m.CountingState{
				Value:       m.IntPtr(value),
				Counts:      clone(count),
				Index:       m.NoIndex,
				Output:      slices.Clone(output),
				OutputIndex: index,
			}
		})) {
			return false
		}
	}

	for i := range n {
		array[i] = *output[i]

		if !yield(step(16, array, func(t *m.ArrayTrace) {
			t.Comparing = []int{i}
			t.Counting = &m.CountingState{Index: m.NoIndex, OutputIndex: m.NoIndex}
			t.Finalized = upTo(i + 1)
		})) {
			return false
		}
	}

	return true
}
