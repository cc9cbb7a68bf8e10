package algorithms

import (
	"fmt"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// TwoSum finds two indexes whose values add up to target using a
// value-to-index map built in one pass.
func TwoSum(input []int, target int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)
		seen := map[int]int{}

		at := func(current int, pointers []int, found bool, message string) m.Snapshot {
			s := step(m.NoLine, array, func(t *m.ArrayTrace) {
				t.Comparing = pointers
				t.Current = current
				t.Target = m.IntPtr(target)
				t.Found = found
			})
			s.Message = message

			return s
		}

		if !yield(at(m.NoIndex, []int{}, false, "Starting Two Sum algorithm...")) {
			return
		}

		for i, value := range array {
			complement := target - value

			if !yield(at(i, []int{i}, false, fmt.Sprintf(
				"Checking index %d: value = %d, looking for complement = %d - %d = %d",
				i, value, target, value, complement))) {
				return
			}

			if j, ok := seen[complement]; ok {
				if !yield(at(i, []int{j, i}, true,
					fmt.Sprintf("Found! %d + %d = %d", array[j], value, target))) {
					return
				}

				result.Kind = m.ResultPair
				result.Found = true
				result.Pair = [2]int{j, i}

				return
			}

			seen[value] = i

			if !yield(at(i, []int{i}, false, fmt.Sprintf("Adding %d to map at index %d", value, i))) {
				return
			}
		}

		if !yield(at(m.NoIndex, []int{}, false, "No solution found")) {
			return
		}

		result.Kind = m.ResultPair
		result.Pair = [2]int{m.NoIndex, m.NoIndex}
	})
}

// MaxSubarray is Kadane's algorithm. Left and Right mark the best window
// found so far.
func MaxSubarray(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		array := clone(input)

		var best, current, start, end, tempStart int
		if len(array) > 0 {
			best, current = array[0], array[0]
		}

		at := func(index int, message string) m.Snapshot {
			s := step(m.NoLine, array, func(t *m.ArrayTrace) {
				if index != m.NoIndex {
					t.Comparing = []int{index}
				}
				t.Current = index
				if len(array) > 0 {
					t.Left = start
					t.Right = end
				}
			})
			s.Message = message

			return s
		}

		first := 0
		if len(array) == 0 {
			first = m.NoIndex
		}

		if !yield(at(first, fmt.Sprintf("Starting Kadane's algorithm. Initial maxSum = %d", best))) {
			return
		}

		for i := 1; i < len(array); i++ {
			var message string
			if current < 0 {
				current = array[i]
				tempStart = i
				message = fmt.Sprintf("Current sum became negative, resetting. New currentSum = %d", current)
			} else {
				current += array[i]
				message = fmt.Sprintf("Adding %d to current sum. New currentSum = %d", array[i], current)
			}

			if !yield(at(i, message)) {
				return
			}

			if current > best {
				best = current
				start, end = tempStart, i

				if !yield(at(i, fmt.Sprintf("New maximum sum found: %d (subarray from index %d to %d)",
					best, start, end))) {
					return
				}
			}
		}

		if !yield(at(m.NoIndex, fmt.Sprintf("Final result: Maximum subarray sum = %d", best))) {
			return
		}

		result.Kind = m.ResultSum
		result.Sum = best
		result.Pair = [2]int{start, end}
	})
}
