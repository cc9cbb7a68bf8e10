// Package algorithms implements the built-in step sources. Every algorithm
// is a lazy iter.Seq of snapshots; recursive algorithms are composed by
// ranging over the sequences of their sub-calls.
package algorithms

import (
	"iter"
	"slices"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// Trace is the snapshot sequence of one algorithm run plus its final value.
// Result is only meaningful once Seq has been fully consumed.
type Trace struct {
	Seq    iter.Seq[m.Snapshot]
	result *m.Result
}

// Result returns the final value produced by the last full iteration of Seq.
func (t Trace) Result() m.Result {
	if t.result == nil {
		return m.Result{}
	}

	return *t.result
}

func newTrace(run func(yield func(m.Snapshot) bool, result *m.Result)) Trace {
	result := &m.Result{}

	return Trace{
		Seq: func(yield func(m.Snapshot) bool) {
			*result = m.Result{}
			run(yield, result)
		},
		result: result,
	}
}

// arrayResult finalizes a sort result.
func arrayResult(result *m.Result, array []int) {
	result.Kind = m.ResultArray
	result.Array = slices.Clone(array)
}

// indexResult finalizes a search result.
func indexResult(result *m.Result, index int) {
	result.Kind = m.ResultIndex
	result.Index = index
	result.Found = index != m.NoIndex
}

// step wraps an array trace into a snapshot. The array is copied.
func step(line int, array []int, fill func(t *m.ArrayTrace)) m.Snapshot {
	trace := m.NewArrayTrace(array)
	if fill != nil {
		fill(trace)
		trace.Comparing = slices.Clone(trace.Comparing)
		trace.Finalized = slices.Clone(trace.Finalized)
	}

	return m.Snapshot{Line: line, Payload: trace}
}

// plain is a snapshot of the array with no markers.
func plain(line int, array []int) m.Snapshot {
	return step(line, array, nil)
}

// upTo returns the indexes [0, k).
func upTo(k int) []int {
	out := make([]int, 0, max(k, 0))
	for i := range max(k, 0) {
		out = append(out, i)
	}

	return out
}

// tail returns the last k indexes of an n-element array, highest first.
func tail(n, k int) []int {
	out := make([]int, 0, max(k, 0))
	for i := range max(k, 0) {
		out = append(out, n-1-i)
	}

	return out
}

// from returns the indexes [start, n).
func from(start, n int) []int {
	out := make([]int, 0, max(n-start, 0))
	for i := start; i < n; i++ {
		out = append(out, i)
	}

	return out
}

// in keeps the indexes below n.
func in(n int, indexes ...int) []int {
	out := make([]int, 0, len(indexes))
	for _, idx := range indexes {
		if idx < n {
			out = append(out, idx)
		}
	}

	return out
}

// forward re-yields every snapshot of seq and reports whether the consumer
// still wants more.
func forward(seq iter.Seq[m.Snapshot], yield func(m.Snapshot) bool) bool {
	for s := range seq {
		if !yield(s) {
			return false
		}
	}

	return true
}

func clone(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)

	return out
}
