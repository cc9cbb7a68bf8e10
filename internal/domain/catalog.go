package domain

import (
	"fmt"
	"slices"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain/algorithms"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

type catalogEntry struct {
	m.AlgorithmInfo
	build func(in m.RunInput) algorithms.Trace
}

func sortEntry(id m.AlgorithmID, name string, fn func([]int) algorithms.Trace) catalogEntry {
	return catalogEntry{
		AlgorithmInfo: m.AlgorithmInfo{ID: id, Name: name, Kind: m.KindSort, Family: m.SnapshotArray},
		build:         func(in m.RunInput) algorithms.Trace { return fn(in.Array) },
	}
}

func targetEntry(
	id m.AlgorithmID, name string, kind m.Kind, family m.SnapshotKind, fn func([]int, int) algorithms.Trace,
) catalogEntry {
	return catalogEntry{
		AlgorithmInfo: m.AlgorithmInfo{ID: id, Name: name, Kind: kind, Family: family, NeedsTarget: true},
		build:         func(in m.RunInput) algorithms.Trace { return fn(in.Array, *in.Target) },
	}
}

func graphEntry(id m.AlgorithmID, name string, fn func(m.Graph, int) algorithms.Trace) catalogEntry {
	return catalogEntry{
		AlgorithmInfo: m.AlgorithmInfo{
			ID: id, Name: name, Kind: m.KindTraversal, Family: m.SnapshotGraph, NeedsGraph: true,
		},
		build: func(in m.RunInput) algorithms.Trace { return fn(in.Graph, in.Start) },
	}
}

func arrayEntry(
	id m.AlgorithmID, name string, kind m.Kind, family m.SnapshotKind, fn func([]int) algorithms.Trace,
) catalogEntry {
	return catalogEntry{
		AlgorithmInfo: m.AlgorithmInfo{ID: id, Name: name, Kind: kind, Family: family},
		build:         func(in m.RunInput) algorithms.Trace { return fn(in.Array) },
	}
}

var catalog = []catalogEntry{
	sortEntry(m.AlgorithmBubble, "Bubble Sort", algorithms.BubbleSort),
	sortEntry(m.AlgorithmInsertion, "Insertion Sort", algorithms.InsertionSort),
	sortEntry(m.AlgorithmSelection, "Selection Sort", algorithms.SelectionSort),
	sortEntry(m.AlgorithmMerge, "Merge Sort", algorithms.MergeSort),
	sortEntry(m.AlgorithmQuick, "Quick Sort", algorithms.QuickSort),
	sortEntry(m.AlgorithmHeap, "Heap Sort", algorithms.HeapSort),
	sortEntry(m.AlgorithmShell, "Shell Sort", algorithms.ShellSort),
	sortEntry(m.AlgorithmCounting, "Counting Sort", algorithms.CountingSort),

	targetEntry(m.AlgorithmLinearSearch, "Linear Search", m.KindSearch, m.SnapshotArray, algorithms.LinearSearch),
	targetEntry(m.AlgorithmBinarySearch, "Binary Search", m.KindSearch, m.SnapshotArray, algorithms.BinarySearch),

	graphEntry(m.AlgorithmBFS, "Breadth-First Search", algorithms.BFS),
	graphEntry(m.AlgorithmDFS, "Depth-First Search", algorithms.DFS),

	targetEntry(m.AlgorithmListSearch, "Linked List Search", m.KindSearch, m.SnapshotList,
		algorithms.LinkedListSearch),
	targetEntry(m.AlgorithmListInsert, "Linked List Insert at Head", m.KindTransform, m.SnapshotList,
		algorithms.LinkedListInsertHead),
	targetEntry(m.AlgorithmListDelete, "Linked List Delete", m.KindTransform, m.SnapshotList,
		algorithms.LinkedListDelete),
	arrayEntry(m.AlgorithmListReverse, "Linked List Reverse", m.KindTransform, m.SnapshotList,
		algorithms.LinkedListReverse),

	targetEntry(m.AlgorithmTreeSearch, "BST Search", m.KindSearch, m.SnapshotTree, algorithms.TreeSearch),
	arrayEntry(m.AlgorithmTreeInorder, "BST Inorder Traversal", m.KindTraversal, m.SnapshotTree,
		algorithms.TreeInorder),
	arrayEntry(m.AlgorithmTreePreorder, "BST Preorder Traversal", m.KindTraversal, m.SnapshotTree,
		algorithms.TreePreorder),
	arrayEntry(m.AlgorithmTreePostorder, "BST Postorder Traversal", m.KindTraversal, m.SnapshotTree,
		algorithms.TreePostorder),

	targetEntry(m.AlgorithmTwoSum, "Two Sum", m.KindProblem, m.SnapshotArray, algorithms.TwoSum),
	arrayEntry(m.AlgorithmMaxSubarray, "Maximum Subarray", m.KindProblem, m.SnapshotArray,
		algorithms.MaxSubarray),
}

// Algorithms lists the built-in step sources in catalog order.
func Algorithms() []m.AlgorithmInfo {
	out := make([]m.AlgorithmInfo, len(catalog))
	for i, entry := range catalog {
		out[i] = entry.AlgorithmInfo
	}

	return out
}

// Lookup returns the catalog information for id.
func Lookup(id m.AlgorithmID) (m.AlgorithmInfo, bool) {
	entry, ok := lookup(id)
	return entry.AlgorithmInfo, ok
}

func lookup(id m.AlgorithmID) (catalogEntry, bool) {
	i := slices.IndexFunc(catalog, func(e catalogEntry) bool { return e.ID == id })
	if i < 0 {
		return catalogEntry{}, false
	}

	return catalog[i], true
}

// NewSourceFactory returns a factory for the built-in algorithm named by
// input.Algorithm. Input problems are reported by the factory with
// ErrInvalidInput, so a stepper rejects them at start.
func NewSourceFactory(input m.RunInput) SourceFactory {
	return func() (StepSource, error) {
		entry, err := validate(input)
		if err != nil {
			return nil, err
		}

		return NewTraceSource(entry.build(input)), nil
	}
}

func validate(input m.RunInput) (catalogEntry, error) {
	entry, ok := lookup(input.Algorithm)
	if !ok {
		return catalogEntry{}, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, input.Algorithm)
	}

	if entry.ID == m.AlgorithmCounting && algorithms.CountingSpan(input.Array) > algorithms.MaxCountingRange {
		return catalogEntry{}, fmt.Errorf("%w: %s needs max-min of at most %d",
			ErrInvalidInput, entry.Name, algorithms.MaxCountingRange)
	}

	if entry.NeedsTarget && input.Target == nil {
		return catalogEntry{}, fmt.Errorf("%w: %s requires a target", ErrInvalidInput, entry.Name)
	}

	if entry.NeedsGraph {
		if len(input.Graph) == 0 {
			return catalogEntry{}, fmt.Errorf("%w: %s requires a graph", ErrInvalidInput, entry.Name)
		}

		if !input.Graph.Has(input.Start) {
			return catalogEntry{}, fmt.Errorf("%w: start node %d is not in the graph", ErrInvalidInput, input.Start)
		}
	}

	return entry, nil
}
