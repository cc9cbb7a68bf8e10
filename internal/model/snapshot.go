package model

import "slices"

// SnapshotKind tags which payload variant a Snapshot carries.
type SnapshotKind string

// Available SnapshotKind values.
const (
	SnapshotArray SnapshotKind = "array"
	SnapshotGraph SnapshotKind = "graph"
	SnapshotTree  SnapshotKind = "tree"
	SnapshotList  SnapshotKind = "list"
)

// NoIndex marks an inactive single-index marker.
const NoIndex = -1

// NoLine marks a snapshot without a code line.
const NoLine = -1

// Payload is the family specific part of a Snapshot.
// Only the types in this package implement it.
type Payload interface {
	Kind() SnapshotKind
	values() []int
	highlighted() []int
}

// Snapshot is one immutable moment of an algorithm's execution.
type Snapshot struct {
	// Line locates the step in its code listing. Native traces use the
	// 1-based line of the algorithm's reference listing, or NoLine; practice
	// traces use the 0-based index into the learner's source.
	Line int
	// Message is a human readable narration of the step.
	Message string
	// Failed marks the terminal snapshot of a failed interpreted run.
	Failed  bool
	Payload Payload
}

// Kind returns the payload family, defaulting to SnapshotArray.
func (s Snapshot) Kind() SnapshotKind {
	if s.Payload == nil {
		return SnapshotArray
	}

	return s.Payload.Kind()
}

// Values returns the array-like content used for rendering and swap inference.
func (s Snapshot) Values() []int {
	if s.Payload == nil {
		return nil
	}

	return s.Payload.values()
}

// Highlighted returns the positions being compared at this step.
func (s Snapshot) Highlighted() []int {
	if s.Payload == nil {
		return nil
	}

	return s.Payload.highlighted()
}

// Array returns the array payload, or nil for other families.
func (s Snapshot) Array() *ArrayTrace {
	trace, _ := s.Payload.(*ArrayTrace)
	return trace
}

// Graph returns the graph payload, or nil for other families.
func (s Snapshot) Graph() *GraphTrace {
	trace, _ := s.Payload.(*GraphTrace)
	return trace
}

// Tree returns the tree payload, or nil for other families.
func (s Snapshot) Tree() *TreeTrace {
	trace, _ := s.Payload.(*TreeTrace)
	return trace
}

// List returns the linked-list payload, or nil for other families.
func (s Snapshot) List() *ListTrace {
	trace, _ := s.Payload.(*ListTrace)
	return trace
}

// Range is an inclusive [Start, End] index pair.
type Range struct {
	Start int
	End   int
}

// HeapState describes the heap currently being sifted.
type HeapState struct {
	Root int
	Size int
}

// CountingState exposes counting sort internals.
type CountingState struct {
	Value       *int
	Counts      []int
	Index       int
	Output      []*int
	OutputIndex int
}

// ArrayTrace is the payload of array algorithms (sorts, searches, problems).
type ArrayTrace struct {
	Array     []int
	Comparing []int
	Finalized []int

	Pivot     int
	Inserting int
	Min       int
	Mid       int
	Left      int
	Right     int
	Current   int

	Merging   *Range
	Partition *Range
	Heap      *HeapState
	Gap       int
	Counting  *CountingState

	Target *int
	Found  bool
}

// NewArrayTrace copies arr and sets every marker to its inactive default.
func NewArrayTrace(arr []int) *ArrayTrace {
	return &ArrayTrace{
		Array:     clone(arr),
		Comparing: []int{},
		Finalized: []int{},
		Pivot:     NoIndex,
		Inserting: NoIndex,
		Min:       NoIndex,
		Mid:       NoIndex,
		Left:      NoIndex,
		Right:     NoIndex,
		Current:   NoIndex,
	}
}

// Kind implements Payload.
func (t *ArrayTrace) Kind() SnapshotKind { return SnapshotArray }

func (t *ArrayTrace) values() []int      { return t.Array }
func (t *ArrayTrace) highlighted() []int { return t.Comparing }

// Position returns the search position marker: Mid when set, otherwise Current.
func (t *ArrayTrace) Position() int {
	if t.Mid != NoIndex {
		return t.Mid
	}

	return t.Current
}

// IsFinalized reports whether index i is marked as in its final position.
func (t *ArrayTrace) IsFinalized(i int) bool {
	return slices.Contains(t.Finalized, i)
}

// FrontierKind names the container a graph traversal works from.
type FrontierKind string

// Available FrontierKind values.
const (
	FrontierQueue FrontierKind = "queue"
	FrontierStack FrontierKind = "stack"
)

// GraphTrace is the payload of graph traversals.
type GraphTrace struct {
	Graph        Graph
	FrontierKind FrontierKind
	Frontier     []int
	Visited      []int
	Current      int
	Checking     int
	Parent       map[int]int
	Level        map[int]int
}

// Kind implements Payload.
func (t *GraphTrace) Kind() SnapshotKind { return SnapshotGraph }

func (t *GraphTrace) values() []int { return t.Visited }

func (t *GraphTrace) highlighted() []int {
	if t.Checking == NoIndex {
		return nil
	}

	return []int{t.Checking}
}

// ListTrace is the payload of linked-list operations. Nodes are stored in
// slice order; Next[i] is the index of the node after i, or NoIndex.
type ListTrace struct {
	Values    []int
	Next      []int
	Head      int
	Current   int
	Comparing []int
}

// Kind implements Payload.
func (t *ListTrace) Kind() SnapshotKind { return SnapshotList }

func (t *ListTrace) values() []int      { return t.Values }
func (t *ListTrace) highlighted() []int { return t.Comparing }

// Traversal names a binary tree walk.
type Traversal string

// Available Traversal values.
const (
	TraversalSearch    Traversal = "search"
	TraversalInorder   Traversal = "inorder"
	TraversalPreorder  Traversal = "preorder"
	TraversalPostorder Traversal = "postorder"
)

// TreeTrace is the payload of binary search tree algorithms.
type TreeTrace struct {
	Input     []int
	Nodes     []TreeNode
	Root      int
	Visited   []int
	Current   *int
	Traversal Traversal
}

// Kind implements Payload.
func (t *TreeTrace) Kind() SnapshotKind { return SnapshotTree }

func (t *TreeTrace) values() []int { return t.Input }

func (t *TreeTrace) highlighted() []int {
	if t.Current == nil {
		return nil
	}

	return []int{*t.Current}
}

func clone(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)

	return out
}
