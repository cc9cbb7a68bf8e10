// Package model defines the data structures shared by the step-trace core.
package model

// AlgorithmID identifies a step source factory in the catalog.
type AlgorithmID string

// Built-in algorithms.
const (
	AlgorithmBubble    AlgorithmID = "bubble"
	AlgorithmInsertion AlgorithmID = "insertion"
	AlgorithmSelection AlgorithmID = "selection"
	AlgorithmMerge     AlgorithmID = "merge"
	AlgorithmQuick     AlgorithmID = "quick"
	AlgorithmHeap      AlgorithmID = "heap"
	AlgorithmShell     AlgorithmID = "shell"
	AlgorithmCounting  AlgorithmID = "counting"

	AlgorithmLinearSearch AlgorithmID = "linear"
	AlgorithmBinarySearch AlgorithmID = "binary"

	AlgorithmBFS AlgorithmID = "bfs"
	AlgorithmDFS AlgorithmID = "dfs"

	AlgorithmListSearch  AlgorithmID = "list-search"
	AlgorithmListInsert  AlgorithmID = "list-insert"
	AlgorithmListDelete  AlgorithmID = "list-delete"
	AlgorithmListReverse AlgorithmID = "list-reverse"

	AlgorithmTreeSearch    AlgorithmID = "tree-search"
	AlgorithmTreeInorder   AlgorithmID = "tree-inorder"
	AlgorithmTreePreorder  AlgorithmID = "tree-preorder"
	AlgorithmTreePostorder AlgorithmID = "tree-postorder"

	AlgorithmTwoSum      AlgorithmID = "two-sum"
	AlgorithmMaxSubarray AlgorithmID = "max-subarray"

	// AlgorithmPractice selects the interpreted step source.
	AlgorithmPractice AlgorithmID = "practice"
)

// AlgorithmInfo describes one built-in step source.
type AlgorithmInfo struct {
	ID          AlgorithmID
	Name        string
	Kind        Kind
	Family      SnapshotKind
	NeedsTarget bool
	NeedsGraph  bool
}

// Kind is the shape of the operation an algorithm performs.
type Kind string

const (
	// KindSort rearranges the array and returns it.
	KindSort Kind = "sort"
	// KindSearch looks for a target and returns its position.
	KindSearch Kind = "search"
	// KindTraversal walks a structure and returns the visit order.
	KindTraversal Kind = "traversal"
	// KindTransform rewrites a structure (linked-list insert/delete/reverse).
	KindTransform Kind = "transform"
	// KindProblem is an interview-style problem trace.
	KindProblem Kind = "problem"
)

// ArrayType selects how an input array is generated.
type ArrayType string

// Available ArrayType values.
const (
	ArrayRandom       ArrayType = "random"
	ArraySorted       ArrayType = "sorted"
	ArrayReversed     ArrayType = "reversed"
	ArrayNearlySorted ArrayType = "nearlySorted"
)

// GraphShape selects how an input graph is generated.
type GraphShape string

// Available GraphShape values.
const (
	GraphRandom GraphShape = "random"
	GraphTree   GraphShape = "tree"
	GraphGrid   GraphShape = "grid"
)
