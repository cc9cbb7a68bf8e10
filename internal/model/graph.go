package model

import "slices"

// Graph is an adjacency list keyed by node id.
type Graph map[int][]int

// Nodes returns the node ids in ascending order.
func (g Graph) Nodes() []int {
	nodes := make([]int, 0, len(g))
	for node := range g {
		nodes = append(nodes, node)
	}

	slices.Sort(nodes)

	return nodes
}

// Has reports whether node is part of the graph.
func (g Graph) Has(node int) bool {
	_, ok := g[node]
	return ok
}

// Clone returns a deep copy of the graph.
func (g Graph) Clone() Graph {
	if g == nil {
		return nil
	}

	out := make(Graph, len(g))
	for node, neighbors := range g {
		out[node] = clone(neighbors)
	}

	return out
}

// EdgeCount returns the number of undirected edges.
func (g Graph) EdgeCount() int {
	total := 0
	for _, neighbors := range g {
		total += len(neighbors)
	}

	return total / 2
}

// TreeNode is a binary tree node stored by index; Left and Right are
// indexes into the owning slice or NoIndex.
type TreeNode struct {
	Value int
	Left  int
	Right int
}
