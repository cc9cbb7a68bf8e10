package algorithms

import (
	"fmt"
	"maps"
	"slices"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// traversal is the mutable state shared by BFS and DFS.
type traversal struct {
	graph    m.Graph
	kind     m.FrontierKind
	frontier []int
	visited  []int
	parent   map[int]int
	level    map[int]int
}

func (w *traversal) snapshot(line, current, checking int, message string) m.Snapshot {
	trace := &m.GraphTrace{
		Graph:        w.graph,
		FrontierKind: w.kind,
		Frontier:     clone(w.frontier),
		Visited:      clone(w.visited),
		Current:      current,
		Checking:     checking,
		Parent:       maps.Clone(w.parent),
	}

	if w.level != nil {
		trace.Level = maps.Clone(w.level)
	}

	return m.Snapshot{Line: line, Message: message, Payload: trace}
}

func (w *traversal) seen(node int) bool {
	return slices.Contains(w.visited, node) || slices.Contains(w.frontier, node)
}

// BFS visits the graph level by level from start.
func BFS(graph m.Graph, start int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		w := &traversal{
			graph:    graph.Clone(),
			kind:     m.FrontierQueue,
			frontier: []int{start},
			parent:   map[int]int{},
			level:    map[int]int{start: 0},
		}

		if !yield(w.snapshot(1, m.NoIndex, m.NoIndex, fmt.Sprintf("Starting BFS from node %d", start))) {
			return
		}

		for len(w.frontier) > 0 {
			current := w.frontier[0]
			w.frontier = w.frontier[1:]

			if !yield(w.snapshot(3, current, m.NoIndex, fmt.Sprintf("Processing node %d", current))) {
				return
			}

			if slices.Contains(w.visited, current) {
				continue
			}

			w.visited = append(w.visited, current)

			if !yield(w.snapshot(5, current, m.NoIndex, fmt.Sprintf("Marked node %d as visited", current))) {
				return
			}

			for _, neighbor := range w.graph[current] {
				if !yield(w.snapshot(7, current, neighbor,
					fmt.Sprintf("Checking neighbor %d of node %d", neighbor, current))) {
					return
				}

				if w.seen(neighbor) {
					continue
				}

				w.frontier = append(w.frontier, neighbor)
				w.parent[neighbor] = current
				w.level[neighbor] = w.level[current] + 1

				if !yield(w.snapshot(9, current, neighbor,
					fmt.Sprintf("Added node %d to queue (level %d)", neighbor, w.level[neighbor]))) {
					return
				}
			}
		}

		w.frontier = nil

		if !yield(w.snapshot(12, m.NoIndex, m.NoIndex,
			fmt.Sprintf("BFS complete. Visited %d nodes.", len(w.visited)))) {
			return
		}

		orderResult(result, w.visited)
	})
}

// DFS walks the graph depth first with an explicit stack. Neighbors are
// pushed in reverse so they are visited in adjacency order.
func DFS(graph m.Graph, start int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		w := &traversal{
			graph:    graph.Clone(),
			kind:     m.FrontierStack,
			frontier: []int{start},
			parent:   map[int]int{},
		}

		if !yield(w.snapshot(1, m.NoIndex, m.NoIndex, fmt.Sprintf("Starting DFS from node %d", start))) {
			return
		}

		for len(w.frontier) > 0 {
			last := len(w.frontier) - 1
			current := w.frontier[last]
			w.frontier = w.frontier[:last]

			if !yield(w.snapshot(3, current, m.NoIndex, fmt.Sprintf("Popped node %d from stack", current))) {
				return
			}

			if slices.Contains(w.visited, current) {
				continue
			}

			w.visited = append(w.visited, current)

			if !yield(w.snapshot(5, current, m.NoIndex, fmt.Sprintf("Marked node %d as visited", current))) {
				return
			}

			neighbors := w.graph[current]
			for i := len(neighbors) - 1; i >= 0; i-- {
				neighbor := neighbors[i]

				if !yield(w.snapshot(7, current, neighbor,
					fmt.Sprintf("Checking neighbor %d of node %d", neighbor, current))) {
					return
				}

				if w.seen(neighbor) {
					continue
				}

				w.frontier = append(w.frontier, neighbor)
				w.parent[neighbor] = current

				if !yield(w.snapshot(9, current, neighbor, fmt.Sprintf("Pushed node %d to stack", neighbor))) {
					return
				}
			}
		}

		w.frontier = nil

		if !yield(w.snapshot(12, m.NoIndex, m.NoIndex,
			fmt.Sprintf("DFS complete. Visited %d nodes.", len(w.visited)))) {
			return
		}

		orderResult(result, w.visited)
	})
}

func orderResult(result *m.Result, order []int) {
	result.Kind = m.ResultOrder
	result.Order = clone(order)
}
