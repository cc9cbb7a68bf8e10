package algorithms

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// bst is a balanced binary search tree built from the sorted input.
type bst struct {
	input     []int
	nodes     []m.TreeNode
	root      int
	visited   []int
	traversal m.Traversal
}

func newBST(input []int, traversal m.Traversal) *bst {
	sorted := clone(input)
	slices.Sort(sorted)

	t := &bst{input: clone(input), traversal: traversal}
	t.root = t.build(sorted, 0, len(sorted)-1)

	return t
}

func (t *bst) build(sorted []int, start, end int) int {
	if start > end {
		return m.NoIndex
	}

	mid := (start + end) / 2
	index := len(t.nodes)
	t.nodes = append(t.nodes, m.TreeNode{Value: sorted[mid]})

	left := t.build(sorted, start, mid-1)
	right := t.build(sorted, mid+1, end)
	t.nodes[index].Left = left
	t.nodes[index].Right = right

	return index
}

func (t *bst) snapshot(line int, current *int, message string) m.Snapshot {
	return m.Snapshot{
		Line:    line,
		Message: message,
		Payload: &m.TreeTrace{
			Input:     t.input,
			Nodes:     t.nodes,
			Root:      t.root,
			Visited:   clone(t.visited),
			Current:   current,
			Traversal: t.traversal,
		},
	}
}

func (t *bst) visit(node int) m.Snapshot {
	value := t.nodes[node].Value
	t.visited = append(t.visited, value)

	return t.snapshot(4, m.IntPtr(value), fmt.Sprintf("Visiting node %d", value))
}

func (t *bst) joined() string {
	parts := make([]string, len(t.visited))
	for i, v := range t.visited {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}

// TreeSearch descends the tree comparing target with each node.
func TreeSearch(input []int, target int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		tree := newBST(input, m.TraversalSearch)

		if !yield(tree.snapshot(1, nil, fmt.Sprintf("Searching for %d in binary search tree", target))) {
			return
		}

		found := false
		if !forward(tree.search(tree.root, target, &found), yield) {
			return
		}

		result.Kind = m.ResultFound
		result.Found = found
	})
}

func (t *bst) search(node, target int, found *bool) iter.Seq[m.Snapshot] {
	return func(yield func(m.Snapshot) bool) {
		if node == m.NoIndex {
			yield(t.snapshot(3, nil, "Reached null node. Value not found."))
			return
		}

		value := t.nodes[node].Value
		current := m.IntPtr(value)

		if !yield(t.snapshot(4, current, fmt.Sprintf("Checking node %d", value))) {
			return
		}

		t.visited = append(t.visited, value)

		if value == target {
			*found = true
			yield(t.snapshot(5, current, fmt.Sprintf("Found %d!", target)))

			return
		}

		next, line, message := t.nodes[node].Right, 9, fmt.Sprintf("%d > %d, going right", target, value)
		if target < value {
			next, line, message = t.nodes[node].Left, 7, fmt.Sprintf("%d < %d, going left", target, value)
		}

		if !yield(t.snapshot(line, current, message)) {
			return
		}

		forward(t.search(next, target, found), yield)
	}
}

// TreeInorder visits left subtree, node, right subtree.
func TreeInorder(input []int) Trace {
	return treeWalk(input, m.TraversalInorder, "Inorder", "Left, Root, Right")
}

// TreePreorder visits node, left subtree, right subtree.
func TreePreorder(input []int) Trace {
	return treeWalk(input, m.TraversalPreorder, "Preorder", "Root, Left, Right")
}

// TreePostorder visits left subtree, right subtree, node.
func TreePostorder(input []int) Trace {
	return treeWalk(input, m.TraversalPostorder, "Postorder", "Left, Right, Root")
}

func treeWalk(input []int, traversal m.Traversal, name, order string) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		tree := newBST(input, traversal)

		if !yield(tree.snapshot(1, nil, fmt.Sprintf("Starting %s Traversal (%s)", name, order))) {
			return
		}

		if !forward(tree.walk(tree.root), yield) {
			return
		}

		if !yield(tree.snapshot(6, nil, fmt.Sprintf("%s traversal complete: [%s]", name, tree.joined()))) {
			return
		}

		orderResult(result, tree.visited)
	})
}

func (t *bst) walk(node int) iter.Seq[m.Snapshot] {
	return func(yield func(m.Snapshot) bool) {
		if node == m.NoIndex {
			return
		}

		left, right := t.nodes[node].Left, t.nodes[node].Right

		switch t.traversal {
		case m.TraversalPreorder:
			_ = yield(t.visit(node)) &&
				forward(t.walk(left), yield) &&
				forward(t.walk(right), yield)
		case m.TraversalPostorder:
			_ = forward(t.walk(left), yield) &&
				forward(t.walk(right), yield) &&
				yield(t.visit(node))
		default:
			_ = forward(t.walk(left), yield) &&
				yield(t.visit(node)) &&
				forward(t.walk(right), yield)
		}
	}
}
