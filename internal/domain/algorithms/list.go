package algorithms

import (
	"fmt"
	"slices"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// linkedList is a singly linked list laid out in a slice.
type linkedList struct {
	values []int
	next   []int
	head   int
}

func newLinkedList(values []int) *linkedList {
	l := &linkedList{values: clone(values), next: make([]int, len(values)), head: m.NoIndex}

	for i := range l.next {
		l.next[i] = i + 1
	}

	if len(values) > 0 {
		l.next[len(values)-1] = m.NoIndex
		l.head = 0
	}

	return l
}

func (l *linkedList) snapshot(line, current int, comparing []int, message string) m.Snapshot {
	if comparing == nil {
		comparing = []int{}
	}

	return m.Snapshot{
		Line:    line,
		Message: message,
		Payload: &m.ListTrace{
			Values:    clone(l.values),
			Next:      clone(l.next),
			Head:      l.head,
			Current:   current,
			Comparing: clone(comparing),
		},
	}
}

// LinkedListSearch walks the list from the head looking for target.
func LinkedListSearch(input []int, target int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		list := newLinkedList(input)

		if !yield(list.snapshot(1, m.NoIndex, nil, fmt.Sprintf("Searching for %d in linked list", target))) {
			return
		}

		for i := list.head; i != m.NoIndex; i = list.next[i] {
			if !yield(list.snapshot(3, i, []int{i},
				fmt.Sprintf("Checking node at index %d: %d", i, list.values[i]))) {
				return
			}

			if list.values[i] == target {
				if !yield(list.snapshot(4, i, []int{i}, fmt.Sprintf("Found %d at index %d!", target, i))) {
					return
				}

				indexResult(result, i)

				return
			}
		}

		if !yield(list.snapshot(6, m.NoIndex, nil, fmt.Sprintf("%d not found in linked list", target))) {
			return
		}

		indexResult(result, m.NoIndex)
	})
}

// LinkedListInsertHead prepends value to the list.
func LinkedListInsertHead(input []int, value int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		list := newLinkedList(input)

		if !yield(list.snapshot(1, m.NoIndex, nil, fmt.Sprintf("Inserting %d at the beginning", value))) {
			return
		}

		list = newLinkedList(append([]int{value}, input...))

		if !yield(list.snapshot(2, 0, []int{0}, fmt.Sprintf("Created new node with value %d", value))) ||
			!yield(list.snapshot(3, 0, nil,
				fmt.Sprintf("Inserted %d at the beginning. New head points to this node.", value))) {
			return
		}

		arrayResult(result, list.values)
	})
}

// LinkedListDelete unlinks the first node holding value.
func LinkedListDelete(input []int, value int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		list := newLinkedList(input)

		if !yield(list.snapshot(1, m.NoIndex, nil, fmt.Sprintf("Deleting node with value %d", value))) {
			return
		}

		if len(input) > 0 && input[0] == value {
			if !yield(list.snapshot(3, 0, []int{0}, fmt.Sprintf("Found %d at head. Updating head pointer.", value))) {
				return
			}

			list = newLinkedList(input[1:])

			if !yield(list.snapshot(4, m.NoIndex, nil,
				fmt.Sprintf("Deleted %d. Head now points to next node.", value))) {
				return
			}

			arrayResult(result, list.values)

			return
		}

		for prev, current := 0, 1; current < len(input); prev, current = current, current+1 {
			pair := []int{prev, current}

			if !yield(list.snapshot(6, current, pair,
				fmt.Sprintf("Checking node at index %d: %d", current, list.values[current]))) {
				return
			}

			if list.values[current] != value {
				continue
			}

			list.next[prev] = list.next[current]

			if !yield(list.snapshot(8, current, pair,
				fmt.Sprintf("Found %d. Updating previous node's next pointer.", value))) {
				return
			}

			list = newLinkedList(slices.Delete(clone(input), current, current+1))

			if !yield(list.snapshot(9, m.NoIndex, nil, fmt.Sprintf("Deleted %d successfully.", value))) {
				return
			}

			arrayResult(result, list.values)

			return
		}

		if !yield(list.snapshot(11, m.NoIndex, nil, fmt.Sprintf("%d not found in linked list", value))) {
			return
		}

		arrayResult(result, list.values)
	})
}

// LinkedListReverse flips every next pointer in place.
func LinkedListReverse(input []int) Trace {
	return newTrace(func(yield func(m.Snapshot) bool, result *m.Result) {
		list := newLinkedList(input)

		if !yield(list.snapshot(1, m.NoIndex, nil, "Reversing linked list")) {
			return
		}

		prev := m.NoIndex
		for current := list.head; current != m.NoIndex; {
			comparing := []int{current}
			if prev != m.NoIndex {
				list.head = prev
				comparing = []int{prev, current}
			}

			if !yield(list.snapshot(3, current, comparing,
				fmt.Sprintf("Processing node at index %d. Reversing pointer.", current))) {
				return
			}

			next := list.next[current]
			list.next[current] = prev
			prev, current = current, next
		}

		reversed := clone(input)
		slices.Reverse(reversed)
		list = newLinkedList(reversed)

		if !yield(list.snapshot(5, m.NoIndex, nil, "Linked list reversed successfully!")) {
			return
		}

		arrayResult(result, list.values)
	})
}
