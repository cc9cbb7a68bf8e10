package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

const maxListNodes = 64

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

// describeResult renders the final value of a lane.
func describeResult(r m.Result) string {
	switch r.Kind {
	case m.ResultArray:
		return "[" + joinInts(r.Array) + "]"
	case m.ResultIndex:
		if !r.Found {
			return "not found"
		}

		return fmt.Sprintf("found at index %d", r.Index)
	case m.ResultFound:
		if r.Found {
			return "found"
		}

		return "not found"
	case m.ResultOrder:
		return "order " + joinInts(r.Order)
	case m.ResultPair:
		if !r.Found {
			return "no pair"
		}

		return fmt.Sprintf("pair (%d, %d)", r.Pair[0], r.Pair[1])
	case m.ResultSum:
		return fmt.Sprintf("sum %d over [%d..%d]", r.Sum, r.Pair[0], r.Pair[1])
	default:
		return "-"
	}
}

// describeSwaps renders inferred swaps as "a<->b" pairs.
func describeSwaps(swaps []m.Swap) string {
	parts := make([]string, len(swaps))
	for i, s := range swaps {
		parts[i] = fmt.Sprintf("%d<->%d", s.From, s.To)
	}

	return strings.Join(parts, ", ")
}

// describeList walks a linked-list payload from its head.
func describeList(t *m.ListTrace) string {
	parts := []string{}

	for node, hops := t.Head, 0; node != m.NoIndex && hops < maxListNodes; node, hops = t.Next[node], hops+1 {
		parts = append(parts, strconv.Itoa(t.Values[node]))
	}

	if len(parts) == 0 {
		return "(empty)"
	}

	return strings.Join(parts, " -> ") + " -> nil"
}

// describePayload renders the structure of a non-array snapshot on one line.
func describePayload(s m.Snapshot) string {
	switch s.Kind() {
	case m.SnapshotGraph:
		g := s.Graph()

		return fmt.Sprintf("visited [%s] %s [%s] current %s",
			joinInts(g.Visited), g.FrontierKind, joinInts(g.Frontier), marker(g.Current))
	case m.SnapshotTree:
		t := s.Tree()

		current := "-"
		if t.Current != nil {
			current = strconv.Itoa(*t.Current)
		}

		return fmt.Sprintf("%s visited [%s] at %s", t.Traversal, joinInts(t.Visited), current)
	case m.SnapshotList:
		return describeList(s.List())
	default:
		return "[" + joinInts(s.Values()) + "]"
	}
}

func marker(index int) string {
	if index == m.NoIndex {
		return "-"
	}

	return strconv.Itoa(index)
}

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func formatElapsed(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

// completion estimates how far a snapshot is through its run, in [0, 1].
func completion(s m.Snapshot) float64 {
	ratio := func(done, total int) float64 {
		if total == 0 {
			return 0
		}

		return min(1, float64(done)/float64(total))
	}

	switch s.Kind() {
	case m.SnapshotArray:
		t := s.Array()
		if t == nil {
			return 0
		}

		if t.Found {
			return 1
		}

		return ratio(len(t.Finalized), len(t.Array))
	case m.SnapshotGraph:
		g := s.Graph()
		return ratio(len(g.Visited), len(g.Graph))
	case m.SnapshotTree:
		t := s.Tree()
		return ratio(len(t.Visited), len(t.Nodes))
	default:
		return 0
	}
}
