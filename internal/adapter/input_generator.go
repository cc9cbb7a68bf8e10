package adapter

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// Generated array values fall in [MinValue, MaxValue].
const (
	MinValue = 10
	MaxValue = 100
)

// ErrUnsupportedShape is returned for unknown array types or graph shapes.
var ErrUnsupportedShape = errors.New("unsupported input shape")

// InputGenerator produces inputs for runs that do not supply their own.
type InputGenerator interface {
	// Array returns size values shaped by kind.
	Array(size int, kind m.ArrayType) ([]int, error)
	// Graph returns an undirected graph with nodes vertices shaped by shape.
	Graph(nodes int, shape m.GraphShape) (m.Graph, error)
	// Target picks a search target that is present in values.
	Target(values []int) int
}

// RandomInputGenerator is the pseudo-random InputGenerator.
type RandomInputGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomInputGenerator creates a generator. A zero seed draws a random one.
func NewRandomInputGenerator(seed uint64) *RandomInputGenerator {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &RandomInputGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Array implements InputGenerator.
func (g *RandomInputGenerator) Array(size int, kind m.ArrayType) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative array size %d", ErrUnsupportedShape, size)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	values := make([]int, size)
	for i := range values {
		values[i] = MinValue + g.rng.IntN(MaxValue-MinValue+1)
	}

	switch kind {
	case m.ArrayRandom, "":
	case m.ArraySorted:
		slices.Sort(values)
	case m.ArrayReversed:
		slices.Sort(values)
		slices.Reverse(values)
	case m.ArrayNearlySorted:
		slices.Sort(values)

		for range size / 10 {
			a, b := g.rng.IntN(size), g.rng.IntN(size)
			values[a], values[b] = values[b], values[a]
		}
	default:
		return nil, fmt.Errorf("%w: array type %q", ErrUnsupportedShape, kind)
	}

	return values, nil
}

// Graph implements InputGenerator.
func (g *RandomInputGenerator) Graph(nodes int, shape m.GraphShape) (m.Graph, error) {
	if nodes < 1 {
		return nil, fmt.Errorf("%w: graph needs at least one node, got %d", ErrUnsupportedShape, nodes)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	switch shape {
	case m.GraphRandom, "":
		return g.randomGraph(nodes), nil
	case m.GraphTree:
		return g.treeGraph(nodes), nil
	case m.GraphGrid:
		return gridGraph(nodes), nil
	default:
		return nil, fmt.Errorf("%w: graph shape %q", ErrUnsupportedShape, shape)
	}
}

// Target implements InputGenerator.
func (g *RandomInputGenerator) Target(values []int) int {
	if len(values) == 0 {
		return MinValue
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return values[g.rng.IntN(len(values))]
}

func emptyGraph(nodes int) m.Graph {
	graph := make(m.Graph, nodes)
	for i := range nodes {
		graph[i] = []int{}
	}

	return graph
}

// randomGraph adds 1.5 edges per node, capped by the complete graph.
func (g *RandomInputGenerator) randomGraph(nodes int) m.Graph {
	graph := emptyGraph(nodes)
	edges := min(nodes*3/2, nodes*(nodes-1)/2)

	for count := 0; count < edges; {
		from, to := g.rng.IntN(nodes), g.rng.IntN(nodes)
		if from == to || slices.Contains(graph[from], to) {
			continue
		}

		graph[from] = append(graph[from], to)
		graph[to] = append(graph[to], from)
		count++
	}

	return graph
}

func (g *RandomInputGenerator) treeGraph(nodes int) m.Graph {
	graph := emptyGraph(nodes)

	for i := 1; i < nodes; i++ {
		parent := g.rng.IntN(i)
		graph[parent] = append(graph[parent], i)
		graph[i] = append(graph[i], parent)
	}

	return graph
}

// gridGraph lays nodes out row by row in a near-square grid.
func gridGraph(nodes int) m.Graph {
	graph := emptyGraph(nodes)
	cols := int(math.Ceil(math.Sqrt(float64(nodes))))

	for node := range nodes {
		if right := node + 1; node%cols < cols-1 && right < nodes {
			graph[node] = append(graph[node], right)
			graph[right] = append(graph[right], node)
		}

		if bottom := node + cols; bottom < nodes {
			graph[node] = append(graph[node], bottom)
			graph[bottom] = append(graph[bottom], node)
		}
	}

	return graph
}
