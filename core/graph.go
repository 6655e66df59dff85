package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrBadVertexCount indicates that NewGraph received a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexRange indicates that an edge endpoint lies outside [0, n).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrNegativeWeight indicates that an edge carries a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Arc is a single outgoing edge: a target vertex and a non-negative weight.
type Arc struct {
	// To is the target vertex id.
	To int

	// Weight is the non-negative cost of traversing this arc.
	Weight float64
}

// Graph is a directed graph over the vertex set {0..n-1} with weighted arcs.
//
// The vertex count is fixed by NewGraph; arcs are appended with AddEdge.
// Parallel arcs and self-loops are permitted (a zero-weight self-loop cannot
// affect shortest distances, and parallel arcs simply offer alternative
// weights for the same hop).
type Graph struct {
	n   int     // number of vertices
	m   int     // number of arcs
	adj [][]Arc // adj[v] holds the outgoing arcs of v
}

// NewGraph returns an empty directed graph over the vertices {0..n-1}.
// Returns ErrBadVertexCount if n is negative.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadVertexCount, n)
	}

	return &Graph{n: n, adj: make([][]Arc, n)}, nil
}

// AddEdge appends the directed arc from→to with the given weight.
//
// Validation (in order):
//  1. from must lie in [0, n)    (ErrVertexRange).
//  2. to must lie in [0, n)      (ErrVertexRange).
//  3. weight must be ≥ 0         (ErrNegativeWeight).
//
// Invalid input is rejected, never clamped.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if from < 0 || from >= g.n {
		return fmt.Errorf("%w: from=%d, n=%d", ErrVertexRange, from, g.n)
	}
	if to < 0 || to >= g.n {
		return fmt.Errorf("%w: to=%d, n=%d", ErrVertexRange, to, g.n)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, from, to, weight)
	}

	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: weight})
	g.m++

	return nil
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of arcs added so far.
func (g *Graph) EdgeCount() int { return g.m }

// HasVertex reports whether v lies in [0, n).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Arcs returns the outgoing arcs of v, or nil if v is out of range.
// The returned slice is the graph's own storage: callers must not mutate it.
func (g *Graph) Arcs(v int) []Arc {
	if v < 0 || v >= g.n {
		return nil
	}

	return g.adj[v]
}

// OutDegree returns the number of outgoing arcs of v, or 0 if v is out of range.
func (g *Graph) OutDegree(v int) int { return len(g.Arcs(v)) }
