// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// builder.go — the graph constructors: Path, Cycle, Grid, RandomSparse.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/sssp/core"
)

// checkWeight validates a weight parameter shared by all constructors.
func checkWeight(w float64) error {
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: %g", ErrBadWeight, w)
	}

	return nil
}

// Path returns the directed path 0→1→…→n-1 with every arc carrying weight w.
// Requires n ≥ 1.
//
// Complexity: O(n) time and space.
func Path(n int, w float64) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Path needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	if err := checkWeight(w); err != nil {
		return nil, err
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v+1 < n; v++ {
		if err = g.AddEdge(v, v+1, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle returns the directed cycle 0→1→…→n-1→0 with every arc carrying
// weight w. Requires n ≥ 3.
//
// Complexity: O(n) time and space.
func Cycle(n int, w float64) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: Cycle needs n ≥ 3, got %d", ErrTooFewVertices, n)
	}
	if err := checkWeight(w); err != nil {
		return nil, err
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if err = g.AddEdge(v, (v+1)%n, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid returns a rows×cols lattice with vertex (r,c) numbered r·cols+c and
// bidirectional arcs (both directions added explicitly) between horizontal
// and vertical neighbors, every arc carrying weight w.
// Requires rows ≥ 1 and cols ≥ 1.
//
// Complexity: O(rows·cols) time and space.
func Grid(rows, cols int, w float64) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: Grid needs rows ≥ 1 and cols ≥ 1, got %d×%d", ErrTooFewVertices, rows, cols)
	}
	if err := checkWeight(w); err != nil {
		return nil, err
	}

	g, err := core.NewGraph(rows * cols)
	if err != nil {
		return nil, err
	}
	var v int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v = r*cols + c
			if c+1 < cols {
				if err = g.AddEdge(v, v+1, w); err != nil {
					return nil, err
				}
				if err = g.AddEdge(v+1, v, w); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err = g.AddEdge(v, v+cols, w); err != nil {
					return nil, err
				}
				if err = g.AddEdge(v+cols, v, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// RandomSparse returns a directed graph over n vertices in which every
// ordered pair (u, v), u ≠ v, carries an arc with probability p, weighted
// uniformly in [0, maxWeight). The same seeded rng always reproduces the
// same graph.
//
// Requires n ≥ 1, p ∈ [0, 1], maxWeight ≥ 0, and a non-nil rng.
//
// Complexity: O(n²) time, O(n + E) space.
func RandomSparse(n int, p float64, maxWeight float64, rng *rand.Rand) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: RandomSparse needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("%w: p=%g", ErrInvalidProbability, p)
	}
	if err := checkWeight(maxWeight); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: RandomSparse", ErrNeedRandSource)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			if err = g.AddEdge(u, v, rng.Float64()*maxWeight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
