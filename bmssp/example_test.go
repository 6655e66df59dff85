// Package bmssp_test provides runnable examples for the bounded multi-source
// solver. Each example runs via “go test -run Example”, showing both code and
// expected output.
package bmssp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/bmssp"
	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
)

// ExampleSolve demonstrates shortest distances on a simple triangle graph.
func ExampleSolve() {
	// 1) Build a directed graph with three vertices.
	g, _ := core.NewGraph(3)
	// 2) The two-hop route 0→1→2 costs 3, undercutting the direct arc.
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	// 3) Solve from vertex 0.
	res, err := bmssp.Solve(g, bmssp.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Print the distance table.
	fmt.Printf("dist[1]=%g dist[2]=%g\n", res.Dist[1], res.Dist[2])
	// Output: dist[1]=1 dist[2]=3
}

// ExampleSolve_path demonstrates path reconstruction with WithTarget.
func ExampleSolve_path() {
	// 1) A small directed graph where the cheap route detours through 2.
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 5)

	// 2) Request the path to vertex 3 alongside the distances.
	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithTarget(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The shortest route is 0→2→1→3 with total cost 1+1+3 = 5.
	fmt.Printf("dist[3]=%g path=%v\n", res.Dist[3], res.Path)
	// Output: dist[3]=5 path=[0 2 1 3]
}

// ExampleSolve_deepRecursion shows explicit recursion parameters. Small k and
// t force several recursion levels and tiny frontier batches; the distances
// are the same as with the derived defaults.
func ExampleSolve_deepRecursion() {
	// 1) A 4×4 lattice with unit weights; the far corner is 6 steps away.
	g, _ := builder.Grid(4, 4, 1)

	// 2) Solve with the smallest legal parameters.
	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithParameters(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[15]=%g\n", res.Dist[15])
	// Output: dist[15]=6
}

// ExampleSolve_unreachable shows that an unreachable target is not an error:
// its distance stays +Inf and the path comes back empty.
func ExampleSolve_unreachable() {
	// 1) Two vertices, no arcs.
	g, _ := core.NewGraph(2)

	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithTarget(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("unreachable=%t path length=%d\n", math.IsInf(res.Dist[1], 1), len(res.Path))
	// Output: unreachable=true path length=0
}
