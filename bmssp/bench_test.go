package bmssp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sssp/bmssp"
	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// BenchmarkSolve_Grid measures a solve over an M×M unit-weight lattice.
func BenchmarkSolve_Grid(b *testing.B) {
	const m = 100
	g, err := builder.Grid(m, m, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bmssp.Solve(g, bmssp.Source(0))
	}
}

// BenchmarkSolve_RandomSparse measures a solve over a sparse random graph,
// head to head with the classical heap-based solver on the same input.
func BenchmarkSolve_RandomSparse(b *testing.B) {
	const n = 2000
	rng := rand.New(rand.NewSource(42))
	g, err := builder.RandomSparse(n, 0.005, 10, rng)
	if err != nil {
		b.Fatal(err)
	}

	bench := func(b *testing.B, run func(*core.Graph)) {
		b.ReportAllocs()
		b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			run(g)
		}
	}

	b.Run("BMSSP", func(b *testing.B) {
		bench(b, func(g *core.Graph) { _, _ = bmssp.Solve(g, bmssp.Source(0)) })
	})
	b.Run("BMSSP_DeepRecursion", func(b *testing.B) {
		bench(b, func(g *core.Graph) { _, _ = bmssp.Solve(g, bmssp.Source(0), bmssp.WithParameters(2, 2)) })
	})
	b.Run("Dijkstra", func(b *testing.B) {
		bench(b, func(g *core.Graph) { _, _, _ = dijkstra.Dijkstra(g, 0) })
	})
}
