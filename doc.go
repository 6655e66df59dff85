// Package sssp is a single-source shortest-path toolkit for directed graphs
// with non-negative weights.
//
// What's inside?
//
//	A small, focused library built around one idea: settling vertices without
//	fully sorting them by distance.
//		• core/     — the dense directed graph the solvers consume
//		• bmssp/    — the bounded multi-source divide-and-conquer solver
//		• dijkstra/ — the classical binary-heap solver, kept as the reference
//		• builder/  — deterministic graph constructors for tests and benchmarks
//
// Why two solvers?
//
//   - dijkstra processes vertices in globally sorted distance order: simple,
//     predictable, and the correctness yardstick for everything else.
//   - bmssp decomposes the problem recursively: a pivot-selection step shrinks
//     the working frontier, a partially ordered container hands out bounded
//     batches of closest candidates, and a bounded mini-Dijkstra finishes each
//     batch. Both produce identical distances; the test suites cross-check
//     them on randomized graphs.
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 5)
//	res, _ := bmssp.Solve(g, bmssp.Source(0), bmssp.WithTarget(2))
//	fmt.Println(res.Dist[2], res.Path) // 3 [0 1 2]
//
// All packages are pure Go with explicit error returns; invalid input is
// rejected with sentinel errors before any computation starts.
package sssp
