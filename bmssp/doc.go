// Package bmssp implements a single-source shortest-path solver for directed,
// non-negatively weighted graphs that avoids fully sorting all vertices by
// distance.
//
// Overview:
//
// A classical priority-queue solver (package dijkstra) settles vertices one by
// one in globally sorted distance order. This package instead decomposes the
// problem with a bounded, recursive divide-and-conquer procedure: at each
// recursion level it shrinks the active vertex set (the frontier) with a
// pivot-selection step built on bounded Bellman–Ford relaxation, and drives
// the remaining work through a partially ordered frontier container that
// supports inserting candidates and pulling a bounded-size batch of
// smallest-distance vertices without maintaining total order. The recursion
// bottoms out in a bounded mini-Dijkstra over an addressable min-heap.
//
// Building blocks (exported because they are contracts of their own):
//
//   - MinHeap:   addressable min-priority container over (vertex, distance)
//     pairs with Insert / ExtractMin / DecreaseKey / Contains.
//   - Frontier:  the partial-order container with Insert (insert-or-improve)
//     and PullBatch (smallest count vertices plus a bound on the rest).
//
// Internal stages:
//
//   - findPivots: k rounds of bounded relaxation from a frontier set S,
//     returning the pivot subset of S that roots large shortest-path subtrees
//     and the full set W of vertices reached below the bound.
//   - run:        the recursive engine BMSSP(level, bound, frontier),
//     returning a refined bound and the set of vertices finalized below it.
//
// Usage:
//
//	g, _ := core.NewGraph(n)
//	// ... AddEdge calls ...
//	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithTarget(9))
//	if err != nil { ... }
//	fmt.Println(res.Dist[9], res.Path)
//
// Distances are float64; unreachable vertices keep math.Inf(1) and an empty
// path, which is a normal outcome, not an error. Predecessors use
// NoPredecessor (-1).
//
// Determinism:
//
// The solve is single-threaded and deterministic. All shared state (distance,
// predecessor and completion tables) mutates monotonically: distances only
// decrease, completion flags only go false→true, predecessors change only
// together with a strict distance decrease.
//
// Error handling:
//
// Invalid input (nil graph, unknown source/target, negative weight) is
// rejected before the solve with sentinel errors. Internal invariant
// violations — DecreaseKey on an absent or non-smaller key, a predecessor
// cycle during path reconstruction — are programming errors: the former
// panics, the latter surfaces as ErrCorruptPredecessors. Neither is ever
// retried.
package bmssp
