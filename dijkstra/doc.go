// Package dijkstra provides the conventional binary-heap shortest-path solver
// for the dense directed graphs of package core.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     all reachable vertices in O((V + E) log V) time, where V = |vertices|
//     and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-closest vertex, using the “lazy decrease-key” strategy: improved
//     distances push duplicate heap entries, stale entries are skipped on pop.
//   - Within this module it serves as the reference implementation that the
//     bounded multi-source solver (package bmssp) is cross-checked against.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API.
//   - WithReturnPath: if enabled, returns a predecessor table so callers can
//     rebuild each shortest path.
//   - WithMaxDistance: aborts exploration beyond a given distance, saving
//     work on large graphs.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       a nil *core.Graph was passed.
//   - ErrVertexNotFound: the source vertex is outside the graph's range.
//   - ErrNegativeWeight: a negative arc weight was detected by the pre-scan.
//   - ErrBadMaxDistance: WithMaxDistance received a negative value (panics in
//     the option constructor; never returned at runtime).
//
// Unreachable vertices keep distance math.Inf(1) and predecessor -1; that is
// a normal outcome, not an error.
//
// Thread safety: Dijkstra never mutates the graph, so concurrent solves over
// the same Graph are safe as long as nobody mutates it concurrently.
package dijkstra
