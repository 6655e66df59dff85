// Package core defines the dense directed graph consumed by the solvers in
// this module.
//
// Vertices are integers in the half-open range [0, n), fixed at construction
// time. Edges are directed and carry a non-negative float64 weight. Adjacency
// is stored as one outgoing arc slice per vertex, which keeps the per-vertex
// relaxation loops of the shortest-path solvers allocation-free and lets them
// index distance, predecessor and completion tables directly by vertex id.
//
// Validation happens at construction: AddEdge rejects out-of-range endpoints
// and negative weights with sentinel errors, so a successfully built Graph is
// always a valid solver input. Weights are never clamped or coerced.
//
// Errors (sentinel, branch with errors.Is):
//
//	ErrBadVertexCount - NewGraph called with a negative vertex count.
//	ErrVertexRange    - an edge endpoint is outside [0, n).
//	ErrNegativeWeight - an edge weight is negative.
//
// A Graph is not synchronized. It is intended to be built once and then read
// concurrently; the solver packages treat it as immutable for the duration of
// a solve.
package core
