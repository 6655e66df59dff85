// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// Package builder provides deterministic constructors for the dense directed
// graphs of package core: fixed topologies (path, cycle, grid) and a seeded
// random-sparse generator. The solver packages use them as test and benchmark
// fixtures; they are equally usable as quick-start graph factories.
//
// Design contract (strict):
//   - Determinism: the same parameters (and the same seeded *rand.Rand for
//     RandomSparse) always produce an identical graph.
//   - Safety: constructors never panic; invalid parameters return sentinel
//     errors, branch on them with errors.Is.
//   - All graphs are directed; an "undirected" fixture is expressed by adding
//     both arc directions explicitly.
//
// Errors (sentinel):
//   - ErrTooFewVertices     - a size parameter is below the constructor's minimum.
//   - ErrInvalidProbability - an edge probability lies outside [0, 1].
//   - ErrNeedRandSource     - a stochastic constructor got a nil *rand.Rand.
//   - ErrBadWeight          - a weight parameter is negative or NaN.
package builder
