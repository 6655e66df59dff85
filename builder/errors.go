// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping; sentinels themselves
//     never embed parameter values.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0, 1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* fix p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWeight indicates that a weight parameter is negative or NaN; the
// solvers require non-negative weights and the builder rejects anything else
// up front.
// Usage: if errors.Is(err, ErrBadWeight) { /* fix weight */ }.
var ErrBadWeight = errors.New("builder: invalid weight")
