package bmssp

import (
	"errors"
)

// Sentinel errors returned by Solve.
var (
	// ErrNoSource indicates that Solve was called without a Source option.
	ErrNoSource = errors.New("bmssp: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex lies
	// outside the graph's vertex range [0, n).
	ErrVertexNotFound = errors.New("bmssp: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative arc weight was detected.
	ErrNegativeWeight = errors.New("bmssp: negative edge weight encountered")

	// ErrCorruptPredecessors indicates that path reconstruction hit a cycle
	// or a dead end in the predecessor table. This signals a broken internal
	// invariant, never a property of the input graph.
	ErrCorruptPredecessors = errors.New("bmssp: predecessor table is corrupt")

	// ErrBadParameters indicates that WithParameters received k < 2 or t < 2.
	ErrBadParameters = errors.New("bmssp: parameters k and t must both be ≥ 2")
)

// NoPredecessor marks a vertex without a predecessor: the source itself, or
// any vertex the solve never reached.
const NoPredecessor = -1

// NoTarget is the Target value when no destination was requested.
const NoTarget = -1

// Result carries the outcome of a solve.
type Result struct {
	// Dist[v] is the shortest distance from the source to v, or math.Inf(1)
	// if v is unreachable.
	Dist []float64

	// Pred[v] is the predecessor of v on a shortest path from the source,
	// or NoPredecessor for the source and unreachable vertices.
	Pred []int

	// Path is the vertex sequence from source to target, inclusive. Empty if
	// no target was requested or the target is unreachable.
	Path []int
}

// Observer receives solver events at well-defined points. All methods are
// called synchronously from the solve; implementations must not mutate the
// slices they receive. Used for instrumentation and tests; a nil observer
// costs nothing.
type Observer interface {
	// Init fires once after the global state is seeded, before recursion.
	Init(dist []float64)

	// PivotsFound fires after pivot selection at a recursion level.
	PivotsFound(level int, pivots []int)

	// BatchPulled fires after each frontier batch extraction, with the bound
	// separating the batch from the vertices left behind.
	BatchPulled(level int, batch []int, bound float64)

	// VertexSettled fires when a vertex's distance becomes final in the
	// base-case extraction.
	VertexSettled(v int, dist float64)
}

// Options configures a solve.
//
// Source – starting vertex (required; set via Source).
// Target – optional destination for path reconstruction (default NoTarget).
// K, T   – recursion parameters; 0 means derive from the vertex count as
// k = max(2, ⌊n^(1/3)⌋) and t = max(2, ⌊n^(2/3)⌋).
type Options struct {
	Source   int
	Target   int
	K, T     int
	Observer Observer
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// Source sets the starting vertex. Required.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithTarget requests path reconstruction to the given destination vertex.
func WithTarget(v int) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithObserver installs an observer for solver events.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithParameters overrides the derived recursion parameters k and t.
// Lower t deepens the recursion; the defaults derived from the vertex count
// keep it shallow. Both values must be ≥ 2; invalid values panic with
// ErrBadParameters (invalid configuration is a programming error).
func WithParameters(k, t int) Option {
	return func(o *Options) {
		if k < 2 || t < 2 {
			panic(ErrBadParameters.Error())
		}
		o.K = k
		o.T = t
	}
}

// DefaultOptions returns the defaults: no source (must be set), no target,
// derived parameters, no observer.
func DefaultOptions() Options {
	return Options{
		Source: -1, // unset; Solve rejects it with ErrNoSource
		Target: NoTarget,
	}
}
