package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex lies outside the
	// graph's vertex range [0, n).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative arc weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoPredecessor marks a vertex without a predecessor in the returned table:
// the source itself, or any vertex the search never reached.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, return the predecessor table; otherwise it is nil.
// MaxDistance – cap on distances to explore (vertices beyond are skipped).
// Must be ≥ 0. Default is math.Inf(1) (no cap).
type Options struct {
	ReturnPath  bool    // Whether to return the predecessor table
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor table in the result.
// If false (default), the predecessor table is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative or NaN values panic with
// ErrBadMaxDistance (invalid configuration is a programming error).
// Default (if not set) is math.Inf(1), i.e. no cap.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
// ReturnPath=false, MaxDistance=+Inf.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
