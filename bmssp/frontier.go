package bmssp

import (
	"math"
	"sort"
)

// Frontier is the partial-order container driving each recursion level: it
// holds candidate vertices with tentative distances and hands them out in
// bounded batches of globally smallest distances.
//
// Operations:
//
//   - Insert is insert-or-improve: a new vertex is added, a contained one has
//     its stored distance lowered if the new value is smaller. A stored
//     distance is never raised.
//   - PullBatch(count) removes and returns up to count vertices with the
//     smallest stored distances, plus the smallest distance left behind (the
//     boundary of the next batch), or math.Inf(1) when the container was
//     drained. Ties between equal distances are broken by ascending vertex
//     id. An empty container yields (nil, +Inf) regardless of count.
//
// This realization sorts the live entries on every pull. That satisfies the
// contract — callers may only depend on batch membership and the returned
// bound, not on the internal mechanism — and keeps the structure simple; a
// bucket-based partial ordering can replace the internals without touching
// the interface.
type Frontier struct {
	dist map[int]float64 // vertex → stored tentative distance
}

// NewFrontier returns an empty frontier with capacity for hint vertices.
func NewFrontier(hint int) *Frontier {
	if hint < 0 {
		hint = 0
	}

	return &Frontier{dist: make(map[int]float64, hint)}
}

// Len returns the number of contained vertices.
func (f *Frontier) Len() int { return len(f.dist) }

// Empty reports whether the frontier holds no vertices.
func (f *Frontier) Empty() bool { return len(f.dist) == 0 }

// Insert adds vertex v with the given distance, or lowers its stored
// distance if v is already contained and dist is smaller.
func (f *Frontier) Insert(v int, dist float64) {
	if cur, ok := f.dist[v]; ok && cur <= dist {
		return
	}
	f.dist[v] = dist
}

// PullBatch removes and returns up to count vertices with the smallest
// stored distances, together with the smallest stored distance among the
// vertices left behind (math.Inf(1) if none remain).
//
// Ties are broken by ascending vertex id, so batch membership is
// deterministic. A non-positive count pulls nothing and returns the current
// minimum as the bound.
func (f *Frontier) PullBatch(count int) ([]int, float64) {
	if len(f.dist) == 0 {
		return nil, math.Inf(1)
	}

	// Materialize the live entries and order them by (distance, vertex id).
	entries := make([]heapItem, 0, len(f.dist))
	for v, d := range f.dist {
		entries = append(entries, heapItem{v: v, dist: d})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].dist != entries[j].dist {
			return entries[i].dist < entries[j].dist
		}

		return entries[i].v < entries[j].v
	})

	if count <= 0 {
		return nil, entries[0].dist
	}
	if count > len(entries) {
		count = len(entries)
	}

	batch := make([]int, count)
	for i := 0; i < count; i++ {
		batch[i] = entries[i].v
		delete(f.dist, entries[i].v)
	}

	bound := math.Inf(1)
	if count < len(entries) {
		bound = entries[count].dist
	}

	return batch, bound
}
