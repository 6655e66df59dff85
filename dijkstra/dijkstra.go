package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
)

// Dijkstra computes shortest distances from source to all other vertices in
// the weighted directed graph g. It accepts functional options to customize
// behavior (WithReturnPath, WithMaxDistance).
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from source to v, or math.Inf(1)
//     if v is unreachable.
//   - prev: predecessor table if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v arrives via u.
//     For the source and unreachable vertices, prev[v] == NoPredecessor.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, n) (ErrVertexNotFound).
//  3. No arc in g may have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]float64, []int, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate source lies inside the vertex range.
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source=%d, n=%d", ErrVertexNotFound, source, g.VertexCount())
	}

	// 4) Pre-scan all arcs to detect negative weights. core.AddEdge already
	//    rejects them, so this scan documents and enforces the precondition
	//    rather than guarding a reachable state.
	n := g.VertexCount()
	var a core.Arc
	for v := 0; v < n; v++ {
		for _, a = range g.Arcs(v) {
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, v, a.To, a.Weight)
			}
		}
	}

	// 5) Prepare the solver state: distance table, optional predecessor
	//    table, visited flags, and the lazy priority queue.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 6) Initialize state and run the main loop.
	r.init(source)
	r.process()

	// 7) prev is nil unless ReturnPath was requested.
	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options.
	dist    []float64   // dist[v] is the current best distance from source.
	prev    []int       // prev[v] is the predecessor on the shortest path, or NoPredecessor.
	visited []bool      // visited[v] is true once v's distance is finalized.
	pq      nodePQ      // Min-heap of nodeItem for the lazy priority queue.
}

// init sets up initial distances, predecessors, visited flags, and pushes
// the source with distance 0 into the heap.
func (r *runner) init(source int) {
	// 1) dist[v] = +Inf and prev[v] = NoPredecessor for all vertices v.
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}

	// 2) Distance to the source is zero.
	r.dist[source] = 0

	// 3) Establish heap invariants and push the source.
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{v: source, dist: 0})
}

// process is the core loop: repeatedly extract the vertex with the minimum
// distance and relax its outgoing arcs.
//
// Loop termination:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	var item nodeItem
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item = heap.Pop(&r.pq).(nodeItem)

		// 2) Skip stale heap entries for already-finalized vertices.
		if r.visited[item.v] {
			continue
		}

		// 3) Stop once the closest remaining vertex exceeds MaxDistance.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Mark the vertex as visited: its distance is now final.
		r.visited[item.v] = true

		// 5) Relax all outgoing arcs.
		r.relax(item.v)
	}
}

// relax examines each arc leaving u and attempts to improve the distances of
// its neighbors. Assumes r.dist[u] is finalized before the call.
func (r *runner) relax(u int) {
	var a core.Arc
	var newDist float64
	for _, a = range r.g.Arcs(u) {
		// Candidate distance via source → … → u → a.To.
		newDist = r.dist[u] + a.Weight

		// Skip neighbors beyond the exploration cap.
		if newDist > r.options.MaxDistance {
			continue
		}

		// Only strict improvements matter; equality would push duplicates
		// without changing the result.
		if newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		if r.prev != nil {
			r.prev[a.To] = u
		}

		// Lazy decrease-key: push a fresh entry, stale ones are skipped on pop.
		heap.Push(&r.pq, nodeItem{v: a.To, dist: newDist})
	}
}

// nodeItem is a (vertex, distance) pair stored in the priority queue.
type nodeItem struct {
	v    int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, driven through
// container/heap. Duplicate entries per vertex are expected (lazy
// decrease-key); visited[] filters the stale ones.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
