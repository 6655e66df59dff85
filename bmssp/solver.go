package bmssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
)

// Solve computes shortest distances from the configured source to all
// reachable vertices of g, without fully sorting the vertex set by distance.
//
// Returns a Result holding the distance table, the predecessor table, and —
// when WithTarget was given and the target is reachable — the reconstructed
// path from source to target.
//
// Preconditions and validation (in order):
//  1. A source must be configured via Source (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. The source must lie in [0, n) (ErrVertexNotFound).
//  4. A configured target must lie in [0, n) (ErrVertexNotFound).
//  5. No arc may carry a negative weight (ErrNegativeWeight).
//
// An unreachable target is not an error: its distance stays math.Inf(1) and
// the path is empty.
//
// The recursion parameters default to k = max(2, ⌊n^(1/3)⌋) and
// t = max(2, ⌊n^(2/3)⌋) with ⌈log₂(n)/t⌉ recursion levels; WithParameters
// overrides k and t.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the source is configured.
	if cfg.Source < 0 {
		return nil, ErrNoSource
	}

	// 3) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrVertexNotFound, cfg.Source, n)
	}
	if cfg.Target != NoTarget && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target=%d, n=%d", ErrVertexNotFound, cfg.Target, n)
	}

	// 4) Pre-scan all arcs for negative weights. core.AddEdge already
	//    rejects them; the scan makes the solver's own precondition explicit.
	var a core.Arc
	for v := 0; v < n; v++ {
		for _, a = range g.Arcs(v) {
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, v, a.To, a.Weight)
			}
		}
	}

	// 5) Seed the global state: dist[source]=0, source complete, everything
	//    else at +Inf with no predecessor.
	s := &solver{
		g:    g,
		src:  cfg.Source,
		obs:  cfg.Observer,
		dist: make([]float64, n),
		pred: make([]int, n),
		done: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		s.dist[v] = math.Inf(1)
		s.pred[v] = NoPredecessor
	}
	s.dist[s.src] = 0
	s.done[s.src] = true

	if s.obs != nil {
		s.obs.Init(s.dist)
	}

	// 6) Trivial graphs need no recursion.
	if n <= 1 {
		return s.result(cfg.Target)
	}

	// 7) Fix the recursion parameters for this solve.
	s.k, s.t = cfg.K, cfg.T
	if s.k == 0 {
		s.k = paramFloor(math.Cbrt(float64(n)))
		s.t = paramFloor(math.Pow(float64(n), 2.0/3.0))
	}
	levels := int(math.Ceil(math.Log2(float64(n)) / float64(s.t)))
	if levels < 1 {
		levels = 1
	}

	// 8) Top-level call: unbounded, frontier = {source}.
	s.run(levels, math.Inf(1), []int{s.src})

	return s.result(cfg.Target)
}

// paramFloor floors x to an int with a tiny nudge against representation
// error (⌊n^(1/3)⌋ must be exact for perfect cubes), clamped below at 2.
func paramFloor(x float64) int {
	p := int(math.Floor(x + 1e-9))
	if p < 2 {
		p = 2
	}

	return p
}

// solver holds the shared mutable state of one solve. The distance,
// predecessor and completion tables are visible to every recursion frame;
// mutation is strictly monotone (distances only decrease, completion flags
// only go false→true, predecessors change only with a strict decrease).
type solver struct {
	g    *core.Graph
	src  int
	k, t int
	obs  Observer

	dist []float64
	pred []int
	done []bool
}

// run is BMSSP(level, bound, frontier): it finalizes vertices whose shortest
// distance lies below a refined bound B' ≤ bound, reachable through the
// frontier set, and returns (B', U) where U lists the finalized vertices.
//
// level 0 is the base case: a bounded Dijkstra over the addressable heap.
// Higher levels reduce the frontier to pivots, then repeatedly pull a batch
// of closest candidates, recurse one level down with the batch's separating
// bound, and relax outward from the vertices the recursion settled.
func (s *solver) run(level int, bound float64, frontier []int) (float64, []int) {
	if len(frontier) == 0 {
		return bound, nil
	}
	if level == 0 {
		return s.base(bound, frontier)
	}

	// 1) Reduce the frontier to pivots.
	pivots, reached := s.findPivots(bound, frontier)
	if s.obs != nil {
		s.obs.PivotsFound(level, pivots)
	}

	// 2) Seed the level frontier with the pivots.
	fr := NewFrontier(len(pivots))
	for _, p := range pivots {
		fr.Insert(p, s.dist[p])
	}

	// 3) Pull batches until the level's result cap is hit or the frontier
	//    drains. The cap k·2^(level·t) is enormous for derived parameters;
	//    it bites only on deep recursions with small explicit t.
	capU := float64(s.k) * math.Pow(2, float64(level*s.t))
	width := pullWidth(level, s.t)
	// On a clean drain everything below bound is complete and bPrime stays
	// bound; hitting the cap narrows it to the last child's bound, the point
	// up to which the pulled batches are fully finished.
	bPrime := bound
	var u []int
	inU := make(map[int]bool)
	for !fr.Empty() {
		batch, batchBound := fr.PullBatch(width)
		if len(batch) == 0 {
			break
		}
		// A drained frontier reports +Inf; the child must still respect the
		// caller's bound, so clamp.
		if batchBound > bound {
			batchBound = bound
		}
		if s.obs != nil {
			s.obs.BatchPulled(level, batch, batchBound)
		}

		// 3a) Recurse one level down on the batch.
		subBound, subU := s.run(level-1, batchBound, batch)
		for _, v := range subU {
			if !inU[v] {
				inU[v] = true
				u = append(u, v)
			}
		}

		// 3b) Relax outward from everything the recursion settled. Strict
		//     improvements inside [batchBound, bound) re-enter the frontier;
		//     anything below batchBound was already handled by the child and
		//     anything at or above bound belongs to a later stage.
		for _, x := range subU {
			s.done[x] = true
			dx := s.dist[x]
			for _, a := range s.g.Arcs(x) {
				nd := dx + a.Weight
				if nd < s.dist[a.To] {
					s.dist[a.To] = nd
					s.pred[a.To] = x
					if nd >= batchBound && nd < bound && !s.done[a.To] {
						fr.Insert(a.To, nd)
					}
				}
			}
		}

		// 3c) Check the cap after the recursive return. Overshoot is fine;
		//     the bound shrinks to cover exactly what was finished.
		if float64(len(u)) >= capU {
			bPrime = subBound
			break
		}
	}

	// 4) Vertices discovered by the pivot scan that already sit below the
	//    refined bound are final as well; fold them into U.
	for _, v := range reached {
		if s.dist[v] < bPrime && !inU[v] {
			inU[v] = true
			u = append(u, v)
		}
	}

	return bPrime, u
}

// base is the level-0 case: a Dijkstra bounded by bound, seeded with the
// frontier vertices, over the addressable min-heap. Every extracted vertex is
// marked complete; the extraction order is returned as U.
func (s *solver) base(bound float64, frontier []int) (float64, []int) {
	h := NewMinHeap(len(frontier))
	for _, v := range frontier {
		if !h.Contains(v) {
			h.Insert(v, s.dist[v])
		}
	}

	var order []int
	for h.Len() > 0 {
		v, dv, _ := h.ExtractMin()
		s.done[v] = true
		order = append(order, v)
		if s.obs != nil {
			s.obs.VertexSettled(v, dv)
		}

		for _, a := range s.g.Arcs(v) {
			nd := dv + a.Weight
			// Only candidates strictly below the bound and not yet finalized
			// stay in scope.
			if nd >= bound || s.done[a.To] || nd > s.dist[a.To] {
				continue
			}
			if nd < s.dist[a.To] {
				s.dist[a.To] = nd
				s.pred[a.To] = v
				if h.Contains(a.To) {
					h.DecreaseKey(a.To, nd)
				} else {
					h.Insert(a.To, nd)
				}
			} else if !h.Contains(a.To) {
				// Equal-distance discovery of an unsettled vertex: an earlier
				// bounded relaxation set its distance without settling it, so
				// it must still be extracted here for its own arcs to relax.
				h.Insert(a.To, nd)
			}
		}
	}

	return bound, order
}

// pullWidth returns the batch size 2^((level-1)·t), saturated at a value
// larger than any in-memory frontier so deep levels simply drain in one pull.
func pullWidth(level, t int) int {
	shift := (level - 1) * t
	if shift >= 31 {
		return math.MaxInt32
	}

	return 1 << shift
}

// result assembles the Result, reconstructing the path when a reachable
// target was requested. A cycle or dead end in the predecessor table is an
// internal invariant violation and surfaces as ErrCorruptPredecessors.
func (s *solver) result(target int) (*Result, error) {
	res := &Result{Dist: s.dist, Pred: s.pred}
	if target == NoTarget || math.IsInf(s.dist[target], 1) {
		return res, nil
	}

	n := len(s.dist)
	path := make([]int, 0, 8)
	v := target
	for steps := 0; ; steps++ {
		if steps > n {
			return nil, fmt.Errorf("%w: cycle while reconstructing path to %d", ErrCorruptPredecessors, target)
		}
		path = append(path, v)
		if v == s.src {
			break
		}
		p := s.pred[v]
		if p == NoPredecessor {
			return nil, fmt.Errorf("%w: vertex %d has finite distance but no predecessor", ErrCorruptPredecessors, v)
		}
		v = p
	}

	// The walk produced target→source; reverse it in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res, nil
}
