package bmssp

// findPivots runs k rounds of bounded relaxation from the frontier set S and
// selects the members of S that root large shortest-path subtrees.
//
// Returns (pivots, reached) where reached ⊇ S holds every vertex whose
// relaxed distance stayed below bound within k rounds, and pivots ⊆ S. A
// pivot is an S-member whose subtree in the predecessor forest, restricted
// to reached, contains at least k vertices. Two shortcuts:
//
//   - If reached outgrows k·|S| the frontier cannot be usefully reduced this
//     round: the whole of S becomes the pivot set and relaxation stops early.
//   - If no subtree reaches k members, the single S-member with the smallest
//     current distance (ties by id) becomes the pivot, guaranteeing progress.
//
// Relaxation updates the shared distance/predecessor tables on strict
// improvement only; an equal-distance rediscovery still propagates layer
// membership so reachability widens without redundant predecessor churn.
//
// Complexity: O(k · Σ outdeg(reached)) time, O(|reached|) space.
func (s *solver) findPivots(bound float64, frontier []int) (pivots, reached []int) {
	// 1) Seed the reached set W and the first relaxation layer with S.
	reached = append(reached, frontier...)
	inW := make(map[int]bool, len(frontier))
	for _, v := range frontier {
		inW[v] = true
	}

	limit := s.k * len(frontier)
	layer := frontier

	// 2) k relaxation rounds, layer by layer.
	for round := 0; round < s.k && len(layer) > 0; round++ {
		var next []int
		for _, u := range layer {
			du := s.dist[u]
			for _, a := range s.g.Arcs(u) {
				nd := du + a.Weight
				// Candidates must not exceed the current estimate and must
				// stay below the bound.
				if nd > s.dist[a.To] || nd >= bound {
					continue
				}
				if nd < s.dist[a.To] {
					s.dist[a.To] = nd
					s.pred[a.To] = u
				}
				next = append(next, a.To)
				if !inW[a.To] {
					inW[a.To] = true
					reached = append(reached, a.To)
				}
			}
		}
		layer = next

		// 3) Early exit: the reached set outgrew k·|S|, no reduction is
		//    worthwhile — every frontier vertex becomes a pivot.
		if len(reached) > limit {
			return frontier, reached
		}
	}

	// 4) Count, for every S-member, the size of its subtree in the
	//    predecessor forest restricted to the reached set. Each reached
	//    vertex contributes to the nearest S-ancestor on its predecessor
	//    chain; chains leaving the reached set contribute to nobody.
	inS := make(map[int]bool, len(frontier))
	for _, v := range frontier {
		inS[v] = true
	}
	subtree := make(map[int]int, len(frontier))
	for _, w := range reached {
		v := w
		for steps := 0; steps <= len(reached); steps++ {
			if inS[v] {
				subtree[v]++

				break
			}
			p := s.pred[v]
			if p == NoPredecessor || !inW[p] {
				break
			}
			v = p
		}
	}

	// 5) Pivots are the roots of subtrees with at least k members.
	for _, v := range frontier {
		if subtree[v] >= s.k {
			pivots = append(pivots, v)
		}
	}

	// 6) Fallback: no subtree qualified — pick the S-member with the
	//    smallest current distance (ties by id) so the caller always makes
	//    progress.
	if len(pivots) == 0 && len(frontier) > 0 {
		best := frontier[0]
		for _, v := range frontier[1:] {
			if s.dist[v] < s.dist[best] || (s.dist[v] == s.dist[best] && v < best) {
				best = v
			}
		}
		pivots = []int{best}
	}

	return pivots, reached
}
