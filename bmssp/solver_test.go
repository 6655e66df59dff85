// End-to-end tests for Solve: a hand-checked reference graph, path
// reconstruction, input validation, observer events, and randomized
// cross-checks against the classical heap-based solver.
package bmssp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/bmssp"
	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// referenceGraph builds the 10-vertex graph with hand-computed shortest
// distances from vertex 0:
//
//	d = [0, 3, 2, 8, 12, 11, 13, 14, 16, 15]
//
// extraVertices > 0 appends that many isolated (unreachable) vertices.
func referenceGraph(t *testing.T, extraVertices int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(10 + extraVertices)
	require.NoError(t, err)
	for _, e := range [][3]float64{
		{0, 1, 4}, {0, 2, 2}, {1, 3, 5}, {2, 1, 1}, {2, 4, 10},
		{3, 5, 3}, {4, 3, 2}, {4, 5, 1}, {5, 6, 2}, {3, 7, 6},
		{6, 8, 3}, {7, 9, 1}, {8, 9, 2},
	} {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

var referenceDist = []float64{0, 3, 2, 8, 12, 11, 13, 14, 16, 15}

// requireSameDistances compares two distance tables, treating +Inf specially.
func requireSameDistances(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for v := range want {
		if math.IsInf(want[v], 1) {
			require.True(t, math.IsInf(got[v], 1), "vertex %d: want +Inf, got %g", v, got[v])
			continue
		}
		require.InDelta(t, want[v], got[v], 1e-9, "vertex %d", v)
	}
}

func TestSolve_ReferenceDistances(t *testing.T) {
	g := referenceGraph(t, 0)

	res, err := bmssp.Solve(g, bmssp.Source(0))
	require.NoError(t, err)
	requireSameDistances(t, referenceDist, res.Dist)
}

func TestSolve_ReferenceDistances_DeepRecursion(t *testing.T) {
	// Minimal k and t force multiple recursion levels and tiny batch pulls;
	// the distances must not change.
	g := referenceGraph(t, 0)

	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithParameters(2, 2))
	require.NoError(t, err)
	requireSameDistances(t, referenceDist, res.Dist)
}

func TestSolve_PredecessorsAreConsistent(t *testing.T) {
	g := referenceGraph(t, 0)

	res, err := bmssp.Solve(g, bmssp.Source(0))
	require.NoError(t, err)

	require.Equal(t, bmssp.NoPredecessor, res.Pred[0], "the source has no predecessor")
	for v := 1; v < g.VertexCount(); v++ {
		p := res.Pred[v]
		require.NotEqual(t, bmssp.NoPredecessor, p, "vertex %d is reachable", v)

		// dist[v] must equal dist[p] plus the weight of some arc p→v.
		found := false
		for _, a := range g.Arcs(p) {
			if a.To == v && math.Abs(res.Dist[p]+a.Weight-res.Dist[v]) < 1e-9 {
				found = true

				break
			}
		}
		require.True(t, found, "no arc %d→%d explains dist[%d]=%g", p, v, v, res.Dist[v])
	}
}

func TestSolve_PathReconstruction(t *testing.T) {
	g := referenceGraph(t, 0)

	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithTarget(9))
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 3, 7, 9}, res.Path)

	// The path's arc weights sum to the reported distance.
	var total float64
	for i := 0; i+1 < len(res.Path); i++ {
		from, to := res.Path[i], res.Path[i+1]
		var w float64
		found := false
		for _, a := range g.Arcs(from) {
			if a.To == to {
				w, found = a.Weight, true

				break
			}
		}
		require.True(t, found, "path step %d→%d is not an arc", from, to)
		total += w
	}
	require.InDelta(t, res.Dist[9], total, 1e-9)
}

func TestSolve_TargetIsSource(t *testing.T) {
	g := referenceGraph(t, 0)

	res, err := bmssp.Solve(g, bmssp.Source(3), bmssp.WithTarget(3))
	require.NoError(t, err)
	require.Equal(t, []int{3}, res.Path)
	require.Equal(t, 0.0, res.Dist[3])
}

func TestSolve_UnreachableTarget(t *testing.T) {
	// Vertex 10 has no incoming arcs: it stays at +Inf with an empty path,
	// and that is not an error.
	g := referenceGraph(t, 1)

	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithTarget(10))
	require.NoError(t, err)
	require.True(t, math.IsInf(res.Dist[10], 1))
	require.Empty(t, res.Path)
	require.Equal(t, bmssp.NoPredecessor, res.Pred[10])
}

func TestSolve_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithTarget(0))
	require.NoError(t, err)
	require.Equal(t, []float64{0}, res.Dist)
	require.Equal(t, []int{0}, res.Path)
}

func TestSolve_Validation(t *testing.T) {
	g := referenceGraph(t, 0)

	t.Run("no source configured", func(t *testing.T) {
		_, err := bmssp.Solve(g)
		require.ErrorIs(t, err, bmssp.ErrNoSource)
	})
	t.Run("nil graph", func(t *testing.T) {
		_, err := bmssp.Solve(nil, bmssp.Source(0))
		require.ErrorIs(t, err, bmssp.ErrNilGraph)
	})
	t.Run("source out of range", func(t *testing.T) {
		_, err := bmssp.Solve(g, bmssp.Source(99))
		require.ErrorIs(t, err, bmssp.ErrVertexNotFound)
	})
	t.Run("target out of range", func(t *testing.T) {
		_, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithTarget(99))
		require.ErrorIs(t, err, bmssp.ErrVertexNotFound)
	})
	t.Run("bad explicit parameters panic", func(t *testing.T) {
		require.Panics(t, func() { _, _ = bmssp.Solve(g, bmssp.Source(0), bmssp.WithParameters(1, 2)) })
		require.Panics(t, func() { _, _ = bmssp.Solve(g, bmssp.Source(0), bmssp.WithParameters(2, 0)) })
	})
}

func TestSolve_MatchesDijkstra_RandomGraphs(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234, 987654} {
		rng := rand.New(rand.NewSource(seed))
		g, err := builder.RandomSparse(60, 0.08, 10, rng)
		require.NoError(t, err)

		want, _, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)

		res, err := bmssp.Solve(g, bmssp.Source(0))
		require.NoError(t, err)
		requireSameDistances(t, want, res.Dist)

		// The deep-recursion parameterization must agree as well.
		deep, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithParameters(2, 2))
		require.NoError(t, err)
		requireSameDistances(t, want, deep.Dist)
	}
}

func TestSolve_MatchesDijkstra_Grid(t *testing.T) {
	g, err := builder.Grid(6, 7, 1.5)
	require.NoError(t, err)

	want, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithParameters(2, 2))
	require.NoError(t, err)
	requireSameDistances(t, want, res.Dist)
}

// recordingObserver captures every callback for later inspection.
type recordingObserver struct {
	initCalls int
	initDist  []float64
	pivots    [][]int
	batches   [][]int
	settled   []int
	settledAt map[int]float64
}

func (r *recordingObserver) Init(dist []float64) {
	r.initCalls++
	r.initDist = append([]float64(nil), dist...)
}

func (r *recordingObserver) PivotsFound(_ int, pivots []int) {
	r.pivots = append(r.pivots, append([]int(nil), pivots...))
}

func (r *recordingObserver) BatchPulled(_ int, batch []int, _ float64) {
	r.batches = append(r.batches, append([]int(nil), batch...))
}

func (r *recordingObserver) VertexSettled(v int, dist float64) {
	r.settled = append(r.settled, v)
	if r.settledAt == nil {
		r.settledAt = make(map[int]float64)
	}
	r.settledAt[v] = dist
}

func TestSolve_ObserverSeesEveryStage(t *testing.T) {
	g := referenceGraph(t, 0)
	obs := &recordingObserver{}

	res, err := bmssp.Solve(g, bmssp.Source(0), bmssp.WithObserver(obs))
	require.NoError(t, err)

	require.Equal(t, 1, obs.initCalls)
	require.Equal(t, 0.0, obs.initDist[0], "the source starts at distance zero")
	require.True(t, math.IsInf(obs.initDist[5], 1), "everything else starts at +Inf")

	require.NotEmpty(t, obs.pivots)
	require.NotEmpty(t, obs.batches)
	for _, b := range obs.batches {
		require.NotEmpty(t, b, "pulled batches are never empty")
	}

	require.NotEmpty(t, obs.settled)
	require.Equal(t, 0, obs.settled[0], "the source settles first")
	for v, d := range obs.settledAt {
		require.InDelta(t, res.Dist[v], d, 1e-9, "settled distance of %d is final", v)
	}
}
