package core_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmarleau/arbor/core"
)

// intGraph keys nodes by int and carries string payloads on both sides;
// every test in this package uses this instantiation.
type intGraph = core.Graph[int, string, string]

type intNode = core.Node[int, string]

type intEdge = core.Edge[int, string]

// graphView is a comparable snapshot of all observable graph state:
// node set (sorted by id), edge set (sorted by pair, payloads
// included), degree map, and both adjacency indices as sorted lists.
// Undo round-trip tests compare whole views before and after; slice
// order inside the store is asserted separately where it is part of
// the contract (cascade capture order).
type graphView struct {
	name    string
	nodes   []intNode
	edges   []intEdge
	degrees map[int]core.Degree
	preds   map[int][]int
	succs   map[int][]int
}

func capture(t *testing.T, g *intGraph) graphView {
	t.Helper()
	v := graphView{
		name:    g.Name(),
		edges:   g.Edges(),
		degrees: make(map[int]core.Degree),
		preds:   make(map[int][]int),
		succs:   make(map[int][]int),
	}
	slices.SortFunc(v.edges, func(a, b intEdge) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}

		return cmp.Compare(a.End, b.End)
	})
	for _, id := range g.NodeIDs() {
		n, ok := g.GetNode(id)
		require.True(t, ok, "NodeIDs returned absent id %d", id)
		v.nodes = append(v.nodes, n)
		d, ok := g.DegreeOf(id)
		require.True(t, ok, "no degree entry for node %d", id)
		v.degrees[id] = d
		preds, _ := g.Predecessors(id)
		succs, _ := g.Successors(id)
		slices.Sort(preds)
		slices.Sort(succs)
		v.preds[id] = preds
		v.succs[id] = succs
	}

	return v
}

// requireConsistent asserts the store invariants: every edge references
// live nodes, (start,end) pairs are unique, and the degree map and both
// adjacency indices agree with the edge collection.
func requireConsistent(t *testing.T, g *intGraph) {
	t.Helper()
	wantDeg := make(map[int]core.Degree, g.NodeCount())
	for _, id := range g.NodeIDs() {
		wantDeg[id] = core.Degree{}
	}
	seen := make(map[[2]int]bool, g.EdgeCount())
	for _, p := range g.EdgePairs() {
		require.True(t, g.HasNode(p[0]), "edge %v references missing start node", p)
		require.True(t, g.HasNode(p[1]), "edge %v references missing end node", p)
		require.False(t, seen[p], "duplicate edge %v", p)
		seen[p] = true
		d := wantDeg[p[0]]
		d.Out++
		wantDeg[p[0]] = d
		d = wantDeg[p[1]]
		d.In++
		wantDeg[p[1]] = d
	}
	for _, id := range g.NodeIDs() {
		d, ok := g.DegreeOf(id)
		require.True(t, ok, "no degree entry for node %d", id)
		require.Equal(t, wantDeg[id], d, "degree mismatch for node %d", id)
		preds, ok := g.Predecessors(id)
		require.True(t, ok)
		succs, ok := g.Successors(id)
		require.True(t, ok)
		require.Len(t, preds, wantDeg[id].In, "predecessor count mismatch for node %d", id)
		require.Len(t, succs, wantDeg[id].Out, "successor count mismatch for node %d", id)
		for _, p := range preds {
			require.True(t, g.HasEdge(p, id), "predecessor index names missing edge %d->%d", p, id)
		}
		for _, s := range succs {
			require.True(t, g.HasEdge(id, s), "successor index names missing edge %d->%d", id, s)
		}
	}
}

// chainGraph builds nodes 1..n with bare edges i->i+1.
func chainGraph(t *testing.T, n int, opts ...core.Option) *intGraph {
	t.Helper()
	g := core.NewGraph[int, string, string](opts...)
	for i := 1; i <= n; i++ {
		require.NoError(t, g.InsertNode(core.BareNode[int, string](i)))
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.InsertEdge(core.BareEdge[int, string](i, i+1)))
	}

	return g
}
