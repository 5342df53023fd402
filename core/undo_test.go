package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmarleau/arbor/core"
)

func TestUndo_EmptyLogIsNoOp(t *testing.T) {
	g := core.NewGraph[int, string, string]()
	require.NoError(t, g.Undo())

	// 3 mutations, then 2 no-op pops past the bottom of the log.
	g = chainGraph(t, 2)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.Undo())
	}
	assert.Equal(t, 0, g.NodeCount())
	requireConsistent(t, g)
}

// Undo immediately after any single successful mutation must restore
// the pre-call graph exactly: node set, edge set, degrees, adjacency.
func TestUndo_RoundTripAfterEachMutation(t *testing.T) {
	mutations := map[string]func(t *testing.T, g *intGraph){
		"InsertNode": func(t *testing.T, g *intGraph) {
			require.NoError(t, g.InsertNode(core.NewNode(9, "n")))
		},
		"RemoveNode": func(t *testing.T, g *intGraph) {
			_, err := g.RemoveNode(2)
			require.NoError(t, err)
		},
		"InsertEdge": func(t *testing.T, g *intGraph) {
			require.NoError(t, g.InsertEdge(core.NewEdge(3, 1, "back")))
		},
		"RemoveEdge": func(t *testing.T, g *intGraph) {
			require.NoError(t, g.RemoveEdge(1, 2))
		},
		"InsertEdgeWithNodes_bothNew": func(t *testing.T, g *intGraph) {
			require.NoError(t, g.InsertEdgeWithNodes(7, 8))
		},
		"InsertEdgeWithNodes_oneNew": func(t *testing.T, g *intGraph) {
			require.NoError(t, g.InsertEdgeWithNodes(3, 8))
		},
		"InsertEdgeWithNodes_noneNew": func(t *testing.T, g *intGraph) {
			require.NoError(t, g.InsertEdgeWithNodes(3, 1))
		},
		"InsertNodeAlong": func(t *testing.T, g *intGraph) {
			require.NoError(t, g.InsertNodeAlong(10, 1, 2))
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			g := chainGraph(t, 3)
			require.NoError(t, g.InsertEdge(core.NewEdge(1, 3, "skip")))
			before := capture(t, g)

			mutate(t, g)
			requireConsistent(t, g)

			require.NoError(t, g.Undo())
			assert.Equal(t, before, capture(t, g))
			requireConsistent(t, g)
		})
	}
}

// Scenario: remove node 2 out of 1->2->3, then undo; node 2 and both
// edges must come back in their original order.
func TestUndo_RestoresCascadeAtomically(t *testing.T) {
	g := core.NewGraph[int, string, string]()
	require.NoError(t, g.InsertNode(core.NewNode(1, "one")))
	require.NoError(t, g.InsertNode(core.NewNode(2, "two")))
	require.NoError(t, g.InsertNode(core.NewNode(3, "three")))
	require.NoError(t, g.InsertEdge(core.NewEdge(1, 2, "a")))
	require.NoError(t, g.InsertEdge(core.NewEdge(2, 3, "b")))
	before := capture(t, g)

	removed, err := g.RemoveNode(2)
	require.NoError(t, err)
	assert.Equal(t, "two", *removed.Payload)
	assert.Equal(t, 0, g.EdgeCount())

	// One Undo restores the node and both cascaded edges together, in
	// their original insertion order.
	require.NoError(t, g.Undo())
	assert.Equal(t, before, capture(t, g))
	restored := g.Edges()
	require.Len(t, restored, 2)
	assert.Equal(t, [2]int{1, 2}, [2]int{restored[0].Start, restored[0].End})
	assert.Equal(t, [2]int{2, 3}, [2]int{restored[1].Start, restored[1].End})
	assert.Equal(t, "a", *restored[0].Payload)
	assert.Equal(t, "b", *restored[1].Payload)

	// The next Undo reverses the mutation before the cascade, proving
	// the cascade occupied a single history slot.
	require.NoError(t, g.Undo())
	assert.False(t, g.HasEdge(2, 3))
	assert.True(t, g.HasEdge(1, 2))
}

// Scenario: InsertEdgeWithNodes(5,6) on an empty graph creates both
// nodes and the edge in one logged step; Undo restores the empty graph.
func TestUndo_ImplicitNodesRemovedTogether(t *testing.T) {
	g := core.NewGraph[int, string, string]()
	require.NoError(t, g.InsertEdgeWithNodes(5, 6))

	require.NoError(t, g.Undo())
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	requireConsistent(t, g)
}

// Undo of an implicit insert must never delete a pre-existing endpoint.
func TestUndo_ImplicitInsertKeepsPreexistingNode(t *testing.T) {
	g := core.NewGraph[int, string, string]()
	require.NoError(t, g.InsertNode(core.NewNode(5, "kept")))
	require.NoError(t, g.InsertEdgeWithNodes(5, 6))

	require.NoError(t, g.Undo())
	assert.Equal(t, []int{5}, g.NodeIDs())
	assert.False(t, g.HasNode(6))
	assert.Equal(t, 0, g.EdgeCount())

	n, ok := g.GetNode(5)
	require.True(t, ok)
	assert.Equal(t, "kept", *n.Payload)
}

// Scenario: undoing a subdivision restores the single original edge
// with its payload and removes the split node.
func TestUndo_Subdivision(t *testing.T) {
	g := core.NewGraph[int, string, string]()
	require.NoError(t, g.InsertNode(core.BareNode[int, string](1)))
	require.NoError(t, g.InsertNode(core.BareNode[int, string](2)))
	require.NoError(t, g.InsertEdge(core.NewEdge(1, 2, "P")))
	before := capture(t, g)

	require.NoError(t, g.InsertNodeAlong(10, 1, 2))
	require.NoError(t, g.Undo())

	assert.Equal(t, before, capture(t, g))
	assert.False(t, g.HasNode(10))
	e, ok := g.GetEdge(1, 2)
	require.True(t, ok)
	assert.Equal(t, "P", *e.Payload)
}

// Performing limit+1 mutations and undoing limit times must leave
// exactly the earliest mutation applied and irreversible.
func TestUndo_BoundedHistoryEvictsOldest(t *testing.T) {
	const limit = 5
	g := core.NewGraph[int, string, string](core.WithHistoryLimit(limit))

	for i := 1; i <= limit+1; i++ {
		require.NoError(t, g.InsertNode(core.BareNode[int, string](i)))
	}
	for i := 0; i < limit; i++ {
		require.NoError(t, g.Undo())
	}

	// Node 1's insertion was evicted from the rolling window.
	assert.Equal(t, []int{1}, g.NodeIDs())
	require.NoError(t, g.Undo())
	assert.Equal(t, []int{1}, g.NodeIDs())
}

func TestUndo_DisabledHistory(t *testing.T) {
	g := core.NewGraph[int, string, string](core.WithoutHistory())
	require.NoError(t, g.InsertEdgeWithNodes(1, 2))
	require.NoError(t, g.Undo())
	assert.True(t, g.HasEdge(1, 2))

	g = core.NewGraph[int, string, string](core.WithHistoryLimit(0))
	require.NoError(t, g.InsertEdgeWithNodes(1, 2))
	require.NoError(t, g.Undo())
	assert.True(t, g.HasEdge(1, 2))
}

func TestClearHistory(t *testing.T) {
	g := chainGraph(t, 3)
	g.ClearHistory()
	require.NoError(t, g.Undo())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

// A long interleaved session must stay undoable step by step all the
// way back to the initial state.
func TestUndo_InterleavedSessionRewindsExactly(t *testing.T) {
	g := core.NewGraph[int, string, string]()
	var states []graphView

	steps := []func() error{
		func() error { return g.InsertEdgeWithNodes(1, 2) },
		func() error { return g.InsertEdgeWithNodes(2, 3) },
		func() error { return g.InsertNodeAlong(4, 2, 3) },
		func() error { return g.InsertEdge(core.NewEdge(1, 3, "jump")) },
		func() error { err := g.RemoveEdge(1, 2); return err },
		func() error { _, err := g.RemoveNode(4); return err },
		func() error { return g.InsertEdgeWithNodes(3, 1) },
	}
	for _, step := range steps {
		states = append(states, capture(t, g))
		require.NoError(t, step())
		requireConsistent(t, g)
	}

	for i := len(states) - 1; i >= 0; i-- {
		require.NoError(t, g.Undo())
		assert.Equal(t, states[i], capture(t, g), "state mismatch after rewinding to step %d", i)
		requireConsistent(t, g)
	}
	assert.Equal(t, 0, g.NodeCount())
}
