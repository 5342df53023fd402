// Package core: the undo engine.
//
// Undo pops the most recent change descriptor and applies its inverse
// directly through the raw store primitives. The checker is bypassed on
// purpose: the state being restored was valid before the forward
// mutation, so re-validation could only reject legitimate restores.

package core

import "fmt"

// Undo reverses the most recent successful mutation as a single step.
// Cascading mutations (node removal, edge subdivision) were logged as
// one descriptor and are restored as one step here. An empty log, or a
// graph built WithoutHistory, makes Undo a successful no-op.
//
// ErrCorruptHistory is returned only if a failure descriptor is found in
// the log, which signals an internal invariant violation: the checker
// rejects failures before they can be registered.
func (g *Graph[K, N, E]) Undo() error {
	if g.history == nil {
		return nil
	}
	c, ok := g.history.pop()
	if !ok {
		return nil
	}

	switch c.kind {
	case changeAddNode:
		// Known edge-free at undo time; no cascade can occur.
		g.removeNodeRaw(c.node.ID)

	case changeRemoveNode:
		g.insertNodeRaw(c.node)
		for _, e := range c.cascade {
			g.insertEdgeRaw(e)
		}

	case changeAddEdge:
		g.removeEdgeRaw(g.edgeIndex(c.edge.Start, c.edge.End))

	case changeAddEdgeWithNodes:
		if c.newStart != nil && g.HasNode(*c.newStart) {
			g.removeNodeRaw(*c.newStart)
		}
		if c.newEnd != nil && g.HasNode(*c.newEnd) {
			g.removeNodeRaw(*c.newEnd)
		}
		// Removing an implicit node already cascades the edge away;
		// only an edge between two pre-existing nodes is left to drop.
		if i := g.edgeIndex(c.edge.Start, c.edge.End); i >= 0 {
			g.removeEdgeRaw(i)
		}

	case changeRemoveEdge:
		g.insertEdgeRaw(c.edge)

	case changeSubdivideEdge:
		// Dropping the split node cascades both half edges.
		g.removeNodeRaw(c.node.ID)
		g.insertEdgeRaw(c.edge)

	case changeFailure:
		return fmt.Errorf("%w: %v", ErrCorruptHistory, c.reason)
	}

	return nil
}
