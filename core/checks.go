// Package core: the consistency checker.
//
// Each check inspects the current store without mutating anything and
// produces either a committable change descriptor or a typed failure.
// Validation and application are separated so a rejected call leaves the
// graph, its indices, and its history log byte-for-byte unchanged.

package core

import "fmt"

// checkInsertNode admits n unless its id is already in use.
func (g *Graph[K, N, E]) checkInsertNode(n Node[K, N]) change[K, N, E] {
	if _, present := g.nodes[n.ID]; present {
		return failure[K, N, E](fmt.Errorf("%w: id %v", ErrDuplicateID, n.ID))
	}

	return change[K, N, E]{kind: changeAddNode, node: n}
}

// checkRemoveNode admits removal of id, capturing every incident edge in
// edge-collection insertion order so the cascade undoes as one step.
func (g *Graph[K, N, E]) checkRemoveNode(id K) change[K, N, E] {
	n, present := g.nodes[id]
	if !present {
		return failure[K, N, E](fmt.Errorf("%w: id %v", ErrNodeNotFound, id))
	}
	var cascade []Edge[K, E]
	for _, e := range g.edges {
		if e.Start == id || e.End == id {
			cascade = append(cascade, e)
		}
	}

	return change[K, N, E]{kind: changeRemoveNode, node: n, cascade: cascade}
}

// checkInsertEdge admits e when its terminals are distinct from every
// stored pair and both endpoint nodes exist.
func (g *Graph[K, N, E]) checkInsertEdge(e Edge[K, E]) change[K, N, E] {
	if g.edgeIndex(e.Start, e.End) >= 0 {
		return failure[K, N, E](fmt.Errorf("%w: %v->%v", ErrDuplicateEdge, e.Start, e.End))
	}
	if _, present := g.nodes[e.Start]; !present {
		return failure[K, N, E](fmt.Errorf("%w: start %v", ErrMissingEndpoint, e.Start))
	}
	if _, present := g.nodes[e.End]; !present {
		return failure[K, N, E](fmt.Errorf("%w: end %v", ErrMissingEndpoint, e.End))
	}

	return change[K, N, E]{kind: changeAddEdge, edge: e}
}

// checkInsertEdgeWithNodes admits a bare start->end edge, recording which
// terminals (if any) must be synthesized as bare nodes. Undo then removes
// exactly the nodes that were auto-created, never a pre-existing node.
func (g *Graph[K, N, E]) checkInsertEdgeWithNodes(start, end K) change[K, N, E] {
	if g.edgeIndex(start, end) >= 0 {
		return failure[K, N, E](fmt.Errorf("%w: %v->%v", ErrDuplicateEdge, start, end))
	}
	var newStart, newEnd *K
	if _, present := g.nodes[start]; !present {
		id := start
		newStart = &id
	}
	if _, present := g.nodes[end]; !present {
		id := end
		newEnd = &id
	}

	return change[K, N, E]{
		kind:     changeAddEdgeWithNodes,
		edge:     BareEdge[K, E](start, end),
		newStart: newStart,
		newEnd:   newEnd,
	}
}

// checkRemoveEdge admits removal of the start->end edge, capturing it
// (payload included) for later re-insertion by undo.
func (g *Graph[K, N, E]) checkRemoveEdge(start, end K) change[K, N, E] {
	i := g.edgeIndex(start, end)
	if i < 0 {
		return failure[K, N, E](fmt.Errorf("%w: %v->%v", ErrEdgeNotFound, start, end))
	}

	return change[K, N, E]{kind: changeRemoveEdge, edge: g.edges[i]}
}
