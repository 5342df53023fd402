// Package core: mutation engine and store accessors.
//
// The raw primitives at the bottom of this file mutate the store and its
// derived indices without validation or logging; they are shared by the
// forward path (after the checker admits a change) and by the undo
// engine (which replays inverses of already-validated state). Public
// operations always run checker -> raw apply -> register.

package core

import (
	"cmp"
	"slices"
)

// InsertNode adds n to the graph with degree (0,0) and no neighbors.
// Returns ErrDuplicateID if n's id is already present.
// Complexity: O(1).
func (g *Graph[K, N, E]) InsertNode(n Node[K, N]) error {
	c := g.checkInsertNode(n)
	if err := c.failed(); err != nil {
		return err
	}
	g.insertNodeRaw(n)
	g.register(c)

	return nil
}

// RemoveNode deletes the node with the given id, cascading removal of
// every incident edge, and returns the removed node. The whole cascade
// is recorded as a single change so it undoes atomically.
// Returns ErrNodeNotFound if the id is absent.
// Complexity: O(E) to capture and drop incident edges.
func (g *Graph[K, N, E]) RemoveNode(id K) (Node[K, N], error) {
	c := g.checkRemoveNode(id)
	if err := c.failed(); err != nil {
		return Node[K, N]{}, err
	}
	removed := g.removeNodeRaw(id)
	g.register(c)

	return removed, nil
}

// InsertEdge adds e to the graph, updating degree and adjacency for both
// terminals. Returns ErrDuplicateEdge if an edge with the same terminals
// exists, ErrMissingEndpoint if either terminal node is absent.
// Complexity: O(E) for the duplicate scan.
func (g *Graph[K, N, E]) InsertEdge(e Edge[K, E]) error {
	c := g.checkInsertEdge(e)
	if err := c.failed(); err != nil {
		return err
	}
	g.insertEdgeRaw(e)
	g.register(c)

	return nil
}

// RemoveEdge deletes the start->end edge, updating degree and adjacency
// for both terminals. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(E).
func (g *Graph[K, N, E]) RemoveEdge(start, end K) error {
	c := g.checkRemoveEdge(start, end)
	if err := c.failed(); err != nil {
		return err
	}
	g.removeEdgeRaw(g.edgeIndex(start, end))
	g.register(c)

	return nil
}

// InsertEdgeWithNodes adds a bare start->end edge, synthesizing a bare
// node for each terminal not already present. The edge and any
// synthesized nodes commit as one change, so undo removes exactly the
// nodes that were auto-created. Returns ErrDuplicateEdge if the edge
// already exists.
// Complexity: O(E).
func (g *Graph[K, N, E]) InsertEdgeWithNodes(start, end K) error {
	c := g.checkInsertEdgeWithNodes(start, end)
	if err := c.failed(); err != nil {
		return err
	}
	if c.newStart != nil {
		g.insertNodeRaw(BareNode[K, N](*c.newStart))
	}
	if c.newEnd != nil && *c.newEnd != start {
		g.insertNodeRaw(BareNode[K, N](*c.newEnd))
	}
	g.insertEdgeRaw(c.edge)
	g.register(c)

	return nil
}

// InsertNodeAlong subdivides the before->after edge: a bare node newID
// replaces it with before->newID carrying the original edge's payload
// and a bare newID->after. The payload always moves to the first half;
// this is a fixed design choice, not caller-configurable.
// Returns ErrDuplicateID if newID is taken, ErrEdgeNotFound if the
// before->after edge does not exist.
// Complexity: O(E).
func (g *Graph[K, N, E]) InsertNodeAlong(newID, before, after K) error {
	nodeChange := g.checkInsertNode(BareNode[K, N](newID))
	if err := nodeChange.failed(); err != nil {
		return err
	}
	edgeChange := g.checkRemoveEdge(before, after)
	if err := edgeChange.failed(); err != nil {
		return err
	}
	original := edgeChange.edge
	firstHalf := original
	firstHalf.End = newID

	g.insertNodeRaw(BareNode[K, N](newID))
	g.removeEdgeRaw(g.edgeIndex(before, after))
	g.insertEdgeRaw(firstHalf)
	g.insertEdgeRaw(BareEdge[K, E](newID, after))
	g.register(change[K, N, E]{
		kind: changeSubdivideEdge,
		node: BareNode[K, N](newID),
		edge: original,
	})

	return nil
}

// FromPairs bulk-loads a graph from (start,end) id pairs, creating bare
// nodes and edges through the validated insert-edge-with-nodes path,
// then clears history so the initial population is not undoable.
// A duplicate pair surfaces the underlying ErrDuplicateEdge.
func FromPairs[K cmp.Ordered, N, E any](pairs [][2]K, opts ...Option) (*Graph[K, N, E], error) {
	g := NewGraph[K, N, E](opts...)
	for _, p := range pairs {
		if err := g.InsertEdgeWithNodes(p[0], p[1]); err != nil {
			return nil, err
		}
	}
	g.ClearHistory()

	return g, nil
}

// Read accessors:
////////////////////

// HasNode reports whether a node with the given id exists. O(1).
func (g *Graph[K, N, E]) HasNode(id K) bool {
	_, present := g.nodes[id]

	return present
}

// HasEdge reports whether the start->end edge exists. O(E).
func (g *Graph[K, N, E]) HasEdge(start, end K) bool {
	return g.edgeIndex(start, end) >= 0
}

// GetNode returns the node with the given id, if present.
func (g *Graph[K, N, E]) GetNode(id K) (Node[K, N], bool) {
	n, present := g.nodes[id]

	return n, present
}

// GetEdge returns the start->end edge, if present.
func (g *Graph[K, N, E]) GetEdge(start, end K) (Edge[K, E], bool) {
	if i := g.edgeIndex(start, end); i >= 0 {
		return g.edges[i], true
	}

	return Edge[K, E]{}, false
}

// NodeIDs returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph[K, N, E]) NodeIDs() []K {
	ids := make([]K, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// EdgePairs returns every (start,end) pair, sorted by start then end.
// Complexity: O(E log E).
func (g *Graph[K, N, E]) EdgePairs() [][2]K {
	pairs := make([][2]K, 0, len(g.edges))
	for _, e := range g.edges {
		pairs = append(pairs, [2]K{e.Start, e.End})
	}
	slices.SortFunc(pairs, func(a, b [2]K) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}

		return cmp.Compare(a[1], b[1])
	})

	return pairs
}

// Edges returns a copy of the edge collection in insertion order.
// Complexity: O(E).
func (g *Graph[K, N, E]) Edges() []Edge[K, E] {
	return slices.Clone(g.edges)
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph[K, N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. O(1).
func (g *Graph[K, N, E]) EdgeCount() int { return len(g.edges) }

// InDegree returns the number of edges ending at id, and whether the
// node exists. O(1).
func (g *Graph[K, N, E]) InDegree(id K) (int, bool) {
	d, present := g.degrees[id]

	return d.In, present
}

// OutDegree returns the number of edges starting at id, and whether the
// node exists. O(1).
func (g *Graph[K, N, E]) OutDegree(id K) (int, bool) {
	d, present := g.degrees[id]

	return d.Out, present
}

// DegreeOf returns both degree counts for id, and whether the node
// exists. O(1).
func (g *Graph[K, N, E]) DegreeOf(id K) (Degree, bool) {
	d, present := g.degrees[id]

	return d, present
}

// Predecessors returns a copy of the ids with an edge into id, in edge
// insertion order, and whether the node exists.
func (g *Graph[K, N, E]) Predecessors(id K) ([]K, bool) {
	if !g.HasNode(id) {
		return nil, false
	}

	return slices.Clone(g.preds[id]), true
}

// Successors returns a copy of the ids with an edge out of id, in edge
// insertion order, and whether the node exists.
func (g *Graph[K, N, E]) Successors(id K) ([]K, bool) {
	if !g.HasNode(id) {
		return nil, false
	}

	return slices.Clone(g.succs[id]), true
}

// Raw store primitives:
////////////////////

// edgeIndex returns the position of the start->end edge in the edge
// collection, or -1 when absent. O(E).
func (g *Graph[K, N, E]) edgeIndex(start, end K) int {
	for i, e := range g.edges {
		if e.Start == start && e.End == end {
			return i
		}
	}

	return -1
}

// insertNodeRaw adds n with zero degree and empty adjacency rows.
func (g *Graph[K, N, E]) insertNodeRaw(n Node[K, N]) {
	g.nodes[n.ID] = n
	g.preds[n.ID] = nil
	g.succs[n.ID] = nil
	g.degrees[n.ID] = Degree{}
}

// removeNodeRaw drops every edge incident on id through the edge
// primitive (keeping the other endpoint's indices consistent), then the
// node and its index entries. Returns the removed node.
func (g *Graph[K, N, E]) removeNodeRaw(id K) Node[K, N] {
	for _, before := range slices.Clone(g.preds[id]) {
		if i := g.edgeIndex(before, id); i >= 0 {
			g.removeEdgeRaw(i)
		}
	}
	for _, after := range slices.Clone(g.succs[id]) {
		// A self-loop was already dropped by the predecessor pass.
		if i := g.edgeIndex(id, after); i >= 0 {
			g.removeEdgeRaw(i)
		}
	}
	n := g.nodes[id]
	delete(g.nodes, id)
	delete(g.preds, id)
	delete(g.succs, id)
	delete(g.degrees, id)

	return n
}

// insertEdgeRaw appends e and updates adjacency and degree for both
// terminals.
func (g *Graph[K, N, E]) insertEdgeRaw(e Edge[K, E]) {
	g.edges = append(g.edges, e)
	g.succs[e.Start] = append(g.succs[e.Start], e.End)
	g.preds[e.End] = append(g.preds[e.End], e.Start)
	d := g.degrees[e.Start]
	d.Out++
	g.degrees[e.Start] = d
	d = g.degrees[e.End]
	d.In++
	g.degrees[e.End] = d
}

// removeEdgeRaw removes the edge at index i, compacting in place so the
// collection stays insertion-ordered, and updates adjacency and degree
// for both terminals. Returns the removed edge.
func (g *Graph[K, N, E]) removeEdgeRaw(i int) Edge[K, E] {
	e := g.edges[i]
	g.edges = slices.Delete(g.edges, i, i+1)
	g.succs[e.Start] = dropFirst(g.succs[e.Start], e.End)
	g.preds[e.End] = dropFirst(g.preds[e.End], e.Start)
	d := g.degrees[e.Start]
	d.Out--
	g.degrees[e.Start] = d
	d = g.degrees[e.End]
	d.In--
	g.degrees[e.End] = d

	return e
}

// dropFirst removes the first occurrence of v from s in place.
func dropFirst[K cmp.Ordered](s []K, v K) []K {
	for i, x := range s {
		if x == v {
			return slices.Delete(s, i, i+1)
		}
	}

	return s
}
