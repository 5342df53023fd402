// Package core: change descriptors and the bounded undo log.
//
// A change is the sole unit the undo engine understands: it carries
// enough data to reconstruct the pre-mutation state exactly (a node
// removal embeds every edge it cascaded away). The history log is a
// fixed-capacity rolling window with stack-discipline pop.

package core

import "cmp"

// changeKind tags the variant held by a change descriptor.
type changeKind uint8

const (
	changeAddNode changeKind = iota
	changeRemoveNode
	changeAddEdge
	changeAddEdgeWithNodes
	changeRemoveEdge
	changeSubdivideEdge
	changeFailure
)

// change is one committed (or rejected) mutation. Which fields are
// meaningful depends on kind:
//
//	changeAddNode          node
//	changeRemoveNode       node, cascade (incident edges, insertion order)
//	changeAddEdge          edge
//	changeAddEdgeWithNodes edge, newStart/newEnd (ids created implicitly)
//	changeRemoveEdge       edge
//	changeSubdivideEdge    node (split point), edge (replaced original)
//	changeFailure          reason
type change[K cmp.Ordered, N, E any] struct {
	kind             changeKind
	node             Node[K, N]
	edge             Edge[K, E]
	cascade          []Edge[K, E]
	newStart, newEnd *K
	reason           error
}

// failure wraps a typed rejection so checkers have a single return shape.
func failure[K cmp.Ordered, N, E any](reason error) change[K, N, E] {
	return change[K, N, E]{kind: changeFailure, reason: reason}
}

// failed returns the rejection reason, or nil for a committable change.
func (c change[K, N, E]) failed() error {
	if c.kind == changeFailure {
		return c.reason
	}

	return nil
}

// history is a bounded, insertion-ordered log of committed changes.
// Appending past capacity silently evicts the oldest entry; evicted
// mutations become permanently non-undoable.
type history[K cmp.Ordered, N, E any] struct {
	limit   int
	entries []change[K, N, E]
}

func newHistory[K cmp.Ordered, N, E any](limit int) *history[K, N, E] {
	return &history[K, N, E]{
		limit:   limit,
		entries: make([]change[K, N, E], 0, limit),
	}
}

// push appends c, evicting the oldest entry when at capacity.
// Complexity: O(1) amortized; O(limit) on eviction (in-place shift).
func (h *history[K, N, E]) push(c change[K, N, E]) {
	if len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, c)
}

// pop removes and returns the most recently appended entry.
func (h *history[K, N, E]) pop() (change[K, N, E], bool) {
	if len(h.entries) == 0 {
		var zero change[K, N, E]
		return zero, false
	}
	last := len(h.entries) - 1
	c := h.entries[last]
	h.entries = h.entries[:last]

	return c, true
}

// clear erases all entries, keeping the configured capacity.
func (h *history[K, N, E]) clear() {
	h.entries = h.entries[:0]
}

// register appends c to the undo log; a no-op when recording is disabled.
func (g *Graph[K, N, E]) register(c change[K, N, E]) {
	if g.history == nil {
		return
	}
	g.history.push(c)
}

// ClearHistory drops every recorded change, keeping the configured
// capacity. Used by bulk-construction paths so initial population is
// not undoable.
func (g *Graph[K, N, E]) ClearHistory() {
	if g.history == nil {
		return
	}
	g.history.clear()
}
