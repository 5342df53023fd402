// Package core: degree-derived and reachability queries, built only on
// the degree map and the successor index.

package core

import (
	"fmt"
	"slices"
)

// SourceIDs returns the ids of every node with in-degree zero, in
// ascending order.
// Complexity: O(V log V).
func (g *Graph[K, N, E]) SourceIDs() []K {
	ids := make([]K, 0, len(g.degrees))
	for id, d := range g.degrees {
		if d.In == 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return ids
}

// SinkIDs returns the ids of every node with out-degree zero, in
// ascending order.
// Complexity: O(V log V).
func (g *Graph[K, N, E]) SinkIDs() []K {
	ids := make([]K, 0, len(g.degrees))
	for id, d := range g.degrees {
		if d.Out == 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return ids
}

// Source returns the unique node with in-degree zero.
// Returns ErrNoSource if none exist, ErrMultipleSources (carrying the
// candidate ids) if more than one does.
func (g *Graph[K, N, E]) Source() (Node[K, N], error) {
	sources := g.SourceIDs()
	switch len(sources) {
	case 1:
		return g.nodes[sources[0]], nil
	case 0:
		return Node[K, N]{}, ErrNoSource
	default:
		return Node[K, N]{}, fmt.Errorf("%w: %v", ErrMultipleSources, sources)
	}
}

// UnreachableFrom returns, in ascending order, every node id with no
// directed path from start. An explicit work-list replaces recursion so
// deep graphs cannot exhaust the stack.
//
// start is not required to be a member of the graph: an absent start is
// still marked visited but contributes no successors, so every real
// node is reported unreachable.
// Complexity: O(V log V + E).
func (g *Graph[K, N, E]) UnreachableFrom(start K) []K {
	visited := make(map[K]struct{}, len(g.nodes)+1)
	worklist := []K{start}
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		worklist = append(worklist, g.succs[id]...)
	}

	lost := g.NodeIDs()
	lost = slices.DeleteFunc(lost, func(id K) bool {
		_, seen := visited[id]

		return seen
	})

	return lost
}

// IsConnected reports whether exactly one source exists and every node
// is reachable from it. An empty graph is not connected.
func (g *Graph[K, N, E]) IsConnected() bool {
	sources := g.SourceIDs()
	if len(sources) != 1 {
		return false
	}

	return len(g.UnreachableFrom(sources[0])) == 0
}
