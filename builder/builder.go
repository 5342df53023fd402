package builder

import (
	"cmp"
	"fmt"

	"github.com/kmarleau/arbor/core"
)

// Constructor name tokens and parameter minima, used for error context.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathIDs     = 2
	minCycleIDs    = 3
	minStarIDs     = 2
	minCompleteIDs = 2
)

// validateIDs checks the length minimum and rejects repeated ids.
//
// Complexity: O(n) time, O(n) space for the seen set.
func validateIDs[K cmp.Ordered](method string, ids []K, min int) error {
	if len(ids) < min {
		return fmt.Errorf("%s: got %d ids, need at least %d: %w",
			method, len(ids), min, ErrTooFewIDs)
	}

	seen := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: id %v repeats: %w", method, id, ErrDuplicateIDs)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// emit inserts every pair through the validated core API and clears the
// change log so construction is not undoable.
func emit[K cmp.Ordered, N, E any](method string, g *core.Graph[K, N, E], pairs [][2]K) (*core.Graph[K, N, E], error) {
	for _, p := range pairs {
		if err := g.InsertEdgeWithNodes(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("%s: edge %v->%v: %w", method, p[0], p[1], err)
		}
	}
	g.ClearHistory()

	return g, nil
}

// Path builds the chain ids[0] -> ids[1] -> ... -> ids[n-1].
//
// Requires at least 2 distinct ids.
//
// Complexity: O(n) nodes and O(n-1) edges.
func Path[K cmp.Ordered, N, E any](ids []K, opts ...core.Option) (*core.Graph[K, N, E], error) {
	if err := validateIDs(methodPath, ids, minPathIDs); err != nil {
		return nil, err
	}

	pairs := make([][2]K, 0, len(ids)-1)
	for i := 1; i < len(ids); i++ {
		pairs = append(pairs, [2]K{ids[i-1], ids[i]})
	}

	return emit(methodPath, core.NewGraph[K, N, E](opts...), pairs)
}

// Cycle builds a Path over ids and closes it with ids[n-1] -> ids[0].
//
// Requires at least 3 distinct ids, so the closing edge never collides
// with a chain edge.
//
// Complexity: O(n) nodes and edges.
func Cycle[K cmp.Ordered, N, E any](ids []K, opts ...core.Option) (*core.Graph[K, N, E], error) {
	if err := validateIDs(methodCycle, ids, minCycleIDs); err != nil {
		return nil, err
	}

	pairs := make([][2]K, 0, len(ids))
	for i := 1; i < len(ids); i++ {
		pairs = append(pairs, [2]K{ids[i-1], ids[i]})
	}
	pairs = append(pairs, [2]K{ids[len(ids)-1], ids[0]})

	return emit(methodCycle, core.NewGraph[K, N, E](opts...), pairs)
}

// Star builds one edge from the hub ids[0] to every remaining id.
//
// Requires at least 2 distinct ids (a hub and one leaf).
//
// Complexity: O(n) nodes and O(n-1) edges.
func Star[K cmp.Ordered, N, E any](ids []K, opts ...core.Option) (*core.Graph[K, N, E], error) {
	if err := validateIDs(methodStar, ids, minStarIDs); err != nil {
		return nil, err
	}

	pairs := make([][2]K, 0, len(ids)-1)
	for _, leaf := range ids[1:] {
		pairs = append(pairs, [2]K{ids[0], leaf})
	}

	return emit(methodStar, core.NewGraph[K, N, E](opts...), pairs)
}

// Complete builds one edge ids[i] -> ids[j] for every i < j, orienting
// each pair from the earlier slice position to the later one.
//
// Requires at least 2 distinct ids.
//
// Complexity: O(n^2) edges.
func Complete[K cmp.Ordered, N, E any](ids []K, opts ...core.Option) (*core.Graph[K, N, E], error) {
	if err := validateIDs(methodComplete, ids, minCompleteIDs); err != nil {
		return nil, err
	}

	pairs := make([][2]K, 0, len(ids)*(len(ids)-1)/2)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, [2]K{ids[i], ids[j]})
		}
	}

	return emit(methodComplete, core.NewGraph[K, N, E](opts...), pairs)
}
