// Package builder provides deterministic bulk constructors for common
// directed topologies on top of the core graph container.
//
// Each constructor takes an ordered slice of caller-supplied ids and
// returns a freshly built *core.Graph:
//
//   - Path:     ids[0] -> ids[1] -> ... -> ids[n-1].
//   - Cycle:    a Path closed by ids[n-1] -> ids[0].
//   - Star:     ids[0] as hub, one edge hub -> leaf per remaining id.
//   - Complete: one edge ids[i] -> ids[j] for every i < j.
//
// Guarantees:
//
//   - Deterministic emission: node and edge order follow the input slice,
//     so two calls with equal ids produce byte-identical snapshots.
//   - Validation first: too few or duplicate ids fail before any
//     insertion, returning sentinel errors matched via errors.Is.
//   - Clean history: construction is not undoable; the returned graph
//     starts with an empty change log.
//
// Constructors go through the core package's validated operations only,
// so they can never produce a graph violating its integrity invariants.
package builder
