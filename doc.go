// Package arbor is a small toolkit for building and maintaining mutable
// directed graphs whose nodes and edges carry caller-supplied payloads.
//
// What it offers:
//
//   - core:    the Graph container: integrity-checked mutation,
//     degree/adjacency indices, bounded single-step undo,
//     source/sink/reachability queries, YAML snapshots.
//   - builder: deterministic bulk constructors (Path, Cycle, Star,
//     Complete) over caller-supplied id sequences.
//
// Start with core.NewGraph or core.FromPairs; see each package's doc
// for contracts and error semantics.
package arbor
