// Package core provides a payload-generic mutable directed graph with
// referential-integrity enforcement, incremental degree and adjacency
// indices, and a bounded single-step undo history.
//
// # Model
//
// A Graph[K, N, E] owns a node collection keyed by opaque ordered ids K,
// an insertion-ordered edge collection, and two derived indices: a
// degree map (in/out counts per node) and a predecessor/successor
// adjacency index. Nodes and edges wrap optional caller payloads (N and
// E); entities constructed with only their identifying fields are
// "bare". No edge may reference a missing node, and no two edges share
// the same (start, end) pair.
//
// # Mutation and undo
//
// Every public mutation is validated against a read-only view of the
// current state before anything is touched: a failing call leaves the
// graph, its indices, and its history log completely unchanged.
// Committed mutations append a self-sufficient change descriptor to a
// bounded rolling log (capacity set by WithHistoryLimit, default
// DefaultHistoryLimit); Undo pops the most recent descriptor and
// replays its exact inverse as a single step, cascades included.
// Appending past capacity evicts the oldest entry, which becomes
// permanently non-undoable. Redo is not supported.
//
// # Queries
//
// Degree-derived queries (SourceIDs, SinkIDs, Source) and
// forward-reachability queries (UnreachableFrom, IsConnected) are built
// on the indices only and never mutate the graph.
//
// # Persistence
//
// Save writes a human-readable YAML snapshot of name, nodes, and edges;
// LoadOrDefault reads one back, silently degrading to an empty graph on
// any failure. Derived indices and history are never persisted.
//
// # Concurrency
//
// A Graph is exclusively owned by its caller: operations are
// synchronous, run to completion, and perform no internal locking.
// Concurrent access from multiple goroutines requires external
// synchronization around the whole instance.
package core
