// Package core defines the central Graph, Node, and Edge types:
// a payload-generic directed graph with referential-integrity checks,
// derived degree/adjacency indices, and a bounded single-step undo log.
//
// This file declares Node, Edge, Degree, Graph, construction Options,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateID     - node id already present.
//	ErrDuplicateEdge   - edge with the same (start,end) already present.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrMissingEndpoint - edge terminal references an absent node.
//	ErrNoSource        - no node with in-degree zero.
//	ErrMultipleSources - more than one node with in-degree zero.
//	ErrCorruptHistory  - a failure descriptor surfaced during undo.
package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateID indicates a node insertion reused an id already in the graph.
	ErrDuplicateID = errors.New("core: node id already in use")

	// ErrDuplicateEdge indicates an edge with the same terminals already exists.
	ErrDuplicateEdge = errors.New("core: edge with these terminals already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMissingEndpoint indicates an edge terminal is not present in the graph.
	ErrMissingEndpoint = errors.New("core: edge terminal not present in graph")

	// ErrNoSource indicates no node with in-degree zero exists.
	ErrNoSource = errors.New("core: no source node in graph")

	// ErrMultipleSources indicates more than one node with in-degree zero exists.
	ErrMultipleSources = errors.New("core: multiple source nodes in graph")

	// ErrCorruptHistory indicates a failure descriptor reached the undo log.
	// It cannot occur while the checker rejects failures before registration.
	ErrCorruptHistory = errors.New("core: corrupt change in history")
)

// DefaultHistoryLimit is the undo-log capacity used when no
// WithHistoryLimit option is supplied.
const DefaultHistoryLimit = 100

// Node is a graph node: an id plus an optional caller payload.
// A nil Payload marks a bare node.
type Node[K cmp.Ordered, N any] struct {
	// ID uniquely identifies this node within its Graph.
	ID K `yaml:"id"`

	// Payload holds arbitrary caller data; nil for bare nodes.
	Payload *N `yaml:"payload,omitempty"`
}

// BareNode returns a node carrying only its id.
func BareNode[K cmp.Ordered, N any](id K) Node[K, N] {
	return Node[K, N]{ID: id}
}

// NewNode returns a node carrying the given payload.
func NewNode[K cmp.Ordered, N any](id K, payload N) Node[K, N] {
	return Node[K, N]{ID: id, Payload: &payload}
}

// NodeID returns the node's id.
func (n Node[K, N]) NodeID() K { return n.ID }

// Bare reports whether the node carries no payload.
func (n Node[K, N]) Bare() bool { return n.Payload == nil }

// Edge is a directed connection Start→End with an optional caller payload.
// A nil Payload marks a bare edge. (start,end) pairs are unique per graph;
// a→b and b→a are distinct edges and may coexist.
type Edge[K cmp.Ordered, E any] struct {
	// Start is the source terminal id.
	Start K `yaml:"start"`

	// End is the destination terminal id.
	End K `yaml:"end"`

	// Payload holds arbitrary caller data; nil for bare edges.
	Payload *E `yaml:"payload,omitempty"`
}

// BareEdge returns an edge carrying only its terminals.
func BareEdge[K cmp.Ordered, E any](start, end K) Edge[K, E] {
	return Edge[K, E]{Start: start, End: end}
}

// NewEdge returns an edge carrying the given payload.
func NewEdge[K cmp.Ordered, E any](start, end K, payload E) Edge[K, E] {
	return Edge[K, E]{Start: start, End: end, Payload: &payload}
}

// Terminals returns the edge's (start, end) ids.
func (e Edge[K, E]) Terminals() (start, end K) { return e.Start, e.End }

// SetStart rewrites the start terminal. The graph never calls this;
// it exists for callers manipulating edges outside the standard API.
func (e *Edge[K, E]) SetStart(start K) { e.Start = start }

// SetEnd rewrites the end terminal. The graph never calls this;
// it exists for callers manipulating edges outside the standard API.
func (e *Edge[K, E]) SetEnd(end K) { e.End = end }

// Bare reports whether the edge carries no payload.
func (e Edge[K, E]) Bare() bool { return e.Payload == nil }

// Degree pairs a node's incoming and outgoing edge counts.
type Degree struct {
	// In counts edges with this node as End.
	In int

	// Out counts edges with this node as Start.
	Out int
}

// Option configures a Graph before creation.
type Option func(*config)

// config collects construction-time settings so Options stay
// non-generic and compose freely with any Graph instantiation.
type config struct {
	name         string
	historyLimit int
	record       bool
}

func defaultConfig() config {
	return config{historyLimit: DefaultHistoryLimit, record: true}
}

// WithName sets the optional graph name, persisted with snapshots.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithHistoryLimit fixes the undo-log capacity. A non-positive limit
// disables history recording entirely, like WithoutHistory.
func WithHistoryLimit(limit int) Option {
	return func(c *config) {
		c.historyLimit = limit
		c.record = limit > 0
	}
}

// WithoutHistory disables change recording for this graph instance;
// register and Undo become allocation-free no-ops. Intended for bulk
// construction paths.
func WithoutHistory() Option {
	return func(c *config) { c.record = false }
}

// Graph is a mutable directed graph over caller payload types N (nodes)
// and E (edges), keyed by opaque ordered ids K.
//
// Nodes live in a map for O(1) lookup; edges live in an insertion-ordered
// slice so cascades and snapshots are deterministic. The predecessor and
// successor indices and the degree map mirror the edge set exactly and
// are maintained incrementally on every mutation.
//
// A Graph instance is exclusively owned by its caller: there is no
// internal locking, and concurrent use requires external synchronization
// (e.g. a mutex around the whole instance).
type Graph[K cmp.Ordered, N, E any] struct {
	name string

	nodes map[K]Node[K, N]
	edges []Edge[K, E]

	// Derived indices, reconstructible from nodes+edges.
	preds   map[K][]K
	succs   map[K][]K
	degrees map[K]Degree

	// Bounded undo log; nil when recording is disabled.
	history *history[K, N, E]
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is unnamed and records the last
// DefaultHistoryLimit changes for undo.
// Complexity: O(1).
func NewGraph[K cmp.Ordered, N, E any](opts ...Option) *Graph[K, N, E] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Graph[K, N, E]{
		name:    cfg.name,
		nodes:   make(map[K]Node[K, N]),
		preds:   make(map[K][]K),
		succs:   make(map[K][]K),
		degrees: make(map[K]Degree),
	}
	if cfg.record {
		g.history = newHistory[K, N, E](cfg.historyLimit)
	}

	return g
}

// Name returns the optional graph name ("" when unset).
func (g *Graph[K, N, E]) Name() string { return g.name }

// SetName replaces the graph name. Names are not tracked by the undo log.
func (g *Graph[K, N, E]) SetName(name string) { g.name = name }
