// Package core: snapshot persistence.
//
// A snapshot stores the graph name, nodes, and edges in an
// indentation-pretty YAML document. The history log and the derived
// indices (degree map, adjacency) are never written; indices are always
// rebuilt from the decoded edge list after a load.
//
// Save propagates I/O and encoding failures verbatim. LoadOrDefault is
// a deliberate best-effort degrade: a missing file, unreadable bytes,
// or malformed/type-mismatched/integrity-violating content all yield an
// empty default graph instead of an error.

package core

import (
	"cmp"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// snapshotIndent is the pretty-printing indent width for saved graphs.
const snapshotIndent = 2

// snapshot is the on-disk shape of a graph. Nodes are sorted by id and
// edges kept in insertion order, so save(load(x)) is byte-stable.
type snapshot[K cmp.Ordered, N, E any] struct {
	Name  string       `yaml:"name,omitempty"`
	Nodes []Node[K, N] `yaml:"nodes"`
	Edges []Edge[K, E] `yaml:"edges"`
}

// Save writes a human-readable snapshot of the graph to path, creating
// or truncating the file. Id and payload types must be representable in
// YAML. Failures propagate to the caller.
func (g *Graph[K, N, E]) Save(path string) error {
	snap := snapshot[K, N, E]{
		Name:  g.name,
		Nodes: make([]Node[K, N], 0, len(g.nodes)),
		Edges: g.Edges(),
	}
	for _, id := range g.NodeIDs() {
		snap.Nodes = append(snap.Nodes, g.nodes[id])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("core: create snapshot %s: %w", path, err)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(snapshotIndent)
	if err = enc.Encode(snap); err != nil {
		_ = enc.Close()
		_ = f.Close()

		return fmt.Errorf("core: encode snapshot %s: %w", path, err)
	}
	if err = enc.Close(); err != nil {
		_ = f.Close()

		return fmt.Errorf("core: flush snapshot %s: %w", path, err)
	}

	return f.Close()
}

// LoadOrDefault reads a snapshot from path and reconstructs the graph,
// falling back to an empty graph built from opts on any failure. The
// fallback is silent by design; callers needing diagnostics should
// manage files themselves and use Save for the write half.
func LoadOrDefault[K cmp.Ordered, N, E any](path string, opts ...Option) *Graph[K, N, E] {
	g, err := loadFromFile[K, N, E](path, opts...)
	if err != nil {
		return NewGraph[K, N, E](opts...)
	}

	return g
}

// loadFromFile decodes a snapshot and rebuilds the store through the
// consistency checker, so a snapshot violating referential integrity
// (duplicate ids, duplicate pairs, dangling terminals) is rejected as a
// whole. Degree and adjacency indices are rebuilt fresh by the raw
// primitives; the history log starts empty.
func loadFromFile[K cmp.Ordered, N, E any](path string, opts ...Option) (*Graph[K, N, E], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap snapshot[K, N, E]
	if err = yaml.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}

	g := NewGraph[K, N, E](opts...)
	if snap.Name != "" {
		g.name = snap.Name
	}
	for _, n := range snap.Nodes {
		c := g.checkInsertNode(n)
		if err = c.failed(); err != nil {
			return nil, err
		}
		g.insertNodeRaw(n)
	}
	for _, e := range snap.Edges {
		c := g.checkInsertEdge(e)
		if err = c.failed(); err != nil {
			return nil, err
		}
		g.insertEdgeRaw(e)
	}

	return g, nil
}
