package core

import (
	"fmt"
	"strings"
)

// edgesPerLine bounds the width of the String edge listing.
const edgesPerLine = 4

// String renders a compact, deterministic debug view of the graph:
// a name header, the sorted node-id line, and sorted start->end pairs
// grouped four per line. Intended for logs and test failure output,
// not for persistence (see Save).
func (g *Graph[K, N, E]) String() string {
	var b strings.Builder
	if g.name != "" {
		fmt.Fprintf(&b, "Graph (%q)\n", g.name)
	} else {
		b.WriteString("Graph\n")
	}
	fmt.Fprintf(&b, "\tNode Ids: %v\n", g.NodeIDs())

	pairs := g.EdgePairs()
	if len(pairs) == 0 {
		b.WriteString("\t(no edges)")

		return b.String()
	}
	for i, p := range pairs {
		if i%edgesPerLine == 0 {
			b.WriteString("\t")
		} else {
			b.WriteString(",  ")
		}
		fmt.Fprintf(&b, "%v->%v", p[0], p[1])
		if i%edgesPerLine == edgesPerLine-1 && i != len(pairs)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
