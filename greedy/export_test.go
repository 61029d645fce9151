package greedy

import (
	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// ExportCountPaths exposes countPaths to external tests.
func ExportCountPaths(g *dag.Graph, s *sets.Exclusion, params Params) []Incident {
	return countPaths(g, s, params)
}

// ExportRadiusUpdate exposes radiusUpdate to external tests.
func ExportRadiusUpdate(g *dag.Graph, v, radius int, inRadius *sets.NodeSet) {
	radiusUpdate(g, v, radius, inRadius)
}

// ExportAppendRemoval exposes appendRemoval to external tests.
func ExportAppendRemoval(g *dag.Graph, s *sets.Exclusion, inRadius *sets.NodeSet, params Params, k int) {
	appendRemoval(g, s, inRadius, params, k)
}
