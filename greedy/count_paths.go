package greedy

import (
	"sort"

	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// Incident pairs a surviving node with its incident path (or degree) count.
type Incident struct {
	Node  int
	Count uint64
}

// countPaths ranks every node not in s by incident(v), descending, with
// ties broken by ascending node id (the stable-tie-break
// requirement). It dispatches to degree mode or path mode per
// params.UseDegree.
func countPaths(g *dag.Graph, s *sets.Exclusion, params Params) []Incident {
	if params.UseDegree {
		return countPathsDegree(g, s)
	}
	return countPathsLength(g, s, params.Length)
}

// countPathsDegree implements degree-mode incident counting:
// |children(v)\S| + |parents(v)\S| for every v not in S.
func countPathsDegree(g *dag.Graph, s *sets.Exclusion) []Incident {
	g.ProjectChildren()
	out := make([]Incident, 0, g.Size())
	for v := 0; v < g.Size(); v++ {
		if s.Contains(v) {
			continue
		}
		var count uint64
		for _, p := range g.Parents(v) {
			if !s.Contains(p) {
				count++
			}
		}
		for _, c := range g.Children(v) {
			if !s.Contains(c) {
				count++
			}
		}
		out = append(out, Incident{Node: v, Count: count})
	}
	sortIncidentDesc(out)
	return out
}

// countPathsLength implements path-mode forward/backward DP counting:
// two n x (length+1) tables, ending[v][d] and starting[v][d], filled one
// layer d at a time. Each layer is one pass over every edge (parent-ascending
// order) that reads only layer d-1, so ending (propagating parent to child)
// and starting (propagating child to parent) share the same pass.
func countPathsLength(g *dag.Graph, s *sets.Exclusion, length int) []Incident {
	g.ProjectChildren()
	n := g.Size()
	ending := make([][]uint64, n)
	starting := make([][]uint64, n)
	for v := 0; v < n; v++ {
		ending[v] = make([]uint64, length+1)
		starting[v] = make([]uint64, length+1)
		if !s.Contains(v) {
			ending[v][0] = 1
			starting[v][0] = 1
		}
	}

	for d := 1; d <= length; d++ {
		g.ForEachEdge(func(e sets.Edge) bool {
			if s.Contains(e.Parent) {
				return true
			}
			ending[e.Child][d] = saturatingAdd(ending[e.Child][d], ending[e.Parent][d-1])
			starting[e.Parent][d] = saturatingAdd(starting[e.Parent][d], starting[e.Child][d-1])
			return true
		})
	}

	out := make([]Incident, 0, n)
	for v := 0; v < n; v++ {
		if s.Contains(v) {
			continue
		}
		var total uint64
		for d := 0; d <= length; d++ {
			total = saturatingAdd(total, saturatingMul(starting[v][d], ending[v][length-d]))
		}
		out = append(out, Incident{Node: v, Count: total})
	}
	sortIncidentDesc(out)
	return out
}

func sortIncidentDesc(xs []Incident) {
	sort.SliceStable(xs, func(i, j int) bool {
		if xs[i].Count != xs[j].Count {
			return xs[i].Count > xs[j].Count
		}
		return xs[i].Node < xs[j].Node
	})
}

// saturatingAdd caps at math.MaxUint64 rather than wrapping, since a count
// this large only ever means "large enough to never be the scarce resource".
func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	product := a * b
	if product/a != b {
		return ^uint64(0)
	}
	return product
}
