// File: exchange.go
// Role: cut_covering and the outer left-cursor scan for the Exchange-Nodes
// attack, plus its Attack adapter.
package exchange

import (
	"math"
	"sort"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// Reducer is the Attack implementation for the Exchange-Nodes attack.
// TargetDER is the minimum node-exclusion ratio a candidate crossing edge
// must achieve to be admitted.
type Reducer struct {
	TargetDER float64
}

// Kind reports attack.KindExchange.
func (r *Reducer) Kind() attack.Kind { return attack.KindExchange }

// candidate records a best-so-far crossing-edge exchange within one
// cut_covering call.
type candidate struct {
	ner     float64
	edge    sets.Edge
	removed []int
}

// Run scans left from 0 in steps of 2, calling cutCovering at each
// position, until left >= n (n is g.Size()). target is ignored: this
// attack is driven entirely by TargetDER, since it
// does not honor a size cap.
func (r *Reducer) Run(g *dag.Graph, target attack.Target) (*sets.Exclusion, error) {
	n := g.Size()
	s := sets.NewExclusion(n)
	var exchanged []sets.Edge

	for left := 0; left < n; left += 2 {
		if edge, ok := cutCovering(g, s, &exchanged, left, r.TargetDER); ok {
			exchanged = append(exchanged, edge)
		}
	}
	return s, nil
}

// cutCovering implements the per-cursor span search.
func cutCovering(g *dag.Graph, s *sets.Exclusion, exchanged *[]sets.Edge, left int, targetDER float64) (sets.Edge, bool) {
	n := g.Size()
	span := int(math.Ceil(targetDER)) + 1
	var best *candidate

	for {
		span = int(math.Ceil(float64(span) * 1.5))
		right := left + span
		if right >= n {
			break
		}
		if overlapsAny(sets.Edge{Parent: left, Child: right}, *exchanged) {
			break
		}

		frontier := left + span/2
		crossing := crossingEdges(g, s, left, frontier, right)
		sort.SliceStable(crossing, func(i, j int) bool {
			return crossing[i].Interval() < crossing[j].Interval()
		})

		if len(crossing) == 0 && float64(span) > targetDER {
			s.Insert(frontier)
			continue
		}

		removedNodes := sets.NewNodeSet(n)
		if !s.Contains(frontier) {
			removedNodes.Insert(frontier)
		}
		for _, e := range crossing {
			if activeGiven(e, s, removedNodes) {
				removedNodes.Insert(e.ClosestTo(frontier))
				ner := float64(e.Interval()) / float64(removedNodes.Size())
				if ner >= targetDER && (best == nil || ner > best.ner) {
					best = &candidate{ner: ner, edge: e, removed: removedNodes.Slice()}
				}
			}
		}
	}

	if best == nil {
		return sets.Edge{}, false
	}
	for _, v := range best.removed {
		s.Insert(v)
	}
	return best.edge, true
}

// crossingEdges returns every active edge (p, c) with left <= p < frontier
// and frontier < c < right.
func crossingEdges(g *dag.Graph, s *sets.Exclusion, left, frontier, right int) []sets.Edge {
	var out []sets.Edge
	g.ForEachEdge(func(e sets.Edge) bool {
		if e.Parent >= left && e.Parent < frontier && e.Child > frontier && e.Child < right && e.Active(s) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// activeGiven reports whether e survives given the permanent exclusion set
// s plus the in-progress removedNodes set from this cut_covering call.
func activeGiven(e sets.Edge, s *sets.Exclusion, removedNodes *sets.NodeSet) bool {
	if !e.Active(s) {
		return false
	}
	return !removedNodes.Contains(e.Parent) && !removedNodes.Contains(e.Child)
}

// overlapsAny reports whether span overlaps any previously exchanged edge.
func overlapsAny(span sets.Edge, exchanged []sets.Edge) bool {
	for _, e := range exchanged {
		if span.Overlaps(e) {
			return true
		}
	}
	return false
}
