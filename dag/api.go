// File: api.go
// Role: depth/exclusion primitives and deterministic iteration over a Graph.
package dag

import "github.com/katalvlaran/drgattacks/sets"

// ForEachNode visits every node id in ascending order. Iteration stops
// early if fn returns false.
func (g *Graph) ForEachNode(fn func(v int) bool) {
	for v := 0; v < g.n; v++ {
		if !fn(v) {
			return
		}
	}
}

// ForEachEdge visits every edge in parent-ascending, then child-ascending
// order. Iteration stops early if fn returns false.
//
// Complexity: O(n + m); triggers ProjectChildren if not already built.
func (g *Graph) ForEachEdge(fn func(e sets.Edge) bool) {
	g.ProjectChildren()
	for p := 0; p < g.n; p++ {
		for _, c := range g.children[p] {
			if !fn(sets.Edge{Parent: p, Child: c}) {
				return
			}
		}
	}
}

// Depth returns the length, in edges, of the longest directed path in g.
//
// Complexity: O(n + m), a single forward dynamic-programming pass in
// node-id (== topological) order.
func (g *Graph) Depth() int {
	dist := make([]int, g.n)
	best := 0
	for v := 0; v < g.n; v++ {
		for _, p := range g.parents[v] {
			if d := dist[p] + 1; d > dist[v] {
				dist[v] = d
			}
		}
		if dist[v] > best {
			best = dist[v]
		}
	}
	return best
}

// DepthExclude returns the longest path length in g - S: nodes in S, and
// every edge touching them, are treated as absent.
//
// Complexity: O(n + m).
func (g *Graph) DepthExclude(s *sets.Exclusion) int {
	dist := make([]int, g.n)
	best := 0
	for v := 0; v < g.n; v++ {
		if s.Contains(v) {
			continue
		}
		for _, p := range g.parents[v] {
			if s.Contains(p) {
				continue
			}
			if d := dist[p] + 1; d > dist[v] {
				dist[v] = d
			}
		}
		if dist[v] > best {
			best = dist[v]
		}
	}
	return best
}

// DepthExcludeEdges returns the longest path length in g with every edge in
// excluded skipped, but all nodes still present.
//
// Complexity: O(n + m).
func (g *Graph) DepthExcludeEdges(excluded *sets.EdgeSet) int {
	dist := make([]int, g.n)
	best := 0
	for v := 0; v < g.n; v++ {
		for _, p := range g.parents[v] {
			if excluded.Contains(sets.Edge{Parent: p, Child: v}) {
				continue
			}
			if d := dist[p] + 1; d > dist[v] {
				dist[v] = d
			}
		}
		if dist[v] > best {
			best = dist[v]
		}
	}
	return best
}

// DepthExcludeWithEdges behaves like DepthExclude, additionally returning
// the edge set of one witness longest path (parent-pointer backtrace from
// the deepest reachable node).
//
// Complexity: O(n + m) for the DP, O(depth) for the backtrace.
func (g *Graph) DepthExcludeWithEdges(s *sets.Exclusion) (int, *sets.EdgeSet) {
	dist := make([]int, g.n)
	from := make([]int, g.n)
	for v := range from {
		from[v] = -1
	}
	best, bestAt := 0, -1
	for v := 0; v < g.n; v++ {
		if s.Contains(v) {
			continue
		}
		for _, p := range g.parents[v] {
			if s.Contains(p) {
				continue
			}
			if d := dist[p] + 1; d > dist[v] {
				dist[v] = d
				from[v] = p
			}
		}
		if dist[v] > best {
			best = dist[v]
			bestAt = v
		}
	}

	witness := sets.NewEdgeSet()
	for cur := bestAt; cur >= 0 && from[cur] >= 0; cur = from[cur] {
		witness.Insert(sets.Edge{Parent: from[cur], Child: cur})
	}
	return best, witness
}

// Remove returns a new Graph with every node in s, and every edge incident
// to it, deleted. Node ids are preserved: a node in s survives as an
// isolated id with no parents and contributes no children.
//
// remove(∅) is equivalent to g; remove(S1) then remove(S2) is equivalent
// to remove(S1 ∪ S2).
//
// Complexity: O(n + m).
func (g *Graph) Remove(s *sets.Exclusion) *Graph {
	out := &Graph{n: g.n, parents: make([][]int, g.n), algo: g.algo}
	for v := 0; v < g.n; v++ {
		if s.Contains(v) {
			out.parents[v] = nil
			continue
		}
		kept := make([]int, 0, len(g.parents[v]))
		for _, p := range g.parents[v] {
			if !s.Contains(p) {
				kept = append(kept, p)
			}
		}
		out.parents[v] = kept
	}
	return out
}

// Stats computes a read-only O(n + m) summary of g.
func (g *Graph) Stats() Stats {
	edges := 0
	for v := 0; v < g.n; v++ {
		edges += len(g.parents[v])
	}
	avg := 0.0
	if g.n > 0 {
		avg = float64(edges) / float64(g.n)
	}
	return Stats{
		Size:          g.n,
		EdgeCount:     edges,
		AverageDegree: avg,
		Depth:         g.Depth(),
		Algorithm:     g.algo,
	}
}
