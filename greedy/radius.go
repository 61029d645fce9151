package greedy

import (
	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// queueItem pairs a node id with its BFS hop distance from the walk root.
type queueItem struct {
	id   int
	hops int
}

// walker runs the radius-update walk: a breadth-first expansion over the
// undirected parent ∪ child relation, bounded by a hop radius. Grounded on
// lvlath/bfs's walker struct (queue/visited/enqueue/loop), generalized
// from a string-keyed directed walk to an int-indexed undirected one.
type walker struct {
	g       *dag.Graph
	radius  int
	queue   []queueItem
	visited map[int]bool
}

// radiusUpdate inserts v and every node reachable from v within radius hops
// of the undirected parent ∪ child relation into inRadius.
func radiusUpdate(g *dag.Graph, v, radius int, inRadius *sets.NodeSet) {
	w := &walker{g: g, radius: radius, visited: map[int]bool{v: true}}
	w.queue = append(w.queue, queueItem{id: v, hops: 0})
	inRadius.Insert(v)
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		if cur.hops >= radius {
			continue
		}
		for _, nb := range w.neighbors(cur.id) {
			if w.visited[nb] {
				continue
			}
			w.visited[nb] = true
			inRadius.Insert(nb)
			w.queue = append(w.queue, queueItem{id: nb, hops: cur.hops + 1})
		}
	}
}

// neighbors returns v's undirected parent ∪ child neighbors, ascending.
func (w *walker) neighbors(v int) []int {
	out := append([]int(nil), w.g.Parents(v)...)
	out = append(out, w.g.Children(v)...)
	return out
}
