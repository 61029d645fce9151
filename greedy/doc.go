// Package greedy implements the incident-path-count depth-reduction
// attack: repeatedly rank surviving nodes by the number
// of length-bounded paths passing through them, remove the top-ranked
// node(s), and track a spatial "in-radius" set so successive picks spread
// out across the graph instead of clustering around one hot region.
//
// The radius-update walk is grounded on lvlath/bfs's walker pattern (an
// explicit queue/visited pair advanced by enqueue/dequeue), generalized
// from bfs's string-keyed, directed-only traversal to an int-indexed
// traversal over the undirected parent ∪ child relation.
package greedy
