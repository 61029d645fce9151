// Package dag is the in-memory representation of a Depth-Robust Graph
// (DRG): an immutable DAG over node ids [0, n), where every parent id is
// strictly less than its child's id so that node-id order already is a
// topological order.
//
// A Graph is built once from its parent lists (see package construct for
// the construction algorithms) and never mutated afterward, except for the
// one-shot, idempotent children projection that the attacks trigger on
// demand. All depth and exclusion primitives an attack
// needs — Depth, DepthExclude, DepthExcludeEdges, DepthExcludeWithEdges,
// Remove, ForEachEdge, ForEachNode — live here; nothing above package dag
// understands the adjacency representation directly.
package dag
