package dag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// zigzagParents is a small n=8 DAG used across this package's tests: a
// backbone path 0-1-...-7 with an extra skip edge into every even node.
func zigzagParents() [][]int {
	return [][]int{
		{},
		{0},
		{1, 0},
		{2},
		{3, 2},
		{4},
		{5, 4},
		{6},
	}
}

func TestNewRejectsOutOfOrderParent(t *testing.T) {
	_, err := dag.New([][]int{{}, {5}}, "test")
	require.ErrorIs(t, err, dag.ErrParentNotBefore)
}

func TestNewRejectsDuplicateParent(t *testing.T) {
	_, err := dag.New([][]int{{}, {}, {0, 0}}, "test")
	require.ErrorIs(t, err, dag.ErrDuplicateParent)
}

func TestDepthOfZigzagGraph(t *testing.T) {
	g, err := dag.New(zigzagParents(), "test")
	require.NoError(t, err)
	require.Equal(t, 7, g.Depth())
}

func TestDepthExcludeIsolatesSurvivingNodes(t *testing.T) {
	g, err := dag.New(zigzagParents(), "test")
	require.NoError(t, err)

	s := sets.NewExclusion(g.Size())
	for _, v := range []int{0, 2, 3, 4, 6} {
		s.Insert(v)
	}
	// Every surviving node (1, 5, 7) loses all of its incident edges in this
	// graph, so the residual longest path is empty.
	require.Equal(t, 0, g.DepthExclude(s))
}

func TestRemoveEmptyIsIdentity(t *testing.T) {
	g, err := dag.New(zigzagParents(), "test")
	require.NoError(t, err)
	empty := sets.NewExclusion(g.Size())
	out := g.Remove(empty)
	require.Equal(t, g.Depth(), out.Depth())
	for v := 0; v < g.Size(); v++ {
		require.Equal(t, g.Parents(v), out.Parents(v))
	}
}

func TestRemoveComposesUnion(t *testing.T) {
	g, err := dag.New(zigzagParents(), "test")
	require.NoError(t, err)

	s1 := sets.NewExclusion(g.Size())
	s1.Insert(2)
	s2 := sets.NewExclusion(g.Size())
	s2.Insert(4)
	sequential := g.Remove(s1).Remove(s2)

	union := sets.NewExclusion(g.Size())
	union.Insert(2)
	union.Insert(4)
	atOnce := g.Remove(union)

	for v := 0; v < g.Size(); v++ {
		require.Equal(t, atOnce.Parents(v), sequential.Parents(v))
	}
}

func TestForEachEdgeOrderIsParentThenChildAscending(t *testing.T) {
	g, err := dag.New(zigzagParents(), "test")
	require.NoError(t, err)

	var got []sets.Edge
	g.ForEachEdge(func(e sets.Edge) bool {
		got = append(got, e)
		return true
	})
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		require.True(t, prev.Parent < cur.Parent || (prev.Parent == cur.Parent && prev.Child < cur.Child))
	}
}

func TestChildrenProjectionIsInverseOfParents(t *testing.T) {
	g, err := dag.New(zigzagParents(), "test")
	require.NoError(t, err)
	g.ProjectChildren()
	for v := 0; v < g.Size(); v++ {
		for _, p := range g.Parents(v) {
			require.Contains(t, g.Children(p), v)
		}
	}
}

func TestDepthExcludeWithEdgesWitnessIsConsistent(t *testing.T) {
	g, err := dag.New(zigzagParents(), "test")
	require.NoError(t, err)
	s := sets.NewExclusion(g.Size())
	depth, witness := g.DepthExcludeWithEdges(s)
	require.Equal(t, depth, witness.Size())
}
