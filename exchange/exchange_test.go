package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/construct"
	"github.com/katalvlaran/drgattacks/exchange"
)

func TestRunTerminatesAndNeverExceedsN(t *testing.T) {
	var seed [32]byte
	seed[0] = 3
	g, err := construct.MetaBucket(construct.GraphSpec{Size: 64, Seed: seed, Algorithm: "meta-bucket"}, 4)
	require.NoError(t, err)

	r := &exchange.Reducer{TargetDER: 2.0}
	target, err := attack.DepthTarget(0.5)
	require.NoError(t, err)

	s, err := r.Run(g, target)
	require.NoError(t, err)
	require.LessOrEqual(t, s.Size(), g.Size())
}

func TestRunIsDeterministic(t *testing.T) {
	var seed [32]byte
	seed[0] = 9
	spec := construct.GraphSpec{Size: 48, Seed: seed, Algorithm: "meta-bucket"}
	g1, err := construct.MetaBucket(spec, 3)
	require.NoError(t, err)
	g2, err := construct.MetaBucket(spec, 3)
	require.NoError(t, err)

	target, err := attack.DepthTarget(0.5)
	require.NoError(t, err)
	s1, err := (&exchange.Reducer{TargetDER: 1.5}).Run(g1, target)
	require.NoError(t, err)
	s2, err := (&exchange.Reducer{TargetDER: 1.5}).Run(g2, target)
	require.NoError(t, err)
	require.Equal(t, s1.Slice(), s2.Slice())
}
