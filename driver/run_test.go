package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/construct"
	"github.com/katalvlaran/drgattacks/driver"
	"github.com/katalvlaran/drgattacks/valiant"
)

func TestRunRejectsEmptyProfile(t *testing.T) {
	spec := construct.GraphSpec{Size: 8, Algorithm: "k-connector"}
	_, err := driver.Run(spec, construct.Params{K: 2}, &valiant.Reducer{}, driver.Profile{Runs: 1})
	require.ErrorIs(t, err, driver.ErrEmptyTargetRange)
}

func TestRunRejectsZeroRuns(t *testing.T) {
	target, err := attack.SizeTarget(0.5)
	require.NoError(t, err)
	spec := construct.GraphSpec{Size: 8, Algorithm: "k-connector"}
	_, err = driver.Run(spec, construct.Params{K: 2}, &valiant.Reducer{}, driver.Profile{
		Runs:    0,
		Targets: []attack.Target{target},
	})
	require.ErrorIs(t, err, driver.ErrInvalidRuns)
}

func TestRunProducesOneResultPerTarget(t *testing.T) {
	depthTarget, err := attack.DepthTarget(0.5)
	require.NoError(t, err)
	sizeTarget, err := attack.SizeTarget(0.5)
	require.NoError(t, err)

	var seed [32]byte
	seed[0] = 1
	spec := construct.GraphSpec{Size: 32, Seed: seed, Algorithm: "meta-bucket"}
	profile := driver.Profile{
		Runs:    3,
		Targets: []attack.Target{depthTarget, sizeTarget},
	}

	result, err := driver.Run(spec, construct.Params{M: 3}, &valiant.Reducer{}, profile)
	require.NoError(t, err)
	require.Len(t, result.Targets, 2)
	require.Equal(t, attack.KindValiant, result.Kind)
	for _, tr := range result.Targets {
		require.GreaterOrEqual(t, tr.MeanDepth, 0.0)
		require.GreaterOrEqual(t, tr.MeanSize, 0.0)
	}
}

func TestRunIsDeterministicAcrossInvocations(t *testing.T) {
	depthTarget, err := attack.DepthTarget(0.5)
	require.NoError(t, err)
	var seed [32]byte
	seed[0] = 5
	spec := construct.GraphSpec{Size: 24, Seed: seed, Algorithm: "meta-bucket"}
	profile := driver.Profile{Runs: 2, Targets: []attack.Target{depthTarget}}

	r1, err := driver.Run(spec, construct.Params{M: 2}, &valiant.Reducer{}, profile)
	require.NoError(t, err)
	r2, err := driver.Run(spec, construct.Params{M: 2}, &valiant.Reducer{}, profile)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}
