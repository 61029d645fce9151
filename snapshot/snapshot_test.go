package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drgattacks/construct"
	"github.com/katalvlaran/drgattacks/snapshot"
)

func TestWriteReadRoundTrips(t *testing.T) {
	g, err := construct.KConnector(construct.GraphSpec{Size: 12, Algorithm: "k-connector"}, 3)
	require.NoError(t, err)

	key := snapshot.Key{Algorithm: "k-connector", Size: 12, Degree: 3}
	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, key, g))

	got, err := snapshot.Read(&buf, key)
	require.NoError(t, err)
	for v := 0; v < g.Size(); v++ {
		require.Equal(t, g.Parents(v), got.Parents(v))
	}
}

func TestReadRejectsKeyMismatch(t *testing.T) {
	g, err := construct.KConnector(construct.GraphSpec{Size: 8, Algorithm: "k-connector"}, 2)
	require.NoError(t, err)
	key := snapshot.Key{Algorithm: "k-connector", Size: 8, Degree: 2}
	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, key, g))

	wrongKey := snapshot.Key{Algorithm: "k-connector", Size: 8, Degree: 3}
	_, err = snapshot.Read(&buf, wrongKey)
	require.ErrorIs(t, err, snapshot.ErrKeyMismatch)
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := snapshot.Read(bytes.NewReader([]byte{0, 1, 2, 3}), snapshot.Key{})
	require.ErrorIs(t, err, snapshot.ErrBadMagic)
}
