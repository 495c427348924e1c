package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/format"
)

func TestSplitMerge_RoundTrip(t *testing.T) {
	c := New()
	defer c.Free()

	for i := int64(0); i < 6; i++ {
		require.NoError(t, c.Append(format.NewInt(i)))
	}

	left, right, err := c.Split(3)
	require.NoError(t, err)
	defer left.Free()
	defer right.Free()

	require.Equal(t, 3, left.Count())
	require.Equal(t, 3, right.Count())

	v, err := left.Index(2)
	require.NoError(t, err)
	require.Equal(t, int64(2), v.Int)

	v, err = right.Index(0)
	require.NoError(t, err)
	require.Equal(t, int64(3), v.Int)

	merged, err := Merge(left, right)
	require.NoError(t, err)
	defer merged.Free()

	require.Equal(t, 6, merged.Count())
	require.True(t, c.Equal(merged))
}

func TestSplit_Boundaries(t *testing.T) {
	c := New()
	defer c.Free()
	require.NoError(t, c.Append(format.NewInt(1), format.NewInt(2)))

	left, right, err := c.Split(0)
	require.NoError(t, err)
	defer left.Free()
	defer right.Free()

	require.Equal(t, 0, left.Count())
	require.Equal(t, 2, right.Count())
}
