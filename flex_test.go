package flex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/format"
)

func TestTopLevelWrappers(t *testing.T) {
	c := New()
	defer c.Free()

	require.NoError(t, c.Append(format.NewInt(1), format.NewBytes([]byte("hello")), format.NewTrue()))

	head, err := c.Head()
	require.NoError(t, err)
	require.Equal(t, int64(1), head.Int)

	roundTripped, err := FromBytes(append([]byte{}, c.Bytes()...))
	require.NoError(t, err)
	require.True(t, c.Equal(roundTripped))
}

func TestTopLevelMergeCompressDecompress(t *testing.T) {
	a := New()
	defer a.Free()
	b := New()
	defer b.Free()

	for i := 0; i < 100; i++ {
		require.NoError(t, a.Append(format.NewBytes([]byte("left side padding data for compression"))))
		require.NoError(t, b.Append(format.NewBytes([]byte("right side padding data for compression"))))
	}

	merged, err := Merge(a, b)
	require.NoError(t, err)
	defer merged.Free()
	require.Equal(t, a.Count()+b.Count(), merged.Count())

	packed, err := Compress(merged)
	require.NoError(t, err)

	restored, err := Decompress(packed)
	require.NoError(t, err)
	defer restored.Free()

	require.True(t, merged.Equal(restored))
}
