package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagged_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 200, taggedDirectMax, taggedDirectMax + 1, 300, 1 << 16, 1 << 32, 1<<64 - 1}

	for _, n := range values {
		buf := make([]byte, 9)
		w := PutTagged(buf, n)

		got, gotW, err := GetTagged(buf[:w])
		require.NoError(t, err)
		require.Equal(t, w, gotW)
		require.Equal(t, n, got)
	}
}

func TestTagged_DirectRangeIsSingleByte(t *testing.T) {
	require.Equal(t, 1, TaggedSize(0))
	require.Equal(t, 1, TaggedSize(taggedDirectMax))
	require.Equal(t, 2, TaggedSize(taggedDirectMax+1))
}

func TestTagged_CorruptInput(t *testing.T) {
	_, _, err := GetTagged(nil)
	require.Error(t, err)

	_, _, err = GetTagged([]byte{255}) // claims 8 trailing bytes, none present
	require.Error(t, err)
}
