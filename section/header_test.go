package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveHeader_Empty(t *testing.T) {
	h, err := ResolveHeader(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(2), h.TotalBytes)
	require.Equal(t, 2, h.Len())

	buf := make([]byte, h.Len())
	require.NoError(t, EncodeHeader(buf, h))

	got, err := DecodeHeader(buf)
	require.NoError(t, err)
	require.Equal(t, h.TotalBytes, got.TotalBytes)
	require.Equal(t, h.Count, got.Count)
	require.Equal(t, h.Len(), got.Len())
}

func TestResolveHeader_RoundTripAcrossWidths(t *testing.T) {
	for _, entriesLen := range []int{0, 10, 60, 100, 16000, 16500, 1 << 20} {
		for _, count := range []uint64{0, 1, 300, 1 << 20} {
			h, err := ResolveHeader(entriesLen, count)
			require.NoError(t, err)

			buf := make([]byte, h.Len())
			require.NoError(t, EncodeHeader(buf, h))

			got, err := DecodeHeader(append(buf, make([]byte, entriesLen)...))
			require.NoError(t, err)
			require.Equal(t, h.TotalBytes, got.TotalBytes)
			require.Equal(t, h.Count, got.Count)
		}
	}
}

func TestDecodeHeader_RejectsTruncated(t *testing.T) {
	_, err := DecodeHeader([]byte{5}) // claims 5 total bytes but buffer is shorter
	require.Error(t, err)
}

func TestDecodeHeader_RejectsEmptyInput(t *testing.T) {
	_, err := DecodeHeader(nil)
	require.Error(t, err)
}
