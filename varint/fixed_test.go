package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixed_RoundTrip(t *testing.T) {
	for w := 1; w <= 8; w++ {
		v := uint64(1)<<(8*w) - 1
		buf := make([]byte, 8)
		PutFixed(buf, v, w)
		require.Equal(t, v, GetFixed(buf, w))
	}
}

func TestFixed128_RoundTrip(t *testing.T) {
	u := Uint128{Hi: 0x0102030405060708, Lo: 0xFFEEDDCCBBAA9988}
	for w := 9; w <= 16; w++ {
		buf := make([]byte, 16)
		require.NoError(t, PutFixed128(buf, u, w))

		got, err := GetFixed128(buf, w)
		require.NoError(t, err)

		mask := uint64(0)
		if w > 8 {
			bits := (w - 8) * 8
			if bits < 64 {
				mask = 1<<bits - 1
			} else {
				mask = ^uint64(0)
			}
		}
		require.Equal(t, u.Lo, got.Lo)
		require.Equal(t, u.Hi&mask, got.Hi)
	}
}

func TestFixed128_InvalidWidth(t *testing.T) {
	_, err := GetFixed128(make([]byte, 16), 8)
	require.Error(t, err)

	err2 := PutFixed128(make([]byte, 16), Uint128{}, 17)
	require.Error(t, err2)
}
