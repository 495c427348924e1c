package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/format"
)

func roundTrip(t *testing.T, v format.Value) format.Value {
	t.Helper()

	n, err := EntrySize(v)
	require.NoError(t, err)

	buf := make([]byte, n+4) // slack to catch over-reads
	written, err := EncodeEntry(buf, v)
	require.NoError(t, err)
	require.Equal(t, n, written)

	fwd, consumed, err := DecodeForward(buf[:n])
	require.NoError(t, err)
	require.Equal(t, n, consumed)

	back, start, err := DecodeBackward(buf[:n], n)
	require.NoError(t, err)
	require.Equal(t, 0, start)
	require.Equal(t, fwd, back)

	return fwd
}

func TestEntry_Immediates(t *testing.T) {
	require.Equal(t, format.KindTrue, roundTrip(t, format.NewTrue()).Kind)
	require.Equal(t, format.KindFalse, roundTrip(t, format.NewFalse()).Kind)
	require.Equal(t, format.KindNull, roundTrip(t, format.NewNull()).Kind)

	got := roundTrip(t, format.NewBytes(nil))
	require.Equal(t, format.KindBytes, got.Kind)
	require.Empty(t, got.Bytes)
}

func TestEntry_Strings(t *testing.T) {
	for _, n := range []int{1, 64, 65, 200, 16448, 70000} {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i)
		}

		got := roundTrip(t, format.NewBytes(b))
		require.Equal(t, b, got.Bytes)
	}
}

func TestEntry_Integers(t *testing.T) {
	for _, v := range []int64{0, -1, 1, 127, -128, 1 << 20, -(1 << 40), 9223372036854775807, -9223372036854775808} {
		got := roundTrip(t, format.NewInt(v))
		require.Equal(t, v, got.Int)
	}

	for _, v := range []uint64{0, 255, 256, 1 << 40, 1<<64 - 1} {
		got := roundTrip(t, format.NewUint(v))
		require.Equal(t, v, got.Uint)
	}
}

func TestEntry_Floats(t *testing.T) {
	got := roundTrip(t, format.NewFloat32(3.0))
	require.InDelta(t, float32(3.0), got.Float32, 0)

	got = roundTrip(t, format.NewFloat64(3.141592653589793))
	require.Equal(t, 3.141592653589793, got.Float64)
}

func TestEntry_PointerAndRefID(t *testing.T) {
	got := roundTrip(t, format.NewInternedPointer(42))
	require.Equal(t, uint64(42), got.Uint)

	got = roundTrip(t, format.NewInternedPointer(uint64(1)<<50))
	require.Equal(t, uint64(1)<<50, got.Uint)

	got = roundTrip(t, format.NewRefID(0))
	require.Equal(t, uint64(0), got.Uint)

	got = roundTrip(t, format.NewRefID(1<<40))
	require.Equal(t, uint64(1)<<40, got.Uint)
}

func TestEntry_NestedContainer(t *testing.T) {
	child := []byte{2, 0} // empty container: total_bytes=2, count=0
	got := roundTrip(t, format.NewContainer(format.Map, child))
	require.Equal(t, format.KindContainer, got.Kind)
	require.Equal(t, format.Map, got.ContainerKind)
	require.Equal(t, child, got.Bytes)
}

func TestEntry_MultipleSequential(t *testing.T) {
	values := []format.Value{
		format.NewInt(-5),
		format.NewBytes([]byte("hello")),
		format.NewFloat32(0.578125),
		format.NewTrue(),
	}

	var buf []byte
	for _, v := range values {
		n, err := EntrySize(v)
		require.NoError(t, err)

		pos := len(buf)
		buf = append(buf, make([]byte, n)...)

		_, err = EncodeEntry(buf[pos:], v)
		require.NoError(t, err)
	}

	pos := 0
	for _, want := range values {
		got, consumed, err := DecodeForward(buf[pos:])
		require.NoError(t, err)
		require.Equal(t, want.Kind, got.Kind)
		pos += consumed
	}
	require.Equal(t, len(buf), pos)

	end := len(buf)
	for i := len(values) - 1; i >= 0; i-- {
		got, start, err := DecodeBackward(buf, end)
		require.NoError(t, err)
		require.Equal(t, values[i].Kind, got.Kind)
		end = start
	}
	require.Equal(t, 0, end)
}

func TestEntry_ReservedTagRejected(t *testing.T) {
	_, _, err := DecodeForward([]byte{format.TagDecimal32, 0, 0, 0, 0, format.TagDecimal32})
	require.Error(t, err)
}

func TestEntry_CorruptMismatchedReverseTag(t *testing.T) {
	v := format.NewInt(42)
	n, err := EntrySize(v)
	require.NoError(t, err)

	buf := make([]byte, n)
	_, err = EncodeEntry(buf, v)
	require.NoError(t, err)

	buf[len(buf)-1] ^= 0xFF // corrupt the reverse tag

	_, _, err = DecodeForward(buf)
	require.Error(t, err)
}

func TestEntry_CorruptMismatchedForwardTag_String(t *testing.T) {
	v := format.NewBytes([]byte("hello"))
	n, err := EntrySize(v)
	require.NoError(t, err)

	buf := make([]byte, n)
	_, err = EncodeEntry(buf, v)
	require.NoError(t, err)

	buf[0] ^= 0xFF // corrupt the forward length tag, leave the reverse tag intact

	_, _, err = DecodeBackward(buf, n)
	require.Error(t, err)
}
