package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/format"
)

func TestNew_IsEmpty(t *testing.T) {
	c := New()
	defer c.Free()

	require.Equal(t, 0, c.Count())
	require.Equal(t, 2, c.TotalBytes())
	require.Equal(t, []byte{2, 0}, c.Bytes())
}

func TestFromBytes_RoundTrip(t *testing.T) {
	c := New()
	require.NoError(t, c.Append(format.NewInt(1), format.NewBytes([]byte("hi"))))

	buf := append([]byte(nil), c.Bytes()...)

	c2, err := FromBytes(buf)
	require.NoError(t, err)
	require.Equal(t, c.Count(), c2.Count())
	require.True(t, c.Equal(c2))
}

func TestFromBytes_RejectsTruncatedOrMismatchedLength(t *testing.T) {
	_, err := FromBytes([]byte{5, 0})
	require.Error(t, err)

	_, err = FromBytes(nil)
	require.Error(t, err)
}

func TestDuplicate_IsIndependent(t *testing.T) {
	c := New()
	require.NoError(t, c.Append(format.NewInt(1)))

	dup := c.Duplicate()
	require.NoError(t, dup.Append(format.NewInt(2)))

	require.Equal(t, 1, c.Count())
	require.Equal(t, 2, dup.Count())
}

func TestFingerprint_MatchesForIdenticalContent(t *testing.T) {
	a := New()
	require.NoError(t, a.Append(format.NewInt(7), format.NewBytes([]byte("x"))))

	b := New()
	require.NoError(t, b.Append(format.NewInt(7), format.NewBytes([]byte("x"))))

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.True(t, a.Equal(b))
}
