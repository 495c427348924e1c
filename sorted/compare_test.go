package sorted

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/format"
)

func TestDefaultComparator_NumericCrossKind(t *testing.T) {
	c, err := DefaultComparator(format.NewInt(5), format.NewUint(10))
	require.NoError(t, err)
	require.Negative(t, c)

	c, err = DefaultComparator(format.NewFloat64(3.5), format.NewInt(3))
	require.NoError(t, err)
	require.Positive(t, c)
}

func TestDefaultComparator_Bytes(t *testing.T) {
	c, err := DefaultComparator(format.NewBytes([]byte("abc")), format.NewBytes([]byte("abd")))
	require.NoError(t, err)
	require.Negative(t, c)
}

func TestDefaultComparator_IncompatibleKindsError(t *testing.T) {
	_, err := DefaultComparator(format.NewBytes([]byte("x")), format.NewInt(1))
	require.Error(t, err)
}
