package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/format"
)

func TestSumProduct(t *testing.T) {
	c := New()
	defer c.Free()

	require.NoError(t, c.Append(format.NewInt(1), format.NewUint(2), format.NewFloat64(1.5)))

	sum, err := c.Sum()
	require.NoError(t, err)
	require.Equal(t, 4.5, sum)

	product, err := c.Product()
	require.NoError(t, err)
	require.Equal(t, 3.0, product)
}

func TestSum_EmptyIsZero(t *testing.T) {
	c := New()
	defer c.Free()

	sum, err := c.Sum()
	require.NoError(t, err)
	require.Zero(t, sum)
}

func TestSum_RejectsNonNumeric(t *testing.T) {
	c := New()
	defer c.Free()
	require.NoError(t, c.Append(format.NewBytes([]byte("x"))))

	_, err := c.Sum()
	require.Error(t, err)
}
