package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/section"
)

func TestHeadEnd(t *testing.T) {
	c := New()
	defer c.Free()

	_, err := c.Head()
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, c.Append(format.NewInt(1), format.NewInt(2), format.NewInt(3)))

	head, err := c.Head()
	require.NoError(t, err)
	require.Equal(t, int64(1), head.Int)

	end, err := c.End()
	require.NoError(t, err)
	require.Equal(t, int64(3), end.Int)
}

func TestBidirectionalWalk(t *testing.T) {
	c := New()
	defer c.Free()

	for i := int64(0); i < 5; i++ {
		require.NoError(t, c.Append(format.NewInt(i)))
	}

	h, err := section.DecodeHeader(c.Bytes())
	require.NoError(t, err)

	var forward []int64
	pos := h.Len()
	for {
		v, next, err := c.Next(pos)
		if err != nil {
			break
		}
		forward = append(forward, v.Int)
		pos = next
	}
	require.Equal(t, []int64{0, 1, 2, 3, 4}, forward)

	var backward []int64
	pos = c.TotalBytes()
	for {
		v, prev, err := c.Prev(pos)
		if err != nil {
			break
		}
		backward = append(backward, v.Int)
		pos = prev
	}
	require.Equal(t, []int64{4, 3, 2, 1, 0}, backward)
}

func TestIndex_TailBiasedShortcut(t *testing.T) {
	c := New()
	defer c.Free()

	for i := int64(0); i < 9; i++ {
		require.NoError(t, c.Append(format.NewInt(i)))
	}

	for i := 0; i < 9; i++ {
		v, err := c.Index(i)
		require.NoError(t, err)
		require.Equal(t, int64(i), v.Int)
	}

	_, err := c.Index(-1)
	require.Error(t, err)
	_, err = c.Index(9)
	require.Error(t, err)
}
