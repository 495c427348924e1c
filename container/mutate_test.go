package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/format"
)

func collect(t *testing.T, c *Container) []format.Value {
	t.Helper()

	out := make([]format.Value, 0, c.Count())
	for i := 0; i < c.Count(); i++ {
		v, err := c.Index(i)
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

func TestAppendAndIndex(t *testing.T) {
	c := New()
	defer c.Free()

	require.NoError(t, c.Append(format.NewInt(1), format.NewInt(2), format.NewInt(3)))
	require.Equal(t, 3, c.Count())

	v, err := c.Index(0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int)

	v, err = c.Index(2)
	require.NoError(t, err)
	require.Equal(t, int64(3), v.Int)
}

func TestInsertMiddle(t *testing.T) {
	c := New()
	defer c.Free()

	require.NoError(t, c.Append(format.NewInt(1), format.NewInt(3)))
	require.NoError(t, c.Insert(1, format.NewInt(2)))

	got := collect(t, c)
	require.Len(t, got, 3)
	require.Equal(t, int64(1), got[0].Int)
	require.Equal(t, int64(2), got[1].Int)
	require.Equal(t, int64(3), got[2].Int)
}

func TestInsertAtHead(t *testing.T) {
	c := New()
	defer c.Free()

	require.NoError(t, c.Append(format.NewInt(2)))
	require.NoError(t, c.Insert(0, format.NewInt(1)))

	got := collect(t, c)
	require.Equal(t, []int64{1, 2}, []int64{got[0].Int, got[1].Int})
}

func TestReplace(t *testing.T) {
	c := New()
	defer c.Free()

	require.NoError(t, c.Append(format.NewInt(1), format.NewInt(2), format.NewInt(3)))
	require.NoError(t, c.Replace(1, format.NewBytes([]byte("two"))))

	v, err := c.Index(1)
	require.NoError(t, err)
	require.Equal(t, format.KindBytes, v.Kind)
	require.Equal(t, "two", string(v.Bytes))
	require.Equal(t, 3, c.Count())
}

func TestReplace_OutOfRange(t *testing.T) {
	c := New()
	defer c.Free()

	require.Error(t, c.Replace(0, format.NewInt(1)))
}

func TestDelete(t *testing.T) {
	c := New()
	defer c.Free()

	require.NoError(t, c.Append(format.NewInt(1), format.NewInt(2), format.NewInt(3)))
	require.NoError(t, c.Delete(1, false))

	got := collect(t, c)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].Int)
	require.Equal(t, int64(3), got[1].Int)
}

func TestDeleteRange_BulkNoDrain(t *testing.T) {
	c := New()
	defer c.Free()

	for i := int64(0); i < 10; i++ {
		require.NoError(t, c.Append(format.NewInt(i)))
	}

	require.NoError(t, c.DeleteRange(2, 7, false))

	got := collect(t, c)
	require.Len(t, got, 5)
	require.Equal(t, []int64{0, 1, 7, 8, 9}, []int64{got[0].Int, got[1].Int, got[2].Int, got[3].Int, got[4].Int})
}

func TestDeleteRange_DrainReusesBuffer(t *testing.T) {
	c := New()
	defer c.Free()

	for i := int64(0); i < 10; i++ {
		require.NoError(t, c.Append(format.NewInt(i)))
	}

	oldCap := cap(c.buf)

	require.NoError(t, c.DeleteRange(2, 7, true))

	got := collect(t, c)
	require.Len(t, got, 5)
	require.Equal(t, []int64{0, 1, 7, 8, 9}, []int64{got[0].Int, got[1].Int, got[2].Int, got[3].Int, got[4].Int})

	// A drained delete keeps writing into the same backing array rather
	// than borrowing a smaller, exactly-sized one from the pool.
	require.Equal(t, oldCap, cap(c.buf))

	require.NoError(t, c.Append(format.NewInt(99)))

	got = collect(t, c)
	require.Len(t, got, 6)
	require.Equal(t, int64(99), got[5].Int)
}

func TestInsert_SelfAliasingReadThenInsert(t *testing.T) {
	c := New()
	defer c.Free()

	require.NoError(t, c.Append(format.NewBytes([]byte("original"))))

	v, err := c.Index(0)
	require.NoError(t, err)
	require.True(t, aliases(c.Bytes(), v.Bytes))

	// Re-inserting bytes read directly from this container's own buffer
	// must not corrupt the source while the container grows/rewrites.
	require.NoError(t, c.Insert(1, format.NewBytes(v.Bytes)))

	got := collect(t, c)
	require.Len(t, got, 2)
	require.Equal(t, "original", string(got[0].Bytes))
	require.Equal(t, "original", string(got[1].Bytes))
}

func TestInsert_BoundaryTriggeredHeaderRegrowth(t *testing.T) {
	c := New()
	defer c.Free()

	// Push entries so total_bytes crosses the 1-byte/2-byte split-full-no-
	// zero boundary (64), forcing the header itself to widen mid-sequence.
	for i := 0; i < 70; i++ {
		require.NoError(t, c.Append(format.NewTrue()))
	}

	require.Greater(t, c.TotalBytes(), 64)
	require.Equal(t, 70, c.Count())

	for i := 0; i < 70; i++ {
		v, err := c.Index(i)
		require.NoError(t, err)
		require.Equal(t, format.KindTrue, v.Kind)
	}
}
