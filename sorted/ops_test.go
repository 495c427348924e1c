package sorted

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/container"
	"github.com/mattsta/flex/format"
)

func TestFind_IsSearch(t *testing.T) {
	_, view := buildSorted(t, []int64{1, 2, 3})

	index, ok, err := view.Find([]format.Value{format.NewInt(2)}, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, index)
}

func TestInsert_MiddleHintMatchesRecomputeFromScratch(t *testing.T) {
	c := container.New()
	defer c.Free()

	view, err := NewView(c, 2, 1, nil)
	require.NoError(t, err)

	var hint Hint
	for _, k := range []int64{5, 1, 9, 3, 7, 2, 8} {
		existed, err := view.Insert([]format.Value{format.NewInt(k), format.NewInt(k * 10)}, &hint)
		require.NoError(t, err)
		require.False(t, existed)

		records, err := view.Records()
		require.NoError(t, err)
		require.Equal(t, Hint{recordIndex: records / 2, valid: true}, hint)
	}
}

func TestDelete_RemovesRecordAndReportsFound(t *testing.T) {
	c, view := buildSorted(t, []int64{1, 2, 3, 4, 5})

	var hint Hint
	removed, err := view.Delete([]format.Value{format.NewInt(3)}, &hint, false)
	require.NoError(t, err)
	require.True(t, removed)

	records, err := view.Records()
	require.NoError(t, err)
	require.Equal(t, 4, records)
	require.Equal(t, Hint{recordIndex: records / 2, valid: true}, hint)

	_, ok, err := view.Search([]format.Value{format.NewInt(3)}, nil)
	require.NoError(t, err)
	require.False(t, ok)

	v, err := c.Index(0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int)
}

func TestDelete_MissingKeyIsNoOp(t *testing.T) {
	_, view := buildSorted(t, []int64{1, 2, 3})

	removed, err := view.Delete([]format.Value{format.NewInt(42)}, nil, false)
	require.NoError(t, err)
	require.False(t, removed)

	records, err := view.Records()
	require.NoError(t, err)
	require.Equal(t, 3, records)
}

func TestInsertFind_LiteralThreePairScenario(t *testing.T) {
	c := container.New()
	defer c.Free()

	view, err := NewView(c, 2, 1, nil)
	require.NoError(t, err)

	a, b, cKey := int64('a'), int64('b'), int64('c')

	var hint Hint
	_, err = view.Insert([]format.Value{format.NewInt(a), format.NewInt(1)}, &hint)
	require.NoError(t, err)
	_, err = view.Insert([]format.Value{format.NewInt(cKey), format.NewInt(3)}, &hint)
	require.NoError(t, err)
	_, err = view.Insert([]format.Value{format.NewInt(b), format.NewInt(2)}, &hint)
	require.NoError(t, err)

	var got []int64
	for i := 0; i < c.Count(); i++ {
		v, err := c.Index(i)
		require.NoError(t, err)
		got = append(got, v.Int)
	}
	require.Equal(t, []int64{a, 1, b, 2, cKey, 3}, got)

	index, ok, err := view.Find([]format.Value{format.NewInt(b)}, nil)
	require.NoError(t, err)
	require.True(t, ok)

	payload, err := c.Index(index + 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), payload.Int)
}

func TestDelete_EmptiesHintWhenContainerBecomesEmpty(t *testing.T) {
	c := container.New()
	defer c.Free()

	view, err := NewView(c, 2, 1, nil)
	require.NoError(t, err)

	var hint Hint
	_, err = view.Insert([]format.Value{format.NewInt(1), format.NewInt(10)}, &hint)
	require.NoError(t, err)

	removed, err := view.Delete([]format.Value{format.NewInt(1)}, &hint, false)
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, Hint{}, hint)
}
