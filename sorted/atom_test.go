package sorted

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattsta/flex/atom"
	"github.com/mattsta/flex/container"
	"github.com/mattsta/flex/format"
)

func TestComparatorWithAtoms_OrdersByResolvedBytes(t *testing.T) {
	table := atom.New()

	idApple, err := table.Intern([]byte("apple"))
	require.NoError(t, err)
	idBanana, err := table.Intern([]byte("banana"))
	require.NoError(t, err)

	cmp := ComparatorWithAtoms(table)

	c, err := cmp(format.NewInternedPointer(idApple), format.NewInternedPointer(idBanana))
	require.NoError(t, err)
	require.Negative(t, c)
}

func TestComparatorWithAtoms_SearchOverInternedKeys(t *testing.T) {
	table := atom.New()
	c := container.New()
	defer c.Free()

	words := []string{"mango", "apple", "cherry", "banana"}
	ids := make(map[string]uint64, len(words))
	for _, w := range words {
		id, err := table.Intern([]byte(w))
		require.NoError(t, err)
		ids[w] = id
	}

	view, err := NewView(c, 1, 1, ComparatorWithAtoms(table))
	require.NoError(t, err)

	var hint Hint
	sortedWords := []string{"apple", "banana", "cherry", "mango"}
	for _, w := range sortedWords {
		_, err := view.InsertSorted([]format.Value{format.NewInternedPointer(ids[w])}, &hint)
		require.NoError(t, err)
	}

	index, ok, err := view.Search([]format.Value{format.NewInternedPointer(ids["cherry"])}, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, index)
}
