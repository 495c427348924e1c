package sorted

import (
	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
)

// InsertSorted locates the insert position for target's key via Search and
// inserts record (which must have Arity entries, key first) there,
// preserving sort order, reporting whether a record with the same key
// already existed. If a record with the same key already exists the new one
// is inserted immediately before it; use InsertAfterDuplicates to append
// after every record sharing the key instead.
func (v *View) InsertSorted(record []format.Value, hint *Hint) (existed bool, err error) {
	if len(record) != v.arity {
		return false, errs.ErrBadArgument
	}

	key := record[:v.depth]

	index, existed, err := v.Search(key, hint)
	if err != nil {
		return false, err
	}

	return existed, v.c.Insert(index, record...)
}

// InsertAfterDuplicates is InsertSorted using HighestInsertPosition instead
// of Search, so a new record with a key matching existing records lands
// after all of them rather than before the match Search lands on.
func (v *View) InsertAfterDuplicates(record []format.Value, hint *Hint) error {
	if len(record) != v.arity {
		return errs.ErrBadArgument
	}

	key := record[:v.depth]

	index, err := v.HighestInsertPosition(key, hint)
	if err != nil {
		return err
	}

	return v.c.Insert(index, record...)
}
