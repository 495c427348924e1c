package sorted

import "github.com/mattsta/flex/format"

// Find locates the record whose key equals target. It is Search under the
// name the operation table uses elsewhere in this codebase.
func (v *View) Find(target []format.Value, hint *Hint) (index int, ok bool, err error) {
	return v.Search(target, hint)
}

// Insert inserts record (Arity entries, key first) in sorted position,
// always succeeding, and reports whether a record with the same key already
// existed. A key that already exists is left as a duplicate, inserted
// immediately before the match Search lands on, which is not necessarily
// the first of several equal records; use InsertAfterDuplicates to
// append after every matching record instead. hint is updated to the
// recomputed middle record after the insert completes.
func (v *View) Insert(record []format.Value, hint *Hint) (existed bool, err error) {
	existed, err = v.InsertSorted(record, hint)
	if err != nil {
		return false, err
	}

	return existed, v.resetHintToMiddle(hint)
}

// Delete removes one record whose key equals target (the one Search lands
// on, not necessarily the first of several equal records), if any,
// reporting whether a record was removed. hint is updated to the
// recomputed middle record after the delete completes. drain is forwarded
// to the underlying container delete: pass true when the caller expects
// more deletes or a re-insert soon after, so the freed space stays
// allocated instead of being returned to the pool immediately.
func (v *View) Delete(target []format.Value, hint *Hint, drain bool) (bool, error) {
	index, ok, err := v.Search(target, hint)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := v.c.DeleteRange(index, index+v.arity, drain); err != nil {
		return false, err
	}

	return true, v.resetHintToMiddle(hint)
}

// resetHintToMiddle sets hint to the record at floor(Records()/2), matching
// "the returned new middle hint equals the middle recomputed from scratch"
// after any mutation. Because records are addressed by logical index rather
// than byte offset, this recomputation is a single division rather than a
// walk from either end of the container.
func (v *View) resetHintToMiddle(hint *Hint) error {
	if hint == nil {
		return nil
	}

	records, err := v.Records()
	if err != nil {
		return err
	}

	if records == 0 {
		*hint = Hint{}
		return nil
	}

	*hint = Hint{recordIndex: records / 2, valid: true}

	return nil
}
