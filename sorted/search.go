package sorted

import (
	"github.com/mattsta/flex/container"
	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
)

// View treats an underlying container as a sequence of fixed-arity logical
// records, ordered by a Comparator applied componentwise to the first Depth
// entries of each record (the "compare key"). Search, HighestInsertPosition
// and Find only read the container; InsertSorted, InsertAfterDuplicates,
// Insert and Delete mutate it through container.Insert and
// container.DeleteRange while keeping it sorted.
//
// Depth may be less than Arity: the remaining Arity-Depth entries of a
// record are payload, carried along but not compared. Duplicate compare
// keys are only meaningful when Depth == 1 — at greater depths records are
// expected to form a strict total order, since a Search that lands on a
// partial tie among several same-prefix records cannot tell which one the
// caller means.
type View struct {
	c     *container.Container
	arity int
	depth int
	cmp   Comparator
}

// NewView wraps c as a sorted-mode view with the given record arity and
// compare-key depth, using cmp to order compare-key components. cmp may be
// nil, in which case DefaultComparator is used.
func NewView(c *container.Container, arity, depth int, cmp Comparator) (*View, error) {
	if arity <= 0 || depth <= 0 || depth > arity {
		return nil, errs.ErrBadArgument
	}

	if cmp == nil {
		cmp = DefaultComparator
	}

	return &View{c: c, arity: arity, depth: depth, cmp: cmp}, nil
}

// Records returns the number of logical records currently in the
// container. The entry count must be an exact multiple of the record
// arity; otherwise the container was not built through this view.
func (v *View) Records() (int, error) {
	count := v.c.Count()
	if count%v.arity != 0 {
		return 0, errs.ErrCorrupt
	}

	return count / v.arity, nil
}

// keyAt reads the compare key of the recordIndex-th record.
func (v *View) keyAt(recordIndex int) ([]format.Value, error) {
	pos, err := v.c.EntryOffset(recordIndex * v.arity)
	if err != nil {
		return nil, err
	}

	key := make([]format.Value, v.depth)
	for i := 0; i < v.depth; i++ {
		val, next, err := v.c.Next(pos)
		if err != nil {
			return nil, err
		}
		key[i] = val
		pos = next
	}

	return key, nil
}

// compareKey compares a record's key against target componentwise,
// returning the sign of the first differing component (0 if all Depth
// components compare equal).
func (v *View) compareKey(key, target []format.Value) (int, error) {
	for i := 0; i < v.depth; i++ {
		c, err := v.cmp(key[i], target[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}

	return 0, nil
}

// Hint caches the record index of a previous probe so a subsequent Search
// for a nearby key can start from that record and bisect only a narrow
// range around it instead of the whole container. The zero Hint is a
// valid "no hint yet" starting point. Every Search/HighestInsertPosition
// call overwrites it with the record index it settles on (the match Search
// found, otherwise the insert position), so passing the same Hint into
// successive calls for keys
// clustered together keeps each call cheap without any extra bookkeeping
// from the caller.
type Hint struct {
	recordIndex int
	valid       bool
}

// Search locates target among the view's records. If found, index is the
// record's entry-index (i.e. recordIndex*Arity, ready to pass to
// container.Index/Replace/Delete) and ok is true. If not found, index is
// the entry-index a new record with this key would be inserted at to keep
// the container sorted, and ok is false.
func (v *View) Search(target []format.Value, hint *Hint) (index int, ok bool, err error) {
	if len(target) != v.depth {
		return 0, false, errs.ErrBadArgument
	}

	records, err := v.Records()
	if err != nil {
		return 0, false, err
	}

	lo, hi, err := v.boundsFromHint(records, target, hint, false)
	if err != nil {
		return 0, false, err
	}

	for lo < hi {
		mid := lo + (hi-lo)/2

		key, err := v.keyAt(mid)
		if err != nil {
			return 0, false, err
		}

		c, err := v.compareKey(key, target)
		if err != nil {
			return 0, false, err
		}

		if c == 0 {
			if hint != nil {
				*hint = Hint{recordIndex: mid, valid: true}
			}

			return mid * v.arity, true, nil
		}

		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if hint != nil {
		*hint = Hint{recordIndex: lo, valid: true}
	}

	return lo * v.arity, false, nil
}

// HighestInsertPosition returns the entry-index just past the last record
// whose key compares equal to target — the position a new record with
// this key should be inserted at to land after every existing record with
// the same key (stable append-on-duplicate ordering). When Depth == 1 and
// duplicate keys are expected, this is the operation to use instead of
// Search for maintaining insertion order among equal keys.
func (v *View) HighestInsertPosition(target []format.Value, hint *Hint) (int, error) {
	if len(target) != v.depth {
		return 0, errs.ErrBadArgument
	}

	records, err := v.Records()
	if err != nil {
		return 0, err
	}

	lo, hi, err := v.boundsFromHint(records, target, hint, true)
	if err != nil {
		return 0, err
	}

	for lo < hi {
		mid := lo + (hi-lo)/2

		key, err := v.keyAt(mid)
		if err != nil {
			return 0, err
		}

		c, err := v.compareKey(key, target)
		if err != nil {
			return 0, err
		}

		if c <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if hint != nil {
		*hint = Hint{recordIndex: lo, valid: true}
	}

	return lo * v.arity, nil
}

// boundsFromHint returns the [lo, hi) record-index range to bisect within.
// Without a usable hint this is the whole record range. With one, it
// walks outward from the hinted record one record at a time until target
// is known to fall inside [lo, hi), which is cheap when the hint is close
// to the answer; the walk's cost grows linearly with the distance from the
// hint. after selects HighestInsertPosition's ordering, where a record
// equal to target counts as lying before the answer.
func (v *View) boundsFromHint(records int, target []format.Value, hint *Hint, after bool) (int, int, error) {
	if hint == nil || !hint.valid || records == 0 {
		return 0, records, nil
	}

	mid := hint.recordIndex
	if mid < 0 {
		mid = 0
	}
	if mid > records-1 {
		mid = records - 1
	}

	key, err := v.keyAt(mid)
	if err != nil {
		return 0, records, nil
	}

	c, err := v.compareKey(key, target)
	if err != nil {
		return 0, records, nil
	}
	if after && c == 0 {
		c = -1
	}

	switch {
	case c == 0:
		return mid, mid + 1, nil
	case c < 0:
		lo, hi := mid, mid+1
		for hi < records {
			key, err := v.keyAt(hi)
			if err != nil {
				return 0, records, nil
			}
			c, err := v.compareKey(key, target)
			if err != nil {
				return 0, records, nil
			}
			if c > 0 || (c == 0 && !after) {
				break
			}
			lo = hi
			hi = min(records, hi+(hi-lo+1))
		}

		return lo, min(hi+1, records), nil
	default:
		lo, hi := 0, mid
		for lo < hi {
			probe := hi - 1
			key, err := v.keyAt(probe)
			if err != nil {
				return 0, records, nil
			}
			c, err := v.compareKey(key, target)
			if err != nil {
				return 0, records, nil
			}
			if c < 0 || (c == 0 && after) {
				break
			}
			hi = probe
			lo = max(0, hi-(mid-hi+1))
		}

		return lo, hi + 1, nil
	}
}
