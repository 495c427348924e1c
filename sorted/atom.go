package sorted

import (
	"bytes"

	"github.com/mattsta/flex/atom"
	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
)

// ComparatorWithAtoms returns a Comparator that additionally understands
// format.KindInternedPointer: both sides are resolved through table to the
// bytes they stand for and compared lexicographically. Any other pair of
// kinds falls back to DefaultComparator, so a View can mix interned-string
// keys with plain numeric or byte-string keys across its compare-key
// components.
func ComparatorWithAtoms(table *atom.Table) Comparator {
	return func(a, b format.Value) (int, error) {
		if a.Kind == format.KindInternedPointer && b.Kind == format.KindInternedPointer {
			ab, ok := table.Resolve(a.Uint)
			if !ok {
				return 0, errs.ErrNotFound
			}

			bb, ok := table.Resolve(b.Uint)
			if !ok {
				return 0, errs.ErrNotFound
			}

			return bytes.Compare(ab, bb), nil
		}

		return DefaultComparator(a, b)
	}
}
