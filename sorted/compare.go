// Package sorted implements the sorted-mode overlay: a binary search and
// insert-position algorithm layered on top of an otherwise unordered
// container, keyed by the first few entries of each fixed-arity logical
// record. Its insert and delete operations mutate the container through
// container.Insert and container.DeleteRange, keeping it in sorted order.
package sorted

import (
	"bytes"

	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
)

// Comparator orders two same-position key components. It returns <0, 0, or
// >0 exactly like bytes.Compare / strings.Compare.
type Comparator func(a, b format.Value) (int, error)

// DefaultComparator compares values by their natural ordering: numeric
// kinds compare numerically (regardless of which numeric Kind either side
// decoded to), byte strings compare lexicographically, and booleans order
// false < true. Comparing across incompatible kinds (e.g. bytes vs int)
// is a BadArgument error.
func DefaultComparator(a, b format.Value) (int, error) {
	an, aIsNum, err := asFloat(a)
	if err != nil {
		return 0, err
	}
	bn, bIsNum, err := asFloat(b)
	if err != nil {
		return 0, err
	}

	if aIsNum && bIsNum {
		switch {
		case an < bn:
			return -1, nil
		case an > bn:
			return 1, nil
		default:
			return 0, nil
		}
	}

	if a.Kind == format.KindBytes && b.Kind == format.KindBytes {
		return bytes.Compare(a.Bytes, b.Bytes), nil
	}

	if isBool(a.Kind) && isBool(b.Kind) {
		av, bv := boolRank(a.Kind), boolRank(b.Kind)
		return av - bv, nil
	}

	return 0, errs.ErrBadArgument
}

func asFloat(v format.Value) (float64, bool, error) {
	switch v.Kind {
	case format.KindInt:
		return float64(v.Int), true, nil
	case format.KindUint:
		return float64(v.Uint), true, nil
	case format.KindFloat32:
		return float64(v.Float32), true, nil
	case format.KindFloat64:
		return v.Float64, true, nil
	default:
		return 0, false, nil
	}
}

func isBool(k format.Kind) bool { return k == format.KindTrue || k == format.KindFalse }

func boolRank(k format.Kind) int {
	if k == format.KindTrue {
		return 1
	}

	return 0
}
