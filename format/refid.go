package format

import "github.com/mattsta/flex/internal/errs"

// Opaque external reference IDs pack into widths 1..8 bytes using a
// cumulative range: width w's raw payload (0..256^w-1) is offset by the
// total capacity of every narrower width, so each width's encodable range
// is disjoint from the others and widening by one byte always yields
// strictly more addressable IDs, not merely a shifted re-slice of the same
// range.
var refCumulativeBase [9]uint64 // index 1..8 used; refCumulativeBase[w] = base for width w

func init() {
	var base uint64
	for w := 1; w <= 8; w++ {
		refCumulativeBase[w] = base
		base += widthCapacity(w)
	}
}

// widthCapacity returns 256^w for w < 8. For w == 8 (where 256^8 overflows
// uint64) it returns 1<<63 as a placeholder; the capacity is only used to
// compute the next width's base, which is never read since width 8 is the
// last one.
func widthCapacity(w int) uint64 {
	if w >= 8 {
		return 1 << 63 // never consulted: width 8 is always the last band
	}

	return uint64(1) << uint(8*w)
}

// refIDWidth returns the minimal width in [1,8] that can hold id, and the
// raw value to store in that width (id with its width's cumulative base
// subtracted off).
func refIDWidth(id uint64) (width int, raw uint64) {
	for w := 1; w <= 7; w++ {
		if id < refCumulativeBase[w+1] {
			return w, id - refCumulativeBase[w]
		}
	}

	return 8, id - refCumulativeBase[8]
}

// refIDFromRaw reconstructs the logical id from a width and its stored raw
// value.
func refIDFromRaw(width int, raw uint64) (uint64, error) {
	if width < 1 || width > 8 {
		return 0, errs.ErrCorrupt
	}

	return refCumulativeBase[width] + raw, nil
}

// RefIDFromRaw is the exported form of refIDFromRaw, for the section
// package's entry decoder.
func RefIDFromRaw(width int, raw uint64) (uint64, error) { return refIDFromRaw(width, raw) }
