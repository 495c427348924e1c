package varint

import "github.com/mattsta/flex/internal/errs"

// Tagged varint: a classic leading-byte width tag encoding 0..2^64-1. Used
// only for the container's element-count header field. Unlike
// split-full-no-zero it is not reversible and it can represent zero.
//
//	b0 in [0, 247]   -> value = b0                     (direct, width 1)
//	b0 in [248, 255] -> k = b0-247 trailing LE bytes    (width 1+k, k in [1,8])
const taggedDirectMax = 247

// TaggedSize returns the number of bytes needed to encode n.
func TaggedSize(n uint64) int {
	if n <= taggedDirectMax {
		return 1
	}

	return 1 + minLittleEndianBytes(n)
}

// PutTagged writes the tagged-varint encoding of n into dst and returns the
// number of bytes written.
func PutTagged(dst []byte, n uint64) int {
	if n <= taggedDirectMax {
		dst[0] = byte(n)
		return 1
	}

	k := minLittleEndianBytes(n)
	dst[0] = byte(taggedDirectMax + k)
	putLittleEndian(dst[1:1+k], n)

	return 1 + k
}

// GetTagged decodes a tagged varint starting at src[0], returning the value
// and the number of bytes consumed.
func GetTagged(src []byte) (uint64, int, error) {
	if len(src) == 0 {
		return 0, 0, errs.ErrCorrupt
	}

	b0 := src[0]
	if b0 <= taggedDirectMax {
		return uint64(b0), 1, nil
	}

	k := int(b0) - taggedDirectMax
	if k < 1 || k > 8 || len(src) < 1+k {
		return 0, 0, errs.ErrCorrupt
	}

	return getLittleEndian(src[1 : 1+k]), 1 + k, nil
}

// minLittleEndianBytes returns the fewest bytes needed to hold n as a
// little-endian unsigned integer (at least 1).
func minLittleEndianBytes(n uint64) int {
	k := 1
	for n >= 1<<(8*k) && k < 8 {
		k++
	}

	return k
}
