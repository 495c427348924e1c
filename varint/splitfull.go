package varint

import "github.com/mattsta/flex/internal/errs"

// Split-full-no-zero varint.
//
// Encodes n in [1, 2^64-1] in 1-9 bytes. The leading byte b0 both selects
// the width and, for width 2, contributes high-order value bits; for wider
// widths it is a pure width selector and the trailing bytes hold the value
// directly as a little-endian integer. Per-width cumulative maxes (the
// largest n representable using that width or any narrower one) are fixed
// and published here; encode and decode both consult the same table so an
// insert's pre-computed size always matches the bytes actually written.
//
//	width 1: b0 in [1, 64]            -> n = b0                     (MAX_1 = 64)
//	width 2: b0 in [65, 128]          -> n = 65 + (b0-65)*256 + e1   (MAX_2 = 16448)
//	width 3: b0 = 129, 2 trailing LE bytes                          (MAX_3 = 2^16-1)
//	width 4: b0 = 130, 3 trailing LE bytes                          (MAX_4 = 2^24-1)
//	width 5: b0 = 131, 4 trailing LE bytes                          (MAX_5 = 2^32-1)
//	width 6: b0 = 132, 5 trailing LE bytes                          (MAX_6 = 2^40-1)
//	width 7: b0 = 133, 6 trailing LE bytes                          (MAX_7 = 2^48-1)
//	width 8: b0 = 134, 7 trailing LE bytes                          (MAX_8 = 2^56-1)
//	width 9: b0 = 135, 8 trailing LE bytes                          (MAX_9 = 2^64-1)
const (
	splitMax1 = 64
	splitMax2 = splitMax1 + 64*256 // 16448

	splitBand2Lo = splitMax1 + 1 // 65
	splitBand2Hi = splitBand2Lo + 63

	splitTag3 = splitBand2Hi + 1 // 129
	splitTag4 = splitTag3 + 1
	splitTag5 = splitTag4 + 1
	splitTag6 = splitTag5 + 1
	splitTag7 = splitTag6 + 1
	splitTag8 = splitTag7 + 1
	splitTag9 = splitTag8 + 1
)

// SplitFullNoZeroMaxWidth is the largest byte width the scheme ever
// produces (a 1-byte width tag plus a full 8-byte little-endian payload),
// useful for callers sizing a worst-case buffer before encoding.
const SplitFullNoZeroMaxWidth = 9

// splitAbsTagWidth gives, in order, the exclusive-width payload size (total
// bytes including b0) for the absolute-value tags 3..9.
var splitAbsTagWidth = map[byte]int{
	splitTag3: 3,
	splitTag4: 4,
	splitTag5: 5,
	splitTag6: 6,
	splitTag7: 7,
	splitTag8: 8,
	splitTag9: 9,
}

var splitAbsWidthTag = map[int]byte{
	3: splitTag3,
	4: splitTag4,
	5: splitTag5,
	6: splitTag6,
	7: splitTag7,
	8: splitTag8,
	9: splitTag9,
}

// SplitFullNoZeroSize returns the number of bytes needed to encode n, or
// ErrEncodingOverflow if n is 0 (unrepresentable by this scheme).
func SplitFullNoZeroSize(n uint64) (int, error) {
	switch {
	case n == 0:
		return 0, errs.ErrEncodingOverflow
	case n <= splitMax1:
		return 1, nil
	case n <= splitMax2:
		return 2, nil
	case n <= 1<<16-1:
		return 3, nil
	case n <= 1<<24-1:
		return 4, nil
	case n <= 1<<32-1:
		return 5, nil
	case n <= 1<<40-1:
		return 6, nil
	case n <= 1<<48-1:
		return 7, nil
	case n <= 1<<56-1:
		return 8, nil
	default:
		return 9, nil
	}
}

// PutSplitFullNoZero writes the forward encoding of n into dst and returns
// the number of bytes written. dst must have room for at least
// SplitFullNoZeroSize(n) bytes.
func PutSplitFullNoZero(dst []byte, n uint64) (int, error) {
	w, err := SplitFullNoZeroSize(n)
	if err != nil {
		return 0, err
	}

	switch w {
	case 1:
		dst[0] = byte(n)
	case 2:
		rel := n - splitBand2Lo
		dst[0] = byte(splitBand2Lo + rel/256)
		dst[1] = byte(rel % 256)
	default:
		dst[0] = splitAbsWidthTag[w]
		putLittleEndian(dst[1:w], n)
	}

	return w, nil
}

// PutSplitFullNoZeroReversed writes the same logical value as
// PutSplitFullNoZero but with its bytes stored in physically reversed
// order, so that GetSplitFullNoZeroReverse can decode it from the tail.
func PutSplitFullNoZeroReversed(dst []byte, n uint64) (int, error) {
	var tmp [9]byte
	w, err := PutSplitFullNoZero(tmp[:], n)
	if err != nil {
		return 0, err
	}

	for i := range w {
		dst[i] = tmp[w-1-i]
	}

	return w, nil
}

// splitWidthFromTag returns the total encoded width implied by a leading
// byte value, or 0 if the byte is not a valid split-full-no-zero leading
// byte.
func splitWidthFromTag(b0 byte) int {
	switch {
	case b0 >= 1 && b0 <= splitMax1:
		return 1
	case b0 >= splitBand2Lo && b0 <= splitBand2Hi:
		return 2
	default:
		return splitAbsTagWidth[b0]
	}
}

// GetSplitFullNoZero decodes a forward-encoded split-full-no-zero varint
// starting at src[0]. It returns the decoded value and the number of bytes
// consumed.
func GetSplitFullNoZero(src []byte) (uint64, int, error) {
	if len(src) == 0 {
		return 0, 0, errs.ErrCorrupt
	}

	w := splitWidthFromTag(src[0])
	if w == 0 {
		return 0, 0, errs.ErrCorrupt
	}
	if len(src) < w {
		return 0, 0, errs.ErrCorrupt
	}

	switch w {
	case 1:
		return uint64(src[0]), 1, nil
	case 2:
		rel := uint64(src[0]-splitBand2Lo)*256 + uint64(src[1])
		return splitBand2Lo + rel, 2, nil
	default:
		return getLittleEndian(src[1:w]), w, nil
	}
}

// GetSplitFullNoZeroReverse decodes a reverse-encoded split-full-no-zero
// varint whose bytes occupy src[end-w:end] for the width w implied by the
// tag byte at src[end-1]. It returns the decoded value and w.
func GetSplitFullNoZeroReverse(src []byte, end int) (uint64, int, error) {
	if end < 1 || end > len(src) {
		return 0, 0, errs.ErrCorrupt
	}

	b0 := src[end-1]
	w := splitWidthFromTag(b0)
	if w == 0 {
		return 0, 0, errs.ErrCorrupt
	}
	if end-w < 0 {
		return 0, 0, errs.ErrCorrupt
	}

	// Re-assemble the forward byte layout: forward[i] sits at src[end-1-i].
	var fwd [9]byte
	for i := range w {
		fwd[i] = src[end-1-i]
	}

	switch w {
	case 1:
		return uint64(fwd[0]), 1, nil
	case 2:
		rel := uint64(fwd[0]-splitBand2Lo)*256 + uint64(fwd[1])
		return splitBand2Lo + rel, 2, nil
	default:
		return getLittleEndian(fwd[1:w]), w, nil
	}
}

func putLittleEndian(dst []byte, v uint64) {
	for i := range dst {
		dst[i] = byte(v)
		v >>= 8
	}
}

func getLittleEndian(src []byte) uint64 {
	var v uint64
	for i := len(src) - 1; i >= 0; i-- {
		v = v<<8 | uint64(src[i])
	}

	return v
}
