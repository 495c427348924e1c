package format

import (
	"math"

	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/varint"
)

// Resolved is the fully determined on-wire shape of a Value: the forward
// tag bytes (as written left to right), the reverse tag bytes (as written
// left to right, but representing the same logical tag walked from the
// entry's tail), and the payload bytes in between. Size estimation and
// actual encoding both call Resolve so they can never disagree about an
// entry's width: the same pure, deterministic function backs both
// size-estimation and the actual write.
type Resolved struct {
	ForwardTag []byte
	ReverseTag []byte
	Payload    []byte
}

// Len is the total entry size: len(ForwardTag) + len(Payload) + len(ReverseTag).
func (r Resolved) Len() int { return len(r.ForwardTag) + len(r.Payload) + len(r.ReverseTag) }

// Resolve computes the minimum-width wire encoding for v.
func Resolve(v Value) (Resolved, error) {
	switch v.Kind {
	case KindTrue:
		return immediate(True), nil
	case KindFalse:
		return immediate(False), nil
	case KindNull:
		return immediate(Null), nil
	case KindBytes:
		if len(v.Bytes) == 0 {
			return immediate(EmptyBytes), nil
		}

		return resolveString(v.Bytes)
	case KindBytesVoid:
		if v.VoidLen == 0 {
			return immediate(EmptyBytes), nil
		}

		return resolveString(make([]byte, v.VoidLen))
	case KindInt:
		return resolveSignedInt(v.Int)
	case KindUint:
		return resolveUnsignedInt(v.Uint)
	case KindInt128:
		return resolveSigned128(v.Int128Negative, v.Magnitude128)
	case KindUint128:
		return resolveUnsigned128(v.Magnitude128)
	case KindFloat32:
		return resolveFloat32(v.Float32)
	case KindFloat64:
		return resolveFloat64(v.Float64)
	case KindPointer:
		return fixedWidthEntry(TagUint64, v.Uint, 8), nil
	case KindInternedPointer:
		return resolvePointer(v.Uint), nil
	case KindRefID:
		return resolveRefID(v.Uint), nil
	case KindContainer:
		return resolveContainer(v.ContainerKind, v.Bytes)
	default:
		return Resolved{}, errs.ErrBadArgument
	}
}

func immediate(tag Tag) Resolved {
	return Resolved{ForwardTag: []byte{tag}}
}

// fixedWidthEntry builds a fixed-width entry: single forward tag byte,
// little-endian payload, and an identical single reverse tag byte.
func fixedWidthEntry(tag Tag, v uint64, width int) Resolved {
	payload := make([]byte, width)
	varint.PutFixed(payload, v, width)

	return Resolved{ForwardTag: []byte{tag}, Payload: payload, ReverseTag: []byte{tag}}
}

func resolveString(b []byte) (Resolved, error) {
	n := uint64(len(b))

	fwdLen, err := varint.SplitFullNoZeroSize(n)
	if err != nil {
		return Resolved{}, err
	}

	fwd := make([]byte, fwdLen)
	if _, err := varint.PutSplitFullNoZero(fwd, n); err != nil {
		return Resolved{}, err
	}

	rev := make([]byte, fwdLen)
	if _, err := varint.PutSplitFullNoZeroReversed(rev, n); err != nil {
		return Resolved{}, err
	}

	return Resolved{ForwardTag: fwd, Payload: b, ReverseTag: rev}, nil
}

// minWidthFor returns the narrowest byte width in 1..8 that can hold u.
func minWidthFor(u uint64) int {
	for w := 1; w <= 8; w++ {
		if u < uint64(1)<<uint(8*w) || w == 8 {
			return w
		}
	}

	return 8
}

func resolveUnsignedInt(u uint64) (Resolved, error) {
	w := minWidthFor(u)

	return fixedWidthEntry(unsignedTagForWidth[w], u, w), nil
}

// resolveSignedInt applies the no-signed-zero offset (store |v|-1 so that
// negative numbers never collide with a signed-zero representation) before
// picking the narrowest width. Non-negative values take the unsigned path.
func resolveSignedInt(v int64) (Resolved, error) {
	if v >= 0 {
		return resolveUnsignedInt(uint64(v))
	}

	mag := uint64(-(v + 1)) // |v|-1, safe for v == math.MinInt64
	w := minWidthFor(mag)

	return fixedWidthEntry(unsignedTagForWidth[w]-1, mag, w), nil
}

func fitsIn64(u varint.Uint128) bool { return u.Hi == 0 }

// fitsIn96 reports whether u fits in 12 bytes (the Int96/Uint96 payload
// width): the high 32 bits of Hi are zero.
func fitsIn96(u varint.Uint128) bool { return u.Hi>>32 == 0 }

func resolveUnsigned128(u varint.Uint128) (Resolved, error) {
	if fitsIn64(u) {
		return resolveUnsignedInt(u.Lo)
	}

	if fitsIn96(u) {
		return fixed128Entry(TagUint96, u, 12), nil
	}

	return fixed128Entry(TagUint128, u, 16), nil
}

func resolveSigned128(negative bool, mag varint.Uint128) (Resolved, error) {
	offset := mag
	if negative {
		offset = subtractOne(mag)
	}

	if fitsIn64(offset) {
		return resolveSignedIntFromMagnitude(negative, offset.Lo)
	}

	tag96, tag128 := TagUint96, TagUint128
	if negative {
		tag96, tag128 = TagInt96, TagInt128
	}

	if fitsIn96(offset) {
		return fixed128Entry(tag96, offset, 12), nil
	}

	return fixed128Entry(tag128, offset, 16), nil
}

func resolveSignedIntFromMagnitude(negative bool, mag uint64) (Resolved, error) {
	if !negative {
		return resolveUnsignedInt(mag)
	}

	w := minWidthFor(mag)

	return fixedWidthEntry(unsignedTagForWidth[w]-1, mag, w), nil
}

// subtractOne subtracts one from a 128-bit magnitude, borrowing across the
// Lo/Hi boundary.
func subtractOne(u varint.Uint128) varint.Uint128 {
	if u.Lo == 0 {
		return varint.Uint128{Hi: u.Hi - 1, Lo: ^uint64(0)}
	}

	return varint.Uint128{Hi: u.Hi, Lo: u.Lo - 1}
}

func fixed128Entry(tag Tag, u varint.Uint128, width int) Resolved {
	payload := make([]byte, width)
	_ = varint.PutFixed128(payload, u, width)

	return Resolved{ForwardTag: []byte{tag}, Payload: payload, ReverseTag: []byte{tag}}
}

// resolveFloat32 narrows f through the half-precision formats when the
// narrowing loses no bits, per the cascade float64 -> float32 -> bfloat16
// or float16 -> the smallest that round-trips exactly.
func resolveFloat32(f float32) (Resolved, error) {
	if h := Float32ToFloat16(f); Float16ToFloat32(h) == f {
		return fixedWidthEntry(TagFloat16, uint64(h), 2), nil
	}

	if b := Float32ToBFloat16(f); BFloat16ToFloat32(b) == f {
		return fixedWidthEntry(TagBFloat16, uint64(b), 2), nil
	}

	bits := math.Float32bits(f)

	return fixedWidthEntry(TagFloat32, uint64(bits), 4), nil
}

func resolveFloat64(f float64) (Resolved, error) {
	if narrow := float32(f); float64(narrow) == f {
		return resolveFloat32(narrow)
	}

	bits := math.Float64bits(f)

	return fixedWidthEntry(TagFloat64, bits, 8), nil
}

// resolvePointer selects a 48-bit or 64-bit interned-string pointer width,
// whichever is narrowest while still holding id.
func resolvePointer(id uint64) Resolved {
	if id < uint64(1)<<48 {
		return fixedWidthEntry(TagPointer48, id, 6)
	}

	return fixedWidthEntry(TagPointer64, id, 8)
}

func resolveRefID(id uint64) Resolved {
	w, raw := refIDWidth(id)

	return fixedWidthEntry(refTagForWidth[w], raw, w)
}

// resolveContainer wraps a nested buffer image. Unlike the other variable
// width type (byte strings), the nested-container tag space allocates one
// byte per container kind rather than a length-encodable range, so the
// length has to ride alongside the kind byte: the forward tag is [kind
// byte, split-full-no-zero length...] and the reverse tag is that same
// byte sequence physically reversed, exactly like a byte string's tag.
// This keeps backward traversal O(1) without re-entering the nested
// buffer's own header: the outer reverse tag duplicates the nested
// buffer's length so a reverse walk never needs to parse the nested
// buffer itself.
func resolveContainer(kind ContainerKind, buf []byte) (Resolved, error) {
	n := uint64(len(buf))

	lenWidth, err := varint.SplitFullNoZeroSize(n)
	if err != nil {
		return Resolved{}, err
	}

	fwd := make([]byte, 1+lenWidth)
	fwd[0] = containerTagForKind[kind]
	if _, err := varint.PutSplitFullNoZero(fwd[1:], n); err != nil {
		return Resolved{}, err
	}

	rev := make([]byte, len(fwd))
	for i, b := range fwd {
		rev[len(fwd)-1-i] = b
	}

	return Resolved{ForwardTag: fwd, Payload: buf, ReverseTag: rev}, nil
}
