package varint

import (
	"github.com/mattsta/flex/endian"
	"github.com/mattsta/flex/internal/errs"
)

// External fixed-width encoding: w raw little-endian bytes of an unsigned
// value. Truncation/sign-extension is the caller's responsibility; this
// package only moves bytes. Widths up to 8 bytes are handled with a plain
// uint64; 96-bit and 128-bit payloads use Uint128.

// littleEndian is used for the full-8-byte fast path (PutUint64/Uint64 only
// accept exactly 8 bytes); narrower widths fall back to the manual
// byte-at-a-time loop below since the wire format allows 1-7 byte payloads
// that encoding/binary has no direct entry point for.
var littleEndian = endian.GetLittleEndianEngine()

// PutFixed writes the low w bytes of v to dst in little-endian order.
// w must be in [1, 8].
func PutFixed(dst []byte, v uint64, w int) {
	if w == 8 {
		littleEndian.PutUint64(dst[:8], v)
		return
	}

	putLittleEndian(dst[:w], v)
}

// GetFixed reads w little-endian bytes from src as an unsigned integer.
// w must be in [1, 8].
func GetFixed(src []byte, w int) uint64 {
	if w == 8 {
		return littleEndian.Uint64(src[:8])
	}

	return getLittleEndian(src[:w])
}

// Uint128 is a 128-bit unsigned magnitude split into high and low 64-bit
// halves, Lo holding bits [0,64) and Hi holding bits [64,128).
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// IsUint64 reports whether the value fits in the low 64 bits.
func (u Uint128) IsUint64() bool { return u.Hi == 0 }

// PutFixed128 writes the low w bytes (w in [9,16]) of u to dst in
// little-endian order.
func PutFixed128(dst []byte, u Uint128, w int) error {
	if w < 9 || w > 16 {
		return errs.ErrEncodingOverflow
	}

	littleEndian.PutUint64(dst[:8], u.Lo)
	if w == 16 {
		littleEndian.PutUint64(dst[8:16], u.Hi)
	} else {
		putLittleEndian(dst[8:w], u.Hi)
	}

	return nil
}

// GetFixed128 reads w little-endian bytes (w in [9,16]) from src as a
// Uint128.
func GetFixed128(src []byte, w int) (Uint128, error) {
	if w < 9 || w > 16 {
		return Uint128{}, errs.ErrEncodingOverflow
	}

	hi := getLittleEndian(src[8:w])
	if w == 16 {
		hi = littleEndian.Uint64(src[8:16])
	}

	return Uint128{
		Lo: littleEndian.Uint64(src[:8]),
		Hi: hi,
	}, nil
}
