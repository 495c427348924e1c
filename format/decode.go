package format

import (
	"math"

	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/varint"
)

// DecodeFixed reconstructs a Value from a fixed-width tag (integer, float,
// pointer, or reference-id) and its payload. The caller (section package)
// is responsible for slicing the payload to the correct width and
// validating the reverse tag; this only interprets already-isolated bytes.
func DecodeFixed(tag Tag, payload []byte) (Value, error) {
	switch {
	case tag == TagPointer48 || tag == TagPointer64:
		return Value{Kind: KindInternedPointer, Tag: tag, Uint: varint.GetFixed(payload, len(payload))}, nil
	case tag >= TagRef8 && tag <= TagRef64:
		w, _ := RefWidthForTag(tag)
		raw := varint.GetFixed(payload, w)
		id, err := RefIDFromRaw(w, raw)
		if err != nil {
			return Value{}, err
		}

		return Value{Kind: KindRefID, Tag: tag, Uint: id}, nil
	case tag == TagBFloat16:
		return Value{Kind: KindFloat32, Tag: tag, Float32: BFloat16ToFloat32(uint16(varint.GetFixed(payload, 2)))}, nil
	case tag == TagFloat16:
		return Value{Kind: KindFloat32, Tag: tag, Float32: Float16ToFloat32(uint16(varint.GetFixed(payload, 2)))}, nil
	case tag == TagFloat32:
		return Value{Kind: KindFloat32, Tag: tag, Float32: math.Float32frombits(uint32(varint.GetFixed(payload, 4)))}, nil
	case tag == TagFloat64:
		return Value{Kind: KindFloat64, Tag: tag, Float64: math.Float64frombits(varint.GetFixed(payload, 8))}, nil
	case tag == TagInt96 || tag == TagUint96 || tag == TagInt128 || tag == TagUint128:
		return decode128(tag, payload)
	}

	if width, signed, ok := WidthForIntTag(tag); ok {
		raw := varint.GetFixed(payload, width)
		if !signed {
			v := Value{Kind: KindUint, Tag: tag, Uint: raw}
			if raw <= math.MaxInt64 {
				v.Int = int64(raw)
			}

			return v, nil
		}

		if raw > math.MaxInt64 {
			return Value{}, errs.ErrCorrupt
		}

		return Value{Kind: KindInt, Tag: tag, Int: -int64(raw) - 1}, nil
	}

	return Value{}, errs.ErrCorrupt
}

func decode128(tag Tag, payload []byte) (Value, error) {
	width := len(payload)

	mag, err := varint.GetFixed128(payload, width)
	if err != nil {
		return Value{}, err
	}

	switch tag {
	case TagUint96, TagUint128:
		return Value{Kind: KindUint128, Tag: tag, Magnitude128: mag}, nil
	default: // TagInt96, TagInt128: payload holds |v|-1
		orig := addOne(mag)
		return Value{Kind: KindInt128, Tag: tag, Int128Negative: true, Magnitude128: orig}, nil
	}
}

func addOne(u varint.Uint128) varint.Uint128 {
	if u.Lo == math.MaxUint64 {
		return varint.Uint128{Hi: u.Hi + 1, Lo: 0}
	}

	return varint.Uint128{Hi: u.Hi, Lo: u.Lo + 1}
}
