package section

import (
	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/varint"
)

// EntrySize returns the number of bytes v will occupy as an entry. It
// calls the same Resolve the encoder uses, so an insert's pre-allocated
// room always matches what EncodeEntry actually writes.
func EntrySize(v format.Value) (int, error) {
	r, err := format.Resolve(v)
	if err != nil {
		return 0, err
	}

	return r.Len(), nil
}

// EncodeEntry writes v's entry (forward tag, payload, reverse tag) into
// dst, which must have room for EntrySize(v) bytes. It returns the number
// of bytes written.
func EncodeEntry(dst []byte, v format.Value) (int, error) {
	r, err := format.Resolve(v)
	if err != nil {
		return 0, err
	}

	n := copy(dst, r.ForwardTag)
	n += copy(dst[n:], r.Payload)
	n += copy(dst[n:], r.ReverseTag)

	return n, nil
}

// DecodeForward decodes the entry starting at src[0]. It returns the
// decoded value and the number of bytes consumed.
func DecodeForward(src []byte) (format.Value, int, error) {
	if len(src) == 0 {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	tag := src[0]

	if format.IsReserved(tag) {
		return format.Value{}, 0, errs.ErrReservedTag
	}

	if format.IsImmediate(tag) {
		return decodeImmediate(tag), 1, nil
	}

	switch {
	case tag >= 1 && tag <= 135: // byte-string length (inline or continuation)
		return decodeStringForward(src, tag)
	case tag >= format.TagMap && tag <= format.TagTuple:
		return decodeContainerForward(src)
	default:
		if width, _, ok := format.WidthForIntTag(tag); ok {
			return decodeFixedForward(src, tag, width)
		}
		if w, ok := format.RefWidthForTag(tag); ok {
			return decodeFixedForward(src, tag, w)
		}
		if w, ok := floatWidth(tag); ok {
			return decodeFixedForward(src, tag, w)
		}
		if tag == format.TagPointer48 {
			return decodeFixedForward(src, tag, 6)
		}
		if tag == format.TagPointer64 {
			return decodeFixedForward(src, tag, 8)
		}
		if tag == format.TagInt96 || tag == format.TagUint96 {
			return decodeFixedForward(src, tag, 12)
		}
		if tag == format.TagInt128 || tag == format.TagUint128 {
			return decodeFixedForward(src, tag, 16)
		}

		return format.Value{}, 0, errs.ErrCorrupt
	}
}

func floatWidth(tag format.Tag) (int, bool) {
	switch tag {
	case format.TagBFloat16, format.TagFloat16:
		return 2, true
	case format.TagFloat32:
		return 4, true
	case format.TagFloat64:
		return 8, true
	default:
		return 0, false
	}
}

func decodeImmediate(tag format.Tag) format.Value {
	switch tag {
	case format.True:
		return format.NewTrue()
	case format.False:
		return format.NewFalse()
	case format.Null:
		return format.NewNull()
	default: // format.EmptyBytes
		return format.NewBytes(nil)
	}
}

func decodeFixedForward(src []byte, tag format.Tag, width int) (format.Value, int, error) {
	total := 1 + width + 1
	if len(src) < total {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	if src[1+width] != tag {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	v, err := format.DecodeFixed(tag, src[1:1+width])
	if err != nil {
		return format.Value{}, 0, err
	}

	return v, total, nil
}

func decodeStringForward(src []byte, tag format.Tag) (format.Value, int, error) {
	n, w, err := varint.GetSplitFullNoZero(src)
	if err != nil {
		return format.Value{}, 0, err
	}

	total := w + int(n) + w
	if len(src) < total {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	payload := src[w : w+int(n)]

	revVal, revW, err := varint.GetSplitFullNoZeroReverse(src, total)
	if err != nil {
		return format.Value{}, 0, err
	}
	if revW != w || revVal != n {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	return format.NewBytes(payload), total, nil
}

func decodeContainerForward(src []byte) (format.Value, int, error) {
	kind, ok := format.ContainerKindForTag(src[0])
	if !ok {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	if len(src) < 2 {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	n, lw, err := varint.GetSplitFullNoZero(src[1:])
	if err != nil {
		return format.Value{}, 0, err
	}

	fwdTagLen := 1 + lw
	total := fwdTagLen + int(n) + fwdTagLen
	if len(src) < total {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	payload := src[fwdTagLen : fwdTagLen+int(n)]

	if src[total-1] != src[0] {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	revVal, revW, err := varint.GetSplitFullNoZeroReverse(src, total-1)
	if err != nil {
		return format.Value{}, 0, err
	}
	if revW != lw || revVal != n {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	return format.NewContainer(kind, payload), total, nil
}

// DecodeBackward decodes the entry ending at src[end-1] (inclusive). It
// returns the decoded value and the index where the entry begins.
func DecodeBackward(src []byte, end int) (format.Value, int, error) {
	if end < 1 || end > len(src) {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	tag := src[end-1]

	if format.IsReserved(tag) {
		return format.Value{}, 0, errs.ErrReservedTag
	}

	if format.IsImmediate(tag) {
		return decodeImmediate(tag), end - 1, nil
	}

	switch {
	case tag >= 1 && tag <= 135:
		return decodeStringBackward(src, end)
	case tag >= format.TagMap && tag <= format.TagTuple:
		return decodeContainerBackward(src, end, tag)
	default:
		if width, _, ok := format.WidthForIntTag(tag); ok {
			return decodeFixedBackward(src, end, tag, width)
		}
		if w, ok := format.RefWidthForTag(tag); ok {
			return decodeFixedBackward(src, end, tag, w)
		}
		if w, ok := floatWidth(tag); ok {
			return decodeFixedBackward(src, end, tag, w)
		}
		if tag == format.TagPointer48 {
			return decodeFixedBackward(src, end, tag, 6)
		}
		if tag == format.TagPointer64 {
			return decodeFixedBackward(src, end, tag, 8)
		}
		if tag == format.TagInt96 || tag == format.TagUint96 {
			return decodeFixedBackward(src, end, tag, 12)
		}
		if tag == format.TagInt128 || tag == format.TagUint128 {
			return decodeFixedBackward(src, end, tag, 16)
		}

		return format.Value{}, 0, errs.ErrCorrupt
	}
}

func decodeFixedBackward(src []byte, end int, tag format.Tag, width int) (format.Value, int, error) {
	total := 1 + width + 1
	start := end - total
	if start < 0 {
		return format.Value{}, 0, errs.ErrCorrupt
	}
	if src[start] != tag {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	v, err := format.DecodeFixed(tag, src[start+1:start+1+width])
	if err != nil {
		return format.Value{}, 0, err
	}

	return v, start, nil
}

func decodeStringBackward(src []byte, end int) (format.Value, int, error) {
	n, w, err := varint.GetSplitFullNoZeroReverse(src, end)
	if err != nil {
		return format.Value{}, 0, err
	}

	total := w + int(n) + w
	start := end - total
	if start < 0 {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	fwdVal, fwdW, err := varint.GetSplitFullNoZero(src[start:])
	if err != nil {
		return format.Value{}, 0, err
	}
	if fwdW != w || fwdVal != n {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	payload := src[start+w : start+w+int(n)]

	return format.NewBytes(payload), start, nil
}

func decodeContainerBackward(src []byte, end int, tag format.Tag) (format.Value, int, error) {
	kind, ok := format.ContainerKindForTag(tag)
	if !ok {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	if end < 2 {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	n, lw, err := varint.GetSplitFullNoZeroReverse(src, end-1)
	if err != nil {
		return format.Value{}, 0, err
	}

	fwdTagLen := 1 + lw
	total := fwdTagLen + int(n) + fwdTagLen
	start := end - total
	if start < 0 {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	payload := src[start+fwdTagLen : start+fwdTagLen+int(n)]

	if src[start] != tag {
		return format.Value{}, 0, errs.ErrCorrupt
	}

	return format.NewContainer(kind, payload), start, nil
}
