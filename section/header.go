package section

import (
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/varint"
)

// Header is the resolved two-field container header: total_bytes (encoded
// with the reversible split-full-no-zero scheme) and count (encoded with
// the classic tagged scheme, since the count field is never read
// backwards).
type Header struct {
	TotalBytes uint64
	Count      uint64

	totalBytesWidth int
	countWidth      int
}

// Len returns the encoded header's byte width (TotalBytesWidth + CountWidth).
func (h Header) Len() int { return h.totalBytesWidth + h.countWidth }

// TotalBytesWidth and CountWidth expose the two fields' individual widths,
// needed by callers that must know where the count field starts.
func (h Header) TotalBytesWidth() int { return h.totalBytesWidth }
func (h Header) CountWidth() int      { return h.countWidth }

// ResolveHeader computes the header width for a container holding
// entriesLen bytes of entry data and count entries. total_bytes counts the
// whole container (header included), so the header's own width feeds back
// into the value it encodes; this is resolved with a bounded fixed-point
// loop, since growing total_bytes's width by one byte can in turn push the
// total bytes value past the next width boundary.
func ResolveHeader(entriesLen int, count uint64) (Header, error) {
	countWidth := varint.TaggedSize(count)

	width := 1
	for iter := 0; iter < maxHeaderResolveIterations; iter++ {
		total := uint64(entriesLen + countWidth + width)

		needed, err := varint.SplitFullNoZeroSize(total)
		if err != nil {
			return Header{}, err
		}

		if needed == width {
			return Header{
				TotalBytes:      total,
				Count:           count,
				totalBytesWidth: width,
				countWidth:      countWidth,
			}, nil
		}

		width = needed
	}

	return Header{}, errs.ErrEncodingOverflow
}

// EncodeHeader writes h into dst, which must have room for h.Len() bytes.
func EncodeHeader(dst []byte, h Header) error {
	if len(dst) < h.Len() {
		return errs.ErrBadArgument
	}

	if _, err := varint.PutSplitFullNoZero(dst[:h.totalBytesWidth], h.TotalBytes); err != nil {
		return err
	}

	varint.PutTagged(dst[h.totalBytesWidth:h.Len()], h.Count)

	return nil
}

// DecodeHeader reads a header from the front of src.
func DecodeHeader(src []byte) (Header, error) {
	totalBytes, tw, err := varint.GetSplitFullNoZero(src)
	if err != nil {
		return Header{}, err
	}

	if tw >= len(src) {
		return Header{}, errs.ErrCorrupt
	}

	count, cw, err := varint.GetTagged(src[tw:])
	if err != nil {
		return Header{}, err
	}

	if totalBytes < uint64(tw+cw) || totalBytes > uint64(len(src)) {
		return Header{}, errs.ErrCorrupt
	}

	return Header{TotalBytes: totalBytes, Count: count, totalBytesWidth: tw, countWidth: cw}, nil
}
