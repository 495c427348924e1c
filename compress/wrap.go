package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/mattsta/flex/container"
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/section"
	"github.com/mattsta/flex/varint"
)

// MinCompressibleLen is the minimum uncompressed data-region size (header
// excluded) a container must have before Compress will attempt LZ4 at all.
const MinCompressibleLen = 64

// reservedLenWidth is the number of bytes Compress reserves up front for
// the compressed_payload_bytes field, the most common width in practice.
// Actual LZ4 output length is only known after compression runs, so the
// field is re-sized and the payload shifted by the delta if the reserved
// width guessed wrong.
const reservedLenWidth = 2

// compressorPool pools lz4.Compressor instances; the type carries internal
// hash-table state that is worth reusing across calls.
var compressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// Compress converts c's byte image into the compressed wrapper form. It
// fails with ErrNotCompressible when the data region (everything after the
// container's own header) is smaller than MinCompressibleLen, or when LZ4
// itself declines to produce a smaller block.
func Compress(c *container.Container) ([]byte, error) {
	data := c.Bytes()

	h, err := section.DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	prefix := data[:h.Len()]
	region := data[h.Len():]

	if len(region) < MinCompressibleLen {
		return nil, errs.ErrNotCompressible
	}

	bound := lz4.CompressBlockBound(len(region))
	buf := make([]byte, len(prefix)+varint.SplitFullNoZeroMaxWidth+bound)

	pos := copy(buf, prefix)
	reserved := pos
	pos += reservedLenWidth

	lc, _ := compressorPool.Get().(*lz4.Compressor)
	defer compressorPool.Put(lc)

	n, err := lc.CompressBlock(region, buf[pos:pos+bound])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrNotCompressible, err)
	}
	if n == 0 || n >= len(region) {
		return nil, errs.ErrNotCompressible
	}

	actualWidth, err := varint.SplitFullNoZeroSize(uint64(n))
	if err != nil {
		return nil, err
	}

	payloadStart := reserved + actualWidth
	if actualWidth != reservedLenWidth {
		copy(buf[payloadStart:payloadStart+n], buf[pos:pos+n])
	}

	if _, err := varint.PutSplitFullNoZero(buf[reserved:payloadStart], uint64(n)); err != nil {
		return nil, err
	}

	return buf[:payloadStart+n], nil
}

// Decompress reverses Compress: it reads the three-field header, allocates
// a buffer of the (uncompressed) total_bytes size, copies the header
// prefix, and LZ4-decompresses the payload into the rest.
func Decompress(buf []byte) (*container.Container, error) {
	totalBytes, tw, err := varint.GetSplitFullNoZero(buf)
	if err != nil {
		return nil, err
	}
	if tw >= len(buf) {
		return nil, errs.ErrCorrupt
	}

	_, cw, err := varint.GetTagged(buf[tw:])
	if err != nil {
		return nil, err
	}

	prefixLen := tw + cw
	if prefixLen >= len(buf) {
		return nil, errs.ErrCorrupt
	}

	compressedLen, lw, err := varint.GetSplitFullNoZero(buf[prefixLen:])
	if err != nil {
		return nil, err
	}

	payloadStart := prefixLen + lw
	payloadEnd := payloadStart + int(compressedLen)
	if payloadEnd > len(buf) {
		return nil, errs.ErrCorrupt
	}

	if totalBytes < uint64(prefixLen) {
		return nil, errs.ErrCorrupt
	}

	dst := make([]byte, totalBytes)
	copy(dst[:prefixLen], buf[:prefixLen])

	n, err := lz4.UncompressBlock(buf[payloadStart:payloadEnd], dst[prefixLen:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCorrupt, err)
	}
	if prefixLen+n != len(dst) {
		return nil, errs.ErrCorrupt
	}

	return container.FromBytes(dst)
}
