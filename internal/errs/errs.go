// Package errs defines the sentinel error values returned by the flex
// packages. Operations return one of these either bare or wrapped with
// call-site detail via fmt.Errorf("%w: ...", errs.ErrX, ...); errors.Is
// against the sentinel is the supported way to classify a failure.
package errs

import "errors"

var (
	// ErrAllocFailure is returned when the allocator refuses to grow or
	// shrink a buffer. The container is left unchanged.
	ErrAllocFailure = errors.New("alloc failure")

	// ErrEncodingOverflow is returned when a value cannot be represented by
	// any encoding in the type lattice (zero-length string without the
	// empty-bytes path, 128-bit magnitude out of range, a varint argument
	// outside [1, 2^64-1], or an exact-float-narrowing request that fails).
	ErrEncodingOverflow = errors.New("encoding overflow")

	// ErrCorrupt is returned while decoding when the buffer disagrees with
	// itself: total_bytes mismatch, count-walk mismatch, forward/reverse
	// tag mismatch, an unassigned tag value, or a failed LZ4 decompress.
	ErrCorrupt = errors.New("corrupt container")

	// ErrReservedTag is a Corrupt-kind error for tag bytes the type lattice
	// reserves but never produces (SAME, the compressed-container variants,
	// the decimal float placeholders).
	ErrReservedTag = errors.New("reserved tag")

	// ErrNotFound is returned by sorted-find or sorted-delete when the key
	// is absent.
	ErrNotFound = errors.New("not found")

	// ErrBadArgument is returned for a structurally invalid call: a
	// position that isn't a valid entry start, a delete past the end of
	// the container, or a position from a different container.
	ErrBadArgument = errors.New("bad argument")

	// ErrNotCompressible is returned by the compressed wrapper when the
	// uncompressed data region is below the minimum threshold, or when LZ4
	// itself declines to produce a smaller block.
	ErrNotCompressible = errors.New("not compressible")
)
