// Package container implements the pointer-free, self-describing sequence
// container: a two-field header followed by a run of forward/reverse
// tagged entries. Every mutation re-resolves and rewrites the header and every
// traversal walks entries by their own tag widths, so the container never
// needs an auxiliary index.
package container

import (
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/internal/pool"
	"github.com/mattsta/flex/section"
)

// Container is a single pointer-free sequence: a contiguous byte buffer
// holding a header (total_bytes, count) followed by count entries. The
// zero value is not usable; use New or FromBytes.
type Container struct {
	buf []byte

	// owned marks whether buf belongs to the container (New, Duplicate, and
	// every subsequent mutation; all but Duplicate borrow it from the
	// package's byte buffer pool) versus handed in by a caller (FromBytes).
	// Only owned buffers are returned to the pool.
	owned bool
}

// New returns an empty container: the minimal two-byte header with zero
// entries.
func New() *Container {
	bb := pool.GetBlobBuffer()
	bb.Reset()
	bb.ExtendOrGrow(section.MinContainerLen)
	buf := bb.Bytes()
	buf[0] = section.MinContainerLen
	buf[1] = 0

	return &Container{buf: buf, owned: true}
}

// FromBytes wraps an existing encoded buffer as a Container, validating
// its header. The Container takes ownership of buf; callers that need to
// keep their own copy should pass a clone.
func FromBytes(buf []byte) (*Container, error) {
	if len(buf) < section.MinContainerLen {
		return nil, errs.ErrCorrupt
	}

	h, err := section.DecodeHeader(buf)
	if err != nil {
		return nil, err
	}

	if int(h.TotalBytes) != len(buf) {
		return nil, errs.ErrCorrupt
	}

	return &Container{buf: buf, owned: false}, nil
}

// Free returns the container's backing buffer to the pool, if it was
// pool-owned. The container must not be used after calling Free.
func (c *Container) Free() {
	c.releaseRaw(c.buf)
	c.buf = nil
}

// Bytes returns the container's encoded byte image. The returned slice
// aliases internal storage; callers that retain it across further
// mutations must clone it first.
func (c *Container) Bytes() []byte { return c.buf }

// TotalBytes returns the total size of the encoded container, header
// included.
func (c *Container) TotalBytes() int { return len(c.buf) }

// header decodes and returns the container's current header. It is cheap
// (no allocation beyond the small Header value) and is re-derived on every
// call rather than cached, since every mutation can change it.
func (c *Container) header() (section.Header, error) {
	return section.DecodeHeader(c.buf)
}

// Count returns the number of entries in the container.
func (c *Container) Count() int {
	h, err := c.header()
	if err != nil {
		return 0
	}

	return int(h.Count)
}

// Duplicate returns a deep copy of c. The copy shares no memory with the
// original, so mutating one never affects the other.
func (c *Container) Duplicate() *Container {
	cp := make([]byte, len(c.buf))
	copy(cp, c.buf)

	return &Container{buf: cp, owned: true}
}

// Fingerprint returns the xxHash64 digest of the container's encoded byte
// image. Two containers with identical contents and wire encoding always
// have the same fingerprint, but fingerprint equality is a hint, not a
// correctness proof — always resolve with Equal for anything load-bearing.
func (c *Container) Fingerprint() uint64 {
	return fingerprint(c.buf)
}

// Equal reports whether c and other encode to byte-identical buffers.
func (c *Container) Equal(other *Container) bool {
	if other == nil {
		return false
	}

	return string(c.buf) == string(other.buf)
}
