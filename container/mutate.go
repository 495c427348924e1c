package container

import (
	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/internal/pool"
	"github.com/mattsta/flex/section"
)

// Insert inserts values before the entry currently at index. index == Count()
// appends at the end. Insert (like Replace) rebuilds the container into a
// freshly borrowed pooled buffer: the old header's width and the new header's width
// can differ (crossing a total_bytes size boundary shifts every entry), so
// entries are always copied into their final position rather than shifted
// in place. Values whose byte payload aliases this container's own buffer
// (self-aliasing — e.g. re-inserting bytes just read from this same
// container) are detected and cloned before the old buffer is released.
func (c *Container) Insert(index int, values ...format.Value) error {
	if len(values) == 0 {
		return nil
	}

	h, err := c.header()
	if err != nil {
		return err
	}

	count := int(h.Count)
	if index < 0 || index > count {
		return errs.ErrBadArgument
	}

	safeValues := make([]format.Value, len(values))
	for i, v := range values {
		safeValues[i] = cloneValueIfAliased(c.buf, v)
	}

	splitOff, err := c.entryOffset(index)
	if err != nil {
		return err
	}

	entriesStart := h.Len()
	prefix := c.buf[entriesStart:splitOff]
	suffix := c.buf[splitOff:len(c.buf)]

	insertedLen := 0
	sizes := make([]int, len(safeValues))
	for i, v := range safeValues {
		n, err := section.EntrySize(v)
		if err != nil {
			return err
		}
		sizes[i] = n
		insertedLen += n
	}

	return c.rebuild(prefix, suffix, safeValues, sizes, insertedLen, count+len(values))
}

// Append is a convenience wrapper for Insert at the tail.
func (c *Container) Append(values ...format.Value) error {
	return c.Insert(c.Count(), values...)
}

// Replace overwrites the entry at index with v.
func (c *Container) Replace(index int, v format.Value) error {
	h, err := c.header()
	if err != nil {
		return err
	}

	count := int(h.Count)
	if index < 0 || index >= count {
		return errs.ErrBadArgument
	}

	safe := cloneValueIfAliased(c.buf, v)

	start, err := c.entryOffset(index)
	if err != nil {
		return err
	}

	end, err := c.entryOffset(index + 1)
	if err != nil {
		return err
	}

	entriesStart := h.Len()
	prefix := c.buf[entriesStart:start]
	suffix := c.buf[end:len(c.buf)]

	n, err := section.EntrySize(safe)
	if err != nil {
		return err
	}

	return c.rebuild(prefix, suffix, []format.Value{safe}, []int{n}, n, count)
}

// Delete removes the entry at index. drain controls whether the backing
// buffer is kept over-allocated afterward; see DeleteRange.
func (c *Container) Delete(index int, drain bool) error {
	return c.DeleteRange(index, index+1, drain)
}

// DeleteRange removes entries in [start, end). When drain is false, the
// result is copied into a freshly borrowed, exactly-sized pooled buffer and
// the old buffer is returned to the pool immediately, same as every other
// mutation. When drain is true and the old buffer's backing array is large
// enough to hold the (necessarily smaller) result, the removal compacts the
// entries in place on that same array instead of borrowing a new one, and
// the old buffer is not returned to the pool. That leaves the container
// over-allocated relative to its new total_bytes, but it means a caller
// doing repeated drained deletes reuses that same array across separate
// calls instead of paying a borrow-and-return on each one. A later Insert or
// Replace does not write into that spare capacity: it rebuilds into a
// freshly borrowed buffer and returns this one to the pool. Pass
// drain=false to get the exact-size buffer back immediately instead.
func (c *Container) DeleteRange(start, end int, drain bool) error {
	h, err := c.header()
	if err != nil {
		return err
	}

	count := int(h.Count)
	if start < 0 || end < start || end > count {
		return errs.ErrBadArgument
	}

	if start == end {
		return nil
	}

	byteStart, err := c.entryOffset(start)
	if err != nil {
		return err
	}

	byteEnd, err := c.entryOffset(end)
	if err != nil {
		return err
	}

	entriesStart := h.Len()
	prefix := c.buf[entriesStart:byteStart]
	suffix := c.buf[byteEnd:len(c.buf)]

	return c.rebuildDelete(prefix, suffix, count-(end-start), drain)
}

// rebuild assembles prefix + inserted-entries + suffix into a freshly
// borrowed pooled buffer sized to the exact new total, then swaps it in
// for c.buf, returning the old buffer to the pool.
func (c *Container) rebuild(prefix, suffix []byte, values []format.Value, sizes []int, insertedLen int, newCount int) error {
	entriesLen := len(prefix) + insertedLen + len(suffix)

	h, err := section.ResolveHeader(entriesLen, uint64(newCount))
	if err != nil {
		return err
	}

	total := int(h.TotalBytes)

	bb := pool.GetBlobBuffer()
	bb.Reset()
	bb.ExtendOrGrow(total)
	dst := bb.Bytes()

	if err := section.EncodeHeader(dst[:h.Len()], h); err != nil {
		pool.PutBlobBuffer(bb)
		return err
	}

	pos := h.Len()
	pos += copy(dst[pos:], prefix)

	for i, v := range values {
		n, err := section.EncodeEntry(dst[pos:pos+sizes[i]], v)
		if err != nil {
			pool.PutBlobBuffer(bb)
			return err
		}
		pos += n
	}

	pos += copy(dst[pos:], suffix)

	old, wasOwned := c.buf, c.owned
	c.buf = dst
	c.owned = true
	if wasOwned {
		pool.PutBlobBuffer(&pool.ByteBuffer{B: old})
	}

	return nil
}

// rebuildDelete assembles prefix+suffix (entries in the removed range
// already excluded) under a freshly resolved header for newCount. Unlike
// rebuild, it never grows the buffer, so when drain is true and the
// shrunk result still fits in the old owned buffer's capacity, it compacts
// in place instead of borrowing a new buffer from the pool. prefix and
// suffix are always shifted strictly left (or stay put) relative to their
// old offsets, so writing prefix before suffix into the same backing array
// never overwrites a byte before it has been read, even though both slices
// alias the buffer being written into.
func (c *Container) rebuildDelete(prefix, suffix []byte, newCount int, drain bool) error {
	entriesLen := len(prefix) + len(suffix)

	h, err := section.ResolveHeader(entriesLen, uint64(newCount))
	if err != nil {
		return err
	}

	total := int(h.TotalBytes)

	if drain && c.owned && total <= cap(c.buf) {
		dst := c.buf[:total]

		if err := section.EncodeHeader(dst[:h.Len()], h); err != nil {
			return err
		}

		pos := h.Len()
		pos += copy(dst[pos:], prefix)
		copy(dst[pos:], suffix)

		c.buf = dst

		return nil
	}

	bb := pool.GetBlobBuffer()
	bb.Reset()
	bb.ExtendOrGrow(total)
	dst := bb.Bytes()

	if err := section.EncodeHeader(dst[:h.Len()], h); err != nil {
		pool.PutBlobBuffer(bb)
		return err
	}

	pos := h.Len()
	pos += copy(dst[pos:], prefix)
	copy(dst[pos:], suffix)

	old, wasOwned := c.buf, c.owned
	c.buf = dst
	c.owned = true
	if wasOwned {
		pool.PutBlobBuffer(&pool.ByteBuffer{B: old})
	}

	return nil
}

// releaseRaw returns buf to the pool if c currently owns a pool-borrowed
// buffer (used by Free, before c.buf is cleared).
func (c *Container) releaseRaw(buf []byte) {
	if c.owned {
		pool.PutBlobBuffer(&pool.ByteBuffer{B: buf})
	}
}

func cloneValueIfAliased(buf []byte, v format.Value) format.Value {
	switch v.Kind {
	case format.KindBytes:
		v.Bytes = cloneIfAliased(buf, v.Bytes)
	case format.KindContainer:
		v.Bytes = cloneIfAliased(buf, v.Bytes)
	}

	return v
}
