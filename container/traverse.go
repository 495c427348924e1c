package container

import (
	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/section"
)

// Head returns the first entry's value.
func (c *Container) Head() (format.Value, error) {
	h, err := c.header()
	if err != nil {
		return format.Value{}, err
	}

	if h.Count == 0 {
		return format.Value{}, errs.ErrNotFound
	}

	v, _, err := section.DecodeForward(c.buf[h.Len():])

	return v, err
}

// End returns the last entry's value.
func (c *Container) End() (format.Value, error) {
	h, err := c.header()
	if err != nil {
		return format.Value{}, err
	}

	if h.Count == 0 {
		return format.Value{}, errs.ErrNotFound
	}

	v, _, err := section.DecodeBackward(c.buf, len(c.buf))

	return v, err
}

// Next decodes the entry starting at byte offset pos and returns its
// value along with the offset of the following entry. Start a forward
// walk at h.Len() (the offset Head's entry begins at); ErrNotFound is
// returned once pos reaches the end of the buffer.
func (c *Container) Next(pos int) (format.Value, int, error) {
	if pos >= len(c.buf) {
		return format.Value{}, 0, errs.ErrNotFound
	}

	v, consumed, err := section.DecodeForward(c.buf[pos:])
	if err != nil {
		return format.Value{}, 0, err
	}

	return v, pos + consumed, nil
}

// Prev decodes the entry ending at byte offset pos (exclusive) and returns
// its value along with the offset of the preceding entry's end. Start a
// backward walk at len(c.buf); ErrNotFound is returned once pos reaches
// the start of the entries region.
func (c *Container) Prev(pos int) (format.Value, int, error) {
	h, err := c.header()
	if err != nil {
		return format.Value{}, 0, err
	}

	if pos <= h.Len() {
		return format.Value{}, 0, errs.ErrNotFound
	}

	v, start, err := section.DecodeBackward(c.buf, pos)
	if err != nil {
		return format.Value{}, 0, err
	}

	return v, start, nil
}

// Index returns the value at logical entry position i, walking from
// whichever end of the container is closer (the "tail-biased shortcut").
func (c *Container) Index(i int) (format.Value, error) {
	h, err := c.header()
	if err != nil {
		return format.Value{}, err
	}

	count := int(h.Count)
	if i < 0 || i >= count {
		return format.Value{}, errs.ErrNotFound
	}

	if i <= count/2 {
		pos := h.Len()
		v := format.Value{}
		for step := 0; step <= i; step++ {
			var consumed int
			v, consumed, err = section.DecodeForward(c.buf[pos:])
			if err != nil {
				return format.Value{}, err
			}
			pos += consumed
		}

		return v, nil
	}

	pos := len(c.buf)
	v := format.Value{}
	for step := count - 1; step >= i; step-- {
		var start int
		v, start, err = section.DecodeBackward(c.buf, pos)
		if err != nil {
			return format.Value{}, err
		}
		pos = start
	}

	return v, nil
}

// EntryOffset returns the byte offset of the index-th entry, or the byte
// offset just past the last entry when index == Count(). Exported for
// callers (e.g. the sorted overlay) that need to address entries by
// logical position without re-decoding from the head every time.
func (c *Container) EntryOffset(index int) (int, error) { return c.entryOffset(index) }

// entryOffset returns the byte offset of the index-th entry, or the byte
// offset just past the last entry when index == Count(). It walks from
// whichever end is closer, same as Index.
func (c *Container) entryOffset(index int) (int, error) {
	h, err := c.header()
	if err != nil {
		return 0, err
	}

	count := int(h.Count)
	if index < 0 || index > count {
		return 0, errs.ErrBadArgument
	}

	if index == count {
		return len(c.buf), nil
	}

	if index <= count/2 {
		pos := h.Len()
		for step := 0; step < index; step++ {
			_, consumed, err := section.DecodeForward(c.buf[pos:])
			if err != nil {
				return 0, err
			}
			pos += consumed
		}

		return pos, nil
	}

	pos := len(c.buf)
	for step := count - 1; step >= index; step-- {
		_, start, err := section.DecodeBackward(c.buf, pos)
		if err != nil {
			return 0, err
		}
		pos = start
	}

	return pos, nil
}
