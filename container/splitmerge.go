package container

import "github.com/mattsta/flex/internal/errs"

// Split divides c into two new, independent containers at logical entry
// position index: the first holds entries [0, index), the second holds
// [index, Count()). c itself is left unmodified.
func (c *Container) Split(index int) (left, right *Container, err error) {
	h, err := c.header()
	if err != nil {
		return nil, nil, err
	}

	count := int(h.Count)
	if index < 0 || index > count {
		return nil, nil, errs.ErrBadArgument
	}

	byteIdx, err := c.entryOffset(index)
	if err != nil {
		return nil, nil, err
	}

	entriesStart := h.Len()
	leftEntries := c.buf[entriesStart:byteIdx]
	rightEntries := c.buf[byteIdx:len(c.buf)]

	left, err = buildFromEntries(index, leftEntries)
	if err != nil {
		return nil, nil, err
	}

	right, err = buildFromEntries(count-index, rightEntries)
	if err != nil {
		left.Free()
		return nil, nil, err
	}

	return left, right, nil
}

// Merge concatenates a's entries followed by b's entries into a new
// container. Neither a nor b is modified or consumed.
func Merge(a, b *Container) (*Container, error) {
	ha, err := a.header()
	if err != nil {
		return nil, err
	}

	hb, err := b.header()
	if err != nil {
		return nil, err
	}

	aEntries := a.buf[ha.Len():]
	bEntries := b.buf[hb.Len():]

	return buildFromEntries(int(ha.Count+hb.Count), aEntries, bEntries)
}
