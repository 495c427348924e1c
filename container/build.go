package container

import (
	"github.com/mattsta/flex/internal/pool"
	"github.com/mattsta/flex/section"
)

// buildFromEntries assembles a new, independently-owned container from
// already-encoded entry byte runs (no re-encoding of individual values).
func buildFromEntries(count int, parts ...[]byte) (*Container, error) {
	entriesLen := 0
	for _, p := range parts {
		entriesLen += len(p)
	}

	h, err := section.ResolveHeader(entriesLen, uint64(count))
	if err != nil {
		return nil, err
	}

	bb := pool.GetBlobBuffer()
	bb.Reset()
	bb.ExtendOrGrow(int(h.TotalBytes))
	dst := bb.Bytes()

	if err := section.EncodeHeader(dst[:h.Len()], h); err != nil {
		pool.PutBlobBuffer(bb)
		return nil, err
	}

	pos := h.Len()
	for _, p := range parts {
		pos += copy(dst[pos:], p)
	}

	return &Container{buf: dst, owned: true}, nil
}
