// Package flex provides a pointer-free, self-describing binary container
// for sequences of heterogeneous typed values.
//
// A container is a single contiguous byte buffer: a small header (total
// size, entry count) followed by a run of entries, each tagged at both
// ends so it can be read forward from the head or backward from the tail
// without an auxiliary index. On top of that layout the core package
// (container) provides append/insert/replace/delete/split/merge; sorted
// adds a binary-search overlay with a caller-held middle hint; compress
// wraps a container's byte image in an LZ4 block payload.
//
// # Basic usage
//
//	c := flex.New()
//	defer c.Free()
//
//	c.Append(format.NewInt(1), format.NewBytes([]byte("hello")), format.NewTrue())
//
//	v, _ := c.Head()
//	fmt.Println(v.Int) // 1
//
// Reading a buffer that arrived over the wire:
//
//	c, err := flex.FromBytes(buf)
//
// Compressing a container for storage or transport:
//
//	packed, err := flex.Compress(c)
//	c2, err := flex.Decompress(packed)
//
// # Package structure
//
// This file is a thin convenience layer re-exporting the most common
// entry points from container and compress. For sorted-mode
// views, containerset bundles, and the interned-string table, use those
// packages directly.
package flex

import (
	"github.com/mattsta/flex/compress"
	"github.com/mattsta/flex/container"
)

// New returns an empty container. Equivalent to container.New.
func New() *container.Container { return container.New() }

// FromBytes wraps an existing encoded buffer as a container, validating
// its header. Equivalent to container.FromBytes.
func FromBytes(buf []byte) (*container.Container, error) { return container.FromBytes(buf) }

// Merge concatenates a and b into a new container, leaving both inputs
// unchanged. Equivalent to container.Merge.
func Merge(a, b *container.Container) (*container.Container, error) { return container.Merge(a, b) }

// Compress converts c's byte image into the compressed wrapper form.
// Equivalent to compress.Compress.
func Compress(c *container.Container) ([]byte, error) { return compress.Compress(c) }

// Decompress reverses Compress. Equivalent to compress.Decompress.
func Decompress(buf []byte) (*container.Container, error) { return compress.Decompress(buf) }
