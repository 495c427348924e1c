// Package containerset bundles several named containers together with a
// single pluggable compression codec (none, lz4, s2, or zstd) applied to
// each container's byte image independently. It composes the container
// package rather than extending its wire format: a set's own encoding is a
// simple name-indexed envelope around already-encoded container buffers.
package containerset
