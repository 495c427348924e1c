// Package section implements the container's fixed binary layout: the
// two-field header (total byte length, entry count) and the single-entry
// forward/reverse tag codec used by every mutation and traversal operation.
package section

// MinContainerLen is the smallest legal container: a 1-byte total_bytes
// field (value 2) and a 1-byte count field (value 0) — an empty container
// with no entries.
const MinContainerLen = 2

// maxHeaderResolveIterations bounds the header width fixed-point loop.
// The loop only grows total_bytes's width when the width
// itself pushes the value across its own boundary, which converges within
// one extra step in every observed case; this bound exists purely so a
// pathological future width table can never spin forever.
const maxHeaderResolveIterations = 8
