// Package compress implements the container's own compressed wrapper: the
// same total_bytes/count header prefix a container starts with, followed
// by a third length-of-compressed-payload field and an LZ4
// *block* format payload. It is the container's private on-the-wire
// compressed form, not a general-purpose multi-algorithm codec layer — see
// containerset for the pluggable per-set codec (none/lz4/s2/zstd).
package compress
