// Package varint implements the three fixed-width-prefix integer encodings
// used by the flex container format.
//
//   - SplitFullNoZero encodes a positive integer 1..2^64-1 in 1-9 bytes. It
//     is the scheme used for the buffer-length header field and for a byte
//     string's length prefix, and it is the only one of the three that must
//     also decode starting from the last byte and walking backward (needed
//     to read the length of the last entry in a container without a
//     forward scan).
//   - Tagged encodes 0..2^64-1 with a classic leading-byte width tag. It is
//     used only for the container's element-count header field and is not
//     reversible.
//   - Fixed writes a raw little-endian integer of a caller-known byte
//     count; it backs every numeric payload and reference-ID payload in the
//     container.
//
// All three are pure functions over byte slices: nothing here allocates
// beyond the destination slice the caller already owns.
package varint
