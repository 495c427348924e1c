package container

import "unsafe"

// aliases reports whether b shares memory with buf, i.e. b is a subslice
// of buf (or buf grown/shrunk from the same backing array). Insert and
// Replace must detect this: a caller handing back bytes read from the
// very container being mutated (self-aliasing) would otherwise have its
// source data overwritten mid-copy by the grow/shrink memmove.
func aliases(buf, b []byte) bool {
	if len(buf) == 0 || len(b) == 0 {
		return false
	}

	bufStart := uintptr(unsafe.Pointer(&buf[0]))
	bufEnd := bufStart + uintptr(len(buf))

	bStart := uintptr(unsafe.Pointer(&b[0]))

	return bStart >= bufStart && bStart < bufEnd
}

// cloneIfAliased returns a copy of b if it aliases buf, otherwise b itself
// unchanged.
func cloneIfAliased(buf, b []byte) []byte {
	if !aliases(buf, b) {
		return b
	}

	cp := make([]byte, len(b))
	copy(cp, b)

	return cp
}
