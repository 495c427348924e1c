package containerset

// noopCodec bypasses compression entirely. Useful when a set's containers
// are already compressed (e.g. each one built via the compress package) or
// when CPU matters more than size.
type noopCodec struct{}

func (noopCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (noopCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
