package containerset

import "github.com/klauspost/compress/s2"

// s2Codec gives a Set a fast, moderate-ratio codec option. S2's own frame
// format carries the decompressed length, so no size hint is needed.
type s2Codec struct{}

func (s2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (s2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
