package containerset

import (
	"fmt"

	"github.com/mattsta/flex/internal/errs"
)

// Codec compresses and decompresses whole container byte images for
// storage or transport within a Set. Unlike the container package's own
// compressed wrapper (package compress, LZ4-only, wired into the
// container's wire format), a Set's codec is an opaque outer layer: the
// container bytes it wraps are unchanged by which Codec a Set uses.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Kind identifies one of the built-in codecs, and is itself the first byte
// of a Set's encoded form.
type Kind byte

const (
	KindNone Kind = iota
	KindLZ4
	KindS2
	KindZstd
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindLZ4:
		return "lz4"
	case KindS2:
		return "s2"
	case KindZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// NewCodec returns the built-in Codec for kind.
func NewCodec(kind Kind) (Codec, error) {
	switch kind {
	case KindNone:
		return noopCodec{}, nil
	case KindLZ4:
		return newLZ4Codec(), nil
	case KindS2:
		return s2Codec{}, nil
	case KindZstd:
		return newZstdCodec(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported codec kind %d", errs.ErrBadArgument, kind)
	}
}
