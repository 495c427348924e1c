package containerset

import (
	"github.com/mattsta/flex/container"
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/internal/options"
	"github.com/mattsta/flex/varint"
)

// Set is an ordered, name-indexed bundle of containers sharing one codec.
// Containers are stored decoded; Marshal compresses each one's byte image
// independently and Unmarshal reverses that, so random access to an
// individual container inside a Set never requires decompressing its
// neighbors.
type Set struct {
	codecKind  Kind
	codec      Codec
	names      []string
	byName     map[string]int
	containers []*container.Container
}

// New returns an empty Set using the given codec for every member added
// to it. Opts tune construction, e.g. WithInitialCapacity.
func New(kind Kind, opts ...Option) (*Set, error) {
	codec, err := NewCodec(kind)
	if err != nil {
		return nil, err
	}

	var cfg config
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Set{
		codecKind:  kind,
		codec:      codec,
		byName:     make(map[string]int, cfg.initialCapacity),
		names:      make([]string, 0, cfg.initialCapacity),
		containers: make([]*container.Container, 0, cfg.initialCapacity),
	}, nil
}

// Add inserts or replaces the container stored under name.
func (s *Set) Add(name string, c *container.Container) {
	if idx, ok := s.byName[name]; ok {
		s.containers[idx] = c
		return
	}

	s.byName[name] = len(s.containers)
	s.names = append(s.names, name)
	s.containers = append(s.containers, c)
}

// Get returns the container stored under name, if any.
func (s *Set) Get(name string) (*container.Container, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return nil, false
	}

	return s.containers[idx], true
}

// Remove removes the container stored under name, if present. The
// remaining members keep their relative order.
func (s *Set) Remove(name string) {
	idx, ok := s.byName[name]
	if !ok {
		return
	}

	s.names = append(s.names[:idx], s.names[idx+1:]...)
	s.containers = append(s.containers[:idx], s.containers[idx+1:]...)
	delete(s.byName, name)

	for i := idx; i < len(s.names); i++ {
		s.byName[s.names[i]] = i
	}
}

// Names returns the set's member names in insertion order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Len returns the number of containers in the set.
func (s *Set) Len() int { return len(s.containers) }

func putTaggedAppend(dst []byte, n uint64) []byte {
	var tmp [9]byte
	w := varint.PutTagged(tmp[:], n)

	return append(dst, tmp[:w]...)
}

// Marshal serializes the set: a codec-kind byte, a member count, then for
// each member its name, original length, compressed length, and
// compressed bytes.
func (s *Set) Marshal() ([]byte, error) {
	out := []byte{byte(s.codecKind)}
	out = putTaggedAppend(out, uint64(len(s.containers)))

	for i, name := range s.names {
		raw := s.containers[i].Bytes()

		compressed, err := s.codec.Compress(raw)
		if err != nil {
			return nil, err
		}

		out = putTaggedAppend(out, uint64(len(name)))
		out = append(out, name...)
		out = putTaggedAppend(out, uint64(len(raw)))
		out = putTaggedAppend(out, uint64(len(compressed)))
		out = append(out, compressed...)
	}

	return out, nil
}

// Unmarshal parses a Set from buf, as produced by Marshal.
func Unmarshal(buf []byte) (*Set, error) {
	if len(buf) < 1 {
		return nil, errs.ErrCorrupt
	}

	kind := Kind(buf[0])
	pos := 1

	codec, err := NewCodec(kind)
	if err != nil {
		return nil, err
	}

	count, n, err := varint.GetTagged(buf[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	s := &Set{
		codecKind: kind,
		codec:     codec,
		byName:    make(map[string]int, count),
	}

	for i := uint64(0); i < count; i++ {
		nameLen, n, err := varint.GetTagged(buf[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		if pos+int(nameLen) > len(buf) {
			return nil, errs.ErrCorrupt
		}
		name := string(buf[pos : pos+int(nameLen)])
		pos += int(nameLen)

		origLen, n, err := varint.GetTagged(buf[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		compLen, n, err := varint.GetTagged(buf[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		if pos+int(compLen) > len(buf) {
			return nil, errs.ErrCorrupt
		}
		compressed := buf[pos : pos+int(compLen)]
		pos += int(compLen)

		raw, err := decompressMember(codec, compressed, int(origLen))
		if err != nil {
			return nil, err
		}

		c, err := container.FromBytes(raw)
		if err != nil {
			return nil, err
		}

		s.byName[name] = len(s.containers)
		s.names = append(s.names, name)
		s.containers = append(s.containers, c)
	}

	return s, nil
}

// sizedDecompressor is implemented by codecs (lz4) whose wire format does
// not self-describe the decompressed length.
type sizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

func decompressMember(codec Codec, data []byte, size int) ([]byte, error) {
	if sized, ok := codec.(sizedDecompressor); ok {
		return sized.DecompressSized(data, size)
	}

	return codec.Decompress(data)
}
