package format

import "github.com/mattsta/flex/varint"

// Kind identifies which field of Value is populated.
type Kind uint8

const (
	KindBytes Kind = iota
	KindBytesVoid
	KindInt
	KindUint
	KindInt128
	KindUint128
	KindFloat32
	KindFloat64
	KindPointer
	KindInternedPointer
	KindRefID
	KindContainer
	KindTrue
	KindFalse
	KindNull
)

// Value is the typed-value struct passed between the container and its
// callers. It is a value type: the container
// owns all persisted bytes, and a Value returned from a read borrows into
// the container's buffer until the caller copies it.
//
// Exactly one group of fields is meaningful, selected by Kind. The one
// overlap: a decoded KindUint whose value fits in int64 also carries it in
// Int.
type Value struct {
	Kind Kind

	// Resolved wire tag. DecodeFixed fills it in for fixed-width entries on
	// the read path; it is zero otherwise (Resolve does not set it).
	Tag Tag

	Bytes []byte // KindBytes, KindContainer (nested buffer image)

	Int  int64  // KindInt; also a decoded KindUint that fits in int64
	Uint uint64 // KindUint, KindPointer, KindInternedPointer, KindRefID

	Int128Negative bool          // KindInt128
	Magnitude128   varint.Uint128 // KindInt128 (magnitude, see no-signed-zero note), KindUint128

	Float32 float32 // KindFloat32
	Float64 float64 // KindFloat64

	ContainerKind ContainerKind // KindContainer
	VoidLen       int           // KindBytesVoid
}

func NewBytes(b []byte) Value   { return Value{Kind: KindBytes, Bytes: b} }
func NewBytesVoid(n int) Value  { return Value{Kind: KindBytesVoid, VoidLen: n} }
func NewInt(v int64) Value      { return Value{Kind: KindInt, Int: v} }
func NewUint(v uint64) Value    { return Value{Kind: KindUint, Uint: v} }
func NewFloat32(v float32) Value { return Value{Kind: KindFloat32, Float32: v} }
func NewFloat64(v float64) Value { return Value{Kind: KindFloat64, Float64: v} }
func NewPointer(id uint64) Value { return Value{Kind: KindPointer, Uint: id} }
func NewInternedPointer(id uint64) Value {
	return Value{Kind: KindInternedPointer, Uint: id}
}
func NewRefID(id uint64) Value { return Value{Kind: KindRefID, Uint: id} }
func NewTrue() Value           { return Value{Kind: KindTrue} }
func NewFalse() Value          { return Value{Kind: KindFalse} }
func NewNull() Value           { return Value{Kind: KindNull} }

func NewContainer(kind ContainerKind, childBuf []byte) Value {
	return Value{Kind: KindContainer, ContainerKind: kind, Bytes: childBuf}
}

// NewInt128 builds a signed 128-bit value from a sign flag and an absolute
// magnitude. Resolve applies the no-signed-zero offset itself; callers pass
// the true magnitude here.
func NewInt128(negative bool, magnitude varint.Uint128) Value {
	return Value{Kind: KindInt128, Int128Negative: negative, Magnitude128: magnitude}
}

func NewUint128(magnitude varint.Uint128) Value {
	return Value{Kind: KindUint128, Magnitude128: magnitude}
}

// IsImmediate reports whether this Value always encodes as a one-byte
// immediate entry (true/false/null, or an empty byte string).
func (v Value) IsImmediate() bool {
	switch v.Kind {
	case KindTrue, KindFalse, KindNull:
		return true
	case KindBytes:
		return len(v.Bytes) == 0
	default:
		return false
	}
}
