// Package format defines the container's type lattice: the forward-tag
// byte space, the caller-facing typed Value, and the encoding
// selector that maps a Value to its smallest legal on-wire encoding.
package format

// Tag is the forward-tag byte of a normal entry, or the single byte of an
// immediate entry.
type Tag = byte

// Immediate singletons. Tag values >= Same are immediate: a one-byte entry
// with no payload and no reverse tag. Same itself is reserved and never
// produced (see ReservedTags).
const (
	EmptyBytes Tag = 252
	True       Tag = 253
	False      Tag = 254
	Null       Tag = 255

	// Same is a reserved-for-future marker; it is never produced by the
	// encoder and is rejected by the decoder.
	Same Tag = 251
)

// IsImmediate reports whether tag denotes a one-byte immediate entry. This
// is a pure range test (tag >= Same), independent of whether the specific
// tag is currently assigned — decode still rejects Same itself.
func IsImmediate(tag Tag) bool { return tag >= Same }

// Integer tags: 8 (signed, unsigned) pairs at widths 1,2,3,4,5,6,7,8 bytes.
// A pair is (signedTag, unsignedTag) with signedTag == unsignedTag-1.
const (
	TagInt8  Tag = 202
	TagUint8 Tag = 203

	TagInt16  Tag = 204
	TagUint16 Tag = 205

	TagInt24  Tag = 206
	TagUint24 Tag = 207

	TagInt32  Tag = 208
	TagUint32 Tag = 209

	TagInt40  Tag = 210
	TagUint40 Tag = 211

	TagInt48  Tag = 212
	TagUint48 Tag = 213

	TagInt56  Tag = 214
	TagUint56 Tag = 215

	TagInt64  Tag = 216
	TagUint64 Tag = 217
)

// intWidths maps an unsigned integer tag to its payload width in bytes.
var intWidths = map[Tag]int{
	TagUint8:  1,
	TagUint16: 2,
	TagUint24: 3,
	TagUint32: 4,
	TagUint40: 5,
	TagUint48: 6,
	TagUint56: 7,
	TagUint64: 8,
}

// unsignedTagForWidth maps a byte width (1..8) to its unsigned tag.
var unsignedTagForWidth = map[int]Tag{
	1: TagUint8, 2: TagUint16, 3: TagUint24, 4: TagUint32,
	5: TagUint40, 6: TagUint48, 7: TagUint56, 8: TagUint64,
}

const (
	TagInt96   Tag = 218
	TagUint96  Tag = 219
	TagInt128  Tag = 220
	TagUint128 Tag = 221
)

const (
	TagBFloat16 Tag = 222
	TagFloat16  Tag = 223
	TagFloat32  Tag = 224
	TagFloat64  Tag = 225

	// TagDecimal32 and TagDecimal64 are reserved: no encoding path produces
	// them and the decoder rejects them.
	TagDecimal32 Tag = 226
	TagDecimal64 Tag = 227
)

const (
	TagPointer48 Tag = 228
	TagPointer64 Tag = 229
)

// Reference-ID tags: an opaque external reference id at widths 1..8 bytes,
// range-shifted per width so each width's value range is disjoint.
const (
	TagRef8  Tag = 230
	TagRef16 Tag = 231
	TagRef24 Tag = 232
	TagRef32 Tag = 233
	TagRef40 Tag = 234
	TagRef48 Tag = 235
	TagRef56 Tag = 236
	TagRef64 Tag = 237
)

var refTagForWidth = map[int]Tag{
	1: TagRef8, 2: TagRef16, 3: TagRef24, 4: TagRef32,
	5: TagRef40, 6: TagRef48, 7: TagRef56, 8: TagRef64,
}

var refWidthForTag = map[Tag]int{
	TagRef8: 1, TagRef16: 2, TagRef24: 3, TagRef32: 4,
	TagRef40: 5, TagRef48: 6, TagRef56: 7, TagRef64: 8,
}

// Nested container markers.
const (
	TagMap   Tag = 238
	TagList  Tag = 239
	TagSet   Tag = 240
	TagTuple Tag = 241
)

// Nested *compressed* container markers: reserved variants, never produced.
const (
	TagCompressedMap   Tag = 242
	TagCompressedList  Tag = 243
	TagCompressedSet   Tag = 244
	TagCompressedTuple Tag = 245
)

// ContainerKind identifies which of the four nested-container variants a
// TagMap/TagList/TagSet/TagTuple entry holds.
type ContainerKind uint8

const (
	Map ContainerKind = iota
	List
	Set
	Tuple
)

var containerTagForKind = map[ContainerKind]Tag{
	Map: TagMap, List: TagList, Set: TagSet, Tuple: TagTuple,
}

var containerKindForTag = map[Tag]ContainerKind{
	TagMap: Map, TagList: List, TagSet: Set, TagTuple: Tuple,
}

// reservedTags are allocated in the type space but never produced; the
// decoder rejects them unconditionally.
var reservedTags = map[Tag]bool{
	Same:               true,
	TagDecimal32:       true,
	TagDecimal64:       true,
	TagCompressedMap:    true,
	TagCompressedList:   true,
	TagCompressedSet:    true,
	TagCompressedTuple:  true,
}

// WidthForIntTag returns the payload width and signedness for an integer
// tag (202..217, either half of a signed/unsigned pair), and ok=false if
// tag is not in that range.
func WidthForIntTag(tag Tag) (width int, signed bool, ok bool) {
	if tag >= TagInt8 && tag <= TagUint64 {
		signed = (tag-TagInt8)%2 == 0
		unsigned := tag
		if signed {
			unsigned = tag + 1
		}

		return intWidths[unsigned], signed, true
	}

	return 0, false, false
}

// UnsignedTagForWidth returns the unsigned integer tag for a payload width
// in 1..8, or 0 if w is out of range.
func UnsignedTagForWidth(w int) Tag { return unsignedTagForWidth[w] }

// RefWidthForTag returns the payload width for a reference-id tag.
func RefWidthForTag(tag Tag) (int, bool) {
	w, ok := refWidthForTag[tag]
	return w, ok
}

// RefTagForWidth returns the reference-id tag for a payload width in 1..8.
func RefTagForWidth(w int) Tag { return refTagForWidth[w] }

// ContainerKindForTag returns the container kind for one of
// TagMap/TagList/TagSet/TagTuple.
func ContainerKindForTag(tag Tag) (ContainerKind, bool) {
	k, ok := containerKindForTag[tag]
	return k, ok
}

// ContainerTagForKind returns the wire tag for a container kind.
func ContainerTagForKind(k ContainerKind) Tag { return containerTagForKind[k] }

// IsReserved reports whether tag is an allocated-but-unproduced tag value.
func IsReserved(tag Tag) bool { return reservedTags[tag] }

// IsAssigned reports whether tag falls in any range the type space assigns
// meaning to (string length, integer, float, pointer, ref-id, container,
// reserved, or immediate). Bytes outside all of these are simply
// unassigned and are rejected by the decoder as corrupt.
func IsAssigned(tag Tag) bool {
	switch {
	case tag >= 1 && tag <= 64: // inline string length
		return true
	case tag >= 65 && tag <= 135: // multi-byte string length continuation (see varint package)
		return true
	case tag >= 136 && tag <= 201: // allocated but unused by this implementation's width table
		return false
	case tag >= TagInt8 && tag <= TagUint64:
		return true
	case tag >= TagInt96 && tag <= TagUint128:
		return true
	case tag >= TagBFloat16 && tag <= TagDecimal64:
		return true
	case tag == TagPointer48 || tag == TagPointer64:
		return true
	case tag >= TagRef8 && tag <= TagRef64:
		return true
	case tag >= TagMap && tag <= TagCompressedTuple:
		return true
	case IsImmediate(tag):
		return true
	default:
		return false
	}
}
