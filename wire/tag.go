package wire

// Tag is the single byte that opens every encoded value. Its high
// nibble identifies the kind; its low nibble is either zero, a fixed
// subtype id, or a width code (see Width).
type Tag byte

// Fixed-shape tags: the tag alone determines the payload length.
const (
	TagInvalid Tag = 0x00 // never appears in a well-formed stream

	TagInt1 Tag = 0x01
	TagInt2 Tag = 0x02
	TagInt4 Tag = 0x04
	TagInt8 Tag = 0x08

	TagUint    Tag = 0x11 // always 8 bytes
	TagFloat   Tag = 0x12 // always 8 bytes
	TagComplex Tag = 0x13 // always 16 bytes (two float64)

	TagNone  Tag = 0x21
	TagTrue  Tag = 0x22
	TagFalse Tag = 0x23
)

// Variable-length kind bases. The low nibble of the emitted tag is
// filled in with a Width selected from the element (or byte) count; see
// WithWidth.
const (
	KindStr       Tag = 0x30
	KindBytes     Tag = 0x40
	KindByteArray Tag = 0x50
	KindTuple     Tag = 0x60
	KindList      Tag = 0x70
	KindDict      Tag = 0x80
	KindSet       Tag = 0x90
	KindFrozenSet Tag = 0xA0
	KindClass     Tag = 0xD0
	KindSingleton Tag = 0xE0
	KindInstance  Tag = 0xF0

	kindMask  Tag = 0xF0
	widthMask Tag = 0x0F
)

// Width is the byte-width of a length prefix, one of {1, 2, 4, 8}.
type Width uint8

const (
	Width1 Width = 1
	Width2 Width = 2
	Width4 Width = 4
	Width8 Width = 8
)

// WidthFor returns the narrowest Width that can represent the
// non-negative length n, per spec §4.1:
//
//	W = 1 if n < 2^7; else 2 if n < 2^15; else 4 if n < 2^31; else 8.
func WidthFor(n int64) Width {
	switch {
	case n < 1<<7:
		return Width1
	case n < 1<<15:
		return Width2
	case n < 1<<31:
		return Width4
	default:
		return Width8
	}
}

// WithWidth combines a variable-length kind base with a width code into
// the single tag byte that gets written to the wire.
func WithWidth(kind Tag, w Width) Tag {
	return kind | Tag(w)
}

// Kind returns the high-nibble kind of a variable-length tag.
func (t Tag) Kind() Tag {
	return t & kindMask
}

// Width returns the low-nibble width code of a variable-length tag,
// without validating that it is one of {1, 2, 4, 8}.
func (t Tag) Width() Width {
	return Width(t & widthMask)
}

// Valid reports whether w is one of the four defined width codes.
func (w Width) Valid() bool {
	switch w {
	case Width1, Width2, Width4, Width8:
		return true
	default:
		return false
	}
}
