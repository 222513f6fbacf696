package wire

import (
	"math"

	"github.com/lekma/mood.ippc/endian"
	"github.com/lekma/mood.ippc/internal/pool"
)

// Writer accumulates the byte-level encoding of a value tree into a
// pooled, growable buffer. It has no knowledge of the value model or of
// containers; callers (the container and reduce packages) drive it tag
// by tag.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer backed by a buffer drawn from the scratch
// pool. Callers must call Release when done to return the buffer.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:    pool.Get(),
		engine: engine,
	}
}

// Bytes returns the bytes written so far. The returned slice shares the
// underlying array with the Writer; it is only valid until the next
// Write call or Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Engine returns the endian engine this Writer encodes multi-byte
// scalars with, so callers building a nested scratch Writer (e.g. for
// an identity or instance payload) can match it.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// Release returns the underlying buffer to the scratch pool. The Writer
// must not be used afterward.
func (w *Writer) Release() {
	pool.Put(w.buf)
	w.buf = nil
}

// WriteTag appends a single tag byte.
func (w *Writer) WriteTag(t Tag) {
	w.buf.ExtendOrGrow(1)
	b := w.buf.Bytes()
	b[len(b)-1] = byte(t)
}

// WriteRaw appends data verbatim, with no tag or length prefix.
func (w *Writer) WriteRaw(data []byte) {
	w.buf.Grow(len(data))
	w.buf.MustWrite(data)
}

// WriteNone, WriteTrue, and WriteFalse append the corresponding
// zero-payload singleton tags.
func (w *Writer) WriteNone()  { w.WriteTag(TagNone) }
func (w *Writer) WriteTrue()  { w.WriteTag(TagTrue) }
func (w *Writer) WriteFalse() { w.WriteTag(TagFalse) }

// SelectIntWidth returns the narrowest Width W such that
// -2^(8W-1) <= v < 2^(8W-1), per spec §4.2 / §8 (width minimality law).
func SelectIntWidth(v int64) Width {
	switch {
	case v >= -(1<<7) && v < 1<<7:
		return Width1
	case v >= -(1<<15) && v < 1<<15:
		return Width2
	case v >= -(1<<31) && v < 1<<31:
		return Width4
	default:
		return Width8
	}
}

// WriteInt encodes a signed 64-bit integer using the narrowest width
// that represents it, per spec §4.2.
func (w *Writer) WriteInt(v int64) {
	width := SelectIntWidth(v)
	w.WriteTag(Tag(width))

	w.buf.ExtendOrGrow(int(width))
	b := w.buf.Bytes()
	dst := b[len(b)-int(width):]

	switch width {
	case Width1:
		dst[0] = byte(v)
	case Width2:
		w.engine.PutUint16(dst, uint16(int16(v)))
	case Width4:
		w.engine.PutUint32(dst, uint32(int32(v)))
	case Width8:
		w.engine.PutUint64(dst, uint64(v))
	}
}

// WriteUint encodes an unsigned 64-bit integer. Used only when a signed
// 64-bit representation would overflow; see spec §4.2.
func (w *Writer) WriteUint(u uint64) {
	w.WriteTag(TagUint)
	w.buf.ExtendOrGrow(8)
	b := w.buf.Bytes()
	w.engine.PutUint64(b[len(b)-8:], u)
}

// WriteFloat encodes an IEEE-754 double, bit-reinterpreted as a 64-bit
// unsigned integer.
func (w *Writer) WriteFloat(d float64) {
	w.WriteTag(TagFloat)
	w.buf.ExtendOrGrow(8)
	b := w.buf.Bytes()
	w.engine.PutUint64(b[len(b)-8:], math.Float64bits(d))
}

// WriteComplex encodes a complex value as a pair of doubles (real, imag).
func (w *Writer) WriteComplex(re, im float64) {
	w.WriteTag(TagComplex)
	w.buf.ExtendOrGrow(16)
	b := w.buf.Bytes()
	tail := b[len(b)-16:]
	w.engine.PutUint64(tail[:8], math.Float64bits(re))
	w.engine.PutUint64(tail[8:], math.Float64bits(im))
}

// WriteLength writes n as a signed little-endian integer in exactly
// width bytes. Callers are responsible for ensuring n fits in width
// bytes (WidthFor(n) <= width); WriteLength itself performs no range
// check since every caller in this module derives width from WidthFor.
func (w *Writer) WriteLength(width Width, n int64) {
	w.buf.ExtendOrGrow(int(width))
	b := w.buf.Bytes()
	dst := b[len(b)-int(width):]

	switch width {
	case Width1:
		dst[0] = byte(n)
	case Width2:
		w.engine.PutUint16(dst, uint16(int16(n)))
	case Width4:
		w.engine.PutUint32(dst, uint32(int32(n)))
	case Width8:
		w.engine.PutUint64(dst, uint64(n))
	}
}

// WriteTagLen writes a variable-length tag (kind combined with the
// narrowest width for n) followed by the n-byte length prefix, per
// spec §4.1/§4.3. It returns the chosen Width so callers can reuse it
// when writing the payload length (e.g. a string's byte length) is
// different from the value being tagged (e.g. a container's element
// count).
func (w *Writer) WriteTagLen(kind Tag, n int64) Width {
	width := WidthFor(n)
	w.WriteTag(WithWidth(kind, width))
	w.WriteLength(width, n)

	return width
}
