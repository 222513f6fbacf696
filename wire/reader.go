package wire

import (
	"fmt"
	"math"

	"github.com/lekma/mood.ippc/endian"
	"github.com/lekma/mood.ippc/errs"
)

// Reader walks a byte slice tag by tag. It does not copy or retain data
// beyond the slice it was constructed with.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader over data, starting at offset 0.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Engine returns the endian engine this Reader decodes multi-byte
// scalars with.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Done reports whether the reader has consumed the entire input.
func (r *Reader) Done() bool {
	return r.pos >= len(r.data)
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrEOF, n, r.Remaining())
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// PeekTag returns the next tag byte without advancing the reader.
func (r *Reader) PeekTag() (Tag, error) {
	if r.Done() {
		return TagInvalid, fmt.Errorf("%w: no tag byte available", errs.ErrEOF)
	}

	return Tag(r.data[r.pos]), nil
}

// ReadTag reads and consumes the next tag byte.
func (r *Reader) ReadTag() (Tag, error) {
	b, err := r.take(1)
	if err != nil {
		return TagInvalid, err
	}

	return Tag(b[0]), nil
}

// ReadRaw consumes and returns the next n bytes verbatim.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	return r.take(n)
}

// ReadLength reads an n-byte signed little-endian integer, where n is
// the byte-width encoded by width. It rejects negative lengths, which
// can never arise from a value honestly produced by WriteTagLen.
func (r *Reader) ReadLength(width Width) (int64, error) {
	b, err := r.take(int(width))
	if err != nil {
		return 0, err
	}

	var n int64
	switch width {
	case Width1:
		n = int64(int8(b[0]))
	case Width2:
		n = int64(int16(r.engine.Uint16(b)))
	case Width4:
		n = int64(int32(r.engine.Uint32(b)))
	case Width8:
		n = int64(r.engine.Uint64(b))
	default:
		return 0, fmt.Errorf("%w: width %d", errs.ErrBadEncoding, width)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", errs.ErrBadLength, n)
	}

	return n, nil
}

// ReadTagLen reads a variable-length tag and its following length
// prefix, validating that the tag's kind matches want. It returns the
// decoded length and the width the length was encoded in.
func (r *Reader) ReadTagLen(want Tag) (int64, Width, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return 0, 0, err
	}

	if tag.Kind() != want {
		return 0, 0, fmt.Errorf("%w: expected kind %#x, got tag %#x", errs.ErrInvalidTag, want, tag)
	}

	width := tag.Width()
	if !width.Valid() {
		return 0, 0, fmt.Errorf("%w: width code %#x", errs.ErrInvalidTag, tag&widthMask)
	}

	n, err := r.ReadLength(width)
	if err != nil {
		return 0, 0, err
	}

	return n, width, nil
}

// ReadInt reads a TagInt1/2/4/8 value, sign-extending to int64.
func (r *Reader) ReadInt() (int64, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return 0, err
	}

	width := Width(tag)
	if !width.Valid() {
		return 0, fmt.Errorf("%w: tag %#x is not an integer tag", errs.ErrInvalidTag, tag)
	}

	b, err := r.take(int(width))
	if err != nil {
		return 0, err
	}

	switch width {
	case Width1:
		return int64(int8(b[0])), nil
	case Width2:
		return int64(int16(r.engine.Uint16(b))), nil
	case Width4:
		return int64(int32(r.engine.Uint32(b))), nil
	default: // Width8
		return int64(r.engine.Uint64(b)), nil
	}
}

// ReadUint reads a TagUint value.
func (r *Reader) ReadUint() (uint64, error) {
	if err := r.expectTag(TagUint); err != nil {
		return 0, err
	}

	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// ReadFloat reads a TagFloat value.
func (r *Reader) ReadFloat() (float64, error) {
	if err := r.expectTag(TagFloat); err != nil {
		return 0, err
	}

	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(b)), nil
}

// ReadComplex reads a TagComplex value, returning its real and
// imaginary components.
func (r *Reader) ReadComplex() (re, im float64, err error) {
	if err := r.expectTag(TagComplex); err != nil {
		return 0, 0, err
	}

	b, err := r.take(16)
	if err != nil {
		return 0, 0, err
	}

	re = math.Float64frombits(r.engine.Uint64(b[:8]))
	im = math.Float64frombits(r.engine.Uint64(b[8:]))

	return re, im, nil
}

func (r *Reader) expectTag(want Tag) error {
	tag, err := r.ReadTag()
	if err != nil {
		return err
	}

	if tag != want {
		return fmt.Errorf("%w: expected tag %#x, got %#x", errs.ErrInvalidTag, want, tag)
	}

	return nil
}
