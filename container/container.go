// Package container implements the length-prefixed sequence, map, and
// set shapes of §4.3: write/read the tag and element count, then drive
// a caller-supplied element codec for each child.
//
// This package has no notion of what a Value "is" beyond the few leaf
// kinds (Str, Bytes, ByteArray) it encodes directly; encoding or
// decoding a child of arbitrary kind is delegated to the EncodeElem /
// DecodeElem callbacks so that this package never needs to import the
// identity/reduce machinery, and vice versa. The orchestrating dispatch
// that ties every kind together lives in the internal/codec package.
package container

import (
	"fmt"
	"unicode/utf8"

	"github.com/lekma/mood.ippc/errs"
	"github.com/lekma/mood.ippc/value"
	"github.com/lekma/mood.ippc/wire"
)

// EncodeElem encodes one child value of arbitrary kind.
type EncodeElem func(w *wire.Writer, v value.Value) error

// DecodeElem decodes one child value of arbitrary kind.
type DecodeElem func(r *wire.Reader) (value.Value, error)

// EncodeStr writes a STR value: tag, UTF-8 byte length, then the bytes.
func EncodeStr(w *wire.Writer, s string) {
	w.WriteTagLen(wire.KindStr, int64(len(s)))
	w.WriteRaw([]byte(s))
}

// DecodeStr reads a STR value, validating UTF-8.
func DecodeStr(r *wire.Reader) (string, error) {
	n, _, err := r.ReadTagLen(wire.KindStr)
	if err != nil {
		return "", err
	}

	b, err := r.ReadRaw(int(n))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %d bytes", errs.ErrBadEncoding, len(b))
	}

	return string(b), nil
}

// EncodeBytes writes a BYTES value.
func EncodeBytes(w *wire.Writer, b []byte) {
	w.WriteTagLen(wire.KindBytes, int64(len(b)))
	w.WriteRaw(b)
}

// DecodeBytes reads a BYTES value.
func DecodeBytes(r *wire.Reader) ([]byte, error) {
	n, _, err := r.ReadTagLen(wire.KindBytes)
	if err != nil {
		return nil, err
	}

	b, err := r.ReadRaw(int(n))
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), b...), nil
}

// EncodeByteArray writes a BYTEARRAY value.
func EncodeByteArray(w *wire.Writer, b []byte) {
	w.WriteTagLen(wire.KindByteArray, int64(len(b)))
	w.WriteRaw(b)
}

// DecodeByteArray reads a BYTEARRAY value.
func DecodeByteArray(r *wire.Reader) ([]byte, error) {
	n, _, err := r.ReadTagLen(wire.KindByteArray)
	if err != nil {
		return nil, err
	}

	b, err := r.ReadRaw(int(n))
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), b...), nil
}

// EncodeSeq writes a TUPLE/LIST/SET/FROZENSET value: tag, element
// count, then each element via encodeElem, in elems' iteration order
// (§4.3: for sets this order is not part of the contract).
func EncodeSeq(w *wire.Writer, kind wire.Tag, elems []value.Value, encodeElem EncodeElem) error {
	w.WriteTagLen(kind, int64(len(elems)))

	for _, e := range elems {
		if err := encodeElem(w, e); err != nil {
			return err
		}
	}

	return nil
}

// DecodeSeq reads a TUPLE/LIST/SET/FROZENSET value.
func DecodeSeq(r *wire.Reader, kind wire.Tag, decodeElem DecodeElem) ([]value.Value, error) {
	n, _, err := r.ReadTagLen(kind)
	if err != nil {
		return nil, err
	}

	elems := make([]value.Value, 0, n)

	for i := int64(0); i < n; i++ {
		e, err := decodeElem(r)
		if err != nil {
			return nil, err
		}

		elems = append(elems, e)
	}

	return elems, nil
}

// EncodeDict writes a DICT value: tag, pair count, then key then value
// per pair (§4.3).
func EncodeDict(w *wire.Writer, pairs []value.DictEntry, encodeElem EncodeElem) error {
	w.WriteTagLen(wire.KindDict, int64(len(pairs)))

	for _, p := range pairs {
		if err := encodeElem(w, p.Key); err != nil {
			return err
		}

		if err := encodeElem(w, p.Val); err != nil {
			return err
		}
	}

	return nil
}

// DecodeDict reads a DICT value.
func DecodeDict(r *wire.Reader, decodeElem DecodeElem) ([]value.DictEntry, error) {
	n, _, err := r.ReadTagLen(wire.KindDict)
	if err != nil {
		return nil, err
	}

	pairs := make([]value.DictEntry, 0, n)

	for i := int64(0); i < n; i++ {
		k, err := decodeElem(r)
		if err != nil {
			return nil, err
		}

		v, err := decodeElem(r)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, value.DictEntry{Key: k, Val: v})
	}

	return pairs, nil
}
