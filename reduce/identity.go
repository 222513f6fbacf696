// Package reduce implements the identity and reduction grammar of §4.4:
// class-reference and singleton identity bytes, and the instance
// reduction/reconstruction pipeline. It does not consult a registry
// itself: decoders return the raw identity bytes, and internal/codec
// resolves them against a registry.Registry and passes the resulting
// construction handle to Reconstruct.
//
// Like the container package, reduce delegates encoding/decoding of
// values of arbitrary kind (instance callables, args, and optional
// reconstruction stages) to caller-supplied callbacks, so that the
// kind-dispatch switch lives in exactly one place: internal/codec.
package reduce

import (
	"fmt"

	"github.com/lekma/mood.ippc/container"
	"github.com/lekma/mood.ippc/endian"
	"github.com/lekma/mood.ippc/errs"
	"github.com/lekma/mood.ippc/value"
	"github.com/lekma/mood.ippc/wire"
)

// ClassIdentityBytes computes ID(T) = pack_str(module) ‖ pack_str(qualname),
// per §4.4.
func ClassIdentityBytes(engine endian.EndianEngine, ref value.ClassRef) []byte {
	scratch := wire.NewWriter(engine)
	defer scratch.Release()

	container.EncodeStr(scratch, ref.Module)
	container.EncodeStr(scratch, ref.Qualname)

	return append([]byte(nil), scratch.Bytes()...)
}

// SingletonIdentityBytes computes ID(s) = pack_str(name), per §4.4.
func SingletonIdentityBytes(engine endian.EndianEngine, name string) []byte {
	scratch := wire.NewWriter(engine)
	defer scratch.Release()

	container.EncodeStr(scratch, name)

	return append([]byte(nil), scratch.Bytes()...)
}

// EncodeClassRef writes a CLASS value: tag, identity-byte length, then
// the identity bytes themselves.
func EncodeClassRef(w *wire.Writer, ref value.ClassRef) {
	id := ClassIdentityBytes(w.Engine(), ref)
	w.WriteTagLen(wire.KindClass, int64(len(id)))
	w.WriteRaw(id)
}

// DecodeClassRef reads a CLASS value's inner (module, qualname) pair
// without consulting the registry. It also returns the raw identity
// bytes as read from the stream, which are the registry key callers
// resolve against.
func DecodeClassRef(r *wire.Reader) (value.ClassRef, []byte, error) {
	n, _, err := r.ReadTagLen(wire.KindClass)
	if err != nil {
		return value.ClassRef{}, nil, err
	}

	raw, err := r.ReadRaw(int(n))
	if err != nil {
		return value.ClassRef{}, nil, err
	}

	raw = append([]byte(nil), raw...)
	inner := wire.NewReader(raw, r.Engine())

	module, err := container.DecodeStr(inner)
	if err != nil {
		return value.ClassRef{}, nil, fmt.Errorf("%w: class module", errs.ErrBadEncoding)
	}

	qualname, err := container.DecodeStr(inner)
	if err != nil {
		return value.ClassRef{}, nil, fmt.Errorf("%w: class qualname", errs.ErrBadEncoding)
	}

	return value.ClassRef{Module: module, Qualname: qualname}, raw, nil
}

// EncodeSingleton writes a SINGLETON value.
func EncodeSingleton(w *wire.Writer, name string) {
	id := SingletonIdentityBytes(w.Engine(), name)
	w.WriteTagLen(wire.KindSingleton, int64(len(id)))
	w.WriteRaw(id)
}

// DecodeSingleton reads a SINGLETON value's inner name.
func DecodeSingleton(r *wire.Reader) (string, []byte, error) {
	n, _, err := r.ReadTagLen(wire.KindSingleton)
	if err != nil {
		return "", nil, err
	}

	raw, err := r.ReadRaw(int(n))
	if err != nil {
		return "", nil, err
	}

	raw = append([]byte(nil), raw...)
	inner := wire.NewReader(raw, r.Engine())

	name, err := container.DecodeStr(inner)
	if err != nil {
		return "", nil, fmt.Errorf("%w: singleton name", errs.ErrBadEncoding)
	}

	return name, raw, nil
}

// UnreadableClassName renders a class identity for the
// "cannot unpack ..." diagnostics of §4.4.
func UnreadableClassName(ref value.ClassRef) string {
	if ref.Module == "" || ref.Module == "builtins" {
		return fmt.Sprintf("cannot unpack <class %q>", ref.Qualname)
	}

	return fmt.Sprintf("cannot unpack <class %q>", ref.Module+"."+ref.Qualname)
}

// UnreadableSingletonName renders a singleton identity for the
// "cannot unpack ..." diagnostic of §4.4.
func UnreadableSingletonName(name string) string {
	return fmt.Sprintf("cannot unpack %q", name)
}
