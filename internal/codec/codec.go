package codec

import (
	"fmt"

	"github.com/lekma/mood.ippc/endian"
	"github.com/lekma/mood.ippc/errs"
	"github.com/lekma/mood.ippc/reduce"
	"github.com/lekma/mood.ippc/registry"
	"github.com/lekma/mood.ippc/value"
	"github.com/lekma/mood.ippc/wire"
)

// Pack encodes v to a self-delimiting payload with no outer frame
// (§4.5).
func Pack(v value.Value, opts ...Option) ([]byte, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}

	d := &dispatcher{guard: s.newGuard(), reg: s.registry}

	w := wire.NewWriter(endian.GetNativeEndianEngine())
	defer w.Release()

	if err := d.encodeValue(w, v); err != nil {
		return nil, err
	}

	return append([]byte(nil), w.Bytes()...), nil
}

// Encode packs v, then prepends an outer frame: one byte W followed by
// W bytes of payload length L (§4.5, §6.1).
func Encode(v value.Value, opts ...Option) ([]byte, error) {
	payload, err := Pack(v, opts...)
	if err != nil {
		return nil, err
	}

	width := wire.WidthFor(int64(len(payload)))

	w := wire.NewWriter(endian.GetNativeEndianEngine())
	defer w.Release()

	w.WriteRaw([]byte{byte(width)})
	w.WriteLength(width, int64(len(payload)))
	w.WriteRaw(payload)

	return append([]byte(nil), w.Bytes()...), nil
}

// Unpack decodes exactly one value from data. Trailing bytes are
// ignored; the caller is expected to have already framed the input
// (§4.5).
func Unpack(data []byte, opts ...Option) (value.Value, error) {
	s, err := newSettings(opts)
	if err != nil {
		return value.Value{}, err
	}

	d := &dispatcher{guard: s.newGuard(), reg: s.registry}
	r := wire.NewReader(data, endian.GetNativeEndianEngine())

	return d.decodeValue(r)
}

// Size interprets a buffer of exactly 1, 2, 4, or 8 bytes as a signed
// little-endian integer and returns it; used by a transport to read the
// length field of an Encode-framed payload (§4.5, §6.2).
func Size(data []byte) (int64, error) {
	var width wire.Width

	switch len(data) {
	case 1:
		width = wire.Width1
	case 2:
		width = wire.Width2
	case 4:
		width = wire.Width4
	case 8:
		width = wire.Width8
	default:
		return 0, fmt.Errorf("%w: size buffer must be 1, 2, 4, or 8 bytes, got %d", errs.ErrBadLength, len(data))
	}

	r := wire.NewReader(data, endian.GetNativeEndianEngine())

	return r.ReadLength(width)
}

// RegisterClass binds a (module, qualname) class identity to handle in
// the given registry, computing its identity bytes per §4.4. reg is
// typically registry.Default.
func RegisterClass(reg *registry.Registry, module, qualname string, handle registry.Handle) error {
	id := reduce.ClassIdentityBytes(endian.GetNativeEndianEngine(), value.ClassRef{Module: module, Qualname: qualname})
	return reg.Register(string(id), handle)
}

// RegisterSingleton binds a canonical singleton name to handle in the
// given registry, computing its identity bytes per §4.4.
func RegisterSingleton(reg *registry.Registry, name string, handle registry.Handle) error {
	id := reduce.SingletonIdentityBytes(endian.GetNativeEndianEngine(), name)
	return reg.Register(string(id), handle)
}

func init() {
	// §3: the registry must be pre-populated with at least these two
	// builtin singletons. Their handle is the name itself, standing in
	// for whatever placeholder object a host application associates with
	// "no registered value" / "varargs placeholder" semantics.
	_ = RegisterSingleton(registry.Default, registry.BuiltinNotImplemented, registry.BuiltinNotImplemented)
	_ = RegisterSingleton(registry.Default, registry.BuiltinEllipsis, registry.BuiltinEllipsis)
}
