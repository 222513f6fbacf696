// Package ippc implements the wire codec of a compact binary
// object-serialization format used as the transport payload of an
// inter-process RPC layer: a self-delimiting grammar for integers,
// floats, complex numbers, booleans, a null singleton, text, byte
// buffers, ordered sequences, maps, sets, type references, registered
// singletons, and instances reconstructable from a constructor
// descriptor.
//
// This package provides the five top-level operations over the richer
// value, container, reduce, and registry packages; most callers only
// need what's here.
//
//	data, err := ippc.Pack(value.Tuple(value.Int(1), value.Str("x")))
//	v, err := ippc.Unpack(data)
//
// Pack produces a bare self-delimiting payload; Encode wraps it in an
// outer length frame for a transport that reads one message at a time.
// size recovers that frame's length field; it is exported for a
// transport implementation, not used by Pack/Unpack themselves.
//
// The wire format is host-byte-order only: producers and consumers on
// different-endian hosts will not interoperate. This is intentional
// (see the endian package doc) and is not something a future version
// should "fix" silently.
package ippc

import (
	"github.com/lekma/mood.ippc/internal/codec"
	"github.com/lekma/mood.ippc/registry"
	"github.com/lekma/mood.ippc/value"
)

// Value is the tagged-union value tree this codec packs and unpacks.
type Value = value.Value

// Option configures recursion depth, cycle detection, or the registry
// consulted by a single Pack/Encode/Unpack call.
type Option = codec.Option

// WithMaxDepth bounds container recursion depth. 0 selects the
// package's conservative default.
func WithMaxDepth(n int) Option { return codec.WithMaxDepth(n) }

// WithCycleDetection enables hashing the backing pointer of every
// slice/map container visited during one call, failing fast on a
// self-referential value instead of only on exhausting the depth
// budget. Off by default; the wire format carries no back-references,
// so round-tripping a cyclic value is never supported either way.
func WithCycleDetection(enabled bool) Option { return codec.WithCycleDetection(enabled) }

// WithRegistry overrides the process-wide default registry for a single
// call, mainly useful for tests that want an isolated registry.
func WithRegistry(r *registry.Registry) Option { return codec.WithRegistry(r) }

// Pack encodes v to a self-delimiting payload with no outer frame.
func Pack(v Value, opts ...Option) ([]byte, error) {
	return codec.Pack(v, opts...)
}

// Encode packs v, then prepends an outer frame (one byte width W,
// followed by W bytes of payload length), so a transport can read one
// message at a time from a stream.
func Encode(v Value, opts ...Option) ([]byte, error) {
	return codec.Encode(v, opts...)
}

// Unpack decodes exactly one value from data. Trailing bytes are
// ignored; the caller is expected to have already framed the input
// (e.g. via the length Size reports).
func Unpack(data []byte, opts ...Option) (Value, error) {
	return codec.Unpack(data, opts...)
}

// Size interprets a 1, 2, 4, or 8-byte buffer as a signed little-endian
// integer and returns it — the shape of the length field Encode
// prepends, for a transport that needs to know how many more bytes to
// read before decoding the payload.
func Size(data []byte) (int64, error) {
	return codec.Size(data)
}

// RegisterClass binds handle to the identity of the (module, qualname)
// pair in the process-wide default registry, so a later Unpack of a
// matching CLASS value resolves to handle.
func RegisterClass(module, qualname string, handle registry.Handle) error {
	return codec.RegisterClass(registry.Default, module, qualname, handle)
}

// RegisterSingleton binds handle to the canonical singleton name in the
// process-wide default registry, so a later Unpack of a matching
// SINGLETON value resolves to handle.
func RegisterSingleton(name string, handle registry.Handle) error {
	return codec.RegisterSingleton(registry.Default, name, handle)
}
