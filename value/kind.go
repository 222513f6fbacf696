// Package value implements the tagged-union value model that the wire
// grammar serializes: the 17 kinds of §3, their container and identity
// shapes, and the structural equality used by round-trip tests.
//
// This package knows nothing about bytes; Value trees are produced and
// consumed entirely by the container and reduce packages, which drive
// the wire package to read and write them.
package value

// Kind discriminates the 17 value kinds of the data model.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindNull      // no payload
	KindBool      // {true, false}
	KindInt       // signed 64-bit integer
	KindUint      // unsigned 64-bit integer
	KindFloat     // IEEE-754 double
	KindComplex   // pair of doubles (real, imag)
	KindStr       // UTF-8 text
	KindBytes     // immutable byte sequence
	KindByteArray // mutable byte sequence
	KindTuple     // ordered, immutable sequence of Value
	KindList      // ordered, mutable sequence of Value
	KindDict      // unordered sequence of (Value, Value) pairs
	KindSet       // unordered, mutable collection of Value
	KindFrozenSet // unordered, immutable collection of Value
	KindClassRef  // identity (module, qualname)
	KindSingleton // identity (canonical name)
	KindInstance  // reduction descriptor (callable, args, [state], [extend], [update])
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindComplex:
		return "Complex"
	case KindStr:
		return "Str"
	case KindBytes:
		return "Bytes"
	case KindByteArray:
		return "ByteArray"
	case KindTuple:
		return "Tuple"
	case KindList:
		return "List"
	case KindDict:
		return "Dict"
	case KindSet:
		return "Set"
	case KindFrozenSet:
		return "FrozenSet"
	case KindClassRef:
		return "ClassRef"
	case KindSingleton:
		return "Singleton"
	case KindInstance:
		return "Instance"
	default:
		return "Invalid"
	}
}

// IsContainer reports whether k holds child Values (Tuple, List, Dict,
// Set, FrozenSet). ClassRef/Singleton/Instance carry identity data, not
// child Values directly, and are not containers for this purpose.
func (k Kind) IsContainer() bool {
	switch k {
	case KindTuple, KindList, KindDict, KindSet, KindFrozenSet:
		return true
	default:
		return false
	}
}
