package value

// DictEntry is one (key, value) pair of a Dict. Dict order is whatever
// order the entries were produced in; it carries no contractual meaning
// (spec §5, §8).
type DictEntry struct {
	Key Value
	Val Value
}

// ClassRef identifies a type by its (module, qualname) pair, per §4.4.
type ClassRef struct {
	Module   string
	Qualname string
}

// Instance is the reduction descriptor of a user-defined value: a
// callable plus constructor args, and up to three optional
// reconstruction stages applied in order after construction (§4.4).
type Instance struct {
	Callable Value
	Args     []Value
	State    *Value
	Extend   *Value
	Update   *Value
}

// Value is a tagged union over the 17 kinds of the data model. The zero
// Value is KindInvalid and must not be packed.
type Value struct {
	kind Kind

	b         bool
	i         int64
	u         uint64
	f         float64
	re, im    float64
	str       string
	bytes     []byte
	seq       []Value
	pairs     []DictEntry
	classRef  ClassRef
	singleton string
	instance  *Instance

	handle any
}

// Kind returns the discriminant of v.
func (v Value) Kind() Kind { return v.kind }

// Null returns the null singleton value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a signed-integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Uint returns an unsigned-integer value, used only when a signed
// 64-bit representation would overflow (§4.2).
func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

// Float returns a double-precision float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Complex returns a complex value as a pair of doubles.
func Complex(re, im float64) Value { return Value{kind: KindComplex, re: re, im: im} }

// Str returns a UTF-8 text value.
func Str(s string) Value { return Value{kind: KindStr, str: s} }

// Bytes returns an immutable byte-sequence value. data is copied.
func Bytes(data []byte) Value {
	return Value{kind: KindBytes, bytes: append([]byte(nil), data...)}
}

// ByteArray returns a mutable byte-sequence value. data is copied.
func ByteArray(data []byte) Value {
	return Value{kind: KindByteArray, bytes: append([]byte(nil), data...)}
}

// Tuple returns an ordered, immutable sequence value.
func Tuple(elems ...Value) Value { return Value{kind: KindTuple, seq: elems} }

// List returns an ordered, mutable sequence value.
func List(elems ...Value) Value { return Value{kind: KindList, seq: elems} }

// Dict returns an unordered key/value sequence value.
func Dict(entries ...DictEntry) Value { return Value{kind: KindDict, pairs: entries} }

// Set returns an unordered, mutable collection value.
func Set(elems ...Value) Value { return Value{kind: KindSet, seq: elems} }

// FrozenSet returns an unordered, immutable collection value.
func FrozenSet(elems ...Value) Value { return Value{kind: KindFrozenSet, seq: elems} }

// NewClassRef returns a ClassRef identity value.
func NewClassRef(module, qualname string) Value {
	return Value{kind: KindClassRef, classRef: ClassRef{Module: module, Qualname: qualname}}
}

// NewSingleton returns a Singleton identity value.
func NewSingleton(name string) Value {
	return Value{kind: KindSingleton, singleton: name}
}

// NewInstance returns an Instance reduction-descriptor value.
func NewInstance(inst Instance) Value {
	return Value{kind: KindInstance, instance: &inst}
}

// BoolValue returns v's boolean payload. Only meaningful when Kind() == KindBool.
func (v Value) BoolValue() bool { return v.b }

// IntValue returns v's signed-integer payload. Only meaningful when
// Kind() == KindInt.
func (v Value) IntValue() int64 { return v.i }

// UintValue returns v's unsigned-integer payload. Only meaningful when
// Kind() == KindUint.
func (v Value) UintValue() uint64 { return v.u }

// FloatValue returns v's float payload. Only meaningful when
// Kind() == KindFloat.
func (v Value) FloatValue() float64 { return v.f }

// ComplexValue returns v's (real, imag) payload. Only meaningful when
// Kind() == KindComplex.
func (v Value) ComplexValue() (re, im float64) { return v.re, v.im }

// StrValue returns v's string payload. Only meaningful when
// Kind() == KindStr.
func (v Value) StrValue() string { return v.str }

// BytesValue returns v's byte payload. Only meaningful when Kind() is
// KindBytes or KindByteArray.
func (v Value) BytesValue() []byte { return v.bytes }

// Seq returns v's element sequence. Only meaningful when Kind() is
// KindTuple, KindList, KindSet, or KindFrozenSet.
func (v Value) Seq() []Value { return v.seq }

// Pairs returns v's entries. Only meaningful when Kind() == KindDict.
func (v Value) Pairs() []DictEntry { return v.pairs }

// ClassRefValue returns v's ClassRef payload. Only meaningful when
// Kind() == KindClassRef.
func (v Value) ClassRefValue() ClassRef { return v.classRef }

// SingletonName returns v's canonical name. Only meaningful when
// Kind() == KindSingleton.
func (v Value) SingletonName() string { return v.singleton }

// InstanceValue returns v's reduction descriptor. Only meaningful when
// Kind() == KindInstance.
func (v Value) InstanceValue() *Instance { return v.instance }

// WithHandle returns a copy of v carrying handle as its resolved
// registry handle. Populated by the decoder on a successful CLASS,
// SINGLETON, or INSTANCE resolution (§4.4); zero-valued on values built
// directly by the pack-side constructors above, which already hold
// whatever handle the caller is packing.
func (v Value) WithHandle(handle any) Value {
	v.handle = handle
	return v
}

// Handle returns v's resolved registry handle, or nil if none was set.
func (v Value) Handle() any { return v.handle }
