package codec

import (
	"fmt"
	"reflect"

	"github.com/lekma/mood.ippc/container"
	"github.com/lekma/mood.ippc/errs"
	"github.com/lekma/mood.ippc/internal/depth"
	"github.com/lekma/mood.ippc/reduce"
	"github.com/lekma/mood.ippc/registry"
	"github.com/lekma/mood.ippc/value"
	"github.com/lekma/mood.ippc/wire"
)

// seqTag maps a sequence-shaped Kind to its wire kind base.
func seqTag(k value.Kind) wire.Tag {
	switch k {
	case value.KindTuple:
		return wire.KindTuple
	case value.KindList:
		return wire.KindList
	case value.KindSet:
		return wire.KindSet
	case value.KindFrozenSet:
		return wire.KindFrozenSet
	default:
		return wire.TagInvalid
	}
}

func seqKindOf(tag wire.Tag) value.Kind {
	switch tag {
	case wire.KindTuple:
		return value.KindTuple
	case wire.KindList:
		return value.KindList
	case wire.KindSet:
		return value.KindSet
	case wire.KindFrozenSet:
		return value.KindFrozenSet
	default:
		return value.KindInvalid
	}
}

type dispatcher struct {
	guard *depth.Guard
	reg   *registry.Registry
}

func (d *dispatcher) encodeElem(w *wire.Writer, v value.Value) error {
	return d.encodeValue(w, v)
}

func (d *dispatcher) decodeElem(r *wire.Reader) (value.Value, error) {
	return d.decodeValue(r)
}

func (d *dispatcher) encodeValue(w *wire.Writer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		w.WriteNone()
		return nil
	case value.KindBool:
		if v.BoolValue() {
			w.WriteTrue()
		} else {
			w.WriteFalse()
		}

		return nil
	case value.KindInt:
		w.WriteInt(v.IntValue())
		return nil
	case value.KindUint:
		w.WriteUint(v.UintValue())
		return nil
	case value.KindFloat:
		w.WriteFloat(v.FloatValue())
		return nil
	case value.KindComplex:
		re, im := v.ComplexValue()
		w.WriteComplex(re, im)

		return nil
	case value.KindStr:
		container.EncodeStr(w, v.StrValue())
		return nil
	case value.KindBytes:
		container.EncodeBytes(w, v.BytesValue())
		return nil
	case value.KindByteArray:
		container.EncodeByteArray(w, v.BytesValue())
		return nil
	case value.KindTuple, value.KindList, value.KindSet, value.KindFrozenSet:
		if err := d.guard.EnterPointer(reflect.ValueOf(v.Seq())); err != nil {
			return err
		}
		defer d.guard.Exit()

		return container.EncodeSeq(w, seqTag(v.Kind()), v.Seq(), d.encodeElem)
	case value.KindDict:
		if err := d.guard.EnterPointer(reflect.ValueOf(v.Pairs())); err != nil {
			return err
		}
		defer d.guard.Exit()

		return container.EncodeDict(w, v.Pairs(), d.encodeElem)
	case value.KindClassRef:
		reduce.EncodeClassRef(w, v.ClassRefValue())
		return nil
	case value.KindSingleton:
		reduce.EncodeSingleton(w, v.SingletonName())
		return nil
	case value.KindInstance:
		if err := d.guard.EnterPointer(reflect.ValueOf(v.InstanceValue())); err != nil {
			return err
		}
		defer d.guard.Exit()

		return reduce.EncodeInstance(w, v.InstanceValue(), d.encodeElem)
	default:
		return fmt.Errorf("%w: kind %s", errs.ErrTypeUnpackable, v.Kind())
	}
}

func (d *dispatcher) decodeValue(r *wire.Reader) (value.Value, error) {
	tag, err := r.PeekTag()
	if err != nil {
		return value.Value{}, err
	}

	switch {
	case tag == wire.TagNone:
		_, _ = r.ReadTag()
		return value.Null(), nil
	case tag == wire.TagTrue:
		_, _ = r.ReadTag()
		return value.Bool(true), nil
	case tag == wire.TagFalse:
		_, _ = r.ReadTag()
		return value.Bool(false), nil
	case tag == wire.TagUint:
		u, err := r.ReadUint()
		if err != nil {
			return value.Value{}, err
		}

		return value.Uint(u), nil
	case tag == wire.TagFloat:
		f, err := r.ReadFloat()
		if err != nil {
			return value.Value{}, err
		}

		return value.Float(f), nil
	case tag == wire.TagComplex:
		re, im, err := r.ReadComplex()
		if err != nil {
			return value.Value{}, err
		}

		return value.Complex(re, im), nil
	case wire.Width(tag).Valid() && tag.Kind() == 0:
		i, err := r.ReadInt()
		if err != nil {
			return value.Value{}, err
		}

		return value.Int(i), nil
	case tag.Kind() == wire.KindStr:
		s, err := container.DecodeStr(r)
		if err != nil {
			return value.Value{}, err
		}

		return value.Str(s), nil
	case tag.Kind() == wire.KindBytes:
		b, err := container.DecodeBytes(r)
		if err != nil {
			return value.Value{}, err
		}

		return value.Bytes(b), nil
	case tag.Kind() == wire.KindByteArray:
		b, err := container.DecodeByteArray(r)
		if err != nil {
			return value.Value{}, err
		}

		return value.ByteArray(b), nil
	case tag.Kind() == wire.KindTuple, tag.Kind() == wire.KindList,
		tag.Kind() == wire.KindSet, tag.Kind() == wire.KindFrozenSet:
		if err := d.guard.Enter(); err != nil {
			return value.Value{}, err
		}
		defer d.guard.Exit()

		elems, err := container.DecodeSeq(r, tag.Kind(), d.decodeElem)
		if err != nil {
			return value.Value{}, err
		}

		switch seqKindOf(tag.Kind()) {
		case value.KindTuple:
			return value.Tuple(elems...), nil
		case value.KindList:
			return value.List(elems...), nil
		case value.KindSet:
			return value.Set(elems...), nil
		default:
			return value.FrozenSet(elems...), nil
		}
	case tag.Kind() == wire.KindDict:
		if err := d.guard.Enter(); err != nil {
			return value.Value{}, err
		}
		defer d.guard.Exit()

		pairs, err := container.DecodeDict(r, d.decodeElem)
		if err != nil {
			return value.Value{}, err
		}

		return value.Dict(pairs...), nil
	case tag.Kind() == wire.KindClass:
		ref, raw, err := reduce.DecodeClassRef(r)
		if err != nil {
			return value.Value{}, err
		}

		handle, ok := d.reg.Lookup(string(raw))
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s", errs.ErrNotRegistered, reduce.UnreadableClassName(ref))
		}

		return value.NewClassRef(ref.Module, ref.Qualname).WithHandle(handle), nil
	case tag.Kind() == wire.KindSingleton:
		name, raw, err := reduce.DecodeSingleton(r)
		if err != nil {
			return value.Value{}, err
		}

		handle, ok := d.reg.Lookup(string(raw))
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s", errs.ErrNotRegistered, reduce.UnreadableSingletonName(name))
		}

		return value.NewSingleton(name).WithHandle(handle), nil
	case tag.Kind() == wire.KindInstance:
		if err := d.guard.Enter(); err != nil {
			return value.Value{}, err
		}
		defer d.guard.Exit()

		inst, err := reduce.DecodeInstance(r, d.decodeElem)
		if err != nil {
			return value.Value{}, err
		}

		if inst.Callable.Kind() != value.KindClassRef {
			return value.Value{}, fmt.Errorf("%w: instance callable is not a registered class reference", errs.ErrBadReduce)
		}

		obj, err := reduce.Reconstruct(inst.Callable.Handle(), inst)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewInstance(*inst).WithHandle(obj), nil
	default:
		return value.Value{}, fmt.Errorf("%w: %#x", errs.ErrInvalidTag, tag)
	}
}
