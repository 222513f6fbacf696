package reduce

import (
	"fmt"

	"github.com/lekma/mood.ippc/errs"
	"github.com/lekma/mood.ippc/value"
)

// Constructor is implemented by a registry.Handle that can build an
// instance from the decoded (callable, args) pair of an INSTANCE value.
// It is the Go analogue of "call callable(*args)" (§4.4).
type Constructor interface {
	Construct(args []value.Value) (any, error)
}

// StateSetter is the primary path for reconstruction stage (a): the Go
// analogue of o.__setstate__(state).
type StateSetter interface {
	SetState(state value.Value) error
}

// FieldSetter is the fallback path for stage (a) when state is a Dict
// and the constructed object has no StateSetter: each dict entry is
// applied as one field, failing if any key is not a Str (§4.4.a).
type FieldSetter interface {
	SetField(name string, v value.Value) error
}

// Extender is the primary path for reconstruction stage (b): the Go
// analogue of o.extend(extend_arg).
type Extender interface {
	ExtendWith(arg value.Value) error
}

// ItemAdder is the fallback path for stage (b) when the object has no
// Extender: the analogue of in-place concatenation, applied element by
// element (§4.4.b).
type ItemAdder interface {
	AddItem(v value.Value) error
}

// Updater is the primary path for reconstruction stage (c): the Go
// analogue of o.update(update_arg).
type Updater interface {
	UpdateWith(arg value.Value) error
}

// PairSetter is the fallback path for stage (c) when the object has no
// Updater: update_arg is iterated as (key, value) pairs — directly from
// a Dict, or element-wise from a sequence of 2-element tuples — and
// each pair applied individually (§4.4.c).
type PairSetter interface {
	SetPair(key, val value.Value) error
}

// Reconstruct runs the full instance-reconstruction pipeline of §4.4:
// construct via handle, then apply state, extend, and update in that
// exact order when present.
func Reconstruct(handle any, inst *value.Instance) (any, error) {
	ctor, ok := handle.(Constructor)
	if !ok {
		return nil, fmt.Errorf("%w: handle does not implement Constructor", errs.ErrBadReduce)
	}

	obj, err := ctor.Construct(inst.Args)
	if err != nil {
		return nil, fmt.Errorf("%w: constructor failed: %v", errs.ErrBadReduce, err)
	}

	if inst.State != nil {
		if err := applyState(obj, *inst.State); err != nil {
			return nil, err
		}
	}

	if inst.Extend != nil {
		if err := applyExtend(obj, *inst.Extend); err != nil {
			return nil, err
		}
	}

	if inst.Update != nil {
		if err := applyUpdate(obj, *inst.Update); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func applyState(obj any, state value.Value) error {
	if ss, ok := obj.(StateSetter); ok {
		if err := ss.SetState(state); err != nil {
			return fmt.Errorf("%w: __setstate__ equivalent failed: %v", errs.ErrBadState, err)
		}

		return nil
	}

	if state.Kind() != value.KindDict {
		return fmt.Errorf("%w: object has no state setter and state is not a dict", errs.ErrBadState)
	}

	fs, ok := obj.(FieldSetter)
	if !ok {
		return fmt.Errorf("%w: object has no field setter for dict state", errs.ErrBadState)
	}

	for _, pair := range state.Pairs() {
		if pair.Key.Kind() != value.KindStr {
			return fmt.Errorf("%w: state dict has a non-string key", errs.ErrBadState)
		}

		if err := fs.SetField(pair.Key.StrValue(), pair.Val); err != nil {
			return fmt.Errorf("%w: field %q: %v", errs.ErrBadState, pair.Key.StrValue(), err)
		}
	}

	return nil
}

func applyExtend(obj any, extend value.Value) error {
	if ex, ok := obj.(Extender); ok {
		if err := ex.ExtendWith(extend); err != nil {
			return fmt.Errorf("%w: extend equivalent failed: %v", errs.ErrBadState, err)
		}

		return nil
	}

	if !extend.Kind().IsContainer() {
		return fmt.Errorf("%w: object has no extender and extend arg is not iterable", errs.ErrBadState)
	}

	ia, ok := obj.(ItemAdder)
	if !ok {
		return fmt.Errorf("%w: object has no in-place-concat equivalent", errs.ErrBadState)
	}

	for _, e := range extend.Seq() {
		if err := ia.AddItem(e); err != nil {
			return fmt.Errorf("%w: extend item: %v", errs.ErrBadState, err)
		}
	}

	return nil
}

func applyUpdate(obj any, update value.Value) error {
	if up, ok := obj.(Updater); ok {
		if err := up.UpdateWith(update); err != nil {
			return fmt.Errorf("%w: update equivalent failed: %v", errs.ErrBadState, err)
		}

		return nil
	}

	ps, ok := obj.(PairSetter)
	if !ok {
		return fmt.Errorf("%w: object has no update equivalent or pair setter", errs.ErrBadState)
	}

	switch update.Kind() {
	case value.KindDict:
		for _, pair := range update.Pairs() {
			if err := ps.SetPair(pair.Key, pair.Val); err != nil {
				return fmt.Errorf("%w: update pair: %v", errs.ErrBadState, err)
			}
		}

		return nil
	case value.KindTuple, value.KindList, value.KindSet, value.KindFrozenSet:
		for _, item := range update.Seq() {
			if item.Kind() != value.KindTuple || len(item.Seq()) != 2 {
				return fmt.Errorf("%w: update item is not a 2-element pair", errs.ErrBadState)
			}

			if err := ps.SetPair(item.Seq()[0], item.Seq()[1]); err != nil {
				return fmt.Errorf("%w: update pair: %v", errs.ErrBadState, err)
			}
		}

		return nil
	default:
		return fmt.Errorf("%w: update arg is neither a mapping nor a pair sequence", errs.ErrBadState)
	}
}
