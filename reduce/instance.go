package reduce

import (
	"fmt"

	"github.com/lekma/mood.ippc/container"
	"github.com/lekma/mood.ippc/errs"
	"github.com/lekma/mood.ippc/value"
	"github.com/lekma/mood.ippc/wire"
)

// EncodeInstance writes an INSTANCE value: pack R = (callable, args,
// [state], [extend], [update]) as a tuple into a scratch buffer, then
// emit tag INSTANCE with that buffer's length prefix followed by the
// buffer (§4.4). Optional trailing stages are included only up to the
// last one actually present, padded with Null for any gap before it
// (e.g. state absent but update present still encodes a Null state
// slot so update lands at the expected tuple position).
func EncodeInstance(w *wire.Writer, inst *value.Instance, encodeElem container.EncodeElem) error {
	elems := []value.Value{inst.Callable, value.Tuple(inst.Args...)}

	last := -1
	if inst.Update != nil {
		last = 2
	} else if inst.Extend != nil {
		last = 1
	} else if inst.State != nil {
		last = 0
	}

	stages := []*value.Value{inst.State, inst.Extend, inst.Update}
	for i := 0; i <= last; i++ {
		if stages[i] != nil {
			elems = append(elems, *stages[i])
		} else {
			elems = append(elems, value.Null())
		}
	}

	scratch := wire.NewWriter(w.Engine())
	defer scratch.Release()

	if err := container.EncodeSeq(scratch, wire.KindTuple, elems, encodeElem); err != nil {
		return err
	}

	data := scratch.Bytes()
	w.WriteTagLen(wire.KindInstance, int64(len(data)))
	w.WriteRaw(data)

	return nil
}

// DecodeInstance reads an INSTANCE value's inner descriptor tuple
// R' = (callable, args, [state], [extend], [update]).
func DecodeInstance(r *wire.Reader, decodeElem container.DecodeElem) (*value.Instance, error) {
	n, _, err := r.ReadTagLen(wire.KindInstance)
	if err != nil {
		return nil, err
	}

	raw, err := r.ReadRaw(int(n))
	if err != nil {
		return nil, err
	}

	raw = append([]byte(nil), raw...)
	inner := wire.NewReader(raw, r.Engine())

	elems, err := container.DecodeSeq(inner, wire.KindTuple, decodeElem)
	if err != nil {
		return nil, fmt.Errorf("%w: instance descriptor: %v", errs.ErrBadReduce, err)
	}

	if len(elems) < 2 || len(elems) > 5 {
		return nil, fmt.Errorf("%w: instance descriptor has %d elements, want 2-5", errs.ErrBadReduce, len(elems))
	}

	if elems[1].Kind() != value.KindTuple {
		return nil, fmt.Errorf("%w: instance args is not a tuple", errs.ErrBadReduce)
	}

	inst := &value.Instance{
		Callable: elems[0],
		Args:     elems[1].Seq(),
	}

	slots := []**value.Value{&inst.State, &inst.Extend, &inst.Update}
	for i := 2; i < len(elems); i++ {
		e := elems[i]
		if e.Kind() == value.KindNull {
			continue
		}

		*slots[i-2] = &e
	}

	return inst, nil
}
