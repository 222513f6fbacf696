package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lekma/mood.ippc/errs"
	"github.com/lekma/mood.ippc/registry"
	"github.com/lekma/mood.ippc/value"
)

func TestPack_Scenario_Null(t *testing.T) {
	data, err := Pack(value.Null())
	require.NoError(t, err)
	require.Equal(t, []byte{0x21}, data)

	got, err := Unpack(data)
	require.NoError(t, err)
	require.Equal(t, value.KindNull, got.Kind())
}

func TestPack_Scenario_Bool(t *testing.T) {
	data, err := Pack(value.Bool(true))
	require.NoError(t, err)
	require.Equal(t, []byte{0x22}, data)

	data, err = Pack(value.Bool(false))
	require.NoError(t, err)
	require.Equal(t, []byte{0x23}, data)
}

func TestPack_Scenario_IntWidths(t *testing.T) {
	data, err := Pack(value.Int(127))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x7f}, data)

	data, err = Pack(value.Int(-1))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0xff}, data)
}

func TestPack_Scenario_Str(t *testing.T) {
	data, err := Pack(value.Str("hi"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x31, 0x02, 0x68, 0x69}, data)
}

func TestPack_Scenario_Tuple(t *testing.T) {
	data, err := Pack(value.Tuple(value.Int(1), value.Int(2)))
	require.NoError(t, err)
	require.Equal(t, []byte{0x61, 0x02, 0x01, 0x01, 0x01, 0x02}, data)
}

func TestPack_Scenario_EmptyDict(t *testing.T) {
	data, err := Pack(value.Dict())
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0x00}, data)
}

func TestEncode_Scenario_SingleElementTuple(t *testing.T) {
	data, err := Encode(value.Tuple(value.Int(1)))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x04, 0x61, 0x01, 0x01, 0x01}, data)
}

func TestSize_MatchesPackLengthOfEncodedFrame(t *testing.T) {
	v := value.Tuple(value.Int(1))

	payload, err := Pack(v)
	require.NoError(t, err)

	framed, err := Encode(v)
	require.NoError(t, err)

	width := framed[0]
	n, err := Size(framed[1 : 1+width])
	require.NoError(t, err)
	require.Equal(t, int64(len(payload)), n)
}

func TestSize_RejectsWrongBufferLength(t *testing.T) {
	_, err := Size([]byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrBadLength)
}

func TestRoundTrip_AllPrimitiveKinds(t *testing.T) {
	values := []value.Value{
		value.Null(),
		value.Bool(true),
		value.Bool(false),
		value.Int(-129),
		value.Uint(1 << 63),
		value.Float(2.5),
		value.Complex(1, -2),
		value.Str("héllo→🎉"),
		value.Bytes([]byte{1, 2, 3}),
		value.ByteArray([]byte{4, 5}),
	}

	for _, v := range values {
		data, err := Pack(v)
		require.NoError(t, err)

		got, err := Unpack(data)
		require.NoError(t, err)
		require.True(t, v.Equal(got), "kind %s round-trip mismatch", v.Kind())
	}
}

func TestRoundTrip_NestedContainers(t *testing.T) {
	v := value.List(
		value.Tuple(value.Int(1), value.Str("a")),
		value.Dict(value.DictEntry{Key: value.Str("k"), Val: value.Int(9)}),
		value.Set(value.Int(1), value.Int(2), value.Int(3)),
		value.FrozenSet(value.Str("x"), value.Str("y")),
	)

	data, err := Pack(v)
	require.NoError(t, err)

	got, err := Unpack(data)
	require.NoError(t, err)
	require.True(t, v.Equal(got))
}

func TestRoundTrip_ZeroLengthContainers(t *testing.T) {
	values := []value.Value{
		value.Tuple(),
		value.List(),
		value.Dict(),
		value.Set(),
		value.FrozenSet(),
	}

	for _, v := range values {
		data, err := Pack(v)
		require.NoError(t, err)

		got, err := Unpack(data)
		require.NoError(t, err)
		require.True(t, v.Equal(got))
	}
}

func TestRoundTrip_IntWidthBoundaries(t *testing.T) {
	values := []int64{127, 128, -128, -129, 32767, 32768, -32768, -32769,
		1<<31 - 1, 1 << 31, -(1 << 31), -(1<<31) - 1}

	for _, iv := range values {
		data, err := Pack(value.Int(iv))
		require.NoError(t, err)

		got, err := Unpack(data)
		require.NoError(t, err)
		require.Equal(t, iv, got.IntValue())
	}
}

func TestRecursionBound_PackFailsPastLimit(t *testing.T) {
	const limit = 5

	build := func(depthN int) value.Value {
		v := value.Int(0)
		for i := 0; i < depthN; i++ {
			v = value.Tuple(v)
		}

		return v
	}

	_, err := Pack(build(limit-1), WithMaxDepth(limit))
	require.NoError(t, err)

	_, err = Pack(build(limit+1), WithMaxDepth(limit))
	require.ErrorIs(t, err, errs.ErrRecursion)
}

func TestRecursionBound_UnpackFailsPastLimit(t *testing.T) {
	const limit = 5

	build := func(depthN int) value.Value {
		v := value.Int(0)
		for i := 0; i < depthN; i++ {
			v = value.Tuple(v)
		}

		return v
	}

	data, err := Pack(build(limit + 1))
	require.NoError(t, err)

	_, err = Unpack(data, WithMaxDepth(limit))
	require.ErrorIs(t, err, errs.ErrRecursion)
}

func TestCycleDetection_SharedBackingSliceRejected(t *testing.T) {
	shared := []value.Value{value.Int(1), value.Int(2)}
	v := value.List(value.List(shared...), value.List(shared...))

	_, err := Pack(v)
	require.NoError(t, err, "cycle detection is off by default")

	_, err = Pack(v, WithCycleDetection(true))
	require.ErrorIs(t, err, errs.ErrRecursion)
}

func TestCycleDetection_DistinctSlicesNotRejected(t *testing.T) {
	v := value.List(
		value.List(value.Int(1), value.Int(2)),
		value.List(value.Int(1), value.Int(2)),
	)

	_, err := Pack(v, WithCycleDetection(true))
	require.NoError(t, err, "equal-valued but distinct backing arrays are not a cycle")
}

func TestRegisterClassAndDecodeRoundTrip(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterClass(reg, "pkg", "Widget", "widget-handle"))

	data, err := Pack(value.NewClassRef("pkg", "Widget"), WithRegistry(reg))
	require.NoError(t, err)

	got, err := Unpack(data, WithRegistry(reg))
	require.NoError(t, err)
	require.Equal(t, value.KindClassRef, got.Kind())
	require.Equal(t, "widget-handle", got.Handle())
}

func TestUnpackClassRef_NotRegistered(t *testing.T) {
	reg := registry.New()

	data, err := Pack(value.NewClassRef("pkg", "Widget"), WithRegistry(reg))
	require.NoError(t, err)

	_, err = Unpack(data, WithRegistry(reg))
	require.ErrorIs(t, err, errs.ErrNotRegistered)
}

func TestSingletonRegistrationAndUnpack(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterSingleton(reg, "MySingleton", "my-handle"))

	data, err := Pack(value.NewSingleton("MySingleton"), WithRegistry(reg))
	require.NoError(t, err)

	got, err := Unpack(data, WithRegistry(reg))
	require.NoError(t, err)
	require.Equal(t, "my-handle", got.Handle())
}

func TestBuiltinSingletons_PrePopulated(t *testing.T) {
	data, err := Pack(value.NewSingleton(registry.BuiltinNotImplemented))
	require.NoError(t, err)

	got, err := Unpack(data)
	require.NoError(t, err)
	require.Equal(t, registry.BuiltinNotImplemented, got.Handle())
}

func TestRegisterClass_ConflictRejected(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterClass(reg, "pkg", "Widget", "handle-1"))

	err := RegisterClass(reg, "pkg", "Widget", "handle-2")
	require.ErrorIs(t, err, errs.ErrAlreadyRegistered)
}

func TestRegisterClass_Idempotent(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterClass(reg, "pkg", "Widget", "handle-1"))
	require.NoError(t, RegisterClass(reg, "pkg", "Widget", "handle-1"))
	require.Equal(t, 1, reg.Len())
}

type point struct {
	x, y int64
}

type pointFactory struct{}

func (pointFactory) Construct(args []value.Value) (any, error) {
	return &point{x: args[0].IntValue(), y: args[1].IntValue()}, nil
}

func (p *point) SetField(name string, v value.Value) error {
	switch name {
	case "x":
		p.x = v.IntValue()
	case "y":
		p.y = v.IntValue()
	}

	return nil
}

func TestInstance_FullPipelineThroughCodec(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterClass(reg, "geo", "Point", pointFactory{}))

	state := value.Dict(value.DictEntry{Key: value.Str("y"), Val: value.Int(99)})
	v := value.NewInstance(value.Instance{
		Callable: value.NewClassRef("geo", "Point"),
		Args:     []value.Value{value.Int(1), value.Int(2)},
		State:    &state,
	})

	data, err := Pack(v, WithRegistry(reg))
	require.NoError(t, err)

	got, err := Unpack(data, WithRegistry(reg))
	require.NoError(t, err)

	p, ok := got.Handle().(*point)
	require.True(t, ok)
	require.Equal(t, int64(1), p.x)
	require.Equal(t, int64(99), p.y)
}
