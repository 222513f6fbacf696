package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lekma/mood.ippc/endian"
	"github.com/lekma/mood.ippc/value"
	"github.com/lekma/mood.ippc/wire"
)

func intElem(w *wire.Writer, v value.Value) error {
	w.WriteInt(v.IntValue())
	return nil
}

func decodeIntElem(r *wire.Reader) (value.Value, error) {
	i, err := r.ReadInt()
	if err != nil {
		return value.Value{}, err
	}

	return value.Int(i), nil
}

func TestStrRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	w := wire.NewWriter(engine)
	EncodeStr(w, "hi")
	data := append([]byte(nil), w.Bytes()...)
	w.Release()

	require.Equal(t, []byte{0x31, 0x02, 0x68, 0x69}, data)

	r := wire.NewReader(data, engine)
	s, err := DecodeStr(r)
	require.NoError(t, err)
	require.Equal(t, "hi", s)
}

func TestStrRejectsInvalidUTF8(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := []byte{0x31, 0x01, 0xff}

	r := wire.NewReader(data, engine)
	_, err := DecodeStr(r)
	require.Error(t, err)
}

func TestBytesAndByteArrayRoundTrip(t *testing.T) {
	engine := endian.GetNativeEndianEngine()

	w := wire.NewWriter(engine)
	EncodeBytes(w, []byte{1, 2, 3})
	data := append([]byte(nil), w.Bytes()...)
	w.Release()

	r := wire.NewReader(data, engine)
	b, err := DecodeBytes(r)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)

	w = wire.NewWriter(engine)
	EncodeByteArray(w, []byte{4, 5})
	data = append([]byte(nil), w.Bytes()...)
	w.Release()

	r = wire.NewReader(data, engine)
	b, err = DecodeByteArray(r)
	require.NoError(t, err)
	require.Equal(t, []byte{4, 5}, b)
}

func TestEncodeSeq_TupleScenario(t *testing.T) {
	// pack((1, 2)) -> 61 02 01 01 01 02
	engine := endian.GetLittleEndianEngine()

	w := wire.NewWriter(engine)
	defer w.Release()

	err := EncodeSeq(w, wire.KindTuple, []value.Value{value.Int(1), value.Int(2)}, intElem)
	require.NoError(t, err)
	require.Equal(t, []byte{0x61, 0x02, 0x01, 0x01, 0x01, 0x02}, w.Bytes())
}

func TestDecodeSeq_RoundTrip(t *testing.T) {
	engine := endian.GetNativeEndianEngine()

	w := wire.NewWriter(engine)
	err := EncodeSeq(w, wire.KindList, []value.Value{value.Int(1), value.Int(2), value.Int(3)}, intElem)
	require.NoError(t, err)
	data := append([]byte(nil), w.Bytes()...)
	w.Release()

	r := wire.NewReader(data, engine)
	elems, err := DecodeSeq(r, wire.KindList, decodeIntElem)
	require.NoError(t, err)
	require.Len(t, elems, 3)
	require.Equal(t, int64(1), elems[0].IntValue())
	require.Equal(t, int64(3), elems[2].IntValue())
}

func TestEncodeSeq_EmptyScenario(t *testing.T) {
	// pack({}) (dict) -> 81 00; exercised here for an empty tuple-shaped
	// sequence to check the zero-length path shared by every composite.
	engine := endian.GetLittleEndianEngine()

	w := wire.NewWriter(engine)
	defer w.Release()

	err := EncodeSeq(w, wire.KindTuple, nil, intElem)
	require.NoError(t, err)
	require.Equal(t, []byte{0x61, 0x00}, w.Bytes())
}

func TestDictRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	w := wire.NewWriter(engine)
	err := EncodeDict(w, nil, intElem)
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0x00}, w.Bytes())
	w.Release()

	pairs := []value.DictEntry{
		{Key: value.Int(1), Val: value.Int(10)},
		{Key: value.Int(2), Val: value.Int(20)},
	}

	w = wire.NewWriter(engine)
	err = EncodeDict(w, pairs, intElem)
	require.NoError(t, err)
	data := append([]byte(nil), w.Bytes()...)
	w.Release()

	r := wire.NewReader(data, engine)
	got, err := DecodeDict(r, decodeIntElem)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].Key.IntValue())
	require.Equal(t, int64(20), got[1].Val.IntValue())
}

func TestDecodeSeq_WrongKindRejected(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := []byte{byte(wire.WithWidth(wire.KindList, wire.Width1)), 0x00}

	r := wire.NewReader(data, engine)
	_, err := DecodeSeq(r, wire.KindTuple, decodeIntElem)
	require.Error(t, err)
}
