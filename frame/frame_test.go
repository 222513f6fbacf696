package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_NoOpRoundTrip(t *testing.T) {
	payload := []byte("a small encoded payload")

	framed, err := Encode(NoOp, payload)
	require.NoError(t, err)
	require.Equal(t, byte(NoOp), framed[0])

	got, err := Decode(framed)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestEncodeDecode_AllBuiltinCodecs(t *testing.T) {
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	for _, id := range []CompressionID{NoOp, Zstd, S2, LZ4} {
		t.Run(id.String(), func(t *testing.T) {
			framed, err := Encode(id, payload)
			require.NoError(t, err)

			got, err := Decode(framed)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestEncode_RejectsUnknownCompressionID(t *testing.T) {
	_, err := Encode(CompressionID(0xff), []byte("x"))
	require.Error(t, err)
}

func TestDecode_RejectsUnknownCompressionID(t *testing.T) {
	_, err := Decode([]byte{0xff, 0x01, 0x00})
	require.Error(t, err)
}

func TestEncodeDecode_EmptyPayload(t *testing.T) {
	framed, err := Encode(NoOp, nil)
	require.NoError(t, err)

	got, err := Decode(framed)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEncode_LargePayloadUsesWiderLengthWidth(t *testing.T) {
	payload := make([]byte, 1<<16)

	framed, err := Encode(NoOp, payload)
	require.NoError(t, err)
	require.Equal(t, byte(4), framed[1], "length over 2^15 bytes must select a 4-byte width")

	got, err := Decode(framed)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
