package frame

import (
	"fmt"

	"github.com/lekma/mood.ippc/endian"
	"github.com/lekma/mood.ippc/errs"
	"github.com/lekma/mood.ippc/wire"
)

// Encode compresses payload (typically the output of the root package's
// Encode) with the Codec registered for id and wraps it in a frame:
//
//	1 byte compression-id | W L(W) | compressed-payload
//
// L is the byte length of the compressed payload, written in the
// narrowest width that represents it, exactly like a container's
// element count.
func Encode(id CompressionID, payload []byte) ([]byte, error) {
	codec, err := CodecFor(id)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("frame: compress with %s: %w", id, err)
	}

	w := wire.NewWriter(endian.GetNativeEndianEngine())
	defer w.Release()

	w.WriteRaw([]byte{byte(id)})

	width := wire.WidthFor(int64(len(compressed)))
	w.WriteRaw([]byte{byte(width)})
	w.WriteLength(width, int64(len(compressed)))
	w.WriteRaw(compressed)

	return append([]byte(nil), w.Bytes()...), nil
}

// Decode reads a frame produced by Encode and returns the decompressed
// payload, byte for byte what was passed to Encode. If that was the root
// package's Encode output, it still starts with its outer length frame.
func Decode(data []byte) ([]byte, error) {
	r := wire.NewReader(data, endian.GetNativeEndianEngine())

	idByte, err := r.ReadRaw(1)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}

	codec, err := CodecFor(CompressionID(idByte[0]))
	if err != nil {
		return nil, err
	}

	widthByte, err := r.ReadRaw(1)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}

	width := wire.Width(widthByte[0])
	if !width.Valid() {
		return nil, fmt.Errorf("%w: frame length width %#x", errs.ErrBadEncoding, widthByte[0])
	}

	n, err := r.ReadLength(width)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}

	compressed, err := r.ReadRaw(int(n))
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("frame: decompress with %s: %w", CompressionID(idByte[0]), err)
	}

	return payload, nil
}
