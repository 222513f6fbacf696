//go:build !cgo

package frame

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders; klauspost/compress/zstd is
// documented to run allocation-free after warmup when the decoder is
// reused, so pooling it is load-bearing for throughput, not cosmetic.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("frame: failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("frame: failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// ZstdCodec compresses frame payloads with Zstandard. This build (no
// cgo) uses the pure-Go klauspost/compress/zstd implementation; see
// zstd_cgo.go for the cgo-backed alternative.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// Compress compresses data using a pooled, pre-warmed zstd encoder.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder) //nolint:errcheck
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses data that was compressed with
// ZstdCodec.Compress, using a pooled decoder.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder) //nolint:errcheck
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("frame: zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
