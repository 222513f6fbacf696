package frame

import "fmt"

// CompressionID identifies the compression algorithm used for a compressed
// frame's payload. It is written as the first byte of the frame.
type CompressionID uint8

const (
	// NoOp stores the payload unchanged.
	NoOp CompressionID = 0x00
	// Zstd compresses the payload with Zstandard.
	Zstd CompressionID = 0x01
	// S2 compresses the payload with the S2 extension of Snappy.
	S2 CompressionID = 0x02
	// LZ4 compresses the payload with LZ4.
	LZ4 CompressionID = 0x03
)

func (c CompressionID) String() string {
	switch c {
	case NoOp:
		return "NoOp"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice produced by the matching
// Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor. Every built-in
// CompressionID has exactly one Codec implementation.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[CompressionID]Codec{
	NoOp: NoOpCodec{},
	Zstd: ZstdCodec{},
	S2:   S2Codec{},
	LZ4:  LZ4Codec{},
}

// CodecFor returns the built-in Codec for id, or an error if id is not
// one of the built-in compression identifiers.
func CodecFor(id CompressionID) (Codec, error) {
	codec, ok := builtinCodecs[id]
	if !ok {
		return nil, fmt.Errorf("frame: unknown compression id 0x%02x", uint8(id))
	}

	return codec, nil
}
