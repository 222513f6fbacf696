package frame

import "github.com/klauspost/compress/s2"

// S2Codec compresses frame payloads with the S2 extension of Snappy.
// S2 favors compression/decompression speed over ratio, making it a good
// default for payloads that are compressed on every call.
type S2Codec struct{}

var _ Codec = S2Codec{}

// Compress compresses data using S2.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses data that was compressed with S2Codec.Compress.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
