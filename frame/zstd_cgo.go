//go:build cgo

package frame

import "github.com/valyala/gozstd"

// ZstdCodec compresses frame payloads with Zstandard. This build (cgo
// available) uses valyala/gozstd, a cgo binding to the reference C
// library; see zstd_pure.go for the pure-Go alternative used when cgo
// is disabled.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// Compress compresses data using Zstandard at the default level.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses data that was compressed with
// ZstdCodec.Compress.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
