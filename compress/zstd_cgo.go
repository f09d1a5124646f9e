//go:build cgo && gozstd

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// DecompressTo decompresses into a buffer that starts at a bounded hint.
func (c ZstdCompressor) DecompressTo(data []byte, size int) ([]byte, error) {
	return gozstd.Decompress(make([]byte, 0, allocHint(size, len(data))), data)
}
