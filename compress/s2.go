package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/vbsp/errs"
)

// S2Compressor handles S2 block streams.
type S2Compressor struct{}

var (
	_ Codec             = (*S2Compressor)(nil)
	_ SizedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressTo decodes a block whose length prefix must match size.
//
// The prefix is checked before decoding, so a block claiming a different
// length never gets a buffer.
func (c S2Compressor) DecompressTo(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: block holds %d bytes, want %d", errs.ErrDecompressedSize, n, size)
	}

	return s2.Decode(make([]byte, n), data)
}
