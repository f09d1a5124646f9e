package compress

import (
	"fmt"

	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
)

// Compressor compresses a complete lump payload.
//
// Compression is only used to build compressed fixtures; decoding maps
// never compresses anything.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a codec stream.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	lump, err := decompressor.Decompress(stream)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with an incompatible algorithm
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionTag]Codec{
	format.CompressionLZMA: NewLZMACompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified frame tag.
//
// Parameters:
//   - tag: Frame tag (LZMA, Zstd, S2 or LZ4)
//
// Returns:
//   - Codec: Codec instance for the tag
//   - error: ErrUnknownCodec wrapped with the tag if no codec is built in
func GetCodec(tag format.CompressionTag) (Codec, error) {
	if codec, ok := builtinCodecs[tag]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCodec, tag)
}
