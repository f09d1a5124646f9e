// Package compress provides the decompression codecs used for compressed BSP lumps.
//
// # Overview
//
// A lump directory entry with a non-zero compression id holds a framed
// payload instead of the raw lump bytes. The frame starts with a four byte
// tag naming the codec, followed by the declared decompressed and
// compressed sizes:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Tag (4 bytes)          "LZMA" | "ZSTD" | "LZ4\0" | "S2\0\0" │
//	│ ActualSize (4 bytes)   decompressed size, little-endian   │
//	│ CompressedSize (4)     length of the stream that follows  │
//	│ Properties (5 bytes)   LZMA only: lc/lp/pb + dictionary   │
//	├──────────────────────────────────────────────────────────┤
//	│ Stream (CompressedSize bytes)                            │
//	└──────────────────────────────────────────────────────────┘
//
// The map compiler only writes LZMA frames. Zstd, S2 and LZ4 frames are
// produced by repacking tools and are decoded with the same machinery.
//
// # Architecture
//
// The package keeps the three codec interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// and a Registry mapping frame tags to Decompressors. Decompress parses
// the frame, dispatches to the codec and validates the declared sizes:
//
//	data, err := compress.Decompress(raw, entry.CompressionID)
//	if err != nil {
//	    return fmt.Errorf("decompress lump: %w", err)
//	}
//
// A compression id of zero returns the input unchanged, so callers can
// route every lump through Decompress without checking the flag first.
//
// # Codecs
//
//   - LZMA: github.com/ulikunitz/xz/lzma, fed a classic .lzma header
//     rebuilt from the frame properties
//   - Zstd: github.com/klauspost/compress/zstd (pure Go), or
//     github.com/valyala/gozstd when built with the gozstd tag and cgo
//   - S2: github.com/klauspost/compress/s2
//   - LZ4: github.com/pierrec/lz4/v4 block format
//
// # Thread Safety
//
// All codecs and the default registry are safe for concurrent use. A
// Registry must not be modified with Register once it is shared.
//
// # Memory Management
//
// Decompressed buffers are newly allocated and owned by the caller; they
// never alias the compressed input.
package compress
