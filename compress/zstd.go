package compress

// ZstdCompressor handles Zstandard frames.
//
// The implementation is selected at build time: the pure Go
// klauspost/compress decoder by default, or valyala/gozstd when built with
// cgo and the gozstd tag.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
