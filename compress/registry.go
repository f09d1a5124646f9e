package compress

import (
	"fmt"

	"github.com/arloliu/vbsp/endian"
	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
)

// MaxLumpSize bounds the declared decompressed size of a lump. Frames
// declaring more are rejected before any decoding.
const MaxLumpSize = 256 << 20

// Initial output capacity is capped at preallocRatio times the stream
// length (and at least minPrealloc bytes); codecs grow the buffer as they
// produce output, so the declared size alone never drives allocation.
const (
	preallocRatio = 8
	minPrealloc   = 64 << 10
)

// SizedDecompressor is implemented by decompressors that can use the
// declared decompressed size as an output size hint and limit.
//
// Implementations must not allocate more than the stream can produce: the
// declared size comes from an untrusted header.
type SizedDecompressor interface {
	DecompressTo(data []byte, size int) ([]byte, error)
}

// allocHint returns the initial output capacity for a stream of
// streamLen bytes declaring size decompressed bytes.
func allocHint(size, streamLen int) int {
	return min(size, max(streamLen*preallocRatio, minPrealloc))
}

// Registry maps frame tags to decompressors.
//
// Decompressors registered for the LZMA tag receive classic .lzma streams
// (13 byte header rebuilt from the frame), the rest receive the raw stream.
type Registry struct {
	codecs map[format.CompressionTag]Decompressor
}

// NewRegistry creates a registry holding the built-in codecs.
func NewRegistry() *Registry {
	r := &Registry{codecs: make(map[format.CompressionTag]Decompressor, len(builtinCodecs))}
	for tag, codec := range builtinCodecs {
		r.codecs[tag] = codec
	}

	return r
}

// Register sets the decompressor for tag, replacing any previous one.
func (r *Registry) Register(tag format.CompressionTag, d Decompressor) {
	r.codecs[tag] = d
}

// Lookup returns the decompressor registered for tag.
func (r *Registry) Lookup(tag format.CompressionTag) (Decompressor, bool) {
	d, ok := r.codecs[tag]

	return d, ok
}

// Decompress decodes a lump payload.
//
// A compression id of zero marks a stored lump and data is returned as-is.
// Any other id marks a framed payload; the frame tag selects the codec and
// the declared sizes are checked against the stream and the output.
//
// Parameters:
//   - data: Lump bytes as found in the file
//   - id: Compression id from the lump directory
//
// Returns:
//   - []byte: Decompressed lump, newly allocated unless id is zero
//   - error: ErrCompressedHeader, ErrCompressedSize, ErrUnknownCodec,
//     ErrDecompressedSize (also for sizes above MaxLumpSize) or the codec error
func (r *Registry) Decompress(data []byte, id uint32) ([]byte, error) {
	if id == 0 {
		return NewNoOpCompressor().Decompress(data)
	}

	h, err := ParseFrameHeader(data)
	if err != nil {
		return nil, err
	}

	if h.ActualSize > MaxLumpSize {
		return nil, fmt.Errorf("%w: declared %d exceeds limit %d", errs.ErrDecompressedSize, h.ActualSize, MaxLumpSize)
	}

	stream := data[h.Len():]
	if uint64(len(stream)) < uint64(h.CompressedSize) {
		return nil, fmt.Errorf("%w: declared %d, have %d", errs.ErrCompressedSize, h.CompressedSize, len(stream))
	}
	stream = stream[:h.CompressedSize]

	codec, ok := r.Lookup(h.Tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCodec, h.Tag)
	}

	if h.Tag == format.CompressionLZMA {
		stream = classicLZMAStream(h, stream)
	}

	var out []byte
	if sized, ok := codec.(SizedDecompressor); ok {
		out, err = sized.DecompressTo(stream, int(h.ActualSize))
	} else {
		out, err = codec.Decompress(stream)
	}
	if err != nil {
		return nil, err
	}

	if len(out) != int(h.ActualSize) {
		return nil, fmt.Errorf("%w: got %d, want %d", errs.ErrDecompressedSize, len(out), h.ActualSize)
	}

	return out, nil
}

// classicLZMAStream rebuilds the header expected by .lzma readers from the
// frame properties and declared size.
//
// The dictionary capacity is clamped to the declared size: the reader
// allocates the whole dictionary up front and never needs more than the
// output it produces.
func classicLZMAStream(h FrameHeader, stream []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dictCap := engine.Uint32(h.Properties[1:])
	dictCap = min(dictCap, max(h.ActualSize, lzmaMinDictCap))

	out := make([]byte, 0, lzmaHeaderLen+len(stream))
	out = append(out, h.Properties[0])
	out = engine.AppendUint32(out, dictCap)
	out = engine.AppendUint64(out, uint64(h.ActualSize))

	return append(out, stream...)
}

var defaultRegistry = NewRegistry()

// Decompress decodes a lump payload with the built-in codecs.
// See Registry.Decompress.
func Decompress(data []byte, id uint32) ([]byte, error) {
	return defaultRegistry.Decompress(data, id)
}
