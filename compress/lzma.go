package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// Classic .lzma header: one properties byte, a little-endian uint32
// dictionary capacity and a little-endian uint64 decompressed size.
const (
	lzmaPropsLen  = 5
	lzmaHeaderLen = lzmaPropsLen + 8

	lzmaMinDictCap = lzma.MinDictCap

	// The range coder starts every stream with five bytes, the first
	// always zero.
	lzmaRangeInitLen = 5
)

var errLZMAStream = errors.New("lzma stream: invalid range coder prefix")

// LZMACompressor handles classic .lzma streams, the codec used by the map
// compiler for compressed lumps.
//
// Compress and Decompress work on the classic 13 byte header format
// understood by github.com/ulikunitz/xz/lzma. The registry converts the
// lump frame to and from that format.
type LZMACompressor struct {
	dictCap int
}

var (
	_ Codec             = (*LZMACompressor)(nil)
	_ SizedDecompressor = (*LZMACompressor)(nil)
)

// NewLZMACompressor creates an LZMA compressor with a 1MB dictionary.
func NewLZMACompressor() LZMACompressor {
	return LZMACompressor{dictCap: 1 << 20}
}

// Compress writes data as a classic .lzma stream with the size stored in
// the header and no end marker.
func (c LZMACompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	cfg := lzma.WriterConfig{
		Properties:   &lzma.Properties{LC: 3, LP: 0, PB: 2},
		DictCap:      c.dictCap,
		SizeInHeader: true,
		Size:         int64(len(data)),
		EOSMarker:    false,
	}

	w, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("lzma writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lzma write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lzma close: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reads a classic .lzma stream to its end.
func (c LZMACompressor) Decompress(data []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lzma reader: %w", err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lzma read: %w", err)
	}

	return out, nil
}

// DecompressTo reads at most size bytes from a classic .lzma stream.
// The output grows with the decoded data; the caller checks its length.
//
// The reader allocates its dictionary before touching the stream, so a
// stream without a valid range coder prefix is rejected first.
func (c LZMACompressor) DecompressTo(data []byte, size int) ([]byte, error) {
	if len(data) < lzmaHeaderLen+lzmaRangeInitLen || data[lzmaHeaderLen] != 0 {
		return nil, errLZMAStream
	}

	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lzma reader: %w", err)
	}

	buf := bytes.NewBuffer(make([]byte, 0, allocHint(size, len(data))))
	if _, err := io.Copy(buf, io.LimitReader(r, int64(size))); err != nil {
		return nil, fmt.Errorf("lzma read: %w", err)
	}

	return buf.Bytes(), nil
}
