package compress

import (
	"fmt"

	"github.com/arloliu/vbsp/endian"
	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
)

// Frame header sizes in bytes.
const (
	FrameHeaderSize     = 12                             // tag + actual size + compressed size
	LZMAFrameHeaderSize = FrameHeaderSize + lzmaPropsLen // plus LZMA properties
)

// FrameHeader is the header in front of every compressed lump payload.
type FrameHeader struct {
	// Tag names the codec of the stream.
	Tag format.CompressionTag // offset 0-3
	// ActualSize is the declared decompressed size.
	ActualSize uint32 // offset 4-7
	// CompressedSize is the declared length of the stream after the header.
	CompressedSize uint32 // offset 8-11
	// Properties holds the LZMA lc/lp/pb byte and dictionary size. Zero for other codecs.
	Properties [lzmaPropsLen]byte // offset 12-16, LZMA only
}

// Len returns the encoded size of the header.
func (h FrameHeader) Len() int {
	if h.Tag == format.CompressionLZMA {
		return LZMAFrameHeaderSize
	}

	return FrameHeaderSize
}

// Bytes serializes the header.
func (h FrameHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, h.Len())
	b = append(b, h.Tag[:]...)
	b = engine.AppendUint32(b, h.ActualSize)
	b = engine.AppendUint32(b, h.CompressedSize)
	if h.Tag == format.CompressionLZMA {
		b = append(b, h.Properties[:]...)
	}

	return b
}

// ParseFrameHeader parses the frame header at the start of data.
//
// Returns:
//   - FrameHeader: Parsed header
//   - error: ErrCompressedHeader if data is shorter than the header for its tag
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < FrameHeaderSize {
		return FrameHeader{}, fmt.Errorf("%w: %d bytes", errs.ErrCompressedHeader, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	var h FrameHeader
	copy(h.Tag[:], data[0:4])
	h.ActualSize = engine.Uint32(data[4:8])
	h.CompressedSize = engine.Uint32(data[8:12])

	if h.Tag == format.CompressionLZMA {
		if len(data) < LZMAFrameHeaderSize {
			return FrameHeader{}, fmt.Errorf("%w: %d bytes", errs.ErrCompressedHeader, len(data))
		}
		copy(h.Properties[:], data[FrameHeaderSize:LZMAFrameHeaderSize])
	}

	return h, nil
}

// EncodeFrame compresses data with the built-in codec for tag and prepends
// the frame header. It is the inverse of Decompress.
func EncodeFrame(tag format.CompressionTag, data []byte) ([]byte, error) {
	codec, err := GetCodec(tag)
	if err != nil {
		return nil, err
	}

	stream, err := codec.Compress(data)
	if err != nil {
		return nil, err
	}

	h := FrameHeader{Tag: tag, ActualSize: uint32(len(data))}
	if tag == format.CompressionLZMA {
		if len(stream) < lzmaHeaderLen {
			return nil, fmt.Errorf("lzma stream too short: %d bytes", len(stream))
		}
		copy(h.Properties[:], stream[:lzmaPropsLen])
		stream = stream[lzmaHeaderLen:]
	}
	h.CompressedSize = uint32(len(stream))

	return append(h.Bytes(), stream...), nil
}
