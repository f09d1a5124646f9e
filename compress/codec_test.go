package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
)

// mockDecompressor records its input and returns a fixed result.
type mockDecompressor struct {
	calls  int
	input  []byte
	result []byte
	err    error
}

func (m *mockDecompressor) Decompress(data []byte) ([]byte, error) {
	m.calls++
	m.input = data

	return m.result, m.err
}

func lumpPayload() []byte {
	var buf bytes.Buffer
	for i := range 512 {
		// plane-like records: repetitive, compressible
		_ = binary.Write(&buf, binary.LittleEndian, [5]int32{int32(i % 7), 0, 1, int32(i * 16), 2})
	}

	return buf.Bytes()
}

var allTags = []format.CompressionTag{
	format.CompressionLZMA,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestCodecRoundTrip(t *testing.T) {
	data := lumpPayload()

	for _, tag := range allTags {
		t.Run(tag.String(), func(t *testing.T) {
			codec, err := GetCodec(tag)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionTag{'N', 'O', 'P', 'E'})
	require.Error(t, err)
}

func TestDecompress_StoredLumpIsIdentity(t *testing.T) {
	data := []byte("stored lump bytes")

	out, err := Decompress(data, 0)
	require.NoError(t, err)
	require.Equal(t, data, out)
	// same backing array, no copy
	require.Same(t, &data[0], &out[0])
}

func TestDecompress_Frames(t *testing.T) {
	data := lumpPayload()

	for _, tag := range allTags {
		t.Run(tag.String(), func(t *testing.T) {
			frame, err := EncodeFrame(tag, data)
			require.NoError(t, err)

			h, err := ParseFrameHeader(frame)
			require.NoError(t, err)
			require.Equal(t, tag, h.Tag)
			require.Equal(t, uint32(len(data)), h.ActualSize)
			require.Equal(t, len(frame)-h.Len(), int(h.CompressedSize))

			out, err := Decompress(frame, uint32(len(data)))
			require.NoError(t, err)
			require.Equal(t, data, out)

			// decompressed buffers never alias the frame
			out[0] ^= 0xFF
			again, err := Decompress(frame, uint32(len(data)))
			require.NoError(t, err)
			require.Equal(t, data, again)
		})
	}
}

func TestDecompress_Errors(t *testing.T) {
	data := lumpPayload()

	t.Run("short header", func(t *testing.T) {
		_, err := Decompress([]byte{'L', 'Z', 'M', 'A', 1, 2}, 1)
		require.ErrorIs(t, err, errs.ErrCompressedHeader)
	})

	t.Run("short lzma properties", func(t *testing.T) {
		h := FrameHeader{Tag: format.CompressionLZMA, ActualSize: 10, CompressedSize: 0}
		_, err := Decompress(h.Bytes()[:FrameHeaderSize+2], 1)
		require.ErrorIs(t, err, errs.ErrCompressedHeader)
	})

	t.Run("unknown tag", func(t *testing.T) {
		h := FrameHeader{Tag: format.CompressionTag{'B', 'R', 'O', 'T'}, ActualSize: 4, CompressedSize: 4}
		frame := append(h.Bytes(), 1, 2, 3, 4)
		_, err := Decompress(frame, 1)
		require.ErrorIs(t, err, errs.ErrUnknownCodec)
	})

	t.Run("stream shorter than declared", func(t *testing.T) {
		frame, err := EncodeFrame(format.CompressionZstd, data)
		require.NoError(t, err)

		_, err = Decompress(frame[:len(frame)-3], 1)
		require.ErrorIs(t, err, errs.ErrCompressedSize)
	})

	t.Run("declared size mismatch", func(t *testing.T) {
		frame, err := EncodeFrame(format.CompressionS2, data)
		require.NoError(t, err)

		binary.LittleEndian.PutUint32(frame[4:8], uint32(len(data)+8))
		_, err = Decompress(frame, 1)
		require.ErrorIs(t, err, errs.ErrDecompressedSize)
	})

	t.Run("corrupt stream", func(t *testing.T) {
		frame, err := EncodeFrame(format.CompressionLZ4, data)
		require.NoError(t, err)

		for i := FrameHeaderSize; i < len(frame); i++ {
			frame[i] = 0xFF
		}
		_, err = Decompress(frame, 1)
		require.Error(t, err)
	})
}

func TestRegistry_Register(t *testing.T) {
	data := []byte("0123456789")
	mock := &mockDecompressor{result: data}

	registry := NewRegistry()
	registry.Register(format.CompressionZstd, mock)

	h := FrameHeader{Tag: format.CompressionZstd, ActualSize: uint32(len(data)), CompressedSize: 3}
	frame := append(h.Bytes(), 'a', 'b', 'c', 'd')

	out, err := registry.Decompress(frame, 1)
	require.NoError(t, err)
	require.Equal(t, data, out)
	require.Equal(t, 1, mock.calls)
	require.Equal(t, []byte("abc"), mock.input, "stream is cut at the declared compressed size")

	// the default registry is untouched
	d, ok := defaultRegistry.Lookup(format.CompressionZstd)
	require.True(t, ok)
	require.IsType(t, ZstdCompressor{}, d)
}

func TestRegistry_CodecErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	registry := NewRegistry()
	registry.Register(format.CompressionS2, &mockDecompressor{err: boom})

	h := FrameHeader{Tag: format.CompressionS2, ActualSize: 1, CompressedSize: 1}
	_, err := registry.Decompress(append(h.Bytes(), 0), 1)
	require.ErrorIs(t, err, boom)
}

func TestRegistry_LZMAReceivesClassicHeader(t *testing.T) {
	mock := &mockDecompressor{result: []byte{1, 2, 3, 4, 5}}
	registry := NewRegistry()
	registry.Register(format.CompressionLZMA, mock)

	h := FrameHeader{
		Tag:            format.CompressionLZMA,
		ActualSize:     5,
		CompressedSize: 2,
		Properties:     [5]byte{0x5D, 0, 0, 0x10, 0},
	}
	_, err := registry.Decompress(append(h.Bytes(), 0xAA, 0xBB), 1)
	require.NoError(t, err)

	// dictionary capacity clamped from 1MB to the 4KB minimum
	want := []byte{0x5D, 0, 0x10, 0, 0, 5, 0, 0, 0, 0, 0, 0, 0, 0xAA, 0xBB}
	require.Equal(t, want, mock.input)
}

func TestDecompress_DeclaredSizeLimit(t *testing.T) {
	junk := []byte{0x01, 0x02, 0x03, 0x04}

	for _, tag := range allTags {
		t.Run(tag.String(), func(t *testing.T) {
			h := FrameHeader{Tag: tag, ActualSize: 1 << 30, CompressedSize: uint32(len(junk))}
			_, err := Decompress(append(h.Bytes(), junk...), 1)
			require.ErrorIs(t, err, errs.ErrDecompressedSize)

			h.ActualSize = MaxLumpSize + 1
			_, err = Decompress(append(h.Bytes(), junk...), 1)
			require.ErrorIs(t, err, errs.ErrDecompressedSize)
		})
	}
}

func TestDecompress_DeclaredSizeDoesNotDriveAllocation(t *testing.T) {
	junk := []byte{0x01, 0x02, 0x03, 0x04}
	const budget = 32 << 20

	for _, tag := range allTags {
		t.Run(tag.String(), func(t *testing.T) {
			h := FrameHeader{
				Tag:            tag,
				ActualSize:     MaxLumpSize,
				CompressedSize: uint32(len(junk)),
				Properties:     [5]byte{0x5D, 0xFF, 0xFF, 0xFF, 0xFF},
			}
			frame := append(h.Bytes(), junk...)

			// warm up pooled decoders outside the measurement
			_, _ = Decompress(frame, 1)

			var before, after runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&before)
			_, err := Decompress(frame, 1)
			runtime.ReadMemStats(&after)

			require.Error(t, err)
			require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(budget))
		})
	}
}

func TestLZMADecompressTo_RejectsBadPrefix(t *testing.T) {
	codec := NewLZMACompressor()
	data := lumpPayload()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	broken := append([]byte(nil), compressed...)
	broken[lzmaHeaderLen] = 0x01
	_, err = codec.DecompressTo(broken, len(data))
	require.ErrorIs(t, err, errLZMAStream)

	_, err = codec.DecompressTo(compressed[:lzmaHeaderLen+2], len(data))
	require.ErrorIs(t, err, errLZMAStream)

	out, err := codec.DecompressTo(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestLZ4DecompressTo_RejectsUnreachableSize(t *testing.T) {
	codec := NewLZ4Compressor()

	_, err := codec.DecompressTo([]byte{0x10, 0x41}, 1<<20)
	require.ErrorIs(t, err, errs.ErrDecompressedSize)

	data := bytes.Repeat([]byte{0x42}, 8*1024)
	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	out, err := codec.DecompressTo(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestS2DecompressTo_ChecksLengthPrefix(t *testing.T) {
	codec := NewS2Compressor()
	data := lumpPayload()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	_, err = codec.DecompressTo(compressed, len(data)*2)
	require.ErrorIs(t, err, errs.ErrDecompressedSize)

	out, err := codec.DecompressTo(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestLZ4DecompressGrowsBuffer(t *testing.T) {
	// highly compressible input expands far beyond 4x the block size
	data := bytes.Repeat([]byte{0x42}, 64*1024)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data))

	out, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestEmptyInputs(t *testing.T) {
	for _, codec := range []Codec{NewS2Compressor(), NewLZ4Compressor(), NewZstdCompressor()} {
		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}
