package lump

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/endian"
	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
)

// Reader is a little-endian cursor over the bytes of one lump.
//
// Reads past the end of the data return zero values and record a sticky
// ErrUnexpectedEOF that is reported by Err. Record decoders can therefore
// read a whole record and check the error once.
type Reader struct {
	lump    format.LumpType
	version uint32
	data    []byte
	pos     int
	err     error
	overrun int // offset the failed read wanted to reach
	lenient bool
	engine  endian.EndianEngine
}

// NewReader creates a reader over data, the decompressed bytes of lump t
// whose directory entry carries version.
func NewReader(t format.LumpType, version uint32, data []byte) *Reader {
	return &Reader{
		lump:    t,
		version: version,
		data:    data,
		engine:  endian.GetLittleEndianEngine(),
	}
}

// Lenient returns a copy of r that tolerates record decoders consuming
// fewer bytes than the declared record width.
func (r *Reader) Lenient(lenient bool) *Reader {
	cp := *r
	cp.lenient = lenient

	return &cp
}

// Lump returns the lump type being read.
func (r *Reader) Lump() format.LumpType { return r.lump }

// Version returns the lump version from the directory.
func (r *Reader) Version() uint32 { return r.version }

// Data returns the whole lump, regardless of the cursor position.
func (r *Reader) Data() []byte { return r.data }

// Len returns the total lump length in bytes.
func (r *Reader) Len() int { return len(r.data) }

// Pos returns the cursor position.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Err returns the first read error, if any.
func (r *Reader) Err() error { return r.err }

// sub returns a reader limited to the next n bytes, used per record.
func (r *Reader) sub(n int) *Reader {
	return &Reader{
		lump:    r.lump,
		version: r.version,
		data:    r.data[r.pos : r.pos+n],
		lenient: r.lenient,
		engine:  r.engine,
	}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.Remaining() < n {
		r.err = fmt.Errorf("%w: %s needs %d bytes at offset %d, %d left",
			errs.ErrUnexpectedEOF, r.lump, n, r.pos, r.Remaining())
		r.overrun = r.pos + n
		r.pos = len(r.data)

		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b
}

// Uint8 reads one byte. Reads past the end return zero and set Err.
func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}

	return b[0]
}

// Int8 reads one signed byte.
func (r *Reader) Int8() int8 { return int8(r.Uint8()) }

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}

	return r.engine.Uint16(b)
}

// Int16 reads a little-endian int16.
func (r *Reader) Int16() int16 { return int16(r.Uint16()) }

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}

	return r.engine.Uint32(b)
}

// Int32 reads a little-endian int32.
func (r *Reader) Int32() int32 { return int32(r.Uint32()) }

// Float32 reads a little-endian IEEE 754 float32.
func (r *Reader) Float32() float32 {
	b := r.take(4)
	if b == nil {
		return 0
	}

	return endian.Float32(r.engine, b)
}

// Vector reads three consecutive float32 values.
func (r *Reader) Vector() mgl32.Vec3 {
	return mgl32.Vec3{r.Float32(), r.Float32(), r.Float32()}
}

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(n int) []byte {
	return r.take(n)
}

// Skip advances the cursor over n padding bytes.
func (r *Reader) Skip(n int) {
	r.take(n)
}
