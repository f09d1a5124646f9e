package bsptest

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/endian"
)

// Buf appends little-endian fields, mirroring lump.Reader.
type Buf struct {
	b []byte
}

var engine = endian.GetLittleEndianEngine()

func (w *Buf) U8(v uint8) *Buf   { w.b = append(w.b, v); return w }
func (w *Buf) U16(v uint16) *Buf { w.b = engine.AppendUint16(w.b, v); return w }
func (w *Buf) I16(v int16) *Buf  { return w.U16(uint16(v)) }
func (w *Buf) U32(v uint32) *Buf { w.b = engine.AppendUint32(w.b, v); return w }
func (w *Buf) I32(v int32) *Buf  { return w.U32(uint32(v)) }
func (w *Buf) F32(v float32) *Buf {
	w.b = endian.AppendFloat32(engine, w.b, v)
	return w
}

func (w *Buf) Vec(v mgl32.Vec3) *Buf {
	return w.F32(v[0]).F32(v[1]).F32(v[2])
}

// Pad appends n zero bytes.
func (w *Buf) Pad(n int) *Buf {
	w.b = append(w.b, make([]byte, n)...)
	return w
}

// Raw appends b unchanged.
func (w *Buf) Raw(b []byte) *Buf {
	w.b = append(w.b, b...)
	return w
}

// Bytes returns the encoded fields.
func (w *Buf) Bytes() []byte {
	return w.b
}

// Len returns the number of bytes written.
func (w *Buf) Len() int {
	return len(w.b)
}
