// Package endian provides the byte order used to decode BSP files.
//
// Every multi-byte integer and float in a BSP file is little-endian and
// fixed width. EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary so the same value can drive both the lump decoder and
// the fixture builders used in tests:
//
//	engine := endian.GetLittleEndianEngine()
//	count := engine.Uint32(data[0:4])
//	dist := endian.Float32(engine, data[4:8])
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// every BSP structure.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Float32 decodes an IEEE-754 single from the first four bytes of b.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// PutFloat32 encodes v into the first four bytes of b.
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// AppendFloat32 appends the encoding of v to b.
func AppendFloat32(engine EndianEngine, b []byte, v float32) []byte {
	return engine.AppendUint32(b, math.Float32bits(v))
}
