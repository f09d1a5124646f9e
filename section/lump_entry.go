package section

import (
	"github.com/arloliu/vbsp/endian"
)

// LumpEntry is one slot of the lump directory.
type LumpEntry struct {
	// Offset is the byte offset of the lump in the file.
	//
	// Offset: 0, Size: 4 bytes
	Offset uint32

	// Length is the byte length of the lump as stored, compressed or not.
	//
	// Offset: 4, Size: 4 bytes
	Length uint32

	// Version is the lump format version. Its meaning is lump specific,
	// e.g. leaves version 0 carry inline ambient lighting.
	//
	// Offset: 8, Size: 4 bytes
	Version uint32

	// CompressionID is zero for stored lumps. A non-zero value marks a
	// framed compressed payload; the compiler stores the decompressed size here.
	//
	// Offset: 12, Size: 4 bytes
	CompressionID uint32
}

// Compressed reports whether the lump holds a compressed frame.
func (e LumpEntry) Compressed() bool {
	return e.CompressionID != 0
}

// End returns the exclusive end offset of the lump, computed without overflow.
func (e LumpEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}

// InBounds reports whether the lump lies within a buffer of size bytes.
func (e LumpEntry) InBounds(size int) bool {
	return e.End() <= uint64(size)
}

// Bytes returns the 16 byte encoding of the entry.
func (e LumpEntry) Bytes() []byte {
	var b [LumpEntrySize]byte
	e.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes the entry at offset and returns the next position.
func (e LumpEntry) WriteToSlice(data []byte, offset int) int {
	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(data[offset:offset+4], e.Offset)
	engine.PutUint32(data[offset+4:offset+8], e.Length)
	engine.PutUint32(data[offset+8:offset+12], e.Version)
	engine.PutUint32(data[offset+12:offset+16], e.CompressionID)

	return offset + LumpEntrySize
}

// ParseLumpEntry parses a LumpEntry from a byte slice of at least 16 bytes.
// The caller guarantees the length.
func ParseLumpEntry(data []byte) LumpEntry {
	engine := endian.GetLittleEndianEngine()

	return LumpEntry{
		Offset:        engine.Uint32(data[0:4]),
		Length:        engine.Uint32(data[4:8]),
		Version:       engine.Uint32(data[8:12]),
		CompressionID: engine.Uint32(data[12:16]),
	}
}
