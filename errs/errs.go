// Package errs defines the sentinel and typed errors returned by vbsp.
//
// Sentinels are meant for errors.Is checks. The typed errors carry the
// context needed to diagnose a malformed map without re-parsing it, and
// each of them unwraps to its sentinel.
package errs

import (
	"errors"
	"fmt"

	"github.com/arloliu/vbsp/format"
)

// Container errors.
var (
	ErrUnexpectedHeader    = errors.New("unexpected bsp header")
	ErrTruncatedHeader     = errors.New("file too short for bsp header")
	ErrLumpOutOfBounds     = errors.New("lump out of bounds")
	ErrInvalidLumpType     = errors.New("invalid lump type")
	ErrInvalidLumpSize     = errors.New("lump size is not a multiple of the element size")
	ErrRecordSize          = errors.New("record decoder consumed an unexpected number of bytes")
	ErrUnexpectedEOF       = errors.New("unexpected end of lump")
	ErrDecompress          = errors.New("lump decompression failed")
	ErrUnknownCodec        = errors.New("unknown compression tag")
	ErrCompressedHeader    = errors.New("compressed lump header too short")
	ErrCompressedSize      = errors.New("compressed lump shorter than declared size")
	ErrDecompressedSize    = errors.New("decompressed size does not match declared size")
	ErrTruncatedVisibility = errors.New("visibility offset table truncated")
)

// Entity errors. These are fatal to a single entity record only.
var (
	ErrNoSuchProperty   = errors.New("no such property")
	ErrElementCount     = errors.New("not enough elements for array property")
	ErrInvalidValue     = errors.New("invalid property value")
	ErrInvalidEnumValue = errors.New("invalid enum value")
)

// Name index errors.
var (
	ErrEmptyName     = errors.New("empty name")
	ErrDuplicateName = errors.New("name already registered")
	ErrHashCollision = errors.New("name hash collision")
)

// HeaderMismatchError reports a header whose magic or version differs from
// the single supported one.
type HeaderMismatchError struct {
	Magic   [4]byte
	Version uint32
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("%s: magic %q version %d", ErrUnexpectedHeader, e.Magic[:], e.Version)
}

func (e *HeaderMismatchError) Unwrap() error { return ErrUnexpectedHeader }

// LumpOutOfBoundsError reports a directory entry addressing bytes past the
// end of the source buffer.
type LumpOutOfBoundsError struct {
	Lump      format.LumpType
	Offset    uint32
	Length    uint32
	BufferLen int
}

func (e *LumpOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %s [%d, %d) exceeds buffer of %d bytes",
		ErrLumpOutOfBounds, e.Lump, e.Offset, uint64(e.Offset)+uint64(e.Length), e.BufferLen)
}

func (e *LumpOutOfBoundsError) Unwrap() error { return ErrLumpOutOfBounds }

// LumpSizeError reports a lump whose byte length is not a whole number of
// fixed-size records.
type LumpSizeError struct {
	Lump        format.LumpType
	ElementSize int
	LumpSize    int
}

func (e *LumpSizeError) Error() string {
	return fmt.Sprintf("%s: %s has %d bytes, element size %d",
		ErrInvalidLumpSize, e.Lump, e.LumpSize, e.ElementSize)
}

func (e *LumpSizeError) Unwrap() error { return ErrInvalidLumpSize }

// RecordSizeError reports a record decoder that did not consume exactly the
// declared on-disk width.
type RecordSizeError struct {
	Lump        format.LumpType
	Index       int
	ElementSize int
	Consumed    int
}

func (e *RecordSizeError) Error() string {
	return fmt.Sprintf("%s: %s record %d consumed %d bytes, want %d",
		ErrRecordSize, e.Lump, e.Index, e.Consumed, e.ElementSize)
}

func (e *RecordSizeError) Unwrap() error { return ErrRecordSize }

// DecompressError wraps a codec failure for one lump.
type DecompressError struct {
	Lump format.LumpType
	Err  error
}

func (e *DecompressError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDecompress, e.Lump, e.Err)
}

func (e *DecompressError) Unwrap() []error { return []error{ErrDecompress, e.Err} }

// PropertyError ties an entity conversion failure to the property it came from.
type PropertyError struct {
	Key string
	Err error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %q: %v", e.Key, e.Err)
}

func (e *PropertyError) Unwrap() error { return e.Err }
