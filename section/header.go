package section

import (
	"fmt"

	"github.com/arloliu/vbsp/endian"
	"github.com/arloliu/vbsp/errs"
)

// Header is the 8 byte identification block at the start of a BSP file.
type Header struct {
	Magic   [4]byte // byte offset 0-3
	Version uint32  // byte offset 4-7
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 8 bytes)
//
// Returns:
//   - error: ErrTruncatedHeader if data is too short
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrTruncatedHeader, len(data))
	}

	copy(h.Magic[:], data[0:4])
	h.Version = endian.GetLittleEndianEngine().Uint32(data[4:8])

	return nil
}

// Validate checks magic and version against the single supported format.
//
// Returns:
//   - error: *errs.HeaderMismatchError carrying the offending values
func (h Header) Validate() error {
	if h.Magic != Magic || h.Version != Version {
		return &errs.HeaderMismatchError{Magic: h.Magic, Version: h.Version}
	}

	return nil
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b[0:4], h.Magic[:])
	endian.GetLittleEndianEngine().PutUint32(b[4:8], h.Version)

	return b
}

// String returns the header as it would be printed by a hex viewer, e.g. "VBSP v20".
func (h Header) String() string {
	return fmt.Sprintf("%s v%d", string(h.Magic[:]), h.Version)
}
