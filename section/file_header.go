package section

import (
	"fmt"

	"github.com/arloliu/vbsp/endian"
	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
)

// Directory is the fixed 64-slot lump directory, indexed by lump type.
type Directory [format.LumpCount]LumpEntry

// Entry returns the directory slot for a lump.
func (d *Directory) Entry(t format.LumpType) (LumpEntry, error) {
	if !t.Valid() {
		return LumpEntry{}, fmt.Errorf("%w: %d", errs.ErrInvalidLumpType, uint8(t))
	}

	return d[t], nil
}

// FileHeader holds everything that precedes the lump data: the
// identification header, the lump directory and the map revision.
type FileHeader struct {
	Header      Header
	Directory   Directory
	MapRevision uint32
}

// ParseFileHeader parses and validates the file header.
//
// The identification header is validated before the directory is read, so
// a file with the wrong magic or version fails with a HeaderMismatchError
// even if it is too short to hold a directory.
//
// Parameters:
//   - data: The whole BSP file
//
// Returns:
//   - FileHeader: Parsed header, directory and revision
//   - error: ErrTruncatedHeader or *errs.HeaderMismatchError
func ParseFileHeader(data []byte) (FileHeader, error) {
	var fh FileHeader
	if err := fh.Header.Parse(data); err != nil {
		return FileHeader{}, err
	}
	if err := fh.Header.Validate(); err != nil {
		return FileHeader{}, err
	}

	if len(data) < FileHeaderSize {
		return FileHeader{}, fmt.Errorf("%w: %d bytes, need %d", errs.ErrTruncatedHeader, len(data), FileHeaderSize)
	}

	for i := range fh.Directory {
		start := DirectoryOffset + i*LumpEntrySize
		fh.Directory[i] = ParseLumpEntry(data[start : start+LumpEntrySize])
	}
	fh.MapRevision = endian.GetLittleEndianEngine().Uint32(data[RevisionOffset:FileHeaderSize])

	return fh, nil
}

// Bytes serializes the file header.
func (fh *FileHeader) Bytes() []byte {
	b := make([]byte, FileHeaderSize)
	copy(b, fh.Header.Bytes())
	offset := DirectoryOffset
	for _, e := range fh.Directory {
		offset = e.WriteToSlice(b, offset)
	}
	endian.GetLittleEndianEngine().PutUint32(b[RevisionOffset:], fh.MapRevision)

	return b
}
