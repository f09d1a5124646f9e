package section

import "github.com/arloliu/vbsp/format"

// Supported header values.
var Magic = [4]byte{'V', 'B', 'S', 'P'}

const Version uint32 = 20

// offset and section sizes in the file header
const (
	HeaderSize      = 8                                // magic + version
	LumpEntrySize   = 16                               // offset, length, version, compression id
	DirectoryOffset = HeaderSize                       // directory follows the header
	DirectorySize   = format.LumpCount * LumpEntrySize // fixed 64 entries
	RevisionOffset  = DirectoryOffset + DirectorySize  // map revision follows the directory
	FileHeaderSize  = RevisionOffset + 4               // everything before the first lump
)
