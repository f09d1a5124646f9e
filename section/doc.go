// Package section defines the fixed binary structures at the start of a
// Source BSP file.
//
// # File Header
//
// Every version 20 map starts with a 1036 byte block:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (8 bytes)                                        │
//	│  - Magic (4 bytes): "VBSP"                              │
//	│  - Version (4 bytes): 20                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Lump directory (64 × 16 bytes)                          │
//	│  - One LumpEntry per lump type, in directory order      │
//	├─────────────────────────────────────────────────────────┤
//	│ Map revision (4 bytes)                                  │
//	└─────────────────────────────────────────────────────────┘
//
// # Lump Entry Format
//
//	Bytes  | Field         | Type   | Description
//	-------|---------------|--------|----------------------------------
//	0-3    | Offset        | uint32 | Byte offset of the lump in the file
//	4-7    | Length        | uint32 | Stored byte length
//	8-11   | Version       | uint32 | Lump format version
//	12-15  | CompressionID | uint32 | 0 = stored, otherwise compressed frame
//
// All values are little-endian. Lump payloads may appear in any order after
// the file header and may be shared or empty (length 0).
//
// # Usage
//
//	fh, err := section.ParseFileHeader(data)
//	if err != nil {
//	    return err
//	}
//	entry := fh.Directory[format.LumpPlanes]
//	if !entry.InBounds(len(data)) {
//	    // out of bounds
//	}
//
// All types in this package are plain values and safe for concurrent use.
package section
