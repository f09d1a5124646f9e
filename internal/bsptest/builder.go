// Package bsptest builds synthetic BSP files for tests.
package bsptest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vbsp/compress"
	"github.com/arloliu/vbsp/format"
	"github.com/arloliu/vbsp/section"
)

type pendingLump struct {
	data    []byte
	version uint32
	tag     format.CompressionTag
	packed  bool
	raw     *section.LumpEntry
}

// Builder assembles a BSP file from lump contents. Lumps are laid out
// after the file header in directory order.
type Builder struct {
	header   section.Header
	revision uint32
	lumps    [format.LumpCount]pendingLump
	trailer  int
}

// New returns a builder for a valid empty version 20 map.
func New() *Builder {
	return &Builder{header: section.Header{Magic: section.Magic, Version: section.Version}}
}

// Magic overrides the file magic.
func (b *Builder) Magic(m [4]byte) *Builder {
	b.header.Magic = m
	return b
}

// Version overrides the file version.
func (b *Builder) Version(v uint32) *Builder {
	b.header.Version = v
	return b
}

// Revision sets the map revision.
func (b *Builder) Revision(r uint32) *Builder {
	b.revision = r
	return b
}

// Lump stores data uncompressed in lump t.
func (b *Builder) Lump(t format.LumpType, version uint32, data []byte) *Builder {
	b.lumps[t] = pendingLump{data: data, version: version}
	return b
}

// CompressedLump stores data in lump t framed and compressed with tag.
func (b *Builder) CompressedLump(t format.LumpType, version uint32, tag format.CompressionTag, data []byte) *Builder {
	b.lumps[t] = pendingLump{data: data, version: version, tag: tag, packed: true}
	return b
}

// RawEntry writes e verbatim into the directory slot of t without any
// lump data, for out of bounds and corrupt entry tests.
func (b *Builder) RawEntry(t format.LumpType, e section.LumpEntry) *Builder {
	b.lumps[t] = pendingLump{raw: &e}
	return b
}

// Trailer appends n zero bytes after the last lump.
func (b *Builder) Trailer(n int) *Builder {
	b.trailer = n
	return b
}

// Build encodes the file.
func (b *Builder) Build() ([]byte, error) {
	fh := section.FileHeader{Header: b.header, MapRevision: b.revision}
	body := make([]byte, 0, 4096)
	offset := section.FileHeaderSize

	for i, pl := range b.lumps {
		t := format.LumpType(i)
		if pl.raw != nil {
			fh.Directory[t] = *pl.raw
			continue
		}
		if pl.data == nil && !pl.packed {
			continue
		}

		payload := pl.data
		var id uint32
		if pl.packed {
			framed, err := compress.EncodeFrame(pl.tag, pl.data)
			if err != nil {
				return nil, fmt.Errorf("compress %s: %w", t, err)
			}
			payload = framed
			// the compiler stores the uncompressed size, any non-zero value works
			id = uint32(len(pl.data)) | 1
		}

		fh.Directory[t] = section.LumpEntry{
			Offset:        uint32(offset),
			Length:        uint32(len(payload)),
			Version:       pl.version,
			CompressionID: id,
		}
		body = append(body, payload...)
		offset += len(payload)

		// lumps are 4 byte aligned in compiled maps
		for offset%4 != 0 {
			body = append(body, 0)
			offset++
		}
	}

	out := fh.Bytes()
	out = append(out, body...)
	out = append(out, make([]byte, b.trailer)...)

	return out, nil
}

// MustBuild encodes the file and fails the test on error.
func (b *Builder) MustBuild(tb testing.TB) []byte {
	tb.Helper()
	data, err := b.Build()
	require.NoError(tb, err)

	return data
}
