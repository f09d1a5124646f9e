// Package container gives access to the raw lumps of a BSP file.
//
// Open validates the file header and reads the lump directory without
// touching lump data. Lump returns the bytes of one lump, borrowed from the
// input buffer when stored and decompressed into a new buffer otherwise.
package container

import (
	"github.com/sirupsen/logrus"

	"github.com/arloliu/vbsp/compress"
	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
	"github.com/arloliu/vbsp/internal/logging"
	"github.com/arloliu/vbsp/internal/options"
	"github.com/arloliu/vbsp/lump"
	"github.com/arloliu/vbsp/section"
)

// Container is a validated BSP file. It is immutable and safe for
// concurrent use; the caller must not modify the input buffer while the
// container or any borrowed lump is in use.
type Container struct {
	data     []byte
	header   section.FileHeader
	logger   logrus.FieldLogger
	registry *compress.Registry
}

// Lump is the decoded byte content of one lump.
type Lump struct {
	Type    format.LumpType
	Version uint32
	Data    []byte
	// Owned is false when Data aliases the container's input buffer.
	Owned bool
}

// Open validates the header of data and reads the lump directory.
//
// Parameters:
//   - data: Complete BSP file contents
//   - opts: Optional configuration (WithLogger, WithDecompressor)
//
// Returns:
//   - *Container: Container borrowing data
//   - error: *errs.HeaderMismatchError for a foreign or unsupported file,
//     ErrTruncatedHeader when data cannot hold the file header
func Open(data []byte, opts ...Option) (*Container, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseFileHeader(data)
	if err != nil {
		return nil, err
	}

	c := &Container{
		data:     data,
		header:   header,
		logger:   logging.OrDiscard(cfg.logger),
		registry: cfg.registry,
	}
	if c.registry == nil {
		c.registry = compress.NewRegistry()
	}

	c.logger.WithFields(logrus.Fields{
		"version":  header.Header.Version,
		"revision": header.MapRevision,
		"size":     len(data),
	}).Debug("opened bsp container")

	return c, nil
}

// Header returns the identification header.
func (c *Container) Header() section.Header {
	return c.header.Header
}

// MapRevision returns the map revision stored after the directory.
func (c *Container) MapRevision() uint32 {
	return c.header.MapRevision
}

// Directory returns a copy of the lump directory.
func (c *Container) Directory() section.Directory {
	return c.header.Directory
}

// Entry returns the directory entry of lump t.
func (c *Container) Entry(t format.LumpType) (section.LumpEntry, error) {
	return c.header.Directory.Entry(t)
}

// Size returns the length of the underlying file.
func (c *Container) Size() int {
	return len(c.data)
}

// Lump returns the content of lump t.
//
// Stored lumps are returned as a subslice of the input buffer. Compressed
// lumps are decompressed into a new buffer on every call.
//
// Returns:
//   - Lump: Lump content and directory version
//   - error: ErrInvalidLumpType, *errs.LumpOutOfBoundsError or
//     *errs.DecompressError
func (c *Container) Lump(t format.LumpType) (Lump, error) {
	entry, err := c.Entry(t)
	if err != nil {
		return Lump{}, err
	}

	if !entry.InBounds(len(c.data)) {
		return Lump{}, &errs.LumpOutOfBoundsError{
			Lump:      t,
			Offset:    entry.Offset,
			Length:    entry.Length,
			BufferLen: len(c.data),
		}
	}

	raw := c.data[entry.Offset:entry.End()]
	log := c.logger.WithFields(logrus.Fields{
		"lump":    t.String(),
		"version": entry.Version,
		"bytes":   len(raw),
	})

	if !entry.Compressed() {
		log.Debug("read lump")

		return Lump{Type: t, Version: entry.Version, Data: raw}, nil
	}

	data, err := c.registry.Decompress(raw, entry.CompressionID)
	if err != nil {
		log.WithError(err).Warn("lump decompression failed")

		return Lump{}, &errs.DecompressError{Lump: t, Err: err}
	}
	log.WithField("decompressed", len(data)).Debug("read compressed lump")

	return Lump{Type: t, Version: entry.Version, Data: data, Owned: true}, nil
}

// LumpReader returns a record reader over the content of lump t.
func (c *Container) LumpReader(t format.LumpType) (*lump.Reader, error) {
	l, err := c.Lump(t)
	if err != nil {
		return nil, err
	}

	return lump.NewReader(l.Type, l.Version, l.Data), nil
}

// Lumps returns the types of all non-empty lumps in directory order.
func (c *Container) Lumps() []format.LumpType {
	var out []format.LumpType
	for i, e := range c.header.Directory {
		if e.Length > 0 {
			out = append(out, format.LumpType(i))
		}
	}

	return out
}
