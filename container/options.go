package container

import (
	"github.com/sirupsen/logrus"

	"github.com/arloliu/vbsp/compress"
	"github.com/arloliu/vbsp/format"
	"github.com/arloliu/vbsp/internal/options"
)

type config struct {
	logger   logrus.FieldLogger
	registry *compress.Registry
	ownedReg bool
}

// Option configures a Container.
type Option = options.Option[*config]

// WithLogger sets the logger used for lump diagnostics. A nil logger
// disables logging.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(c *config) {
		c.logger = logger
	})
}

// WithDecompressor replaces the codec used for frames tagged with tag.
//
// Decompressors registered for format.CompressionLZMA receive a classic
// .lzma stream (5 property bytes and the uncompressed size in front of
// the raw stream); all other decompressors receive the raw stream.
func WithDecompressor(tag format.CompressionTag, d compress.Decompressor) Option {
	return options.NoError(func(c *config) {
		if !c.ownedReg {
			c.registry = compress.NewRegistry()
			c.ownedReg = true
		}
		c.registry.Register(tag, d)
	})
}

// WithRegistry uses r for all lump decompression.
func WithRegistry(r *compress.Registry) Option {
	return options.NoError(func(c *config) {
		c.registry = r
		c.ownedReg = false
	})
}
