package bsp

import (
	"github.com/sirupsen/logrus"

	"github.com/arloliu/vbsp/compress"
	"github.com/arloliu/vbsp/container"
	"github.com/arloliu/vbsp/format"
	"github.com/arloliu/vbsp/internal/logging"
	"github.com/arloliu/vbsp/internal/options"
)

type config struct {
	logger    logrus.FieldLogger
	strict    bool
	container []container.Option
}

func defaultConfig() *config {
	return &config{
		logger: logging.Discard(),
		strict: true,
	}
}

// Option configures Read.
type Option = options.Option[*config]

// WithLogger sets the logger for decode diagnostics. The container
// reader logs through the same logger. A nil logger disables logging.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(c *config) {
		c.logger = logging.OrDiscard(logger)
		c.container = append(c.container, container.WithLogger(logger))
	})
}

// WithDecompressor overrides the codec used for lumps compressed with tag.
func WithDecompressor(tag format.CompressionTag, d compress.Decompressor) Option {
	return options.NoError(func(c *config) {
		c.container = append(c.container, container.WithDecompressor(tag, d))
	})
}

// WithStrictRecords controls the record width check. When enabled, the
// default, a record decoder that consumes fewer bytes than the on-disk
// record width fails the read. Reading past a record is always an error.
func WithStrictRecords(strict bool) Option {
	return options.NoError(func(c *config) {
		c.strict = strict
	})
}
