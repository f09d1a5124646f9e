package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	strict   bool
	maxLumps int
	name     string
}

var errNegative = errors.New("max lumps cannot be negative")

func withMaxLumps(n int) Option[*readerConfig] {
	return New(func(c *readerConfig) error {
		if n < 0 {
			return errNegative
		}
		c.maxLumps = n

		return nil
	})
}

func withStrict(v bool) Option[*readerConfig] {
	return NoError(func(c *readerConfig) { c.strict = v })
}

func withName(name string) Option[*readerConfig] {
	return NoError(func(c *readerConfig) { c.name = name })
}

func TestNew(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		cfg := &readerConfig{}
		require.NoError(t, withMaxLumps(64).apply(cfg))
		require.Equal(t, 64, cfg.maxLumps)
	})

	t.Run("propagates error", func(t *testing.T) {
		cfg := &readerConfig{}
		err := withMaxLumps(-1).apply(cfg)
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 0, cfg.maxLumps)
	})
}

func TestNoError(t *testing.T) {
	cfg := &readerConfig{}
	require.NoError(t, withStrict(true).apply(cfg))
	require.True(t, cfg.strict)
}

func TestApply(t *testing.T) {
	t.Run("in order", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg, withName("first"), withStrict(true), withName("second"))
		require.NoError(t, err)
		require.Equal(t, "second", cfg.name)
		require.True(t, cfg.strict)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg, withName("kept"), withMaxLumps(-1), withName("skipped"))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, "kept", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &readerConfig{name: "unchanged"}
		require.NoError(t, Apply(cfg))
		require.Equal(t, "unchanged", cfg.name)
	})

	t.Run("nil options skipped", func(t *testing.T) {
		cfg := &readerConfig{}
		require.NoError(t, Apply(cfg, nil, withStrict(true)))
		require.True(t, cfg.strict)
	})
}
