package vbsp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vbsp/bsp"
	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
	"github.com/arloliu/vbsp/internal/bsptest"
)

const entities = `{"classname" "light" "origin" "1 2 3" "_light" "255 255 255 200"}`

func writeMap(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.bsp")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestOpen(t *testing.T) {
	data := bsptest.New().
		Revision(7).
		Lump(format.LumpEntities, 0, []byte(entities)).
		MustBuild(t)
	path := writeMap(t, data)

	m, err := Open(path, bsp.WithStrictRecords(true))
	require.NoError(t, err)
	require.Equal(t, uint32(7), m.MapRevision)
	require.Equal(t, 1, m.Entities.Len())

	// the map owns its data
	require.NoError(t, os.Remove(path))
	require.Equal(t, 1, m.Entities.Len())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bsp"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeMap(t, []byte("IBSP\x26\x00\x00\x00"))
	_, err = Open(path)
	require.ErrorIs(t, err, errs.ErrUnexpectedHeader)
}

func TestRead(t *testing.T) {
	data := bsptest.New().MustBuild(t)
	m, err := Read(data)
	require.NoError(t, err)
	require.Zero(t, m.Leaves.Len())
}

func TestReadEntities(t *testing.T) {
	data := bsptest.New().
		CompressedLump(format.LumpEntities, 0, format.CompressionLZMA, []byte(entities)).
		// a broken planes lump does not matter here
		Lump(format.LumpPlanes, 0, make([]byte, 3)).
		MustBuild(t)

	ents, err := ReadEntities(data)
	require.NoError(t, err)
	require.Equal(t, 1, ents.Len())

	_, err = Read(data)
	require.ErrorIs(t, err, errs.ErrInvalidLumpSize)

	_, err = ReadEntities(data[:100])
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}
