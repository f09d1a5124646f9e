// Package vbsp reads compiled Source engine maps (VBSP version 20).
//
// A map file is a header followed by a directory of 64 lumps, each an
// array of fixed-size records or, for entities and visibility, a special
// encoding. Lumps may be compressed individually.
//
// # Basic Usage
//
// Decoding a map and querying it:
//
//	m, err := vbsp.Open("maps/koth_harvest_final.bsp")
//	if err != nil {
//	    return err
//	}
//
//	leaf, ok := m.LeafAt(mgl32.Vec3{0, 0, 128})
//	if ok {
//	    fmt.Println("cluster", leaf.Cluster())
//	}
//
//	for ent, err := range m.Entities.Parsed() {
//	    if light, ok := ent.(*entity.Light); ok && err == nil {
//	        fmt.Println(light.Origin)
//	    }
//	}
//
// # Package Structure
//
// This package wraps the bsp package for the common cases. The lower
// layers can be used on their own: container gives access to raw lumps,
// lump and record decode uniform lumps, vis decodes visibility and entity
// parses the entity text.
package vbsp

import (
	"fmt"

	"golang.org/x/exp/mmap"

	"github.com/arloliu/vbsp/bsp"
	"github.com/arloliu/vbsp/container"
	"github.com/arloliu/vbsp/entity"
	"github.com/arloliu/vbsp/format"
)

// Read decodes a map held in memory. See bsp.Read.
func Read(data []byte, opts ...bsp.Option) (*bsp.Bsp, error) {
	return bsp.Read(data, opts...)
}

// Open decodes the map file at path.
//
// The file is memory mapped and copied once into a buffer owned by the
// returned map, so the file can change or be removed afterwards.
//
// Parameters:
//   - path: Map file path
//   - opts: Optional configuration passed to bsp.Read
//
// Returns:
//   - *bsp.Bsp: Decoded map
//   - error: I/O error or any error of bsp.Read
func Open(path string, opts ...bsp.Option) (*bsp.Bsp, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return bsp.Read(data, opts...)
}

// ReadEntities decodes only the entity lump of a map held in memory.
func ReadEntities(data []byte, opts ...container.Option) (entity.Entities, error) {
	c, err := container.Open(data, opts...)
	if err != nil {
		return entity.Entities{}, err
	}

	l, err := c.Lump(format.LumpEntities)
	if err != nil {
		return entity.Entities{}, fmt.Errorf("read %s: %w", format.LumpEntities, err)
	}

	return entity.NewFromBytes(l.Data), nil
}

// ReadFile returns the contents of the map file at path, read through a
// memory mapping.
func ReadFile(path string) ([]byte, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
