package bsp

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/vbsp/container"
	"github.com/arloliu/vbsp/entity"
	"github.com/arloliu/vbsp/format"
	"github.com/arloliu/vbsp/internal/options"
	"github.com/arloliu/vbsp/lump"
	"github.com/arloliu/vbsp/record"
	"github.com/arloliu/vbsp/section"
	"github.com/arloliu/vbsp/vis"
)

// Bsp is a decoded map. It is immutable after Read and safe for
// concurrent use.
//
// Slices hold records in file order, except Leaves which is ordered by
// cluster. Leaf children of Nodes refer to sorted leaf positions.
type Bsp struct {
	Header      section.Header
	MapRevision uint32

	Entities           entity.Entities
	TexturesData       []record.TextureData
	TexturesInfo       []record.TextureInfo
	TextureStringTable []int32
	TextureStringData  string

	Planes      []record.Plane
	Nodes       []record.Node
	Leaves      Leaves
	LeafFaces   []record.LeafFace
	LeafBrushes []record.LeafBrush

	Models        []record.Model
	Brushes       []record.Brush
	BrushSides    []record.BrushSide
	Vertices      []record.Vertex
	Edges         []record.Edge
	SurfaceEdges  []record.SurfaceEdge
	Faces         []record.Face
	OriginalFaces []record.Face
	Displacements []record.DisplacementInfo

	VisData vis.Data

	textureOnce  sync.Once
	textureIndex map[uint64][]int
}

// reader decodes the lumps of one container.
type reader struct {
	c      *container.Container
	strict bool
	logger logrus.FieldLogger
}

func (r *reader) open(t format.LumpType) (*lump.Reader, error) {
	lr, err := r.c.LumpReader(t)
	if err != nil {
		return nil, err
	}

	return lr.Lenient(!r.strict), nil
}

func readLump[T any](r *reader, t format.LumpType, size int, fn lump.Decoder[T]) ([]T, error) {
	lr, err := r.open(t)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t, err)
	}
	out, err := lump.ReadVec(lr, size, fn)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t, err)
	}
	r.logger.WithFields(logrus.Fields{"lump": t.String(), "records": len(out)}).Debug("decoded lump")

	return out, nil
}

// Read decodes a complete map from data.
//
// Stored lumps are decoded straight from data and visibility bit vectors
// alias it; the caller must not modify data while the Bsp is in use.
//
// Parameters:
//   - data: Complete BSP file contents
//   - opts: Optional configuration (WithLogger, WithDecompressor, WithStrictRecords)
//
// Returns:
//   - *Bsp: Decoded map
//   - error: Header, bounds, size or decompression errors from the errs
//     package wrapped with the name of the failing lump; no partial map is
//     returned
func Read(data []byte, opts ...Option) (*Bsp, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	c, err := container.Open(data, cfg.container...)
	if err != nil {
		return nil, err
	}

	r := &reader{c: c, strict: cfg.strict, logger: cfg.logger}
	b := &Bsp{Header: c.Header(), MapRevision: c.MapRevision()}

	if err := b.readGeometry(r); err != nil {
		return nil, err
	}
	if err := b.readTree(r); err != nil {
		return nil, err
	}
	if err := b.readSurfaces(r); err != nil {
		return nil, err
	}
	if err := b.readEntities(r); err != nil {
		return nil, err
	}
	if err := b.readVisibility(r); err != nil {
		return nil, err
	}

	cfg.logger.WithFields(logrus.Fields{
		"revision": b.MapRevision,
		"leaves":   b.Leaves.Len(),
		"faces":    len(b.Faces),
		"clusters": b.VisData.ClusterCount,
	}).Debug("decoded bsp")

	return b, nil
}

func (b *Bsp) readGeometry(r *reader) error {
	var err error
	if b.Planes, err = readLump(r, format.LumpPlanes, record.PlaneSize, record.ReadPlane); err != nil {
		return err
	}
	if b.Vertices, err = readLump(r, format.LumpVertices, record.VertexSize, record.ReadVertex); err != nil {
		return err
	}
	if b.Edges, err = readLump(r, format.LumpEdges, record.EdgeSize, record.ReadEdge); err != nil {
		return err
	}
	if b.SurfaceEdges, err = readLump(r, format.LumpSurfaceEdges, record.SurfaceEdgeSize, record.ReadSurfaceEdge); err != nil {
		return err
	}
	if b.Models, err = readLump(r, format.LumpModels, record.ModelSize, record.ReadModel); err != nil {
		return err
	}
	if b.Brushes, err = readLump(r, format.LumpBrushes, record.BrushSize, record.ReadBrush); err != nil {
		return err
	}
	b.BrushSides, err = readLump(r, format.LumpBrushSides, record.BrushSideSize, record.ReadBrushSide)

	return err
}

func (b *Bsp) readTree(r *reader) error {
	var err error
	if b.Nodes, err = readLump(r, format.LumpNodes, record.NodeSize, record.ReadNode); err != nil {
		return err
	}

	lr, err := r.open(format.LumpLeaves)
	if err != nil {
		return fmt.Errorf("read %s: %w", format.LumpLeaves, err)
	}
	leaves, err := lump.ReadVecVersioned(lr, record.LeafSize(lr.Version()), record.ReadLeaf)
	if err != nil {
		return fmt.Errorf("read %s: %w", format.LumpLeaves, err)
	}
	r.logger.WithFields(logrus.Fields{
		"lump":    format.LumpLeaves.String(),
		"version": lr.Version(),
		"records": len(leaves),
	}).Debug("decoded lump")

	b.Leaves = newLeaves(leaves)
	b.Leaves.remapChildren(b.Nodes)

	if b.LeafFaces, err = readLump(r, format.LumpLeafFaces, record.LeafFaceSize, record.ReadLeafFace); err != nil {
		return err
	}
	b.LeafBrushes, err = readLump(r, format.LumpLeafBrushes, record.LeafBrushSize, record.ReadLeafBrush)

	return err
}

func (b *Bsp) readSurfaces(r *reader) error {
	var err error
	if b.Faces, err = readLump(r, format.LumpFaces, record.FaceSize, record.ReadFace); err != nil {
		return err
	}
	if b.OriginalFaces, err = readLump(r, format.LumpOriginalFaces, record.FaceSize, record.ReadFace); err != nil {
		return err
	}
	if b.TexturesInfo, err = readLump(r, format.LumpTextureInfo, record.TextureInfoSize, record.ReadTextureInfo); err != nil {
		return err
	}
	if b.TexturesData, err = readLump(r, format.LumpTextureData, record.TextureDataSize, record.ReadTextureData); err != nil {
		return err
	}
	b.TextureStringTable, err = readLump(r, format.LumpTextureDataStringTable,
		record.TextureStringTableSize, record.ReadStringTableEntry)
	if err != nil {
		return err
	}
	if b.Displacements, err = readLump(r, format.LumpDisplacementInfo, record.DisplacementInfoSize, record.ReadDisplacementInfo); err != nil {
		return err
	}

	l, err := r.c.Lump(format.LumpTextureDataStringData)
	if err != nil {
		return fmt.Errorf("read %s: %w", format.LumpTextureDataStringData, err)
	}
	b.TextureStringData = string(l.Data)

	return nil
}

func (b *Bsp) readEntities(r *reader) error {
	l, err := r.c.Lump(format.LumpEntities)
	if err != nil {
		return fmt.Errorf("read %s: %w", format.LumpEntities, err)
	}
	b.Entities = entity.NewFromBytes(l.Data)

	if b.Entities.Unterminated() {
		r.logger.WithField("entities", b.Entities.Len()).Warn("entity lump ends inside a block")
	}

	return nil
}

func (b *Bsp) readVisibility(r *reader) error {
	l, err := r.c.Lump(format.LumpVisibility)
	if err != nil {
		return fmt.Errorf("read %s: %w", format.LumpVisibility, err)
	}
	if b.VisData, err = vis.Read(l.Data); err != nil {
		return fmt.Errorf("read %s: %w", format.LumpVisibility, err)
	}

	if bad := b.VisData.InvalidOffsets(); len(bad) > 0 {
		r.logger.WithFields(logrus.Fields{
			"clusters": len(bad),
			"first":    bad[0],
		}).Warn("visibility offsets outside the bit vectors")
	}

	return nil
}
