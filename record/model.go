package record

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/lump"
)

// Record widths in bytes.
const (
	ModelSize     = 48
	BrushSize     = 12
	BrushSideSize = 8
)

// Model is a bmodel: the world (model 0) or a brush entity.
type Model struct {
	Mins, Maxs mgl32.Vec3
	Origin     mgl32.Vec3
	HeadNode   int32
	FirstFace  int32
	FaceCount  int32
}

// ReadModel decodes a ModelSize record.
func ReadModel(r *lump.Reader) (Model, error) {
	return Model{
		Mins:      r.Vector(),
		Maxs:      r.Vector(),
		Origin:    r.Vector(),
		HeadNode:  r.Int32(),
		FirstFace: r.Int32(),
		FaceCount: r.Int32(),
	}, nil
}

// Contents are the content flags of brushes and leaves.
type Contents int32

const (
	ContentsEmpty       Contents = 0
	ContentsSolid       Contents = 0x1
	ContentsWindow      Contents = 0x2
	ContentsGrate       Contents = 0x8
	ContentsSlime       Contents = 0x10
	ContentsWater       Contents = 0x20
	ContentsOpaque      Contents = 0x80
	ContentsPlayerClip  Contents = 0x10000
	ContentsMonsterClip Contents = 0x20000
	ContentsLadder      Contents = 0x20000000
)

// Has reports whether all bits of flag are set.
func (c Contents) Has(flag Contents) bool {
	return c&flag == flag
}

// Brush is a convex volume bounded by brush sides.
type Brush struct {
	FirstSide int32
	SideCount int32
	Contents  Contents
}

// ReadBrush decodes a BrushSize record.
func ReadBrush(r *lump.Reader) (Brush, error) {
	return Brush{
		FirstSide: r.Int32(),
		SideCount: r.Int32(),
		Contents:  Contents(r.Int32()),
	}, nil
}

// BrushSide is one bounding plane of a brush.
type BrushSide struct {
	PlaneIndex       uint16
	TextureInfo      int16
	DisplacementInfo int16
	Bevel            bool
	Thin             bool
}

// ReadBrushSide decodes a BrushSideSize record.
func ReadBrushSide(r *lump.Reader) (BrushSide, error) {
	return BrushSide{
		PlaneIndex:       r.Uint16(),
		TextureInfo:      r.Int16(),
		DisplacementInfo: r.Int16(),
		Bevel:            r.Uint8() != 0,
		Thin:             r.Uint8() != 0,
	}, nil
}
