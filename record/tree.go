package record

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/lump"
)

// Record widths in bytes.
const (
	NodeSize      = 32
	LeafSizeV0    = 56
	LeafSizeV1    = 32
	LeafFaceSize  = 2
	LeafBrushSize = 2
)

// ChildRef is a node child: either another node or a leaf.
//
// On disk a child is a single int32 where non-negative values are node
// indices and negative values encode leaf -(v+1). ChildRef keeps the two
// cases apart so that the leaf index can be remapped independently.
type ChildRef struct {
	index int32
	leaf  bool
}

// NodeRef returns a reference to node i.
func NodeRef(i int32) ChildRef { return ChildRef{index: i} }

// LeafRef returns a reference to leaf i.
func LeafRef(i int32) ChildRef { return ChildRef{index: i, leaf: true} }

// DecodeChild decodes the on-disk child value.
func DecodeChild(v int32) ChildRef {
	if v < 0 {
		return LeafRef(^v)
	}

	return NodeRef(v)
}

// IsLeaf reports whether the child is a leaf.
func (c ChildRef) IsLeaf() bool { return c.leaf }

// Index returns the node or leaf index.
func (c ChildRef) Index() int { return int(c.index) }

// Encode returns the on-disk child value.
func (c ChildRef) Encode() int32 {
	if c.leaf {
		return ^c.index
	}

	return c.index
}

// WithIndex returns a reference of the same kind to index i.
func (c ChildRef) WithIndex(i int) ChildRef {
	return ChildRef{index: int32(i), leaf: c.leaf}
}

func (c ChildRef) String() string {
	if c.leaf {
		return fmt.Sprintf("Leaf(%d)", c.index)
	}

	return fmt.Sprintf("Node(%d)", c.index)
}

// Node is an interior node of the BSP tree.
type Node struct {
	PlaneIndex int32
	// Children[0] is in front of the plane, Children[1] behind it.
	Children  [2]ChildRef
	Mins      [3]int16
	Maxs      [3]int16
	FirstFace uint16
	FaceCount uint16
	Area      int16
}

// ReadNode decodes a NodeSize record and its child references.
func ReadNode(r *lump.Reader) (Node, error) {
	n := Node{
		PlaneIndex: r.Int32(),
		Children:   [2]ChildRef{DecodeChild(r.Int32()), DecodeChild(r.Int32())},
		Mins:       [3]int16{r.Int16(), r.Int16(), r.Int16()},
		Maxs:       [3]int16{r.Int16(), r.Int16(), r.Int16()},
		FirstFace:  r.Uint16(),
		FaceCount:  r.Uint16(),
		Area:       r.Int16(),
	}
	r.Skip(2)

	return n, nil
}

// ColorRGBExp32 is a light sample with a shared exponent.
type ColorRGBExp32 struct {
	R, G, B  uint8
	Exponent int8
}

// Linear returns the color in linear light units.
func (c ColorRGBExp32) Linear() mgl32.Vec3 {
	scale := float32(math.Ldexp(1, int(c.Exponent)))

	return mgl32.Vec3{float32(c.R) * scale, float32(c.G) * scale, float32(c.B) * scale}
}

// LightCube holds one ambient sample per axis direction: +X, -X, +Y, -Y, +Z, -Z.
type LightCube [6]ColorRGBExp32

// Leaf is a convex region of space at the bottom of the BSP tree.
type Leaf struct {
	Contents int32
	// Cluster is the visibility cluster; negative for leaves outside the
	// map or in solid space.
	Cluster        int16
	Area           int16 // 9 bits
	Flags          int16 // 7 bits
	Mins           [3]int16
	Maxs           [3]int16
	FirstLeafFace  uint16
	LeafFaceCount  uint16
	FirstLeafBrush uint16
	LeafBrushCount uint16
	LeafWaterData  int16
	// AmbientLighting is only stored inline by version 0 leaves.
	AmbientLighting *LightCube
}

// LeafSize returns the record width of a leaves lump with the given version.
func LeafSize(version uint32) int {
	if version == 0 {
		return LeafSizeV0
	}

	return LeafSizeV1
}

// ReadLeaf decodes a leaf in the layout of the lump version. Version 0
// records carry an ambient light cube, kept in AmbientLighting.
func ReadLeaf(r *lump.Reader, version uint32) (Leaf, error) {
	l := Leaf{Contents: r.Int32(), Cluster: r.Int16()}
	areaFlags := r.Uint16()
	l.Area = int16(areaFlags & 0x1FF)
	l.Flags = int16(areaFlags >> 9)
	l.Mins = [3]int16{r.Int16(), r.Int16(), r.Int16()}
	l.Maxs = [3]int16{r.Int16(), r.Int16(), r.Int16()}
	l.FirstLeafFace = r.Uint16()
	l.LeafFaceCount = r.Uint16()
	l.FirstLeafBrush = r.Uint16()
	l.LeafBrushCount = r.Uint16()
	l.LeafWaterData = r.Int16()

	if version == 0 {
		var cube LightCube
		for i := range cube {
			cube[i] = ColorRGBExp32{R: r.Uint8(), G: r.Uint8(), B: r.Uint8(), Exponent: r.Int8()}
		}
		l.AmbientLighting = &cube
	}
	r.Skip(2)

	return l, nil
}

// LeafFace maps a leaf face slot to a face index.
type LeafFace struct {
	Face uint16
}

// ReadLeafFace decodes a face index of the leaf faces lump.
func ReadLeafFace(r *lump.Reader) (LeafFace, error) {
	return LeafFace{Face: r.Uint16()}, nil
}

// LeafBrush maps a leaf brush slot to a brush index.
type LeafBrush struct {
	Brush uint16
}

// ReadLeafBrush decodes a brush index of the leaf brushes lump.
func ReadLeafBrush(r *lump.Reader) (LeafBrush, error) {
	return LeafBrush{Brush: r.Uint16()}, nil
}
