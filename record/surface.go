package record

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/lump"
)

// Record widths in bytes.
const (
	FaceSize               = 56
	TextureInfoSize        = 72
	TextureDataSize        = 32
	TextureStringTableSize = 4
)

// Face is a planar polygon, described by a run of surface edges.
type Face struct {
	PlaneIndex       uint16
	Side             uint8
	OnNode           bool
	FirstEdge        int32
	EdgeCount        int16
	TextureInfo      int16
	DisplacementInfo int16 // -1 when the face is not a displacement
	FogVolume        int16
	Styles           [4]uint8
	LightOffset      int32
	Area             float32
	LightmapMins     [2]int32
	LightmapSize     [2]int32
	OriginalFace     int32
	PrimitiveCount   uint16
	FirstPrimitive   uint16
	SmoothingGroups  uint32
}

// HasDisplacement reports whether the face is replaced by a displacement.
func (f Face) HasDisplacement() bool {
	return f.DisplacementInfo >= 0
}

// ReadFace decodes a FaceSize record. The faces and original faces
// lumps share the layout.
func ReadFace(r *lump.Reader) (Face, error) {
	return Face{
		PlaneIndex:       r.Uint16(),
		Side:             r.Uint8(),
		OnNode:           r.Uint8() != 0,
		FirstEdge:        r.Int32(),
		EdgeCount:        r.Int16(),
		TextureInfo:      r.Int16(),
		DisplacementInfo: r.Int16(),
		FogVolume:        r.Int16(),
		Styles:           [4]uint8{r.Uint8(), r.Uint8(), r.Uint8(), r.Uint8()},
		LightOffset:      r.Int32(),
		Area:             r.Float32(),
		LightmapMins:     [2]int32{r.Int32(), r.Int32()},
		LightmapSize:     [2]int32{r.Int32(), r.Int32()},
		OriginalFace:     r.Int32(),
		PrimitiveCount:   r.Uint16(),
		FirstPrimitive:   r.Uint16(),
		SmoothingGroups:  r.Uint32(),
	}, nil
}

// TextureFlags are the surface flags of a texture info.
type TextureFlags int32

const (
	SurfaceLight TextureFlags = 1 << iota
	SurfaceSky2D
	SurfaceSky
	SurfaceWarp
	SurfaceTranslucent
	SurfaceNoPortal
	SurfaceTrigger
	SurfaceNoDraw
	SurfaceHint
	SurfaceSkip
	SurfaceNoLight
	SurfaceBumpLight
	SurfaceNoShadows
	SurfaceNoDecals
	SurfaceNoChop
	SurfaceHitbox
)

// Has reports whether all bits of flag are set.
func (f TextureFlags) Has(flag TextureFlags) bool {
	return f&flag == flag
}

// TextureInfo maps a face onto its texture and lightmap.
type TextureInfo struct {
	// TextureVecs project a world point to texel s, t: dot(p, v.xyz) + v.w.
	TextureVecs  [2][4]float32
	LightmapVecs [2][4]float32
	Flags        TextureFlags
	TextureData  int32
}

// TextureCoords returns the texel coordinates of point.
func (t TextureInfo) TextureCoords(point mgl32.Vec3) (s, u float32) {
	project := func(v [4]float32) float32 {
		return point.Dot(mgl32.Vec3{v[0], v[1], v[2]}) + v[3]
	}

	return project(t.TextureVecs[0]), project(t.TextureVecs[1])
}

func readVec4(r *lump.Reader) [4]float32 {
	return [4]float32{r.Float32(), r.Float32(), r.Float32(), r.Float32()}
}

// ReadTextureInfo decodes a TextureInfoSize record.
func ReadTextureInfo(r *lump.Reader) (TextureInfo, error) {
	return TextureInfo{
		TextureVecs:  [2][4]float32{readVec4(r), readVec4(r)},
		LightmapVecs: [2][4]float32{readVec4(r), readVec4(r)},
		Flags:        TextureFlags(r.Int32()),
		TextureData:  r.Int32(),
	}, nil
}

// TextureData describes a material: its reflectivity, size and name.
type TextureData struct {
	Reflectivity mgl32.Vec3
	// NameStringTableID indexes the texture string table, which in turn
	// holds an offset into the string data lump.
	NameStringTableID int32
	Width, Height     int32
	ViewWidth         int32
	ViewHeight        int32
}

// ReadTextureData decodes a TextureDataSize record.
func ReadTextureData(r *lump.Reader) (TextureData, error) {
	return TextureData{
		Reflectivity:      r.Vector(),
		NameStringTableID: r.Int32(),
		Width:             r.Int32(),
		Height:            r.Int32(),
		ViewWidth:         r.Int32(),
		ViewHeight:        r.Int32(),
	}, nil
}

// ReadStringTableEntry reads one offset of the texture string table.
func ReadStringTableEntry(r *lump.Reader) (int32, error) {
	return r.Int32(), nil
}
