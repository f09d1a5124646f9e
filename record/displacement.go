package record

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/lump"
)

// DisplacementInfoSize is the record width of a displacement info.
const DisplacementInfoSize = 176

// DisplacementSubNeighbor is one half of an edge neighbor.
type DisplacementSubNeighbor struct {
	Neighbor     uint16 // 0xFFFF when absent
	Orientation  uint8
	Span         uint8
	NeighborSpan uint8
}

// Valid reports whether the sub-neighbor references a displacement.
func (n DisplacementSubNeighbor) Valid() bool {
	return n.Neighbor != 0xFFFF
}

// DisplacementCornerNeighbors lists displacements touching one corner.
type DisplacementCornerNeighbors struct {
	Neighbors [4]uint16
	Count     uint8
}

// DisplacementInfo describes a subdivided displacement surface.
type DisplacementInfo struct {
	StartPosition          mgl32.Vec3
	FirstVertex            int32
	FirstTriangle          int32
	Power                  int32
	MinTesselation         int32
	SmoothingAngle         float32
	Contents               Contents
	MapFace                uint16
	LightmapAlphaStart     int32
	LightmapSamplePosStart int32
	EdgeNeighbors          [4][2]DisplacementSubNeighbor
	CornerNeighbors        [4]DisplacementCornerNeighbors
	AllowedVertices        [10]uint32
}

// VertexCount returns the number of vertices of the displacement grid.
func (d DisplacementInfo) VertexCount() int {
	side := (1 << d.Power) + 1

	return side * side
}

// TriangleCount returns the number of triangles of the displacement grid.
func (d DisplacementInfo) TriangleCount() int {
	quads := 1 << d.Power

	return 2 * quads * quads
}

// ReadDisplacementInfo decodes a DisplacementInfoSize record, including
// its edge and corner neighbors.
func ReadDisplacementInfo(r *lump.Reader) (DisplacementInfo, error) {
	d := DisplacementInfo{
		StartPosition:  r.Vector(),
		FirstVertex:    r.Int32(),
		FirstTriangle:  r.Int32(),
		Power:          r.Int32(),
		MinTesselation: r.Int32(),
		SmoothingAngle: r.Float32(),
		Contents:       Contents(r.Int32()),
		MapFace:        r.Uint16(),
	}
	r.Skip(2)
	d.LightmapAlphaStart = r.Int32()
	d.LightmapSamplePosStart = r.Int32()

	for i := range d.EdgeNeighbors {
		for j := range d.EdgeNeighbors[i] {
			d.EdgeNeighbors[i][j] = DisplacementSubNeighbor{
				Neighbor:     r.Uint16(),
				Orientation:  r.Uint8(),
				Span:         r.Uint8(),
				NeighborSpan: r.Uint8(),
			}
			r.Skip(1)
		}
	}
	for i := range d.CornerNeighbors {
		c := &d.CornerNeighbors[i]
		for j := range c.Neighbors {
			c.Neighbors[j] = r.Uint16()
		}
		c.Count = r.Uint8()
		r.Skip(1)
	}
	for i := range d.AllowedVertices {
		d.AllowedVertices[i] = r.Uint32()
	}

	return d, nil
}
