package record

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/lump"
)

// Record widths in bytes.
const (
	PlaneSize       = 20
	VertexSize      = 12
	EdgeSize        = 4
	SurfaceEdgeSize = 4
)

// PlaneType classifies a plane normal.
type PlaneType int32

const (
	PlaneX PlaneType = iota
	PlaneY
	PlaneZ
	PlaneAnyX
	PlaneAnyY
	PlaneAnyZ
)

// Plane is a splitting plane: the points p with p·Normal = Dist.
type Plane struct {
	Normal mgl32.Vec3
	Dist   float32
	Type   PlaneType
}

// Distance returns the signed distance of p from the plane, positive on
// the front side.
func (p Plane) Distance(point mgl32.Vec3) float32 {
	return point.Dot(p.Normal) - p.Dist
}

// ReadPlane decodes a PlaneSize record.
func ReadPlane(r *lump.Reader) (Plane, error) {
	return Plane{
		Normal: r.Vector(),
		Dist:   r.Float32(),
		Type:   PlaneType(r.Int32()),
	}, nil
}

// Vertex is a point referenced by edges.
type Vertex struct {
	Position mgl32.Vec3
}

// ReadVertex decodes a VertexSize record.
func ReadVertex(r *lump.Reader) (Vertex, error) {
	return Vertex{Position: r.Vector()}, nil
}

// Edge joins two vertices by index.
type Edge struct {
	Vertices [2]uint16
}

// ReadEdge decodes an EdgeSize record.
func ReadEdge(r *lump.Reader) (Edge, error) {
	return Edge{Vertices: [2]uint16{r.Uint16(), r.Uint16()}}, nil
}

// SurfaceEdge references an edge; a negative value walks edge -v from its
// second vertex to its first.
type SurfaceEdge struct {
	Edge int32
}

// Index returns the referenced edge index and whether it is reversed.
func (s SurfaceEdge) Index() (index int, reversed bool) {
	if s.Edge < 0 {
		return -int(s.Edge), true
	}

	return int(s.Edge), false
}

// ReadSurfaceEdge decodes a signed edge reference.
func ReadSurfaceEdge(r *lump.Reader) (SurfaceEdge, error) {
	return SurfaceEdge{Edge: r.Int32()}, nil
}
