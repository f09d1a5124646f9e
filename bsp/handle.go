package bsp

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/record"
	"github.com/arloliu/vbsp/vis"
)

// Handle pairs a record with the map it belongs to, so references to
// other records can be followed. Handles are small values; the zero value
// is not valid.
type Handle[T any] struct {
	bsp   *Bsp
	index int
	data  *T
}

func newHandle[T any](b *Bsp, items []T, i int) (Handle[T], bool) {
	if i < 0 || i >= len(items) {
		return Handle[T]{}, false
	}

	return Handle[T]{bsp: b, index: i, data: &items[i]}, true
}

// Index returns the position of the record in its slice.
func (h Handle[T]) Index() int { return h.index }

// Data returns the record. It must not be modified.
func (h Handle[T]) Data() *T { return h.data }

// Bsp returns the map the record belongs to.
func (h Handle[T]) Bsp() *Bsp { return h.bsp }

// Typed handles. Each adds the queries that follow references out of its
// record.
type (
	// NodeHandle is a BSP tree node.
	NodeHandle struct{ Handle[record.Node] }
	// LeafHandle is a leaf at its sorted position.
	LeafHandle struct{ Handle[record.Leaf] }
	// FaceHandle is a face of the faces or original faces lump.
	FaceHandle struct{ Handle[record.Face] }
	// ModelHandle is a brush model; model 0 is the world.
	ModelHandle struct{ Handle[record.Model] }
	// PlaneHandle is a splitting or face plane.
	PlaneHandle struct{ Handle[record.Plane] }
	// TextureInfoHandle is a face's texture projection.
	TextureInfoHandle struct{ Handle[record.TextureInfo] }
	// TextureDataHandle is a texture with its name reference.
	TextureDataHandle struct{ Handle[record.TextureData] }
	// DisplacementHandle is a displacement surface.
	DisplacementHandle struct {
		Handle[record.DisplacementInfo]
	}
	// BrushHandle is a convex brush.
	BrushHandle struct{ Handle[record.Brush] }
)

// Node returns node i, or false when i is out of range.
func (b *Bsp) Node(i int) (NodeHandle, bool) {
	h, ok := newHandle(b, b.Nodes, i)
	return NodeHandle{h}, ok
}

// RootNode returns node 0, the root of the world model's tree.
func (b *Bsp) RootNode() (NodeHandle, bool) {
	return b.Node(0)
}

// Leaf returns the leaf at sorted position i.
func (b *Bsp) Leaf(i int) (LeafHandle, bool) {
	h, ok := newHandle(b, b.Leaves.items, i)
	return LeafHandle{h}, ok
}

// Plane returns plane i.
func (b *Bsp) Plane(i int) (PlaneHandle, bool) {
	h, ok := newHandle(b, b.Planes, i)
	return PlaneHandle{h}, ok
}

// Face returns face i of the faces lump.
func (b *Bsp) Face(i int) (FaceHandle, bool) {
	h, ok := newHandle(b, b.Faces, i)
	return FaceHandle{h}, ok
}

// OriginalFace returns face i of the original faces, the faces before
// the compiler split them.
func (b *Bsp) OriginalFace(i int) (FaceHandle, bool) {
	h, ok := newHandle(b, b.OriginalFaces, i)
	return FaceHandle{h}, ok
}

// Model returns brush model i.
func (b *Bsp) Model(i int) (ModelHandle, bool) {
	h, ok := newHandle(b, b.Models, i)
	return ModelHandle{h}, ok
}

// TextureInfo returns texture info i.
func (b *Bsp) TextureInfo(i int) (TextureInfoHandle, bool) {
	h, ok := newHandle(b, b.TexturesInfo, i)
	return TextureInfoHandle{h}, ok
}

// TextureData returns texture data i.
func (b *Bsp) TextureData(i int) (TextureDataHandle, bool) {
	h, ok := newHandle(b, b.TexturesData, i)
	return TextureDataHandle{h}, ok
}

// Displacement returns displacement info i.
func (b *Bsp) Displacement(i int) (DisplacementHandle, bool) {
	h, ok := newHandle(b, b.Displacements, i)
	return DisplacementHandle{h}, ok
}

// Brush returns brush i.
func (b *Bsp) Brush(i int) (BrushHandle, bool) {
	h, ok := newHandle(b, b.Brushes, i)
	return BrushHandle{h}, ok
}

func all[T, H any](b *Bsp, items []T, wrap func(Handle[T]) H) iter.Seq[H] {
	return rangeOf(b, items, 0, len(items), wrap)
}

// rangeOf yields the handles of items[first:first+count], clipped to the
// slice bounds.
func rangeOf[T, H any](b *Bsp, items []T, first, count int, wrap func(Handle[T]) H) iter.Seq[H] {
	start := min(max(first, 0), len(items))
	end := min(max(first+count, start), len(items))

	return func(yield func(H) bool) {
		for i := start; i < end; i++ {
			if !yield(wrap(Handle[T]{bsp: b, index: i, data: &items[i]})) {
				return
			}
		}
	}
}

func wrapFace(h Handle[record.Face]) FaceHandle    { return FaceHandle{h} }
func wrapModel(h Handle[record.Model]) ModelHandle { return ModelHandle{h} }
func wrapLeaf(h Handle[record.Leaf]) LeafHandle    { return LeafHandle{h} }

// AllFaces yields every face.
func (b *Bsp) AllFaces() iter.Seq[FaceHandle] {
	return all(b, b.Faces, wrapFace)
}

// AllOriginalFaces yields every original face.
func (b *Bsp) AllOriginalFaces() iter.Seq[FaceHandle] {
	return all(b, b.OriginalFaces, wrapFace)
}

// AllModels yields every model; model 0 is the world.
func (b *Bsp) AllModels() iter.Seq[ModelHandle] {
	return all(b, b.Models, wrapModel)
}

// LeafAt returns the leaf containing p.
//
// The tree is descended from the root node: a point on or in front of a
// node's plane goes to the first child, otherwise to the second. The
// lookup fails when a node, plane or leaf reference is dangling, or when
// the descent visits more nodes than the map has.
func (b *Bsp) LeafAt(p mgl32.Vec3) (LeafHandle, bool) {
	ref := record.NodeRef(0)
	for range len(b.Nodes) + 1 {
		if ref.IsLeaf() {
			return b.Leaf(ref.Index())
		}
		node, ok := b.Node(ref.Index())
		if !ok {
			return LeafHandle{}, false
		}
		plane, ok := node.Plane()
		if !ok {
			return LeafHandle{}, false
		}
		if plane.data.Distance(p) >= 0 {
			ref = node.data.Children[0]
		} else {
			ref = node.data.Children[1]
		}
	}

	return LeafHandle{}, false
}

// Plane returns the splitting plane of the node.
func (h NodeHandle) Plane() (PlaneHandle, bool) {
	return h.bsp.Plane(int(h.data.PlaneIndex))
}

// Child is one side of a node: a node or a leaf. OK is false when the
// reference points past the end of its slice.
type Child struct {
	Ref  record.ChildRef
	Node NodeHandle
	Leaf LeafHandle
	OK   bool
}

// Children returns the front and back child of the node.
func (h NodeHandle) Children() [2]Child {
	var out [2]Child
	for i, ref := range h.data.Children {
		out[i].Ref = ref
		if ref.IsLeaf() {
			out[i].Leaf, out[i].OK = h.bsp.Leaf(ref.Index())
		} else {
			out[i].Node, out[i].OK = h.bsp.Node(ref.Index())
		}
	}

	return out
}

// Faces yields the faces of the model.
func (h ModelHandle) Faces() iter.Seq[FaceHandle] {
	return rangeOf(h.bsp, h.bsp.Faces, int(h.data.FirstFace), int(h.data.FaceCount), wrapFace)
}

// FileIndex returns the index of the leaf in the leaves lump.
func (h LeafHandle) FileIndex() int {
	return h.bsp.Leaves.FileIndex(h.index)
}

// Cluster returns the visibility cluster of the leaf, negative when the
// leaf is outside the playable space.
func (h LeafHandle) Cluster() int {
	return int(h.data.Cluster)
}

// Faces yields the faces listed in the leaf's range of the leaf face
// lump. Entries naming a missing face are skipped.
func (h LeafHandle) Faces() iter.Seq[FaceHandle] {
	return func(yield func(FaceHandle) bool) {
		slots := rangeOf(h.bsp, h.bsp.LeafFaces, int(h.data.FirstLeafFace), int(h.data.LeafFaceCount),
			func(s Handle[record.LeafFace]) int { return int(s.data.Face) })
		for i := range slots {
			face, ok := h.bsp.Face(i)
			if !ok {
				continue
			}
			if !yield(face) {
				return
			}
		}
	}
}

// Brushes yields the brushes listed in the leaf's range of the leaf
// brush lump. Entries naming a missing brush are skipped.
func (h LeafHandle) Brushes() iter.Seq[BrushHandle] {
	return func(yield func(BrushHandle) bool) {
		slots := rangeOf(h.bsp, h.bsp.LeafBrushes, int(h.data.FirstLeafBrush), int(h.data.LeafBrushCount),
			func(s Handle[record.LeafBrush]) int { return int(s.data.Brush) })
		for i := range slots {
			brush, ok := h.bsp.Brush(i)
			if !ok {
				continue
			}
			if !yield(brush) {
				return
			}
		}
	}
}

// VisibleSet yields the leaves potentially visible from this leaf: the
// leaves of its own cluster and of every cluster set in its PVS. It
// reports false for a leaf outside any cluster.
func (h LeafHandle) VisibleSet() (iter.Seq[LeafHandle], bool) {
	return h.clusterSet(h.bsp.VisData.VisibleClusters)
}

// AudibleSet is VisibleSet for the potentially audible set.
func (h LeafHandle) AudibleSet() (iter.Seq[LeafHandle], bool) {
	return h.clusterSet(h.bsp.VisData.AudibleClusters)
}

func (h LeafHandle) clusterSet(decode func(int) vis.ClusterSet) (iter.Seq[LeafHandle], bool) {
	own := h.Cluster()
	if own < 0 {
		return nil, false
	}
	set := decode(own)
	leaves := h.bsp.Leaves.items

	return func(yield func(LeafHandle) bool) {
		for leaf := range all(h.bsp, leaves, wrapLeaf) {
			c := leaf.Cluster()
			if c < 0 || (c != own && !set.Contains(c)) {
				continue
			}
			if !yield(leaf) {
				return
			}
		}
	}, true
}

// Plane returns the plane of the face.
func (h FaceHandle) Plane() (PlaneHandle, bool) {
	return h.bsp.Plane(int(h.data.PlaneIndex))
}

// TextureInfo returns the texture mapping of the face.
func (h FaceHandle) TextureInfo() (TextureInfoHandle, bool) {
	return h.bsp.TextureInfo(int(h.data.TextureInfo))
}

// Displacement returns the displacement of the face, if any.
func (h FaceHandle) Displacement() (DisplacementHandle, bool) {
	if !h.data.HasDisplacement() {
		return DisplacementHandle{}, false
	}

	return h.bsp.Displacement(int(h.data.DisplacementInfo))
}

// Vertices yields the positions of the face's polygon in winding order.
// Each surface edge contributes its first vertex; a negative surface edge
// walks the edge backwards. Dangling references end the sequence.
func (h FaceHandle) Vertices() iter.Seq[mgl32.Vec3] {
	b := h.bsp

	return func(yield func(mgl32.Vec3) bool) {
		first, count := int(h.data.FirstEdge), int(h.data.EdgeCount)
		if first < 0 || count < 0 || first+count > len(b.SurfaceEdges) {
			return
		}
		for _, se := range b.SurfaceEdges[first : first+count] {
			edge, reversed := se.Index()
			if edge >= len(b.Edges) {
				return
			}
			v := b.Edges[edge].Vertices[0]
			if reversed {
				v = b.Edges[edge].Vertices[1]
			}
			if int(v) >= len(b.Vertices) {
				return
			}
			if !yield(b.Vertices[v].Position) {
				return
			}
		}
	}
}

// TextureData returns the texture referenced by the mapping.
func (h TextureInfoHandle) TextureData() (TextureDataHandle, bool) {
	return h.bsp.TextureData(int(h.data.TextureData))
}

// Name returns the material name of the mapping's texture, or "" when the
// texture cannot be resolved.
func (h TextureInfoHandle) Name() string {
	tex, ok := h.TextureData()
	if !ok {
		return ""
	}

	return tex.Name()
}

// Face returns the face the displacement belongs to.
func (h DisplacementHandle) Face() (FaceHandle, bool) {
	return h.bsp.Face(int(h.data.MapFace))
}

// Sides yields the brush sides of the brush.
func (h BrushHandle) Sides() iter.Seq[record.BrushSide] {
	return rangeOf(h.bsp, h.bsp.BrushSides, int(h.data.FirstSide), int(h.data.SideCount),
		func(s Handle[record.BrushSide]) record.BrushSide { return *s.data })
}
