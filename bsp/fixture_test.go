package bsp

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/arloliu/vbsp/format"
	"github.com/arloliu/vbsp/internal/bsptest"
	"github.com/arloliu/vbsp/record"
)

// The fixture map has two nodes splitting on x = 0 and y = 0:
//
//	node 0 (x >= 0) -> node 1, else file leaf 0 (cluster 2)
//	node 1 (y >= 0) -> file leaf 1 (cluster 0), else file leaf 2 (cluster 1)
//
// File leaf 3 is solid (cluster -1). Sorted by cluster the leaves are
// file 3, 1, 2, 0.

type leafDef struct {
	cluster                int16
	firstFace, faceCount   uint16
	firstBrush, brushCount uint16
}

var fixtureLeaves = []leafDef{
	{cluster: 2},
	{cluster: 0, firstFace: 0, faceCount: 2, firstBrush: 0, brushCount: 1},
	{cluster: 1, firstFace: 1, faceCount: 2},
	{cluster: -1},
}

func encodePlane(w *bsptest.Buf, normal mgl32.Vec3, dist float32) {
	w.Vec(normal).F32(dist).I32(0)
}

func encodeNode(w *bsptest.Buf, plane int32, front, back record.ChildRef) {
	w.I32(plane).I32(front.Encode()).I32(back.Encode()).Pad(12).U16(0).U16(0).I16(0).Pad(2)
}

func encodeLeaf(w *bsptest.Buf, l leafDef) {
	contents := int32(0)
	if l.cluster < 0 {
		contents = int32(record.ContentsSolid)
	}
	w.I32(contents).I16(l.cluster).U16(0).Pad(12).
		U16(l.firstFace).U16(l.faceCount).U16(l.firstBrush).U16(l.brushCount).
		I16(-1).Pad(2)
}

func encodeFace(w *bsptest.Buf, plane uint16, firstEdge int32, edgeCount, texInfo, dispInfo int16) {
	w.U16(plane).U8(0).U8(0).I32(firstEdge).I16(edgeCount).I16(texInfo).I16(dispInfo).I16(-1).
		Pad(4).I32(-1).F32(0).Pad(16).I32(-1).U16(0).U16(0).U32(0)
}

func encodeModel(w *bsptest.Buf, firstFace, faceCount int32) {
	w.Pad(36).I32(0).I32(firstFace).I32(faceCount)
}

func encodeTextureInfo(w *bsptest.Buf, texData int32) {
	w.Pad(64).I32(0).I32(texData)
}

func encodeTextureData(w *bsptest.Buf, nameID int32) {
	w.Pad(12).I32(nameID).I32(64).I32(64).I32(64).I32(64)
}

// visLump builds a visibility lump for three clusters where cluster 0
// sees {0, 1}, cluster 1 sees {1} and cluster 2 sees {0, 2}. Every
// cluster hears every cluster.
func visLump() []byte {
	w := &bsptest.Buf{}
	table := uint32(4 + 8*3)
	w.U32(3)
	for i := range uint32(3) {
		w.U32(table + i).U32(table + 3)
	}
	w.U8(0b011).U8(0b010).U8(0b101).U8(0b111)

	return w.Bytes()
}

const fixtureEntities = "{\n\"classname\" \"worldspawn\"\n}\n" +
	"{\n\"classname\" \"light\"\n\"origin\" \"1 2 3\"\n\"_light\" \"255 255 255 200\"\n}\n\x00"

// fixtureBuilder returns a builder holding every lump of the fixture map.
func fixtureBuilder() *bsptest.Builder {
	planes := &bsptest.Buf{}
	encodePlane(planes, mgl32.Vec3{1, 0, 0}, 0)
	encodePlane(planes, mgl32.Vec3{0, 1, 0}, 0)

	nodes := &bsptest.Buf{}
	encodeNode(nodes, 0, record.NodeRef(1), record.LeafRef(0))
	encodeNode(nodes, 1, record.LeafRef(1), record.LeafRef(2))

	leaves := &bsptest.Buf{}
	for _, l := range fixtureLeaves {
		encodeLeaf(leaves, l)
	}

	vertices := &bsptest.Buf{}
	vertices.Vec(mgl32.Vec3{0, 0, 0}).Vec(mgl32.Vec3{1, 0, 0}).Vec(mgl32.Vec3{0, 1, 0})

	edges := &bsptest.Buf{}
	edges.U16(0).U16(1).U16(1).U16(2).U16(0).U16(2)

	surfEdges := &bsptest.Buf{}
	surfEdges.I32(0).I32(1).I32(-2)

	faces := &bsptest.Buf{}
	encodeFace(faces, 0, 0, 3, 0, -1)
	encodeFace(faces, 1, 0, 0, 1, 0)

	original := &bsptest.Buf{}
	encodeFace(original, 0, 0, 3, 0, -1)

	models := &bsptest.Buf{}
	encodeModel(models, 0, 2)
	encodeModel(models, 1, 5)

	leafFaces := &bsptest.Buf{}
	leafFaces.U16(1).U16(0).U16(99)

	leafBrushes := &bsptest.Buf{}
	leafBrushes.U16(0)

	brushes := &bsptest.Buf{}
	brushes.I32(0).I32(1).I32(int32(record.ContentsSolid))

	brushSides := &bsptest.Buf{}
	brushSides.U16(1).I16(0).I16(-1).U8(0).U8(0)

	texInfo := &bsptest.Buf{}
	encodeTextureInfo(texInfo, 0)
	encodeTextureInfo(texInfo, 5)

	texData := &bsptest.Buf{}
	encodeTextureData(texData, 0)
	encodeTextureData(texData, 1)
	encodeTextureData(texData, 7)

	stringTable := &bsptest.Buf{}
	stringTable.I32(0).I32(13)

	disp := &bsptest.Buf{}
	disp.Pad(12).I32(0).I32(0).I32(2).I32(0).F32(0).I32(0).U16(1).Pad(176 - 38)

	return bsptest.New().
		Revision(42).
		Lump(format.LumpEntities, 0, []byte(fixtureEntities)).
		Lump(format.LumpPlanes, 0, planes.Bytes()).
		Lump(format.LumpTextureData, 0, texData.Bytes()).
		Lump(format.LumpVertices, 0, vertices.Bytes()).
		Lump(format.LumpVisibility, 0, visLump()).
		Lump(format.LumpNodes, 0, nodes.Bytes()).
		Lump(format.LumpTextureInfo, 0, texInfo.Bytes()).
		Lump(format.LumpFaces, 1, faces.Bytes()).
		Lump(format.LumpLeaves, 1, leaves.Bytes()).
		Lump(format.LumpEdges, 0, edges.Bytes()).
		Lump(format.LumpSurfaceEdges, 0, surfEdges.Bytes()).
		Lump(format.LumpModels, 0, models.Bytes()).
		Lump(format.LumpLeafFaces, 0, leafFaces.Bytes()).
		Lump(format.LumpLeafBrushes, 0, leafBrushes.Bytes()).
		Lump(format.LumpBrushes, 0, brushes.Bytes()).
		Lump(format.LumpBrushSides, 0, brushSides.Bytes()).
		Lump(format.LumpDisplacementInfo, 0, disp.Bytes()).
		Lump(format.LumpOriginalFaces, 0, original.Bytes()).
		Lump(format.LumpTextureDataStringData, 0, []byte("brick/wall01\x00TOOLS/NODRAW")).
		Lump(format.LumpTextureDataStringTable, 0, stringTable.Bytes())
}

func readFixture(t *testing.T, opts ...Option) *Bsp {
	t.Helper()
	m, err := Read(fixtureBuilder().MustBuild(t), opts...)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	return m
}
