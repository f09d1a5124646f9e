package bsp

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/vbsp/compress"
	"github.com/arloliu/vbsp/entity"
	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/format"
	"github.com/arloliu/vbsp/internal/bsptest"
	"github.com/arloliu/vbsp/record"
	"github.com/arloliu/vbsp/section"
)

func fileIndices(seq iter.Seq[LeafHandle]) []int {
	var out []int
	for leaf := range seq {
		out = append(out, leaf.FileIndex())
	}

	return out
}

func TestReadFixture(t *testing.T) {
	m := readFixture(t)

	require.Equal(t, section.Header{Magic: section.Magic, Version: section.Version}, m.Header)
	require.Equal(t, uint32(42), m.MapRevision)
	require.Len(t, m.Planes, 2)
	require.Len(t, m.Nodes, 2)
	require.Equal(t, 4, m.Leaves.Len())
	require.Len(t, m.Faces, 2)
	require.Len(t, m.OriginalFaces, 1)
	require.Len(t, m.Displacements, 1)
	require.Equal(t, uint32(3), m.VisData.ClusterCount)
	require.Equal(t, 2, m.Entities.Len())
}

func TestReadEmptyMap(t *testing.T) {
	m, err := Read(bsptest.New().MustBuild(t))
	require.NoError(t, err)

	require.Zero(t, m.Leaves.Len())
	require.Empty(t, m.Faces)
	require.Zero(t, m.VisData.ClusterCount)
	require.Zero(t, m.Entities.Len())

	_, ok := m.RootNode()
	require.False(t, ok)
	_, ok = m.LeafAt(mgl32.Vec3{})
	require.False(t, ok)
}

func TestReadErrors(t *testing.T) {
	t.Run("header", func(t *testing.T) {
		_, err := Read(bsptest.New().Version(19).MustBuild(t))
		var mismatch *errs.HeaderMismatchError
		require.ErrorAs(t, err, &mismatch)
		require.Equal(t, uint32(19), mismatch.Version)
	})

	t.Run("lump size", func(t *testing.T) {
		_, err := Read(fixtureBuilder().Lump(format.LumpPlanes, 0, make([]byte, 19)).MustBuild(t))
		var sizeErr *errs.LumpSizeError
		require.ErrorAs(t, err, &sizeErr)
		require.Equal(t, format.LumpPlanes, sizeErr.Lump)
		require.Contains(t, err.Error(), "read Planes")
	})

	t.Run("leaf version changes record width", func(t *testing.T) {
		data := fixtureBuilder().Lump(format.LumpLeaves, 0, make([]byte, 32*3)).MustBuild(t)
		_, err := Read(data)
		require.ErrorIs(t, err, errs.ErrInvalidLumpSize)
	})

	t.Run("out of bounds", func(t *testing.T) {
		data := fixtureBuilder().
			RawEntry(format.LumpEdges, section.LumpEntry{Offset: 1 << 20, Length: 4}).
			MustBuild(t)
		_, err := Read(data)
		require.ErrorIs(t, err, errs.ErrLumpOutOfBounds)
	})

	t.Run("decompression", func(t *testing.T) {
		data := fixtureBuilder().
			CompressedLump(format.LumpVertices, 0, format.CompressionLZMA, make([]byte, 36)).
			MustBuild(t)
		boom := errors.New("boom")
		_, err := Read(data, WithDecompressor(format.CompressionLZMA, failingDecompressor{boom}))
		require.ErrorIs(t, err, errs.ErrDecompress)
		require.ErrorIs(t, err, boom)
	})

	t.Run("truncated visibility", func(t *testing.T) {
		w := &bsptest.Buf{}
		w.U32(100).U32(0)
		_, err := Read(fixtureBuilder().Lump(format.LumpVisibility, 0, w.Bytes()).MustBuild(t))
		require.ErrorIs(t, err, errs.ErrTruncatedVisibility)
	})
}

func TestReadLumpSizeMismatch(t *testing.T) {
	cases := []struct {
		lump    format.LumpType
		version uint32
		size    int
	}{
		{format.LumpPlanes, 0, record.PlaneSize},
		{format.LumpVertices, 0, record.VertexSize},
		{format.LumpEdges, 0, record.EdgeSize},
		{format.LumpSurfaceEdges, 0, record.SurfaceEdgeSize},
		{format.LumpModels, 0, record.ModelSize},
		{format.LumpBrushes, 0, record.BrushSize},
		{format.LumpBrushSides, 0, record.BrushSideSize},
		{format.LumpNodes, 0, record.NodeSize},
		{format.LumpLeaves, 0, record.LeafSize(0)},
		{format.LumpLeaves, 1, record.LeafSize(1)},
		{format.LumpLeafFaces, 0, record.LeafFaceSize},
		{format.LumpLeafBrushes, 0, record.LeafBrushSize},
		{format.LumpFaces, 0, record.FaceSize},
		{format.LumpOriginalFaces, 0, record.FaceSize},
		{format.LumpTextureInfo, 0, record.TextureInfoSize},
		{format.LumpTextureData, 0, record.TextureDataSize},
		{format.LumpTextureDataStringTable, 0, record.TextureStringTableSize},
		{format.LumpDisplacementInfo, 0, record.DisplacementInfoSize},
	}

	for _, tc := range cases {
		t.Run(tc.lump.String(), func(t *testing.T) {
			length := tc.size*2 + 1
			data := fixtureBuilder().Lump(tc.lump, tc.version, make([]byte, length)).MustBuild(t)

			_, err := Read(data)
			var sizeErr *errs.LumpSizeError
			require.ErrorAs(t, err, &sizeErr)
			require.Equal(t, tc.lump, sizeErr.Lump)
			require.Equal(t, tc.size, sizeErr.ElementSize)
			require.Equal(t, length, sizeErr.LumpSize)
			require.Contains(t, err.Error(), "read "+tc.lump.String())
		})
	}
}

type failingDecompressor struct{ err error }

func (f failingDecompressor) Decompress([]byte) ([]byte, error) { return nil, f.err }

func TestReadCompressedLumps(t *testing.T) {
	vertices := &bsptest.Buf{}
	vertices.Vec(mgl32.Vec3{0, 0, 0}).Vec(mgl32.Vec3{1, 0, 0}).Vec(mgl32.Vec3{0, 1, 0})

	tags := []format.CompressionTag{
		format.CompressionLZMA, format.CompressionZstd, format.CompressionLZ4, format.CompressionS2,
	}
	for _, tag := range tags {
		t.Run(tag.String(), func(t *testing.T) {
			data := fixtureBuilder().
				CompressedLump(format.LumpVertices, 0, tag, vertices.Bytes()).
				CompressedLump(format.LumpEntities, 0, tag, []byte(fixtureEntities)).
				MustBuild(t)
			m, err := Read(data)
			require.NoError(t, err)
			require.Len(t, m.Vertices, 3)
			require.Equal(t, mgl32.Vec3{0, 1, 0}, m.Vertices[2].Position)
			require.Equal(t, 2, m.Entities.Len())
		})
	}
}

func TestReadOverridesDecompressor(t *testing.T) {
	vertices := make([]byte, 12)
	data := fixtureBuilder().
		CompressedLump(format.LumpVertices, 0, format.CompressionLZ4, vertices).
		MustBuild(t)

	var calls int
	lz4 := compress.NewLZ4Compressor()
	counting := decompressFunc(func(b []byte) ([]byte, error) {
		calls++
		return lz4.Decompress(b)
	})

	m, err := Read(data, WithDecompressor(format.CompressionLZ4, counting))
	require.NoError(t, err)
	require.Len(t, m.Vertices, 1)
	require.Equal(t, 1, calls)
}

type decompressFunc func([]byte) ([]byte, error)

func (f decompressFunc) Decompress(b []byte) ([]byte, error) { return f(b) }

func TestReadLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	w := &bsptest.Buf{}
	w.U32(1).U32(500).U32(12).U8(0xFF)
	data := fixtureBuilder().
		Lump(format.LumpVisibility, 0, w.Bytes()).
		Lump(format.LumpEntities, 0, []byte(`{"classname" "light"`)).
		MustBuild(t)

	_, err := Read(data, WithLogger(logger))
	require.NoError(t, err)

	var warnings []string
	var decoded bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e.Message)
		}
		if e.Message == "decoded bsp" {
			decoded = true
			assert.Equal(t, uint32(42), e.Data["revision"])
		}
	}
	require.True(t, decoded)
	require.ElementsMatch(t, []string{
		"entity lump ends inside a block",
		"visibility offsets outside the bit vectors",
	}, warnings)
}

func TestLeavesSortedByCluster(t *testing.T) {
	m := readFixture(t)

	var clusters []int16
	var files []int
	for i, leaf := range m.Leaves.All() {
		clusters = append(clusters, leaf.Cluster)
		files = append(files, m.Leaves.FileIndex(i))
	}
	require.Equal(t, []int16{-1, 0, 1, 2}, clusters)
	require.Equal(t, []int{3, 1, 2, 0}, files)

	for f := range 4 {
		pos, ok := m.Leaves.SortedIndex(f)
		require.True(t, ok)
		require.Equal(t, f, m.Leaves.FileIndex(pos))
	}
	_, ok := m.Leaves.SortedIndex(4)
	require.False(t, ok)
	require.Equal(t, -1, m.Leaves.FileIndex(-1))
}

func TestLeavesClusters(t *testing.T) {
	file := make([]record.Leaf, 0, 5)
	for i, c := range []int16{2, 0, 1, 0, 2} {
		file = append(file, record.Leaf{Cluster: c, Contents: int32(i)})
	}
	leaves := newLeaves(file)

	var got [][]int32
	var ids []int
	for cluster, run := range leaves.Clusters() {
		ids = append(ids, cluster)
		var contents []int32
		for _, l := range run {
			contents = append(contents, l.Contents)
		}
		got = append(got, contents)
	}
	require.Equal(t, []int{0, 1, 2}, ids)
	// stable: file order within a cluster
	require.Equal(t, [][]int32{{1, 3}, {2}, {0, 4}}, got)
}

func TestLeafAt(t *testing.T) {
	m := readFixture(t)

	tests := []struct {
		name    string
		point   mgl32.Vec3
		file    int
		cluster int
	}{
		{name: "front front", point: mgl32.Vec3{1, 1, 0}, file: 1, cluster: 0},
		{name: "front back", point: mgl32.Vec3{1, -1, 0}, file: 2, cluster: 1},
		{name: "back", point: mgl32.Vec3{-1, 5, 0}, file: 0, cluster: 2},
		{name: "on both planes goes front", point: mgl32.Vec3{0, 0, 0}, file: 1, cluster: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf, ok := m.LeafAt(tt.point)
			require.True(t, ok)
			require.Equal(t, tt.file, leaf.FileIndex())
			require.Equal(t, tt.cluster, leaf.Cluster())
		})
	}
}

func TestLeafAtDanglingReferences(t *testing.T) {
	t.Run("missing plane", func(t *testing.T) {
		m := readFixture(t)
		m.Nodes = slices.Clone(m.Nodes)
		m.Nodes[0].PlaneIndex = 9
		_, ok := m.LeafAt(mgl32.Vec3{1, 1, 1})
		require.False(t, ok)
	})

	t.Run("missing leaf", func(t *testing.T) {
		m := readFixture(t)
		m.Nodes = slices.Clone(m.Nodes)
		m.Nodes[0].Children[1] = record.LeafRef(40)
		_, ok := m.LeafAt(mgl32.Vec3{-1, 0, 0})
		require.False(t, ok)
	})

	t.Run("cycle", func(t *testing.T) {
		m := readFixture(t)
		m.Nodes = slices.Clone(m.Nodes)
		m.Nodes[1].Children[0] = record.NodeRef(0)
		_, ok := m.LeafAt(mgl32.Vec3{1, 1, 0})
		require.False(t, ok)
	})
}

func TestNodeChildren(t *testing.T) {
	m := readFixture(t)
	root, ok := m.RootNode()
	require.True(t, ok)

	plane, ok := root.Plane()
	require.True(t, ok)
	require.Equal(t, mgl32.Vec3{1, 0, 0}, plane.Data().Normal)

	children := root.Children()
	require.True(t, children[0].OK)
	require.False(t, children[0].Ref.IsLeaf())
	require.Equal(t, 1, children[0].Node.Index())

	require.True(t, children[1].OK)
	require.True(t, children[1].Ref.IsLeaf())
	require.Equal(t, 0, children[1].Leaf.FileIndex())
	require.Equal(t, 3, children[1].Leaf.Index())

	m.Nodes[0].Children[0] = record.NodeRef(8)
	children = root.Children()
	require.False(t, children[0].OK)
}

func TestVisibleSet(t *testing.T) {
	m := readFixture(t)

	leaf, ok := m.LeafAt(mgl32.Vec3{1, 1, 0})
	require.True(t, ok)
	visible, ok := leaf.VisibleSet()
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, fileIndices(visible))

	leaf, ok = m.LeafAt(mgl32.Vec3{-1, 0, 0})
	require.True(t, ok)
	visible, ok = leaf.VisibleSet()
	require.True(t, ok)
	// cluster 2 sees cluster 0, which is a real cluster
	require.Equal(t, []int{1, 0}, fileIndices(visible))

	audible, ok := leaf.AudibleSet()
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 0}, fileIndices(audible))

	solid, ok := m.Leaf(0)
	require.True(t, ok)
	require.Equal(t, -1, solid.Cluster())
	_, ok = solid.VisibleSet()
	require.False(t, ok)
}

func TestVisibleSetWithoutVisData(t *testing.T) {
	m := readFixture(t)
	m.VisData.ClusterCount = 0
	m.VisData.PVSOffsets = nil

	leaf, ok := m.LeafAt(mgl32.Vec3{1, -1, 0})
	require.True(t, ok)
	visible, ok := leaf.VisibleSet()
	require.True(t, ok)
	require.Equal(t, []int{2}, fileIndices(visible))
}

func TestLeafFacesAndBrushes(t *testing.T) {
	m := readFixture(t)

	leaf, ok := m.LeafAt(mgl32.Vec3{1, 1, 0})
	require.True(t, ok)
	var faces []int
	for f := range leaf.Faces() {
		faces = append(faces, f.Index())
	}
	require.Equal(t, []int{1, 0}, faces)

	var brushes []int
	for b := range leaf.Brushes() {
		brushes = append(brushes, b.Index())
		for side := range b.Sides() {
			require.Equal(t, uint16(1), side.PlaneIndex)
		}
	}
	require.Equal(t, []int{0}, brushes)

	// second slot names face 99, which does not exist
	leaf, ok = m.LeafAt(mgl32.Vec3{1, -1, 0})
	require.True(t, ok)
	faces = faces[:0]
	for f := range leaf.Faces() {
		faces = append(faces, f.Index())
	}
	require.Equal(t, []int{0}, faces)
}

func TestModelFaces(t *testing.T) {
	m := readFixture(t)

	var counts []int
	for model := range m.AllModels() {
		n := 0
		for range model.Faces() {
			n++
		}
		counts = append(counts, n)
	}
	// the second model's range is clipped to the faces lump
	require.Equal(t, []int{2, 1}, counts)

	_, ok := m.Model(2)
	require.False(t, ok)
}

func TestFaceHandles(t *testing.T) {
	m := readFixture(t)

	face, ok := m.Face(0)
	require.True(t, ok)
	require.Equal(t, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, slices.Collect(face.Vertices()))

	info, ok := face.TextureInfo()
	require.True(t, ok)
	require.Equal(t, "brick/wall01", info.Name())
	_, ok = face.Displacement()
	require.False(t, ok)

	face, ok = m.Face(1)
	require.True(t, ok)
	require.Empty(t, slices.Collect(face.Vertices()))
	info, ok = face.TextureInfo()
	require.True(t, ok)
	require.Empty(t, info.Name())

	disp, ok := face.Displacement()
	require.True(t, ok)
	require.Equal(t, 25, disp.Data().VertexCount())
	back, ok := disp.Face()
	require.True(t, ok)
	require.Equal(t, 1, back.Index())

	plane, ok := face.Plane()
	require.True(t, ok)
	require.Equal(t, mgl32.Vec3{0, 1, 0}, plane.Data().Normal)
}

func TestFaceVerticesDangling(t *testing.T) {
	m := readFixture(t)
	m.SurfaceEdges = []record.SurfaceEdge{{Edge: 0}, {Edge: 7}, {Edge: 1}}

	face, ok := m.Face(0)
	require.True(t, ok)
	require.Equal(t, []mgl32.Vec3{{0, 0, 0}}, slices.Collect(face.Vertices()))
}

func TestAllFaces(t *testing.T) {
	m := readFixture(t)

	require.Len(t, slices.Collect(m.AllFaces()), 2)

	originals := slices.Collect(m.AllOriginalFaces())
	require.Len(t, originals, 1)
	require.Equal(t, int16(3), originals[0].Data().EdgeCount)
	original, ok := m.OriginalFace(0)
	require.True(t, ok)
	require.Equal(t, originals[0].Data(), original.Data())
}

func TestTextureNames(t *testing.T) {
	m := readFixture(t)

	names := make(map[int]string)
	for i, name := range m.TextureNames() {
		names[i] = name
	}
	require.Equal(t, map[int]string{0: "brick/wall01", 1: "TOOLS/NODRAW", 2: ""}, names)

	tex, ok := m.TextureByName("tools/nodraw")
	require.True(t, ok)
	require.Equal(t, 1, tex.Index())

	tex, ok = m.TextureByName("BRICK/Wall01")
	require.True(t, ok)
	require.Equal(t, 0, tex.Index())

	_, ok = m.TextureByName("brick/wall02")
	require.False(t, ok)
}

func TestEntitiesParse(t *testing.T) {
	m := readFixture(t)

	var kinds []entity.Kind
	for ent, err := range m.Entities.Parsed() {
		if err != nil {
			kinds = append(kinds, entity.KindUnknown)
			continue
		}
		kinds = append(kinds, ent.Kind())
	}
	// worldspawn lacks its required keys in the fixture
	require.Equal(t, []entity.Kind{entity.KindUnknown, entity.KindLight}, kinds)
}

func TestStrictRecords(t *testing.T) {
	m := readFixture(t, WithStrictRecords(false))
	require.Len(t, m.Faces, 2)
}
