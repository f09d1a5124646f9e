package format

import "fmt"

type (
	// LumpType is the directory slot of a lump.
	LumpType uint8
	// CompressionTag is the four byte codec tag of a compressed lump.
	CompressionTag [4]byte
)

// LumpCount is the fixed number of entries in the lump directory.
const LumpCount = 64

// Lump identifiers in directory order. The order is significant: the
// numeric value of a LumpType is its slot in the directory.
const (
	LumpEntities LumpType = iota
	LumpPlanes
	LumpTextureData
	LumpVertices
	LumpVisibility
	LumpNodes
	LumpTextureInfo
	LumpFaces
	LumpLighting
	LumpOcclusion
	LumpLeaves
	LumpFaceIDs
	LumpEdges
	LumpSurfaceEdges
	LumpModels
	LumpWorldLights
	LumpLeafFaces
	LumpLeafBrushes
	LumpBrushes
	LumpBrushSides
	LumpAreas
	LumpAreaPortals
	LumpUnused0
	LumpUnused1
	LumpUnused2
	LumpUnused3
	LumpDisplacementInfo
	LumpOriginalFaces
	LumpPhysDisplacement
	LumpPhysCollide
	LumpVertNormals
	LumpVertNormalIndices
	LumpDisplacementLightMapAlphas
	LumpDisplacementVertices
	LumpDisplacementLightMapSamplePositions
	LumpGameLump
	LumpLeafWaterData
	LumpPrimitives
	LumpPrimVertices
	LumpPrimIndices
	LumpPakFile
	LumpClipPortalVertices
	LumpCubeMaps
	LumpTextureDataStringData
	LumpTextureDataStringTable
	LumpOverlays
	LumpLeafMinimumDistanceToWater
	LumpFaceMacroTextureInfo
	LumpDisplacementTris
	LumpPhysicsCollideSurface
	LumpWaterOverlays
	LumpLeafAmbientIndexHDR
	LumpLeafAmbientIndex
	LumpLightingHDR
	LumpWorldLightsHDR
	LumpLeafAmbientLightingHDR
	LumpLeafAmbientLighting
	LumpXZipPakFile
	LumpFacesHDR
	LumpMapFlags
	LumpOverlayFades
	LumpOverlaySystemLevels
	LumpPhysLevel
	LumpDisplacementMultiBlend
)

var lumpNames = [LumpCount]string{
	"Entities", "Planes", "TextureData", "Vertices", "Visibility", "Nodes",
	"TextureInfo", "Faces", "Lighting", "Occlusion", "Leaves", "FaceIDs",
	"Edges", "SurfaceEdges", "Models", "WorldLights", "LeafFaces",
	"LeafBrushes", "Brushes", "BrushSides", "Areas", "AreaPortals",
	"Unused0", "Unused1", "Unused2", "Unused3", "DisplacementInfo",
	"OriginalFaces", "PhysDisplacement", "PhysCollide", "VertNormals",
	"VertNormalIndices", "DisplacementLightMapAlphas", "DisplacementVertices",
	"DisplacementLightMapSamplePositions", "GameLump", "LeafWaterData",
	"Primitives", "PrimVertices", "PrimIndices", "PakFile",
	"ClipPortalVertices", "CubeMaps", "TextureDataStringData",
	"TextureDataStringTable", "Overlays", "LeafMinimumDistanceToWater",
	"FaceMacroTextureInfo", "DisplacementTris", "PhysicsCollideSurface",
	"WaterOverlays", "LeafAmbientIndexHDR", "LeafAmbientIndex", "LightingHDR",
	"WorldLightsHDR", "LeafAmbientLightingHDR", "LeafAmbientLighting",
	"XZipPakFile", "FacesHDR", "MapFlags", "OverlayFades",
	"OverlaySystemLevels", "PhysLevel", "DisplacementMultiBlend",
}

// Valid reports whether l addresses a directory slot.
func (l LumpType) Valid() bool {
	return int(l) < LumpCount
}

func (l LumpType) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Lump(%d)", uint8(l))
	}

	return lumpNames[l]
}

// Compressed lump payloads start with a four byte tag naming the codec that
// produced them. The map compiler only emits LZMA; the others are accepted
// for lumps repacked by third-party tools.
var (
	CompressionLZMA = CompressionTag{'L', 'Z', 'M', 'A'}
	CompressionZstd = CompressionTag{'Z', 'S', 'T', 'D'}
	CompressionLZ4  = CompressionTag{'L', 'Z', '4', 0}
	CompressionS2   = CompressionTag{'S', '2', 0, 0}
)

func (c CompressionTag) String() string {
	switch c {
	case CompressionLZMA:
		return "LZMA"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	case CompressionS2:
		return "S2"
	default:
		return fmt.Sprintf("Unknown(%q)", c[:])
	}
}
