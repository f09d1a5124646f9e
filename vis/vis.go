// Package vis decodes the visibility lump: per-cluster potentially
// visible (PVS) and potentially audible (PAS) sets, run-length encoded.
//
// The lump starts with a cluster count followed by one (PVS, PAS) pair of
// byte offsets per cluster. Offsets are relative to the start of the lump
// and point into the compressed bit vectors that follow the table.
package vis

import (
	"fmt"

	"github.com/arloliu/vbsp/endian"
	"github.com/arloliu/vbsp/errs"
)

// minLumpSize is the smallest lump holding a count and one offset pair's
// worth of header; shorter lumps mean the map has no visibility data.
const minLumpSize = 8

// Data is the decoded visibility table. The zero value describes a map
// without visibility information.
type Data struct {
	ClusterCount uint32
	PVSOffsets   []uint32
	PASOffsets   []uint32
	// Bits is the compressed bit vector blob following the offset table.
	Bits []byte
}

// Read decodes the offset table of a visibility lump. Bits aliases data.
//
// Returns:
//   - Data: Decoded table; zero value when data is shorter than 8 bytes
//   - error: ErrTruncatedVisibility when the offset table exceeds data
func Read(data []byte) (Data, error) {
	if len(data) < minLumpSize {
		return Data{}, nil
	}

	engine := endian.GetLittleEndianEngine()
	count := engine.Uint32(data[0:4])

	tableEnd := 4 + 8*uint64(count)
	if tableEnd > uint64(len(data)) {
		return Data{}, fmt.Errorf("%w: %d clusters need %d bytes, lump has %d",
			errs.ErrTruncatedVisibility, count, tableEnd, len(data))
	}

	d := Data{
		ClusterCount: count,
		PVSOffsets:   make([]uint32, count),
		PASOffsets:   make([]uint32, count),
		Bits:         data[tableEnd:],
	}
	for i := range int(count) {
		pos := 4 + 8*i
		d.PVSOffsets[i] = engine.Uint32(data[pos : pos+4])
		d.PASOffsets[i] = engine.Uint32(data[pos+4 : pos+8])
	}

	return d, nil
}

// tableSize returns the byte length of the count and offset table.
func (d Data) tableSize() uint64 {
	return 4 + 8*uint64(d.ClusterCount)
}

// VisibleClusters decodes the PVS of cluster. The result is empty when
// cluster is out of range or its offset does not point into the blob.
func (d Data) VisibleClusters(cluster int) ClusterSet {
	return d.decode(d.PVSOffsets, cluster)
}

// AudibleClusters decodes the PAS of cluster.
func (d Data) AudibleClusters(cluster int) ClusterSet {
	return d.decode(d.PASOffsets, cluster)
}

// InvalidOffsets returns the clusters whose PVS or PAS offset points
// outside the bit vector blob.
func (d Data) InvalidOffsets() []int {
	var bad []int
	for i := range min(int(d.ClusterCount), len(d.PVSOffsets), len(d.PASOffsets)) {
		if _, ok := d.blobOffset(d.PVSOffsets[i]); !ok {
			bad = append(bad, i)
			continue
		}
		if _, ok := d.blobOffset(d.PASOffsets[i]); !ok {
			bad = append(bad, i)
		}
	}

	return bad
}

func (d Data) blobOffset(offset uint32) (int, bool) {
	table := d.tableSize()
	if uint64(offset) < table {
		return 0, false
	}
	pos := uint64(offset) - table
	if pos >= uint64(len(d.Bits)) {
		return 0, false
	}

	return int(pos), true
}

func (d Data) decode(offsets []uint32, cluster int) ClusterSet {
	set := newClusterSet(int(d.ClusterCount))
	if cluster < 0 || cluster >= len(offsets) {
		return set
	}

	pos, ok := d.blobOffset(offsets[cluster])
	if !ok {
		return set
	}

	decodeRLE(d.Bits[pos:], &set)

	return set
}

// decodeRLE expands a zero-run encoded bit vector into set: a non-zero
// byte is a literal mask for the next 8 clusters, lowest bit first; a zero
// byte is followed by the number of all-zero bytes it stands for.
func decodeRLE(src []byte, set *ClusterSet) {
	cluster := 0
	for i := 0; cluster < set.n && i < len(src); i++ {
		b := src[i]
		if b == 0 {
			i++
			if i >= len(src) {
				return
			}
			cluster += 8 * int(src[i])

			continue
		}

		for bit := range 8 {
			if b&(1<<bit) != 0 {
				set.add(cluster + bit)
			}
		}
		cluster += 8
	}
}
