// Package record defines the fixed-size records stored in BSP lumps and
// their decoders.
//
// Each record type has a Size constant with its on-disk width and a Read
// function suitable for lump.ReadVec:
//
//	planes, err := lump.ReadVec(r, record.PlaneSize, record.ReadPlane)
//
// Leaves are the only version dependent record; use LeafSize to pick the
// width and ReadLeaf with lump.ReadVecVersioned.
//
// Index fields keep the signedness and width of the file format so that
// corrupt values can be detected by the caller instead of wrapping.
package record
