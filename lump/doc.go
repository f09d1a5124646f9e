// Package lump decodes fixed-size records from the bytes of a lump.
//
// Every uniform lump is a packed array of little-endian records with no
// alignment. ReadVec checks that the lump length is a whole number of
// records, decodes each one through a caller supplied function and checks
// that the function consumed exactly the record width:
//
//	r := lump.NewReader(format.LumpEdges, 0, data)
//	edges, err := lump.ReadVec(r, 4, func(r *lump.Reader) (Edge, error) {
//	    return Edge{r.Uint16(), r.Uint16()}, nil
//	})
//
// Lumps whose layout depends on the directory version use
// ReadVecVersioned; the caller picks the record width for the version.
package lump
