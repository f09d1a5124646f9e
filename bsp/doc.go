// Package bsp decodes a Source engine map into an immutable model and
// answers queries over it.
//
// Read decodes every lump the query layer needs:
//
//	m, err := bsp.Read(data, bsp.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	leaf, ok := m.LeafAt(mgl32.Vec3{0, 0, 64})
//	if ok {
//	    visible, _ := leaf.VisibleSet()
//	    for other := range visible {
//	        fmt.Println(other.FileIndex())
//	    }
//	}
//
// Handles pair a record with its map so that indices into other lumps can
// be followed: a model to its faces, a node to its plane and children, a
// leaf to its faces, brushes and visible leaves, a face to its vertices
// and texture. A reference that points past the end of its lump resolves
// to nothing rather than failing.
//
// Leaves are ordered by cluster, not by file order. Leaf handle indices
// are positions in that order; FileIndex recovers the file position.
package bsp
