package bsp

import (
	"iter"
	"slices"

	"github.com/arloliu/vbsp/record"
)

// Leaves holds the leaves of a map ordered by cluster.
//
// The file order is replaced by a stable sort on the cluster id so that
// the leaves of one cluster are contiguous. The permutation is kept so
// that references by file index, like node children, can be resolved.
type Leaves struct {
	items []record.Leaf
	// fileIndex[i] is the file index of items[i].
	fileIndex []int
	// sortedIndex[f] is the position in items of file leaf f.
	sortedIndex []int
}

func newLeaves(file []record.Leaf) Leaves {
	order := make([]int, len(file))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return int(file[a].Cluster) - int(file[b].Cluster)
	})

	l := Leaves{
		items:       make([]record.Leaf, len(file)),
		fileIndex:   order,
		sortedIndex: make([]int, len(file)),
	}
	for pos, f := range order {
		l.items[pos] = file[f]
		l.sortedIndex[f] = pos
	}

	return l
}

// Len returns the number of leaves.
func (l Leaves) Len() int {
	return len(l.items)
}

// At returns the leaf at sorted position i.
func (l Leaves) At(i int) (record.Leaf, bool) {
	if i < 0 || i >= len(l.items) {
		return record.Leaf{}, false
	}

	return l.items[i], true
}

// All yields the leaves in cluster order with their sorted position.
func (l Leaves) All() iter.Seq2[int, record.Leaf] {
	return func(yield func(int, record.Leaf) bool) {
		for i, leaf := range l.items {
			if !yield(i, leaf) {
				return
			}
		}
	}
}

// FileIndex returns the file index of the leaf at sorted position i, or
// -1 when i is out of range.
func (l Leaves) FileIndex(i int) int {
	if i < 0 || i >= len(l.fileIndex) {
		return -1
	}

	return l.fileIndex[i]
}

// SortedIndex returns the sorted position of file leaf f.
func (l Leaves) SortedIndex(f int) (int, bool) {
	if f < 0 || f >= len(l.sortedIndex) {
		return 0, false
	}

	return l.sortedIndex[f], true
}

// Clusters yields each run of leaves sharing a cluster id, in ascending
// cluster order. Leaves outside any cluster form the first run when the
// map has them.
func (l Leaves) Clusters() iter.Seq2[int, []record.Leaf] {
	return func(yield func(int, []record.Leaf) bool) {
		for r := range l.runs() {
			if !yield(r.cluster, l.items[r.start:r.end:r.end]) {
				return
			}
		}
	}
}

// clusterRun is the [start, end) range of the leaves of one cluster.
type clusterRun struct {
	cluster    int
	start, end int
}

func (l Leaves) runs() iter.Seq[clusterRun] {
	return func(yield func(clusterRun) bool) {
		for start := 0; start < len(l.items); {
			cluster := l.items[start].Cluster
			end := start + 1
			for end < len(l.items) && l.items[end].Cluster == cluster {
				end++
			}
			if !yield(clusterRun{cluster: int(cluster), start: start, end: end}) {
				return
			}
			start = end
		}
	}
}

// remapChildren rewrites leaf children of nodes from file indices to sorted
// positions. References to missing leaves are left unchanged, so they stay
// out of range.
func (l Leaves) remapChildren(nodes []record.Node) {
	for i := range nodes {
		for c, child := range nodes[i].Children {
			if !child.IsLeaf() {
				continue
			}
			if pos, ok := l.SortedIndex(child.Index()); ok {
				nodes[i].Children[c] = child.WithIndex(pos)
			}
		}
	}
}
