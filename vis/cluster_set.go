package vis

import (
	"iter"
	"math/bits"
)

// ClusterSet is a set of cluster indices in [0, Len()).
type ClusterSet struct {
	words []uint64
	n     int
}

func newClusterSet(n int) ClusterSet {
	return ClusterSet{words: make([]uint64, (n+63)/64), n: n}
}

// add sets bit i; bits past the cluster count are dropped.
func (s *ClusterSet) add(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.words[i/64] |= 1 << (uint(i) % 64)
}

// Contains reports whether cluster i is in the set.
func (s ClusterSet) Contains(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}

	return s.words[i/64]&(1<<(uint(i)%64)) != 0
}

// Len returns the number of clusters the set ranges over.
func (s ClusterSet) Len() int {
	return s.n
}

// Count returns the number of clusters in the set.
func (s ClusterSet) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}

	return c
}

// All yields the clusters in the set in ascending order.
func (s ClusterSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for wi, w := range s.words {
			for w != 0 {
				bit := bits.TrailingZeros64(w)
				if !yield(wi*64 + bit) {
					return
				}
				w &= w - 1
			}
		}
	}
}
