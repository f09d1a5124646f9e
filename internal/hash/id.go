// Package hash computes the 64-bit name IDs used to index entity class
// names and texture names.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// FoldedID computes the xxHash64 of data with ASCII letters lowered, so
// names that differ only in case share an ID. Texture and class names in
// map files are ASCII, other bytes are hashed unchanged.
func FoldedID(data string) uint64 {
	if !hasUpper(data) {
		return xxhash.Sum64String(data)
	}

	var (
		d   xxhash.Digest
		buf [64]byte
	)
	d.Reset()
	for len(data) > 0 {
		n := copy(buf[:], data)
		for i := range n {
			if c := buf[i]; 'A' <= c && c <= 'Z' {
				buf[i] = c + ('a' - 'A')
			}
		}
		_, _ = d.Write(buf[:n])
		data = data[n:]
	}

	return d.Sum64()
}

func hasUpper(s string) bool {
	for i := range len(s) {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			return true
		}
	}

	return false
}
