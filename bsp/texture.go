package bsp

import (
	"iter"
	"strings"

	"github.com/arloliu/vbsp/internal/hash"
)

// Name returns the material name of the texture. It resolves the name
// string table entry to an offset into the string data and reads up to
// the next NUL. Invalid indices and offsets yield "".
func (h TextureDataHandle) Name() string {
	return h.bsp.textureName(int(h.data.NameStringTableID))
}

func (b *Bsp) textureName(id int) string {
	if id < 0 || id >= len(b.TextureStringTable) {
		return ""
	}
	offset := int(b.TextureStringTable[id])
	if offset < 0 || offset >= len(b.TextureStringData) {
		return ""
	}

	name := b.TextureStringData[offset:]
	if end := strings.IndexByte(name, 0); end >= 0 {
		name = name[:end]
	}

	return name
}

// TextureNames yields the material name of every texture data record in
// file order.
func (b *Bsp) TextureNames() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := range b.TexturesData {
			if !yield(i, b.textureName(int(b.TexturesData[i].NameStringTableID))) {
				return
			}
		}
	}
}

// TextureByName finds the texture data record named name, ignoring ASCII
// case. When several records share a name the first one is returned.
//
// The name index is built on first use.
func (b *Bsp) TextureByName(name string) (TextureDataHandle, bool) {
	b.textureOnce.Do(b.buildTextureIndex)

	for _, i := range b.textureIndex[hash.FoldedID(name)] {
		tex, ok := b.TextureData(i)
		if ok && strings.EqualFold(tex.Name(), name) {
			return tex, true
		}
	}

	return TextureDataHandle{}, false
}

func (b *Bsp) buildTextureIndex() {
	b.textureIndex = make(map[uint64][]int, len(b.TexturesData))
	for i, name := range b.TextureNames() {
		id := hash.FoldedID(name)
		b.textureIndex[id] = append(b.textureIndex[id], i)
	}
}
