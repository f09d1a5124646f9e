package entity

import (
	"iter"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/vbsp/errs"
)

// Entities is the text of an entity lump.
type Entities struct {
	text string
}

// New wraps the entity lump text.
func New(text string) Entities {
	return Entities{text: strings.TrimRight(text, "\x00")}
}

// NewFromBytes wraps the entity lump bytes. Lumps written by older tools
// use the Windows-1252 code page; they are transcoded to UTF-8 when the
// bytes are not valid UTF-8 already.
func NewFromBytes(data []byte) Entities {
	if utf8.Valid(data) {
		return New(string(data))
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return New(strings.ToValidUTF8(string(data), "�"))
	}

	return New(string(decoded))
}

// Text returns the whole lump text.
func (e Entities) Text() string {
	return e.text
}

// All yields the entity blocks in file order. Every call starts from the
// beginning of the text. A block missing its closing brace ends the
// sequence.
func (e Entities) All() iter.Seq[RawEntity] {
	return func(yield func(RawEntity) bool) {
		rest := e.text
		for {
			raw, next, ok := nextBlock(rest)
			if !ok || !yield(raw) {
				return
			}
			rest = next
		}
	}
}

// Len returns the number of complete entity blocks.
func (e Entities) Len() int {
	n := 0
	for range e.All() {
		n++
	}

	return n
}

// Unterminated reports whether the text ends with a block that has no
// closing brace.
func (e Entities) Unterminated() bool {
	rest := e.text
	for {
		_, next, ok := nextBlock(rest)
		if !ok {
			return strings.Contains(rest, "{")
		}
		rest = next
	}
}

// Parsed yields every entity block together with the result of parsing it.
func (e Entities) Parsed() iter.Seq2[Entity, error] {
	return func(yield func(Entity, error) bool) {
		for raw := range e.All() {
			if !yield(raw.Parse()) {
				return
			}
		}
	}
}

func nextBlock(s string) (RawEntity, string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return RawEntity{}, "", false
	}
	start++
	end := strings.IndexByte(s[start:], '}')
	if end < 0 {
		return RawEntity{}, "", false
	}
	end += start

	return RawEntity{text: s[start:end]}, s[end+1:], true
}

// RawEntity is the text between the braces of one entity block.
type RawEntity struct {
	text string
}

// NewRawEntity wraps the inside of an entity block.
func NewRawEntity(text string) RawEntity {
	return RawEntity{text: text}
}

// Text returns the block text without the braces.
func (r RawEntity) Text() string {
	return r.text
}

// Properties yields the key/value pairs in textual order. Keys may repeat.
func (r RawEntity) Properties() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		rest := r.text
		for {
			key, afterKey, ok := nextQuoted(rest)
			if !ok {
				return
			}
			value, afterValue, ok := nextQuoted(afterKey)
			if !ok {
				return
			}
			if !yield(key, value) {
				return
			}
			rest = afterValue
		}
	}
}

func nextQuoted(s string) (string, string, bool) {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return "", "", false
	}
	start++
	end := strings.IndexByte(s[start:], '"')
	if end < 0 {
		return "", "", false
	}
	end += start

	return s[start:end], s[end+1:], true
}

func (r RawEntity) lookup(key string) (string, bool) {
	for k, v := range r.Properties() {
		if k == key {
			return v, true
		}
	}

	return "", false
}

// Prop returns the value of the first property named key.
//
// Returns:
//   - string: Property value
//   - error: *errs.PropertyError wrapping ErrNoSuchProperty when absent
func (r RawEntity) Prop(key string) (string, error) {
	if v, ok := r.lookup(key); ok {
		return v, nil
	}

	return "", &errs.PropertyError{Key: key, Err: errs.ErrNoSuchProperty}
}

// ClassName returns the classname property, or "" when absent.
func (r RawEntity) ClassName() string {
	v, _ := r.lookup("classname")
	return v
}

// Map collects the properties; for repeated keys the first value wins.
func (r RawEntity) Map() map[string]string {
	m := make(map[string]string)
	for k, v := range r.Properties() {
		if _, seen := m[k]; !seen {
			m[k] = v
		}
	}

	return m
}

// Parse resolves the entity to its typed record by classname.
// Unknown classes yield *Unknown and a nil error.
func (r RawEntity) Parse() (Entity, error) {
	class, ok := lookupClass(r.ClassName())
	if !ok {
		return &Unknown{Raw: r}, nil
	}

	return class.parse(r)
}
