package entity

import (
	"fmt"

	"github.com/arloliu/vbsp/internal/collision"
	"github.com/arloliu/vbsp/internal/hash"
)

// Entity is a parsed entity record.
type Entity interface {
	// Kind identifies the record variant.
	Kind() Kind
	// ClassName returns the classname the record was parsed from.
	ClassName() string
}

// base is embedded by every typed record.
type base struct {
	kind Kind
}

func (b base) Kind() Kind         { return b.kind }
func (b base) ClassName() string  { return b.kind.String() }
func (b *base) setKind(kind Kind) { b.kind = kind }

// Unknown is an entity whose class has no typed record.
type Unknown struct {
	Raw RawEntity
}

func (u *Unknown) Kind() Kind        { return KindUnknown }
func (u *Unknown) ClassName() string { return u.Raw.ClassName() }

type class struct {
	name  string
	kind  Kind
	parse func(RawEntity) (Entity, error)
}

var (
	classes    = make(map[uint64]class)
	classNames = make(map[Kind]string)
	tracker    = collision.NewTracker()
)

// record is the constraint satisfied by pointers to typed records.
type record[T any] interface {
	*T
	Entity
	setKind(Kind)
}

// register binds classname to kind and the schema of record type T.
// Registration happens at init time; duplicate names, duplicate kinds and
// hash collisions are programming errors.
func register[T any, P record[T]](name string, kind Kind, s schema[T]) {
	id := hash.ID(name)
	if err := tracker.Track(name, id); err != nil {
		panic(fmt.Sprintf("entity: register %q: %v", name, err))
	}
	if prev, dup := classNames[kind]; dup {
		panic(fmt.Sprintf("entity: kind %d already registered for %q", kind, prev))
	}

	classNames[kind] = name
	classes[id] = class{
		name: name,
		kind: kind,
		parse: func(raw RawEntity) (Entity, error) {
			v, err := s.extract(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			P(v).setKind(kind)

			return P(v), nil
		},
	}
}

func lookupClass(name string) (class, bool) {
	c, ok := classes[hash.ID(name)]
	if !ok || c.name != name {
		return class{}, false
	}

	return c, true
}

// ClassNames returns every classname with a typed record, in registration order.
func ClassNames() []string {
	return append([]string(nil), tracker.Names()...)
}

// KindOf returns the kind registered for classname.
func KindOf(classname string) (Kind, bool) {
	c, ok := lookupClass(classname)
	return c.kind, ok
}
