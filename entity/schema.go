package entity

import (
	"github.com/arloliu/vbsp/errs"
)

type fieldMode uint8

const (
	required fieldMode = iota // absent property fails the record
	optional                  // absent property leaves a nil pointer
	fallback                  // absent property yields a declared default
)

// field binds one property to one struct field of T.
type field[T any] struct {
	name string
	mode fieldMode
	// set converts a present value into the field.
	set func(dst *T, raw string) error
	// unset runs for an absent fallback property.
	unset func(dst *T)
}

// schema is the ordered field list of a record type.
type schema[T any] []field[T]

// extract builds a T from raw. Any field error fails the whole record.
func (s schema[T]) extract(raw RawEntity) (*T, error) {
	var out T
	for _, f := range s {
		value, ok := raw.lookup(f.name)
		if !ok {
			switch f.mode {
			case required:
				return nil, &errs.PropertyError{Key: f.name, Err: errs.ErrNoSuchProperty}
			case fallback:
				if f.unset != nil {
					f.unset(&out)
				}
			}

			continue
		}

		if err := f.set(&out, value); err != nil {
			return nil, &errs.PropertyError{Key: f.name, Err: err}
		}
	}

	return &out, nil
}

// req declares a property that must be present.
func req[T, V any](name string, conv converter[V], ptr func(*T) *V) field[T] {
	return field[T]{
		name: name,
		mode: required,
		set:  setter(conv, ptr),
	}
}

// opt declares a property stored behind a pointer that stays nil when absent.
func opt[T, V any](name string, conv converter[V], ptr func(*T) **V) field[T] {
	return field[T]{
		name: name,
		mode: optional,
		set: func(dst *T, raw string) error {
			v, err := conv(raw)
			if err != nil {
				return err
			}
			*ptr(dst) = &v

			return nil
		},
	}
}

// def declares a property that takes value d when absent. A present but
// malformed value is still an error.
func def[T, V any](name string, conv converter[V], ptr func(*T) *V, d V) field[T] {
	return field[T]{
		name:  name,
		mode:  fallback,
		set:   setter(conv, ptr),
		unset: func(dst *T) { *ptr(dst) = d },
	}
}

func setter[T, V any](conv converter[V], ptr func(*T) *V) func(*T, string) error {
	return func(dst *T, raw string) error {
		v, err := conv(raw)
		if err != nil {
			return err
		}
		*ptr(dst) = v

		return nil
	}
}
