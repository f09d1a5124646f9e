package entity

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"

	"github.com/arloliu/vbsp/errs"
)

// Number is any type a numeric property can be parsed into.
type Number interface {
	constraints.Integer | constraints.Float
}

// converter turns the raw text of a property into a typed value.
type converter[V any] func(raw string) (V, error)

// ParseNumber parses raw into N using the bit size and signedness of N.
func ParseNumber[N Number](raw string) (N, error) {
	t := reflect.TypeFor[N]()

	var (
		v   N
		err error
	)
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		var f float64
		f, err = strconv.ParseFloat(raw, t.Bits())
		v = N(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		i, err = strconv.ParseInt(raw, 10, t.Bits())
		v = N(i)
	default:
		var u uint64
		u, err = strconv.ParseUint(raw, 10, t.Bits())
		v = N(u)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q as %s", errs.ErrInvalidValue, raw, t)
	}

	return v, nil
}

// ParseBool parses a flag property: anything other than "0" is true.
func ParseBool(raw string) (bool, error) {
	return raw != "0", nil
}

// ParseString returns raw unchanged.
func ParseString(raw string) (string, error) {
	return raw, nil
}

// ParseArray fills dst from the first len(dst) space separated tokens of
// raw. Extra tokens are ignored; fewer tokens fail with ErrElementCount.
func ParseArray[N Number](raw string, dst []N) error {
	tokens := strings.SplitN(raw, " ", len(dst)+1)
	for i := range dst {
		if i >= len(tokens) {
			return fmt.Errorf("%w: %q has %d of %d elements", errs.ErrElementCount, raw, len(tokens), len(dst))
		}
		v, err := ParseNumber[N](tokens[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

// ParseVector parses "x y z" into a vector.
func ParseVector(raw string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	err := ParseArray(raw, v[:])

	return v, err
}

func number[N Number]() converter[N] {
	return ParseNumber[N]
}

func array3[N Number]() converter[[3]N] {
	return func(raw string) ([3]N, error) {
		var a [3]N
		err := ParseArray(raw, a[:])

		return a, err
	}
}

func array4[N Number]() converter[[4]N] {
	return func(raw string) ([4]N, error) {
		var a [4]N
		err := ParseArray(raw, a[:])

		return a, err
	}
}

// enum parses a uint8 backed enumeration and rejects unknown values.
func enum[E ~uint8](valid func(E) bool) converter[E] {
	return func(raw string) (E, error) {
		n, err := ParseNumber[uint8](raw)
		if err != nil {
			return 0, err
		}
		e := E(n)
		if !valid(e) {
			return 0, fmt.Errorf("%w: %d for %T", errs.ErrInvalidEnumValue, n, e)
		}

		return e, nil
	}
}

var (
	text    converter[string]     = ParseString
	boolean converter[bool]       = ParseBool
	vector  converter[mgl32.Vec3] = ParseVector
)
