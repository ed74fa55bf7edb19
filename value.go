package roster

import (
	"math"
	"math/big"
	"reflect"
)

// Symbol is an opaque token that is equal only to itself.
// Two symbols created with the same description are still distinct.
// The zero Symbol is not a valid enumerated value.
type Symbol struct {
	id *symbolID
}

type symbolID struct {
	description string
}

// NewSymbol returns a new unique symbol.
func NewSymbol(description string) Symbol {
	return Symbol{id: &symbolID{description: description}}
}

// Description returns the description the symbol was created with.
func (s Symbol) Description() string {
	if s.id == nil {
		return ""
	}
	return s.id.description
}

func (s Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}

// KindOf classifies v. The boolean is false for non-scalar values
// (nil, funcs, maps, slices, arrays, structs, pointers, channels, complex numbers).
func KindOf(v any) (Kind, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case Symbol:
		return KindSymbol, x.id != nil
	case *big.Int:
		return KindBigInt, x != nil
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return KindBool, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber, true
	case reflect.String:
		return KindString, true
	default:
		return "", false
	}
}

// canonical returns the comparison form of a scalar value.
//
// Named types collapse to their underlying kind. Numbers become int64 when
// they are integral and fit, uint64 when integral above MaxInt64, and float64
// otherwise, so numerically equal values share one representation.
func canonical(v any) (any, Kind, bool) {
	k, ok := KindOf(v)
	if !ok {
		return nil, "", false
	}
	if k == KindSymbol || k == KindBigInt {
		return v, k, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), k, true
	case reflect.String:
		return rv.String(), k, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), k, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return int64(u), k, true
		}
		return u, k, true
	default:
		return canonicalFloat(rv.Float()), k, true
	}
}

// detach returns a private copy of mutable values. *big.Int is the only
// admitted value whose state can change behind the registry's back.
func detach(v any) any {
	if b, ok := v.(*big.Int); ok && b != nil {
		return new(big.Int).Set(b)
	}
	return v
}

// canonicalFloat folds integral floats onto the integer representation.
func canonicalFloat(f float64) any {
	if f != math.Trunc(f) {
		return f
	}
	switch {
	case f >= math.MinInt64 && f < math.MaxInt64:
		return int64(f)
	case f >= math.MaxInt64 && f < math.MaxUint64:
		return uint64(f)
	default:
		return f
	}
}

// equal compares two canonical values with strict, kind-preserving equality.
func equal(a, b any) bool {
	if ab, ok := a.(*big.Int); ok {
		bb, ok := b.(*big.Int)
		return ok && ab.Cmp(bb) == 0
	}
	if _, ok := b.(*big.Int); ok {
		return false
	}
	return a == b
}
