package roster

import (
	"context"
	"fmt"
	"iter"
	"strings"
)

// Entry is a single name/value pair of an enumeration.
type Entry struct {
	Name  string
	Value any
}

// Definition is an ordered list of entries describing an enumeration.
// Order is significant: it fixes the index of every constant.
//
// A name that appears more than once behaves like a repeated key in a map
// literal: the last value wins and the name keeps its first position.
type Definition []Entry

// Enum is the inspection surface of an enumeration.
type Enum interface {
	// Assert returns value unchanged if it is declared, otherwise an *InvalidValueError.
	Assert(value any) (any, error)

	// Coerce returns value if it is declared, otherwise the asserted default.
	Coerce(value, defaultValue any) (any, error)

	// HasValue reports whether a constant has the given value.
	HasValue(value any) bool

	// IsDefined is an alias for HasValue.
	IsDefined(value any) bool

	// IndexOf returns the position of the first constant with the value, or -1.
	IndexOf(value any) int

	// NameOf returns the name of the first constant with the value, or "".
	NameOf(value any) string

	// Keys returns the constant names in declaration order.
	Keys() []string

	// Names is an alias for Keys.
	Names() []string

	// Values returns the constant values in declaration order.
	Values() []any

	// Entries returns the name/value pairs in declaration order.
	Entries() []Entry
}

var _ Enum = (*Registry)(nil)

// Registry is an immutable enumeration built by New or FromStruct.
// A Registry is safe for concurrent use; nothing mutates it after construction.
type Registry struct {
	typeName string
	shape    Shape

	names  []string
	values []any // as declared
	canon  []any // canonical comparison form, parallel to values
	kinds  []Kind
	byName map[string]int
}

// New builds a registry from an ordered definition.
//
// Entries whose value kind is not admitted by the registry shape (by default:
// any non-scalar such as funcs, maps, slices, structs or nil) are dropped
// without error. New never fails and never returns nil.
func New(def Definition, opts ...Option) *Registry {
	cfg := newConfig(opts)
	ctx := context.Background()

	r := &Registry{
		typeName: cfg.typeName,
		shape:    cfg.shape,
		byName:   make(map[string]int),
	}

	dropped := 0
	for _, e := range collapse(def) {
		c, k, ok := canonical(e.Value)
		if !ok || !r.shape.Admits(k) {
			dropped++
			emitEntryDropped(ctx, r.typeName, e.Name, e.Value)
			continue
		}
		v := e.Value
		if k == KindBigInt {
			v = detach(v)
			c = v
		}
		r.byName[e.Name] = len(r.names)
		r.names = append(r.names, e.Name)
		r.values = append(r.values, v)
		r.canon = append(r.canon, c)
		r.kinds = append(r.kinds, k)
	}

	emitRegistryCreated(ctx, r.typeName, r.shape, len(r.names), dropped)
	return r
}

// collapse applies map-literal semantics to repeated names.
func collapse(def Definition) []Entry {
	pos := make(map[string]int, len(def))
	out := make([]Entry, 0, len(def))
	for _, e := range def {
		if i, ok := pos[e.Name]; ok {
			out[i].Value = e.Value
			continue
		}
		pos[e.Name] = len(out)
		out = append(out, e)
	}
	return out
}

// TypeName returns the name given with WithTypeName or derived by FromStruct.
func (r *Registry) TypeName() string {
	return r.typeName
}

// Shape returns the shape the registry was built with.
func (r *Registry) Shape() Shape {
	return r.shape
}

// Len returns the number of constants.
func (r *Registry) Len() int {
	return len(r.names)
}

// Assert returns value unchanged if it is declared.
// Otherwise it returns an *InvalidValueError wrapping ErrInvalidValue.
func (r *Registry) Assert(value any) (any, error) {
	if r.HasValue(value) {
		return value, nil
	}
	err := newInvalidValueError(r.typeName, value)
	emitAssertFailed(context.Background(), r.typeName, value, err)
	return nil, err
}

// Coerce returns value if it is declared, otherwise defaultValue.
//
// The default is itself asserted: an undeclared default is a programming
// error and fails with ErrInvalidValue just like Assert.
func (r *Registry) Coerce(value, defaultValue any) (any, error) {
	if r.HasValue(value) {
		return value, nil
	}
	v, err := r.Assert(defaultValue)
	if err != nil {
		return nil, err
	}
	emitCoerceDefaulted(context.Background(), r.typeName, value)
	return v, nil
}

// HasValue reports whether a constant has the given value.
// Equality is strict: "1" does not match 1, true does not match 1.
func (r *Registry) HasValue(value any) bool {
	return r.IndexOf(value) >= 0
}

// IsDefined is an alias for HasValue.
func (r *Registry) IsDefined(value any) bool {
	return r.HasValue(value)
}

// IndexOf returns the zero-based declaration position of the first constant
// with the given value, or -1.
func (r *Registry) IndexOf(value any) int {
	c, _, ok := canonical(value)
	if !ok {
		return -1
	}
	for i, v := range r.canon {
		if equal(v, c) {
			return i
		}
	}
	return -1
}

// NameOf returns the name of the first constant with the given value,
// or an empty string.
func (r *Registry) NameOf(value any) string {
	if i := r.IndexOf(value); i >= 0 {
		return r.names[i]
	}
	return ""
}

// Has reports whether a constant with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Lookup returns the value of the named constant.
func (r *Registry) Lookup(name string) (any, bool) {
	i, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return detach(r.values[i]), true
}

// Keys returns the constant names in declaration order.
// The slice is freshly allocated on every call.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Names is an alias for Keys.
func (r *Registry) Names() []string {
	return r.Keys()
}

// Values returns the constant values, as declared, in declaration order.
// The slice is freshly allocated on every call.
func (r *Registry) Values() []any {
	out := make([]any, len(r.values))
	for i, v := range r.values {
		out[i] = detach(v)
	}
	return out
}

// Entries returns the name/value pairs in declaration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.names))
	for i, name := range r.names {
		out[i] = Entry{Name: name, Value: detach(r.values[i])}
	}
	return out
}

// All returns an iterator over the name/value pairs in declaration order.
// The iterator may be ranged over any number of times.
func (r *Registry) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, name := range r.names {
			if !yield(name, detach(r.values[i])) {
				return
			}
		}
	}
}

func (r *Registry) String() string {
	var b strings.Builder
	b.WriteString(r.typeName)
	b.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(formatValue(r.values[i]))
	}
	b.WriteByte('}')
	return b.String()
}

// formatValue renders a value for diagnostics, quoting strings.
func formatValue(v any) string {
	if k, ok := KindOf(v); ok && k == KindString {
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprint(v)
}
