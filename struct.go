package roster

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

// tagName is the struct tag FromStruct reads to rename or skip a field.
const tagName = "enum"

func init() {
	sentinel.Tag(tagName)
}

// FromStruct builds a registry from a struct literal.
//
// Exported fields become constants in declaration order. The `enum` tag
// renames a constant (`enum:"sunday"`) or skips the field (`enum:"-"`).
// Non-scalar fields are filtered exactly as New filters non-scalar values.
// The registry takes the struct's type name unless WithTypeName overrides it.
//
//	type dayOfWeek struct {
//	    Sunday int `enum:"sunday"`
//	    Monday int `enum:"monday"`
//	}
//
//	var DayOfWeek = roster.FromStruct(dayOfWeek{0, 1}, roster.WithTypeName("DayOfWeek"))
//
// A non-struct T produces an empty registry.
func FromStruct[T any](def T, opts ...Option) *Registry {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return New(nil, opts...)
	}

	meta := scanDefinition[T](rt)
	rv := reflect.ValueOf(def)

	entries := make(Definition, 0, len(meta.Fields))
	for _, field := range meta.Fields {
		name := field.Name
		if tag, ok := field.Tags[tagName]; ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		fv, err := rv.FieldByIndexErr(field.Index)
		if err != nil || !fv.CanInterface() {
			continue
		}
		entries = append(entries, Entry{Name: name, Value: fv.Interface()})
	}

	// Caller options come last so WithTypeName overrides the derived name.
	all := append([]Option{WithTypeName(meta.TypeName)}, opts...)
	return New(entries, all...)
}

// scanDefinition returns field metadata for a definition struct.
// Anonymous structs have no name to cache metadata under, so they are
// scanned directly.
func scanDefinition[T any](rt reflect.Type) sentinel.Metadata {
	if rt.Name() != "" {
		return sentinel.Scan[T]()
	}

	meta := sentinel.Metadata{
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(tagName); ok {
			fm.Tags[tagName] = val
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return meta
}
