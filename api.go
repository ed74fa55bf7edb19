// Package roster provides immutable enumerated types built from ordered
// name/value definitions.
//
// A registry is constructed once, filters its definition down to scalar
// values, and never changes afterwards. It answers membership, position and
// name queries, and can validate or coerce untrusted input.
//
// # Defining an Enumeration
//
// From an ordered definition:
//
//	DayOfWeek := roster.New(roster.Definition{
//	    {Name: "sunday", Value: 0},
//	    {Name: "monday", Value: 1},
//	    {Name: "tuesday", Value: 2},
//	}, roster.WithTypeName("DayOfWeek"))
//
// From a struct literal, where field order is declaration order:
//
//	type level struct {
//	    Debug string `enum:"debug"`
//	    Info  string `enum:"info"`
//	}
//
//	Level := roster.FromStruct(level{"DEBUG", "INFO"})
//
// Entries holding non-scalar values (funcs, maps, slices, structs, nil) are
// dropped silently. Construction never fails.
//
// # Values and Equality
//
// Scalar kinds are bool, number, string, big integer (*big.Int) and Symbol.
// Equality is strict across kinds ("1" never matches 1) and numeric within
// numbers (int 3 matches float64 3.0). Named types compare by their
// underlying kind.
//
// # Shapes
//
// WithShape restricts which kinds a registry keeps:
//
//   - ShapeScalar: every scalar kind (default)
//   - ShapeString: strings only
//   - ShapeNumeric: numbers and big integers only
//
// # Inspection
//
//	DayOfWeek.HasValue(1)        // true
//	DayOfWeek.IndexOf(2)         // 2
//	DayOfWeek.NameOf(1)          // "monday"
//	DayOfWeek.Assert(7)          // nil, *InvalidValueError
//	DayOfWeek.Coerce(7, 0)       // 0, nil
//	DayOfWeek.Keys()             // ["sunday" "monday" "tuesday"]
//
// Coerce asserts its default: an undeclared default fails with
// ErrInvalidValue just like Assert.
//
// # Catalog
//
// Use caches registries by type name for process-wide sharing:
//
//	days := roster.Use("DayOfWeek", func() *roster.Registry { return DayOfWeek })
//
// # Codec Providers
//
// Definitions can be decoded from and encoded to documents with Decode and
// Encode. The following codec implementations are available as submodules:
//
//   - json - JSON objects (application/json)
//   - yaml - YAML mappings (application/yaml)
//   - msgpack - MessagePack maps (application/msgpack)
//   - bson - BSON documents (application/bson)
//   - xml - XML entry lists (application/xml)
//
// Every codec preserves declaration order.
//
// # Observability
//
// Construction, rejected assertions, coerce fallbacks and codec operations
// emit capitan signals (see signals.go).
package roster
