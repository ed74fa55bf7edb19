package roster

// Kind represents the scalar kind of an enumerated value.
type Kind string

const (
	// KindBool covers every type whose underlying kind is bool.
	KindBool Kind = "bool"

	// KindNumber covers all signed, unsigned and floating point types.
	// Values of different numeric types compare numerically.
	KindNumber Kind = "number"

	// KindString covers every type whose underlying kind is string.
	KindString Kind = "string"

	// KindBigInt covers non-nil *big.Int values.
	// A big integer never equals a KindNumber value.
	KindBigInt Kind = "bigint"

	// KindSymbol covers Symbol tokens, which are only equal to themselves.
	KindSymbol Kind = "symbol"
)

// Shape selects which kinds a registry admits at construction time.
type Shape string

const (
	// ShapeScalar admits every scalar kind. This is the default.
	ShapeScalar Shape = "scalar"

	// ShapeString admits string values only.
	ShapeString Shape = "string"

	// ShapeNumeric admits numbers and big integers only.
	ShapeNumeric Shape = "numeric"
)

// validKinds contains all scalar kinds.
var validKinds = map[Kind]bool{
	KindBool:   true,
	KindNumber: true,
	KindString: true,
	KindBigInt: true,
	KindSymbol: true,
}

// portableKinds contains the kinds every codec can represent.
var portableKinds = map[Kind]bool{
	KindBool:   true,
	KindNumber: true,
	KindString: true,
}

// shapeKinds maps each shape to the kinds it admits.
var shapeKinds = map[Shape]map[Kind]bool{
	ShapeScalar:  validKinds,
	ShapeString:  {KindString: true},
	ShapeNumeric: {KindNumber: true, KindBigInt: true},
}

// IsValidKind returns true if the kind is a known scalar kind.
func IsValidKind(k Kind) bool {
	return validKinds[k]
}

// IsPortableKind returns true if values of the kind survive every codec.
func IsPortableKind(k Kind) bool {
	return portableKinds[k]
}

// IsValidShape returns true if the shape is a known construction shape.
func IsValidShape(s Shape) bool {
	_, ok := shapeKinds[s]
	return ok
}

// Admits reports whether a registry of this shape keeps values of kind k.
// Unknown shapes admit nothing.
func (s Shape) Admits(k Kind) bool {
	return shapeKinds[s][k]
}
