package roster

// Option configures registry construction.
type Option func(*config)

type config struct {
	typeName string
	shape    Shape
}

func newConfig(opts []Option) config {
	cfg := config{shape: ShapeScalar}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTypeName names the registry. The name appears in errors, signals
// and String output.
func WithTypeName(name string) Option {
	return func(c *config) {
		c.typeName = name
	}
}

// WithShape restricts the kinds the registry keeps.
// Unknown shapes are ignored and the default ShapeScalar applies.
func WithShape(s Shape) Option {
	return func(c *config) {
		if IsValidShape(s) {
			c.shape = s
		}
	}
}
