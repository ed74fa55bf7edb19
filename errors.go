package roster

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidValue indicates a value is not among a registry's declared values.
	ErrInvalidValue = errors.New("invalid enumerated value")

	// ErrUnsupportedValue indicates a value of a kind a codec cannot represent.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// InvalidValueError is returned by Assert and Coerce.
// It wraps ErrInvalidValue and carries the rejected value.
type InvalidValueError struct {
	Err      error  // Underlying sentinel error (ErrInvalidValue)
	TypeName string // Registry type name, empty when unnamed
	Value    any    // The rejected value, as passed by the caller
}

func (e *InvalidValueError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("%s: %s (enum %s)", e.Err.Error(), formatValue(e.Value), e.TypeName)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), formatValue(e.Value))
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// EntryError represents an entry a codec cannot carry.
type EntryError struct {
	Err  error  // Underlying sentinel error (ErrUnsupportedValue)
	Name string // Entry name
	Kind Kind   // Kind of the offending value
}

func (e *EntryError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s (entry %s, kind %s)", e.Err.Error(), e.Name, e.Kind)
	}
	return fmt.Sprintf("%s (entry %s)", e.Err.Error(), e.Name)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newInvalidValueError creates an InvalidValueError for a rejected value.
func newInvalidValueError(typeName string, value any) error {
	return &InvalidValueError{
		Err:      ErrInvalidValue,
		TypeName: typeName,
		Value:    value,
	}
}

// newEntryError creates an EntryError for an entry that cannot be encoded.
func newEntryError(sentinel error, name string, kind Kind) error {
	return &EntryError{
		Err:  sentinel,
		Name: name,
		Kind: kind,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
