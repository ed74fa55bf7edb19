package roster

import (
	"errors"
	"testing"
)

func TestInvalidValueError_Is(t *testing.T) {
	err := newInvalidValueError("DayOfWeek", 7)

	if !errors.Is(err, ErrInvalidValue) {
		t.Error("InvalidValueError should unwrap to ErrInvalidValue")
	}

	if errors.Is(err, ErrUnsupportedValue) {
		t.Error("InvalidValueError should not match ErrUnsupportedValue")
	}
}

func TestInvalidValueError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "named enum",
			err:  newInvalidValueError("DayOfWeek", 7),
			want: "invalid enumerated value: 7 (enum DayOfWeek)",
		},
		{
			name: "unnamed enum",
			err:  newInvalidValueError("", 3.5),
			want: "invalid enumerated value: 3.5",
		},
		{
			name: "string value is quoted",
			err:  newInvalidValueError("Level", "trace"),
			want: `invalid enumerated value: "trace" (enum Level)`,
		},
		{
			name: "nil value",
			err:  newInvalidValueError("", nil),
			want: "invalid enumerated value: <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryError_Is(t *testing.T) {
	err := newEntryError(ErrUnsupportedValue, "huge", KindBigInt)

	if !errors.Is(err, ErrUnsupportedValue) {
		t.Error("EntryError should unwrap to ErrUnsupportedValue")
	}

	if errors.Is(err, ErrInvalidValue) {
		t.Error("EntryError should not match ErrInvalidValue")
	}
}

func TestEntryError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with kind",
			err:  newEntryError(ErrUnsupportedValue, "red", KindSymbol),
			want: "unsupported value (entry red, kind symbol)",
		},
		{
			name: "without kind",
			err:  &EntryError{Err: ErrUnsupportedValue, Name: "red"},
			want: "unsupported value (entry red)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("invalid json"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
}

func TestCodecError_Message(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := newCodecError(ErrUnmarshal, cause)

	want := "unmarshal failed: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &CodecError{Err: ErrMarshal}
	if got := bare.Error(); got != "marshal failed" {
		t.Errorf("Error() = %q, want %q", got, "marshal failed")
	}
}

func TestRegistry_Assert_TypedErrors(t *testing.T) {
	r := New(Definition{{Name: "a", Value: 1}}, WithTypeName("Letters"))

	_, err := r.Assert(2)
	if err == nil {
		t.Fatal("Assert() should fail for an undeclared value")
	}

	var ive *InvalidValueError
	if !errors.As(err, &ive) {
		t.Fatalf("Assert() error should be *InvalidValueError, got %T", err)
	}
	if ive.TypeName != "Letters" {
		t.Errorf("InvalidValueError.TypeName = %q, want %q", ive.TypeName, "Letters")
	}
	if ive.Value != 2 {
		t.Errorf("InvalidValueError.Value = %v, want 2", ive.Value)
	}
}
