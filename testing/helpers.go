// Package testing provides fixtures and assertions for roster tests.
package testing

import (
	"reflect"
	"testing"

	"github.com/zoobzio/roster"
)

// DayOfWeekDefinition declares the days of the week as numbers 0 through 6.
func DayOfWeekDefinition() roster.Definition {
	return roster.Definition{
		{Name: "sunday", Value: 0},
		{Name: "monday", Value: 1},
		{Name: "tuesday", Value: 2},
		{Name: "wednesday", Value: 3},
		{Name: "thursday", Value: 4},
		{Name: "friday", Value: 5},
		{Name: "saturday", Value: 6},
	}
}

// DayOfWeek returns a registry over DayOfWeekDefinition.
func DayOfWeek() *roster.Registry {
	return roster.New(DayOfWeekDefinition(), roster.WithTypeName("DayOfWeek"))
}

// PortableDefinition mixes every kind that survives all codecs.
func PortableDefinition() roster.Definition {
	return roster.Definition{
		{Name: "zero", Value: false},
		{Name: "one", Value: 1},
		{Name: "two", Value: "TWO"},
		{Name: "three", Value: 3.0},
		{Name: "half", Value: 0.5},
		{Name: "negative", Value: -42},
	}
}

// Sample returns a registry over PortableDefinition.
func Sample() *roster.Registry {
	return roster.New(PortableDefinition(), roster.WithTypeName("Sample"))
}

// AssertEquivalent fails tb unless got declares the same names and values
// as want, in the same order.
func AssertEquivalent(tb testing.TB, got, want *roster.Registry) {
	tb.Helper()

	if !reflect.DeepEqual(got.Keys(), want.Keys()) {
		tb.Fatalf("Keys() = %v, want %v", got.Keys(), want.Keys())
	}
	for name, v := range want.All() {
		if got.NameOf(v) != name {
			tb.Errorf("NameOf(%#v) = %q, want %q", v, got.NameOf(v), name)
		}
	}
	if got.Fingerprint() != want.Fingerprint() {
		tb.Errorf("Fingerprint() = %s, want %s", got.Fingerprint(), want.Fingerprint())
	}
}
