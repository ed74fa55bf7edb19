package roster_test

import (
	"reflect"
	"testing"

	"github.com/zoobzio/roster"
)

type dayOfWeek struct {
	Sunday    int `enum:"sunday"`
	Monday    int `enum:"monday"`
	Tuesday   int `enum:"tuesday"`
	Wednesday int `enum:"wednesday"`
}

type mixedDefinition struct {
	Zero     bool
	One      int
	Two      string
	Three    float64
	Callback func()
	List     []string
	Lookup   map[string]int
	Hidden   string `enum:"-"`
	internal string
}

func TestFromStruct_FieldOrder(t *testing.T) {
	r := roster.FromStruct(dayOfWeek{0, 1, 2, 3})

	want := []string{"sunday", "monday", "tuesday", "wednesday"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := r.IndexOf(3); got != 3 {
		t.Errorf("IndexOf(3) = %d, want 3", got)
	}
}

func TestFromStruct_TypeName(t *testing.T) {
	r := roster.FromStruct(dayOfWeek{})
	if got := r.TypeName(); got != "dayOfWeek" {
		t.Errorf("TypeName() = %q, want %q", got, "dayOfWeek")
	}

	named := roster.FromStruct(dayOfWeek{}, roster.WithTypeName("DayOfWeek"))
	if got := named.TypeName(); got != "DayOfWeek" {
		t.Errorf("TypeName() = %q, want %q", got, "DayOfWeek")
	}
}

func TestFromStruct_FiltersNonScalars(t *testing.T) {
	def := mixedDefinition{
		Zero:     false,
		One:      1,
		Two:      "TWO",
		Three:    3.0,
		Callback: func() {},
		List:     []string{"a"},
		Lookup:   map[string]int{"a": 1},
		Hidden:   "hidden",
		internal: "internal",
	}
	r := roster.FromStruct(def)

	want := []string{"Zero", "One", "Two", "Three"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if r.HasValue("hidden") {
		t.Error(`enum:"-" field should be skipped`)
	}
	if r.HasValue("internal") {
		t.Error("unexported field should be skipped")
	}
}

func TestFromStruct_AnonymousStruct(t *testing.T) {
	r := roster.FromStruct(struct {
		Red   string `enum:"red"`
		Green string
	}{"#f00", "#0f0"})

	want := []roster.Entry{
		{Name: "red", Value: "#f00"},
		{Name: "Green", Value: "#0f0"},
	}
	if got := r.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestFromStruct_WithShape(t *testing.T) {
	r := roster.FromStruct(mixedDefinition{One: 1, Two: "TWO", Three: 3.0}, roster.WithShape(roster.ShapeNumeric))

	want := []string{"One", "Three"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestFromStruct_NonStruct(t *testing.T) {
	r := roster.FromStruct(map[string]int{"a": 1})

	if r == nil {
		t.Fatal("FromStruct() should never return nil")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}
