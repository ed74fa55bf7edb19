package roster

import (
	"math/big"
	"testing"
)

func TestFingerprint_Format(t *testing.T) {
	fp := New(Definition{{Name: "a", Value: 1}}).Fingerprint()

	if len(fp) != 64 {
		t.Errorf("Fingerprint() length = %d, want 64 hex chars", len(fp))
	}
}

func TestFingerprint_Stable(t *testing.T) {
	def := Definition{{Name: "a", Value: 1}, {Name: "b", Value: "x"}}

	if New(def).Fingerprint() != New(def).Fingerprint() {
		t.Error("equivalent registries should share a fingerprint")
	}
}

func TestFingerprint_IgnoresMetadata(t *testing.T) {
	def := Definition{{Name: "a", Value: 1}}

	if New(def, WithTypeName("A")).Fingerprint() != New(def, WithTypeName("B")).Fingerprint() {
		t.Error("type name should not affect the fingerprint")
	}
}

func TestFingerprint_NumericEquivalence(t *testing.T) {
	a := New(Definition{{Name: "three", Value: 3}})
	b := New(Definition{{Name: "three", Value: 3.0}})
	c := New(Definition{{Name: "three", Value: uint16(3)}})

	if a.Fingerprint() != b.Fingerprint() || a.Fingerprint() != c.Fingerprint() {
		t.Error("numerically equal declarations should share a fingerprint")
	}
}

func TestFingerprint_Changes(t *testing.T) {
	base := New(Definition{{Name: "a", Value: 1}, {Name: "b", Value: 2}}).Fingerprint()

	tests := []struct {
		name string
		def  Definition
	}{
		{"reordered", Definition{{Name: "b", Value: 2}, {Name: "a", Value: 1}}},
		{"renamed", Definition{{Name: "a", Value: 1}, {Name: "c", Value: 2}}},
		{"revalued", Definition{{Name: "a", Value: 1}, {Name: "b", Value: 3}}},
		{"rekinded", Definition{{Name: "a", Value: 1}, {Name: "b", Value: "2"}}},
		{"extended", Definition{{Name: "a", Value: 1}, {Name: "b", Value: 2}, {Name: "c", Value: 3}}},
		{"big int", Definition{{Name: "a", Value: 1}, {Name: "b", Value: big.NewInt(2)}}},
		{"boundary shift", Definition{{Name: "a", Value: 12}, {Name: "b", Value: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.def).Fingerprint(); got == base {
				t.Errorf("Fingerprint() unchanged for %s definition", tt.name)
			}
		})
	}
}

func TestFingerprint_Symbols(t *testing.T) {
	a := New(Definition{{Name: "s", Value: NewSymbol("token")}})
	b := New(Definition{{Name: "s", Value: NewSymbol("token")}})

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("symbols with the same description should share a fingerprint")
	}
}
