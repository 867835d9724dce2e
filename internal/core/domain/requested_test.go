//go:build unit

package domain

import (
	"reflect"
	"testing"
)

// TestRequestedAttributesFromMap_Normalization verifies both key encodings.
func TestRequestedAttributesFromMap_Normalization(t *testing.T) {
	r := RequestedAttributesFromMap(map[string]any{
		"1":    "displayName",
		"0":    "mail",
		"sn":   map[string]any{"required": true},
		"cn":   nil,
		"3000": "eduPersonScopedAffiliation",
	})

	if !r.Present() {
		t.Fatal("result absent, want present")
	}

	want := []string{"mail", "displayName", "eduPersonScopedAffiliation", "cn", "sn"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	entries := r.Entries()
	if !entries[0].Positional || entries[0].Key != "0" {
		t.Errorf("entries[0] = %+v, want positional entry with key 0", entries[0])
	}
	if entries[4].Positional || entries[4].Name != "sn" {
		t.Errorf("entries[4] = %+v, want named sn entry", entries[4])
	}
}

// TestRequestedAttributesFromMap_Nil verifies nil input means absent.
func TestRequestedAttributesFromMap_Nil(t *testing.T) {
	r := RequestedAttributesFromMap(nil)
	if r.Present() {
		t.Error("Present() = true for nil map, want false")
	}
	if r.ToMap() != nil {
		t.Error("ToMap() != nil for absent list")
	}
}

// TestRequestedAttributesFromMap_Empty verifies an empty map stays present.
func TestRequestedAttributesFromMap_Empty(t *testing.T) {
	r := RequestedAttributesFromMap(map[string]any{})
	if !r.Present() {
		t.Error("Present() = false for empty map, want true")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

// TestRequestedAttributes_ToMapRoundTrip verifies key style survives a
// normalize/serialize round trip.
func TestRequestedAttributes_ToMapRoundTrip(t *testing.T) {
	input := map[string]any{
		"0":  "mail",
		"1":  "displayName",
		"sn": "some metadata",
		"cn": nil,
	}

	got := RequestedAttributesFromMap(input).ToMap()

	if !reflect.DeepEqual(got, input) {
		t.Errorf("ToMap() = %v, want %v", got, input)
	}
}

// TestRequestedAttributesFromNames verifies positional construction.
func TestRequestedAttributesFromNames(t *testing.T) {
	r := RequestedAttributesFromNames("mail", "sn")

	want := map[string]any{"0": "mail", "1": "sn"}
	if got := r.ToMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %v, want %v", got, want)
	}
}

// TestRequestedAttributesFromMap_NonStringPositional verifies non-string
// positional values are rendered rather than rejected.
func TestRequestedAttributesFromMap_NonStringPositional(t *testing.T) {
	r := RequestedAttributesFromMap(map[string]any{"0": 42})

	if got := r.Names(); !reflect.DeepEqual(got, []string{"42"}) {
		t.Errorf("Names() = %v, want [42]", got)
	}
}

// TestDeclaredCategories verifies the absent/present distinction.
func TestDeclaredCategories(t *testing.T) {
	if NoDeclaredCategories().Present() {
		t.Error("NoDeclaredCategories().Present() = true, want false")
	}
	if !DeclaredCategoriesOf().Present() {
		t.Error("DeclaredCategoriesOf().Present() = false, want true (empty but present)")
	}

	d := DeclaredCategoriesOf("a", "b")
	if !reflect.DeepEqual(d.Values(), []string{"a", "b"}) {
		t.Errorf("Values() = %v, want [a b]", d.Values())
	}
}
