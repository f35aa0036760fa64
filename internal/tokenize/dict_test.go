package tokenize

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestVariants(t *testing.T) {
	got := Variants()
	want := []string{"ipa", "uni"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants() = %v; want %v", got, want)
	}
}

func TestVariantNote(t *testing.T) {
	for _, name := range Variants() {
		if VariantNote(name) == "" {
			t.Errorf("variant %q should have a note", name)
		}
	}
	if VariantNote("nope") != "" {
		t.Error("unknown variant should have no note")
	}
}

func TestLoadDictUnknownVariant(t *testing.T) {
	_, err := loadDict("small", "", false)
	if err == nil {
		t.Fatal("expected an error for an unknown variant")
	}

	var ierr *InitError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InitError, got %T", err)
	}
	if ierr.Dict != "small" {
		t.Errorf("InitError.Dict = %q; want %q", ierr.Dict, "small")
	}
	for _, fragment := range []string{"small", "ipa", "uni"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q should mention %q", err, fragment)
		}
	}
}

func TestLoadDictBuiltins(t *testing.T) {
	for _, name := range Variants() {
		d, err := loadDict(name, "", false)
		if err != nil {
			t.Fatalf("loadDict(%q): %v", name, err)
		}
		if d == nil {
			t.Fatalf("loadDict(%q) returned nil dictionary", name)
		}
	}
}
