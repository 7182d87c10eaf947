package presets_test

import (
	"testing"

	"github.com/j0KZ/synthlab/pkg/presets"
)

func TestLookup_ReturnsCopy(t *testing.T) {
	first, err := presets.Lookup("acid-bass")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	first["cutoff"] = -1

	second, err := presets.Lookup("acid-bass")
	if err != nil {
		t.Fatalf("lookup again: %v", err)
	}
	if second["cutoff"] == -1 {
		t.Fatal("preset catalog was mutated through a lookup result")
	}
}

func TestLookup_UnknownPreset(t *testing.T) {
	if _, err := presets.Lookup("yacht-rock"); err == nil {
		t.Fatal("expected unknown preset error")
	}
}

func TestNames_Sorted(t *testing.T) {
	names := presets.Names()
	if len(names) == 0 {
		t.Fatal("no presets shipped")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
