package compiler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/j0KZ/synthlab/pkg/compiler"
	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/patchspec"
	"github.com/j0KZ/synthlab/pkg/registry"
	"github.com/j0KZ/synthlab/pkg/renderers/rack"
	"github.com/j0KZ/synthlab/pkg/testsupport"
)

const basicPatchYAML = `name: lead line
units:
  - id: lead
    module: fundamental/vco
    overrides:
      freq: 110
  - id: amp
    module: fundamental/vca
  - id: master
    module: fundamental/output
wires:
  - {from: lead, output: sin, to: amp, input: in}
  - {from: amp, output: out, to: master, input: in}
controls:
  - {control: cc7, unit: amp, param: gain}
`

func writePatch(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patch.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write patch: %v", err)
	}
	return path
}

func TestCompile_PdFromFile(t *testing.T) {
	path := writePatch(t, basicPatchYAML)

	out, err := compiler.New().Compile(testsupport.Context(), compiler.Request{
		Path:   path,
		Format: "pd",
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"#N canvas",
		"osc~ 110",
		"dac~",
		"ctlin 7",
		"s amp__p__gain",
		"r amp__p__gain",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("pd document missing %q:\n%s", want, text)
		}
	}
}

func TestCompile_RackDeterministicWithSeed(t *testing.T) {
	path := writePatch(t, basicPatchYAML)
	req := compiler.Request{Path: path, Format: "rack"}

	first, err := compiler.New(compiler.WithIDSource(rack.NewSeededIDs(7))).
		Compile(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("first compile: %v", err)
	}
	second, err := compiler.New(compiler.WithIDSource(rack.NewSeededIDs(7))).
		Compile(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("second compile: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("same seed produced different rack documents")
	}

	var doc struct {
		Modules []struct {
			Plugin string `json:"plugin"`
			ID     uint64 `json:"id"`
		} `json:"modules"`
		Cables []json.RawMessage `json:"cables"`
	}
	if err := json.Unmarshal(first, &doc); err != nil {
		t.Fatalf("rack document is not valid JSON: %v", err)
	}
	if len(doc.Modules) != 3 {
		t.Fatalf("modules = %d, want 3", len(doc.Modules))
	}
	if len(doc.Cables) != 2 {
		t.Fatalf("cables = %d, want 2", len(doc.Cables))
	}
	for _, m := range doc.Modules {
		if m.Plugin != "Fundamental" {
			t.Errorf("module plugin = %q, want Fundamental", m.Plugin)
		}
		if m.ID >= 1<<53 {
			t.Errorf("module id %d exceeds 2^53", m.ID)
		}
	}
}

func TestCompile_DefaultFormatIsRack(t *testing.T) {
	spec := &patchspec.Spec{
		Name:  "solo",
		Units: []patchspec.UnitSpec{{ID: "v", Module: "vco"}},
	}

	out, err := compiler.New().Compile(testsupport.Context(), compiler.Request{Spec: spec})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !json.Valid(out) {
		t.Fatalf("default output is not JSON:\n%s", out)
	}
}

func TestCompile_SummaryFormat(t *testing.T) {
	path := writePatch(t, basicPatchYAML)

	out, err := compiler.New().Compile(testsupport.Context(), compiler.Request{
		Path:   path,
		Format: "summary",
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	text := string(out)
	for _, want := range []string{"lead line", "lead", "amp__p__gain"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestCompile_UnknownModule(t *testing.T) {
	spec := &patchspec.Spec{
		Name:  "broken",
		Units: []patchspec.UnitSpec{{ID: "x", Module: "fundamental/theremin"}},
	}

	_, err := compiler.New().Compile(testsupport.Context(), compiler.Request{Spec: spec, Format: "pd"})
	var unknown *registry.UnknownEntryError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownEntryError", err)
	}
	if unknown.Name != "theremin" {
		t.Errorf("unknown.Name = %q", unknown.Name)
	}
}

func TestCompile_UnknownFormat(t *testing.T) {
	spec := &patchspec.Spec{
		Name:  "solo",
		Units: []patchspec.UnitSpec{{ID: "v", Module: "vco"}},
	}

	if _, err := compiler.New().Compile(testsupport.Context(), compiler.Request{Spec: spec, Format: "csound"}); err == nil {
		t.Fatal("expected unknown format error")
	}
}

// Fan-in onto one input is legal for dataflow output and rejected for the
// single-cable module style.
func TestCompile_FanInPerFormat(t *testing.T) {
	spec := &patchspec.Spec{
		Name: "fan",
		Units: []patchspec.UnitSpec{
			{ID: "a", Module: "vco"},
			{ID: "b", Module: "lfo"},
			{ID: "master", Module: "output"},
		},
		Wires: []patchspec.WireSpec{
			{From: "a", Output: "sin", To: "master", Input: "in"},
			{From: "b", Output: "sin", To: "master", Input: "in"},
		},
	}

	c := compiler.New()
	if _, err := c.Compile(testsupport.Context(), compiler.Request{Spec: spec, Format: "pd"}); err != nil {
		t.Fatalf("pd fan-in: %v", err)
	}

	_, err := c.Compile(testsupport.Context(), compiler.Request{Spec: spec, Format: "rack"})
	var dup *graph.DuplicateInputError
	if !errors.As(err, &dup) {
		t.Fatalf("rack fan-in err = %v, want DuplicateInputError", err)
	}
	if dup.Unit != "master" || dup.Port != "in" {
		t.Errorf("duplicate input at %s.%s", dup.Unit, dup.Port)
	}
}

func TestCompile_PresetUnderOverrides(t *testing.T) {
	spec := &patchspec.Spec{
		Name: "layered",
		Units: []patchspec.UnitSpec{
			{ID: "v", Module: "vco", Preset: "acid-bass", Overrides: map[string]float64{"freq": 55}},
		},
	}

	out, err := compiler.New().Compile(testsupport.Context(), compiler.Request{Spec: spec, Format: "pd"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(string(out), "osc~ 55") {
		t.Fatalf("explicit override should win over the preset:\n%s", out)
	}
}

func TestCompile_UnknownPreset(t *testing.T) {
	spec := &patchspec.Spec{
		Name:  "layered",
		Units: []patchspec.UnitSpec{{ID: "v", Module: "vco", Preset: "yacht-rock"}},
	}

	if _, err := compiler.New().Compile(testsupport.Context(), compiler.Request{Spec: spec, Format: "pd"}); err == nil {
		t.Fatal("expected unknown preset error")
	}
}

func TestCompile_NilContext(t *testing.T) {
	if _, err := compiler.New().Compile(nil, compiler.Request{}); err == nil { //nolint:staticcheck
		t.Fatal("expected error for nil context")
	}
}

func TestCompile_MissingPathAndSpec(t *testing.T) {
	if _, err := compiler.New().Compile(testsupport.Context(), compiler.Request{Format: "pd"}); err == nil {
		t.Fatal("expected error when neither path nor spec is set")
	}
}
