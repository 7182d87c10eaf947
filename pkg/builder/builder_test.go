package builder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/j0KZ/synthlab/pkg/builder"
	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/registry"
)

func filterEntry() *registry.Entry {
	return &registry.Entry{
		Namespace: "fixture",
		Name:      "vcf",
		Plugin:    "Fixture",
		Model:     "VCF",
		Version:   "2.0.0",
		Width:     12,
		Ports: []registry.Port{
			{Name: "in", ID: 0, Direction: registry.DirectionInput, Node: 0, Index: 0},
			{Name: "lpf", ID: 0, Direction: registry.DirectionOutput, Node: 0, Index: 0},
		},
		Params: []registry.Parameter{
			{Name: "cutoff", Label: "Cutoff", Aliases: []string{"fc"}, ID: 0, Default: 1000, Node: 0, Inlet: 1},
			{Name: "resonance", Aliases: []string{"q"}, ID: 1, Default: 0.707, Node: 0, Inlet: 2},
			{Name: "drive", ID: 2, Default: 0.5, Removed: true},
		},
		Voice: []registry.NodeSpec{
			{Object: "bp~", Args: []string{"$cutoff", "$resonance"}},
		},
	}
}

func TestBuild_DefaultsWithOverrides(t *testing.T) {
	b := builder.New()

	unit, err := b.Build(filterEntry(), "flt", graph.StyleModule, 0, map[string]float64{
		"fc":      2500,  // alias match
		"sparkle": 12345, // no such parameter anywhere, dropped silently
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := map[int]float64{0: 2500, 1: 0.707}
	if diff := cmp.Diff(want, unit.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_RemovedParameterStaysOut(t *testing.T) {
	b := builder.New()

	unit, err := b.Build(filterEntry(), "flt", graph.StyleModule, 0, map[string]float64{"drive": 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, ok := unit.Params[2]; ok {
		t.Fatal("removed parameter was resolved into the unit")
	}
}

func TestBuild_ModuleStyleSingleVertex(t *testing.T) {
	b := builder.New()

	unit, err := b.Build(filterEntry(), "flt", graph.StyleModule, 3, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if unit.NodeCount() != 1 {
		t.Fatalf("module unit has %d nodes, want 1", unit.NodeCount())
	}
	if got := unit.Nodes[0].Kind; got != "Fixture/VCF" {
		t.Fatalf("module vertex kind = %q, want Fixture/VCF", got)
	}
	if slot := unit.Inlets["in"]; slot != (graph.Slot{Node: 0, Index: 0}) {
		t.Fatalf("inlet slot = %+v", slot)
	}
}

func TestBuild_VoiceSubstitutesOverriddenArgs(t *testing.T) {
	b := builder.New()

	unit, err := b.Build(filterEntry(), "flt", graph.StyleDataflow, 0, map[string]float64{"cutoff": 800})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{"800", "0.707"}
	if diff := cmp.Diff(want, unit.Nodes[0].Args); diff != "" {
		t.Fatalf("voice args mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_VoiceGridIsDeterministic(t *testing.T) {
	b := builder.New()
	entry := &registry.Entry{
		Namespace: "fixture",
		Name:      "stack",
		Voice: []registry.NodeSpec{
			{Object: "osc~"},
			{Object: "*~", Inputs: []registry.Tap{{FromNode: 0, Outlet: 0, Inlet: 0}}},
		},
	}

	unit, err := b.Build(entry, "s", graph.StyleDataflow, 2, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if unit.Nodes[0].X != unit.Nodes[1].X {
		t.Fatal("voice nodes left the column")
	}
	if unit.Nodes[1].Y <= unit.Nodes[0].Y {
		t.Fatal("voice rows do not advance")
	}
	wantConns := []graph.Connection{{SourceNode: 0, SourceOutlet: 0, DestNode: 1, DestInlet: 0}}
	if diff := cmp.Diff(wantConns, unit.Conns); diff != "" {
		t.Fatalf("local connections mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildControlColumn_FullChain(t *testing.T) {
	b := builder.New()

	nodes, conns := b.BuildControlColumn(builder.ControlColumn{
		Label:      "cc74 -> flt.cutoff",
		Ingest:     "ctlin",
		IngestArgs: []string{"74"},
		Bus:        "flt__p__cutoff",
		Min:        20,
		Max:        20000,
		HasRange:   true,
		Curve:      registry.CurveExponential,
	}, 0)

	kinds := make([]string, len(nodes))
	for i, n := range nodes {
		kinds[i] = n.Kind
	}
	want := []string{"text", "ctlin", "/", "pow", "*", "+", "s"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("chain shape mismatch (-want +got):\n%s", diff)
	}
	// Label stays unconnected; everything else chains once.
	if len(conns) != len(nodes)-2 {
		t.Fatalf("chain has %d connections, want %d", len(conns), len(nodes)-2)
	}
}

func TestBuildControlColumn_UnitRangeSkipsScaling(t *testing.T) {
	b := builder.New()

	nodes, _ := b.BuildControlColumn(builder.ControlColumn{
		Label:  "cc1 -> vca.gain",
		Ingest: "ctlin",
		Bus:    "vca__p__gain",
		Min:    0, Max: 1, HasRange: true,
	}, 1)

	for _, n := range nodes {
		if n.Kind == "*" || n.Kind == "+" {
			t.Fatalf("unit-range chain emitted scaling node %q", n.Kind)
		}
	}
}
