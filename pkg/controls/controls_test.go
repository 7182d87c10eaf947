package controls_test

import (
	"testing"

	"github.com/j0KZ/synthlab/pkg/builder"
	"github.com/j0KZ/synthlab/pkg/compose"
	"github.com/j0KZ/synthlab/pkg/controls"
	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/registry"
)

func filterEntry() *registry.Entry {
	return &registry.Entry{
		Namespace: "fixture",
		Name:      "vcf",
		Width:     12,
		Ports: []registry.Port{
			{Name: "in", ID: 0, Direction: registry.DirectionInput, Node: 0, Index: 0},
			{Name: "cutoff_cv", ID: 1, Direction: registry.DirectionInput, Min: 20, Max: 20000, HasRange: true, Curve: registry.CurveExponential, Node: 0, Index: 1},
			{Name: "lpf", ID: 0, Direction: registry.DirectionOutput, Node: 0, Index: 0},
		},
		Params: []registry.Parameter{
			{Name: "cutoff", ID: 0, Default: 1000, Node: 0, Inlet: 1},
		},
		Voice: []registry.NodeSpec{
			{Object: "bp~", Args: []string{"$cutoff"}},
		},
	}
}

func composedFilter(t *testing.T) *graph.Combined {
	t.Helper()
	b := builder.New()
	unit, err := b.Build(filterEntry(), "flt", graph.StyleDataflow, 0, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	g, err := compose.Compose([]*graph.Unit{unit}, nil, compose.Options{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return g
}

func TestBusName(t *testing.T) {
	if got := controls.BusName("flt", "cutoff"); got != "flt__p__cutoff" {
		t.Fatalf("bus name = %q, want flt__p__cutoff", got)
	}
}

func TestInject_AppendsColumnAndReceiver(t *testing.T) {
	g := composedFilter(t)
	before := len(g.Nodes())

	inj := controls.NewInjector(builder.New())
	err := inj.Inject(g, []controls.Mapping{{Control: "cc74", Unit: "flt", Param: "cutoff"}})
	if err != nil {
		t.Fatalf("inject: %v", err)
	}

	if len(g.Nodes()) <= before {
		t.Fatal("inject appended no nodes")
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("validate after inject: %v", err)
	}

	// The last connection is the receiver feeding the parameter inlet on the
	// already-offset target node.
	conns := g.Connections()
	last := conns[len(conns)-1]
	if last.DestNode != 0 || last.DestInlet != 1 {
		t.Fatalf("receiver connection = %+v, want dest (0,1)", last)
	}
	receiver := g.Nodes()[last.SourceNode]
	if receiver.Kind != "r" || receiver.Args[0] != "flt__p__cutoff" {
		t.Fatalf("receiver node = %+v", receiver)
	}
}

func TestInject_ExistingIndicesUntouched(t *testing.T) {
	g := composedFilter(t)
	nodeBefore := g.Nodes()[0]
	connCount := len(g.Connections())

	inj := controls.NewInjector(builder.New())
	if err := inj.Inject(g, []controls.Mapping{{Control: "cc1", Unit: "flt", Param: "cutoff"}}); err != nil {
		t.Fatalf("inject: %v", err)
	}

	if g.Nodes()[0].Kind != nodeBefore.Kind {
		t.Fatal("inject disturbed an existing node")
	}
	for _, c := range g.Connections()[:connCount] {
		_ = c // prior connections still present and in order
	}
}

func TestInject_SkipsStaleMappings(t *testing.T) {
	g := composedFilter(t)
	before := len(g.Nodes())

	inj := controls.NewInjector(builder.New())
	err := inj.Inject(g, []controls.Mapping{
		{Control: "cc10", Unit: "ghost", Param: "cutoff"},
		{Control: "cc11", Unit: "flt", Param: "no_such_param"},
	})
	if err != nil {
		t.Fatalf("inject: %v", err)
	}
	if len(g.Nodes()) != before {
		t.Fatal("stale mappings grew the graph")
	}
}

func TestInject_RejectsModuleStyleGraph(t *testing.T) {
	b := builder.New()
	unit, err := b.Build(filterEntry(), "flt", graph.StyleModule, 0, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	g, err := compose.Compose([]*graph.Unit{unit}, nil, compose.Options{SingleCableInputs: true})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	inj := controls.NewInjector(b)
	if err := inj.Inject(g, []controls.Mapping{{Control: "cc1", Unit: "flt", Param: "cutoff"}}); err == nil {
		t.Fatal("expected inject on module-style graph to fail")
	}
}
