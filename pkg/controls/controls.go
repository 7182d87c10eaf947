// Package controls wires external physical controls into an already
// composed graph: each mapping grows a control column feeding a named bus
// and a receiver delivering the bus value to the target parameter's inlet.
package controls

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/j0KZ/synthlab/pkg/builder"
	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/registry"
)

// Mapping routes one physical control to a parameter on a composed unit.
type Mapping struct {
	Control string
	Unit    string
	Param   string
}

// BusName derives the deterministic send/receive channel for a mapping.
// Unit ids are unique within a patch, so the derived name is unique without
// a separate namespace registry.
func BusName(unitID, param string) string {
	return unitID + "__p__" + param
}

const receiverYOffset = 30

// Injector appends control columns and receivers to a finalized graph.
type Injector struct {
	builder *builder.Builder
}

// NewInjector returns an Injector building its columns with b.
func NewInjector(b *builder.Builder) *Injector {
	return &Injector{builder: b}
}

// Inject appends one control column and receiver per mapping. It accepts
// only a *graph.Combined, so it cannot run before composition has finalized
// unit offsets. Mappings naming an unknown unit or parameter are skipped:
// control maps are reused across patches and a stale mapping must not abort
// an otherwise valid build. Existing nodes and connections are never
// renumbered.
func (in *Injector) Inject(g *graph.Combined, mappings []Mapping) error {
	if g.Style() != graph.StyleDataflow {
		return fmt.Errorf("controls: inject requires a dataflow graph, got %s style", g.Style())
	}

	columnBase := len(g.Units())
	placed := 0
	for _, m := range mappings {
		offset, ok := g.Offset(m.Unit)
		if !ok {
			continue
		}
		unit, ok := g.Unit(m.Unit)
		if !ok {
			continue
		}
		param, err := unit.Entry.ResolveParameter(m.Param)
		if err != nil || param.Removed {
			continue
		}

		bus := BusName(m.Unit, param.Name)
		column := in.columnFor(m, unit.Entry, param, bus)
		nodes, conns := in.builder.BuildControlColumn(column, columnBase+placed)
		placed++

		base := len(g.Nodes())
		for _, n := range nodes {
			g.AppendNode(n)
		}
		for _, c := range conns {
			g.Connect(graph.Connection{
				SourceNode:   c.SourceNode + base,
				SourceOutlet: c.SourceOutlet,
				DestNode:     c.DestNode + base,
				DestInlet:    c.DestInlet,
			})
		}

		target := param.Node + offset
		targetNode := g.Nodes()[target]
		receiver := g.AppendNode(graph.Node{
			Kind: "r",
			Args: []string{bus},
			X:    targetNode.X,
			Y:    targetNode.Y - receiverYOffset,
		})
		g.Connect(graph.Connection{
			SourceNode: receiver,
			DestNode:   target,
			DestInlet:  param.Inlet,
		})
	}
	return nil
}

func (in *Injector) columnFor(m Mapping, entry *registry.Entry, param registry.Parameter, bus string) builder.ControlColumn {
	col := builder.ControlColumn{
		Label: m.Control + " -> " + m.Unit + "." + param.Name,
		Bus:   bus,
	}
	col.Ingest, col.IngestArgs = parseControl(m.Control)

	if port, ok := rangePortFor(entry, param); ok {
		col.Min = port.Min
		col.Max = port.Max
		col.HasRange = true
		col.Curve = port.Curve
	}
	return col
}

// parseControl maps a physical control descriptor onto its ingest object.
// MIDI continuous controllers ("cc74") arrive through ctlin; anything else
// is treated as a named receive channel.
func parseControl(control string) (string, []string) {
	if num, ok := strings.CutPrefix(control, "cc"); ok {
		if _, err := strconv.Atoi(num); err == nil {
			return "ctlin", []string{num}
		}
	}
	return "r", []string{control}
}

// rangePortFor finds the input port carrying the parameter's value range,
// matched by the parameter name itself or its CV twin.
func rangePortFor(entry *registry.Entry, param registry.Parameter) (registry.Port, bool) {
	for _, p := range entry.Ports {
		if p.Direction != registry.DirectionInput || !p.HasRange {
			continue
		}
		if p.Name == param.Name || p.Name == param.Name+"_cv" {
			return p, true
		}
	}
	return registry.Port{}, false
}
