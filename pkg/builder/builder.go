// Package builder constructs graph units from registry entries: it resolves
// parameter overrides on top of catalog defaults and realizes the entry's
// dataflow voice or single-module vertex with deterministic grid coordinates.
package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/registry"
)

// Grid constants for dataflow node placement. Coordinates are only for
// human readability in the target editor; nothing downstream computes with
// them.
const (
	marginX     = 40
	marginY     = 40
	columnWidth = 180
	rowStep     = 30
)

// Builder turns registry entries into graph units.
type Builder struct{}

// New returns a Builder.
func New() *Builder {
	return &Builder{}
}

// Build produces a unit for one entry. Column places the unit's dataflow
// voice on the fixed column grid. Overrides are applied best-effort on top
// of the entry defaults; see ApplyOverrides.
func (b *Builder) Build(entry *registry.Entry, id string, style graph.Style, column int, overrides map[string]float64) (*graph.Unit, error) {
	if entry == nil {
		return nil, fmt.Errorf("builder: entry is required")
	}
	if id == "" {
		return nil, fmt.Errorf("builder: unit id is required")
	}

	params := defaultParams(entry)
	ApplyOverrides(entry, params, overrides)

	unit := &graph.Unit{
		ID:      id,
		Entry:   entry,
		Style:   style,
		Params:  params,
		Inlets:  make(map[string]graph.Slot),
		Outlets: make(map[string]graph.Slot),
	}

	switch style {
	case graph.StyleModule:
		b.realizeModule(entry, unit)
	case graph.StyleDataflow:
		b.realizeVoice(entry, unit, column, params)
	default:
		return nil, fmt.Errorf("builder: unknown graph style %q", style)
	}

	return unit, nil
}

// ApplyOverrides layers user-supplied override values onto resolved
// parameter values. Each key is tried against the entry's parameter names,
// labels, and aliases; keys that resolve nowhere are dropped silently.
// Override maps are commonly reused verbatim across heterogeneous unit
// types, so a partial match is the expected case, not an error. This is the
// one deliberately non-fatal resolution path in the compiler.
func ApplyOverrides(entry *registry.Entry, params map[int]float64, overrides map[string]float64) {
	if len(overrides) == 0 {
		return
	}
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		param, err := entry.ResolveParameter(key)
		if err != nil || param.Removed {
			continue
		}
		params[param.ID] = overrides[key]
	}
}

func defaultParams(entry *registry.Entry) map[int]float64 {
	params := make(map[int]float64, len(entry.Params))
	for _, p := range entry.Params {
		if p.Removed {
			continue
		}
		params[p.ID] = p.Default
	}
	return params
}

// realizeModule collapses the unit to a single vertex whose slots are the
// entry's port identifiers, the shape the rack document expects.
func (b *Builder) realizeModule(entry *registry.Entry, unit *graph.Unit) {
	unit.Nodes = []graph.Node{{Kind: entry.Plugin + "/" + entry.Model}}
	for _, p := range entry.Ports {
		slot := graph.Slot{Node: 0, Index: p.ID}
		if p.Direction == registry.DirectionInput {
			unit.Inlets[p.Name] = slot
		} else {
			unit.Outlets[p.Name] = slot
		}
	}
}

// realizeVoice expands the entry's voice chain into local nodes and
// connections. Arguments may reference parameter values via $name
// placeholders; they are substituted with the resolved (possibly
// overridden) values in stable decimal form.
func (b *Builder) realizeVoice(entry *registry.Entry, unit *graph.Unit, column int, params map[int]float64) {
	x := marginX + column*columnWidth
	y := marginY

	unit.Nodes = make([]graph.Node, 0, len(entry.Voice))
	for _, spec := range entry.Voice {
		node := graph.Node{
			Kind: spec.Object,
			Args: substituteArgs(entry, spec.Args, params),
			X:    x,
			Y:    y,
		}
		unit.Nodes = append(unit.Nodes, node)
		y += rowStep

		for _, tap := range spec.Inputs {
			unit.Conns = append(unit.Conns, graph.Connection{
				SourceNode:   tap.FromNode,
				SourceOutlet: tap.Outlet,
				DestNode:     len(unit.Nodes) - 1,
				DestInlet:    tap.Inlet,
			})
		}
	}

	for _, p := range entry.Ports {
		slot := graph.Slot{Node: p.Node, Index: p.Index}
		if p.Direction == registry.DirectionInput {
			unit.Inlets[p.Name] = slot
		} else {
			unit.Outlets[p.Name] = slot
		}
	}
}

func substituteArgs(entry *registry.Entry, args []string, params map[int]float64) []string {
	if len(args) == 0 {
		return nil
	}
	out := make([]string, len(args))
	for i, arg := range args {
		if name, ok := strings.CutPrefix(arg, "$"); ok {
			if param, err := entry.ResolveParameter(name); err == nil {
				if value, ok := params[param.ID]; ok {
					out[i] = graph.Ftoa(value)
					continue
				}
			}
		}
		out[i] = arg
	}
	return out
}
