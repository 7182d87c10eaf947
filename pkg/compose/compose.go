// Package compose merges independently built units into one combined graph
// with a single global address space, then resolves user-specified
// inter-unit wiring into absolute connections.
package compose

import (
	"fmt"

	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/registry"
)

// Wire is one inter-unit wiring directive: connect a named output port on
// one unit to a named input port on another.
type Wire struct {
	From   string
	Output string
	To     string
	Input  string
}

// Options tune composition for the target document.
type Options struct {
	// SingleCableInputs rejects a second wire landing on an input that
	// already has one. Module-style documents accept one cable per physical
	// input jack; dataflow documents permit fan-in and leave this off.
	SingleCableInputs bool
}

// Compose concatenates the units' local node spaces in input order,
// recording each unit's starting offset, remaps local connections into the
// global space, then resolves every wiring directive. Unknown unit ids and
// unresolvable port names are fatal. The returned graph's offsets and
// existing indices are final; later stages only append.
func Compose(units []*graph.Unit, wiring []Wire, opts Options) (*graph.Combined, error) {
	offsets := make(map[string]int, len(units))
	var nodes []graph.Node
	var conns []graph.Connection
	style := graph.StyleModule

	for _, u := range units {
		if _, dup := offsets[u.ID]; dup {
			return nil, fmt.Errorf("compose: duplicate unit id %q", u.ID)
		}
		offsets[u.ID] = len(nodes)
		nodes = append(nodes, u.Nodes...)
		for _, c := range u.Conns {
			off := offsets[u.ID]
			conns = append(conns, graph.Connection{
				SourceNode:   c.SourceNode + off,
				SourceOutlet: c.SourceOutlet,
				DestNode:     c.DestNode + off,
				DestInlet:    c.DestInlet,
			})
		}
		style = u.Style
	}

	byID := make(map[string]*graph.Unit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}

	taken := make(map[graph.Slot]bool)
	for _, w := range wiring {
		from, ok := byID[w.From]
		if !ok {
			return nil, &graph.UnknownUnitError{Unit: w.From, Available: unitIDs(units)}
		}
		to, ok := byID[w.To]
		if !ok {
			return nil, &graph.UnknownUnitError{Unit: w.To, Available: unitIDs(units)}
		}

		source, err := resolveSlot(from, w.Output, true)
		if err != nil {
			return nil, err
		}
		dest, err := resolveSlot(to, w.Input, false)
		if err != nil {
			return nil, err
		}

		absDest := graph.Slot{Node: dest.Node + offsets[to.ID], Index: dest.Index}
		if opts.SingleCableInputs {
			if taken[absDest] {
				return nil, &graph.DuplicateInputError{Unit: w.To, Port: w.Input}
			}
			taken[absDest] = true
		}

		conns = append(conns, graph.Connection{
			SourceNode:   source.Node + offsets[from.ID],
			SourceOutlet: source.Index,
			DestNode:     absDest.Node,
			DestInlet:    absDest.Index,
		})
	}

	return graph.NewCombined(style, units, nodes, conns, offsets), nil
}

// resolveSlot maps a user-supplied port name onto the unit's local slot,
// going through the registry entry so labels and canonical identifier
// strings resolve the same way everywhere.
func resolveSlot(u *graph.Unit, port string, output bool) (graph.Slot, error) {
	dir := dirFor(output)
	p, err := u.Entry.ResolvePort(port, dir)
	if err != nil {
		return graph.Slot{}, err
	}
	slots := u.Inlets
	if output {
		slots = u.Outlets
	}
	slot, ok := slots[p.Name]
	if !ok {
		return graph.Slot{}, fmt.Errorf("compose: unit %q has no realized %s slot for port %q", u.ID, dir, p.Name)
	}
	return slot, nil
}

func dirFor(output bool) registry.Direction {
	if output {
		return registry.DirectionOutput
	}
	return registry.DirectionInput
}

func unitIDs(units []*graph.Unit) []string {
	ids := make([]string, 0, len(units))
	for _, u := range units {
		ids = append(ids, u.ID)
	}
	return ids
}
