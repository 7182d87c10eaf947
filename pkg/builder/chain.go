package builder

import (
	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/registry"
)

// ControlColumn describes one external-control column: where the value comes
// from, the bus it lands on, and how it is shaped into the target range.
type ControlColumn struct {
	Label      string
	Ingest     string
	IngestArgs []string
	Bus        string
	Min        float64
	Max        float64
	HasRange   bool
	Curve      registry.Curve
}

// controller values arrive as 7-bit MIDI range
const controlMaxRange = 127

// BuildControlColumn lays out the deterministic dataflow chain for one
// control column: label, ingest, normalize, optional curve shaping, optional
// range scale and offset, and the bus send. Node coordinates follow the same
// fixed column/row grid as unit voices. Returned indices are local to the
// returned node slice.
func (b *Builder) BuildControlColumn(col ControlColumn, column int) ([]graph.Node, []graph.Connection) {
	x := marginX + column*columnWidth
	y := marginY

	var nodes []graph.Node
	var conns []graph.Connection

	place := func(kind string, args ...string) int {
		nodes = append(nodes, graph.Node{Kind: kind, Args: args, X: x, Y: y})
		y += rowStep
		return len(nodes) - 1
	}
	chain := func(from, to int) {
		conns = append(conns, graph.Connection{SourceNode: from, DestNode: to})
	}

	place("text", col.Label)
	prev := place(col.Ingest, col.IngestArgs...)

	norm := place("/", graph.Ftoa(controlMaxRange))
	chain(prev, norm)
	prev = norm

	if col.Curve == registry.CurveExponential {
		pow := place("pow", "2")
		chain(prev, pow)
		prev = pow
	}

	if col.HasRange && !(col.Min == 0 && col.Max == 1) {
		scale := place("*", graph.Ftoa(col.Max-col.Min))
		chain(prev, scale)
		offset := place("+", graph.Ftoa(col.Min))
		chain(scale, offset)
		prev = offset
	}

	send := place("s", col.Bus)
	chain(prev, send)

	return nodes, conns
}
