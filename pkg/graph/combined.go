package graph

import (
	"fmt"
)

// Combined is the finalized global graph. Only the composer constructs one;
// holding a *Combined is the proof that every unit offset is final. Later
// stages may append nodes and connections but never renumber existing
// entries, so absolute addresses computed against the offsets stay valid.
type Combined struct {
	style   Style
	nodes   []Node
	conns   []Connection
	units   []*Unit
	offsets map[string]int
}

// NewCombined assembles a finalized graph from the composer's output. The
// offsets map records where each unit's local index space begins in the
// global node list.
func NewCombined(style Style, units []*Unit, nodes []Node, conns []Connection, offsets map[string]int) *Combined {
	return &Combined{
		style:   style,
		nodes:   nodes,
		conns:   conns,
		units:   units,
		offsets: offsets,
	}
}

// Style reports the graph shape the units were built with.
func (g *Combined) Style() Style {
	return g.style
}

// Nodes returns the global node list in order.
func (g *Combined) Nodes() []Node {
	return g.nodes
}

// Connections returns the global connection list in order.
func (g *Combined) Connections() []Connection {
	return g.conns
}

// Units returns the composed units in input order.
func (g *Combined) Units() []*Unit {
	return g.units
}

// Unit returns the composed unit with the given id.
func (g *Combined) Unit(id string) (*Unit, bool) {
	for _, u := range g.units {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// Offset reports where the unit's local node space begins in the global
// index space.
func (g *Combined) Offset(unitID string) (int, bool) {
	off, ok := g.offsets[unitID]
	return off, ok
}

// UnitAt maps a global node index back to the unit owning it. Nodes appended
// after composition belong to no unit.
func (g *Combined) UnitAt(nodeIndex int) (*Unit, bool) {
	for _, u := range g.units {
		off := g.offsets[u.ID]
		if nodeIndex >= off && nodeIndex < off+u.NodeCount() {
			return u, true
		}
	}
	return nil, false
}

// AppendNode adds a synthesized node to the combined graph and returns its
// global index. Append-only: existing indices are never disturbed.
func (g *Combined) AppendNode(n Node) int {
	g.nodes = append(g.nodes, n)
	return len(g.nodes) - 1
}

// Connect appends a global connection.
func (g *Combined) Connect(c Connection) {
	g.conns = append(g.conns, c)
}

// Validate checks internal consistency before serialization: every
// connection endpoint must reference an emitted node, and every recorded
// offset must lie inside the node list. A failure here means a composer or
// injector defect, surfaced as *MalformedGraphError.
func (g *Combined) Validate() error {
	for i, c := range g.conns {
		if c.SourceNode < 0 || c.SourceNode >= len(g.nodes) {
			return &MalformedGraphError{Detail: fmt.Sprintf("connection %d source node %d outside node count %d", i, c.SourceNode, len(g.nodes))}
		}
		if c.DestNode < 0 || c.DestNode >= len(g.nodes) {
			return &MalformedGraphError{Detail: fmt.Sprintf("connection %d destination node %d outside node count %d", i, c.DestNode, len(g.nodes))}
		}
		if c.SourceOutlet < 0 || c.DestInlet < 0 {
			return &MalformedGraphError{Detail: fmt.Sprintf("connection %d has negative slot index", i)}
		}
	}
	for id, off := range g.offsets {
		if off < 0 || off > len(g.nodes) {
			return &MalformedGraphError{Detail: fmt.Sprintf("unit %q offset %d outside node count %d", id, off, len(g.nodes))}
		}
	}
	return nil
}
