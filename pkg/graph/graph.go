// Package graph holds the format-agnostic patch graph model: local units as
// produced by the builder, and the finalized combined graph the serializers
// consume.
package graph

import (
	"strconv"

	"github.com/j0KZ/synthlab/pkg/registry"
)

// Style selects how units realize their graph shape. Dataflow units expand
// into their full voice chain; module units collapse to a single vertex whose
// slots are the entry's port identifiers.
type Style string

const (
	StyleDataflow Style = "dataflow"
	StyleModule   Style = "module"
)

// Node is a single graph vertex: a symbolic kind, literal arguments, and a
// position used only for human readability in the target editor.
type Node struct {
	Kind string
	Args []string
	X    int
	Y    int
}

// Connection is a directed edge between node slots. Indices are local to a
// unit before composition and global afterwards.
type Connection struct {
	SourceNode   int
	SourceOutlet int
	DestNode     int
	DestInlet    int
}

// Slot addresses one inlet or outlet by node index and slot index.
type Slot struct {
	Node  int
	Index int
}

// Unit is one built sub-graph: the local nodes and connections for a single
// template instance, plus resolved parameter values and the port addressing
// the composer wires against. A unit is owned by its builder until handed to
// the composer.
type Unit struct {
	ID      string
	Entry   *registry.Entry
	Style   Style
	Params  map[int]float64
	Nodes   []Node
	Conns   []Connection
	Inlets  map[string]Slot
	Outlets map[string]Slot

	X       int
	Y       int
	LeftID  string
	RightID string
}

// NodeCount reports how many local nodes the unit contributes to the global
// index space.
func (u *Unit) NodeCount() int {
	return len(u.Nodes)
}

// Ftoa renders a numeric literal in the stable decimal form shared by every
// emitted format: no exponent, shortest representation that round-trips.
func Ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
