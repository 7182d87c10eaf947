package registry

import (
	"sort"
	"strconv"
)

// Direction distinguishes the two port families on an entry.
type Direction string

const (
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)

// Curve hints how a control value should be shaped before scaling into a
// port's range.
type Curve string

const (
	CurveLinear      Curve = "linear"
	CurveExponential Curve = "exponential"
)

// Port is one jack on an entry. ID is the module-style port identifier used
// by the rack document; Node/Index locate the same port inside the entry's
// dataflow voice.
type Port struct {
	Name      string
	Label     string
	ID        int
	Direction Direction
	Min       float64
	Max       float64
	HasRange  bool
	Curve     Curve
	Node      int
	Index     int
}

// Parameter is one settable value on an entry. Removed parameters keep their
// identifier slot for document compatibility but are never emitted. Node and
// Inlet locate the voice inlet a control signal for this parameter lands on.
type Parameter struct {
	Name    string
	Label   string
	Aliases []string
	ID      int
	Default float64
	Removed bool
	Node    int
	Inlet   int
}

// Tap wires an upstream voice node into a downstream one, both addressed by
// their position in the entry's Voice list.
type Tap struct {
	FromNode int
	Outlet   int
	Inlet    int
}

// NodeSpec is one object in an entry's dataflow voice. Args may contain
// $name placeholders that the builder substitutes with resolved parameter
// values.
type NodeSpec struct {
	Object string
	Args   []string
	Inputs []Tap
}

// Entry is the canonical definition of one instantiable building block:
// its rack identity, physical width, jacks, parameters, and the dataflow
// voice it expands to.
type Entry struct {
	Namespace string
	Name      string
	Aliases   []string
	Plugin    string
	Model     string
	Version   string
	Width     int
	Ports     []Port
	Params    []Parameter
	Voice     []NodeSpec
}

// Ref returns the namespace-qualified entry name.
func (e *Entry) Ref() string {
	return e.Namespace + "/" + e.Name
}

// ResolvePort finds a port of the given direction by exact name or label
// match first, then by its canonical identifier rendered as a string.
// Matching is case-sensitive.
func (e *Entry) ResolvePort(nameOrLabel string, dir Direction) (Port, error) {
	for _, p := range e.Ports {
		if p.Direction != dir {
			continue
		}
		if p.Name == nameOrLabel || p.Label == nameOrLabel {
			return p, nil
		}
	}
	for _, p := range e.Ports {
		if p.Direction == dir && strconv.Itoa(p.ID) == nameOrLabel {
			return p, nil
		}
	}
	return Port{}, &UnknownPortError{
		Entry:     e.Ref(),
		Port:      nameOrLabel,
		Direction: dir,
		Available: e.portNames(dir),
	}
}

// ResolveParameter finds a parameter by exact name, label, or alias match
// first, then by its canonical identifier rendered as a string. Matching is
// case-sensitive.
func (e *Entry) ResolveParameter(nameOrAlias string) (Parameter, error) {
	for i := range e.Params {
		p := &e.Params[i]
		if p.Name == nameOrAlias || p.Label == nameOrAlias {
			return *p, nil
		}
		for _, alias := range p.Aliases {
			if alias == nameOrAlias {
				return *p, nil
			}
		}
	}
	for i := range e.Params {
		if strconv.Itoa(e.Params[i].ID) == nameOrAlias {
			return e.Params[i], nil
		}
	}
	return Parameter{}, &UnknownParameterError{
		Entry:     e.Ref(),
		Parameter: nameOrAlias,
		Available: e.paramNames(),
	}
}

func (e *Entry) portNames(dir Direction) []string {
	var names []string
	for _, p := range e.Ports {
		if p.Direction == dir {
			names = append(names, p.Name)
		}
	}
	return sortedUnique(names)
}

func (e *Entry) paramNames() []string {
	names := make([]string, 0, len(e.Params))
	for _, p := range e.Params {
		names = append(names, p.Name)
	}
	return sortedUnique(names)
}

func sortedUnique(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	out := names[:0]
	for i, name := range names {
		if i == 0 || name != names[i-1] {
			out = append(out, name)
		}
	}
	return out
}
