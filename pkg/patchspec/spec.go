// Package patchspec models the user-authored declarative patch document and
// its YAML and HCL encodings. A spec names units from the catalog, wires
// their ports together, and optionally maps physical controls onto unit
// parameters; the compiler turns it into editor files.
package patchspec

import (
	"fmt"
)

// Spec is one patch document.
type Spec struct {
	Name     string        `yaml:"name"`
	Units    []UnitSpec    `yaml:"units"`
	Wires    []WireSpec    `yaml:"wires,omitempty"`
	Controls []ControlSpec `yaml:"controls,omitempty"`
}

// UnitSpec instantiates one catalog entry. Module is a "namespace/name"
// reference (a bare name works when unambiguous). Preset names a parameter
// preset applied beneath the explicit overrides.
type UnitSpec struct {
	ID        string             `yaml:"id"`
	Module    string             `yaml:"module"`
	Preset    string             `yaml:"preset,omitempty"`
	Overrides map[string]float64 `yaml:"overrides,omitempty"`
}

// WireSpec connects a named output port on one unit to a named input port
// on another.
type WireSpec struct {
	From   string `yaml:"from"`
	Output string `yaml:"output"`
	To     string `yaml:"to"`
	Input  string `yaml:"input"`
}

// ControlSpec routes one physical control descriptor to a unit parameter.
type ControlSpec struct {
	Control string `yaml:"control"`
	Unit    string `yaml:"unit"`
	Param   string `yaml:"param"`
}

// Validate checks the structural minimums a document needs before
// compilation: units present, ids unique, references non-empty. Semantic
// resolution (does the module exist, does the port exist) is the compiler's
// job and produces its richer error taxonomy.
func (s *Spec) Validate() error {
	if len(s.Units) == 0 {
		return fmt.Errorf("patchspec: document has no units")
	}
	seen := make(map[string]bool, len(s.Units))
	for i, u := range s.Units {
		if u.ID == "" {
			return fmt.Errorf("patchspec: unit %d has no id", i)
		}
		if u.Module == "" {
			return fmt.Errorf("patchspec: unit %q has no module reference", u.ID)
		}
		if seen[u.ID] {
			return fmt.Errorf("patchspec: duplicate unit id %q", u.ID)
		}
		seen[u.ID] = true
	}
	for i, w := range s.Wires {
		if w.From == "" || w.Output == "" || w.To == "" || w.Input == "" {
			return fmt.Errorf("patchspec: wire %d is incomplete", i)
		}
	}
	for i, c := range s.Controls {
		if c.Control == "" || c.Unit == "" || c.Param == "" {
			return fmt.Errorf("patchspec: control %d is incomplete", i)
		}
	}
	return nil
}
