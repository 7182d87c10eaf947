package patchspec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

type hclDocument struct {
	Name     string       `hcl:"name,optional"`
	Units    []hclUnit    `hcl:"unit,block"`
	Wires    []hclWire    `hcl:"wire,block"`
	Controls []hclControl `hcl:"control,block"`
}

type hclUnit struct {
	ID        string    `hcl:"id,label"`
	Module    string    `hcl:"module"`
	Preset    string    `hcl:"preset,optional"`
	Overrides cty.Value `hcl:"overrides,optional"`
}

type hclWire struct {
	From   string `hcl:"from"`
	Output string `hcl:"output"`
	To     string `hcl:"to"`
	Input  string `hcl:"input"`
}

type hclControl struct {
	Control string `hcl:"control,label"`
	Unit    string `hcl:"unit"`
	Param   string `hcl:"param"`
}

// ParseHCL decodes an HCL patch document. Filename only labels diagnostics.
func ParseHCL(data []byte, filename string) (*Spec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("patchspec: parse hcl %s: %s", filename, diags.Error())
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("patchspec: decode hcl %s: %s", filename, diags.Error())
	}

	spec := &Spec{Name: doc.Name}
	for _, u := range doc.Units {
		overrides, err := overridesFromValue(u.ID, u.Overrides)
		if err != nil {
			return nil, err
		}
		spec.Units = append(spec.Units, UnitSpec{
			ID:        u.ID,
			Module:    u.Module,
			Preset:    u.Preset,
			Overrides: overrides,
		})
	}
	for _, w := range doc.Wires {
		spec.Wires = append(spec.Wires, WireSpec(w))
	}
	for _, c := range doc.Controls {
		spec.Controls = append(spec.Controls, ControlSpec(c))
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// overridesFromValue converts the overrides attribute (an HCL object of
// numeric values) into the free-form override map.
func overridesFromValue(unitID string, v cty.Value) (map[string]float64, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	if !v.CanIterateElements() {
		return nil, fmt.Errorf("patchspec: unit %q overrides must be an object", unitID)
	}

	out := make(map[string]float64)
	for it := v.ElementIterator(); it.Next(); {
		key, value := it.Element()
		number, err := convert.Convert(value, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("patchspec: unit %q override %q: %w", unitID, key.AsString(), err)
		}
		f, _ := number.AsBigFloat().Float64()
		out[key.AsString()] = f
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
