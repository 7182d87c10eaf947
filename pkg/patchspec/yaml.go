package patchspec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML patch document.
func ParseYAML(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("patchspec: decode yaml: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
