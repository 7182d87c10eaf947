// Package presets ships the genre and mood parameter presets. A preset is
// a free-form override map reused across heterogeneous unit types; keys
// that do not resolve on a given unit are dropped by the builder's
// best-effort override application, which is what makes one preset usable
// on a whole patch.
package presets

import (
	"fmt"
	"sort"
)

var catalog = map[string]map[string]float64{
	"acid-bass": {
		"freq":      110,
		"cutoff":    800,
		"resonance": 4,
		"attack":    0.005,
		"decay":     0.18,
		"sustain":   0.1,
		"release":   0.05,
	},
	"ambient-pad": {
		"freq":      220,
		"cutoff":    2200,
		"resonance": 0.9,
		"attack":    1.5,
		"decay":     0.8,
		"sustain":   0.8,
		"release":   2.5,
		"rate":      0.25,
		"depth":     0.4,
	},
	"techno-stab": {
		"freq":      164.814,
		"cutoff":    3000,
		"resonance": 2,
		"attack":    0.002,
		"decay":     0.25,
		"sustain":   0,
		"release":   0.08,
	},
	"dub-siren": {
		"freq":  440,
		"rate":  6,
		"depth": 1,
		"gain":  0.6,
	},
}

// Lookup returns the override map for a preset name.
func Lookup(name string) (map[string]float64, error) {
	preset, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("presets: unknown preset %q (available: %v)", name, Names())
	}
	// Copy so callers can layer their own overrides on top.
	out := make(map[string]float64, len(preset))
	for k, v := range preset {
		out[k] = v
	}
	return out, nil
}

// Names returns the sorted preset names.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
