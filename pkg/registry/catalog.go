package registry

// Default returns the built-in catalog: the fundamental namespace of rack
// modules, each carrying its rack identity and the dataflow voice it
// expands to. The returned registry is freshly built so callers can attach
// their own namespace aliases without affecting other holders.
func Default() *Registry {
	r := New(
		vcoEntry(),
		lfoEntry(),
		vcfEntry(),
		vcaEntry(),
		adsrEntry(),
		mixerEntry(),
		outputEntry(),
	)
	r.AliasNamespace("fund", "fundamental")
	return r
}

func vcoEntry() *Entry {
	return &Entry{
		Namespace: "fundamental",
		Name:      "vco",
		Aliases:   []string{"oscillator"},
		Plugin:    "Fundamental",
		Model:     "VCO",
		Version:   "2.0.0",
		Width:     10,
		Ports: []Port{
			{Name: "pitch", Label: "V/Oct", ID: 0, Direction: DirectionInput, Min: -5, Max: 5, HasRange: true, Curve: CurveLinear, Node: 0, Index: 0},
			{Name: "fm", Label: "FM", ID: 1, Direction: DirectionInput, Node: 0, Index: 0},
			{Name: "sin", Label: "Sine", ID: 0, Direction: DirectionOutput, Node: 0, Index: 0},
			{Name: "saw", Label: "Saw", ID: 1, Direction: DirectionOutput, Node: 1, Index: 0},
		},
		Params: []Parameter{
			{Name: "freq", Label: "Frequency", Aliases: []string{"frequency", "pitch"}, ID: 0, Default: 261.626, Node: 0, Inlet: 0},
			{Name: "fine", Label: "Fine", Aliases: []string{"detune"}, ID: 1, Default: 0, Node: 0, Inlet: 0},
		},
		Voice: []NodeSpec{
			{Object: "osc~", Args: []string{"$freq"}},
			{Object: "phasor~", Args: []string{"$freq"}},
		},
	}
}

func lfoEntry() *Entry {
	return &Entry{
		Namespace: "fundamental",
		Name:      "lfo",
		Plugin:    "Fundamental",
		Model:     "LFO",
		Version:   "2.0.0",
		Width:     6,
		Ports: []Port{
			{Name: "reset", Label: "Reset", ID: 0, Direction: DirectionInput, Node: 0, Index: 1},
			{Name: "sin", Label: "Sine", ID: 0, Direction: DirectionOutput, Node: 0, Index: 0},
			{Name: "tri", Label: "Triangle", ID: 1, Direction: DirectionOutput, Node: 0, Index: 0},
		},
		Params: []Parameter{
			{Name: "rate", Label: "Rate", Aliases: []string{"speed", "freq"}, ID: 0, Default: 2, Node: 0, Inlet: 0},
			{Name: "depth", Label: "Depth", Aliases: []string{"amount"}, ID: 1, Default: 1, Node: 0, Inlet: 0},
		},
		Voice: []NodeSpec{
			{Object: "osc~", Args: []string{"$rate"}},
		},
	}
}

func vcfEntry() *Entry {
	return &Entry{
		Namespace: "fundamental",
		Name:      "vcf",
		Aliases:   []string{"filter"},
		Plugin:    "Fundamental",
		Model:     "VCF",
		Version:   "2.0.0",
		Width:     12,
		Ports: []Port{
			{Name: "in", Label: "In", ID: 0, Direction: DirectionInput, Node: 0, Index: 0},
			{Name: "cutoff_cv", Label: "Freq CV", ID: 1, Direction: DirectionInput, Min: 20, Max: 20000, HasRange: true, Curve: CurveExponential, Node: 0, Index: 1},
			{Name: "lpf", Label: "LPF", ID: 0, Direction: DirectionOutput, Node: 0, Index: 0},
		},
		Params: []Parameter{
			{Name: "cutoff", Label: "Cutoff", Aliases: []string{"fc", "freq"}, ID: 0, Default: 1000, Node: 0, Inlet: 1},
			{Name: "resonance", Label: "Resonance", Aliases: []string{"q", "res"}, ID: 1, Default: 0.707, Node: 0, Inlet: 2},
		},
		Voice: []NodeSpec{
			{Object: "bp~", Args: []string{"$cutoff", "$resonance"}},
		},
	}
}

func vcaEntry() *Entry {
	return &Entry{
		Namespace: "fundamental",
		Name:      "vca",
		Aliases:   []string{"amp"},
		Plugin:    "Fundamental",
		Model:     "VCA",
		Version:   "2.0.0",
		Width:     6,
		Ports: []Port{
			{Name: "in", Label: "In", ID: 0, Direction: DirectionInput, Node: 0, Index: 0},
			{Name: "cv", Label: "CV", ID: 1, Direction: DirectionInput, Min: 0, Max: 1, HasRange: true, Curve: CurveLinear, Node: 0, Index: 1},
			{Name: "out", Label: "Out", ID: 0, Direction: DirectionOutput, Node: 0, Index: 0},
		},
		Params: []Parameter{
			{Name: "gain", Label: "Gain", Aliases: []string{"level", "volume"}, ID: 0, Default: 0.8, Node: 0, Inlet: 1},
		},
		Voice: []NodeSpec{
			{Object: "*~", Args: []string{"$gain"}},
		},
	}
}

func adsrEntry() *Entry {
	return &Entry{
		Namespace: "fundamental",
		Name:      "adsr",
		Aliases:   []string{"envelope", "env"},
		Plugin:    "Fundamental",
		Model:     "ADSR",
		Version:   "2.0.0",
		Width:     8,
		Ports: []Port{
			{Name: "gate", Label: "Gate", ID: 0, Direction: DirectionInput, Node: 0, Index: 0},
			{Name: "env", Label: "Env", ID: 0, Direction: DirectionOutput, Node: 1, Index: 0},
		},
		Params: []Parameter{
			{Name: "attack", Label: "Attack", Aliases: []string{"a"}, ID: 0, Default: 0.01, Node: 0, Inlet: 0},
			{Name: "decay", Label: "Decay", Aliases: []string{"d"}, ID: 1, Default: 0.1, Node: 0, Inlet: 0},
			{Name: "sustain", Label: "Sustain", Aliases: []string{"s"}, ID: 2, Default: 0.5, Node: 0, Inlet: 0},
			{Name: "release", Label: "Release", Aliases: []string{"r"}, ID: 3, Default: 0.3, Node: 0, Inlet: 0},
		},
		Voice: []NodeSpec{
			{Object: "vline~"},
			{Object: "*~", Args: []string{"1"}, Inputs: []Tap{{FromNode: 0, Outlet: 0, Inlet: 0}}},
		},
	}
}

func mixerEntry() *Entry {
	return &Entry{
		Namespace: "fundamental",
		Name:      "mixer",
		Aliases:   []string{"mix"},
		Plugin:    "Fundamental",
		Model:     "Mixer",
		Version:   "2.0.0",
		Width:     10,
		Ports: []Port{
			{Name: "ch1", Label: "Ch 1", ID: 0, Direction: DirectionInput, Node: 0, Index: 0},
			{Name: "ch2", Label: "Ch 2", ID: 1, Direction: DirectionInput, Node: 1, Index: 0},
			{Name: "out", Label: "Mix", ID: 0, Direction: DirectionOutput, Node: 2, Index: 0},
		},
		Params: []Parameter{
			{Name: "lvl1", Label: "Level 1", Aliases: []string{"level1"}, ID: 0, Default: 1, Node: 0, Inlet: 1},
			{Name: "lvl2", Label: "Level 2", Aliases: []string{"level2"}, ID: 1, Default: 1, Node: 1, Inlet: 1},
			// Dropped in catalog v2; the identifier slot stays reserved.
			{Name: "pan", Label: "Pan", ID: 2, Default: 0.5, Removed: true, Node: 2, Inlet: 1},
		},
		Voice: []NodeSpec{
			{Object: "*~", Args: []string{"$lvl1"}},
			{Object: "*~", Args: []string{"$lvl2"}},
			{Object: "+~", Inputs: []Tap{
				{FromNode: 0, Outlet: 0, Inlet: 0},
				{FromNode: 1, Outlet: 0, Inlet: 1},
			}},
		},
	}
}

func outputEntry() *Entry {
	return &Entry{
		Namespace: "fundamental",
		Name:      "output",
		Aliases:   []string{"audio", "out"},
		Plugin:    "Fundamental",
		Model:     "AudioInterface2",
		Version:   "2.0.0",
		Width:     8,
		Ports: []Port{
			{Name: "in", Label: "In", ID: 0, Direction: DirectionInput, Node: 0, Index: 0},
		},
		Params: []Parameter{
			{Name: "level", Label: "Level", Aliases: []string{"volume", "master"}, ID: 0, Default: 0.7, Node: 0, Inlet: 1},
		},
		Voice: []NodeSpec{
			{Object: "*~", Args: []string{"$level"}},
			{Object: "dac~", Inputs: []Tap{
				{FromNode: 0, Outlet: 0, Inlet: 0},
				{FromNode: 0, Outlet: 0, Inlet: 1},
			}},
		},
	}
}
