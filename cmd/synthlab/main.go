package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/j0KZ/synthlab/internal/ctxlog"
	"github.com/j0KZ/synthlab/pkg/compiler"
	"github.com/j0KZ/synthlab/pkg/patchspec"
	"github.com/j0KZ/synthlab/pkg/presets"
	"github.com/j0KZ/synthlab/pkg/renderers/rack"
)

func main() {
	specPath := flag.String("spec", "", "patch document path (.yaml, .yml or .hcl); interactive when empty")
	format := flag.String("format", "rack", "output format: pd, rack or summary")
	output := flag.String("output", "", "output file (stdout if empty)")
	seed := flag.Int64("seed", 0, "seed for rack identifiers (random if 0)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	var options []compiler.Option
	if *seed != 0 {
		options = append(options, compiler.WithIDSource(rack.NewSeededIDs(*seed)))
	}
	c := compiler.New(options...)

	req := compiler.Request{Path: *specPath, Format: *format}
	if *specPath == "" {
		spec, err := promptForPatch()
		if err != nil {
			logger.Error("interactive setup failed", "error", err)
			os.Exit(1)
		}
		req.Spec = spec
	}

	out, err := c.Compile(ctx, req)
	if err != nil {
		logger.Error("compilation failed", "error", err)
		os.Exit(1)
	}
	logger.Debug("compiled patch", "format", *format, "bytes", len(out))

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			logger.Error("write output", "path", *output, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Patch written to %s\n", *output)
	} else {
		os.Stdout.Write(out)
	}
}

// promptForPatch builds a demo patch interactively: pick a preset, get the
// standard subtractive voice with that preset layered on every unit.
func promptForPatch() (*patchspec.Spec, error) {
	var preset string
	prompt := &survey.Select{
		Message: "Pick a preset for the demo voice:",
		Options: presets.Names(),
	}
	if err := survey.AskOne(prompt, &preset); err != nil {
		return nil, err
	}
	return demoSpec(preset), nil
}

// demoSpec is the classic subtractive chain: oscillator into filter into
// amplifier into the audio output. Preset keys that a unit does not know are
// dropped per unit, so one preset seasons the whole chain.
func demoSpec(preset string) *patchspec.Spec {
	return &patchspec.Spec{
		Name: "demo " + preset,
		Units: []patchspec.UnitSpec{
			{ID: "osc", Module: "fundamental/vco", Preset: preset},
			{ID: "flt", Module: "fundamental/vcf", Preset: preset},
			{ID: "amp", Module: "fundamental/vca", Preset: preset},
			{ID: "master", Module: "fundamental/output"},
		},
		Wires: []patchspec.WireSpec{
			{From: "osc", Output: "sin", To: "flt", Input: "in"},
			{From: "flt", Output: "lpf", To: "amp", Input: "in"},
			{From: "amp", Output: "out", To: "master", Input: "in"},
		},
	}
}
