// Package compiler coordinates the full pipeline from patch document to
// rendered editor file: resolve catalog entries, build units, position,
// compose, inject controls, serialize. It applies sensible defaults (the
// built-in catalog, all three renderers) while staying open to dependency
// injection for advanced callers.
package compiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/j0KZ/synthlab/pkg/builder"
	"github.com/j0KZ/synthlab/pkg/compose"
	"github.com/j0KZ/synthlab/pkg/controls"
	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/patchspec"
	"github.com/j0KZ/synthlab/pkg/presets"
	"github.com/j0KZ/synthlab/pkg/registry"
	"github.com/j0KZ/synthlab/pkg/render"
	"github.com/j0KZ/synthlab/pkg/renderers/pd"
	"github.com/j0KZ/synthlab/pkg/renderers/rack"
	"github.com/j0KZ/synthlab/pkg/renderers/summary"
)

const defaultFormat = "rack"

// Option customises the compiler configuration.
type Option func(*Compiler)

// WithCatalog injects the registry the compiler resolves entries against.
func WithCatalog(reg *registry.Registry) Option {
	return func(c *Compiler) {
		c.catalog = reg
	}
}

// WithRenderers injects a renderer registry, replacing the built-in
// backends entirely.
func WithRenderers(reg *render.Registry) Option {
	return func(c *Compiler) {
		c.renderers = reg
	}
}

// WithIDSource seeds the rack backend's identifier generation; tests use
// this for reproducible documents.
func WithIDSource(ids rack.IDSource) Option {
	return func(c *Compiler) {
		c.idSource = ids
	}
}

// WithDefaultFormat overrides the format used when a request omits one.
func WithDefaultFormat(name string) Option {
	return func(c *Compiler) {
		if name != "" {
			c.defaultFormat = name
		}
	}
}

// Compiler runs patch compilations. It is stateless across invocations:
// the catalog is read-only and everything else is request-local, so one
// Compiler may serve concurrent callers without coordination.
type Compiler struct {
	catalog       *registry.Registry
	renderers     *render.Registry
	idSource      rack.IDSource
	defaultFormat string
	initErr       error
}

// New constructs a Compiler applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Compiler {
	c := &Compiler{defaultFormat: defaultFormat}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.applyDefaults()
	return c
}

func (c *Compiler) applyDefaults() {
	if c.catalog == nil {
		c.catalog = registry.Default()
	}
	if c.renderers == nil {
		c.renderers = render.NewRegistry()
		c.renderers.MustRegister(pd.New())

		rackOpts := []rack.Option{}
		if c.idSource != nil {
			rackOpts = append(rackOpts, rack.WithIDSource(c.idSource))
		}
		c.renderers.MustRegister(rack.New(rackOpts...))

		summarizer, err := summary.New()
		if err != nil {
			c.initErr = fmt.Errorf("compiler: default summary renderer: %w", err)
			return
		}
		c.renderers.MustRegister(summarizer)
	}
}

// Request describes one compilation.
type Request struct {
	// Path locates the patch document on disk. Optional when Spec is set.
	Path string

	// Spec bypasses the loader when the caller already has a document.
	Spec *patchspec.Spec

	// Format names the target renderer ("pd", "rack", "summary"). Empty
	// falls back to the configured default.
	Format string
}

// Compile runs the full pipeline and returns the rendered document bytes.
// A failed compilation returns only the error; no partial output is ever
// produced.
func (c *Compiler) Compile(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("compiler: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.initErr != nil {
		return nil, c.initErr
	}

	spec, err := c.resolveSpec(req)
	if err != nil {
		return nil, err
	}

	format := req.Format
	if format == "" {
		format = c.defaultFormat
	}
	renderer, err := c.renderers.Get(format)
	if err != nil {
		return nil, fmt.Errorf("compiler: %w", err)
	}

	g, err := c.buildGraph(spec, renderer.Style())
	if err != nil {
		return nil, err
	}

	options := render.Options{PatchName: spec.Name}
	for _, ctl := range spec.Controls {
		options.Controls = append(options.Controls, controls.Mapping(ctl))
	}

	out, err := renderer.Render(ctx, g, options)
	if err != nil {
		return nil, fmt.Errorf("compiler: render %s output: %w", format, err)
	}
	return out, nil
}

func (c *Compiler) resolveSpec(req Request) (*patchspec.Spec, error) {
	if req.Spec != nil {
		if err := req.Spec.Validate(); err != nil {
			return nil, err
		}
		return req.Spec, nil
	}
	if req.Path == "" {
		return nil, errors.New("compiler: path or spec is required")
	}
	return patchspec.Load(req.Path)
}

// buildGraph runs resolve, build, position, compose, and (for dataflow
// output) controller injection.
func (c *Compiler) buildGraph(spec *patchspec.Spec, style graph.Style) (*graph.Combined, error) {
	b := builder.New()

	units := make([]*graph.Unit, 0, len(spec.Units))
	for column, us := range spec.Units {
		entry, err := c.catalog.LookupRef(us.Module)
		if err != nil {
			return nil, err
		}
		overrides, err := layerPreset(us)
		if err != nil {
			return nil, err
		}
		unit, err := b.Build(entry, us.ID, style, column, overrides)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	compose.Position(units)

	wiring := make([]compose.Wire, 0, len(spec.Wires))
	for _, w := range spec.Wires {
		wiring = append(wiring, compose.Wire(w))
	}

	g, err := compose.Compose(units, wiring, compose.Options{
		SingleCableInputs: style == graph.StyleModule,
	})
	if err != nil {
		return nil, err
	}

	if style == graph.StyleDataflow && len(spec.Controls) > 0 {
		mappings := make([]controls.Mapping, 0, len(spec.Controls))
		for _, ctl := range spec.Controls {
			mappings = append(mappings, controls.Mapping(ctl))
		}
		if err := controls.NewInjector(b).Inject(g, mappings); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// layerPreset resolves the unit's preset (when named) and layers explicit
// overrides on top: defaults under preset under explicit values.
func layerPreset(us patchspec.UnitSpec) (map[string]float64, error) {
	if us.Preset == "" {
		return us.Overrides, nil
	}
	layered, err := presets.Lookup(us.Preset)
	if err != nil {
		return nil, err
	}
	for key, value := range us.Overrides {
		layered[key] = value
	}
	return layered, nil
}
