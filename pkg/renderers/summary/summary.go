// Package summary renders a human-oriented Markdown description of a
// compiled patch: the units, their resolved parameter values, the wiring,
// and any requested controller mappings. Useful for reviewing a patch
// without opening either external editor.
package summary

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/flosch/pongo2/v6"

	"github.com/j0KZ/synthlab/pkg/controls"
	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/render"
)

const templateName = "templates/summary.md.tmpl"

// Option customises the renderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// Renderer emits Markdown patch summaries.
type Renderer struct {
	template *pongo2.Template
}

// New constructs the summary renderer, parsing the template up front so
// render-time failures are limited to data conversion.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("summary", pongo2.NewFSLoader(cfg.templateFS))
	tmpl, err := set.FromFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("summary renderer: parse template: %w", err)
	}
	return &Renderer{template: tmpl}, nil
}

func (r *Renderer) Name() string {
	return "summary"
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (r *Renderer) Style() graph.Style {
	return graph.StyleModule
}

type unitView struct {
	ID     string
	Ref    string
	Width  int
	Params []paramView
}

type paramView struct {
	Name  string
	Value string
}

type wireView struct {
	From   string
	Outlet int
	To     string
	Inlet  int
}

type controlView struct {
	Control string
	Unit    string
	Param   string
	Bus     string
}

// Render builds the template context from the graph and executes the
// Markdown template.
func (r *Renderer) Render(_ context.Context, g *graph.Combined, options render.Options) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("summary renderer: %w", err)
	}

	name := options.PatchName
	if name == "" {
		name = "untitled"
	}

	out, err := r.template.ExecuteBytes(pongo2.Context{
		"name":     name,
		"units":    unitViews(g),
		"wires":    wireViews(g),
		"controls": controlViews(options.Controls),
	})
	if err != nil {
		return nil, fmt.Errorf("summary renderer: execute template: %w", err)
	}
	return out, nil
}

func unitViews(g *graph.Combined) []unitView {
	views := make([]unitView, 0, len(g.Units()))
	for _, u := range g.Units() {
		view := unitView{
			ID:    u.ID,
			Ref:   u.Entry.Ref(),
			Width: u.Entry.Width,
		}
		ids := make([]int, 0, len(u.Params))
		for id := range u.Params {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			view.Params = append(view.Params, paramView{
				Name:  paramName(u, id),
				Value: graph.Ftoa(u.Params[id]),
			})
		}
		views = append(views, view)
	}
	return views
}

func paramName(u *graph.Unit, id int) string {
	for _, p := range u.Entry.Params {
		if p.ID == id {
			return p.Name
		}
	}
	return fmt.Sprintf("param %d", id)
}

func wireViews(g *graph.Combined) []wireView {
	var views []wireView
	for _, c := range g.Connections() {
		from, okFrom := g.UnitAt(c.SourceNode)
		to, okTo := g.UnitAt(c.DestNode)
		if !okFrom || !okTo {
			continue
		}
		views = append(views, wireView{
			From:   from.ID,
			Outlet: c.SourceOutlet,
			To:     to.ID,
			Inlet:  c.DestInlet,
		})
	}
	return views
}

func controlViews(mappings []controls.Mapping) []controlView {
	if len(mappings) == 0 {
		return nil
	}
	views := make([]controlView, 0, len(mappings))
	for _, m := range mappings {
		views = append(views, controlView{
			Control: m.Control,
			Unit:    m.Unit,
			Param:   m.Param,
			Bus:     controls.BusName(m.Unit, m.Param),
		})
	}
	return views
}
