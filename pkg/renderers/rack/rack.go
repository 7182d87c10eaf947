// Package rack serializes a combined graph into the modular-rack JSON
// document. Key names and value types are the compatibility surface with
// the external rack editor; change nothing here without a fixture proving
// the editor still opens the file.
package rack

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/render"
)

const documentVersion = "2.4.1"

// cableColors is the fixed display palette cycled through when a wiring
// directive carries no explicit color.
var cableColors = []string{
	"#f3374b",
	"#ffb437",
	"#00b56e",
	"#3695ef",
	"#8b4ade",
}

type document struct {
	Version string   `json:"version"`
	Modules []module `json:"modules"`
	Cables  []cable  `json:"cables"`
}

type module struct {
	ID            uint64       `json:"id"`
	Plugin        string       `json:"plugin"`
	Model         string       `json:"model"`
	Version       string       `json:"version"`
	Params        []paramValue `json:"params"`
	Pos           [2]int       `json:"pos"`
	LeftModuleID  *uint64      `json:"leftModuleId"`
	RightModuleID *uint64      `json:"rightModuleId"`
}

type paramValue struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
}

type cable struct {
	ID             uint64 `json:"id"`
	OutputModuleID uint64 `json:"outputModuleId"`
	OutputID       int    `json:"outputId"`
	InputModuleID  uint64 `json:"inputModuleId"`
	InputID        int    `json:"inputId"`
	Color          string `json:"color"`
}

// Renderer emits rack JSON documents.
type Renderer struct {
	ids IDSource
}

// Option customises the renderer.
type Option func(*Renderer)

// WithIDSource injects the identifier source. Production wiring uses the
// random source; tests inject a seeded one for byte-stable output.
func WithIDSource(ids IDSource) Option {
	return func(r *Renderer) {
		if ids != nil {
			r.ids = ids
		}
	}
}

// New constructs the rack renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{ids: NewRandomIDs()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "rack"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Style() graph.Style {
	return graph.StyleModule
}

// Render emits the versioned document: one module per composed unit with
// its resolved parameter values and rack position, then one cable per
// global connection. Every input jack accepts a single cable; a duplicate
// here means a composer defect and aborts as MalformedGraph.
func (r *Renderer) Render(_ context.Context, g *graph.Combined, _ render.Options) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("rack renderer: %w", err)
	}

	units := g.Units()
	moduleIDs := make(map[string]uint64, len(units))
	modules := make([]module, 0, len(units))
	for _, u := range units {
		moduleIDs[u.ID] = r.ids.Next()
	}

	for _, u := range units {
		id := moduleIDs[u.ID]
		m := module{
			ID:      id,
			Plugin:  u.Entry.Plugin,
			Model:   u.Entry.Model,
			Version: u.Entry.Version,
			Params:  sortedParams(u.Params),
			Pos:     [2]int{u.X, u.Y},
		}
		if u.LeftID != "" {
			left := moduleIDs[u.LeftID]
			m.LeftModuleID = &left
		}
		if u.RightID != "" {
			right := moduleIDs[u.RightID]
			m.RightModuleID = &right
		}
		modules = append(modules, m)
	}

	cables := make([]cable, 0, len(g.Connections()))
	seen := make(map[uint64]map[int]bool)
	for i, c := range g.Connections() {
		from, ok := g.UnitAt(c.SourceNode)
		if !ok {
			return nil, fmt.Errorf("rack renderer: %w",
				&graph.MalformedGraphError{Detail: fmt.Sprintf("connection %d source node %d belongs to no module", i, c.SourceNode)})
		}
		to, ok := g.UnitAt(c.DestNode)
		if !ok {
			return nil, fmt.Errorf("rack renderer: %w",
				&graph.MalformedGraphError{Detail: fmt.Sprintf("connection %d destination node %d belongs to no module", i, c.DestNode)})
		}

		inputModule := moduleIDs[to.ID]
		byInput := seen[inputModule]
		if byInput == nil {
			byInput = make(map[int]bool)
			seen[inputModule] = byInput
		}
		if byInput[c.DestInlet] {
			return nil, fmt.Errorf("rack renderer: %w",
				&graph.MalformedGraphError{Detail: fmt.Sprintf("input %d on module %d has more than one cable", c.DestInlet, inputModule)})
		}
		byInput[c.DestInlet] = true

		cables = append(cables, cable{
			ID:             r.ids.Next(),
			OutputModuleID: moduleIDs[from.ID],
			OutputID:       c.SourceOutlet,
			InputModuleID:  inputModule,
			InputID:        c.DestInlet,
			Color:          cableColors[i%len(cableColors)],
		})
	}

	doc := document{
		Version: documentVersion,
		Modules: modules,
		Cables:  cables,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rack renderer: marshal document: %w", err)
	}
	return append(out, '\n'), nil
}

func sortedParams(values map[int]float64) []paramValue {
	params := make([]paramValue, 0, len(values))
	for id, value := range values {
		params = append(params, paramValue{ID: id, Value: value})
	}
	sort.Slice(params, func(i, j int) bool { return params[i].ID < params[j].ID })
	return params
}
