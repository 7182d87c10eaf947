// Package pd serializes a combined graph into the Pure Data text patch
// grammar: one statement per node, one per connection, newline delimited.
// The exact byte layout is the compatibility surface with the external
// editor, so formatting here is deliberately rigid.
package pd

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/j0KZ/synthlab/pkg/graph"
	"github.com/j0KZ/synthlab/pkg/render"
)

// Canvas dimensions written into the patch header.
const (
	canvasWidth  = 1200
	canvasHeight = 800
	canvasFont   = 10
)

// Renderer emits Pure Data .pd documents.
type Renderer struct{}

// New constructs the Pd renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "pd"
}

func (r *Renderer) ContentType() string {
	return "application/x-puredata; charset=utf-8"
}

func (r *Renderer) Style() graph.Style {
	return graph.StyleDataflow
}

// Render writes the canvas header, every node statement in order, then
// every connection statement. The graph is validated first; a connection
// referencing an index beyond the emitted node count means an upstream
// defect and aborts with MalformedGraph before any bytes are produced.
func (r *Renderer) Render(_ context.Context, g *graph.Combined, _ render.Options) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("pd renderer: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "#N canvas 0 0 %d %d %d;\n", canvasWidth, canvasHeight, canvasFont)

	for _, n := range g.Nodes() {
		writeNode(&buf, n)
	}
	for _, c := range g.Connections() {
		fmt.Fprintf(&buf, "#X connect %d %d %d %d;\n",
			c.SourceNode, c.SourceOutlet, c.DestNode, c.DestInlet)
	}

	return buf.Bytes(), nil
}

func writeNode(buf *bytes.Buffer, n graph.Node) {
	record := "#X obj"
	if n.Kind == "text" {
		record = "#X text"
	}
	buf.WriteString(record)
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(n.X))
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(n.Y))
	if n.Kind != "text" {
		buf.WriteByte(' ')
		buf.WriteString(n.Kind)
	}
	for _, arg := range n.Args {
		buf.WriteByte(' ')
		buf.WriteString(arg)
	}
	buf.WriteString(";\n")
}
