package render

import (
	"context"

	"github.com/j0KZ/synthlab/pkg/controls"
	"github.com/j0KZ/synthlab/pkg/graph"
)

// Renderer converts a finalized combined graph into the byte representation
// of one target document.
type Renderer interface {
	Name() string
	ContentType() string
	// Style reports the graph shape this backend consumes; the compiler
	// builds units accordingly before composing.
	Style() graph.Style
	Render(ctx context.Context, g *graph.Combined, options Options) ([]byte, error)
}

// Options carries per-request rendering context that is not part of the
// graph itself.
type Options struct {
	// PatchName labels the document where the format has room for one.
	PatchName string

	// Controls lists the controller mappings that were requested, for
	// backends that describe rather than wire them.
	Controls []controls.Mapping
}
