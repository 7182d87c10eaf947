package compose

import (
	"github.com/j0KZ/synthlab/pkg/graph"
)

// baselineY is the fixed row every unit sits on.
const baselineY = 0

// Position assigns rack layout to an ordered unit sequence: each unit's x is
// the cumulative width of everything before it, y is the baseline, and
// left/right adjacency points at the immediate neighbors (empty at the
// ends). Pure and order-preserving.
func Position(units []*graph.Unit) {
	x := 0
	for i, u := range units {
		u.X = x
		u.Y = baselineY
		x += u.Entry.Width

		u.LeftID = ""
		u.RightID = ""
		if i > 0 {
			u.LeftID = units[i-1].ID
		}
		if i < len(units)-1 {
			u.RightID = units[i+1].ID
		}
	}
}
