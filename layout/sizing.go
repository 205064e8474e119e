package layout

import (
	"github.com/tsawler/forma/model"
)

// ResolveSizing resolves the fixed/fill/hug behavior of a node on both axes.
//
// Fill is driven by the parent: a node with layoutGrow 1 fills the parent's
// main axis, and a node with the stretch flag fills the parent's cross axis,
// so the parent's resolved type must be known. Hug is driven by the node
// itself: AUTO sizing on its primary or counter axis hugs content along
// whatever axis the node's own layout mode puts there. Everything else is
// fixed.
func ResolveSizing(n *model.NormalizedNode, parent ParentContext) AxisSizing {
	sizing := AxisSizing{Horizontal: SizingFixed, Vertical: SizingFixed}

	if parent.Present {
		switch parent.Type {
		case TypeRow:
			if n.LayoutGrow == 1 {
				sizing.Horizontal = SizingFill
			}
			if n.LayoutAlign == "STRETCH" {
				sizing.Vertical = SizingFill
			}
		case TypeColumn:
			if n.LayoutGrow == 1 {
				sizing.Vertical = SizingFill
			}
			if n.LayoutAlign == "STRETCH" {
				sizing.Horizontal = SizingFill
			}
		}
	}

	// Hug resolves against the node's own axis, not the parent's.
	switch n.LayoutMode {
	case model.LayoutModeHorizontal:
		if sizing.Horizontal == SizingFixed && n.PrimaryAxisSizingMode == model.SizingAuto {
			sizing.Horizontal = SizingHug
		}
		if sizing.Vertical == SizingFixed && n.CounterAxisSizingMode == model.SizingAuto {
			sizing.Vertical = SizingHug
		}
	case model.LayoutModeVertical:
		if sizing.Vertical == SizingFixed && n.PrimaryAxisSizingMode == model.SizingAuto {
			sizing.Vertical = SizingHug
		}
		if sizing.Horizontal == SizingFixed && n.CounterAxisSizingMode == model.SizingAuto {
			sizing.Horizontal = SizingHug
		}
	}

	return sizing
}
