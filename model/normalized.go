package model

// NormalizedNode is a pruned copy of a RawNode: same visual and layout
// fields, children recursively normalized, with hidden and irrelevant nodes
// removed. Every NormalizedNode in a filter result is visible and matches
// none of the configured ignore patterns.
type NormalizedNode struct {
	ID   string
	Name string
	Type NodeType

	BBox BBox

	Fills        []Paint
	Strokes      []Paint
	StrokeWeight float64
	Effects      []Effect
	Opacity      *float64
	CornerRadius float64
	CornerRadii  []float64

	Characters string
	Style      *Typography

	LayoutMode            LayoutMode
	ItemSpacing           float64
	PaddingLeft           float64
	PaddingRight          float64
	PaddingTop            float64
	PaddingBottom         float64
	PrimaryAxisSizingMode SizingMode
	CounterAxisSizingMode SizingMode
	PrimaryAxisAlignItems AxisAlign
	CounterAxisAlignItems AxisAlign
	LayoutGrow            float64
	LayoutAlign           string
	LayoutPositioning     string
	ClipsContent          bool

	Constraints *Constraints
	ComponentID string

	Children []*NormalizedNode
}

// HasAutoLayout reports whether the node carries explicit auto-layout
// metadata.
func (n *NormalizedNode) HasAutoLayout() bool {
	return n.LayoutMode == LayoutModeHorizontal || n.LayoutMode == LayoutModeVertical
}

// IsAbsolutePositioned reports whether the node opted out of its parent's
// auto-layout flow.
func (n *NormalizedNode) IsAbsolutePositioned() bool {
	return n.LayoutPositioning == "ABSOLUTE"
}

// EffectiveOpacity returns the node opacity, defaulting to 1 when the export
// carries none.
func (n *NormalizedNode) EffectiveOpacity() float64 {
	if n.Opacity == nil {
		return 1
	}
	return *n.Opacity
}

// FirstVisibleSolidFill returns the first visible solid fill, or nil.
func (n *NormalizedNode) FirstVisibleSolidFill() *Paint {
	for i := range n.Fills {
		p := &n.Fills[i]
		if p.IsVisible() && p.Type == PaintSolid && p.Color != nil {
			return p
		}
	}
	return nil
}

// HasImageFill reports whether any visible fill is an image paint.
func (n *NormalizedNode) HasImageFill() bool {
	for _, p := range n.Fills {
		if p.IsVisible() && p.Type == PaintImage {
			return true
		}
	}
	return false
}

// ResolvedCornerRadii returns the four corner radii in top-left, top-right,
// bottom-right, bottom-left order, expanding a uniform radius when no
// per-corner values exist.
func (n *NormalizedNode) ResolvedCornerRadii() [4]float64 {
	var radii [4]float64
	if len(n.CornerRadii) == 4 {
		copy(radii[:], n.CornerRadii)
		return radii
	}
	for i := range radii {
		radii[i] = n.CornerRadius
	}
	return radii
}
