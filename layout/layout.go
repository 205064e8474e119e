package layout

import (
	"github.com/tsawler/forma/model"
)

// Type is the resolved layout type of a container.
type Type int

const (
	TypeAbsolute Type = iota
	TypeRow
	TypeColumn
	TypeStack
)

// String returns a string representation of the layout type.
func (t Type) String() string {
	switch t {
	case TypeRow:
		return "row"
	case TypeColumn:
		return "column"
	case TypeStack:
		return "stack"
	default:
		return "absolute"
	}
}

// IsFlow reports whether the type lays children out along an axis.
func (t Type) IsFlow() bool {
	return t == TypeRow || t == TypeColumn
}

// Sizing is the resolved per-axis sizing behavior of a node.
type Sizing int

const (
	SizingFixed Sizing = iota
	SizingFill
	SizingHug
)

// String returns a string representation of the sizing behavior.
func (s Sizing) String() string {
	switch s {
	case SizingFill:
		return "fill"
	case SizingHug:
		return "hug"
	default:
		return "fixed"
	}
}

// Align is a resolved alignment value.
type Align string

const (
	AlignStart        Align = "start"
	AlignEnd          Align = "end"
	AlignCenter       Align = "center"
	AlignSpaceBetween Align = "space-between"
	AlignSpaceAround  Align = "space-around"
	AlignBaseline     Align = "baseline"
	AlignStretch      Align = "stretch"
)

// Insets holds per-edge padding in px.
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// IsZero reports whether all four edges are zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// AxisSizing holds the resolved sizing for both axes.
type AxisSizing struct {
	Horizontal Sizing
	Vertical   Sizing
}

// Position holds the CSS-like offsets of an absolutely positioned node
// relative to its immediate parent. Values are strings because constraint
// mapping can produce px amounts, percentages, or "auto"; an empty string
// means the edge is unset.
type Position struct {
	Left   string
	Right  string
	Top    string
	Bottom string
	Width  string
	Height string
}

// Meta is the resolved layout information attached to one node.
type Meta struct {
	Type       Type
	Gap        float64
	Padding    Insets
	MainAlign  Align
	CrossAlign Align
	Sizing     AxisSizing

	// Position is set only for nodes placed outside a row/column flow.
	Position *Position

	// Overflow is "hidden" when the container clips its content.
	Overflow string
}

// Node is a normalized node with layout information attached. Children
// mirror the source tree's children in original order.
type Node struct {
	Source   *model.NormalizedNode
	Meta     Meta
	Children []*Node
}

// ID returns the source node's ID.
func (n *Node) ID() string { return n.Source.ID }

// Name returns the source node's name.
func (n *Node) Name() string { return n.Source.Name }

// Bounds returns the source node's bounding box.
func (n *Node) Bounds() model.BBox { return n.Source.BBox }

// ParentContext carries the resolved layout of a node's parent into the
// node's own resolution. Sizing needs the parent's axis and constraint
// mapping needs the parent's bounds, so the parameter is mandatory on every
// annotation call; use RootContext for the tree root.
type ParentContext struct {
	Type    Type
	Bounds  model.BBox
	Present bool
}

// RootContext returns the parent context for a tree root, which has no
// parent.
func RootContext() ParentContext {
	return ParentContext{}
}
