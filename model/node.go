package model

// NodeType is the design-tool node kind as it appears in an export.
type NodeType string

const (
	NodeDocument         NodeType = "DOCUMENT"
	NodeCanvas           NodeType = "CANVAS"
	NodeFrame            NodeType = "FRAME"
	NodeGroup            NodeType = "GROUP"
	NodeSection          NodeType = "SECTION"
	NodeText             NodeType = "TEXT"
	NodeVector           NodeType = "VECTOR"
	NodeBooleanOperation NodeType = "BOOLEAN_OPERATION"
	NodeLine             NodeType = "LINE"
	NodeRectangle        NodeType = "RECTANGLE"
	NodeEllipse          NodeType = "ELLIPSE"
	NodePolygon          NodeType = "REGULAR_POLYGON"
	NodeStar             NodeType = "STAR"
	NodeComponent        NodeType = "COMPONENT"
	NodeComponentSet     NodeType = "COMPONENT_SET"
	NodeInstance         NodeType = "INSTANCE"
)

// IsVectorLike reports whether the node type draws vector geometry rather
// than containing children of its own.
func (t NodeType) IsVectorLike() bool {
	switch t {
	case NodeVector, NodeBooleanOperation, NodeLine, NodeEllipse, NodePolygon, NodeStar:
		return true
	default:
		return false
	}
}

// LayoutMode is the explicit auto-layout direction declared on a container,
// when the designer opted in to auto-layout.
type LayoutMode string

const (
	LayoutModeNone       LayoutMode = "NONE"
	LayoutModeHorizontal LayoutMode = "HORIZONTAL"
	LayoutModeVertical   LayoutMode = "VERTICAL"
)

// SizingMode is the per-axis sizing declared by auto-layout metadata.
type SizingMode string

const (
	SizingFixed SizingMode = "FIXED"
	SizingAuto  SizingMode = "AUTO"
)

// AxisAlign is the explicit alignment value declared by auto-layout metadata.
type AxisAlign string

const (
	AlignMin          AxisAlign = "MIN"
	AlignMax          AxisAlign = "MAX"
	AlignCenter       AxisAlign = "CENTER"
	AlignSpaceBetween AxisAlign = "SPACE_BETWEEN"
	AlignSpaceAround  AxisAlign = "SPACE_AROUND"
	AlignBaseline     AxisAlign = "BASELINE"
	AlignStretch      AxisAlign = "STRETCH"
)

// ConstraintType is a positioning constraint for absolutely placed children.
type ConstraintType string

const (
	ConstraintLeft      ConstraintType = "LEFT"
	ConstraintRight     ConstraintType = "RIGHT"
	ConstraintTop       ConstraintType = "TOP"
	ConstraintBottom    ConstraintType = "BOTTOM"
	ConstraintCenter    ConstraintType = "CENTER"
	ConstraintLeftRight ConstraintType = "LEFT_RIGHT"
	ConstraintTopBottom ConstraintType = "TOP_BOTTOM"
	ConstraintScale     ConstraintType = "SCALE"
)

// Constraints holds the horizontal and vertical constraints of a node.
type Constraints struct {
	Horizontal ConstraintType `json:"horizontal"`
	Vertical   ConstraintType `json:"vertical"`
}

// Typography carries the text styling of a TEXT node.
type Typography struct {
	FontFamily     string  `json:"fontFamily,omitempty"`
	FontWeight     float64 `json:"fontWeight,omitempty"`
	FontSize       float64 `json:"fontSize,omitempty"`
	LineHeightPx   float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing  float64 `json:"letterSpacing,omitempty"`
	TextAlign      string  `json:"textAlignHorizontal,omitempty"`
	TextCase       string  `json:"textCase,omitempty"`
	TextDecoration string  `json:"textDecoration,omitempty"`
}

// RawNode is a node of the design-tool document tree exactly as decoded from
// an export. The pipeline treats the raw tree as immutable input; every
// field beyond the enumerated set is ignored during decoding.
type RawNode struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    NodeType `json:"type"`
	Visible *bool    `json:"visible,omitempty"`

	AbsoluteBoundingBox *BBox `json:"absoluteBoundingBox,omitempty"`

	Fills        []Paint   `json:"fills,omitempty"`
	Strokes      []Paint   `json:"strokes,omitempty"`
	StrokeWeight float64   `json:"strokeWeight,omitempty"`
	Effects      []Effect  `json:"effects,omitempty"`
	Opacity      *float64  `json:"opacity,omitempty"`
	CornerRadius float64   `json:"cornerRadius,omitempty"`
	CornerRadii  []float64 `json:"rectangleCornerRadii,omitempty"`

	Characters string      `json:"characters,omitempty"`
	Style      *Typography `json:"style,omitempty"`

	LayoutMode            LayoutMode `json:"layoutMode,omitempty"`
	ItemSpacing           float64    `json:"itemSpacing,omitempty"`
	PaddingLeft           float64    `json:"paddingLeft,omitempty"`
	PaddingRight          float64    `json:"paddingRight,omitempty"`
	PaddingTop            float64    `json:"paddingTop,omitempty"`
	PaddingBottom         float64    `json:"paddingBottom,omitempty"`
	PrimaryAxisSizingMode SizingMode `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode SizingMode `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems AxisAlign  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems AxisAlign  `json:"counterAxisAlignItems,omitempty"`
	LayoutGrow            float64    `json:"layoutGrow,omitempty"`
	LayoutAlign           string     `json:"layoutAlign,omitempty"`
	LayoutPositioning     string     `json:"layoutPositioning,omitempty"`
	ClipsContent          bool       `json:"clipsContent,omitempty"`

	Constraints *Constraints `json:"constraints,omitempty"`
	ComponentID string       `json:"componentId,omitempty"`

	Children []*RawNode `json:"children,omitempty"`
}

// IsVisible reports whether the node is visible. Exports omit the flag for
// visible nodes, so only an explicit false hides a node.
func (n *RawNode) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// HasAutoLayout reports whether the node carries explicit auto-layout
// metadata.
func (n *RawNode) HasAutoLayout() bool {
	return n.LayoutMode == LayoutModeHorizontal || n.LayoutMode == LayoutModeVertical
}

// Bounds returns the node's bounding box, or a zero box when the export
// carries none.
func (n *RawNode) Bounds() BBox {
	if n.AbsoluteBoundingBox == nil {
		return BBox{}
	}
	return *n.AbsoluteBoundingBox
}
