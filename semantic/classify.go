package semantic

import (
	"strings"

	"github.com/tsawler/forma/layout"
	"github.com/tsawler/forma/model"
)

// Config holds the classifier's shape thresholds.
type Config struct {
	// MaxIconSize is the largest edge, in px, a vector cluster may have and
	// still read as an icon.
	MaxIconSize float64

	// MaxButtonHeight is the tallest container that can read as a button,
	// in px.
	MaxButtonHeight float64

	// MinRepeat is how many structurally identical children a container
	// needs before it reads as a repeater.
	MinRepeat int
}

// DefaultConfig returns the default classification thresholds.
func DefaultConfig() Config {
	return Config{
		MaxIconSize:     64,
		MaxButtonHeight: 64,
		MinRepeat:       2,
	}
}

// rule is one step of the classification cascade. Rules run in declaration
// order and the first match wins.
type rule struct {
	name  string
	match func(c *Classifier, n *layout.Node, children []IRNode) bool
	build func(c *Classifier, n *layout.Node, children []IRNode) IRNode
}

// Classifier assigns each layout node exactly one semantic variant.
type Classifier struct {
	config Config
	rules  []rule
}

// NewClassifier creates a classifier with default thresholds.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom thresholds.
func NewClassifierWithConfig(config Config) *Classifier {
	c := &Classifier{config: config}
	c.rules = []rule{
		{"text", (*Classifier).matchText, (*Classifier).buildText},
		{"image", (*Classifier).matchImage, (*Classifier).buildImage},
		{"icon", (*Classifier).matchIcon, (*Classifier).buildIcon},
		{"component", (*Classifier).matchComponent, (*Classifier).buildComponent},
		{"button", (*Classifier).matchButton, (*Classifier).buildButton},
		{"repeater", (*Classifier).matchRepeater, (*Classifier).buildRepeater},
		{"card", (*Classifier).matchCard, (*Classifier).buildCard},
	}
	return c
}

// Classify lowers a layout node into its IR variant. Children are classified
// first, in source order, because several rules inspect the classified child
// shape. Container is the fallback when no rule matches.
func (c *Classifier) Classify(n *layout.Node) IRNode {
	children := make([]IRNode, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, c.Classify(child))
	}

	for _, r := range c.rules {
		if r.match(c, n, children) {
			return r.build(c, n, children)
		}
	}
	return &Container{Base: makeBase(n), Children: children}
}

func makeBase(n *layout.Node) Base {
	return Base{
		ID:     n.ID(),
		Name:   n.Name(),
		Source: n.Source,
		Layout: &n.Meta,
	}
}

func (c *Classifier) matchText(n *layout.Node, _ []IRNode) bool {
	return n.Source.Type == model.NodeText
}

func (c *Classifier) buildText(n *layout.Node, _ []IRNode) IRNode {
	return &Text{
		Base:       makeBase(n),
		Content:    n.Source.Characters,
		Field:      ContentField(n.Source.Characters),
		Typography: n.Source.Style,
	}
}

func (c *Classifier) matchImage(n *layout.Node, children []IRNode) bool {
	return len(children) == 0 && n.Source.HasImageFill()
}

func (c *Classifier) buildImage(n *layout.Node, _ []IRNode) IRNode {
	img := &Image{Base: makeBase(n)}
	for _, p := range n.Source.Fills {
		if p.IsVisible() && p.Type == model.PaintImage {
			img.ImageRef = p.ImageRef
			break
		}
	}
	return img
}

// matchIcon accepts a small vector leaf or a small cluster made entirely of
// vector geometry.
func (c *Classifier) matchIcon(n *layout.Node, _ []IRNode) bool {
	box := n.Bounds()
	if box.Width >= c.config.MaxIconSize || box.Height >= c.config.MaxIconSize {
		return false
	}
	if n.Source.Type.IsVectorLike() {
		return true
	}
	if len(n.Source.Children) == 0 {
		return false
	}
	for _, child := range n.Source.Children {
		if !child.Type.IsVectorLike() {
			return false
		}
	}
	return true
}

func (c *Classifier) buildIcon(n *layout.Node, _ []IRNode) IRNode {
	return &Icon{Base: makeBase(n)}
}

func (c *Classifier) matchComponent(n *layout.Node, _ []IRNode) bool {
	switch n.Source.Type {
	case model.NodeComponent, model.NodeComponentSet, model.NodeInstance:
		return true
	default:
		return false
	}
}

func (c *Classifier) buildComponent(n *layout.Node, children []IRNode) IRNode {
	return &Component{
		Base:          makeBase(n),
		ComponentName: PascalCase(n.Name()),
		ComponentID:   n.Source.ComponentID,
		IsSet:         n.Source.Type == model.NodeComponentSet,
		Children:      children,
	}
}

// matchButton accepts a short container holding a single label (optionally
// with an icon) when either the name or the visual shape says button.
func (c *Classifier) matchButton(n *layout.Node, children []IRNode) bool {
	if len(children) == 0 || len(children) > 2 {
		return false
	}
	if n.Bounds().Height > c.config.MaxButtonHeight {
		return false
	}

	var labels, icons int
	for _, child := range children {
		switch child.Kind() {
		case KindText:
			labels++
		case KindIcon:
			icons++
		default:
			return false
		}
	}
	if labels != 1 {
		return false
	}

	if hasButtonName(n.Name()) {
		return true
	}
	radii := n.Source.ResolvedCornerRadii()
	rounded := radii[0] > 0 || radii[1] > 0 || radii[2] > 0 || radii[3] > 0
	return rounded && n.Source.FirstVisibleSolidFill() != nil && icons <= 1
}

func hasButtonName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "button") ||
		strings.Contains(lower, "btn") ||
		strings.Contains(lower, "cta")
}

func (c *Classifier) buildButton(n *layout.Node, children []IRNode) IRNode {
	btn := &Button{Base: makeBase(n), Children: children}
	for _, child := range children {
		switch v := child.(type) {
		case *Text:
			btn.Label = v.Content
		case *Icon:
			btn.HasIcon = true
		}
	}
	return btn
}

// matchRepeater accepts a container whose children all share one structural
// signature.
func (c *Classifier) matchRepeater(n *layout.Node, children []IRNode) bool {
	if len(children) < c.config.MinRepeat {
		return false
	}
	// A run of bare leaves (title + price, a row of icons) is content, not
	// repetition; the template must be a block of its own.
	switch children[0].Kind() {
	case KindText, KindIcon, KindImage:
		return false
	}
	first := Signature(children[0])
	for _, child := range children[1:] {
		if Signature(child) != first {
			return false
		}
	}
	return true
}

func (c *Classifier) buildRepeater(n *layout.Node, children []IRNode) IRNode {
	return &Repeater{
		Base:     makeBase(n),
		Template: children[0],
		Count:    len(children),
		Children: children,
	}
}

// matchCard accepts a container with card framing: rounded corners plus a
// shadow or visible border.
func (c *Classifier) matchCard(n *layout.Node, children []IRNode) bool {
	if len(children) == 0 {
		return false
	}
	radii := n.Source.ResolvedCornerRadii()
	rounded := radii[0] > 0 || radii[1] > 0 || radii[2] > 0 || radii[3] > 0
	if !rounded {
		return false
	}

	for _, e := range n.Source.Effects {
		if e.IsVisible() && (e.Type == model.EffectDropShadow || e.Type == model.EffectInnerShadow) {
			return true
		}
	}
	for _, s := range n.Source.Strokes {
		if s.IsVisible() {
			return true
		}
	}
	return false
}

func (c *Classifier) buildCard(n *layout.Node, children []IRNode) IRNode {
	return &Card{Base: makeBase(n), Children: children}
}

// Signature computes the structural fingerprint of an IR subtree: the
// variant kind plus the signatures of its children, independent of text
// content. Two subtrees with equal signatures repeat the same structure.
func Signature(n IRNode) string {
	var sb strings.Builder
	writeSignature(&sb, n)
	return sb.String()
}

func writeSignature(sb *strings.Builder, n IRNode) {
	sb.WriteString(n.Kind().String())
	children := ChildrenOf(n)
	if len(children) == 0 {
		return
	}
	sb.WriteByte('(')
	for i, child := range children {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeSignature(sb, child)
	}
	sb.WriteByte(')')
}
