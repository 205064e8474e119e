package semantic

import (
	"github.com/tsawler/forma/layout"
	"github.com/tsawler/forma/model"
)

// Kind identifies the semantic variant of an IR node.
type Kind int

const (
	KindContainer Kind = iota
	KindText
	KindImage
	KindIcon
	KindButton
	KindCard
	KindRepeater
	KindComponent
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindIcon:
		return "icon"
	case KindButton:
		return "button"
	case KindCard:
		return "card"
	case KindRepeater:
		return "repeater"
	case KindComponent:
		return "component"
	default:
		return "container"
	}
}

// Base carries the fields shared by every IR variant. StyleRef is the key
// under which the node's extracted style is registered; the style extractor
// rewrites it when deduplication resolves a collision, and it always
// resolves in the co-produced styles bundle.
type Base struct {
	ID       string
	Name     string
	StyleRef string

	Source *model.NormalizedNode
	Layout *layout.Meta
}

// Common returns the shared fields of the node.
func (b *Base) Common() *Base { return b }

func (b *Base) sealed() {}

// IRNode is the closed union of semantic variants. Consumers switch on the
// concrete type (or Kind) and must handle every variant; the unexported
// method keeps the union closed to this package.
type IRNode interface {
	Kind() Kind
	Common() *Base
	sealed()
}

// Container is a generic grouping node with no more specific reading.
type Container struct {
	Base
	Children []IRNode
}

// Kind returns KindContainer.
func (*Container) Kind() Kind { return KindContainer }

// Text is a pure text leaf. Field names the recognized content pattern
// ("price", "phone", ...), empty when none matched.
type Text struct {
	Base
	Content    string
	Field      string
	Typography *model.Typography
}

// Kind returns KindText.
func (*Text) Kind() Kind { return KindText }

// Image is a node rendered by an image fill with no children of its own.
type Image struct {
	Base
	ImageRef string
}

// Kind returns KindImage.
func (*Image) Kind() Kind { return KindImage }

// Icon is a small vector cluster.
type Icon struct {
	Base
}

// Kind returns KindIcon.
func (*Icon) Kind() Kind { return KindIcon }

// Button is an interactive container with a label and optionally an icon.
// LabelStyleRef and IconStyleRef are the secondary style registrations the
// style extractor attaches for the button's text and icon children.
type Button struct {
	Base
	Label         string
	HasIcon       bool
	LabelStyleRef string
	IconStyleRef  string
	Children      []IRNode
}

// Kind returns KindButton.
func (*Button) Kind() Kind { return KindButton }

// Card is a container with card-like visual framing: rounded corners plus a
// shadow or border.
type Card struct {
	Base
	Children []IRNode
}

// Kind returns KindCard.
func (*Card) Kind() Kind { return KindCard }

// Repeater is a container whose children repeat one structural pattern.
// Template is the first child, retained as the homogeneous item template;
// Children keeps all instances for consumers that need them.
type Repeater struct {
	Base
	Template IRNode
	Count    int
	Children []IRNode
}

// Kind returns KindRepeater.
func (*Repeater) Kind() Kind { return KindRepeater }

// Component is a named component definition, instance, or set.
type Component struct {
	Base
	ComponentName string
	ComponentID   string
	IsSet         bool
	Children      []IRNode
}

// Kind returns KindComponent.
func (*Component) Kind() Kind { return KindComponent }

// ChildrenOf returns the node's children. The switch is exhaustive over the
// union; adding a variant forces an audit here.
func ChildrenOf(n IRNode) []IRNode {
	switch v := n.(type) {
	case *Container:
		return v.Children
	case *Text:
		return nil
	case *Image:
		return nil
	case *Icon:
		return nil
	case *Button:
		return v.Children
	case *Card:
		return v.Children
	case *Repeater:
		return v.Children
	case *Component:
		return v.Children
	}
	return nil
}

// Walk visits the node and its descendants depth-first in child order,
// stopping a branch when fn returns false.
func Walk(n IRNode, fn func(IRNode) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range ChildrenOf(n) {
		Walk(child, fn)
	}
}
