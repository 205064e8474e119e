package layout

import (
	"github.com/tsawler/forma/model"
)

// Engine annotates a normalized tree with resolved layout information.
type Engine struct {
	config Config
}

// NewEngine creates an engine with default heuristic thresholds.
func NewEngine() *Engine {
	return &Engine{config: DefaultConfig()}
}

// NewEngineWithConfig creates an engine with custom thresholds.
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// Annotate resolves layout for the node and then, top-down, for its
// children. The node's own type must be known before any child is visited
// because child sizing resolves against the parent axis, so the parent
// context parameter is mandatory; pass RootContext for the tree root.
func (e *Engine) Annotate(n *model.NormalizedNode, parent ParentContext) *Node {
	if n == nil {
		return nil
	}

	layoutType := DetectType(n, e.config)
	main, cross := Alignment(n, layoutType, e.config)

	meta := Meta{
		Type:       layoutType,
		Gap:        Gap(n, layoutType),
		Padding:    InferPadding(n),
		MainAlign:  main,
		CrossAlign: cross,
		Sizing:     ResolveSizing(n, parent),
	}
	if n.ClipsContent {
		meta.Overflow = "hidden"
	}

	// A node is positioned by constraints when it opted out of its parent's
	// flow or when the parent does not lay children out along an axis.
	if parent.Present && (n.IsAbsolutePositioned() || !parent.Type.IsFlow()) {
		meta.Position = MapConstraints(n, parent.Bounds)
	}

	node := &Node{Source: n, Meta: meta}
	childContext := ParentContext{Type: layoutType, Bounds: n.BBox, Present: true}
	for _, child := range n.Children {
		node.Children = append(node.Children, e.Annotate(child, childContext))
	}
	return node
}
