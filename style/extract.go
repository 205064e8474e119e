package style

import (
	"github.com/tsawler/forma/layout"
	"github.com/tsawler/forma/semantic"
)

// Extract builds the styles bundle for an IR tree. Every node's style is
// registered under a name preferred from the node's layer name (falling
// back to its variant kind) and the node's StyleRef is rewritten to
// whatever name deduplication resolved. Buttons additionally register a
// label style and, when present, an icon style. The walk is depth-first in
// child order, which fixes collision-suffix assignment across runs.
func Extract(root semantic.IRNode, layoutRoot *layout.Node) *Bundle {
	reg := NewRegistry()
	extractInto(reg, root)
	return &Bundle{
		Styles: reg,
		Tokens: CollectTokens(reg, layoutRoot),
	}
}

func extractInto(reg *Registry, n semantic.IRNode) {
	if n == nil {
		return
	}

	base := n.Common()
	props := FromNode(base.Source, base.Layout)
	base.StyleRef = reg.Register(preferredName(n), props)

	if btn, ok := n.(*semantic.Button); ok {
		registerButtonParts(reg, btn)
	}

	for _, child := range semantic.ChildrenOf(n) {
		extractInto(reg, child)
	}
}

// registerButtonParts registers the secondary text/icon style pair a button
// carries for its label and icon children.
func registerButtonParts(reg *Registry, btn *semantic.Button) {
	base := preferredName(btn)
	for _, child := range btn.Children {
		childBase := child.Common()
		props := FromNode(childBase.Source, childBase.Layout)
		switch child.Kind() {
		case semantic.KindText:
			btn.LabelStyleRef = reg.Register(base+"Label", props)
		case semantic.KindIcon:
			btn.IconStyleRef = reg.Register(base+"Icon", props)
		}
	}
}

// preferredName derives the name a node would like its style registered
// under: the camelCase layer name, or the variant kind for unnamed layers.
func preferredName(n semantic.IRNode) string {
	if name := semantic.CamelCase(n.Common().Name); name != "" {
		return name
	}
	return n.Kind().String()
}
