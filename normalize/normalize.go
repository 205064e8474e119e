package normalize

import (
	"strings"

	"github.com/tsawler/forma/model"
)

// Options configures the filter. The zero value applies only the visibility
// and OS-chrome rules.
type Options struct {
	// IgnorePatterns are wildcard patterns (`*` matches any run of
	// characters, case-insensitive, anchored) tested against node names.
	IgnorePatterns []string

	// ExcludeIDs are node IDs removed regardless of any other rule,
	// typically produced by the safe-area detector.
	ExcludeIDs map[string]bool
}

// DefaultIgnorePatterns matches annotation and guide layers that designers
// leave in exports but that carry no renderable content.
func DefaultIgnorePatterns() []string {
	return []string{
		"annotation*",
		"*annotation",
		"guide*",
		"*guide",
		"redline*",
		"*measurement*",
		"*spec*",
		"_*",
	}
}

// chromePairs are case-insensitive substring pairs that identify OS chrome
// layers. A node is chrome when its name contains both members of a pair.
var chromePairs = [][2]string{
	{"status", "bar"},
	{"home", "indicator"},
	{"navigation", "bar"},
	{"nav", "bar"},
	{"system", "bar"},
}

// Filter prunes the raw tree into a NormalizedNode tree. A node is dropped,
// together with its entire subtree, when it is explicitly excluded by ID,
// hidden, recognized as OS chrome, or name-matched by an ignore pattern.
// Returns nil when the root itself is filtered; the pipeline substitutes an
// empty container placeholder in that case.
func Filter(root *model.RawNode, opts Options) *model.NormalizedNode {
	if root == nil {
		return nil
	}
	f := &filter{
		patterns: compilePatterns(opts.IgnorePatterns),
		excluded: opts.ExcludeIDs,
	}
	return f.walk(root)
}

type filter struct {
	patterns []pattern
	excluded map[string]bool
}

func (f *filter) walk(n *model.RawNode) *model.NormalizedNode {
	if f.drops(n) {
		return nil
	}

	out := copyNode(n)
	for _, child := range n.Children {
		if kept := f.walk(child); kept != nil {
			out.Children = append(out.Children, kept)
		}
	}
	return out
}

// drops applies the filter rules in priority order: explicit exclusion,
// visibility, OS chrome, ignore patterns.
func (f *filter) drops(n *model.RawNode) bool {
	if f.excluded[n.ID] {
		return true
	}
	if !n.IsVisible() {
		return true
	}
	if isOSChrome(n.Name) {
		return true
	}
	for _, p := range f.patterns {
		if p.matches(n.Name) {
			return true
		}
	}
	return false
}

// isOSChrome reports whether a node name identifies platform chrome.
func isOSChrome(name string) bool {
	lower := strings.ToLower(name)
	for _, pair := range chromePairs {
		if strings.Contains(lower, pair[0]) && strings.Contains(lower, pair[1]) {
			return true
		}
	}
	return false
}

// copyNode copies the visual and layout fields of a raw node into normalized
// form. Children are attached by the caller.
func copyNode(n *model.RawNode) *model.NormalizedNode {
	return &model.NormalizedNode{
		ID:                    n.ID,
		Name:                  n.Name,
		Type:                  n.Type,
		BBox:                  n.Bounds(),
		Fills:                 n.Fills,
		Strokes:               n.Strokes,
		StrokeWeight:          n.StrokeWeight,
		Effects:               n.Effects,
		Opacity:               n.Opacity,
		CornerRadius:          n.CornerRadius,
		CornerRadii:           n.CornerRadii,
		Characters:            n.Characters,
		Style:                 n.Style,
		LayoutMode:            n.LayoutMode,
		ItemSpacing:           n.ItemSpacing,
		PaddingLeft:           n.PaddingLeft,
		PaddingRight:          n.PaddingRight,
		PaddingTop:            n.PaddingTop,
		PaddingBottom:         n.PaddingBottom,
		PrimaryAxisSizingMode: n.PrimaryAxisSizingMode,
		CounterAxisSizingMode: n.CounterAxisSizingMode,
		PrimaryAxisAlignItems: n.PrimaryAxisAlignItems,
		CounterAxisAlignItems: n.CounterAxisAlignItems,
		LayoutGrow:            n.LayoutGrow,
		LayoutAlign:           n.LayoutAlign,
		LayoutPositioning:     n.LayoutPositioning,
		ClipsContent:          n.ClipsContent,
		Constraints:           n.Constraints,
		ComponentID:           n.ComponentID,
	}
}

// Placeholder returns the empty-container substitute used when the root
// itself was filtered away.
func Placeholder(bounds model.BBox) *model.NormalizedNode {
	return &model.NormalizedNode{
		ID:   "placeholder:root",
		Name: "Empty",
		Type: model.NodeFrame,
		BBox: bounds,
	}
}
