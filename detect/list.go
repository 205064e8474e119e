package detect

import (
	"github.com/tsawler/forma/layout"
	"github.com/tsawler/forma/semantic"
)

// ListHint reports a container whose children repeat one structural
// fingerprint, making it a candidate for list-style generation.
type ListHint struct {
	ContainerID string   `json:"containerId"`
	ItemIDs     []string `json:"itemIds"`
	Orientation string   `json:"orientation"` // "horizontal" or "vertical"
	ItemType    string   `json:"itemType"`    // semantic kind of the repeated item
}

// ListConfig tunes list detection.
type ListConfig struct {
	// MinItems is the smallest homogeneous run reported as a list.
	MinItems int
}

// DefaultListConfig returns the default list thresholds.
func DefaultListConfig() ListConfig {
	return ListConfig{MinItems: 2}
}

// ListDetector finds homogeneous containers.
type ListDetector struct {
	config ListConfig
}

// NewListDetector creates a detector with default configuration.
func NewListDetector() *ListDetector {
	return &ListDetector{config: DefaultListConfig()}
}

// NewListDetectorWithConfig creates a detector with custom configuration.
func NewListDetectorWithConfig(config ListConfig) *ListDetector {
	return &ListDetector{config: config}
}

// Detect walks the tree and reports every container whose children all
// share one structural fingerprint and number at least MinItems.
// Orientation follows the container's resolved layout type.
func (d *ListDetector) Detect(root semantic.IRNode) []ListHint {
	hints := []ListHint{}
	semantic.Walk(root, func(n semantic.IRNode) bool {
		if hint, ok := d.inspect(n); ok {
			hints = append(hints, hint)
		}
		return true
	})
	return hints
}

func (d *ListDetector) inspect(n semantic.IRNode) (ListHint, bool) {
	children := semantic.ChildrenOf(n)
	if len(children) < d.config.MinItems {
		return ListHint{}, false
	}

	// A run of bare leaves (lines of text, icons in a row) is layout, not a
	// list; the repeated item must be a block of its own.
	switch children[0].Kind() {
	case semantic.KindText, semantic.KindIcon, semantic.KindImage:
		return ListHint{}, false
	}

	first := semantic.Signature(children[0])
	for _, child := range children[1:] {
		if semantic.Signature(child) != first {
			return ListHint{}, false
		}
	}

	hint := ListHint{
		ContainerID: n.Common().ID,
		Orientation: orientationOf(n),
		ItemType:    children[0].Kind().String(),
	}
	for _, child := range children {
		hint.ItemIDs = append(hint.ItemIDs, child.Common().ID)
	}
	return hint, true
}

func orientationOf(n semantic.IRNode) string {
	if meta := n.Common().Layout; meta != nil && meta.Type == layout.TypeRow {
		return "horizontal"
	}
	return "vertical"
}
