package layout

import (
	"sort"

	"github.com/tsawler/forma/model"
)

// Config holds the positional-heuristic thresholds. The defaults are
// hand-tuned against real design exports; treat them as calibration targets
// rather than derived values.
type Config struct {
	// AlignTolerance is the slack allowed when comparing child edges for
	// row/column ordering, in px.
	AlignTolerance float64

	// ExtentSlack is the extra cross-axis spread allowed on top of
	// AlignTolerance before a row/column reading is rejected, in px.
	ExtentSlack float64

	// CenterTolerance is how close the leading and trailing offsets must be
	// for inferred center alignment, in px. It also bounds the trailing
	// offset for inferred end alignment.
	CenterTolerance float64

	// EndLeadingMin is the minimum leading offset for inferred end
	// alignment, in px.
	EndLeadingMin float64

	// StackOverlapRatio is the fraction of the smaller child's area two
	// children must share before the container reads as a stack.
	StackOverlapRatio float64
}

// DefaultConfig returns the default heuristic thresholds.
func DefaultConfig() Config {
	return Config{
		AlignTolerance:    2,
		ExtentSlack:       20,
		CenterTolerance:   10,
		EndLeadingMin:     20,
		StackOverlapRatio: 0.5,
	}
}

// DetectType resolves the layout type of a container. Explicit auto-layout
// metadata wins; otherwise positional heuristics run in priority order
// (stack before row/column), and absolute is the fallback when nothing
// matches.
func DetectType(n *model.NormalizedNode, config Config) Type {
	if n.HasAutoLayout() {
		if n.LayoutMode == model.LayoutModeHorizontal {
			return TypeRow
		}
		return TypeColumn
	}

	children := flowChildren(n)
	switch len(children) {
	case 0:
		return TypeAbsolute
	case 1:
		return TypeColumn
	}

	if isStackByPosition(children, config) {
		return TypeStack
	}
	if isRowByPosition(children, config) {
		return TypeRow
	}
	if isColumnByPosition(children, config) {
		return TypeColumn
	}
	return TypeAbsolute
}

// flowChildren returns the children that participate in flow layout,
// skipping those that opted out with absolute positioning.
func flowChildren(n *model.NormalizedNode) []*model.NormalizedNode {
	children := make([]*model.NormalizedNode, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsAbsolutePositioned() {
			continue
		}
		children = append(children, c)
	}
	return children
}

// isStackByPosition reports whether any pair of children overlaps by more
// than the configured share of the smaller child's area.
func isStackByPosition(children []*model.NormalizedNode, config Config) bool {
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			if children[i].BBox.OverlapRatio(children[j].BBox) > config.StackOverlapRatio {
				return true
			}
		}
	}
	return false
}

// isRowByPosition reports whether the children read as a horizontal run:
// their tops spread no more than the tolerance budget, and sorted by X each
// child starts no earlier than the previous child's right edge minus the
// alignment tolerance.
func isRowByPosition(children []*model.NormalizedNode, config Config) bool {
	minTop, maxTop := children[0].BBox.Top(), children[0].BBox.Top()
	for _, c := range children[1:] {
		top := c.BBox.Top()
		if top < minTop {
			minTop = top
		}
		if top > maxTop {
			maxTop = top
		}
	}
	if maxTop-minTop > config.AlignTolerance+config.ExtentSlack {
		return false
	}

	sorted := sortedByX(children)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].BBox.Left() < sorted[i-1].BBox.Right()-config.AlignTolerance {
			return false
		}
	}
	return true
}

// isColumnByPosition is the symmetric check on X spread and Y ordering.
func isColumnByPosition(children []*model.NormalizedNode, config Config) bool {
	minLeft, maxLeft := children[0].BBox.Left(), children[0].BBox.Left()
	for _, c := range children[1:] {
		left := c.BBox.Left()
		if left < minLeft {
			minLeft = left
		}
		if left > maxLeft {
			maxLeft = left
		}
	}
	if maxLeft-minLeft > config.AlignTolerance+config.ExtentSlack {
		return false
	}

	sorted := sortedByY(children)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].BBox.Top() < sorted[i-1].BBox.Bottom()-config.AlignTolerance {
			return false
		}
	}
	return true
}

func sortedByX(children []*model.NormalizedNode) []*model.NormalizedNode {
	sorted := make([]*model.NormalizedNode, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})
	return sorted
}

func sortedByY(children []*model.NormalizedNode) []*model.NormalizedNode {
	sorted := make([]*model.NormalizedNode, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Top() < sorted[j].BBox.Top()
	})
	return sorted
}
