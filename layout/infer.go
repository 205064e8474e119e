package layout

import (
	"math"

	"github.com/tsawler/forma/model"
)

// Gap resolves the gap between children along the container's main axis.
// Explicit auto-layout spacing wins; otherwise the gap is the rounded mean
// of the positive gaps between consecutive children sorted along the axis,
// or 0 when there are fewer than two children or no positive gap at all.
func Gap(n *model.NormalizedNode, layoutType Type) float64 {
	if n.HasAutoLayout() {
		return n.ItemSpacing
	}

	children := flowChildren(n)
	if len(children) < 2 {
		return 0
	}

	switch layoutType {
	case TypeRow:
		return RowGap(children)
	case TypeColumn:
		return ColumnGap(children)
	default:
		return 0
	}
}

// RowGap returns the rounded mean of the positive horizontal gaps between
// consecutive children sorted by X.
func RowGap(children []*model.NormalizedNode) float64 {
	sorted := sortedByX(children)
	return meanPositiveGap(sorted, func(prev, next *model.NormalizedNode) float64 {
		return next.BBox.Left() - prev.BBox.Right()
	})
}

// ColumnGap returns the rounded mean of the positive vertical gaps between
// consecutive children sorted by Y.
func ColumnGap(children []*model.NormalizedNode) float64 {
	sorted := sortedByY(children)
	return meanPositiveGap(sorted, func(prev, next *model.NormalizedNode) float64 {
		return next.BBox.Top() - prev.BBox.Bottom()
	})
}

func meanPositiveGap(sorted []*model.NormalizedNode, delta func(prev, next *model.NormalizedNode) float64) float64 {
	var sum float64
	var count int
	for i := 1; i < len(sorted); i++ {
		if d := delta(sorted[i-1], sorted[i]); d > 0 {
			sum += d
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum / float64(count))
}

// InferPadding resolves the container's padding. Explicit auto-layout
// padding wins; otherwise each edge is the rounded distance between the
// container's edge and the union of the children's extents, clamped at 0.
func InferPadding(n *model.NormalizedNode) Insets {
	if n.HasAutoLayout() {
		return Insets{
			Top:    n.PaddingTop,
			Right:  n.PaddingRight,
			Bottom: n.PaddingBottom,
			Left:   n.PaddingLeft,
		}
	}

	children := flowChildren(n)
	if len(children) == 0 {
		return Insets{}
	}

	union := children[0].BBox
	for _, c := range children[1:] {
		union = union.Union(c.BBox)
	}

	box := n.BBox
	return Insets{
		Top:    clampRound(union.Top() - box.Top()),
		Left:   clampRound(union.Left() - box.Left()),
		Right:  clampRound(box.Right() - union.Right()),
		Bottom: clampRound(box.Bottom() - union.Bottom()),
	}
}

func clampRound(v float64) float64 {
	return math.Max(0, math.Round(v))
}

// explicitAlign maps auto-layout alignment metadata onto resolved values.
// Baseline and stretch only occur on the cross axis.
var explicitAlign = map[model.AxisAlign]Align{
	model.AlignMin:          AlignStart,
	model.AlignMax:          AlignEnd,
	model.AlignCenter:       AlignCenter,
	model.AlignSpaceBetween: AlignSpaceBetween,
	model.AlignSpaceAround:  AlignSpaceAround,
	model.AlignBaseline:     AlignBaseline,
	model.AlignStretch:      AlignStretch,
}

// Alignment resolves the main- and cross-axis alignment of a container.
// Explicit metadata is mapped through a fixed table; otherwise both axes are
// inferred from the children's leading and trailing offsets.
func Alignment(n *model.NormalizedNode, layoutType Type, config Config) (main, cross Align) {
	main, cross = AlignStart, AlignStart

	if n.HasAutoLayout() {
		if mapped, ok := explicitAlign[n.PrimaryAxisAlignItems]; ok {
			main = mapped
		}
		if mapped, ok := explicitAlign[n.CounterAxisAlignItems]; ok {
			cross = mapped
		}
		return main, cross
	}

	children := flowChildren(n)
	if len(children) == 0 || !layoutType.IsFlow() {
		return main, cross
	}

	union := children[0].BBox
	for _, c := range children[1:] {
		union = union.Union(c.BBox)
	}

	box := n.BBox
	horizontal := inferAxisAlign(union.Left()-box.Left(), box.Right()-union.Right(), config)
	vertical := inferAxisAlign(union.Top()-box.Top(), box.Bottom()-union.Bottom(), config)

	if layoutType == TypeRow {
		return horizontal, vertical
	}
	return vertical, horizontal
}

// inferAxisAlign compares how much space the children leave before and after
// themselves: roughly equal offsets read as centered, near-zero trailing
// space with a real leading offset reads as end-aligned.
func inferAxisAlign(leading, trailing float64, config Config) Align {
	if math.Abs(leading-trailing) <= config.CenterTolerance {
		return AlignCenter
	}
	if trailing < config.CenterTolerance && leading > config.EndLeadingMin {
		return AlignEnd
	}
	return AlignStart
}
