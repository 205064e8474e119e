package layout

import (
	"math"
	"strconv"

	"github.com/tsawler/forma/model"
)

// MapConstraints maps a node's positioning constraints into edge offsets
// relative to its immediate parent's bounds. It applies only to nodes placed
// outside a row/column flow; the caller decides when that is the case.
//
// LEFT/TOP pin the near edge, RIGHT/BOTTOM pin the far edge, LEFT_RIGHT and
// TOP_BOTTOM pin both and let the extent float, and SCALE expresses offset
// and extent as percentages of the parent. A missing constraints record
// behaves as LEFT/TOP.
func MapConstraints(n *model.NormalizedNode, parent model.BBox) *Position {
	if !parent.IsValid() {
		return nil
	}

	box := n.BBox
	pos := &Position{}

	horizontal := model.ConstraintLeft
	vertical := model.ConstraintTop
	if n.Constraints != nil {
		if n.Constraints.Horizontal != "" {
			horizontal = n.Constraints.Horizontal
		}
		if n.Constraints.Vertical != "" {
			vertical = n.Constraints.Vertical
		}
	}

	left := box.Left() - parent.Left()
	right := parent.Right() - box.Right()
	top := box.Top() - parent.Top()
	bottom := parent.Bottom() - box.Bottom()

	switch horizontal {
	case model.ConstraintRight:
		pos.Right = px(right)
		pos.Width = px(box.Width)
	case model.ConstraintLeftRight:
		pos.Left = px(left)
		pos.Right = px(right)
		pos.Width = "auto"
	case model.ConstraintScale:
		pos.Left = percent(left, parent.Width)
		pos.Width = percent(box.Width, parent.Width)
	default: // LEFT and CENTER keep the left offset
		pos.Left = px(left)
		pos.Width = px(box.Width)
	}

	switch vertical {
	case model.ConstraintBottom:
		pos.Bottom = px(bottom)
		pos.Height = px(box.Height)
	case model.ConstraintTopBottom:
		pos.Top = px(top)
		pos.Bottom = px(bottom)
		pos.Height = "auto"
	case model.ConstraintScale:
		pos.Top = percent(top, parent.Height)
		pos.Height = percent(box.Height, parent.Height)
	default: // TOP and CENTER keep the top offset
		pos.Top = px(top)
		pos.Height = px(box.Height)
	}

	return pos
}

// px formats a rounded pixel amount.
func px(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64) + "px"
}

// percent formats offset/extent as a percentage of the parent extent,
// trimmed to at most two decimals.
func percent(v, extent float64) string {
	if extent == 0 {
		return "0%"
	}
	ratio := v / extent * 100
	return strconv.FormatFloat(math.Round(ratio*100)/100, 'f', -1, 64) + "%"
}
