package style

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/forma/layout"
	"github.com/tsawler/forma/model"
)

// Properties is one extracted style: a flat set of CSS-like key/value
// pairs. Equality of content, not of name, drives deduplication.
type Properties map[string]string

// Clone returns a copy of the property set.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// SortedKeys returns the property keys in lexical order.
func (p Properties) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromNode builds the property set for a node from its visual properties
// and resolved layout. Missing fields contribute nothing; a node with no
// styling yields an empty set.
func FromNode(src *model.NormalizedNode, meta *layout.Meta) Properties {
	p := Properties{}
	if src == nil {
		return p
	}

	applyFills(p, src)
	applyStrokes(p, src)
	applyEffects(p, src.Effects)
	applyCorners(p, src)
	applyTypography(p, src)

	if opacity := src.EffectiveOpacity(); opacity < 1 {
		p["opacity"] = formatNumber(opacity)
	}
	if meta != nil {
		applyLayout(p, meta)
	}
	return p
}

func applyFills(p Properties, src *model.NormalizedNode) {
	for _, paint := range src.Fills {
		if !paint.IsVisible() {
			continue
		}
		switch paint.Type {
		case model.PaintSolid:
			if paint.Color == nil {
				continue
			}
			c := *paint.Color
			if paint.Opacity != nil {
				c.A *= *paint.Opacity
			}
			// Text nodes color their glyphs, everything else its background.
			if src.Type == model.NodeText {
				p["color"] = c.RGBA()
			} else {
				p["background"] = c.RGBA()
			}
			return
		case model.PaintGradientLinear, model.PaintGradientRadial:
			if grad := gradientValue(paint); grad != "" {
				p["background"] = grad
			}
			return
		case model.PaintImage:
			// Image fills become asset references, not style values.
			return
		}
	}
}

func gradientValue(paint model.Paint) string {
	if len(paint.GradientStops) == 0 {
		return ""
	}
	kind := "linear-gradient"
	if paint.Type == model.PaintGradientRadial {
		kind = "radial-gradient"
	}
	parts := make([]string, 0, len(paint.GradientStops))
	for _, stop := range paint.GradientStops {
		parts = append(parts, fmt.Sprintf("%s %s%%", stop.Color.RGBA(), formatNumber(stop.Position*100)))
	}
	return fmt.Sprintf("%s(%s)", kind, strings.Join(parts, ", "))
}

func applyStrokes(p Properties, src *model.NormalizedNode) {
	for _, paint := range src.Strokes {
		if !paint.IsVisible() || paint.Type != model.PaintSolid || paint.Color == nil {
			continue
		}
		weight := src.StrokeWeight
		if weight == 0 {
			weight = 1
		}
		p["borderWidth"] = pxValue(weight)
		p["borderColor"] = paint.Color.RGBA()
		p["borderStyle"] = "solid"
		return
	}
}

func applyEffects(p Properties, effects []model.Effect) {
	var shadows []string
	for _, e := range effects {
		if !e.IsVisible() {
			continue
		}
		switch e.Type {
		case model.EffectDropShadow:
			shadows = append(shadows, shadowValue(e, false))
		case model.EffectInnerShadow:
			shadows = append(shadows, shadowValue(e, true))
		case model.EffectLayerBlur:
			p["filter"] = fmt.Sprintf("blur(%s)", pxValue(e.Radius))
		case model.EffectBackgroundBlur:
			p["backdropFilter"] = fmt.Sprintf("blur(%s)", pxValue(e.Radius))
		}
	}
	if len(shadows) > 0 {
		p["boxShadow"] = strings.Join(shadows, ", ")
	}
}

func shadowValue(e model.Effect, inset bool) string {
	var offset model.Point
	if e.Offset != nil {
		offset = *e.Offset
	}
	color := "rgba(0, 0, 0, 0.25)"
	if e.Color != nil {
		color = e.Color.RGBA()
	}
	value := fmt.Sprintf("%s %s %s", pxValue(offset.X), pxValue(offset.Y), pxValue(e.Radius))
	if e.Spread != 0 {
		value += " " + pxValue(e.Spread)
	}
	value += " " + color
	if inset {
		value = "inset " + value
	}
	return value
}

func applyCorners(p Properties, src *model.NormalizedNode) {
	radii := src.ResolvedCornerRadii()
	if radii == [4]float64{} {
		return
	}
	if radii[0] == radii[1] && radii[1] == radii[2] && radii[2] == radii[3] {
		p["borderRadius"] = pxValue(radii[0])
		return
	}
	p["borderRadius"] = fmt.Sprintf("%s %s %s %s",
		pxValue(radii[0]), pxValue(radii[1]), pxValue(radii[2]), pxValue(radii[3]))
}

func applyTypography(p Properties, src *model.NormalizedNode) {
	t := src.Style
	if t == nil {
		return
	}
	if t.FontFamily != "" {
		p["fontFamily"] = t.FontFamily
	}
	if t.FontSize > 0 {
		p["fontSize"] = pxValue(t.FontSize)
	}
	if t.FontWeight > 0 {
		p["fontWeight"] = formatNumber(t.FontWeight)
	}
	if t.LineHeightPx > 0 {
		p["lineHeight"] = pxValue(t.LineHeightPx)
	}
	if t.LetterSpacing != 0 {
		p["letterSpacing"] = pxValue(t.LetterSpacing)
	}
	if t.TextAlign != "" && t.TextAlign != "LEFT" {
		p["textAlign"] = strings.ToLower(t.TextAlign)
	}
	switch t.TextCase {
	case "UPPER":
		p["textTransform"] = "uppercase"
	case "LOWER":
		p["textTransform"] = "lowercase"
	case "TITLE":
		p["textTransform"] = "capitalize"
	}
}

func applyLayout(p Properties, meta *layout.Meta) {
	switch meta.Type {
	case layout.TypeRow, layout.TypeColumn:
		p["display"] = "flex"
		if meta.Type == layout.TypeColumn {
			p["flexDirection"] = "column"
		}
		if meta.Gap > 0 {
			p["gap"] = pxValue(meta.Gap)
		}
		if meta.MainAlign != layout.AlignStart {
			p["justifyContent"] = string(meta.MainAlign)
		}
		if meta.CrossAlign != layout.AlignStart {
			p["alignItems"] = string(meta.CrossAlign)
		}
	case layout.TypeStack:
		p["position"] = "relative"
	}

	if !meta.Padding.IsZero() {
		p["padding"] = paddingValue(meta.Padding)
	}
	if meta.Overflow != "" {
		p["overflow"] = meta.Overflow
	}

	if pos := meta.Position; pos != nil {
		p["position"] = "absolute"
		setIfPresent(p, "left", pos.Left)
		setIfPresent(p, "right", pos.Right)
		setIfPresent(p, "top", pos.Top)
		setIfPresent(p, "bottom", pos.Bottom)
		setIfPresent(p, "width", pos.Width)
		setIfPresent(p, "height", pos.Height)
	}
}

func setIfPresent(p Properties, key, value string) {
	if value != "" {
		p[key] = value
	}
}

func paddingValue(in layout.Insets) string {
	if in.Top == in.Bottom && in.Left == in.Right {
		if in.Top == in.Left {
			return pxValue(in.Top)
		}
		return pxValue(in.Top) + " " + pxValue(in.Left)
	}
	return fmt.Sprintf("%s %s %s %s",
		pxValue(in.Top), pxValue(in.Right), pxValue(in.Bottom), pxValue(in.Left))
}

func pxValue(v float64) string {
	return formatNumber(v) + "px"
}

func formatNumber(v float64) string {
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
