package model

import (
	"fmt"
	"math"
)

// PaintType identifies the kind of fill or stroke a paint describes.
type PaintType string

const (
	PaintSolid          PaintType = "SOLID"
	PaintImage          PaintType = "IMAGE"
	PaintGradientLinear PaintType = "GRADIENT_LINEAR"
	PaintGradientRadial PaintType = "GRADIENT_RADIAL"
)

// Color is a normalized RGBA color as design exports encode it: each channel
// in the range 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Hex returns the color as a #rrggbb string, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// RGBA returns the color as a CSS rgba() string when alpha is below 1,
// otherwise the hex form.
func (c Color) RGBA() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		channelByte(c.R), channelByte(c.G), channelByte(c.B), trimFloat(c.A))
}

func channelByte(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	// Drop a trailing zero so 0.50 renders as 0.5
	if s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}

// GradientStop is a single stop in a gradient paint.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Paint describes a single fill or stroke layer.
type Paint struct {
	Type          PaintType      `json:"type"`
	Visible       *bool          `json:"visible,omitempty"`
	Opacity       *float64       `json:"opacity,omitempty"`
	Color         *Color         `json:"color,omitempty"`
	GradientStops []GradientStop `json:"gradientStops,omitempty"`
	ImageRef      string         `json:"imageRef,omitempty"`
}

// IsVisible reports whether the paint participates in rendering. Exports
// omit the flag for visible paints.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// EffectiveAlpha returns the paint's solid-color alpha multiplied by its own
// opacity. Returns 0 for non-solid or invisible paints.
func (p Paint) EffectiveAlpha() float64 {
	if !p.IsVisible() || p.Type != PaintSolid || p.Color == nil {
		return 0
	}
	alpha := p.Color.A
	if p.Opacity != nil {
		alpha *= *p.Opacity
	}
	return alpha
}

// EffectType identifies the kind of visual effect applied to a node.
type EffectType string

const (
	EffectDropShadow     EffectType = "DROP_SHADOW"
	EffectInnerShadow    EffectType = "INNER_SHADOW"
	EffectLayerBlur      EffectType = "LAYER_BLUR"
	EffectBackgroundBlur EffectType = "BACKGROUND_BLUR"
)

// Effect describes a shadow or blur attached to a node.
type Effect struct {
	Type    EffectType `json:"type"`
	Visible *bool      `json:"visible,omitempty"`
	Color   *Color     `json:"color,omitempty"`
	Offset  *Point     `json:"offset,omitempty"`
	Radius  float64    `json:"radius"`
	Spread  float64    `json:"spread,omitempty"`
}

// IsVisible reports whether the effect participates in rendering.
func (e Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}
