package detect

import (
	"strings"

	"github.com/tsawler/forma/model"
	"github.com/tsawler/forma/semantic"
)

// ModalResult reports a modal overlay found among a screen's direct
// children. When HasModalOverlay is true the pipeline substitutes the
// content subtree, identified by ContentID, as the effective generation
// root.
type ModalResult struct {
	HasModalOverlay bool   `json:"hasModalOverlay"`
	ModalType       string `json:"modalType,omitempty"` // "bottom-sheet", "top-sheet", or "dialog"
	ContentID       string `json:"contentId,omitempty"`
}

// ModalConfig tunes modal detection.
type ModalConfig struct {
	// MinScrimAlpha and MaxScrimAlpha bound the effective alpha of a
	// semi-transparent backdrop. A fully opaque fill is just a background;
	// a nearly invisible one is decoration.
	MinScrimAlpha float64
	MaxScrimAlpha float64

	// CoverTolerance is the slack, in px, allowed when testing whether the
	// scrim covers the whole screen.
	CoverTolerance float64

	// EdgeTolerance is the slack, in px, for the sheet's edge alignment.
	EdgeTolerance float64
}

// DefaultModalConfig returns the default modal thresholds.
func DefaultModalConfig() ModalConfig {
	return ModalConfig{
		MinScrimAlpha:  0.1,
		MaxScrimAlpha:  0.8,
		CoverTolerance: 1,
		EdgeTolerance:  2,
	}
}

// sheetVocabulary matches the names designers give modal content layers.
var sheetVocabulary = []string{"sheet", "modal", "dialog", "drawer", "popup", "overlay content"}

// ModalDetector finds scrim-plus-sheet structures.
type ModalDetector struct {
	config ModalConfig
}

// NewModalDetector creates a detector with default configuration.
func NewModalDetector() *ModalDetector {
	return &ModalDetector{config: DefaultModalConfig()}
}

// NewModalDetectorWithConfig creates a detector with custom configuration.
func NewModalDetectorWithConfig(config ModalConfig) *ModalDetector {
	return &ModalDetector{config: config}
}

// Detect looks among the screen's direct children for a full-bleed frame
// carrying a semi-transparent solid fill (the scrim) that wraps a sheet:
// a descendant frame either aligned to the top or bottom edge with the far
// corners rounded and the near corners square, or name-matched against
// modal vocabulary. Returns nil when no overlay exists.
func (d *ModalDetector) Detect(screen semantic.IRNode) *ModalResult {
	if screen == nil || screen.Common().Source == nil {
		return nil
	}
	screenBox := screen.Common().Source.BBox

	for _, child := range semantic.ChildrenOf(screen) {
		src := child.Common().Source
		if src == nil {
			continue
		}
		if !src.BBox.CoversAtLeast(screenBox, d.config.CoverTolerance) {
			continue
		}
		if !d.hasScrimFill(child) {
			continue
		}
		if result := d.findSheet(child, src.BBox); result != nil {
			return result
		}
	}
	return nil
}

// hasScrimFill reports whether the node's own solid fill sits in the scrim
// alpha band.
func (d *ModalDetector) hasScrimFill(n semantic.IRNode) bool {
	src := n.Common().Source
	for _, paint := range src.Fills {
		alpha := paint.EffectiveAlpha()
		if alpha > d.config.MinScrimAlpha && alpha < d.config.MaxScrimAlpha {
			return true
		}
	}
	return false
}

// findSheet searches the scrim's descendants for the modal content frame.
func (d *ModalDetector) findSheet(scrim semantic.IRNode, scrimBox model.BBox) *ModalResult {
	var result *ModalResult
	semantic.Walk(scrim, func(n semantic.IRNode) bool {
		if result != nil || n == scrim {
			return result == nil
		}
		src := n.Common().Source
		if src == nil {
			return true
		}

		radii := src.ResolvedCornerRadii()
		atBottom := src.BBox.Bottom() >= scrimBox.Bottom()-d.config.EdgeTolerance
		atTop := src.BBox.Top() <= scrimBox.Top()+d.config.EdgeTolerance

		switch {
		// Bottom sheet: rounded top corners, square bottom corners.
		case atBottom && radii[0] > 0 && radii[1] > 0 && radii[2] == 0 && radii[3] == 0:
			result = &ModalResult{HasModalOverlay: true, ModalType: "bottom-sheet", ContentID: src.ID}
		// Top sheet: rounded bottom corners, square top corners.
		case atTop && radii[2] > 0 && radii[3] > 0 && radii[0] == 0 && radii[1] == 0:
			result = &ModalResult{HasModalOverlay: true, ModalType: "top-sheet", ContentID: src.ID}
		case matchesSheetVocabulary(src.Name):
			result = &ModalResult{HasModalOverlay: true, ModalType: "dialog", ContentID: src.ID}
		}
		return result == nil
	})
	return result
}

func matchesSheetVocabulary(name string) bool {
	lower := strings.ToLower(name)
	for _, word := range sheetVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
