package normalize

import (
	"strings"

	"github.com/tsawler/forma/model"
)

// SafeAreaConfig tunes the safe-area detector.
type SafeAreaConfig struct {
	// EdgeTolerance is how far from the screen's top or bottom edge a bar
	// may sit and still count as pinned, in px.
	EdgeTolerance float64

	// MaxBarHeight is the tallest frame that can be OS chrome, in px.
	MaxBarHeight float64

	// MinWidthRatio is the minimum fraction of the screen width a bar must
	// span.
	MinWidthRatio float64
}

// DefaultSafeAreaConfig returns thresholds calibrated for current phone
// status bars (~44-54px) and home indicators (~34px).
func DefaultSafeAreaConfig() SafeAreaConfig {
	return SafeAreaConfig{
		EdgeTolerance: 4,
		MaxBarHeight:  60,
		MinWidthRatio: 0.9,
	}
}

// SafeAreaResult reports the chrome nodes found on a screen.
type SafeAreaResult struct {
	// ExcludeIDs is the set of chrome node IDs, in the form the Normalizer
	// accepts.
	ExcludeIDs map[string]bool

	// TopInset and BottomInset are the heights of the detected top and
	// bottom chrome, 0 when absent.
	TopInset    float64
	BottomInset float64
}

// SafeAreaDetector scans a screen's direct children for OS chrome pinned to
// the top or bottom edge: status bars, home indicators, system navigation
// bars. Its result feeds the Normalizer's exclude set.
type SafeAreaDetector struct {
	config SafeAreaConfig
}

// NewSafeAreaDetector creates a detector with default configuration.
func NewSafeAreaDetector() *SafeAreaDetector {
	return &SafeAreaDetector{config: DefaultSafeAreaConfig()}
}

// NewSafeAreaDetectorWithConfig creates a detector with custom configuration.
func NewSafeAreaDetectorWithConfig(config SafeAreaConfig) *SafeAreaDetector {
	return &SafeAreaDetector{config: config}
}

// Detect inspects the screen root's direct children and returns the chrome
// node set. A nil or childless root yields an empty result.
func (d *SafeAreaDetector) Detect(root *model.RawNode) SafeAreaResult {
	result := SafeAreaResult{ExcludeIDs: map[string]bool{}}
	if root == nil || root.AbsoluteBoundingBox == nil {
		return result
	}

	screen := root.Bounds()
	for _, child := range root.Children {
		if child.AbsoluteBoundingBox == nil {
			continue
		}
		box := child.Bounds()
		if box.Height > d.config.MaxBarHeight {
			continue
		}
		if box.Width < screen.Width*d.config.MinWidthRatio {
			continue
		}

		atTop := box.Top() <= screen.Top()+d.config.EdgeTolerance
		atBottom := box.Bottom() >= screen.Bottom()-d.config.EdgeTolerance
		if !atTop && !atBottom {
			continue
		}
		if !looksLikeChrome(child.Name, atTop) {
			continue
		}

		result.ExcludeIDs[child.ID] = true
		if atTop && box.Height > result.TopInset {
			result.TopInset = box.Height
		}
		if atBottom && box.Height > result.BottomInset {
			result.BottomInset = box.Height
		}
	}
	return result
}

// looksLikeChrome matches the vocabulary designers use for chrome layers.
// Edge position narrows the vocabulary: a "home indicator" only counts at
// the bottom.
func looksLikeChrome(name string, atTop bool) bool {
	if isOSChrome(name) {
		return true
	}
	lower := strings.ToLower(name)
	if atTop {
		return strings.Contains(lower, "notch") || strings.Contains(lower, "dynamic island")
	}
	return strings.Contains(lower, "home") || strings.Contains(lower, "gesture")
}
