package forma

import (
	"github.com/tsawler/forma/detect"
	"github.com/tsawler/forma/layout"
	"github.com/tsawler/forma/model"
	"github.com/tsawler/forma/normalize"
	"github.com/tsawler/forma/semantic"
	"github.com/tsawler/forma/style"
)

// Result is the pipeline's output triple plus the derived generation root.
type Result struct {
	// Root is the semantic IR for the whole (normalized) screen.
	Root semantic.IRNode

	// Styles holds every node's extracted style and the global token
	// tables. Every styleRef in the IR resolves here.
	Styles *style.Bundle

	// Detection reports lists, repeated blocks, modal overlays, and
	// variant sets. It annotates the IR, never restructures it.
	Detection detect.Result

	// GenerationRoot is the subtree downstream generation should start
	// from: the modal content when an overlay was detected, otherwise Root.
	GenerationRoot semantic.IRNode

	// SafeArea reports the OS chrome stripped during normalization.
	SafeArea normalize.SafeAreaResult
}

// Pipeline runs the lowering passes with configurable normalization rules.
// All other passes are parameter-free functions of their input; their
// thresholds live in the per-package configs and rarely need changing.
type Pipeline struct {
	ignorePatterns []string
	excludeIDs     map[string]bool
	detectSafeArea bool

	layoutConfig   layout.Config
	classifyConfig semantic.Config
}

// NewPipeline creates a pipeline with default options: the standard ignore
// patterns, safe-area detection on, and default heuristic thresholds.
func NewPipeline() *Pipeline {
	return &Pipeline{
		ignorePatterns: normalize.DefaultIgnorePatterns(),
		detectSafeArea: true,
		layoutConfig:   layout.DefaultConfig(),
		classifyConfig: semantic.DefaultConfig(),
	}
}

// IgnorePatterns replaces the wildcard patterns used to drop annotation and
// guide layers by name.
func (p *Pipeline) IgnorePatterns(patterns ...string) *Pipeline {
	p.ignorePatterns = patterns
	return p
}

// ExcludeIDs adds node IDs to drop regardless of any other rule.
func (p *Pipeline) ExcludeIDs(ids ...string) *Pipeline {
	if p.excludeIDs == nil {
		p.excludeIDs = map[string]bool{}
	}
	for _, id := range ids {
		p.excludeIDs[id] = true
	}
	return p
}

// DetectSafeArea toggles the OS-chrome scan that feeds the exclude set.
func (p *Pipeline) DetectSafeArea(enabled bool) *Pipeline {
	p.detectSafeArea = enabled
	return p
}

// LayoutConfig replaces the layout heuristic thresholds.
func (p *Pipeline) LayoutConfig(config layout.Config) *Pipeline {
	p.layoutConfig = config
	return p
}

// ClassifyConfig replaces the classifier thresholds.
func (p *Pipeline) ClassifyConfig(config semantic.Config) *Pipeline {
	p.classifyConfig = config
	return p
}

// Lower runs the passes in order: normalize, layout, classify, extract
// styles, detect patterns. A root filtered away entirely is replaced by an
// empty container placeholder rather than failing.
func (p *Pipeline) Lower(root *model.RawNode) *Result {
	var safeArea normalize.SafeAreaResult
	excludeIDs := p.excludeIDs
	if p.detectSafeArea {
		safeArea = normalize.NewSafeAreaDetector().Detect(root)
		if len(safeArea.ExcludeIDs) > 0 {
			merged := map[string]bool{}
			for id := range excludeIDs {
				merged[id] = true
			}
			for id := range safeArea.ExcludeIDs {
				merged[id] = true
			}
			excludeIDs = merged
		}
	}

	normalized := normalize.Filter(root, normalize.Options{
		IgnorePatterns: p.ignorePatterns,
		ExcludeIDs:     excludeIDs,
	})
	if normalized == nil {
		var bounds model.BBox
		if root != nil {
			bounds = root.Bounds()
		}
		normalized = normalize.Placeholder(bounds)
	}

	layoutTree := layout.NewEngineWithConfig(p.layoutConfig).Annotate(normalized, layout.RootContext())
	ir := semantic.NewClassifierWithConfig(p.classifyConfig).Classify(layoutTree)
	bundle := style.Extract(ir, layoutTree)
	detection := detect.NewDetector().Run(ir)

	result := &Result{
		Root:           ir,
		Styles:         bundle,
		Detection:      detection,
		GenerationRoot: ir,
		SafeArea:       safeArea,
	}
	if detection.Modal != nil && detection.Modal.HasModalOverlay {
		if content := findByID(ir, detection.Modal.ContentID); content != nil {
			result.GenerationRoot = content
		}
	}
	return result
}

// findByID returns the IR node with the given ID, or nil.
func findByID(root semantic.IRNode, id string) semantic.IRNode {
	var found semantic.IRNode
	semantic.Walk(root, func(n semantic.IRNode) bool {
		if found != nil {
			return false
		}
		if n.Common().ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}
