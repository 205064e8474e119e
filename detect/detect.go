package detect

import (
	"github.com/tsawler/forma/semantic"
)

// Result aggregates every detector's findings for one screen.
type Result struct {
	Lists      []ListHint      `json:"lists"`
	Components []ComponentHint `json:"components"`
	Modal      *ModalResult    `json:"modal,omitempty"`
	Variants   []VariantSet    `json:"variants"`
}

// Detector runs the full detector suite.
type Detector struct {
	lists      *ListDetector
	repetition *RepetitionDetector
	modal      *ModalDetector
	variants   *VariantDetector
}

// NewDetector creates a detector suite with default configuration.
func NewDetector() *Detector {
	return &Detector{
		lists:      NewListDetector(),
		repetition: NewRepetitionDetector(),
		modal:      NewModalDetector(),
		variants:   NewVariantDetector(),
	}
}

// Run executes every detector against the IR root. Detectors that find
// nothing contribute empty slices, never errors.
func (d *Detector) Run(root semantic.IRNode) Result {
	return Result{
		Lists:      d.lists.Detect(root),
		Components: d.repetition.Detect(root),
		Modal:      d.modal.Detect(root),
		Variants:   d.variants.Detect(root),
	}
}
