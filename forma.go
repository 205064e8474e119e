// Package forma lowers design-tool document trees into a semantic
// intermediate representation suitable for deterministic code generation.
//
// The pipeline is a fixed sequence of passes: node filtering, layout-type
// inference, semantic classification, style extraction with deduplication,
// and pattern detection. Each pass consumes the previous pass's output and
// the whole run is pure: no I/O, no shared state, and identical input
// always yields identical output.
//
// Basic usage:
//
//	raw, err := designdoc.Decode(exportJSON)
//	if err != nil {
//	    // handle error
//	}
//	result := forma.Lower(raw)
//
// With options:
//
//	result := forma.NewPipeline().
//	    IgnorePatterns("annotation*", "guide*").
//	    DetectSafeArea(false).
//	    Lower(raw)
//
// Fetching the export, downloading assets, and writing generated files are
// the caller's concern; the pipeline starts at a decoded RawNode tree and
// stops at the IR triple.
package forma

import (
	"github.com/tsawler/forma/model"
)

// Lower runs the full pipeline with default options.
func Lower(root *model.RawNode) *Result {
	return NewPipeline().Lower(root)
}
