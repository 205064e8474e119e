// Package detect reports patterns found in a classified IR tree: list
// candidates, repeated component-like blocks, modal overlays, and
// variant/state sets. Detectors are read-only relative to the IR; they
// annotate, never restructure. Absence of a pattern is a valid result and
// malformed nodes are skipped, never raised as errors.
package detect
