// Package model defines the data types shared across the lowering pipeline:
// geometry primitives, paint and effect descriptions, the RawNode tree as
// decoded from a design-tool export, and the NormalizedNode tree produced by
// the normalize package.
package model
