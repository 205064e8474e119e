// Package normalize filters a raw design-tool node tree into the pruned
// NormalizedNode tree the rest of the pipeline consumes. It removes hidden
// nodes, OS chrome (status bars, home indicators, navigation bars),
// explicitly excluded nodes, and any node whose name matches a configured
// ignore pattern. A filtered node takes its whole subtree with it.
package normalize
