// Package style extracts per-node style objects from the IR and collects
// global design tokens. Styles are flat key/value property sets registered
// in a content-hash-deduplicated registry: two nodes with byte-identical
// style content always share one style reference, and a preferred name
// already taken by different content gets a numeric suffix. Token
// collection then scans the registered styles, plus the layout tree's gap
// and padding values, and buckets distinct colors, spacing values, radii,
// typography signatures, and shadows.
package style
