package detect

import (
	"strconv"

	"github.com/tsawler/forma/semantic"
)

// ComponentHint reports a structural pattern that repeats across the tree
// and is therefore a candidate for extraction as a reusable component.
// PropsVariations holds, per instance, the text values found at each
// structural position, so downstream generators can derive props.
type ComponentHint struct {
	ComponentName   string              `json:"componentName"`
	InstanceIDs     []string            `json:"instanceIds"`
	PropsVariations []map[string]string `json:"propsVariations,omitempty"`
}

// RepetitionConfig tunes repetition detection.
type RepetitionConfig struct {
	// MinInstances is the smallest group reported; a group of 1 is never a
	// pattern.
	MinInstances int
}

// DefaultRepetitionConfig returns the default repetition thresholds.
func DefaultRepetitionConfig() RepetitionConfig {
	return RepetitionConfig{MinInstances: 2}
}

// RepetitionDetector groups container-like nodes by structural fingerprint.
type RepetitionDetector struct {
	config RepetitionConfig
}

// NewRepetitionDetector creates a detector with default configuration.
func NewRepetitionDetector() *RepetitionDetector {
	return &RepetitionDetector{config: DefaultRepetitionConfig()}
}

// NewRepetitionDetectorWithConfig creates a detector with custom
// configuration.
func NewRepetitionDetectorWithConfig(config RepetitionConfig) *RepetitionDetector {
	return &RepetitionDetector{config: config}
}

// Detect groups every Container, Card, and Button in the tree by structural
// fingerprint and reports each group of MinInstances or more. Group order
// follows the first instance's position in the walk, so results are
// deterministic.
func (d *RepetitionDetector) Detect(root semantic.IRNode) []ComponentHint {
	groups := map[string][]semantic.IRNode{}
	var order []string

	semantic.Walk(root, func(n semantic.IRNode) bool {
		switch n.Kind() {
		case semantic.KindContainer, semantic.KindCard, semantic.KindButton:
			// Leaf containers carry no repeatable structure.
			if len(semantic.ChildrenOf(n)) == 0 {
				return true
			}
			sig := semantic.Signature(n)
			if _, seen := groups[sig]; !seen {
				order = append(order, sig)
			}
			groups[sig] = append(groups[sig], n)
		}
		return true
	})

	hints := []ComponentHint{}
	named := map[string]bool{}
	for _, sig := range order {
		group := groups[sig]
		if len(group) < d.config.MinInstances {
			continue
		}

		hint := ComponentHint{ComponentName: groupName(group, named)}
		for _, instance := range group {
			hint.InstanceIDs = append(hint.InstanceIDs, instance.Common().ID)
			hint.PropsVariations = append(hint.PropsVariations, textProps(instance))
		}
		hints = append(hints, hint)
	}
	return hints
}

// groupName derives a component name from the first instance's layer name,
// suffixing to keep names unique across hints.
func groupName(group []semantic.IRNode, named map[string]bool) string {
	base := semantic.PascalCase(group[0].Common().Name)
	if base == "" {
		base = "Component"
	}
	name := base
	for suffix := 2; named[name]; suffix++ {
		name = base + strconv.Itoa(suffix)
	}
	named[name] = true
	return name
}

// textProps collects the instance's text values keyed by structural
// position. A recognized content pattern names the prop; unrecognized text
// falls back to a positional key.
func textProps(n semantic.IRNode) map[string]string {
	props := map[string]string{}
	position := 0
	semantic.Walk(n, func(child semantic.IRNode) bool {
		switch v := child.(type) {
		case *semantic.Text:
			key := v.Field
			if key == "" {
				key = "text" + strconv.Itoa(position)
			}
			if _, taken := props[key]; taken {
				key = key + strconv.Itoa(position)
			}
			props[key] = v.Content
			position++
		case *semantic.Button:
			props["label"+strconv.Itoa(position)] = v.Label
			position++
			// The label child would repeat the same value.
			return false
		}
		return true
	})
	return props
}
