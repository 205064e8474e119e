package detect

import (
	"strings"

	"github.com/tsawler/forma/semantic"
)

// VariantProperty is one property axis of a component set, with every value
// seen across the set's variants.
type VariantProperty struct {
	Name         string   `json:"name"`
	Values       []string `json:"values"`
	DefaultValue string   `json:"defaultValue"`
}

// VariantState classifies one variant child into an interaction state.
type VariantState struct {
	VariantID   string `json:"variantId"`
	VariantName string `json:"variantName"`
	State       string `json:"state"` // pressed, disabled, loading, error, hover, focused, or default
}

// VariantSet reports the parsed variant axes and per-variant states of one
// component set.
type VariantSet struct {
	SetID      string            `json:"setId"`
	SetName    string            `json:"setName"`
	Properties []VariantProperty `json:"properties"`
	States     []VariantState    `json:"states"`
}

// VariantDetector parses component-set children named as comma-separated
// Property=Value pairs and classifies each variant's interaction state.
type VariantDetector struct{}

// NewVariantDetector creates a variant detector.
func NewVariantDetector() *VariantDetector {
	return &VariantDetector{}
}

// Detect finds every component set in the tree and reports its variant
// axes and states. Variants whose names carry no Property=Value pairs
// contribute nothing to the axes but still get a state.
func (d *VariantDetector) Detect(root semantic.IRNode) []VariantSet {
	sets := []VariantSet{}
	semantic.Walk(root, func(n semantic.IRNode) bool {
		comp, ok := n.(*semantic.Component)
		if !ok || !comp.IsSet {
			return true
		}
		sets = append(sets, d.inspectSet(comp))
		// Variants of a nested set belong to that set alone.
		return false
	})
	return sets
}

func (d *VariantDetector) inspectSet(set *semantic.Component) VariantSet {
	result := VariantSet{SetID: set.ID, SetName: set.ComponentName}

	// Union values per property name, preserving first-seen order for both
	// properties and values so defaults are reproducible.
	index := map[string]int{}
	for _, child := range set.Children {
		base := child.Common()
		for _, pair := range parseVariantName(base.Name) {
			i, seen := index[pair.property]
			if !seen {
				i = len(result.Properties)
				index[pair.property] = i
				result.Properties = append(result.Properties, VariantProperty{Name: pair.property})
			}
			prop := &result.Properties[i]
			if !containsString(prop.Values, pair.value) {
				prop.Values = append(prop.Values, pair.value)
			}
			// The first value seen wins as default unless a value literally
			// named "default" shows up.
			if prop.DefaultValue == "" || strings.EqualFold(pair.value, "default") {
				prop.DefaultValue = pair.value
			}
		}

		result.States = append(result.States, VariantState{
			VariantID:   base.ID,
			VariantName: base.Name,
			State:       classifyState(child),
		})
	}
	return result
}

type variantPair struct {
	property string
	value    string
}

// parseVariantName splits "State=Pressed, Size=Large" into pairs. Segments
// without "=" are skipped.
func parseVariantName(name string) []variantPair {
	var pairs []variantPair
	for _, segment := range strings.Split(name, ",") {
		parts := strings.SplitN(segment, "=", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if property == "" || value == "" {
			continue
		}
		pairs = append(pairs, variantPair{property: property, value: value})
	}
	return pairs
}

// stateKeywords maps interaction states to the vocabulary that names them,
// in priority order.
var stateKeywords = []struct {
	state    string
	keywords []string
}{
	{"pressed", []string{"pressed", "press", "active", "tapped"}},
	{"disabled", []string{"disabled", "inactive", "off"}},
	{"loading", []string{"loading", "spinner", "progress"}},
	{"error", []string{"error", "invalid", "danger"}},
	{"hover", []string{"hover", "hovered"}},
	{"focused", []string{"focused", "focus"}},
}

// classifyState reads a variant's interaction state from its name keywords,
// refined by visual signals: reduced opacity reads as disabled, and a
// spinner-, error-, or check-named descendant picks the matching state.
func classifyState(variant semantic.IRNode) string {
	lower := strings.ToLower(variant.Common().Name)
	for _, entry := range stateKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.state
			}
		}
	}

	if src := variant.Common().Source; src != nil && src.EffectiveOpacity() < 0.7 {
		return "disabled"
	}

	state := "default"
	semantic.Walk(variant, func(n semantic.IRNode) bool {
		name := strings.ToLower(n.Common().Name)
		switch {
		case strings.Contains(name, "spinner") || strings.Contains(name, "loading"):
			state = "loading"
		case strings.Contains(name, "error") || strings.Contains(name, "alert"):
			state = "error"
		case strings.Contains(name, "check") || strings.Contains(name, "success"):
			state = "pressed"
		default:
			return true
		}
		return false
	})
	return state
}

func containsString(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
