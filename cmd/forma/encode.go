package main

import (
	"github.com/tsawler/forma"
	"github.com/tsawler/forma/detect"
	"github.com/tsawler/forma/semantic"
	"github.com/tsawler/forma/style"
)

// output is the serialized shape of a full lowering run. The IR union and
// the style registry are not directly marshalable, so the encoders below
// flatten them into plain maps and structs.
type output struct {
	Root           *nodeView                   `json:"root" yaml:"root"`
	GenerationRoot string                      `json:"generationRoot" yaml:"generationRoot"`
	Styles         map[string]style.Properties `json:"styles" yaml:"styles"`
	Tokens         style.Tokens                `json:"tokens" yaml:"tokens"`
	Detection      detect.Result               `json:"detection" yaml:"detection"`
}

// nodeView is the JSON/YAML projection of one IR node. Optional fields are
// omitted when empty so leaves stay terse.
type nodeView struct {
	ID       string `json:"id" yaml:"id"`
	Kind     string `json:"kind" yaml:"kind"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	StyleRef string `json:"styleRef,omitempty" yaml:"styleRef,omitempty"`

	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`

	ImageRef string `json:"imageRef,omitempty" yaml:"imageRef,omitempty"`

	Label         string `json:"label,omitempty" yaml:"label,omitempty"`
	HasIcon       bool   `json:"hasIcon,omitempty" yaml:"hasIcon,omitempty"`
	LabelStyleRef string `json:"labelStyleRef,omitempty" yaml:"labelStyleRef,omitempty"`
	IconStyleRef  string `json:"iconStyleRef,omitempty" yaml:"iconStyleRef,omitempty"`

	Count int `json:"count,omitempty" yaml:"count,omitempty"`

	ComponentName string `json:"componentName,omitempty" yaml:"componentName,omitempty"`
	ComponentID   string `json:"componentId,omitempty" yaml:"componentId,omitempty"`
	IsSet         bool   `json:"isSet,omitempty" yaml:"isSet,omitempty"`

	Children []*nodeView `json:"children,omitempty" yaml:"children,omitempty"`
}

func encodeNode(n semantic.IRNode) *nodeView {
	if n == nil {
		return nil
	}
	base := n.Common()
	view := &nodeView{
		ID:       base.ID,
		Kind:     n.Kind().String(),
		Name:     base.Name,
		StyleRef: base.StyleRef,
	}
	switch v := n.(type) {
	case *semantic.Text:
		view.Content = v.Content
		view.Field = v.Field
	case *semantic.Image:
		view.ImageRef = v.ImageRef
	case *semantic.Button:
		view.Label = v.Label
		view.HasIcon = v.HasIcon
		view.LabelStyleRef = v.LabelStyleRef
		view.IconStyleRef = v.IconStyleRef
	case *semantic.Repeater:
		view.Count = v.Count
	case *semantic.Component:
		view.ComponentName = v.ComponentName
		view.ComponentID = v.ComponentID
		view.IsSet = v.IsSet
	}
	for _, child := range semantic.ChildrenOf(n) {
		view.Children = append(view.Children, encodeNode(child))
	}
	return view
}

func encodeStyles(result *forma.Result) map[string]style.Properties {
	styles := make(map[string]style.Properties, result.Styles.Styles.Len())
	for _, name := range result.Styles.Styles.Names() {
		if props, ok := result.Styles.Styles.Get(name); ok {
			styles[name] = props
		}
	}
	return styles
}
