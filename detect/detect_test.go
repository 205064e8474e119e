package detect

import (
	"testing"

	"github.com/tsawler/forma/layout"
	"github.com/tsawler/forma/model"
	"github.com/tsawler/forma/semantic"
)

func container(id, name string, children ...semantic.IRNode) *semantic.Container {
	return &semantic.Container{
		Base: semantic.Base{
			ID:     id,
			Name:   name,
			Source: &model.NormalizedNode{ID: id, Name: name, Type: model.NodeFrame},
		},
		Children: children,
	}
}

func textLeaf(id, content string) *semantic.Text {
	return &semantic.Text{
		Base: semantic.Base{
			ID:     id,
			Name:   "Label",
			Source: &model.NormalizedNode{ID: id, Type: model.NodeText, Characters: content},
		},
		Content: content,
		Field:   semantic.ContentField(content),
	}
}

func listItem(id, title, price string) *semantic.Container {
	return container(id, "Item", textLeaf(id+":title", title), textLeaf(id+":price", price))
}

func TestListDetector(t *testing.T) {
	list := container("list", "Orders",
		listItem("i1", "Coffee", "$4.50"),
		listItem("i2", "Bagel", "$3.25"),
		listItem("i3", "Juice", "$5.00"),
	)
	list.Layout = &layout.Meta{Type: layout.TypeColumn}

	hints := NewListDetector().Detect(list)
	if len(hints) != 1 {
		t.Fatalf("expected 1 list hint, got %d", len(hints))
	}

	hint := hints[0]
	if hint.ContainerID != "list" {
		t.Errorf("expected container list, got %s", hint.ContainerID)
	}
	if len(hint.ItemIDs) != 3 {
		t.Errorf("expected 3 items, got %d", len(hint.ItemIDs))
	}
	if hint.Orientation != "vertical" {
		t.Errorf("expected vertical orientation, got %s", hint.Orientation)
	}
	if hint.ItemType != "container" {
		t.Errorf("expected container item type, got %s", hint.ItemType)
	}
}

func TestListDetectorSkipsHeterogeneous(t *testing.T) {
	mixed := container("mixed", "Section",
		textLeaf("t1", "Heading"),
		listItem("i1", "Coffee", "$4.50"),
	)

	if hints := NewListDetector().Detect(mixed); len(hints) != 0 {
		t.Errorf("expected no hints for heterogeneous children, got %d", len(hints))
	}
}

func TestRepetitionDetector(t *testing.T) {
	root := container("root", "Screen",
		listItem("a", "Coffee", "$4.50"),
		textLeaf("t", "Divider"),
		listItem("b", "Bagel", "$3.25"),
	)

	hints := NewRepetitionDetector().Detect(root)
	// The two items repeat; the root itself has no twin.
	var itemHint *ComponentHint
	for i := range hints {
		for _, id := range hints[i].InstanceIDs {
			if id == "a" {
				itemHint = &hints[i]
			}
		}
	}
	if itemHint == nil {
		t.Fatal("expected a hint covering the repeated items")
	}
	if len(itemHint.InstanceIDs) != 2 {
		t.Errorf("expected 2 instances, got %d", len(itemHint.InstanceIDs))
	}
	if itemHint.ComponentName != "Item" {
		t.Errorf("expected component name Item, got %s", itemHint.ComponentName)
	}

	// Props variations keep per-instance text, with recognized patterns
	// naming the prop.
	if len(itemHint.PropsVariations) != 2 {
		t.Fatalf("expected 2 props variations, got %d", len(itemHint.PropsVariations))
	}
	if itemHint.PropsVariations[0]["price"] != "$4.50" {
		t.Errorf("expected price prop, got %v", itemHint.PropsVariations[0])
	}
	if itemHint.PropsVariations[1]["price"] != "$3.25" {
		t.Errorf("expected second instance price, got %v", itemHint.PropsVariations[1])
	}
}

func TestRepetitionDetectorNeverReportsSingles(t *testing.T) {
	root := container("root", "Screen",
		listItem("only", "Coffee", "$4.50"),
	)

	for _, hint := range NewRepetitionDetector().Detect(root) {
		if len(hint.InstanceIDs) < 2 {
			t.Errorf("hint %s has fewer than 2 instances", hint.ComponentName)
		}
	}
}

func makeScrimScreen(sheetRadii []float64, sheetName string, sheetY float64) *semantic.Container {
	screen := container("screen", "Screen")
	screen.Source.BBox = model.NewBBox(0, 0, 390, 844)

	scrim := container("scrim", "Overlay")
	scrim.Source.BBox = model.NewBBox(0, 0, 390, 844)
	scrim.Source.Fills = []model.Paint{{
		Type:  model.PaintSolid,
		Color: &model.Color{R: 0, G: 0, B: 0, A: 0.45},
	}}

	sheet := container("sheet", sheetName)
	sheet.Source.BBox = model.NewBBox(0, sheetY, 390, 844-sheetY)
	sheet.Source.CornerRadii = sheetRadii

	scrim.Children = append(scrim.Children, sheet)
	screen.Children = append(screen.Children, scrim)
	return screen
}

func TestModalDetectorBottomSheet(t *testing.T) {
	screen := makeScrimScreen([]float64{16, 16, 0, 0}, "Content", 500)

	result := NewModalDetector().Detect(screen)
	if result == nil || !result.HasModalOverlay {
		t.Fatal("expected a modal overlay")
	}
	if result.ModalType != "bottom-sheet" {
		t.Errorf("expected bottom-sheet, got %s", result.ModalType)
	}
	if result.ContentID != "sheet" {
		t.Errorf("expected content id sheet, got %s", result.ContentID)
	}
}

func TestModalDetectorNameMatch(t *testing.T) {
	// Centered frame without telltale corners, but named like a dialog.
	screen := container("screen", "Screen")
	screen.Source.BBox = model.NewBBox(0, 0, 390, 844)

	scrim := container("scrim", "Overlay")
	scrim.Source.BBox = model.NewBBox(0, 0, 390, 844)
	scrim.Source.Fills = []model.Paint{{Type: model.PaintSolid, Color: &model.Color{A: 0.3}}}

	dialog := container("dialog", "Confirm Modal")
	dialog.Source.BBox = model.NewBBox(45, 300, 300, 244)

	scrim.Children = append(scrim.Children, dialog)
	screen.Children = append(screen.Children, scrim)

	result := NewModalDetector().Detect(screen)
	if result == nil || result.ModalType != "dialog" {
		t.Fatalf("expected dialog result, got %+v", result)
	}
}

func TestModalDetectorRejectsOpaqueOverlay(t *testing.T) {
	screen := makeScrimScreen([]float64{16, 16, 0, 0}, "Content", 500)
	// Make the would-be scrim fully opaque.
	screen.Children[0].(*semantic.Container).Source.Fills[0].Color.A = 1

	if result := NewModalDetector().Detect(screen); result != nil {
		t.Errorf("opaque overlay must not read as modal, got %+v", result)
	}
}

func TestVariantDetector(t *testing.T) {
	variant := func(id, name string) *semantic.Container {
		return container(id, name)
	}

	set := &semantic.Component{
		Base: semantic.Base{
			ID:     "set",
			Name:   "Button",
			Source: &model.NormalizedNode{ID: "set", Name: "Button", Type: model.NodeComponentSet},
		},
		ComponentName: "Button",
		IsSet:         true,
		Children: []semantic.IRNode{
			variant("v1", "State=Default, Size=Large"),
			variant("v2", "State=Pressed, Size=Large"),
			variant("v3", "State=Disabled, Size=Small"),
		},
	}

	sets := NewVariantDetector().Detect(set)
	if len(sets) != 1 {
		t.Fatalf("expected 1 variant set, got %d", len(sets))
	}

	vs := sets[0]
	if len(vs.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(vs.Properties))
	}

	state := vs.Properties[0]
	if state.Name != "State" {
		t.Errorf("expected State property first, got %s", state.Name)
	}
	if len(state.Values) != 3 {
		t.Errorf("expected 3 state values, got %v", state.Values)
	}
	if state.DefaultValue != "Default" {
		t.Errorf("expected Default as default, got %s", state.DefaultValue)
	}

	size := vs.Properties[1]
	if size.Name != "Size" || len(size.Values) != 2 {
		t.Errorf("unexpected size property: %+v", size)
	}

	// State classification follows the name keywords.
	wantStates := map[string]string{"v1": "default", "v2": "pressed", "v3": "disabled"}
	for _, s := range vs.States {
		if wantStates[s.VariantID] != s.State {
			t.Errorf("variant %s: expected %s, got %s", s.VariantID, wantStates[s.VariantID], s.State)
		}
	}
}

func TestVariantStateVisualRefinement(t *testing.T) {
	ghost := container("g", "Quiet")
	half := 0.4
	ghost.Source.Opacity = &half
	if state := classifyState(ghost); state != "disabled" {
		t.Errorf("low opacity should read as disabled, got %s", state)
	}

	loading := container("l", "Variant A", container("spin", "Spinner"))
	if state := classifyState(loading); state != "loading" {
		t.Errorf("spinner descendant should read as loading, got %s", state)
	}
}

func TestDetectorRunEmptyTree(t *testing.T) {
	root := container("root", "Screen")

	result := NewDetector().Run(root)
	if len(result.Lists) != 0 || len(result.Components) != 0 || len(result.Variants) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if result.Modal != nil {
		t.Errorf("expected no modal, got %+v", result.Modal)
	}
}
