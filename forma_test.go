package forma

import (
	"reflect"
	"testing"

	"github.com/tsawler/forma/model"
	"github.com/tsawler/forma/semantic"
)

// buildScreen assembles a small but realistic screen: status bar chrome, a
// heading, and a vertical list of two identical order rows.
func buildScreen() *model.RawNode {
	white := model.Color{R: 1, G: 1, B: 1, A: 1}
	dark := model.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}

	row := func(id, title, price string, y float64) *model.RawNode {
		return &model.RawNode{
			ID: id, Name: "Order Row", Type: model.NodeFrame,
			AbsoluteBoundingBox: &model.BBox{X: 16, Y: y, Width: 358, Height: 56},
			Fills:               []model.Paint{{Type: model.PaintSolid, Color: &white}},
			CornerRadius:        8,
			Children: []*model.RawNode{
				{
					ID: id + ":title", Name: "Title", Type: model.NodeText, Characters: title,
					AbsoluteBoundingBox: &model.BBox{X: 28, Y: y + 18, Width: 120, Height: 20},
					Fills:               []model.Paint{{Type: model.PaintSolid, Color: &dark}},
					Style:               &model.Typography{FontFamily: "Inter", FontSize: 15, FontWeight: 500},
				},
				{
					ID: id + ":price", Name: "Price", Type: model.NodeText, Characters: price,
					AbsoluteBoundingBox: &model.BBox{X: 300, Y: y + 18, Width: 60, Height: 20},
					Fills:               []model.Paint{{Type: model.PaintSolid, Color: &dark}},
					Style:               &model.Typography{FontFamily: "Inter", FontSize: 15, FontWeight: 500},
				},
			},
		}
	}

	return &model.RawNode{
		ID: "0:1", Name: "Orders Screen", Type: model.NodeFrame,
		AbsoluteBoundingBox: &model.BBox{X: 0, Y: 0, Width: 390, Height: 844},
		Fills:               []model.Paint{{Type: model.PaintSolid, Color: &model.Color{R: 0.96, G: 0.96, B: 0.97, A: 1}}},
		Children: []*model.RawNode{
			{
				ID: "0:2", Name: "Status Bar", Type: model.NodeFrame,
				AbsoluteBoundingBox: &model.BBox{X: 0, Y: 0, Width: 390, Height: 47},
			},
			{
				ID: "0:3", Name: "Heading", Type: model.NodeText, Characters: "Your orders",
				AbsoluteBoundingBox: &model.BBox{X: 16, Y: 70, Width: 200, Height: 32},
				Fills:               []model.Paint{{Type: model.PaintSolid, Color: &dark}},
				Style:               &model.Typography{FontFamily: "Inter", FontSize: 24, FontWeight: 700},
			},
			row("1:1", "Flat white", "$4.50", 120),
			row("1:2", "Croissant", "$3.25", 188),
		},
	}
}

func TestLowerEndToEnd(t *testing.T) {
	result := Lower(buildScreen())

	if result.Root == nil {
		t.Fatal("expected non-nil IR root")
	}

	// Chrome is stripped by the safe-area scan.
	if !result.SafeArea.ExcludeIDs["0:2"] {
		t.Error("status bar should be excluded")
	}
	if found := findByID(result.Root, "0:2"); found != nil {
		t.Error("status bar must not reach the IR")
	}

	// Every styleRef resolves in the bundle.
	semantic.Walk(result.Root, func(n semantic.IRNode) bool {
		if _, ok := result.Styles.Styles.Get(n.Common().StyleRef); !ok {
			t.Errorf("node %s: unresolved styleRef %q", n.Common().ID, n.Common().StyleRef)
		}
		return true
	})

	// The two identical rows share one style and repeat as a component.
	first := findByID(result.Root, "1:1")
	second := findByID(result.Root, "1:2")
	if first == nil || second == nil {
		t.Fatal("order rows missing from IR")
	}
	if first.Common().StyleRef != second.Common().StyleRef {
		t.Errorf("identical rows must share a styleRef: %q vs %q",
			first.Common().StyleRef, second.Common().StyleRef)
	}

	var rowHint bool
	for _, hint := range result.Detection.Components {
		if len(hint.InstanceIDs) == 2 {
			rowHint = true
		}
	}
	if !rowHint {
		t.Error("expected a component hint for the repeated rows")
	}

	// Tokens picked up the palette.
	if len(result.Styles.Tokens.Colors) == 0 {
		t.Error("expected color tokens")
	}
	if len(result.Styles.Tokens.Typography) == 0 {
		t.Error("expected typography tokens")
	}
}

func TestLowerFilteredRootYieldsPlaceholder(t *testing.T) {
	hidden := false
	root := &model.RawNode{
		ID: "0:1", Name: "Screen", Type: model.NodeFrame, Visible: &hidden,
		AbsoluteBoundingBox: &model.BBox{Width: 390, Height: 844},
	}

	result := Lower(root)
	if result.Root == nil {
		t.Fatal("expected placeholder IR, got nil")
	}
	if result.Root.Kind() != semantic.KindContainer {
		t.Errorf("placeholder should be a container, got %s", result.Root.Kind())
	}
	if len(semantic.ChildrenOf(result.Root)) != 0 {
		t.Error("placeholder must be empty")
	}
}

func TestLowerNilRoot(t *testing.T) {
	result := Lower(nil)
	if result.Root == nil {
		t.Fatal("nil input should still yield a placeholder")
	}
}

func TestLowerIsDeterministic(t *testing.T) {
	first := Lower(buildScreen())
	second := Lower(buildScreen())

	if !reflect.DeepEqual(flattenIR(first.Root), flattenIR(second.Root)) {
		t.Error("IR differs between runs on identical input")
	}
	if !reflect.DeepEqual(first.Styles.Styles.Names(), second.Styles.Styles.Names()) {
		t.Error("style registration order differs between runs")
	}
	if !reflect.DeepEqual(first.Styles.Tokens, second.Styles.Tokens) {
		t.Error("tokens differ between runs")
	}
	if !reflect.DeepEqual(first.Detection, second.Detection) {
		t.Error("detection results differ between runs")
	}
}

// flattenIR reduces a tree to comparable (id, kind, styleRef) triples in
// walk order.
func flattenIR(root semantic.IRNode) [][3]string {
	var out [][3]string
	semantic.Walk(root, func(n semantic.IRNode) bool {
		b := n.Common()
		out = append(out, [3]string{b.ID, n.Kind().String(), b.StyleRef})
		return true
	})
	return out
}

func TestPipelineOptions(t *testing.T) {
	screen := buildScreen()
	screen.Children = append(screen.Children, &model.RawNode{
		ID: "9:9", Name: "Internal Notes", Type: model.NodeFrame,
		AbsoluteBoundingBox: &model.BBox{X: 0, Y: 700, Width: 390, Height: 100},
	})

	result := NewPipeline().
		IgnorePatterns("internal*").
		ExcludeIDs("1:2").
		Lower(screen)

	if findByID(result.Root, "9:9") != nil {
		t.Error("ignore pattern should drop the notes layer")
	}
	if findByID(result.Root, "1:2") != nil {
		t.Error("excluded ID should drop the second row")
	}
	if findByID(result.Root, "1:1") == nil {
		t.Error("first row should survive")
	}
}
