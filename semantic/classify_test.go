package semantic

import (
	"testing"

	"github.com/tsawler/forma/layout"
	"github.com/tsawler/forma/model"
)

// Helpers building small layout trees directly
func layoutNode(src *model.NormalizedNode, children ...*layout.Node) *layout.Node {
	return &layout.Node{Source: src, Children: children}
}

func textNode(id, content string) *layout.Node {
	return layoutNode(&model.NormalizedNode{
		ID:         id,
		Name:       "Label",
		Type:       model.NodeText,
		Characters: content,
		BBox:       model.NewBBox(0, 0, 80, 20),
	})
}

func TestClassifyText(t *testing.T) {
	ir := NewClassifier().Classify(textNode("1:1", "$12.99"))

	text, ok := ir.(*Text)
	if !ok {
		t.Fatalf("expected *Text, got %T", ir)
	}
	if text.Content != "$12.99" {
		t.Errorf("unexpected content %q", text.Content)
	}
	if text.Field != "price" {
		t.Errorf("expected price field, got %q", text.Field)
	}
}

func TestClassifyImage(t *testing.T) {
	src := &model.NormalizedNode{
		ID:    "1:2",
		Name:  "Avatar",
		Type:  model.NodeRectangle,
		BBox:  model.NewBBox(0, 0, 120, 120),
		Fills: []model.Paint{{Type: model.PaintImage, ImageRef: "img-abc"}},
	}

	ir := NewClassifier().Classify(layoutNode(src))
	img, ok := ir.(*Image)
	if !ok {
		t.Fatalf("expected *Image, got %T", ir)
	}
	if img.ImageRef != "img-abc" {
		t.Errorf("expected image ref carried over, got %q", img.ImageRef)
	}
}

func TestClassifyIcon(t *testing.T) {
	small := layoutNode(&model.NormalizedNode{
		ID: "1:3", Name: "chevron", Type: model.NodeVector,
		BBox: model.NewBBox(0, 0, 24, 24),
	})
	if _, ok := NewClassifier().Classify(small).(*Icon); !ok {
		t.Error("small vector should classify as icon")
	}

	// A large vector is not an icon.
	large := layoutNode(&model.NormalizedNode{
		ID: "1:4", Name: "wave", Type: model.NodeVector,
		BBox: model.NewBBox(0, 0, 400, 200),
	})
	if _, ok := NewClassifier().Classify(large).(*Icon); ok {
		t.Error("large vector should not classify as icon")
	}
}

func TestClassifyButton(t *testing.T) {
	src := &model.NormalizedNode{
		ID: "1:5", Name: "Primary Button", Type: model.NodeFrame,
		BBox:         model.NewBBox(0, 0, 160, 48),
		CornerRadius: 8,
		Fills:        []model.Paint{{Type: model.PaintSolid, Color: &model.Color{R: 0.2, G: 0.4, B: 1, A: 1}}},
	}
	label := &model.NormalizedNode{
		ID: "1:6", Name: "Label", Type: model.NodeText, Characters: "Continue",
		BBox: model.NewBBox(40, 14, 80, 20),
	}
	src.Children = []*model.NormalizedNode{label}

	ir := NewClassifier().Classify(layoutNode(src, layoutNode(label)))
	btn, ok := ir.(*Button)
	if !ok {
		t.Fatalf("expected *Button, got %T", ir)
	}
	if btn.Label != "Continue" {
		t.Errorf("expected label Continue, got %q", btn.Label)
	}
}

func TestClassifyButtonByShape(t *testing.T) {
	// No button vocabulary in the name; rounded solid fill with a single
	// label still reads as a button.
	src := &model.NormalizedNode{
		ID: "1:7", Name: "Checkout", Type: model.NodeFrame,
		BBox:         model.NewBBox(0, 0, 200, 44),
		CornerRadius: 22,
		Fills:        []model.Paint{{Type: model.PaintSolid, Color: &model.Color{A: 1}}},
	}
	label := &model.NormalizedNode{
		ID: "1:8", Type: model.NodeText, Characters: "Pay now",
		BBox: model.NewBBox(60, 12, 80, 20),
	}
	src.Children = []*model.NormalizedNode{label}

	if _, ok := NewClassifier().Classify(layoutNode(src, layoutNode(label))).(*Button); !ok {
		t.Error("rounded filled container with one label should classify as button")
	}
}

func TestClassifyRepeater(t *testing.T) {
	item := func(id string) *layout.Node {
		row := &model.NormalizedNode{ID: id, Name: "Item", Type: model.NodeFrame, BBox: model.NewBBox(0, 0, 300, 60)}
		title := &model.NormalizedNode{ID: id + ":t", Type: model.NodeText, Characters: "Title", BBox: model.NewBBox(0, 0, 100, 20)}
		row.Children = []*model.NormalizedNode{title}
		return layoutNode(row, layoutNode(title))
	}

	list := &model.NormalizedNode{ID: "2:1", Name: "List", Type: model.NodeFrame, BBox: model.NewBBox(0, 0, 300, 200)}
	ir := NewClassifier().Classify(layoutNode(list, item("2:2"), item("2:3"), item("2:4")))

	rep, ok := ir.(*Repeater)
	if !ok {
		t.Fatalf("expected *Repeater, got %T", ir)
	}
	if rep.Count != 3 {
		t.Errorf("expected count 3, got %d", rep.Count)
	}
	if rep.Template == nil || rep.Template.Common().ID != "2:2" {
		t.Error("template must be the first child")
	}
}

func TestClassifyHeterogeneousChildrenStayContainer(t *testing.T) {
	list := &model.NormalizedNode{ID: "2:1", Name: "Section", Type: model.NodeFrame, BBox: model.NewBBox(0, 0, 300, 200)}

	title := textNode("2:2", "Heading")
	row := &model.NormalizedNode{ID: "2:3", Name: "Row", Type: model.NodeFrame, BBox: model.NewBBox(0, 40, 300, 60)}
	inner := &model.NormalizedNode{ID: "2:4", Type: model.NodeText, Characters: "x", BBox: model.NewBBox(0, 40, 50, 20)}
	row.Children = []*model.NormalizedNode{inner}

	ir := NewClassifier().Classify(layoutNode(list, title, layoutNode(row, layoutNode(inner))))
	if _, ok := ir.(*Container); !ok {
		t.Errorf("mixed children should stay container, got %T", ir)
	}
}

func TestClassifyCard(t *testing.T) {
	src := &model.NormalizedNode{
		ID: "3:1", Name: "Summary", Type: model.NodeFrame,
		BBox:         model.NewBBox(0, 0, 340, 180),
		CornerRadius: 12,
		Effects:      []model.Effect{{Type: model.EffectDropShadow, Radius: 8}},
	}
	child := &model.NormalizedNode{ID: "3:2", Type: model.NodeText, Characters: "Total", BBox: model.NewBBox(16, 16, 60, 20)}
	src.Children = []*model.NormalizedNode{child}

	ir := NewClassifier().Classify(layoutNode(src, layoutNode(child)))
	if _, ok := ir.(*Card); !ok {
		t.Errorf("rounded shadowed frame should classify as card, got %T", ir)
	}
}

func TestClassifyComponent(t *testing.T) {
	src := &model.NormalizedNode{
		ID: "4:1", Name: "badge / new", Type: model.NodeInstance, ComponentID: "c:9",
		BBox: model.NewBBox(0, 0, 80, 80),
	}

	ir := NewClassifier().Classify(layoutNode(src))
	comp, ok := ir.(*Component)
	if !ok {
		t.Fatalf("expected *Component, got %T", ir)
	}
	if comp.ComponentName != "BadgeNew" {
		t.Errorf("expected BadgeNew, got %q", comp.ComponentName)
	}
	if comp.ComponentID != "c:9" {
		t.Errorf("expected component id carried over, got %q", comp.ComponentID)
	}
}

func TestSignatureIgnoresContent(t *testing.T) {
	a := NewClassifier().Classify(textNode("5:1", "Hello"))
	b := NewClassifier().Classify(textNode("5:2", "Completely different"))

	if Signature(a) != Signature(b) {
		t.Error("signatures must not depend on text content")
	}
}

func TestContentField(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"$1,299.00", "price"},
		{"€45", "price"},
		{"+120.50", "amount"},
		{"-1,000", "amount"},
		{"Visa", "cardBrand"},
		{"American Express", "cardBrand"},
		{"•••• 4242", "cardLastDigits"},
		{"**** 1234", "cardLastDigits"},
		{"Mar 14", "date"},
		{"March 14, 2026", "date"},
		{"+1 (555) 123-4567", "phone"},
		{"85%", "percentage"},
		{"-3.2%", "percentage"},
		{"Hello world", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ContentField(tt.text); got != tt.want {
			t.Errorf("ContentField(%q): expected %q, got %q", tt.text, tt.want, got)
		}
	}
}

func TestNaming(t *testing.T) {
	tests := []struct {
		in     string
		pascal string
		camel  string
	}{
		{"card item / price", "CardItemPrice", "cardItemPrice"},
		{"primaryButton", "PrimaryButton", "primaryButton"},
		{"badge / new", "BadgeNew", "badgeNew"},
		{"", "", ""},
	}

	for _, tt := range tests {
		if got := PascalCase(tt.in); got != tt.pascal {
			t.Errorf("PascalCase(%q): expected %q, got %q", tt.in, tt.pascal, got)
		}
		if got := CamelCase(tt.in); got != tt.camel {
			t.Errorf("CamelCase(%q): expected %q, got %q", tt.in, tt.camel, got)
		}
	}
}
