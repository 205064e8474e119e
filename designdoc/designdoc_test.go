package designdoc

import (
	"strings"
	"testing"

	"github.com/tsawler/forma/model"
)

const bareNode = `{
	"id": "1:1",
	"name": "Screen",
	"type": "FRAME",
	"absoluteBoundingBox": {"x": 0, "y": 0, "width": 390, "height": 844},
	"fills": [{"type": "SOLID", "color": {"r": 1, "g": 1, "b": 1, "a": 1}}],
	"layoutMode": "VERTICAL",
	"itemSpacing": 12,
	"unknownField": {"nested": true},
	"children": [
		{"id": "1:2", "name": "Title", "type": "TEXT", "characters": "Hello",
		 "style": {"fontFamily": "Inter", "fontSize": 24, "fontWeight": 700}}
	]
}`

func TestDecodeBareNode(t *testing.T) {
	root, err := Decode([]byte(bareNode))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if root.ID != "1:1" || root.Type != model.NodeFrame {
		t.Errorf("unexpected root: %+v", root)
	}
	if root.LayoutMode != model.LayoutModeVertical || root.ItemSpacing != 12 {
		t.Errorf("auto-layout metadata not decoded: %+v", root)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}

	child := root.Children[0]
	if child.Characters != "Hello" {
		t.Errorf("expected text content, got %q", child.Characters)
	}
	if child.Style == nil || child.Style.FontSize != 24 {
		t.Errorf("typography not decoded: %+v", child.Style)
	}
}

func TestDecodeDocumentEnvelope(t *testing.T) {
	payload := `{"name": "My File", "document": ` + bareNode + `}`

	root, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.ID != "1:1" {
		t.Errorf("expected document node, got %+v", root)
	}
}

func TestDecodeNodesEnvelope(t *testing.T) {
	payload := `{"nodes": {"1:1": {"document": ` + bareNode + `}}}`

	root, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Name != "Screen" {
		t.Errorf("expected Screen, got %q", root.Name)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	if _, err := Decode([]byte(`{}`)); err != ErrEmptyDocument {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := Decode([]byte(`{"nodes": {}}`)); err != ErrEmptyDocument {
		t.Errorf("expected ErrEmptyDocument for empty nodes, got %v", err)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("expected decode error")
	}
}

func TestDecodeReader(t *testing.T) {
	root, err := DecodeReader(strings.NewReader(bareNode))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.ID != "1:1" {
		t.Errorf("unexpected root %+v", root)
	}
}
