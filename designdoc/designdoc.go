// Package designdoc decodes design-tool JSON exports into RawNode trees.
// It accepts either a bare node or the REST envelope forms
// {"document": {...}} and {"nodes": {"<id>": {"document": {...}}}}.
// Fields outside the model's enumerated set are ignored. Fetching the
// export over the network is the caller's concern.
package designdoc

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"

	"github.com/tsawler/forma/model"
)

// ErrEmptyDocument is returned when the export contains no node at all.
var ErrEmptyDocument = errors.New("designdoc: export contains no document node")

// envelope is the superset of export shapes the decoder accepts.
type envelope struct {
	Document *model.RawNode           `json:"document"`
	Nodes    map[string]nodesEnvelope `json:"nodes"`
	Name     string                   `json:"name"`

	// Bare-node fields, set when the payload is a node itself.
	ID   string         `json:"id"`
	Type model.NodeType `json:"type"`
}

type nodesEnvelope struct {
	Document *model.RawNode `json:"document"`
}

// Decode parses a JSON export and returns its root node.
func Decode(data []byte) (*model.RawNode, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("designdoc: decode export: %w", err)
	}

	if env.Document != nil {
		return env.Document, nil
	}

	if len(env.Nodes) > 0 {
		// A node-by-id response can hold several roots; take the first in
		// key order so repeated decodes agree.
		keys := make([]string, 0, len(env.Nodes))
		for k := range env.Nodes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if env.Nodes[k].Document != nil {
				return env.Nodes[k].Document, nil
			}
		}
		return nil, ErrEmptyDocument
	}

	if env.ID != "" {
		var node model.RawNode
		if err := json.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("designdoc: decode node: %w", err)
		}
		return &node, nil
	}

	return nil, ErrEmptyDocument
}

// DecodeReader parses a JSON export from a reader.
func DecodeReader(r io.Reader) (*model.RawNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("designdoc: read export: %w", err)
	}
	return Decode(data)
}
