// Package docedit provides a Go implementation of a ProseMirror-style
// structured document engine: an immutable node/fragment tree, a
// replace-based edit algebra, a markdown bridge, and a JSON/YAML wire
// format for steps and documents.
//
// This file wires together the package's pieces into the small set of
// convenience entry points most callers need: parsing markdown into a
// document, applying a sequence of edit steps, and serializing a
// document back to markdown or to the wire format.
package docedit

import (
	"fmt"

	"github.com/boergens/docedit/bridge"
	"github.com/boergens/docedit/model"
	"github.com/boergens/docedit/transform"
	"github.com/boergens/docedit/wire"
)

// Document is the root type callers hold onto: an immutable snapshot of
// the tree plus a cursor-free view of its content length, in UTF-16 code
// units, matching the position scheme every Step operates in.
type Document struct {
	root model.Node
}

// NewDocument wraps an already-built model.Node doc for editing.
func NewDocument(root model.Node) Document {
	return Document{root: root}
}

// Root returns the underlying document tree.
func (d Document) Root() model.Node {
	return d.root
}

// Len returns the document's content length in UTF-16 code units,
// excluding the doc node's own open/close tokens.
func (d Document) Len() int {
	return d.root.ContentSize()
}

// Parse builds a Document from a stream of bridge events, as produced
// by a markdown parser feeding bridge.Builder.
func Parse(events []bridge.Event) (Document, error) {
	root, err := bridge.Build(events)
	if err != nil {
		return Document{}, fmt.Errorf("docedit: parse: %w", err)
	}
	return Document{root: root}, nil
}

// Serialize renders d back to a bridge event stream, suitable for
// driving a markdown emitter.
func Serialize(d Document) []bridge.Event {
	return bridge.Emit(d.root)
}

// Apply runs steps against d in order, returning the resulting document.
// It stops and returns an error at the first step that fails.
func Apply(d Document, steps ...transform.Step) (Document, error) {
	doc := d.root
	for i, step := range steps {
		next, err := step.Apply(doc)
		if err != nil {
			return Document{}, fmt.Errorf("docedit: step %d: %w", i, err)
		}
		doc = next
	}
	return Document{root: doc}, nil
}

// EncodeJSON renders d's tree to the logical JSON wire shape.
func EncodeJSON(d Document) ([]byte, error) {
	return wire.EncodeNode(d.root)
}

// DecodeJSON parses a document from the logical JSON wire shape.
func DecodeJSON(data []byte) (Document, error) {
	root, err := wire.DecodeNode(data)
	if err != nil {
		return Document{}, fmt.Errorf("docedit: decode: %w", err)
	}
	return Document{root: root}, nil
}
