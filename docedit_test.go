package docedit

import (
	"testing"

	"github.com/boergens/docedit/bridge"
	"github.com/boergens/docedit/model"
	"github.com/boergens/docedit/transform"
)

func TestParseBuildsParagraph(t *testing.T) {
	events := []bridge.Event{
		{Kind: bridge.Start, Tag: bridge.Tag{Kind: bridge.TagParagraph}},
		{Kind: bridge.Text, Text: "hello"},
		{Kind: bridge.End, Tag: bridge.Tag{Kind: bridge.TagParagraph}},
	}
	doc, err := Parse(events)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Root().Kind() != model.Doc {
		t.Fatalf("got kind %v, want doc", doc.Root().Kind())
	}
}

func TestSerializeRoundTrips(t *testing.T) {
	root := model.NewDoc(model.NewParagraph(model.NewTextNode("hi")))
	doc := NewDocument(root)
	events := Serialize(doc)
	rebuilt, err := Parse(events)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !rebuilt.Root().Equal(root) {
		t.Fatalf("round trip mismatch: got %v, want %v", rebuilt.Root(), root)
	}
}

func TestApplyRunsStepsInOrder(t *testing.T) {
	root := model.NewDoc(model.NewParagraph(model.NewTextNode("hello")))
	doc := NewDocument(root)

	out, err := Apply(doc,
		transform.AddMarkStep{Span: transform.Span{From: 1, To: 6}, Mark: model.Strong},
	)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	content, ok := out.Root().Content()
	if !ok {
		t.Fatalf("expected content fragment on doc")
	}
	para := content.Children()[0]
	inner, ok := para.Content()
	if !ok {
		t.Fatalf("expected content fragment on paragraph")
	}
	_, gotMarks, isText := inner.Children()[0].TextNode()
	if !isText {
		t.Fatalf("expected text node")
	}
	if _, has := gotMarks.Has(model.MarkStrong); !has {
		t.Fatalf("expected strong mark after Apply, got %v", gotMarks)
	}
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	root := model.NewDoc(model.NewParagraph(model.NewTextNode("hi")))
	doc := NewDocument(root)

	_, err := Apply(doc, transform.ReplaceStep{
		Span:      transform.Span{From: 0, To: 100},
		Structure: true,
	})
	if err == nil {
		t.Fatalf("expected error for out-of-range replace")
	}
}

func TestEncodeDecodeJSONRoundTrip(t *testing.T) {
	root := model.NewDoc(model.NewParagraph(model.NewTextNode("hi")))
	doc := NewDocument(root)

	data, err := EncodeJSON(doc)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if !got.Root().Equal(root) {
		t.Fatalf("round trip mismatch: got %v, want %v", got.Root(), root)
	}
}
