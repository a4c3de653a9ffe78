package wire_test

import (
	"testing"

	"github.com/boergens/docedit/model"
	"github.com/boergens/docedit/transform"
	"github.com/boergens/docedit/wire"
)

func TestNodeRoundTrip(t *testing.T) {
	n := model.NewDoc(model.NewParagraph(
		model.NewTextNodeWithMarks("hi", model.NewMarkSet(model.Link(model.LinkAttrs{Href: "/x"}))),
		model.NewImage(model.ImageAttrs{Src: "a.png"}),
	))
	data, err := wire.EncodeNode(n)
	if err != nil {
		t.Fatalf("EncodeNode: %v", err)
	}
	got, err := wire.DecodeNode(data)
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	if !got.Equal(n) {
		t.Fatalf("round trip mismatch: got %v, want %v", got, n)
	}
}

func TestNodeJSONShape(t *testing.T) {
	n := model.NewHeading(model.HeadingAttrs{Level: 2}, model.NewTextNode("hi"))
	data, err := wire.EncodeNode(n)
	if err != nil {
		t.Fatalf("EncodeNode: %v", err)
	}
	want := `{"type":"heading","content":[{"type":"text","text":"hi"}],"attrs":{"level":2}}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestStepRoundTrip(t *testing.T) {
	step := transform.AddMarkStep{Span: transform.Span{From: 1, To: 4}, Mark: model.Strong}
	data, err := wire.EncodeStep(step)
	if err != nil {
		t.Fatalf("EncodeStep: %v", err)
	}
	got, err := wire.DecodeStep(data)
	if err != nil {
		t.Fatalf("DecodeStep: %v", err)
	}
	ams, ok := got.(transform.AddMarkStep)
	if !ok {
		t.Fatalf("got %T, want AddMarkStep", got)
	}
	if ams.Span != step.Span || ams.Mark.Kind != step.Mark.Kind {
		t.Fatalf("got %+v, want %+v", ams, step)
	}
}

func TestDecodeStepFromRawJSON(t *testing.T) {
	raw := []byte(`{"stepType":"replace","from":986,"to":986,"slice":{"content":[{"type":"text","text":"!"}]}}`)
	got, err := wire.DecodeStep(raw)
	if err != nil {
		t.Fatalf("DecodeStep: %v", err)
	}
	rs, ok := got.(transform.ReplaceStep)
	if !ok {
		t.Fatalf("got %T, want ReplaceStep", got)
	}
	if rs.Span.From != 986 || rs.Span.To != 986 {
		t.Fatalf("got span %+v", rs.Span)
	}
	if rs.Slice.Content.ChildCount() != 1 {
		t.Fatalf("expected one child in slice content")
	}
}
