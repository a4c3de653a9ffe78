package bridge_test

import (
	"testing"

	"github.com/boergens/docedit/bridge"
	"github.com/boergens/docedit/model"
)

func TestBuildSimpleParagraph(t *testing.T) {
	events := []bridge.Event{
		{Kind: bridge.Start, Tag: bridge.Tag{Kind: bridge.TagParagraph}},
		{Kind: bridge.Text, Text: "Hello World!"},
		{Kind: bridge.End, Tag: bridge.Tag{Kind: bridge.TagParagraph}},
	}
	got, err := bridge.Build(events)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := model.NewDoc(model.NewParagraph(model.NewTextNode("Hello World!")))
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuildWithStrongMark(t *testing.T) {
	events := []bridge.Event{
		{Kind: bridge.Start, Tag: bridge.Tag{Kind: bridge.TagParagraph}},
		{Kind: bridge.Text, Text: "Hello "},
		{Kind: bridge.Start, Tag: bridge.Tag{Kind: bridge.TagStrong}},
		{Kind: bridge.Text, Text: "World"},
		{Kind: bridge.End, Tag: bridge.Tag{Kind: bridge.TagStrong}},
		{Kind: bridge.Text, Text: "!"},
		{Kind: bridge.End, Tag: bridge.Tag{Kind: bridge.TagParagraph}},
	}
	got, err := bridge.Build(events)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := model.NewDoc(model.NewParagraph(
		model.NewTextNode("Hello "),
		model.NewTextNodeWithMarks("World", model.NewMarkSet(model.Strong)),
		model.NewTextNode("!"),
	))
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuildMismatchedEndTag(t *testing.T) {
	events := []bridge.Event{
		{Kind: bridge.Start, Tag: bridge.Tag{Kind: bridge.TagParagraph}},
		{Kind: bridge.End, Tag: bridge.Tag{Kind: bridge.TagBlockquote}},
	}
	if _, err := bridge.Build(events); err == nil {
		t.Fatalf("expected a misplaced end tag error")
	}
}

func TestEmitRoundTripsThroughBuild(t *testing.T) {
	doc := model.NewDoc(model.NewParagraph(
		model.NewTextNode("Hello "),
		model.NewTextNodeWithMarks("World", model.NewMarkSet(model.Strong)),
		model.NewTextNode("!"),
	))
	events := bridge.Emit(doc)
	got, err := bridge.Build(events)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !got.Equal(doc) {
		t.Fatalf("round trip mismatch: got %v, want %v", got, doc)
	}
}

func TestEmitImageHasNoChildren(t *testing.T) {
	doc := model.NewDoc(model.NewParagraph(model.NewImage(model.ImageAttrs{Src: "a.png"})))
	events := bridge.Emit(doc)
	got, err := bridge.Build(events)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !got.Equal(doc) {
		t.Fatalf("round trip mismatch: got %v, want %v", got, doc)
	}
}
