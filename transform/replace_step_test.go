package transform_test

import (
	"testing"

	"github.com/boergens/docedit/model"
	"github.com/boergens/docedit/transform"
)

func TestReplaceStepInsertText(t *testing.T) {
	d1 := model.NewDoc(model.NewParagraph(model.NewTextNode("Hello World")))
	step := transform.ReplaceStep{
		Span:  transform.Span{From: 12, To: 12},
		Slice: model.NewSlice(model.NewFragment([]model.Node{model.NewTextNode("!")}), 0, 0),
	}
	d2, err := step.Apply(d1)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := model.NewDoc(model.NewParagraph(model.NewTextNode("Hello World!")))
	if !d2.Equal(want) {
		t.Fatalf("got %v, want %v", d2, want)
	}
}

func TestReplaceStepDeleteRange(t *testing.T) {
	d1 := model.NewDoc(model.NewParagraph(model.NewTextNode("Hello World!")))
	step := transform.ReplaceStep{
		Span:  transform.Span{From: 6, To: 12},
		Slice: model.EmptySlice,
	}
	d2, err := step.Apply(d1)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := model.NewDoc(model.NewParagraph(model.NewTextNode("Hello!")))
	if !d2.Equal(want) {
		t.Fatalf("got %v, want %v", d2, want)
	}
}

func TestReplaceStepStructureRejectsOverwrite(t *testing.T) {
	d1 := model.NewDoc(
		model.NewParagraph(model.NewTextNode("one")),
		model.NewParagraph(model.NewTextNode("two")),
	)
	step := transform.ReplaceStep{
		Span:      transform.Span{From: 0, To: 10},
		Slice:     model.EmptySlice,
		Structure: true,
	}
	if _, err := step.Apply(d1); err == nil {
		t.Fatalf("expected structure violation error, got nil")
	}
}

func TestReplaceAroundStepWrapsGap(t *testing.T) {
	d1 := model.NewDoc(model.NewParagraph(model.NewTextNode("content")))

	wrapped := model.NewFragment([]model.Node{model.NewBlockquote()})
	step := transform.ReplaceAroundStep{
		Span:    transform.Span{From: 0, To: 9},
		GapFrom: 0,
		GapTo:   9,
		Slice:   model.NewSlice(wrapped, 0, 0),
		Insert:  1,
	}
	d2, err := step.Apply(d1)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := model.NewDoc(model.NewBlockquote(model.NewParagraph(model.NewTextNode("content"))))
	if !d2.Equal(want) {
		t.Fatalf("got %v, want %v", d2, want)
	}
}
