package model_test

import (
	"testing"

	"github.com/boergens/docedit/model"
)

func TestParagraphAcceptsInlineStar(t *testing.T) {
	frag := model.NewFragment([]model.Node{model.NewTextNode("a"), model.NewImage(model.ImageAttrs{Src: "x"})})
	if !model.Paragraph.ValidContent(frag) {
		t.Fatalf("expected paragraph to accept text+image content")
	}
}

func TestCodeBlockRejectsBlockChild(t *testing.T) {
	frag := model.NewFragment([]model.Node{p("x")})
	if model.CodeBlock.ValidContent(frag) {
		t.Fatalf("expected code_block to reject a paragraph child")
	}
}

func TestDocRequiresAtLeastOneBlock(t *testing.T) {
	if model.Doc.ValidContent(model.EmptyFragment) {
		t.Fatalf("expected doc (block+) to reject empty content")
	}
}

func TestListItemAcceptsParagraphThenBlocks(t *testing.T) {
	frag := model.NewFragment([]model.Node{p("a"), model.NewBlockquote(p("b"))})
	if !model.ListItem.ValidContent(frag) {
		t.Fatalf("expected list_item to accept paragraph followed by blocks")
	}
}

func TestCompatibleContentAcrossBlockPlusAndParagraphBlockStar(t *testing.T) {
	if !model.Blockquote.CompatibleContent(model.ListItem) {
		t.Fatalf("expected blockquote (block+) and list_item (paragraph block*) to be compatible")
	}
}
