package model_test

import (
	"testing"

	"github.com/boergens/docedit/model"
)

func p(s string) model.Node { return model.NewParagraph(model.NewTextNode(s)) }

func h1(s string) model.Node {
	return model.NewHeading(model.HeadingAttrs{Level: 1}, model.NewTextNode(s))
}

func ul(children ...model.Node) model.Node {
	return model.NewBulletList(model.BulletListAttrs{}, children...)
}

func li(children ...model.Node) model.Node { return model.NewListItem(children...) }

// rpl replaces [from, to) in doc with a slice cut from insert's [sFrom,
// sTo), or the empty slice when insert is nil, and checks the result.
func rpl(t *testing.T, doc model.Node, from, to int, insert *model.Node, sFrom, sTo int, expected model.Node) {
	t.Helper()
	slice := model.EmptySlice
	if insert != nil {
		s, err := insert.Slice(sFrom, sTo, false)
		if err != nil {
			t.Fatalf("slice(%d,%d): %v", sFrom, sTo, err)
		}
		slice = s
	}
	got, err := doc.Replace(from, to, slice)
	if err != nil {
		t.Fatalf("replace(%d,%d): %v", from, to, err)
	}
	if !got.Equal(expected) {
		t.Fatalf("got %v, want %v", got, expected)
	}
}

func TestJoinOnDelete(t *testing.T) {
	t1 := model.NewDoc(p("one"), p("two"))
	e1 := model.NewDoc(p("onwo"))
	rpl(t, t1, 3, 7, nil, 0, 0, e1)
}

func TestMergesMatchingBlocks(t *testing.T) {
	t2 := model.NewDoc(p("one"), p("two"))
	i2 := model.NewDoc(p("xxxx"), p("yyyy"))
	e2 := model.NewDoc(p("onxx"), p("yywo"))
	rpl(t, t2, 3, 7, &i2, 3, 9, e2)
}

func TestMergesWhenAddingText(t *testing.T) {
	t3 := model.NewDoc(p("one"), p("two"))
	i3 := model.NewDoc(p("H"))
	e3 := model.NewDoc(p("onHwo"))
	rpl(t, t3, 3, 7, &i3, 1, 2, e3)
}

func TestCanInsertText(t *testing.T) {
	t4 := model.NewDoc(p("before"), p("one"), p("after"))
	i4 := model.NewDoc(p("H"))
	e4 := model.NewDoc(p("before"), p("onHe"), p("after"))
	rpl(t, t4, 11, 11, &i4, 1, 2, e4)
}

func TestDoesntMergeNonMatchingBlocks(t *testing.T) {
	t5 := model.NewDoc(p("one"), p("two"))
	i5 := model.NewDoc(h1("H"))
	e5 := model.NewDoc(p("onHwo"))
	rpl(t, t5, 3, 7, &i5, 1, 2, e5)
}

func TestCanMergeANestedNode(t *testing.T) {
	t6 := model.NewDoc(model.NewBlockquote(model.NewBlockquote(p("one"), p("two"))))
	i6 := model.NewDoc(p("H"))
	e6 := model.NewDoc(model.NewBlockquote(model.NewBlockquote(p("onHwo"))))
	rpl(t, t6, 5, 9, &i6, 1, 2, e6)
}

func TestCanReplaceWithinABlock(t *testing.T) {
	tt := model.NewDoc(model.NewBlockquote(p("abcd")))
	i := model.NewDoc(p("xyz"))
	e := model.NewDoc(model.NewBlockquote(p("ayd")))
	rpl(t, tt, 3, 5, &i, 2, 3, e)
}

func TestCanInsertALopsidedSlice(t *testing.T) {
	tt := model.NewDoc(model.NewBlockquote(model.NewBlockquote(p("one"), p("two"), p("three"))))
	i := model.NewDoc(model.NewBlockquote(p("aaaa"), p("bb"), p("cc"), p("dd")))
	e := model.NewDoc(model.NewBlockquote(model.NewBlockquote(p("onaa"), p("bb"), p("cc"), p("three"))))
	rpl(t, tt, 5, 12, &i, 4, 15, e)
}

func TestCanMergeMultipleLevels(t *testing.T) {
	tt := model.NewDoc(
		model.NewBlockquote(model.NewBlockquote(p("hello"))),
		model.NewBlockquote(model.NewBlockquote(p("a"))),
	)
	e := model.NewDoc(model.NewBlockquote(model.NewBlockquote(p("hella"))))
	rpl(t, tt, 7, 14, nil, 0, 0, e)
}

func TestCanMergeMultipleLevelsWhileInserting(t *testing.T) {
	tt := model.NewDoc(
		model.NewBlockquote(model.NewBlockquote(p("hello"))),
		model.NewBlockquote(model.NewBlockquote(p("a"))),
	)
	i := model.NewDoc(p("i"))
	e := model.NewDoc(model.NewBlockquote(model.NewBlockquote(p("hellia"))))
	rpl(t, tt, 7, 14, &i, 1, 2, e)
}

func TestCanInsertASplit(t *testing.T) {
	tt := model.NewDoc(p("foobar"))
	i := model.NewDoc(p("x"), p("y"))
	e := model.NewDoc(p("foox"), p("ybar"))
	rpl(t, tt, 4, 4, &i, 1, 5, e)
}

func TestKeepsTheNodeTypeOfTheLeftNode(t *testing.T) {
	tt := model.NewDoc(h1("foobar"))
	i := model.NewDoc(p("foobaz"))
	e := model.NewDoc(h1("foobaz"))
	rpl(t, tt, 4, 8, &i, 4, 8, e)
}

func TestKeepsTheNodeTypeEvenWhenEmpty(t *testing.T) {
	tt := model.NewDoc(h1("bar"))
	i := model.NewDoc(p("foobaz"))
	e := model.NewDoc(h1("baz"))
	rpl(t, tt, 1, 5, &i, 4, 8, e)
}

func TestDoesntAllowTheLeftSideToBeTooDeep(t *testing.T) {
	tt := model.NewDoc(p(""))
	i := model.NewDoc(model.NewBlockquote(p("")))
	s, err := i.Slice(2, 4, false)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if _, err := tt.Replace(1, 1, s); err == nil {
		t.Fatalf("expected InsertTooDeep error")
	}
}

func TestRejectsABadFit(t *testing.T) {
	tt := model.NewDoc()
	i := model.NewDoc(p("foo"))
	s, err := i.Slice(1, 4, false)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if _, err := tt.Replace(0, 0, s); err == nil {
		t.Fatalf("expected InvalidContent error")
	}
}

func TestRejectsUnjoinableContent(t *testing.T) {
	tt := model.NewDoc(ul(li(p("a"))))
	i := model.NewDoc(p("foo"))
	s, err := i.Slice(4, 5, false)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if _, err := tt.Replace(6, 7, s); err == nil {
		t.Fatalf("expected CannotJoin error")
	}
}

func TestRejectsAnUnjoinableDelete(t *testing.T) {
	tt := model.NewDoc(model.NewBlockquote(p("a")), ul(li(p("b"))))
	if _, err := tt.Replace(4, 6, model.EmptySlice); err == nil {
		t.Fatalf("expected CannotJoin error")
	}
}

func TestCheckContentValidity(t *testing.T) {
	tt := model.NewDoc(model.NewBlockquote(p("hi")))
	i := model.NewDoc(model.NewBlockquote(model.NewTextNode("hi")))
	s, err := i.Slice(3, 4, false)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if _, err := tt.Replace(1, 6, s); err == nil {
		t.Fatalf("expected InvalidContent error")
	}
}
