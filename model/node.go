package model

import "github.com/rivo/uniseg"

// Node is a node in the document tree. It dispatches to one of five
// underlying shapes (text, block-with-content, attr-node, leaf, unit)
// through the nodeData interface.
type Node struct {
	kind NodeKind
	data nodeData
}

// nodeData is implemented by the five node shapes.
type nodeData interface {
	content() (Fragment, bool)
	textNode() (Text, MarkSet, bool)
	attrs() any
	withContent(Fragment) nodeData
	equal(nodeData) bool
}

// --- text shape ---

type textData struct {
	text  Text
	marks MarkSet
}

func (d textData) content() (Fragment, bool)         { return Fragment{}, false }
func (d textData) textNode() (Text, MarkSet, bool)    { return d.text, d.marks, true }
func (d textData) attrs() any                         { return nil }
func (d textData) withContent(Fragment) nodeData      { return d }
func (d textData) equal(o nodeData) bool {
	od, ok := o.(textData)
	return ok && od.text.String() == d.text.String() && od.marks.Equal(d.marks)
}

// --- block-with-content shape (Doc, Paragraph, Blockquote, ListItem) ---

type blockData struct {
	content_ Fragment
}

func (d blockData) content() (Fragment, bool)      { return d.content_, true }
func (d blockData) textNode() (Text, MarkSet, bool) { return Text{}, MarkSet{}, false }
func (d blockData) attrs() any                      { return nil }
func (d blockData) withContent(f Fragment) nodeData { return blockData{content_: f} }
func (d blockData) equal(o nodeData) bool {
	od, ok := o.(blockData)
	return ok && fragmentsEqual(d.content_, od.content_)
}

// --- attr-node shape (Heading, CodeBlock, BulletList, OrderedList) ---

type attrData struct {
	attrs_   any
	content_ Fragment
}

func (d attrData) content() (Fragment, bool)      { return d.content_, true }
func (d attrData) textNode() (Text, MarkSet, bool) { return Text{}, MarkSet{}, false }
func (d attrData) attrs() any                      { return d.attrs_ }
func (d attrData) withContent(f Fragment) nodeData { return attrData{attrs_: d.attrs_, content_: f} }
func (d attrData) equal(o nodeData) bool {
	od, ok := o.(attrData)
	return ok && d.attrs_ == od.attrs_ && fragmentsEqual(d.content_, od.content_)
}

// --- leaf shape (Image: attrs only, no content) ---

type leafData struct {
	attrs_ any
}

func (d leafData) content() (Fragment, bool)      { return Fragment{}, false }
func (d leafData) textNode() (Text, MarkSet, bool) { return Text{}, MarkSet{}, false }
func (d leafData) attrs() any                      { return d.attrs_ }
func (d leafData) withContent(Fragment) nodeData   { return d }
func (d leafData) equal(o nodeData) bool {
	od, ok := o.(leafData)
	return ok && d.attrs_ == od.attrs_
}

// --- unit shape (HorizontalRule, HardBreak: no content, no attrs) ---

type unitData struct{}

func (d unitData) content() (Fragment, bool)      { return Fragment{}, false }
func (d unitData) textNode() (Text, MarkSet, bool) { return Text{}, MarkSet{}, false }
func (d unitData) attrs() any                      { return nil }
func (d unitData) withContent(Fragment) nodeData   { return d }
func (d unitData) equal(o nodeData) bool {
	_, ok := o.(unitData)
	return ok
}

func fragmentsEqual(a, b Fragment) bool {
	if a.size != b.size || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !a.children[i].Equal(b.children[i]) {
			return false
		}
	}
	return true
}

// --- constructors ---

func newTextNodeInternal(t Text, marks MarkSet) Node {
	return Node{kind: TextKind, data: textData{text: t, marks: marks}}
}

// NewTextNode creates a text node with no marks.
func NewTextNode(s string) Node {
	return newTextNodeInternal(NewText(s), EmptyMarkSet)
}

// NewTextNodeWithMarks creates a text node carrying the given marks.
func NewTextNodeWithMarks(s string, marks MarkSet) Node {
	return newTextNodeInternal(NewText(s), marks)
}

// NewDoc builds the document root.
func NewDoc(children ...Node) Node {
	return Node{kind: Doc, data: blockData{content_: NewFragment(children)}}
}

// NewParagraph builds a paragraph node.
func NewParagraph(children ...Node) Node {
	return Node{kind: Paragraph, data: blockData{content_: NewFragment(children)}}
}

// NewBlockquote builds a blockquote node.
func NewBlockquote(children ...Node) Node {
	return Node{kind: Blockquote, data: blockData{content_: NewFragment(children)}}
}

// NewListItem builds a list item node.
func NewListItem(children ...Node) Node {
	return Node{kind: ListItem, data: blockData{content_: NewFragment(children)}}
}

// NewHeading builds a heading node.
func NewHeading(attrs HeadingAttrs, children ...Node) Node {
	return Node{kind: Heading, data: attrData{attrs_: attrs, content_: NewFragment(children)}}
}

// NewCodeBlock builds a code block node.
func NewCodeBlock(attrs CodeBlockAttrs, children ...Node) Node {
	return Node{kind: CodeBlock, data: attrData{attrs_: attrs, content_: NewFragment(children)}}
}

// NewBulletList builds a bullet list node.
func NewBulletList(attrs BulletListAttrs, children ...Node) Node {
	return Node{kind: BulletList, data: attrData{attrs_: attrs, content_: NewFragment(children)}}
}

// NewOrderedList builds an ordered list node.
func NewOrderedList(attrs OrderedListAttrs, children ...Node) Node {
	return Node{kind: OrderedList, data: attrData{attrs_: attrs, content_: NewFragment(children)}}
}

// NewImage builds an image node.
func NewImage(attrs ImageAttrs) Node {
	return Node{kind: Image, data: leafData{attrs_: attrs}}
}

// NewHorizontalRule builds a horizontal rule node.
func NewHorizontalRule() Node {
	return Node{kind: HorizontalRule, data: unitData{}}
}

// NewHardBreak builds a hard break node.
func NewHardBreak() Node {
	return Node{kind: HardBreak, data: unitData{}}
}

// --- accessors ---

// Kind returns the node's NodeKind.
func (n Node) Kind() NodeKind { return n.kind }

// Content returns the node's fragment, if it has one.
func (n Node) Content() (Fragment, bool) { return n.data.content() }

// ContentSize returns content().Size(), or 0 for nodes without content.
func (n Node) ContentSize() int {
	if c, ok := n.data.content(); ok {
		return c.Size()
	}
	return 0
}

// TextNode returns the (Text, MarkSet) pair if this is a text node.
func (n Node) TextNode() (Text, MarkSet, bool) { return n.data.textNode() }

// Marks returns the node's mark set (empty for non-text nodes in this
// schema).
func (n Node) Marks() MarkSet {
	if _, marks, ok := n.data.textNode(); ok {
		return marks
	}
	return EmptyMarkSet
}

// Attrs returns the node's attribute value, or nil if it has none.
func (n Node) Attrs() any { return n.data.attrs() }

// IsLeaf reports whether this node has no content fragment. Text nodes
// are leaves under this definition: they carry a string, not a child
// fragment.
func (n Node) IsLeaf() bool {
	_, hasContent := n.data.content()
	return !hasContent
}

// IsText reports whether this is a text node.
func (n Node) IsText() bool {
	_, _, ok := n.data.textNode()
	return ok
}

// IsBlock reports whether this node's kind is a block kind.
func (n Node) IsBlock() bool { return n.kind.IsBlock() }

// IsInline reports whether this node's kind is an inline kind.
func (n Node) IsInline() bool { return n.kind.IsInline() }

// Size returns the node's size under the integer position scheme: the
// UTF-16 length for text, 1 for other leaves, content.size+2 otherwise.
func (n Node) Size() int {
	if c, ok := n.data.content(); ok {
		return c.Size() + 2
	}
	if t, _, ok := n.data.textNode(); ok {
		return t.Len16()
	}
	return 1
}

// Child returns the child node at index.
func (n Node) Child(index int) (Node, bool) {
	c, ok := n.data.content()
	if !ok {
		return Node{}, false
	}
	return c.Child(index)
}

// ChildCount returns the number of direct children.
func (n Node) ChildCount() int {
	c, ok := n.data.content()
	if !ok {
		return 0
	}
	return c.ChildCount()
}

// FirstChild returns the node's first child, if any.
func (n Node) FirstChild() (Node, bool) { return n.Child(0) }

// Equal reports deep structural equality.
func (n Node) Equal(o Node) bool {
	return n.kind == o.kind && n.data.equal(o.data)
}

// Copy returns a node with the same markup as n, whose content is the
// result of mapping n's fragment through f. For leaf/unit/text nodes f
// is never invoked and the same node is returned unchanged.
func (n Node) Copy(f func(Fragment) Fragment) Node {
	content, ok := n.data.content()
	if !ok {
		return n
	}
	return Node{kind: n.kind, data: n.data.withContent(f(content))}
}

// Mark returns a copy of n with its mark set replaced. Non-text nodes in
// this schema carry no marks, so Mark is a no-op on them.
func (n Node) Mark(marks MarkSet) Node {
	if t, _, ok := n.data.textNode(); ok {
		return newTextNodeInternal(t, marks)
	}
	return n
}

// Cut extracts the sub-node covering the absolute range [from, to).
func (n Node) Cut(from, to int) Node {
	if t, marks, ok := n.data.textNode(); ok {
		len16 := t.Len16()
		if from == 0 && to == len16 {
			return n
		}
		_, rest := splitAtUTF16(t.String(), from)
		rest, _ = splitAtUTF16(rest, to-from)
		return newTextNodeInternal(NewText(rest), marks)
	}
	size := n.ContentSize()
	if from == 0 && to == size {
		return n
	}
	return n.Copy(func(c Fragment) Fragment { return c.Cut(from, to) })
}

// TextContent concatenates all text found in this node and its
// descendants.
func (n Node) TextContent() string {
	if t, _, ok := n.data.textNode(); ok {
		return t.String()
	}
	if c, ok := n.data.content(); ok {
		return c.TextBetween(0, c.Size(), "", "", true, false)
	}
	return ""
}

// String renders a short debug form of the node.
func (n Node) String() string {
	if t, _, ok := n.data.textNode(); ok {
		return n.kind.String() + "(" + t.String() + ")"
	}
	return n.kind.String()
}

// Preview renders a grapheme-cluster-safe truncated preview of a text
// node's content, for diagnostics and debug output. Non-text nodes
// preview as their kind name.
func (n Node) Preview(maxGraphemes int) string {
	t, _, ok := n.data.textNode()
	if !ok {
		return n.kind.String()
	}
	s := t.String()
	if maxGraphemes <= 0 {
		return ""
	}
	gr := uniseg.NewGraphemes(s)
	count := 0
	end := 0
	truncated := false
	for gr.Next() {
		if count == maxGraphemes {
			truncated = true
			break
		}
		_, to := gr.Positions()
		end = to
		count++
	}
	if !truncated {
		return s
	}
	return s[:end] + "…"
}
