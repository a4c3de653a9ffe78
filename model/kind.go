package model

// NodeKind identifies the type of a Node in the markdown schema. Equal
// kinds are interchangeable.
type NodeKind uint8

const (
	// Doc is the document root.
	Doc NodeKind = iota
	// Paragraph is a paragraph block.
	Paragraph
	// Heading is a heading, e.g. `<h1>`.
	Heading
	// Blockquote is a block quote.
	Blockquote
	// CodeBlock is a fenced code block.
	CodeBlock
	// BulletList is an unordered list.
	BulletList
	// OrderedList is an ordered list.
	OrderedList
	// ListItem is a single list item.
	ListItem
	// HorizontalRule is a `<hr>`.
	HorizontalRule
	// HardBreak is a `<br>`.
	HardBreak
	// Image is an inline image.
	Image
	// TextKind is a text node.
	TextKind
)

func (k NodeKind) String() string {
	switch k {
	case Doc:
		return "doc"
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Blockquote:
		return "blockquote"
	case CodeBlock:
		return "code_block"
	case BulletList:
		return "bullet_list"
	case OrderedList:
		return "ordered_list"
	case ListItem:
		return "list_item"
	case HorizontalRule:
		return "horizontal_rule"
	case HardBreak:
		return "hard_break"
	case Image:
		return "image"
	case TextKind:
		return "text"
	default:
		return "unknown"
	}
}

// allowMarks reports whether the children of a node of this kind may
// carry marks at all: children of block containers and code blocks never
// may; children of paragraphs, headings and every other kind may.
func (k NodeKind) allowMarks() bool {
	switch k {
	case Doc, Blockquote, BulletList, OrderedList, ListItem, CodeBlock:
		return false
	default:
		return true
	}
}

// AllowMarks reports whether the given mark set is legal on a child of a
// node of this kind. The default schema never restricts individual mark kinds, only
// whether marks are allowed at all.
func (k NodeKind) AllowMarks(marks MarkSet) bool {
	if marks.Len() == 0 {
		return true
	}
	return k.allowMarks()
}

// AllowsMarkType reports whether a mark of the given kind may be applied
// to a child of a node of this NodeKind.
func (k NodeKind) AllowsMarkType(MarkKind) bool {
	return k.allowMarks()
}

// IsInline reports whether a node of this kind may appear in inline
// (as opposed to block) content.
func (k NodeKind) IsInline() bool {
	switch k {
	case TextKind, Image, HardBreak:
		return true
	default:
		return false
	}
}

// IsBlock reports whether a node of this kind may appear in block
// content.
func (k NodeKind) IsBlock() bool {
	switch k {
	case Paragraph, Blockquote, Heading, HorizontalRule, CodeBlock, OrderedList, BulletList:
		return true
	default:
		return false
	}
}

// ContentMatch returns the initial ContentMatch automaton state for a
// node of this kind.
func (k NodeKind) ContentMatch() ContentMatch {
	switch k {
	case Doc:
		return BlockPlus
	case Heading:
		return OrTextImageStar
	case CodeBlock:
		return TextStar
	case TextKind:
		return ContentEmpty
	case Blockquote:
		return BlockPlus
	case Paragraph:
		return InlineStar
	case BulletList, OrderedList:
		return ListItemPlus
	case ListItem:
		return ParagraphBlockStar
	case HorizontalRule, HardBreak, Image:
		return ContentEmpty
	default:
		return ContentEmpty
	}
}

// CompatibleContent reports whether a node of kind k can be joined with a
// node of kind other at an open replace boundary.
func (k NodeKind) CompatibleContent(other NodeKind) bool {
	return k == other || k.ContentMatch().Compatible(other.ContentMatch())
}

// ValidContent reports whether fragment is legal content for a node of
// this kind: its children must match the content expression to a valid
// end state, and every child's marks must be allowed by this kind.
func (k NodeKind) ValidContent(fragment Fragment) bool {
	m, ok := k.ContentMatch().MatchFragment(fragment)
	if !ok || !m.ValidEnd() {
		return false
	}
	for _, child := range fragment.children {
		if !k.AllowMarks(child.Marks()) {
			return false
		}
	}
	return true
}
