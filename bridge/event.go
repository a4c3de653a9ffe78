package bridge

import "github.com/boergens/docedit/model"

// EventKind identifies the kind of a bridge Event.
type EventKind uint8

const (
	Start EventKind = iota
	End
	Text
	Code
	HardBreak
	Rule
)

func (k EventKind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	case Text:
		return "text"
	case Code:
		return "code"
	case HardBreak:
		return "hard_break"
	case Rule:
		return "rule"
	default:
		return "unknown"
	}
}

// TagKind identifies the kind of container a Start/End event pair
// delimits.
type TagKind uint8

const (
	TagDoc TagKind = iota
	TagParagraph
	TagHeading
	TagBlockquote
	TagCodeBlock
	TagBulletList
	TagOrderedList
	TagItem
	TagEmphasis
	TagStrong
	TagLink
	TagImage
)

func (k TagKind) String() string {
	switch k {
	case TagDoc:
		return "doc"
	case TagParagraph:
		return "paragraph"
	case TagHeading:
		return "heading"
	case TagBlockquote:
		return "blockquote"
	case TagCodeBlock:
		return "code_block"
	case TagBulletList:
		return "bullet_list"
	case TagOrderedList:
		return "ordered_list"
	case TagItem:
		return "item"
	case TagEmphasis:
		return "emphasis"
	case TagStrong:
		return "strong"
	case TagLink:
		return "link"
	case TagImage:
		return "image"
	default:
		return "unknown"
	}
}

// Tag carries the attributes belonging to a Start/End event, when its
// TagKind has any.
type Tag struct {
	Kind        TagKind
	Heading     model.HeadingAttrs
	CodeBlock   model.CodeBlockAttrs
	OrderedList model.OrderedListAttrs
	Link        model.LinkAttrs
	Image       model.ImageAttrs
}

// Event is one step of the markdown bridge stream: the Go analogue of a
// pulldown-cmark Event, reduced to the subset this schema supports.
type Event struct {
	Kind EventKind
	Tag  Tag    // meaningful for Start and End
	Text string // meaningful for Text and Code
}
