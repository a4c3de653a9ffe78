package bridge

import "github.com/boergens/docedit/model"

// frame is one level of the Builder's stack: the children accumulated so
// far for an open tag, and the tag itself.
type frame struct {
	children []model.Node
	tag      Tag
}

// Builder consumes a caller-supplied Event stream and assembles a
// document tree, the same way the source's MarkdownDeserializer turns a
// pulldown-cmark Event stream into a MarkdownNode: by pushing a new
// frame on Start, and popping and wrapping it into a concrete node on
// the matching End.
type Builder struct {
	stack []frame
	marks model.MarkSet
}

// NewBuilder creates a Builder primed with an open Doc frame.
func NewBuilder() *Builder {
	b := &Builder{}
	b.pushStack(Tag{Kind: TagDoc})
	return b
}

func (b *Builder) pushStack(tag Tag) {
	b.stack = append(b.stack, frame{tag: tag})
}

func (b *Builder) popStack() (frame, error) {
	if len(b.stack) == 0 {
		return frame{}, &BuildError{StackEmpty: true}
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f, nil
}

func (b *Builder) addContent(n model.Node) error {
	if len(b.stack) == 0 {
		return &BuildError{StackEmpty: true}
	}
	top := len(b.stack) - 1
	b.stack[top].children = append(b.stack[top].children, n)
	return nil
}

// Build consumes events in order and returns the assembled document, or
// an error if the stream isn't well-formed: Start/End tags must nest
// properly and every opened container must be closed. The Doc frame is
// opened implicitly, so the stream carries no Doc Start/End of its own.
func Build(events []Event) (model.Node, error) {
	b := NewBuilder()
	for _, ev := range events {
		if err := b.apply(ev); err != nil {
			return model.Node{}, err
		}
	}
	f, err := b.popStack()
	if err != nil {
		return model.Node{}, err
	}
	if f.tag.Kind != TagDoc {
		return model.Node{}, &BuildError{MisplacedEnd: TagDoc, MisplacedHasTag: true}
	}
	return model.NewDoc(f.children...), nil
}

func (b *Builder) apply(ev Event) error {
	switch ev.Kind {
	case Start:
		switch ev.Tag.Kind {
		case TagParagraph, TagBlockquote, TagCodeBlock, TagBulletList, TagOrderedList, TagItem, TagHeading, TagImage:
			b.pushStack(ev.Tag)
		case TagEmphasis:
			b.marks = b.marks.Add(model.Em)
		case TagStrong:
			b.marks = b.marks.Add(model.Strong)
		case TagLink:
			b.marks = b.marks.Add(model.Link(ev.Tag.Link))
		default:
			return &BuildError{NotSupported: ev.Tag.Kind.String()}
		}
	case End:
		switch ev.Tag.Kind {
		case TagParagraph:
			f, err := b.popStack()
			if err != nil {
				return err
			}
			if f.tag.Kind != TagParagraph {
				return &BuildError{MisplacedEnd: TagParagraph, MisplacedHasTag: true}
			}
			return b.addContent(model.NewParagraph(f.children...))
		case TagHeading:
			f, err := b.popStack()
			if err != nil {
				return err
			}
			if f.tag.Kind != TagHeading {
				return &BuildError{MisplacedEnd: TagHeading, MisplacedHasTag: true}
			}
			return b.addContent(model.NewHeading(f.tag.Heading, f.children...))
		case TagBlockquote:
			f, err := b.popStack()
			if err != nil {
				return err
			}
			if f.tag.Kind != TagBlockquote {
				return &BuildError{MisplacedEnd: TagBlockquote, MisplacedHasTag: true}
			}
			return b.addContent(model.NewBlockquote(f.children...))
		case TagCodeBlock:
			f, err := b.popStack()
			if err != nil {
				return err
			}
			if f.tag.Kind != TagCodeBlock {
				return &BuildError{MisplacedEnd: TagCodeBlock, MisplacedHasTag: true}
			}
			return b.addContent(model.NewCodeBlock(f.tag.CodeBlock, f.children...))
		case TagBulletList:
			f, err := b.popStack()
			if err != nil {
				return err
			}
			if f.tag.Kind != TagBulletList {
				return &BuildError{MisplacedEnd: TagBulletList, MisplacedHasTag: true}
			}
			return b.addContent(model.NewBulletList(model.BulletListAttrs{}, f.children...))
		case TagOrderedList:
			f, err := b.popStack()
			if err != nil {
				return err
			}
			if f.tag.Kind != TagOrderedList {
				return &BuildError{MisplacedEnd: TagOrderedList, MisplacedHasTag: true}
			}
			return b.addContent(model.NewOrderedList(f.tag.OrderedList, f.children...))
		case TagItem:
			f, err := b.popStack()
			if err != nil {
				return err
			}
			if f.tag.Kind != TagItem {
				return &BuildError{MisplacedEnd: TagItem, MisplacedHasTag: true}
			}
			return b.addContent(model.NewListItem(f.children...))
		case TagImage:
			f, err := b.popStack()
			if err != nil {
				return err
			}
			if f.tag.Kind != TagImage {
				return &BuildError{MisplacedEnd: TagImage, MisplacedHasTag: true}
			}
			if len(f.children) > 0 {
				return &BuildError{NoChildren: TagImage, NoChildrenHasTag: true}
			}
			return b.addContent(model.NewImage(f.tag.Image))
		case TagEmphasis:
			b.marks = b.marks.Remove(model.Em)
		case TagStrong:
			b.marks = b.marks.Remove(model.Strong)
		case TagLink:
			b.marks = b.marks.Remove(model.Link(ev.Tag.Link))
		default:
			return &BuildError{NotSupported: ev.Tag.Kind.String()}
		}
	case Text:
		return b.addContent(model.NewTextNodeWithMarks(ev.Text, b.marks))
	case Code:
		return b.addContent(model.NewTextNodeWithMarks(ev.Text, b.marks.Add(model.Code)))
	case HardBreak:
		return b.addContent(model.NewHardBreak())
	case Rule:
		return b.addContent(model.NewHorizontalRule())
	}
	return nil
}
