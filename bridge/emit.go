package bridge

import "github.com/boergens/docedit/model"

// Emit walks doc and returns the equivalent Event stream, the reverse of
// Build. Marks are tracked on a stack exactly like the source's
// MarkdownSerializer: a run of adjacent inline nodes opens a mark the
// first time it's seen and keeps it open across sibling text nodes,
// closing it (innermost first) as soon as a sibling's mark set no
// longer contains it.
//
// Unlike the source's lazy Iterator, Emit materializes the whole stream
// eagerly: callers here (the tests and docedit.Serialize) always want the complete stream, so there's no reason to pay for
// step-at-a-time iterator state.
func Emit(doc model.Node) []Event {
	return emitNode(doc)
}

func markTag(m model.Mark) Tag {
	switch m.Kind {
	case model.MarkStrong:
		return Tag{Kind: TagStrong}
	case model.MarkEm:
		return Tag{Kind: TagEmphasis}
	case model.MarkLink:
		return Tag{Kind: TagLink, Link: m.Link}
	default:
		panic("markTag: code is never pushed onto the mark stack")
	}
}

func emitNode(n model.Node) []Event {
	switch n.Kind() {
	case model.Doc:
		content, _ := n.Content()
		return emitChildren(content.Children())
	case model.Paragraph:
		content, _ := n.Content()
		return wrap(Tag{Kind: TagParagraph}, emitChildren(content.Children()))
	case model.Heading:
		content, _ := n.Content()
		attrs, _ := n.Attrs().(model.HeadingAttrs)
		return wrap(Tag{Kind: TagHeading, Heading: attrs}, emitChildren(content.Children()))
	case model.Blockquote:
		content, _ := n.Content()
		return wrap(Tag{Kind: TagBlockquote}, emitChildren(content.Children()))
	case model.CodeBlock:
		content, _ := n.Content()
		attrs, _ := n.Attrs().(model.CodeBlockAttrs)
		return wrap(Tag{Kind: TagCodeBlock, CodeBlock: attrs}, emitChildren(content.Children()))
	case model.BulletList:
		content, _ := n.Content()
		return wrap(Tag{Kind: TagBulletList}, emitChildren(content.Children()))
	case model.OrderedList:
		content, _ := n.Content()
		attrs, _ := n.Attrs().(model.OrderedListAttrs)
		return wrap(Tag{Kind: TagOrderedList, OrderedList: attrs}, emitChildren(content.Children()))
	case model.ListItem:
		content, _ := n.Content()
		return wrap(Tag{Kind: TagItem}, emitChildren(content.Children()))
	case model.HorizontalRule:
		return []Event{{Kind: Rule}}
	case model.HardBreak:
		return []Event{{Kind: HardBreak}}
	case model.Image:
		attrs, _ := n.Attrs().(model.ImageAttrs)
		return wrap(Tag{Kind: TagImage, Image: attrs}, nil)
	default:
		return nil
	}
}

func wrap(tag Tag, inner []Event) []Event {
	events := make([]Event, 0, len(inner)+2)
	events = append(events, Event{Kind: Start, Tag: tag})
	events = append(events, inner...)
	events = append(events, Event{Kind: End, Tag: tag})
	return events
}

// emitChildren emits a fragment's children in order, threading a stack
// of currently-open marks across consecutive text nodes.
func emitChildren(children []model.Node) []Event {
	var events []Event
	var open []model.Mark

	closeOne := func() {
		top := open[len(open)-1]
		events = append(events, Event{Kind: End, Tag: markTag(top)})
		open = open[:len(open)-1]
	}

	for _, child := range children {
		if text, marks, ok := child.TextNode(); ok {
			keep := 0
			for keep < len(open) {
				if m, has := marks.Has(open[keep].Kind); !has || m != open[keep] {
					break
				}
				keep++
			}
			for len(open) > keep {
				closeOne()
			}
			isCode := false
			for _, m := range marks.Marks() {
				if m.Kind == model.MarkCode {
					isCode = true
					continue
				}
				alreadyOpen := false
				for _, om := range open {
					if om.Kind == m.Kind {
						alreadyOpen = true
						break
					}
				}
				if !alreadyOpen {
					events = append(events, Event{Kind: Start, Tag: markTag(m)})
					open = append(open, m)
				}
			}
			if isCode {
				events = append(events, Event{Kind: Code, Text: text.String()})
			} else {
				events = append(events, Event{Kind: Text, Text: text.String()})
			}
			continue
		}
		for len(open) > 0 {
			closeOne()
		}
		events = append(events, emitNode(child)...)
	}
	for len(open) > 0 {
		closeOne()
	}
	return events
}
