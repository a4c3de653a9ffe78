package model

import "golang.org/x/text/unicode/norm"

// Fragment is an ordered sequence of sibling nodes with a cached total
// content size.
type Fragment struct {
	children []Node
	size     int
}

// EmptyFragment is the canonical empty fragment.
var EmptyFragment = Fragment{}

// NewFragment builds a fragment from a slice of nodes, computing and
// caching its total size.
func NewFragment(nodes []Node) Fragment {
	size := 0
	for _, n := range nodes {
		size += n.Size()
	}
	return Fragment{children: nodes, size: size}
}

// Size returns the cached total content size.
func (f Fragment) Size() int { return f.size }

// ChildCount returns the number of direct children.
func (f Fragment) ChildCount() int { return len(f.children) }

// Child returns the child at index, or false if index is out of range.
func (f Fragment) Child(index int) (Node, bool) {
	if index < 0 || index >= len(f.children) {
		return Node{}, false
	}
	return f.children[index], true
}

// Children returns the child slice. Callers must not mutate it.
func (f Fragment) Children() []Node { return f.children }

// fragIndex is the result of FindIndex: the index of the child the
// position falls on or before, and the absolute offset immediately
// before that child.
type fragIndex struct {
	Index  int
	Offset int
}

// FindIndex maps an in-fragment offset to {index, offsetBeforeChild}.
func (f Fragment) FindIndex(pos int, round bool) (fragIndex, error) {
	switch {
	case pos == 0:
		return fragIndex{0, 0}, nil
	case pos == f.size:
		return fragIndex{len(f.children), f.size}, nil
	case pos > f.size:
		return fragIndex{}, &IndexError{Pos: pos}
	}
	curPos := 0
	for i, child := range f.children {
		end := curPos + child.Size()
		if end >= pos {
			if end == pos || round {
				return fragIndex{i + 1, end}, nil
			}
			return fragIndex{i, curPos}, nil
		}
		curPos = end
	}
	// unreachable if size invariant holds
	return fragIndex{}, &IndexError{Pos: pos}
}

// Cut extracts the absolute range [from, to) of content as a new
// fragment. A full-range cut returns the receiver unchanged.
func (f Fragment) Cut(from, to int) Fragment {
	if from == 0 && to == f.size {
		return f
	}
	var result []Node
	size := 0
	if to > from {
		pos := 0
		for _, child := range f.children {
			if pos >= to {
				break
			}
			end := pos + child.Size()
			if end > from {
				var newChild Node
				if pos < from || end > to {
					lo := maxInt(0, from-pos)
					if child.IsText() {
						hi := minInt(child.Size(), to-pos)
						newChild = child.Cut(lo, hi)
					} else {
						hi := minInt(child.ContentSize(), to-pos-1)
						newChild = child.Cut(maxInt(0, from-pos-1), hi)
					}
				} else {
					newChild = child
				}
				result = append(result, newChild)
				size += newChild.Size()
			}
			pos = end
		}
	}
	return Fragment{children: result, size: size}
}

// Append concatenates f and other. If the rightmost child of f and the
// leftmost child of other are text nodes with equal mark sets, they are
// merged into a single text node.
func (f Fragment) Append(other Fragment) Fragment {
	if len(f.children) == 0 {
		return other
	}
	if len(other.children) == 0 {
		return f
	}
	last := f.children[len(f.children)-1]
	first := other.children[0]
	lastText, lastMarks, lastOK := last.TextNode()
	firstText, firstMarks, firstOK := first.TextNode()
	if lastOK && firstOK && lastMarks.Equal(firstMarks) {
		merged := norm.NFC.String(lastText.String() + firstText.String())
		mergedNode := newTextNodeInternal(NewText(merged), lastMarks)
		out := make([]Node, 0, len(f.children)+len(other.children)-1)
		out = append(out, f.children[:len(f.children)-1]...)
		out = append(out, mergedNode)
		out = append(out, other.children[1:]...)
		return NewFragment(out)
	}
	out := make([]Node, 0, len(f.children)+len(other.children))
	out = append(out, f.children...)
	out = append(out, other.children...)
	return NewFragment(out)
}

// ReplaceChild returns a fragment with the child at index replaced,
// sharing the unchanged prefix and suffix. If newChild equals the
// existing child, the receiver is returned unchanged.
func (f Fragment) ReplaceChild(index int, newChild Node) Fragment {
	if index >= 0 && index < len(f.children) && f.children[index].Equal(newChild) {
		return f
	}
	out := make([]Node, len(f.children))
	copy(out, f.children)
	out[index] = newChild
	return NewFragment(out)
}

// NodesBetween performs a depth-first, left-to-right traversal of nodes
// overlapping [from, to), invoking visit(node, absolutePos). If visit
// returns false for a node, its children are not descended into.
func (f Fragment) NodesBetween(from, to int, visit func(Node, int) bool, baseOffset int) {
	pos := 0
	for _, child := range f.children {
		if pos >= to {
			break
		}
		end := pos + child.Size()
		if end > from && visit(child, baseOffset+pos) {
			if content, ok := child.Content(); ok {
				start := pos + 1
				content.NodesBetween(maxInt(0, from-start), minInt(content.Size(), to-start), visit, baseOffset+start)
			}
		}
		pos = end
	}
}

// TextBetween extracts the text content between two positions into buf,
// inserting blockSep once whenever a new block region begins and
// leafText for non-text leaves. Repeated block separators are
// suppressed.
func (f Fragment) TextBetween(from, to int, blockSep, leafText string, hasBlockSep, hasLeafText bool) string {
	var buf []byte
	separated := true
	f.NodesBetween(from, to, func(n Node, pos int) bool {
		if pos >= to {
			return true
		}
		if text, _, ok := n.TextNode(); ok {
			s := text.String()
			skip := 0
			if from > pos {
				skip = from - pos
				_, s = splitAtUTF16(s, minInt(skip, utf16Len(s)))
			}
			want := (to - pos) - skip
			s, _ = splitAtUTF16(s, maxInt(0, minInt(want, utf16Len(s))))
			buf = append(buf, s...)
			separated = !hasBlockSep
		} else if n.IsLeaf() {
			if hasLeafText {
				buf = append(buf, leafText...)
			}
			separated = !hasBlockSep
		} else if !separated && n.IsBlock() {
			if hasBlockSep {
				buf = append(buf, blockSep...)
			}
			separated = true
		}
		return true
	}, 0)
	return string(buf)
}

func utf16Len(s string) int {
	return NewText(s).Len16()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
