package model

import "sort"

// MarkKind identifies the type of a Mark. Mark kinds are totally ordered
// so that a MarkSet can keep its entries sorted.
type MarkKind uint8

const (
	MarkStrong MarkKind = iota
	MarkEm
	MarkCode
	MarkLink
)

func (k MarkKind) String() string {
	switch k {
	case MarkStrong:
		return "strong"
	case MarkEm:
		return "em"
	case MarkCode:
		return "code"
	case MarkLink:
		return "link"
	default:
		return "unknown"
	}
}

// Mark is a styling annotation on an inline node. A node carries at most
// one mark per MarkKind.
type Mark struct {
	Kind MarkKind
	Link LinkAttrs // only meaningful when Kind == MarkLink
}

// Strong, Em and Code are the attribute-less marks.
var (
	Strong = Mark{Kind: MarkStrong}
	Em     = Mark{Kind: MarkEm}
	Code   = Mark{Kind: MarkCode}
)

// Link builds a link mark with the given attributes.
func Link(attrs LinkAttrs) Mark {
	return Mark{Kind: MarkLink, Link: attrs}
}

// sameValue reports whether two marks of the same kind carry equal
// attributes.
func (m Mark) sameValue(o Mark) bool {
	if m.Kind != o.Kind {
		return false
	}
	if m.Kind == MarkLink {
		return m.Link == o.Link
	}
	return true
}

// MarkSet is a set of marks kept sorted by MarkKind, with at most one
// mark per kind.
type MarkSet struct {
	marks []Mark
}

// EmptyMarkSet is the canonical empty set, returned by operations that
// don't need to allocate.
var EmptyMarkSet = MarkSet{}

// NewMarkSet builds a singleton mark set (the `into_set` operation).
func NewMarkSet(m Mark) MarkSet {
	return MarkSet{marks: []Mark{m}}
}

// Len returns the number of marks in the set.
func (s MarkSet) Len() int { return len(s.marks) }

// Marks returns the sorted marks, as a read-only view.
func (s MarkSet) Marks() []Mark { return s.marks }

// Has reports whether the set contains a mark of the given kind.
func (s MarkSet) Has(kind MarkKind) (Mark, bool) {
	i := sort.Search(len(s.marks), func(i int) bool { return s.marks[i].Kind >= kind })
	if i < len(s.marks) && s.marks[i].Kind == kind {
		return s.marks[i], true
	}
	return Mark{}, false
}

// Add returns a MarkSet with m inserted, replacing any existing mark of
// the same kind. Returns the receiver unchanged (copy-on-write) when the
// set already contains an identical mark.
func (s MarkSet) Add(m Mark) MarkSet {
	i := sort.Search(len(s.marks), func(i int) bool { return s.marks[i].Kind >= m.Kind })
	if i < len(s.marks) && s.marks[i].Kind == m.Kind {
		if s.marks[i].sameValue(m) {
			return s
		}
		out := make([]Mark, len(s.marks))
		copy(out, s.marks)
		out[i] = m
		return MarkSet{marks: out}
	}
	out := make([]Mark, 0, len(s.marks)+1)
	out = append(out, s.marks[:i]...)
	out = append(out, m)
	out = append(out, s.marks[i:]...)
	return MarkSet{marks: out}
}

// Remove returns a MarkSet with any mark of m's kind removed. Returns the
// receiver unchanged when no such mark is present.
func (s MarkSet) Remove(m Mark) MarkSet {
	i := sort.Search(len(s.marks), func(i int) bool { return s.marks[i].Kind >= m.Kind })
	if i >= len(s.marks) || s.marks[i].Kind != m.Kind {
		return s
	}
	out := make([]Mark, 0, len(s.marks)-1)
	out = append(out, s.marks[:i]...)
	out = append(out, s.marks[i+1:]...)
	return MarkSet{marks: out}
}

// Equal reports whether two mark sets contain the same marks.
func (s MarkSet) Equal(o MarkSet) bool {
	if len(s.marks) != len(o.marks) {
		return false
	}
	for i := range s.marks {
		if s.marks[i].Kind != o.marks[i].Kind || !s.marks[i].sameValue(o.marks[i]) {
			return false
		}
	}
	return true
}
