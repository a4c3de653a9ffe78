package model

// Slice is a fragment plus the open depths at its start and end: the
// number of ancestor levels whose opening/closing token is implicitly
// shared with whatever document the slice is inserted into.
type Slice struct {
	Content  Fragment
	OpenStart int
	OpenEnd   int
}

// EmptySlice is the canonical empty slice.
var EmptySlice = Slice{}

// NewSlice builds a slice. When specifying a non-zero open depth, the
// fragment must actually have nodes of at least that depth on the
// appropriate side.
func NewSlice(content Fragment, openStart, openEnd int) Slice {
	return Slice{Content: content, OpenStart: openStart, OpenEnd: openEnd}
}

// SliceRange produces a Slice covering the absolute range [from, to) of
// node. If includeParents is false, only the content shared by both
// endpoints below their common ancestor is kept open.
func SliceRange(node Node, from, to int, includeParents bool) (Slice, error) {
	if from == to {
		return EmptySlice, nil
	}
	rpFrom, err := Resolve(node, from)
	if err != nil {
		return Slice{}, &SliceError{Resolve: resolveErrFromIndex(err)}
	}
	rpTo, err := Resolve(node, to)
	if err != nil {
		return Slice{}, &SliceError{Resolve: resolveErrFromIndex(err)}
	}
	depth := 0
	if !includeParents {
		depth = rpFrom.SharedDepth(to)
	}
	parent := rpFrom.Node(depth)
	content, _ := parent.Content()
	start := rpFrom.Start(depth)
	cut := content.Cut(rpFrom.pos-start, rpTo.pos-start)
	return Slice{Content: cut, OpenStart: rpFrom.depth - depth, OpenEnd: rpTo.depth - depth}, nil
}

// InsertAt locates the insertion point inside s.Content (offset by
// OpenStart) and returns a new slice with fragment spliced in, or
// ok=false if no ancestor would accept the result under its content
// match.
func (s Slice) InsertAt(pos int, fragment Fragment) (Slice, bool, error) {
	content, ok, err := insertInto(s.Content, pos+s.OpenStart, fragment, nil)
	if err != nil {
		return Slice{}, false, err
	}
	if !ok {
		return Slice{}, false, nil
	}
	return Slice{Content: content, OpenStart: s.OpenStart, OpenEnd: s.OpenEnd}, true, nil
}

func insertInto(content Fragment, dist int, insert Fragment, parent *Node) (Fragment, bool, error) {
	idx, err := content.FindIndex(dist, false)
	if err != nil {
		return Fragment{}, false, &InsertError{Index: err.(*IndexError)}
	}
	child, hasChild := content.Child(idx.Index)
	if idx.Offset == dist || (hasChild && child.IsText()) {
		result := content.Cut(0, dist).Append(insert).Append(content.Cut(dist, content.Size()))
		if parent != nil && !parent.Kind().ValidContent(result) {
			return Fragment{}, false, nil
		}
		return result, true, nil
	}
	if !hasChild {
		// Invariant: when offset != dist, FindIndex must have returned a
		// valid child index.
		return Fragment{}, false, &InsertError{Index: &IndexError{Pos: dist}}
	}
	childContent, _ := child.Content()
	inner, ok, err := insertInto(childContent, dist-idx.Offset-1, insert, &child)
	if err != nil {
		return Fragment{}, false, err
	}
	if !ok {
		return Fragment{}, false, nil
	}
	return content.ReplaceChild(idx.Index, child.Copy(func(Fragment) Fragment { return inner })), true, nil
}
