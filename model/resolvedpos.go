package model

// resolvedNode is one entry on a ResolvedPos's ancestor path.
type resolvedNode struct {
	node   Node
	index  int
	before int
}

// ResolvedPos decomposes an absolute integer position into its ancestor
// path, per-depth indices and offsets, and the offset into its deepest
// ancestor. It borrows the document it was resolved against: it is only
// valid as long as that document value is in scope (which, since
// documents are immutable, is always, for a Go reference).
type ResolvedPos struct {
	pos          int
	path         []resolvedNode
	parentOffset int
	depth        int
}

// Resolve descends from root to build a ResolvedPos for pos.
func Resolve(root Node, pos int) (ResolvedPos, error) {
	if pos > root.ContentSize() {
		return ResolvedPos{}, &ResolveError{Range: &RangeError{Pos: pos}}
	}
	var path []resolvedNode
	start := 0
	parentOffset := pos
	node := root
	for {
		content, _ := node.Content()
		idx, err := content.FindIndex(parentOffset, false)
		if err != nil {
			return ResolvedPos{}, resolveErrFromIndex(err)
		}
		rem := parentOffset - idx.Offset
		path = append(path, resolvedNode{node: node, index: idx.Index, before: start + idx.Offset})
		if rem == 0 {
			break
		}
		child, ok := node.Child(idx.Index)
		if !ok {
			return ResolvedPos{}, &ResolveError{Index: &IndexError{Pos: parentOffset}}
		}
		node = child
		if node.IsText() {
			break
		}
		parentOffset = rem - 1
		start += idx.Offset + 1
	}
	return ResolvedPos{pos: pos, path: path, parentOffset: parentOffset, depth: len(path) - 1}, nil
}

// Pos returns the absolute position this ResolvedPos was resolved for.
func (rp ResolvedPos) Pos() int { return rp.pos }

// Depth returns the resolved depth: path length minus one.
func (rp ResolvedPos) Depth() int { return rp.depth }

// ParentOffset returns the offset into the deepest ancestor's content.
func (rp ResolvedPos) ParentOffset() int { return rp.parentOffset }

// Node returns the ancestor at the given depth.
func (rp ResolvedPos) Node(depth int) Node { return rp.path[depth].node }

// Parent returns the deepest ancestor the position points into. Text
// nodes are never considered the parent: they are flat and have no
// content, so the deepest path entry is always a container.
func (rp ResolvedPos) Parent() Node { return rp.Node(rp.depth) }

// Doc returns the root node the position was resolved against.
func (rp ResolvedPos) Doc() Node { return rp.Node(0) }

// Index returns the index into the ancestor at the given depth.
func (rp ResolvedPos) Index(depth int) int { return rp.path[depth].index }

// IndexAfter returns the index immediately after this position at depth.
func (rp ResolvedPos) IndexAfter(depth int) int {
	index := rp.Index(depth)
	if depth == rp.depth && rp.TextOffset() == 0 {
		return index
	}
	return index + 1
}

// Start returns the absolute position at the start of the ancestor at
// depth.
func (rp ResolvedPos) Start(depth int) int {
	if depth == 0 {
		return 0
	}
	return rp.path[depth-1].before + 1
}

// End returns the absolute position at the end of the ancestor at depth.
func (rp ResolvedPos) End(depth int) int {
	return rp.Start(depth) + rp.Node(depth).ContentSize()
}

// Before returns the absolute position directly before the ancestor at
// depth, or ok=false at depth 0.
func (rp ResolvedPos) Before(depth int) (int, bool) {
	switch {
	case depth == 0:
		return 0, false
	case depth == rp.depth+1:
		return rp.pos, true
	default:
		return rp.path[depth-1].before, true
	}
}

// After returns the absolute position directly after the ancestor at
// depth, or ok=false at depth 0.
func (rp ResolvedPos) After(depth int) (int, bool) {
	switch {
	case depth == 0:
		return 0, false
	case depth == rp.depth+1:
		return rp.pos, true
	default:
		return rp.path[depth-1].before + rp.path[depth].node.Size(), true
	}
}

// TextOffset returns the distance between the position and the start of
// the deepest path entry; nonzero only when the position is inside a
// text child.
func (rp ResolvedPos) TextOffset() int {
	return rp.pos - rp.path[len(rp.path)-1].before
}

// NodeBefore returns the node directly before the position, or ok=false
// if there is none. If the position is inside a text node, only the
// prefix before the position is returned.
func (rp ResolvedPos) NodeBefore() (Node, bool) {
	index := rp.Index(rp.depth)
	dOff := rp.pos - rp.path[len(rp.path)-1].before
	if dOff > 0 {
		parent := rp.Parent()
		child, _ := parent.Child(index)
		return child.Cut(0, dOff), true
	}
	if index == 0 {
		return Node{}, false
	}
	child, _ := rp.Parent().Child(index - 1)
	return child, true
}

// NodeAfter returns the node directly after the position, or ok=false if
// there is none. If the position is inside a text node, only the suffix
// after the position is returned.
func (rp ResolvedPos) NodeAfter() (Node, bool) {
	parent := rp.Parent()
	index := rp.Index(rp.depth)
	if index == parent.ChildCount() {
		return Node{}, false
	}
	dOff := rp.pos - rp.path[len(rp.path)-1].before
	child, _ := parent.Child(index)
	if dOff > 0 {
		return child.Cut(dOff, child.Size()), true
	}
	return child, true
}

// SharedDepth returns the deepest ancestor depth whose [start, end]
// range contains pos.
func (rp ResolvedPos) SharedDepth(pos int) int {
	for depth := rp.depth; depth >= 1; depth-- {
		if rp.Start(depth) <= pos && rp.End(depth) >= pos {
			return depth
		}
	}
	return 0
}
