package model

// Replace returns a copy of root with the range [from, to) replaced by
// slice, implementing the two-way/three-way open-depth join algorithm.
func Replace(root Node, from, to int, slice Slice) (Node, error) {
	rpFrom, err := Resolve(root, from)
	if err != nil {
		return Node{}, &ReplaceError{Resolve: resolveErrFromIndex(err)}
	}
	rpTo, err := Resolve(root, to)
	if err != nil {
		return Node{}, &ReplaceError{Resolve: resolveErrFromIndex(err)}
	}
	if slice.OpenStart > rpFrom.depth {
		return Node{}, &ReplaceError{InsertTooDeep: &InsertTooDeepError{}}
	}
	if rpFrom.depth-slice.OpenStart != rpTo.depth-slice.OpenEnd {
		return Node{}, &ReplaceError{InconsistentDepths: &InconsistentOpenDepthsError{
			FromDepth: rpFrom.depth, OpenStart: slice.OpenStart,
			ToDepth: rpTo.depth, OpenEnd: slice.OpenEnd,
		}}
	}
	return replaceOuter(rpFrom, rpTo, slice, 0)
}

func replaceOuter(rpFrom, rpTo ResolvedPos, slice Slice, depth int) (Node, error) {
	index := rpFrom.Index(depth)
	node := rpFrom.Node(depth)
	switch {
	case index == rpTo.Index(depth) && depth < rpFrom.depth-slice.OpenStart:
		inner, err := replaceOuter(rpFrom, rpTo, slice, depth+1)
		if err != nil {
			return Node{}, err
		}
		return node.Copy(func(c Fragment) Fragment { return c.ReplaceChild(index, inner) }), nil

	case slice.Content.Size() == 0:
		content, err := replaceTwoWay(rpFrom, rpTo, depth)
		if err != nil {
			return Node{}, err
		}
		return closeNode(node, content)

	case slice.OpenStart == 0 && slice.OpenEnd == 0 && rpFrom.depth == depth && rpTo.depth == depth:
		parent := rpFrom.Parent()
		content, _ := parent.Content()
		newContent := content.Cut(0, rpFrom.parentOffset).Append(slice.Content).Append(content.Cut(rpTo.parentOffset, content.Size()))
		return closeNode(parent, newContent)

	default:
		n, start, end := prepareSliceForReplace(slice, rpFrom)
		rpStart, err := Resolve(n, start)
		if err != nil {
			return Node{}, &ReplaceError{Resolve: resolveErrFromIndex(err)}
		}
		rpEnd, err := Resolve(n, end)
		if err != nil {
			return Node{}, &ReplaceError{Resolve: resolveErrFromIndex(err)}
		}
		content, err := replaceThreeWay(rpFrom, rpStart, rpEnd, rpTo, depth)
		if err != nil {
			return Node{}, err
		}
		return closeNode(node, content)
	}
}

func checkJoin(main, sub Node) error {
	if sub.Kind().CompatibleContent(main.Kind()) {
		return nil
	}
	return &ReplaceError{CannotJoin: &CannotJoinError{Left: sub.Kind(), Right: main.Kind()}}
}

func joinable(rpBefore, rpAfter ResolvedPos, depth int) (Node, error) {
	node := rpBefore.Node(depth)
	if err := checkJoin(node, rpAfter.Node(depth)); err != nil {
		return Node{}, err
	}
	return node, nil
}

func addNode(child Node, target []Node) []Node {
	if len(target) > 0 {
		last := target[len(target)-1]
		if cText, cMarks, ok := child.TextNode(); ok {
			if lText, lMarks, lok := last.TextNode(); lok && lMarks.Equal(cMarks) {
				merged := newTextNodeInternal(NewText(lText.String()+cText.String()), lMarks)
				target[len(target)-1] = merged
				return target
			}
		}
	}
	return append(target, child)
}

// rangeSide selects which of a two-sided (Left/Right/Both) range
// operates: Left only constrains the start, Right only the end, Both
// constrains both sides.
type rangeSide struct {
	left, right *ResolvedPos
}

func rangeLeft(rp ResolvedPos) rangeSide    { return rangeSide{left: &rp} }
func rangeRight(rp ResolvedPos) rangeSide   { return rangeSide{right: &rp} }
func rangeBoth(l, r ResolvedPos) rangeSide  { return rangeSide{left: &l, right: &r} }

func (r rangeSide) anchor() ResolvedPos {
	if r.right != nil {
		return *r.right
	}
	return *r.left
}

func addRange(r rangeSide, depth int, target []Node) []Node {
	node := r.anchor().Node(depth)
	startIndex := 0
	endIndex := node.ChildCount()
	if r.right != nil {
		endIndex = r.right.Index(depth)
	}
	if r.left != nil {
		startIndex = r.left.Index(depth)
		if r.left.depth > depth {
			startIndex++
		} else if r.left.TextOffset() > 0 {
			if after, ok := r.left.NodeAfter(); ok {
				target = addNode(after, target)
			}
			startIndex++
		}
	}
	for i := startIndex; i < endIndex; i++ {
		child, _ := node.Child(i)
		target = addNode(child, target)
	}
	if r.right != nil && r.right.depth == depth && r.right.TextOffset() > 0 {
		if before, ok := r.right.NodeBefore(); ok {
			target = addNode(before, target)
		}
	}
	return target
}

func closeNode(node Node, content Fragment) (Node, error) {
	if node.Kind().ValidContent(content) {
		return node.Copy(func(Fragment) Fragment { return content }), nil
	}
	return Node{}, &ReplaceError{InvalidContent: &InvalidContentError{Kind: node.Kind()}}
}

func replaceThreeWay(rpFrom, rpStart, rpEnd, rpTo ResolvedPos, depth int) (Fragment, error) {
	var openStart, openEnd *Node
	if rpFrom.depth > depth {
		n, err := joinable(rpFrom, rpStart, depth+1)
		if err != nil {
			return Fragment{}, err
		}
		openStart = &n
	}
	if rpTo.depth > depth {
		n, err := joinable(rpEnd, rpTo, depth+1)
		if err != nil {
			return Fragment{}, err
		}
		openEnd = &n
	}

	var content []Node
	content = addRange(rangeRight(rpFrom), depth, content)

	if openStart != nil && openEnd != nil && rpStart.Index(depth) == rpEnd.Index(depth) {
		if err := checkJoin(*openStart, *openEnd); err != nil {
			return Fragment{}, err
		}
		inner, err := replaceThreeWay(rpFrom, rpStart, rpEnd, rpTo, depth+1)
		if err != nil {
			return Fragment{}, err
		}
		closed, err := closeNode(*openStart, inner)
		if err != nil {
			return Fragment{}, err
		}
		content = addNode(closed, content)
	} else {
		if openStart != nil {
			inner, err := replaceTwoWay(rpFrom, rpStart, depth+1)
			if err != nil {
				return Fragment{}, err
			}
			closed, err := closeNode(*openStart, inner)
			if err != nil {
				return Fragment{}, err
			}
			content = addNode(closed, content)
		}
		content = addRange(rangeBoth(rpStart, rpEnd), depth, content)
		if openEnd != nil {
			inner, err := replaceTwoWay(rpEnd, rpTo, depth+1)
			if err != nil {
				return Fragment{}, err
			}
			closed, err := closeNode(*openEnd, inner)
			if err != nil {
				return Fragment{}, err
			}
			content = addNode(closed, content)
		}
	}
	content = addRange(rangeLeft(rpTo), depth, content)
	return NewFragment(content), nil
}

func replaceTwoWay(rpFrom, rpTo ResolvedPos, depth int) (Fragment, error) {
	var content []Node
	content = addRange(rangeRight(rpFrom), depth, content)
	if rpFrom.depth > depth {
		typ, err := joinable(rpFrom, rpTo, depth+1)
		if err != nil {
			return Fragment{}, err
		}
		inner, err := replaceTwoWay(rpFrom, rpTo, depth+1)
		if err != nil {
			return Fragment{}, err
		}
		child, err := closeNode(typ, inner)
		if err != nil {
			return Fragment{}, err
		}
		content = addNode(child, content)
	}
	content = addRange(rangeLeft(rpTo), depth, content)
	return NewFragment(content), nil
}

func prepareSliceForReplace(slice Slice, rpAlong ResolvedPos) (Node, int, int) {
	extra := rpAlong.depth - slice.OpenStart
	parent := rpAlong.Node(extra)
	node := parent.Copy(func(Fragment) Fragment { return slice.Content })
	for i := extra - 1; i >= 0; i-- {
		anc := rpAlong.Node(i)
		node = anc.Copy(func(Fragment) Fragment { return NewFragment([]Node{node}) })
	}
	start := slice.OpenStart + extra
	end := node.ContentSize() - slice.OpenEnd - extra
	return node, start, end
}
