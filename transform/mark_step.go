package transform

import "github.com/boergens/docedit/model"

// AddMarkStep adds Mark to every inline node in [From, To) whose parent
// permits that mark kind.
type AddMarkStep struct {
	Span Span
	Mark model.Mark
}

// Apply implements Step.
func (s AddMarkStep) Apply(doc model.Node) (model.Node, error) {
	oldSlice, err := doc.Slice(s.Span.From, s.Span.To, false)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}
	rpFrom, err := doc.Resolve(s.Span.From)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}
	parent := rpFrom.Node(rpFrom.SharedDepth(s.Span.To))

	newContent := mapFragmentParent(oldSlice.Content, parent, func(n Node, parent Node) Node {
		if parent.Kind().AllowsMarkType(s.Mark.Kind) {
			return n.Mark(n.Marks().Add(s.Mark))
		}
		return n
	})

	slice := model.NewSlice(newContent, oldSlice.OpenStart, oldSlice.OpenEnd)
	out, err := doc.Replace(s.Span.From, s.Span.To, slice)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}
	return out, nil
}

// RemoveMarkStep removes Mark from every inline node in [From, To).
type RemoveMarkStep struct {
	Span Span
	Mark model.Mark
}

// Apply implements Step.
func (s RemoveMarkStep) Apply(doc model.Node) (model.Node, error) {
	oldSlice, err := doc.Slice(s.Span.From, s.Span.To, false)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}

	newContent := mapFragment(oldSlice.Content, func(n Node) Node {
		return n.Mark(n.Marks().Remove(s.Mark))
	})

	slice := model.NewSlice(newContent, oldSlice.OpenStart, oldSlice.OpenEnd)
	out, err := doc.Replace(s.Span.From, s.Span.To, slice)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}
	return out, nil
}

// Node aliases model.Node so the mapFragment helpers below read the way
// the rest of this file does: as generic fragment-mapping utilities, not
// model-specific code.
type Node = model.Node

// mapFragmentParent recursively rebuilds fragment, applying f to every
// inline descendant with its structural parent and copying containers
// unchanged otherwise.
func mapFragmentParent(fragment model.Fragment, parent Node, f func(n, parent Node) Node) model.Fragment {
	children := fragment.Children()
	mapped := make([]Node, len(children))
	for i, child := range children {
		next := child.Copy(func(c model.Fragment) model.Fragment {
			return mapFragmentParent(c, child, f)
		})
		if next.IsInline() {
			next = f(next, parent)
		}
		mapped[i] = next
	}
	return model.NewFragment(mapped)
}

// mapFragment recursively rebuilds fragment, applying f to every inline
// descendant and copying containers unchanged otherwise.
func mapFragment(fragment model.Fragment, f func(n Node) Node) model.Fragment {
	children := fragment.Children()
	mapped := make([]Node, len(children))
	for i, child := range children {
		next := child.Copy(func(c model.Fragment) model.Fragment {
			return mapFragment(c, f)
		})
		if next.IsInline() {
			next = f(next)
		}
		mapped[i] = next
	}
	return model.NewFragment(mapped)
}
