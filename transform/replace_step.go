package transform

import "github.com/boergens/docedit/model"

// ReplaceStep replaces the content in [From, To) with Slice.
type ReplaceStep struct {
	Span      Span
	Slice     model.Slice
	Structure bool
}

// Apply implements Step.
func (s ReplaceStep) Apply(doc model.Node) (model.Node, error) {
	if s.Structure {
		between, err := contentBetween(doc, s.Span.From, s.Span.To)
		if err != nil {
			return model.Node{}, wrapErr(err)
		}
		if between {
			return model.Node{}, &StepError{WouldOverwrite: true}
		}
	}
	out, err := doc.Replace(s.Span.From, s.Span.To, s.Slice)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}
	return out, nil
}

// ReplaceAroundStep replaces [From, To) while preserving the gap
// [GapFrom, GapTo), re-inserting it into Slice at position Insert.
type ReplaceAroundStep struct {
	Span           Span
	GapFrom, GapTo int
	Slice          model.Slice
	Insert         int
	Structure      bool
}

// Apply implements Step.
func (s ReplaceAroundStep) Apply(doc model.Node) (model.Node, error) {
	if s.Structure {
		left, err := contentBetween(doc, s.Span.From, s.GapFrom)
		if err != nil {
			return model.Node{}, wrapErr(err)
		}
		right, err := contentBetween(doc, s.GapTo, s.Span.To)
		if err != nil {
			return model.Node{}, wrapErr(err)
		}
		if left || right {
			return model.Node{}, &StepError{GapWouldOverwrite: true}
		}
	}

	gap, err := doc.Slice(s.GapFrom, s.GapTo, false)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}
	if gap.OpenStart != 0 || gap.OpenEnd != 0 {
		return model.Node{}, &StepError{GapNotFlat: true}
	}

	inserted, ok, err := s.Slice.InsertAt(s.Insert, gap.Content)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}
	if !ok {
		return model.Node{}, &StepError{GapNotFit: true}
	}

	out, err := doc.Replace(s.Span.From, s.Span.To, inserted)
	if err != nil {
		return model.Node{}, wrapErr(err)
	}
	return out, nil
}

// contentBetween reports whether any leaf lies strictly between from and
// to, walking down from `from` and skipping trailing positions inside
// each ancestor, then scanning forward consuming dist token crossings.
// The "reduce dist by 1 for each ancestor crossed at the right fringe"
// behavior is load-bearing and replicated exactly from the source.
func contentBetween(doc model.Node, from, to int) (bool, error) {
	rpFrom, err := doc.Resolve(from)
	if err != nil {
		return false, err
	}
	dist := to - from
	depth := rpFrom.Depth()
	for dist > 0 && depth > 0 && rpFrom.IndexAfter(depth) == rpFrom.Node(depth).ChildCount() {
		depth--
		dist--
	}
	if dist <= 0 {
		return false, nil
	}
	next, ok := rpFrom.Node(depth).Child(rpFrom.IndexAfter(depth))
	for dist > 0 {
		if !ok {
			return true, nil
		}
		if next.IsLeaf() {
			return true, nil
		}
		next, ok = next.FirstChild()
		dist--
	}
	return false, nil
}
