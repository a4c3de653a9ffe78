package model

import "fmt"

// IndexError reports a fragment index or offset that fell outside the
// fragment's bounds.
type IndexError struct {
	Pos int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index error at position %d", e.Pos)
}

// RangeError reports a resolved position past the end of the document.
type RangeError struct {
	Pos int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("position %d out of range", e.Pos)
}

// ResolveError wraps the failure of Node.Resolve.
type ResolveError struct {
	Range *RangeError
	Index *IndexError
}

func (e *ResolveError) Error() string {
	if e.Range != nil {
		return e.Range.Error()
	}
	return e.Index.Error()
}

func (e *ResolveError) Unwrap() error {
	if e.Range != nil {
		return e.Range
	}
	return e.Index
}

func resolveErrFromIndex(err error) *ResolveError {
	if err == nil {
		return nil
	}
	if ie, ok := err.(*IndexError); ok {
		return &ResolveError{Index: ie}
	}
	if re, ok := err.(*ResolveError); ok {
		return re
	}
	return &ResolveError{Index: &IndexError{}}
}

// SliceError wraps the failure of Node.Slice.
type SliceError struct {
	Resolve *ResolveError
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("slice error: %v", e.Resolve)
}

func (e *SliceError) Unwrap() error { return e.Resolve }

// InsertError is returned by Slice.InsertAt.
type InsertError struct {
	Index   *IndexError
	Content *InvalidContentError
}

func (e *InsertError) Error() string {
	if e.Index != nil {
		return e.Index.Error()
	}
	return e.Content.Error()
}

func (e *InsertError) Unwrap() error {
	if e.Index != nil {
		return e.Index
	}
	return e.Content
}

// InvalidContentError reports that a rebuilt node's content does not
// satisfy its node kind's content match.
type InvalidContentError struct {
	Kind NodeKind
}

func (e *InvalidContentError) Error() string {
	return fmt.Sprintf("invalid content for node %s", e.Kind)
}

// InsertTooDeepError is returned when a slice's open_start exceeds the
// depth of the from-position.
type InsertTooDeepError struct{}

func (e *InsertTooDeepError) Error() string { return "inserted content deeper than insertion position" }

// InconsistentOpenDepthsError is returned when the open depths of a slice
// don't line up with the resolved from/to depths.
type InconsistentOpenDepthsError struct {
	FromDepth, OpenStart, ToDepth, OpenEnd int
}

func (e *InconsistentOpenDepthsError) Error() string {
	return fmt.Sprintf(
		"inconsistent open depths: from_depth=%d open_start=%d to_depth=%d open_end=%d",
		e.FromDepth, e.OpenStart, e.ToDepth, e.OpenEnd,
	)
}

// CannotJoinError is returned when two node kinds at an open boundary are
// not content-compatible.
type CannotJoinError struct {
	Left, Right NodeKind
}

func (e *CannotJoinError) Error() string {
	return fmt.Sprintf("cannot join %s onto %s", e.Left, e.Right)
}

// ReplaceError is the error type returned by Node.Replace.
type ReplaceError struct {
	InsertTooDeep        *InsertTooDeepError
	InconsistentDepths   *InconsistentOpenDepthsError
	Resolve              *ResolveError
	CannotJoin           *CannotJoinError
	InvalidContent       *InvalidContentError
}

func (e *ReplaceError) Error() string {
	switch {
	case e.InsertTooDeep != nil:
		return e.InsertTooDeep.Error()
	case e.InconsistentDepths != nil:
		return e.InconsistentDepths.Error()
	case e.Resolve != nil:
		return e.Resolve.Error()
	case e.CannotJoin != nil:
		return e.CannotJoin.Error()
	default:
		return e.InvalidContent.Error()
	}
}

func (e *ReplaceError) Unwrap() error {
	switch {
	case e.InsertTooDeep != nil:
		return e.InsertTooDeep
	case e.InconsistentDepths != nil:
		return e.InconsistentDepths
	case e.Resolve != nil:
		return e.Resolve
	case e.CannotJoin != nil:
		return e.CannotJoin
	default:
		return e.InvalidContent
	}
}
