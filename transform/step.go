package transform

import (
	"fmt"

	"github.com/boergens/docedit/model"
)

// Span is the affected range of a step: positions in the document the
// step was created for.
type Span struct {
	From, To int
}

// StepError is returned when a Step fails to apply.
type StepError struct {
	WouldOverwrite    bool
	GapWouldOverwrite bool
	GapNotFlat        bool
	GapNotFit         bool
	Err               error // wraps a model resolve/replace/slice/insert error
}

func (e *StepError) Error() string {
	switch {
	case e.WouldOverwrite:
		return "structure replace would overwrite content"
	case e.GapWouldOverwrite:
		return "structure gap-replace would overwrite content"
	case e.GapNotFlat:
		return "gap is not a flat range"
	case e.GapNotFit:
		return "content does not fit in gap"
	default:
		return fmt.Sprintf("step failed: %v", e.Err)
	}
}

func (e *StepError) Unwrap() error { return e.Err }

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Err: err}
}

// Step is an atomic document edit.
type Step interface {
	// Apply applies the step to doc, returning a new document or an
	// error. It never mutates doc.
	Apply(doc model.Node) (model.Node, error)
}
