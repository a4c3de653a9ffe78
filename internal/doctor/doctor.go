// Package doctor audits a document tree for structural problems: content
// that doesn't match its parent node kind's allowed shape, marks that
// aren't permitted on their node kind, and empty nodes whose content
// expression requires at least one child. It reports each finding as a
// typed code, a severity, and a human-readable message, rather than
// failing fast on the first problem.
package doctor

import (
	"fmt"

	"github.com/boergens/docedit/model"
)

// Code identifies the audit rule that produced a Diagnostic.
type Code string

const (
	// DOC001 indicates a node's children don't match its kind's content
	// expression.
	DOC001 Code = "DOC001"
	// DOC002 indicates a text node carries a mark its parent disallows.
	DOC002 Code = "DOC002"
	// DOC003 indicates a node whose content expression needs at least one
	// child (block+, list_item+, or a list item's leading paragraph) has
	// no children.
	DOC003 Code = "DOC003"
)

// Severity indicates whether a Diagnostic must be fixed or merely reviewed.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single audit finding.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Path     string
}

// Audit walks doc and returns every structural diagnostic found, in
// document order. A nil slice means the document is clean.
func Audit(doc model.Node) []Diagnostic {
	var diags []Diagnostic
	walk(doc, "", &diags)
	return diags
}

func walk(n model.Node, path string, diags *[]Diagnostic) {
	content, ok := n.Content()
	if !ok {
		return
	}

	if !n.Kind().ValidContent(content) {
		*diags = append(*diags, Diagnostic{
			Code:     DOC001,
			Severity: SeverityError,
			Message:  fmt.Sprintf("content does not match %s's allowed shape", n.Kind()),
			Path:     path,
		})
	}

	for _, child := range content.Children() {
		if _, marks, isText := child.TextNode(); isText {
			if !n.Kind().AllowMarks(marks) {
				*diags = append(*diags, Diagnostic{
					Code:     DOC002,
					Severity: SeverityError,
					Message:  fmt.Sprintf("text %q carries a mark not allowed inside %s", child.Preview(24), n.Kind()),
					Path:     path,
				})
			}
			continue
		}
		walk(child, path+"/"+child.Kind().String(), diags)
	}

	state, ok := n.Kind().ContentMatch().MatchFragment(content)
	if ok && !state.ValidEnd() && content.ChildCount() == 0 {
		*diags = append(*diags, Diagnostic{
			Code:     DOC003,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s requires at least one child", n.Kind()),
			Path:     path,
		})
	}
}
