package doctor_test

import (
	"testing"

	"github.com/boergens/docedit/internal/doctor"
	"github.com/boergens/docedit/model"
)

func TestAuditCleanDocument(t *testing.T) {
	doc := model.NewDoc(model.NewParagraph(model.NewTextNode("hello")))
	if diags := doctor.Audit(doc); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
}

func TestAuditFlagsTextDirectlyInBlockquote(t *testing.T) {
	doc := model.NewDoc(model.NewBlockquote(model.NewTextNode("hi")))
	diags := doctor.Audit(doc)
	if !hasCode(diags, doctor.DOC001) {
		t.Fatalf("expected DOC001, got %+v", diags)
	}
}

func TestAuditFlagsDisallowedMark(t *testing.T) {
	marked := model.NewTextNodeWithMarks("x", model.NewMarkSet(model.Strong))
	doc := model.NewDoc(model.NewCodeBlock(model.CodeBlockAttrs{}, marked))
	diags := doctor.Audit(doc)
	if !hasCode(diags, doctor.DOC002) {
		t.Fatalf("expected DOC002, got %+v", diags)
	}
}

func hasCode(diags []doctor.Diagnostic, code doctor.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}
