package fixture_test

import (
	"testing"

	"github.com/boergens/docedit/internal/fixture"
	"github.com/boergens/docedit/model"
)

const sample = `
doc:
  type: doc
  content:
    - type: paragraph
      content:
        - type: text
          text: hello
steps:
  - stepType: addMark
    from: 1
    to: 6
    mark:
      type: strong
`

func TestParseFixture(t *testing.T) {
	f, err := fixture.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Doc.Kind() != model.Doc {
		t.Fatalf("got kind %v, want doc", f.Doc.Kind())
	}
	if len(f.Steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(f.Steps))
	}
}

func TestApplyFixture(t *testing.T) {
	f, err := fixture.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := fixture.Apply(f)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	text, marks, ok := firstText(out)
	if !ok {
		t.Fatalf("no text node found in result")
	}
	if text != "hello" {
		t.Fatalf("got text %q, want hello", text)
	}
	if _, ok := marks.Has(model.MarkStrong); !ok {
		t.Fatalf("expected strong mark on result text, got %v", marks)
	}
}

func TestWriteFixtureRoundTrip(t *testing.T) {
	f, err := fixture.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := fixture.Write(f)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	again, err := fixture.Parse(data)
	if err != nil {
		t.Fatalf("Parse round trip: %v", err)
	}
	if !again.Doc.Equal(f.Doc) {
		t.Fatalf("round trip doc mismatch: got %v, want %v", again.Doc, f.Doc)
	}
	if len(again.Steps) != len(f.Steps) {
		t.Fatalf("round trip step count mismatch: got %d, want %d", len(again.Steps), len(f.Steps))
	}
}

func firstText(n model.Node) (string, model.MarkSet, bool) {
	if text, marks, ok := n.TextNode(); ok {
		return text.String(), marks, true
	}
	content, ok := n.Content()
	if !ok {
		return "", model.MarkSet{}, false
	}
	for _, c := range content.Children() {
		if text, marks, ok := firstText(c); ok {
			return text, marks, true
		}
	}
	return "", model.MarkSet{}, false
}
