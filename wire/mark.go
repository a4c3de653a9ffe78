package wire

import (
	"encoding/json"
	"fmt"

	"github.com/boergens/docedit/model"
)

type linkAttrsJSON struct {
	Href  string `json:"href" yaml:"href"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

type markJSON struct {
	Type  string         `json:"type" yaml:"type"`
	Attrs *linkAttrsJSON `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

func encodeMark(m model.Mark) markJSON {
	switch m.Kind {
	case model.MarkStrong:
		return markJSON{Type: "strong"}
	case model.MarkEm:
		return markJSON{Type: "em"}
	case model.MarkCode:
		return markJSON{Type: "code"}
	case model.MarkLink:
		return markJSON{Type: "link", Attrs: &linkAttrsJSON{Href: m.Link.Href, Title: m.Link.Title}}
	default:
		return markJSON{Type: "unknown"}
	}
}

func decodeMark(j markJSON) (model.Mark, error) {
	switch j.Type {
	case "strong":
		return model.Strong, nil
	case "em":
		return model.Em, nil
	case "code":
		return model.Code, nil
	case "link":
		attrs := model.LinkAttrs{}
		if j.Attrs != nil {
			attrs = model.LinkAttrs{Href: j.Attrs.Href, Title: j.Attrs.Title}
		}
		return model.Link(attrs), nil
	default:
		return model.Mark{}, fmt.Errorf("wire: unknown mark type %q", j.Type)
	}
}

func encodeMarkSet(s model.MarkSet) []markJSON {
	marks := s.Marks()
	out := make([]markJSON, len(marks))
	for i, m := range marks {
		out[i] = encodeMark(m)
	}
	return out
}

func decodeMarkSet(js []markJSON) (model.MarkSet, error) {
	set := model.EmptyMarkSet
	for _, j := range js {
		m, err := decodeMark(j)
		if err != nil {
			return model.MarkSet{}, err
		}
		set = set.Add(m)
	}
	return set, nil
}

// EncodeMark renders a single mark to its logical JSON shape.
func EncodeMark(m model.Mark) ([]byte, error) {
	return json.Marshal(encodeMark(m))
}

// DecodeMark parses a single mark from its logical JSON shape.
func DecodeMark(data []byte) (model.Mark, error) {
	var j markJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return model.Mark{}, err
	}
	return decodeMark(j)
}
