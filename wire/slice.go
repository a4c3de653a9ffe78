package wire

import (
	"encoding/json"

	"github.com/boergens/docedit/model"
)

type sliceJSON struct {
	Content   []nodeJSON `json:"content,omitempty" yaml:"content,omitempty"`
	OpenStart int        `json:"openStart,omitempty" yaml:"openStart,omitempty"`
	OpenEnd   int        `json:"openEnd,omitempty" yaml:"openEnd,omitempty"`
}

func encodeSlice(s model.Slice) sliceJSON {
	children := s.Content.Children()
	content := make([]nodeJSON, len(children))
	for i, c := range children {
		content[i] = encodeNode(c)
	}
	return sliceJSON{Content: content, OpenStart: s.OpenStart, OpenEnd: s.OpenEnd}
}

func decodeSlice(j sliceJSON) (model.Slice, error) {
	children, err := decodeChildren(j.Content)
	if err != nil {
		return model.Slice{}, err
	}
	return model.NewSlice(model.NewFragment(children), j.OpenStart, j.OpenEnd), nil
}

// EncodeSlice renders a Slice to its logical JSON shape.
func EncodeSlice(s model.Slice) ([]byte, error) {
	return json.Marshal(encodeSlice(s))
}

// DecodeSlice parses a Slice from its logical JSON shape.
func DecodeSlice(data []byte) (model.Slice, error) {
	var j sliceJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return model.Slice{}, err
	}
	return decodeSlice(j)
}
