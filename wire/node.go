package wire

import (
	"encoding/json"
	"fmt"

	"github.com/boergens/docedit/model"
)

// nodeAttrsJSON is a superset of every node kind's attrs, only the
// fields relevant to Type are ever populated.
type nodeAttrsJSON struct {
	Level uint8  `json:"level,omitempty" yaml:"level,omitempty"`
	Params string `json:"params,omitempty" yaml:"params,omitempty"`
	Tight  bool   `json:"tight,omitempty" yaml:"tight,omitempty"`
	Order  uint   `json:"order,omitempty" yaml:"order,omitempty"`
	Src    string `json:"src,omitempty" yaml:"src,omitempty"`
	Alt    string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
}

type nodeJSON struct {
	Type    string         `json:"type" yaml:"type"`
	Content []nodeJSON     `json:"content,omitempty" yaml:"content,omitempty"`
	Attrs   *nodeAttrsJSON `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text    string         `json:"text,omitempty" yaml:"text,omitempty"`
	Marks   []markJSON     `json:"marks,omitempty" yaml:"marks,omitempty"`
}

// EncodeNode renders n to the logical node JSON shape: a `type`
// discriminator plus variant-specific fields.
func EncodeNode(n model.Node) ([]byte, error) {
	return json.Marshal(encodeNode(n))
}

// DecodeNode parses the logical node JSON shape back into a Node.
func DecodeNode(data []byte) (model.Node, error) {
	var j nodeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return model.Node{}, err
	}
	return decodeNode(j)
}

func encodeNode(n model.Node) nodeJSON {
	if text, marks, ok := n.TextNode(); ok {
		return nodeJSON{Type: "text", Text: text.String(), Marks: encodeMarkSet(marks)}
	}
	j := nodeJSON{Type: n.Kind().String()}
	if content, ok := n.Content(); ok {
		children := content.Children()
		j.Content = make([]nodeJSON, len(children))
		for i, c := range children {
			j.Content[i] = encodeNode(c)
		}
	}
	switch attrs := n.Attrs().(type) {
	case model.HeadingAttrs:
		j.Attrs = &nodeAttrsJSON{Level: attrs.Level}
	case model.CodeBlockAttrs:
		j.Attrs = &nodeAttrsJSON{Params: attrs.Params}
	case model.BulletListAttrs:
		j.Attrs = &nodeAttrsJSON{Tight: attrs.Tight}
	case model.OrderedListAttrs:
		j.Attrs = &nodeAttrsJSON{Order: attrs.Order, Tight: attrs.Tight}
	case model.ImageAttrs:
		j.Attrs = &nodeAttrsJSON{Src: attrs.Src, Alt: attrs.Alt, Title: attrs.Title}
	}
	return j
}

func decodeNode(j nodeJSON) (model.Node, error) {
	switch j.Type {
	case "text":
		marks, err := decodeMarkSet(j.Marks)
		if err != nil {
			return model.Node{}, err
		}
		return model.NewTextNodeWithMarks(j.Text, marks), nil
	case "doc":
		children, err := decodeChildren(j.Content)
		if err != nil {
			return model.Node{}, err
		}
		return model.NewDoc(children...), nil
	case "paragraph":
		children, err := decodeChildren(j.Content)
		if err != nil {
			return model.Node{}, err
		}
		return model.NewParagraph(children...), nil
	case "blockquote":
		children, err := decodeChildren(j.Content)
		if err != nil {
			return model.Node{}, err
		}
		return model.NewBlockquote(children...), nil
	case "list_item":
		children, err := decodeChildren(j.Content)
		if err != nil {
			return model.Node{}, err
		}
		return model.NewListItem(children...), nil
	case "heading":
		children, err := decodeChildren(j.Content)
		if err != nil {
			return model.Node{}, err
		}
		attrs := model.HeadingAttrs{}
		if j.Attrs != nil {
			attrs.Level = j.Attrs.Level
		}
		return model.NewHeading(attrs, children...), nil
	case "code_block":
		children, err := decodeChildren(j.Content)
		if err != nil {
			return model.Node{}, err
		}
		attrs := model.CodeBlockAttrs{}
		if j.Attrs != nil {
			attrs.Params = j.Attrs.Params
		}
		return model.NewCodeBlock(attrs, children...), nil
	case "bullet_list":
		children, err := decodeChildren(j.Content)
		if err != nil {
			return model.Node{}, err
		}
		attrs := model.BulletListAttrs{}
		if j.Attrs != nil {
			attrs.Tight = j.Attrs.Tight
		}
		return model.NewBulletList(attrs, children...), nil
	case "ordered_list":
		children, err := decodeChildren(j.Content)
		if err != nil {
			return model.Node{}, err
		}
		attrs := model.OrderedListAttrs{}
		if j.Attrs != nil {
			attrs.Order, attrs.Tight = j.Attrs.Order, j.Attrs.Tight
		}
		return model.NewOrderedList(attrs, children...), nil
	case "image":
		attrs := model.ImageAttrs{}
		if j.Attrs != nil {
			attrs = model.ImageAttrs{Src: j.Attrs.Src, Alt: j.Attrs.Alt, Title: j.Attrs.Title}
		}
		return model.NewImage(attrs), nil
	case "horizontal_rule":
		return model.NewHorizontalRule(), nil
	case "hard_break":
		return model.NewHardBreak(), nil
	default:
		return model.Node{}, fmt.Errorf("wire: unknown node type %q", j.Type)
	}
}

func decodeChildren(js []nodeJSON) ([]model.Node, error) {
	out := make([]model.Node, len(js))
	for i, j := range js {
		n, err := decodeNode(j)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
