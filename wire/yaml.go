package wire

import (
	"github.com/boergens/docedit/model"
	"github.com/boergens/docedit/transform"
	"gopkg.in/yaml.v3"
)

// The node/slice/step DTOs carry both json and yaml struct tags, so the
// fixture format (see internal/fixture) is just the same logical shape
// written as YAML instead of JSON.

// EncodeNodeYAML renders n to the logical node shape as YAML.
func EncodeNodeYAML(n model.Node) ([]byte, error) {
	return yaml.Marshal(encodeNode(n))
}

// DecodeNodeYAML parses a node written in the YAML fixture format.
func DecodeNodeYAML(data []byte) (model.Node, error) {
	var j nodeJSON
	if err := yaml.Unmarshal(data, &j); err != nil {
		return model.Node{}, err
	}
	return decodeNode(j)
}

// EncodeStepYAML renders s to the logical step shape as YAML.
func EncodeStepYAML(s transform.Step) ([]byte, error) {
	j, err := encodeStep(s)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(j)
}

// DecodeStepYAML parses a step written in the YAML fixture format.
func DecodeStepYAML(data []byte) (transform.Step, error) {
	var j stepJSON
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return decodeStep(j)
}
