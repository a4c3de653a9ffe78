// Package fixture loads YAML test/CLI fixtures describing a document and
// an optional list of steps to apply to it. It reuses the wire package's
// node/step DTOs (which carry yaml as well as json struct tags), so a
// fixture file is just the wire JSON shape written as YAML:
//
//	doc:
//	  type: doc
//	  content:
//	    - type: paragraph
//	      content:
//	        - type: text
//	          text: hello
//	steps:
//	  - stepType: addMark
//	    from: 1
//	    to: 6
//	    mark:
//	      type: strong
package fixture

import (
	"fmt"
	"os"

	"github.com/boergens/docedit/model"
	"github.com/boergens/docedit/transform"
	"github.com/boergens/docedit/wire"
	"gopkg.in/yaml.v3"
)

// Fixture bundles a document with the steps meant to be applied to it.
type Fixture struct {
	Doc   model.Node
	Steps []transform.Step
}

type rawFixture struct {
	Doc   yaml.Node   `yaml:"doc"`
	Steps []yaml.Node `yaml:"steps"`
}

// Load reads and parses the fixture file at path.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture: %w", err)
	}
	return Parse(data)
}

// Parse parses fixture data already read into memory.
func Parse(data []byte) (Fixture, error) {
	var raw rawFixture
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Fixture{}, fmt.Errorf("fixture: %w", err)
	}

	docYAML, err := yaml.Marshal(&raw.Doc)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture: re-encoding doc: %w", err)
	}
	doc, err := wire.DecodeNodeYAML(docYAML)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture: decoding doc: %w", err)
	}

	steps := make([]transform.Step, len(raw.Steps))
	for i, sn := range raw.Steps {
		stepYAML, err := yaml.Marshal(&sn)
		if err != nil {
			return Fixture{}, fmt.Errorf("fixture: re-encoding step %d: %w", i, err)
		}
		step, err := wire.DecodeStepYAML(stepYAML)
		if err != nil {
			return Fixture{}, fmt.Errorf("fixture: decoding step %d: %w", i, err)
		}
		steps[i] = step
	}

	return Fixture{Doc: doc, Steps: steps}, nil
}

// Write renders f back to the YAML fixture shape.
func Write(f Fixture) ([]byte, error) {
	docYAML, err := wire.EncodeNodeYAML(f.Doc)
	if err != nil {
		return nil, fmt.Errorf("fixture: encoding doc: %w", err)
	}
	var docNode yaml.Node
	if err := yaml.Unmarshal(docYAML, &docNode); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	stepNodes := make([]yaml.Node, len(f.Steps))
	for i, s := range f.Steps {
		stepYAML, err := wire.EncodeStepYAML(s)
		if err != nil {
			return nil, fmt.Errorf("fixture: encoding step %d: %w", i, err)
		}
		var n yaml.Node
		if err := yaml.Unmarshal(stepYAML, &n); err != nil {
			return nil, fmt.Errorf("fixture: %w", err)
		}
		stepNodes[i] = n
	}

	out := struct {
		Doc   yaml.Node   `yaml:"doc"`
		Steps []yaml.Node `yaml:"steps,omitempty"`
	}{Doc: docNode, Steps: stepNodes}
	return yaml.Marshal(out)
}

// Apply runs every step in f.Steps against f.Doc in order, returning the
// final document. It stops at the first failing step.
func Apply(f Fixture) (model.Node, error) {
	doc := f.Doc
	for i, step := range f.Steps {
		next, err := step.Apply(doc)
		if err != nil {
			return model.Node{}, fmt.Errorf("fixture: step %d: %w", i, err)
		}
		doc = next
	}
	return doc, nil
}
