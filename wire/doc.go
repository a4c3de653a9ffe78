// Package wire implements the JSON wire encoding for documents, slices
// and steps: the logical shapes named in the external interfaces of the
// document model, using the standard library's encoding/json. The same
// DTOs also encode nodes and steps as YAML through gopkg.in/yaml.v3
// (yaml.go).
package wire
