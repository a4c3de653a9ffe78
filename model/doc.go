// Package model defines the document tree for docedit's markdown schema
// and the edit algebra that operates on it: fragments, nodes, resolved
// positions, slices, and the replace algorithm.
//
// This package is a Go translation of the `model` and `markdown` crates
// of Xiphoseer/prosemirror-rs, adapted to a single concrete schema
// instead of the Rust crates' generic one.
package model
