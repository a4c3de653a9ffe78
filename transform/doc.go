// Package transform implements the four atomic Step edits — Replace,
// ReplaceAround, AddMark, RemoveMark — that a collaboration layer
// sequences on top of the model package's replace algebra.
//
// This package is a Go translation of the `transform` crate of
// Xiphoseer/prosemirror-rs.
package transform
