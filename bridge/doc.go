// Package bridge defines the event-stream contract between the document
// model and an external markdown parser/renderer, plus a reference
// adapter pair (Builder, Emit) that implements that contract.
//
// A caller responsible for CommonMark parsing produces a []Event stream
// and hands it to Build; a caller responsible for rendering markdown
// text consumes the []Event stream returned by Emit. Neither direction
// embeds a CommonMark parser or renderer: this package only bridges
// between that external event stream and the document tree.
//
// This package is grounded on the stack-based push_stack/pop_stack/
// add_content deserializer and the mark-stack serializer of
// Xiphoseer/prosemirror-rs's markdown crate.
package bridge
