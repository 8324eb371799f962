// Package model provides the shared data model for the inlay engine.
//
// This package defines the types that flow between the extraction, location,
// layout, and rendering stages: positioned text tokens, per-page token
// indexes, the ordered page document, and the externally supplied answer rows
// with their images.
//
// # Tokens and Page Indexes
//
// A [Token] is an atomic piece of pre-existing page content with position,
// width, and font size. Tokens are immutable once extracted and belong to
// exactly one page. A [PageIndex] holds a page's tokens in visual reading
// order (descending Y, then ascending X).
//
// # The Document
//
// The [Document] is the single source of truth for page ordering. Each
// [PageRecord] owns its drawable [PageHandle], its size, and its token index
// together, so inserting a continuation page is one splice and the three
// facets can never fall out of sync. Pages are addressed by opaque handles,
// never by positional arithmetic; final 1-based page numbers are derived from
// document order only when the document is serialized.
//
// # Answer Rows
//
// An [AnswerRow] is one labeled item of externally supplied response data,
// read-only to the engine. A [ContinuationJob] carries the overflow (lines
// plus images) that did not fit into a row's in-document box.
//
// # Geometry
//
// [BBox] is the geometric primitive behind position and layout
// calculations: a rectangle with edge accessors and an intersection test.
package model
