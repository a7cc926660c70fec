// Package buffer implements a piece-table text buffer.
//
// The document is an ordered sequence of pieces, each referencing a byte
// range in one of two append-only backing stores: the immutable original
// text and a log of all inserted text. Edits never copy or rewrite
// existing text; they only split pieces and grow the addition store, so
// edit cost is proportional to the number of pieces touched, not to
// document size.
//
// Offsets are byte offsets into the current (logical) document. Callers
// that work in characters must keep offsets on UTF-8 boundaries; the
// editor layer does this via grapheme-aware cursor movement.
//
// A Buffer is owned by a single editing session. Operations are
// synchronous and never block; the caller serializes access.
package buffer
