package buffer

import "errors"

var (
	// ErrBadPieceID reports a piece index that does not exist. Outside of
	// internal calls it means the piece list is corrupt.
	ErrBadPieceID = errors.New("buffer: no such piece")

	// ErrBadPieceRange reports an offset or range outside the bounds of a
	// piece or its backing store.
	ErrBadPieceRange = errors.New("buffer: range outside piece bounds")

	// ErrBadPosition reports a document offset beyond the current length.
	ErrBadPosition = errors.New("buffer: position beyond document length")
)
