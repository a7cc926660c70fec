package buffer

// Buffer is a piece-table document: two append-only backing stores plus an
// ordered piece list whose concatenation is the current text.
//
// The original store never changes after construction. The addition store
// only ever grows at its end. The sum of all piece lengths equals the
// logical document length at all times, and no piece has zero length.
type Buffer struct {
	original []byte
	addition []byte
	pieces   []Piece

	length  int
	version uint64

	lastEdit    Edit
	hasLastEdit bool

	// last remembers the piece grown by the most recent insert so a
	// follow-up insert at the same logical offset can extend it in place
	// instead of creating a piece per keystroke.
	last writeHint
}

type writeHint struct {
	off   int // logical end of the hinted piece
	piece int
	ok    bool
}

// New constructs a buffer over text. The text becomes the sole Original
// piece; empty text yields an empty piece list, which denotes an empty
// document.
func New(text string) *Buffer {
	b := &Buffer{original: []byte(text), length: len(text)}
	if len(text) > 0 {
		b.pieces = append(b.pieces, Piece{Start: 0, Stop: len(text), Src: Original})
	}
	return b
}

// Len returns the logical document length in bytes.
func (b *Buffer) Len() int { return b.length }

// Pieces returns a copy of the current piece list in document order.
func (b *Buffer) Pieces() []Piece {
	return append([]Piece(nil), b.pieces...)
}

// pieceAt returns the index of the piece whose span covers off, along with
// the logical offset of that piece's first byte. When off sits on a piece
// boundary the earlier piece wins, so off == Len() resolves to the final
// piece. The piece list must be non-empty and off must be in [0, Len()].
func (b *Buffer) pieceAt(off int) (idx, start int) {
	end := 0
	for i, p := range b.pieces {
		end += p.Len()
		if end >= off {
			return i, end - p.Len()
		}
	}
	panic("buffer: offset beyond piece list")
}
