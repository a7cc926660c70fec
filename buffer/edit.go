package buffer

import "slices"

// Insert writes text into the document at byte offset off. Bytes at or
// after off shift right by len(text); bytes before off are untouched. It
// returns the number of bytes written.
//
// A negative off saturates to 0. Insert fails with ErrBadPosition when off
// exceeds the document length; the buffer is unchanged on error.
func (b *Buffer) Insert(off int, text string) (int, error) {
	if off < 0 {
		off = 0
	}
	if off > b.length {
		return 0, ErrBadPosition
	}
	if text == "" {
		return 0, nil
	}

	// Fast path: a direct continuation of the previous insert grows the
	// hinted piece in place.
	if b.last.ok && off == b.last.off {
		return b.extendLast(text), nil
	}

	// General path: make off a piece boundary, then splice in a new
	// Addition piece over the bytes just appended.
	at := 0
	if len(b.pieces) > 0 {
		i, start := b.pieceAt(off)
		switch off {
		case start:
			at = i
		case start + b.pieces[i].Len():
			at = i + 1
		default:
			if err := b.splitPiece(i, off-start); err != nil {
				return 0, err
			}
			at = i + 1
		}
	}

	start := len(b.addition)
	b.addition = append(b.addition, text...)
	p := Piece{Start: start, Stop: len(b.addition), Src: Addition}
	b.pieces = slices.Insert(b.pieces, at, p)

	b.length += p.Len()
	b.last = writeHint{off: off + p.Len(), piece: at, ok: true}
	b.record(Edit{Kind: EditInsert, Off: off, Len: p.Len()})
	return p.Len(), nil
}

// extendLast appends text to the addition store and grows the hinted piece
// over it. The hint always names the piece that ends the addition store; a
// hint that does not is a buffer defect, not caller error.
func (b *Buffer) extendLast(text string) int {
	p := &b.pieces[b.last.piece]
	if p.Src != Addition || p.Stop != len(b.addition) {
		panic("buffer: write hint does not end the addition store")
	}

	b.addition = append(b.addition, text...)
	p.Stop = len(b.addition)

	b.length += len(text)
	b.last.off += len(text)
	b.record(Edit{Kind: EditInsert, Off: b.last.off - len(text), Len: len(text)})
	return len(text)
}

// splitPiece replaces piece i with two adjacent pieces of the same source,
// cut off bytes from the piece's start. Logical content and order are
// unchanged. Splitting at offset 0 or at the full length is a no-op, so a
// zero-length piece can never appear.
func (b *Buffer) splitPiece(i, off int) error {
	if i < 0 || i >= len(b.pieces) {
		return ErrBadPieceID
	}
	p := b.pieces[i]
	if off < 0 || off > p.Len() {
		return ErrBadPieceRange
	}
	if off == 0 || off == p.Len() {
		return nil
	}

	cut := p.Start + off
	b.pieces[i].Stop = cut
	b.pieces = slices.Insert(b.pieces, i+1, Piece{Start: cut, Stop: p.Stop, Src: p.Src})
	return nil
}
