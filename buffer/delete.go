package buffer

// Delete removes the byte range [start, end) from the document. start is
// clamped to 0 and end to the document length; start >= end deletes
// nothing. Pieces fully inside the range are dropped and pieces straddling
// a boundary are trimmed, so no zero-length piece survives.
//
// Every delete invalidates the write hint: the next insert takes the
// general path.
func (b *Buffer) Delete(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > b.length {
		end = b.length
	}
	if start >= end {
		return
	}

	b.last = writeHint{}

	kept := make([]Piece, 0, len(b.pieces)+1)
	pos := 0
	for _, p := range b.pieces {
		pstart, pend := pos, pos+p.Len()
		pos = pend

		if pend <= start || pstart >= end {
			kept = append(kept, p)
			continue
		}
		if pstart < start {
			kept = append(kept, Piece{Start: p.Start, Stop: p.Start + (start - pstart), Src: p.Src})
		}
		if pend > end {
			kept = append(kept, Piece{Start: p.Start + (end - pstart), Stop: p.Stop, Src: p.Src})
		}
	}

	b.pieces = kept
	b.length -= end - start
	b.record(Edit{Kind: EditDelete, Off: start, Len: end - start})
}
