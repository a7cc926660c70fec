package buffer

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo materializes the full document to w in piece order, reading each
// piece's range from its backing store. It implements io.WriterTo.
//
// A piece whose range falls outside its store reports ErrBadPieceRange;
// that indicates a violated invariant elsewhere, not bad input. Sink
// failures are wrapped without losing the byte count already written.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, p := range b.pieces {
		store := b.original
		if p.Src == Addition {
			store = b.addition
		}
		if p.Start < 0 || p.Start > p.Stop || p.Stop > len(store) {
			return written, fmt.Errorf("piece [%d,%d) exceeds %s store of %d bytes: %w",
				p.Start, p.Stop, p.Src, len(store), ErrBadPieceRange)
		}

		n, err := w.Write(store[p.Start:p.Stop])
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("buffer: materialize: %w", err)
		}
	}
	return written, nil
}

// String materializes the document into memory.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	if _, err := b.WriteTo(&sb); err != nil {
		// A strings.Builder cannot fail to write, so the only possible
		// error here is a corrupt piece list.
		panic(err)
	}
	return sb.String()
}
