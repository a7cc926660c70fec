package buffer

// Source selects the backing store a piece reads from.
type Source uint8

const (
	// Original is the immutable snapshot of the text the buffer was
	// constructed with.
	Original Source = iota
	// Addition is the append-only log of every byte ever inserted.
	Addition
)

func (s Source) String() string {
	switch s {
	case Original:
		return "original"
	case Addition:
		return "addition"
	default:
		return "unknown"
	}
}

// Piece references the half-open byte range [Start, Stop) of one backing
// store. Pieces hold no pointer into store memory, only the descriptor, so
// the stores are free to reallocate as they grow.
type Piece struct {
	Start int
	Stop  int
	Src   Source
}

// Len returns the piece's logical length in bytes.
func (p Piece) Len() int { return p.Stop - p.Start }
