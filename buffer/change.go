package buffer

// EditKind identifies the kind of the most recent mutation.
type EditKind uint8

const (
	EditInsert EditKind = iota
	EditDelete
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit describes one effective mutation: Len bytes inserted at or removed
// from byte offset Off.
type Edit struct {
	Kind EditKind
	Off  int
	Len  int

	VersionBefore uint64
	VersionAfter  uint64
}

// Version returns a counter bumped by every effective text mutation.
// Hosts use it to avoid re-rendering an unchanged document.
func (b *Buffer) Version() uint64 { return b.version }

// LastEdit returns the most recent effective edit.
func (b *Buffer) LastEdit() (Edit, bool) {
	if !b.hasLastEdit {
		return Edit{}, false
	}
	return b.lastEdit, true
}

func (b *Buffer) record(e Edit) {
	e.VersionBefore = b.version
	b.version++
	e.VersionAfter = b.version
	b.lastEdit = e
	b.hasLastEdit = true
}
