package editor

import "github.com/tessera-editor/tessera/buffer"

// ChangeEvent describes one effective buffer mutation, delivered to the
// Config.OnChange hook.
type ChangeEvent struct {
	Version uint64
	Edit    buffer.Edit

	// Cursor position after the edit, in document coordinates.
	Row, Col int
}

func (m *Model) emitChange() {
	if m.cfg.OnChange == nil {
		return
	}
	edit, ok := m.buf.LastEdit()
	if !ok {
		return
	}
	m.cfg.OnChange(ChangeEvent{
		Version: m.buf.Version(),
		Edit:    edit,
		Row:     m.cursorRow,
		Col:     m.cursorCol,
	})
}
