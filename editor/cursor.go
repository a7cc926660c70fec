package editor

import (
	"strings"

	"github.com/tessera-editor/tessera/internal/grapheme"
)

// syncLines rebuilds the line cache when the buffer has changed. It
// reports whether a rebuild happened.
func (m *Model) syncLines() bool {
	if m.lines != nil && m.buf.Version() == m.lastVersion {
		return false
	}
	m.lines = strings.Split(m.buf.String(), "\n")
	m.lastVersion = m.buf.Version()
	return true
}

func (m *Model) line(row int) string {
	if row < 0 || row >= len(m.lines) {
		return ""
	}
	return m.lines[row]
}

func (m *Model) lineClusters(row int) int {
	return grapheme.Count(m.line(row))
}

// cursorOffset maps the (row, grapheme column) cursor to a byte offset in
// the document. Offsets produced here always sit on cluster boundaries,
// which keeps every buffer edit on a valid UTF-8 boundary.
func (m *Model) cursorOffset() int {
	off := 0
	for r := 0; r < m.cursorRow && r < len(m.lines); r++ {
		off += len(m.lines[r]) + 1 // +1 for the newline
	}
	return off + grapheme.PrefixLen(m.line(m.cursorRow), m.cursorCol)
}

// VisualCol returns the cursor's terminal cell column within its line,
// accounting for wide clusters and tab expansion.
func (m Model) VisualCol() int {
	clusters := grapheme.Split(m.line(m.cursorRow))
	w := 0
	for col := 0; col < m.cursorCol && col < len(clusters); col++ {
		if clusters[col] == "\t" {
			w += m.cfg.TabWidth
			continue
		}
		w += grapheme.Width(clusters[col])
	}
	return w
}

func (m *Model) clampCursor() {
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if max := len(m.lines) - 1; m.cursorRow > max {
		m.cursorRow = max
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if max := m.lineClusters(m.cursorRow); m.cursorCol > max {
		m.cursorCol = max
	}
}

func (m *Model) moveLeft() {
	if m.cursorCol > 0 {
		m.cursorCol--
	} else if m.cursorRow > 0 {
		m.cursorRow--
		m.cursorCol = m.lineClusters(m.cursorRow)
	}
	m.stickyCol = m.cursorCol
}

func (m *Model) moveRight() {
	if m.cursorCol < m.lineClusters(m.cursorRow) {
		m.cursorCol++
	} else if m.cursorRow < len(m.lines)-1 {
		m.cursorRow++
		m.cursorCol = 0
	}
	m.stickyCol = m.cursorCol
}

// moveVertical moves delta rows, keeping the sticky column where the
// target line is long enough.
func (m *Model) moveVertical(delta int) {
	m.cursorRow += delta
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if max := len(m.lines) - 1; m.cursorRow > max {
		m.cursorRow = max
	}

	m.cursorCol = m.stickyCol
	if max := m.lineClusters(m.cursorRow); m.cursorCol > max {
		m.cursorCol = max
	}
}

func (m *Model) moveLineStart() {
	m.cursorCol = 0
	m.stickyCol = 0
}

func (m *Model) moveLineEnd() {
	m.cursorCol = m.lineClusters(m.cursorRow)
	m.stickyCol = m.cursorCol
}

// insert writes text at the cursor and advances the cursor past it.
func (m *Model) insert(text string) {
	if text == "" {
		return
	}

	// The cursor always maps inside the document, so this cannot fail.
	if _, err := m.buf.Insert(m.cursorOffset(), text); err != nil {
		panic(err)
	}

	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		m.cursorRow += strings.Count(text, "\n")
		m.cursorCol = grapheme.Count(text[i+1:])
	} else {
		m.cursorCol += grapheme.Count(text)
	}
	m.stickyCol = m.cursorCol

	m.syncLines()
	m.clampCursor()
	m.emitChange()
}

// deleteBackward applies backspace semantics: remove the cluster before
// the cursor, or join with the previous line at column zero.
func (m *Model) deleteBackward() {
	off := m.cursorOffset()
	if off == 0 {
		return
	}

	if m.cursorCol > 0 {
		line := m.line(m.cursorRow)
		n := grapheme.PrefixLen(line, m.cursorCol) - grapheme.PrefixLen(line, m.cursorCol-1)
		m.buf.Delete(off-n, off)
		m.cursorCol--
	} else {
		m.buf.Delete(off-1, off) // the previous line's newline
		m.cursorRow--
		m.cursorCol = m.lineClusters(m.cursorRow)
	}
	m.stickyCol = m.cursorCol

	m.syncLines()
	m.clampCursor()
	m.emitChange()
}

// deleteForward applies delete-key semantics: remove the cluster under
// the cursor, or join with the next line at end of line.
func (m *Model) deleteForward() {
	off := m.cursorOffset()
	if off >= m.buf.Len() {
		return
	}

	line := m.line(m.cursorRow)
	if m.cursorCol < grapheme.Count(line) {
		n := grapheme.PrefixLen(line, m.cursorCol+1) - grapheme.PrefixLen(line, m.cursorCol)
		m.buf.Delete(off, off+n)
	} else {
		m.buf.Delete(off, off+1) // the newline
	}

	m.syncLines()
	m.clampCursor()
	m.emitChange()
}
