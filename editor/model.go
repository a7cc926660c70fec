package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessera-editor/tessera/buffer"
)

// Model is a Bubble Tea component that renders and edits a piece-table
// buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused  bool
	viewport viewport.Model

	// Line cache over the materialized document, rebuilt when the buffer
	// version moves.
	lines       []string
	lastVersion uint64

	cursorRow int
	cursorCol int // grapheme column within the line
	stickyCol int // preferred column for vertical movement
}

func New(cfg Config) Model {
	m := Model{
		cfg:      cfg.withDefaults(),
		buf:      buffer.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.syncLines()
	m.rebuildContent()
	return m
}

// Buffer exposes the underlying document. Hosts may mutate it directly;
// the model resyncs on the next Update.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// Cursor returns the cursor position: 0-based row and grapheme column.
func (m Model) Cursor() (row, col int) { return m.cursorRow, m.cursorCol }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.syncLines() {
			m.clampCursor()
		}
		m.handleKey(msg)
		m.rebuildContent()
		m.followCursor()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		// Resync in case the host mutated the buffer outside the editor.
		if m.syncLines() {
			m.clampCursor()
			m.rebuildContent()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) handleKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.moveLeft()
	case key.Matches(msg, km.Right):
		m.moveRight()
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveVertical(1)
	case key.Matches(msg, km.Home):
		m.moveLineStart()
	case key.Matches(msg, km.End):
		m.moveLineEnd()
	case key.Matches(msg, km.PageUp):
		m.moveVertical(-m.pageSize())
	case key.Matches(msg, km.PageDown):
		m.moveVertical(m.pageSize())
	case key.Matches(msg, km.Backspace):
		m.deleteBackward()
	case key.Matches(msg, km.Delete):
		m.deleteForward()
	case key.Matches(msg, km.Enter):
		m.insert("\n")
	case key.Matches(msg, km.Tab):
		m.insert("\t")
	default:
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt {
				m.insert(string(msg.Runes))
			}
		case tea.KeySpace:
			m.insert(" ")
		}
	}
}

func (m *Model) pageSize() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if m.cursorRow < y {
		m.viewport.SetYOffset(m.cursorRow)
		return
	}
	if m.cursorRow >= y+h {
		m.viewport.SetYOffset(m.cursorRow - h + 1)
	}
}
