package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessera-editor/tessera/buffer"
)

func press(m Model, types ...tea.KeyType) Model {
	for _, t := range types {
		m, _ = m.Update(tea.KeyMsg{Type: t})
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModel_TypingInsertsAtCursor(t *testing.T) {
	m := New(Config{Text: "hello"})
	m = typeText(m, "x")

	if got := m.Buffer().String(); got != "xhello" {
		t.Fatalf("text=%q, want %q", got, "xhello")
	}
	if row, col := m.Cursor(); row != 0 || col != 1 {
		t.Fatalf("cursor=(%d,%d), want (0,1)", row, col)
	}
}

func TestModel_SequentialTypingSharesOnePiece(t *testing.T) {
	m := New(Config{Text: "hello "})
	m = press(m, tea.KeyEnd)
	m = typeText(m, "world")

	if got := m.Buffer().String(); got != "hello world" {
		t.Fatalf("text=%q, want %q", got, "hello world")
	}
	if got := len(m.Buffer().Pieces()); got != 2 {
		t.Fatalf("pieces=%d, want 2", got)
	}
	if row, col := m.Cursor(); row != 0 || col != 11 {
		t.Fatalf("cursor=(%d,%d), want (0,11)", row, col)
	}
}

func TestModel_EnterSplitsAndBackspaceJoinsLines(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = press(m, tea.KeyRight, tea.KeyEnter)

	if got := m.Buffer().String(); got != "a\nb" {
		t.Fatalf("after enter text=%q, want %q", got, "a\nb")
	}
	if row, col := m.Cursor(); row != 1 || col != 0 {
		t.Fatalf("after enter cursor=(%d,%d), want (1,0)", row, col)
	}

	m = press(m, tea.KeyBackspace)
	if got := m.Buffer().String(); got != "ab" {
		t.Fatalf("after backspace text=%q, want %q", got, "ab")
	}
	if row, col := m.Cursor(); row != 0 || col != 1 {
		t.Fatalf("after backspace cursor=(%d,%d), want (0,1)", row, col)
	}
}

func TestModel_DeleteForwardJoinsAtLineEnd(t *testing.T) {
	m := New(Config{Text: "a\nb"})
	m = press(m, tea.KeyEnd, tea.KeyDelete)

	if got := m.Buffer().String(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
	if row, col := m.Cursor(); row != 0 || col != 1 {
		t.Fatalf("cursor=(%d,%d), want (0,1)", row, col)
	}
}

func TestModel_MovementCountsGraphemes(t *testing.T) {
	m := New(Config{Text: "aé中b"})
	m = press(m, tea.KeyRight, tea.KeyRight)

	if row, col := m.Cursor(); row != 0 || col != 2 {
		t.Fatalf("cursor=(%d,%d), want (0,2)", row, col)
	}

	m = typeText(m, "x")
	if got := m.Buffer().String(); got != "aéx中b" {
		t.Fatalf("text=%q, want %q", got, "aéx中b")
	}
}

func TestModel_VerticalMovementKeepsStickyColumn(t *testing.T) {
	m := New(Config{Text: "long line\nab\nlonger!"})
	m = press(m, tea.KeyEnd, tea.KeyDown)

	if row, col := m.Cursor(); row != 1 || col != 2 {
		t.Fatalf("first down cursor=(%d,%d), want (1,2)", row, col)
	}

	m = press(m, tea.KeyDown)
	if row, col := m.Cursor(); row != 2 || col != 7 {
		t.Fatalf("second down cursor=(%d,%d), want (2,7)", row, col)
	}

	m = press(m, tea.KeyUp)
	if row, col := m.Cursor(); row != 1 || col != 2 {
		t.Fatalf("up cursor=(%d,%d), want (1,2)", row, col)
	}
}

func TestModel_BackspaceAtDocumentStartIsNoop(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = press(m, tea.KeyBackspace)

	if got := m.Buffer().String(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
	if got := m.Buffer().Version(); got != 0 {
		t.Fatalf("version=%d, want 0", got)
	}
}

func TestModel_OnChangeReportsEdits(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{OnChange: func(e ChangeEvent) { events = append(events, e) }})

	m = typeText(m, "a")
	m = press(m, tea.KeyBackspace)

	want := []ChangeEvent{
		{
			Version: 1,
			Edit:    buffer.Edit{Kind: buffer.EditInsert, Off: 0, Len: 1, VersionBefore: 0, VersionAfter: 1},
			Row:     0, Col: 1,
		},
		{
			Version: 2,
			Edit:    buffer.Edit{Kind: buffer.EditDelete, Off: 0, Len: 1, VersionBefore: 1, VersionAfter: 2},
			Row:     0, Col: 0,
		},
	}
	if len(events) != len(want) {
		t.Fatalf("events=%d, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestModel_BlurIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "a"}).Blur()
	m = typeText(m, "x")

	if got := m.Buffer().String(); got != "a" {
		t.Fatalf("blurred text=%q, want %q", got, "a")
	}

	m = m.Focus()
	m = typeText(m, "x")
	if got := m.Buffer().String(); got != "xa" {
		t.Fatalf("focused text=%q, want %q", got, "xa")
	}
}

func TestModel_FollowCursorScrollsViewport(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd\ne"})
	m = m.SetSize(10, 2)

	m = press(m, tea.KeyDown, tea.KeyDown, tea.KeyDown)
	if row, _ := m.Cursor(); row != 3 {
		t.Fatalf("row=%d, want 3", row)
	}
	if got := m.viewport.YOffset; got != 2 {
		t.Fatalf("yoffset=%d, want 2", got)
	}

	m = press(m, tea.KeyUp, tea.KeyUp, tea.KeyUp)
	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("yoffset after up=%d, want 0", got)
	}
}

func TestModel_PageMovement(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd\ne\nf"})
	m = m.SetSize(10, 2)

	m = press(m, tea.KeyPgDown)
	if row, _ := m.Cursor(); row != 2 {
		t.Fatalf("row=%d, want 2", row)
	}
	m = press(m, tea.KeyPgDown)
	if row, _ := m.Cursor(); row != 4 {
		t.Fatalf("row=%d, want 4", row)
	}
	m = press(m, tea.KeyPgUp)
	if row, _ := m.Cursor(); row != 2 {
		t.Fatalf("row=%d, want 2", row)
	}
}

type resyncMsg struct{}

func TestModel_ResyncsAfterHostMutation(t *testing.T) {
	m := New(Config{Text: "abc"})
	if _, err := m.Buffer().Insert(3, "!"); err != nil {
		t.Fatalf("host insert: %v", err)
	}

	m, _ = m.Update(resyncMsg{})
	m = press(m, tea.KeyEnd)
	if _, col := m.Cursor(); col != 4 {
		t.Fatalf("col=%d, want 4", col)
	}
}
