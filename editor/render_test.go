package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModel_RenderContent_LineNumbers(t *testing.T) {
	m := New(Config{Text: "ab\ncd", ShowLineNums: true})

	got := m.renderContent()
	want := "1 ab\n2 cd"
	if got != want {
		t.Fatalf("content=%q, want %q", got, want)
	}
}

func TestModel_RenderContent_GutterAlignsWideLineNumbers(t *testing.T) {
	m := New(Config{
		Text:         strings.TrimSuffix(strings.Repeat("x\n", 10), "\n"),
		ShowLineNums: true,
	})

	lines := strings.Split(m.renderContent(), "\n")
	if got := lines[0]; got != " 1 x" {
		t.Fatalf("first line=%q, want %q", got, " 1 x")
	}
	if got := lines[9]; got != "10 x" {
		t.Fatalf("last line=%q, want %q", got, "10 x")
	}
}

func TestModel_RenderLine_TabExpansion(t *testing.T) {
	m := New(Config{Text: "\tx", TabWidth: 2}).Blur()

	if got := m.renderContent(); got != "  x" {
		t.Fatalf("content=%q, want %q", got, "  x")
	}
}

func TestModel_RenderLine_CursorPlaceholderAtEOL(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = press(m, tea.KeyEnd)

	// Plain styles in tests, so the cursor shows up as the placeholder cell.
	if got := m.renderContent(); got != "ab " {
		t.Fatalf("content=%q, want %q", got, "ab ")
	}

	m = m.Blur()
	if got := m.renderContent(); got != "ab" {
		t.Fatalf("blurred content=%q, want %q", got, "ab")
	}
}

func TestModel_RenderContent_EmptyDocumentShowsCursorCell(t *testing.T) {
	m := New(Config{})

	if got := m.renderContent(); got != " " {
		t.Fatalf("content=%q, want %q", got, " ")
	}
}

func TestGutterDigits(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
	}
	for _, c := range cases {
		if got := gutterDigits(c.n); got != c.want {
			t.Fatalf("gutterDigits(%d)=%d, want %d", c.n, got, c.want)
		}
	}
}
