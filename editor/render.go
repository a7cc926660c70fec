package editor

import (
	"fmt"
	"strings"

	"github.com/tessera-editor/tessera/internal/grapheme"
)

func (m *Model) renderContent() string {
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(m.lines))
	}

	out := make([]string, 0, len(m.lines))
	for row, line := range m.lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == m.cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		sb.WriteString(m.renderLine(row, line))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(row int, line string) string {
	clusters := grapheme.Split(line)
	hasCursor := m.focused && row == m.cursorRow

	var sb strings.Builder
	for col, cl := range clusters {
		text := cl
		if cl == "\t" {
			text = strings.Repeat(" ", m.cfg.TabWidth)
		}
		if hasCursor && col == m.cursorCol {
			sb.WriteString(m.cfg.Style.Cursor.Render(text))
		} else {
			sb.WriteString(m.cfg.Style.Text.Render(text))
		}
	}

	// Cursor at EOL is rendered as a one-cell placeholder space.
	if hasCursor && m.cursorCol >= len(clusters) {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	return sb.String()
}

func gutterDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
