// Package grapheme wraps uniseg segmentation and terminal cell widths for
// the editor layer. The buffer core stays byte-oriented; only cursor
// movement and rendering need cluster awareness.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster. Control
// clusters report zero width.
func Width(cluster string) int {
	return runewidth.StringWidth(cluster)
}

// PrefixLen returns the byte length of the first n clusters of text. When
// text has fewer clusters, it returns len(text).
func PrefixLen(text string, n int) int {
	if n <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for i := 0; i < n && g.Next(); i++ {
		off += len(g.Str())
	}
	return off
}
