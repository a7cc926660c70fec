// Package editor provides a Bubble Tea text editor component backed by the
// piece-table buffer package.
//
// The package owns input handling, cursor movement, viewport behavior, and
// grapheme-aware rendering. The buffer owns the document; the editor only
// ever talks to it through byte offsets derived from the cursor.
package editor
