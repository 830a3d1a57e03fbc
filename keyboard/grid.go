package keyboard

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/keyboardkit/keyboardkit/emoji"
)

// grid lays glyphs out column-major, the way a horizontally scrolling
// emoji keyboard fills: top to bottom within a column, then the next
// column to the right.
type grid struct {
	emojis []emoji.Emoji
	rows   int
}

func newGrid(c emoji.Category, style Style) grid {
	return grid{emojis: c.Emojis(), rows: style.rows()}
}

// columns is the total column count for the glyph list.
func (g grid) columns() int {
	if g.rows <= 0 || len(g.emojis) == 0 {
		return 0
	}
	return (len(g.emojis) + g.rows - 1) / g.rows
}

// at returns the glyph at (row, col), false when the last column is
// partially filled.
func (g grid) at(row, col int) (emoji.Emoji, bool) {
	idx := col*g.rows + row
	if row < 0 || row >= g.rows || idx < 0 || idx >= len(g.emojis) {
		return emoji.Emoji{}, false
	}
	return g.emojis[idx], true
}

// indexAt maps (row, col) to the flat glyph index, -1 when out of
// range.
func (g grid) indexAt(row, col int) int {
	idx := col*g.rows + row
	if row < 0 || row >= g.rows || idx >= len(g.emojis) {
		return -1
	}
	return idx
}

// render draws the columns [offset, offset+visible) with the glyph at
// cursor highlighted. cursor < 0 disables highlighting.
func (g grid) render(style Style, offset, visible, cursor int) string {
	if len(g.emojis) == 0 || visible <= 0 {
		return ""
	}
	cell := style.cellWidth()
	lines := make([]string, 0, g.rows)
	for row := 0; row < g.rows; row++ {
		var b strings.Builder
		for col := offset; col < offset+visible && col < g.columns(); col++ {
			e, ok := g.at(row, col)
			if !ok {
				b.WriteString(strings.Repeat(" ", cell))
				continue
			}
			st := style.Glyph
			if g.indexAt(row, col) == cursor {
				st = style.GlyphFocus
			}
			b.WriteString(st.Render(padCell(e.Glyph, cell)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// padCell pads a glyph to the cell width, accounting for wide runes.
func padCell(glyph string, width int) string {
	w := ansi.StringWidth(glyph)
	if w >= width {
		return ansi.Truncate(glyph, width, "")
	}
	return glyph + strings.Repeat(" ", width-w)
}
