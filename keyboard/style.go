package keyboard

import "github.com/charmbracelet/lipgloss"

// Context is the rendering context a keyboard view draws within.
type Context struct {
	Width  int
	Height int
	Theme  Theme
}

// Style is the appearance configuration for the emoji keyboard: grid
// geometry plus the lipgloss styles for each sub-view.
type Style struct {
	// Rows is the number of glyph rows in the grid.
	Rows int
	// CellWidth is the rendered width of one glyph cell.
	CellWidth int
	// MenuGap separates category entries in the selection menu.
	MenuGap int

	Title      lipgloss.Style
	Glyph      lipgloss.Style
	GlyphFocus lipgloss.Style
	MenuItem   lipgloss.Style
	MenuActive lipgloss.Style
}

// StandardStyle builds the standard appearance for a theme.
func StandardStyle(th Theme) Style {
	return Style{
		Rows:      3,
		CellWidth: 4,
		MenuGap:   2,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Accent),
		Glyph: lipgloss.NewStyle().
			Foreground(th.Text),
		GlyphFocus: lipgloss.NewStyle().
			Foreground(th.Text).
			Background(th.Surface),
		MenuItem: lipgloss.NewStyle().
			Foreground(th.Muted),
		MenuActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Focus),
	}
}

func (s Style) rows() int {
	if s.Rows <= 0 {
		return 3
	}
	return s.Rows
}

func (s Style) cellWidth() int {
	if s.CellWidth <= 0 {
		return 4
	}
	return s.CellWidth
}
