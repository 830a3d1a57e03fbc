package keyboard

import "github.com/keyboardkit/keyboardkit/emoji"

// TitleTextFunc provides the title text for a category.
type TitleTextFunc func(c emoji.Category) string

// TitleViewFunc renders the title view for a category, given the text
// the title-text provider produced.
type TitleViewFunc func(c emoji.Category, title string) string

// KeyboardViewFunc renders the glyph keyboard for a category.
type KeyboardViewFunc func(c emoji.Category, style Style) string

// StandardTitleText uses the category's display title.
func StandardTitleText(c emoji.Category) string { return c.Title() }

// StandardTitleView renders the title with the style's title styling.
func StandardTitleView(style Style) TitleViewFunc {
	return func(_ emoji.Category, title string) string {
		return style.Title.Render(title)
	}
}

// StandardKeyboardView renders the category's full glyph grid without
// scrolling. The composite view uses its own scroll-aware rendering;
// this is the default for callers embedding a category keyboard
// elsewhere.
func StandardKeyboardView(c emoji.Category, style Style) string {
	g := newGrid(c, style)
	return g.render(style, 0, g.columns(), -1)
}
