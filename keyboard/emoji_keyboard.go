// Package keyboard renders emoji keyboards as bubbletea models: a
// title, a horizontally scrollable glyph grid, and a category
// selection menu, with the selected category persisted across runs.
package keyboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keyboardkit/keyboardkit/emoji"
	"github.com/keyboardkit/keyboardkit/gestures"
	"github.com/keyboardkit/keyboardkit/keymap"
	"github.com/keyboardkit/keyboardkit/prefs"
)

// PreferenceKey is the preference entry the selected category raw
// identifier persists under.
const PreferenceKey = "com.keyboardkit.emoji.category"

// EmojiSelectedMsg is emitted when the user picks a glyph.
type EmojiSelectedMsg struct {
	Emoji    emoji.Emoji
	Category emoji.Category
}

// CategorySelectedMsg is emitted when the active category changes.
type CategorySelectedMsg struct {
	Category emoji.Category
}

// DismissMsg is emitted when the user dismisses the keyboard.
type DismissMsg struct{}

// Config is the construction input for an EmojiCategoryKeyboard.
// Categories with no glyphs are filtered out. Initial, when non-nil
// and present in the filtered list, wins over the persisted selection.
type Config struct {
	Categories []emoji.Category
	Style      Style
	Context    Context
	Store      prefs.Store
	Initial    *emoji.Category
	// Keys, when set, routes page/category/pick/dismiss keys through
	// the registry's keyboard scope so overrides apply. When nil the
	// standard keys are hardwired.
	Keys *keymap.Registry

	TitleText    TitleTextFunc
	TitleView    TitleViewFunc
	KeyboardView KeyboardViewFunc
}

// EmojiCategoryKeyboard is the composite emoji keyboard view: title,
// scrollable grid and category menu, top to bottom. The active
// category is resolved on Init and written back on Close.
type EmojiCategoryKeyboard struct {
	categories []emoji.Category
	style      Style
	ctx        Context
	store      prefs.Store
	initial    *emoji.Category
	keys       *keymap.Registry

	titleText    TitleTextFunc
	titleView    TitleViewFunc
	keyboardView KeyboardViewFunc
	// standardBoard marks the keyboard-view builder as the standard
	// one, which renders through the scroll-aware grid instead.
	standardBoard bool

	active   emoji.Category
	resolved bool
	cursor   int
	offset   int
}

// New builds the keyboard with all three customization funcs supplied
// by the caller.
func New(cfg Config) *EmojiCategoryKeyboard {
	k := &EmojiCategoryKeyboard{
		categories:   emoji.WithEmojis(cfg.Categories),
		style:        cfg.Style,
		ctx:          cfg.Context,
		store:        cfg.Store,
		initial:      cfg.Initial,
		keys:         cfg.Keys,
		titleText:    cfg.TitleText,
		titleView:    cfg.TitleView,
		keyboardView: cfg.KeyboardView,
	}
	if k.titleText == nil {
		k.titleText = StandardTitleText
	}
	return k
}

// NewWithStandardKeyboardView supplies the standard keyboard-view
// builder; the caller provides the title builders.
func NewWithStandardKeyboardView(cfg Config) *EmojiCategoryKeyboard {
	cfg.KeyboardView = StandardKeyboardView
	k := New(cfg)
	k.standardBoard = true
	return k
}

// NewWithStandardTitleView supplies the standard title builders; the
// caller provides the keyboard-view builder.
func NewWithStandardTitleView(cfg Config) *EmojiCategoryKeyboard {
	cfg.TitleText = StandardTitleText
	cfg.TitleView = StandardTitleView(cfg.Style)
	return New(cfg)
}

// NewStandard supplies standard defaults for every builder.
func NewStandard(cfg Config) *EmojiCategoryKeyboard {
	cfg.KeyboardView = StandardKeyboardView
	k := NewWithStandardTitleView(cfg)
	k.standardBoard = true
	return k
}

// Categories returns the offered (filtered) category list.
func (k *EmojiCategoryKeyboard) Categories() []emoji.Category { return k.categories }

// Active returns the active category, resolving it first if Init has
// not run yet.
func (k *EmojiCategoryKeyboard) Active() emoji.Category {
	if !k.resolved {
		k.resolveActive()
	}
	return k.active
}

// Select makes c the active category if it is in the offered list.
// This is the write half of the menu's two-way binding.
func (k *EmojiCategoryKeyboard) Select(c emoji.Category) {
	if !k.resolved {
		k.resolveActive()
	}
	if _, ok := emoji.ByRaw(k.categories, c.Raw()); !ok {
		return
	}
	k.setActive(c)
}

// Close writes the active category back to the preference store.
// Call on dismissal; Update also calls it when the user hits esc.
func (k *EmojiCategoryKeyboard) Close() error {
	if k.store == nil || !k.resolved || k.active.IsZero() {
		return nil
	}
	return k.store.SetString(PreferenceKey, k.active.Raw())
}

func (k *EmojiCategoryKeyboard) Init() tea.Cmd {
	k.resolveActive()
	return nil
}

// resolveActive implements the first-appearance rules: explicit
// initial selection, then persisted preference, then the default
// category, then the first offered category.
func (k *EmojiCategoryKeyboard) resolveActive() {
	k.resolved = true
	k.cursor = 0
	k.offset = 0
	if len(k.categories) == 0 {
		k.active = emoji.Category{}
		return
	}
	if k.initial != nil {
		if c, ok := emoji.ByRaw(k.categories, k.initial.Raw()); ok {
			k.active = c
			return
		}
	}
	if k.store != nil {
		if raw, err := k.store.GetString(PreferenceKey); err == nil && raw != "" {
			if c, ok := emoji.ByRaw(k.categories, raw); ok {
				k.active = c
				return
			}
		}
	}
	if c, ok := emoji.ByRaw(k.categories, emoji.Default.Raw()); ok {
		k.active = c
		return
	}
	k.active = k.categories[0]
}

func (k *EmojiCategoryKeyboard) Update(msg tea.Msg) (*EmojiCategoryKeyboard, tea.Cmd) {
	if !k.resolved {
		k.resolveActive()
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		k.ctx.Width = msg.Width
		k.ctx.Height = msg.Height
		k.clampView()
		return k, nil
	case tea.KeyMsg:
		return k.handleKey(msg.String())
	}
	return k, nil
}

func (k *EmojiCategoryKeyboard) handleKey(name string) (*EmojiCategoryKeyboard, tea.Cmd) {
	g := newGrid(k.active, k.style)

	// Cursor movement is not an overridable action.
	switch name {
	case "left", "h":
		k.moveCursor(g, 0, -1)
		return k, nil
	case "right", "l":
		k.moveCursor(g, 0, 1)
		return k, nil
	case "up", "k":
		k.moveCursor(g, -1, 0)
		return k, nil
	case "down", "j":
		k.moveCursor(g, 1, 0)
		return k, nil
	}

	if k.keys != nil {
		b := k.keys.Lookup(name, keymap.ScopeKeyboard)
		if b == nil {
			return k, nil
		}
		switch b.Action {
		case gestures.ActionEmoji:
			return k, k.pickCurrent()
		case gestures.ActionNextPage:
			k.page(g, 1)
		case gestures.ActionPrevPage:
			k.page(g, -1)
		case gestures.ActionTab:
			return k, k.selectNeighbor(1)
		case gestures.ActionShift:
			return k, k.selectNeighbor(-1)
		case gestures.ActionDismiss:
			return k, k.dismiss()
		}
		return k, nil
	}

	switch name {
	case "pgdown", "]":
		k.page(g, 1)
	case "pgup", "[":
		k.page(g, -1)
	case "tab":
		return k, k.selectNeighbor(1)
	case "shift+tab":
		return k, k.selectNeighbor(-1)
	case "enter", " ", "space":
		return k, k.pickCurrent()
	case "esc":
		return k, k.dismiss()
	}
	return k, nil
}

// pickCurrent emits the glyph under the cursor.
func (k *EmojiCategoryKeyboard) pickCurrent() tea.Cmd {
	if k.cursor < 0 || k.cursor >= len(k.active.Emojis()) {
		return nil
	}
	e := k.active.Emojis()[k.cursor]
	active := k.active
	return func() tea.Msg {
		return EmojiSelectedMsg{Emoji: e, Category: active}
	}
}

// dismiss persists the selection and reports the dismissal.
func (k *EmojiCategoryKeyboard) dismiss() tea.Cmd {
	_ = k.Close()
	return func() tea.Msg { return DismissMsg{} }
}

// selectNeighbor moves the menu selection by delta categories,
// wrapping at the ends.
func (k *EmojiCategoryKeyboard) selectNeighbor(delta int) tea.Cmd {
	n := len(k.categories)
	if n == 0 {
		return nil
	}
	idx := k.activeIndex()
	idx = ((idx+delta)%n + n) % n
	k.setActive(k.categories[idx])
	active := k.active
	return func() tea.Msg { return CategorySelectedMsg{Category: active} }
}

func (k *EmojiCategoryKeyboard) activeIndex() int {
	for i, c := range k.categories {
		if c.Raw() == k.active.Raw() {
			return i
		}
	}
	return 0
}

func (k *EmojiCategoryKeyboard) setActive(c emoji.Category) {
	if c.Raw() == k.active.Raw() {
		return
	}
	k.active = c
	k.cursor = 0
	k.offset = 0
}

func (k *EmojiCategoryKeyboard) moveCursor(g grid, dRow, dCol int) {
	if len(k.active.Emojis()) == 0 {
		return
	}
	row := k.cursor % g.rows
	col := k.cursor / g.rows
	row += dRow
	col += dCol
	if row < 0 || row >= g.rows || col < 0 {
		return
	}
	idx := g.indexAt(row, col)
	if idx < 0 {
		return
	}
	k.cursor = idx
	k.scrollTo(g, col)
}

func (k *EmojiCategoryKeyboard) page(g grid, dir int) {
	vis := k.visibleColumns()
	k.offset += dir * vis
	k.clampOffset(g)
	// Keep the cursor inside the visible window.
	row := k.cursor % g.rows
	col := k.cursor / g.rows
	if col < k.offset {
		col = k.offset
	}
	if col >= k.offset+vis {
		col = k.offset + vis - 1
	}
	if idx := g.indexAt(row, col); idx >= 0 {
		k.cursor = idx
	} else if idx := g.indexAt(0, col); idx >= 0 {
		k.cursor = idx
	}
}

func (k *EmojiCategoryKeyboard) scrollTo(g grid, col int) {
	vis := k.visibleColumns()
	if col < k.offset {
		k.offset = col
	}
	if col >= k.offset+vis {
		k.offset = col - vis + 1
	}
	k.clampOffset(g)
}

func (k *EmojiCategoryKeyboard) clampOffset(g grid) {
	maxOffset := g.columns() - k.visibleColumns()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if k.offset > maxOffset {
		k.offset = maxOffset
	}
	if k.offset < 0 {
		k.offset = 0
	}
}

func (k *EmojiCategoryKeyboard) clampView() {
	g := newGrid(k.active, k.style)
	k.clampOffset(g)
	k.scrollTo(g, k.cursor/g.rows)
}

func (k *EmojiCategoryKeyboard) visibleColumns() int {
	cell := k.style.cellWidth()
	if k.ctx.Width <= 0 {
		return 8
	}
	vis := k.ctx.Width / cell
	if vis < 1 {
		vis = 1
	}
	return vis
}

// View renders title, grid and menu top to bottom.
func (k *EmojiCategoryKeyboard) View() string {
	if !k.resolved {
		k.resolveActive()
	}
	if len(k.categories) == 0 {
		return ""
	}

	title := k.renderTitle()
	board := k.renderBoard()
	menu := k.renderMenu()

	return lipgloss.JoinVertical(lipgloss.Left, title, board, menu)
}

func (k *EmojiCategoryKeyboard) renderTitle() string {
	text := k.titleText(k.active)
	if k.titleView != nil {
		return k.titleView(k.active, text)
	}
	return StandardTitleView(k.style)(k.active, text)
}

func (k *EmojiCategoryKeyboard) renderBoard() string {
	if k.keyboardView != nil && !k.standardBoard {
		return k.keyboardView(k.active, k.style)
	}
	g := newGrid(k.active, k.style)
	return g.render(k.style, k.offset, k.visibleColumns(), k.cursor)
}

func (k *EmojiCategoryKeyboard) renderMenu() string {
	parts := make([]string, 0, len(k.categories))
	for _, c := range k.categories {
		label := menuLabel(c)
		if c.Raw() == k.active.Raw() {
			parts = append(parts, k.style.MenuActive.Render(label))
		} else {
			parts = append(parts, k.style.MenuItem.Render(label))
		}
	}
	gap := k.style.MenuGap
	if gap <= 0 {
		gap = 2
	}
	return strings.Join(parts, strings.Repeat(" ", gap))
}

// menuLabel is the category's first glyph, matching how vendor emoji
// keyboards draw their category bar. Titles would overflow the row.
func menuLabel(c emoji.Category) string {
	if es := c.Emojis(); len(es) > 0 {
		return es[0].Glyph
	}
	return c.Title()
}
