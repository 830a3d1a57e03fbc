package keyboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keyboardkit/keyboardkit/emoji"
	"github.com/keyboardkit/keyboardkit/gestures"
	"github.com/keyboardkit/keyboardkit/keymap"
	"github.com/keyboardkit/keyboardkit/prefs"
)

func testConfig(store prefs.Store) Config {
	return Config{
		Categories: emoji.AllCategories(),
		Style:      StandardStyle(MochaTheme()),
		Context:    Context{Width: 40, Height: 10, Theme: MochaTheme()},
		Store:      store,
	}
}

func TestOfferedCategoriesExcludeEmpty(t *testing.T) {
	empty := emoji.NewCategory("empty", "Empty", nil)
	cfg := testConfig(prefs.NewMemoryStore())
	cfg.Categories = append([]emoji.Category{empty}, emoji.AllCategories()...)

	k := NewStandard(cfg)
	offered := k.Categories()
	if len(offered) != len(emoji.AllCategories()) {
		t.Fatalf("offered = %d categories, want %d", len(offered), len(emoji.AllCategories()))
	}
	for _, c := range offered {
		if !c.HasEmojis() {
			t.Fatalf("offered empty category %q", c.Raw())
		}
	}
}

func TestExplicitInitialSelectionWins(t *testing.T) {
	store := prefs.NewMemoryStore()
	// A persisted value that the explicit selection must override.
	if err := store.SetString(PreferenceKey, "foods"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	cfg := testConfig(store)
	initial := emoji.Animals
	cfg.Initial = &initial

	k := NewStandard(cfg)
	k.Init()
	if got := k.Active().Raw(); got != "animals" {
		t.Fatalf("active = %q, want animals", got)
	}
}

func TestPersistedSelectionRestored(t *testing.T) {
	store := prefs.NewMemoryStore()
	if err := store.SetString(PreferenceKey, "travels"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	k := NewStandard(testConfig(store))
	k.Init()
	if got := k.Active().Raw(); got != "travels" {
		t.Fatalf("active = %q, want travels", got)
	}
}

func TestUnknownPersistedValueFallsBackToDefault(t *testing.T) {
	store := prefs.NewMemoryStore()
	if err := store.SetString(PreferenceKey, "not-a-category"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	k := NewStandard(testConfig(store))
	k.Init()
	if got := k.Active().Raw(); got != emoji.Default.Raw() {
		t.Fatalf("active = %q, want default %q", got, emoji.Default.Raw())
	}
}

func TestNoSelectionNoPersistedValueUsesDefault(t *testing.T) {
	k := NewStandard(testConfig(prefs.NewMemoryStore()))
	k.Init()
	if got := k.Active().Raw(); got != emoji.Default.Raw() {
		t.Fatalf("active = %q, want default %q", got, emoji.Default.Raw())
	}
}

func TestInitialSelectionAbsentFromListFallsBack(t *testing.T) {
	cfg := testConfig(prefs.NewMemoryStore())
	cfg.Categories = []emoji.Category{emoji.Animals, emoji.Foods}
	ghost := emoji.Flags
	cfg.Initial = &ghost

	k := NewStandard(cfg)
	k.Init()
	// Default (smileys) is not offered either, so the first offered
	// category wins.
	if got := k.Active().Raw(); got != "animals" {
		t.Fatalf("active = %q, want animals", got)
	}
}

func TestCloseWritesActiveCategory(t *testing.T) {
	store := prefs.NewMemoryStore()
	k := NewStandard(testConfig(store))
	k.Init()
	k.Select(emoji.Symbols)

	if err := k.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	got, err := store.GetString(PreferenceKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "symbols" {
		t.Fatalf("persisted = %q, want symbols", got)
	}
}

func TestDismissKeyPersistsAndEmitsDismiss(t *testing.T) {
	store := prefs.NewMemoryStore()
	k := NewStandard(testConfig(store))
	k.Init()
	k.Select(emoji.Objects)

	k, cmd := k.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a dismiss command")
	}
	if _, ok := cmd().(DismissMsg); !ok {
		t.Fatalf("cmd produced %T, want DismissMsg", cmd())
	}
	got, _ := store.GetString(PreferenceKey)
	if got != "objects" {
		t.Fatalf("persisted = %q, want objects", got)
	}
}

func TestMenuSelectionIsTwoWay(t *testing.T) {
	k := NewStandard(testConfig(prefs.NewMemoryStore()))
	k.Init()

	// Keyboard-driven: tab advances the menu and reports the change.
	k, cmd := k.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatal("expected a category-selected command")
	}
	msg, ok := cmd().(CategorySelectedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want CategorySelectedMsg", cmd())
	}
	if msg.Category.Raw() != k.Active().Raw() {
		t.Fatalf("msg category = %q, active = %q", msg.Category.Raw(), k.Active().Raw())
	}

	// Programmatic: Select drives the same state the menu reads.
	k.Select(emoji.Flags)
	if got := k.Active().Raw(); got != "flags" {
		t.Fatalf("active = %q, want flags", got)
	}

	// Selecting a category outside the offered list is ignored.
	k.Select(emoji.NewCategory("ghost", "Ghost", []emoji.Emoji{{Glyph: "x"}}))
	if got := k.Active().Raw(); got != "flags" {
		t.Fatalf("active = %q after ghost select, want flags", got)
	}
}

func TestTabWrapsAroundMenu(t *testing.T) {
	k := NewStandard(testConfig(prefs.NewMemoryStore()))
	k.Init()

	k, _ = k.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	want := k.Categories()[len(k.Categories())-1].Raw()
	if got := k.Active().Raw(); got != want {
		t.Fatalf("active after shift+tab from first = %q, want %q", got, want)
	}
}

func TestEnterEmitsSelectedEmoji(t *testing.T) {
	k := NewStandard(testConfig(prefs.NewMemoryStore()))
	k.Init()

	k, _ = k.Update(tea.KeyMsg{Type: tea.KeyRight})
	k, cmd := k.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an emoji-selected command")
	}
	msg, ok := cmd().(EmojiSelectedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want EmojiSelectedMsg", cmd())
	}
	if msg.Category.Raw() != "smileys" {
		t.Fatalf("selected category = %q, want smileys", msg.Category.Raw())
	}
	// cursor moved one column right in a 3-row grid = index 3
	if msg.Emoji.Glyph != emoji.Smileys.Emojis()[3].Glyph {
		t.Fatalf("selected glyph = %q, want %q", msg.Emoji.Glyph, emoji.Smileys.Emojis()[3].Glyph)
	}
}

func TestViewRendersTitleGridAndMenu(t *testing.T) {
	k := NewStandard(testConfig(prefs.NewMemoryStore()))
	k.Init()

	view := k.View()
	if !strings.Contains(view, emoji.Smileys.Title()) {
		t.Fatalf("view missing title %q:\n%s", emoji.Smileys.Title(), view)
	}
	if !strings.Contains(view, emoji.Smileys.Emojis()[0].Glyph) {
		t.Fatal("view missing first glyph of active category")
	}
	// The menu shows every offered category's lead glyph.
	for _, c := range k.Categories() {
		if !strings.Contains(view, c.Emojis()[0].Glyph) {
			t.Fatalf("view missing menu entry for %q", c.Raw())
		}
	}
}

func TestCustomBuildersAreUsed(t *testing.T) {
	cfg := testConfig(prefs.NewMemoryStore())
	cfg.TitleText = func(c emoji.Category) string { return "custom " + c.Raw() }
	cfg.TitleView = func(_ emoji.Category, title string) string { return ">> " + title }
	cfg.KeyboardView = func(c emoji.Category, _ Style) string { return "board:" + c.Raw() }

	k := New(cfg)
	k.Init()
	view := k.View()
	if !strings.Contains(view, ">> custom smileys") {
		t.Fatalf("custom title builder not used:\n%s", view)
	}
	if !strings.Contains(view, "board:smileys") {
		t.Fatalf("custom keyboard builder not used:\n%s", view)
	}
}

func TestPagingStaysInBounds(t *testing.T) {
	k := NewStandard(testConfig(prefs.NewMemoryStore()))
	k.Init()

	for i := 0; i < 20; i++ {
		k, _ = k.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	}
	g := newGrid(k.Active(), k.style)
	if k.offset < 0 || k.offset > g.columns() {
		t.Fatalf("offset out of bounds: %d (columns=%d)", k.offset, g.columns())
	}
	for i := 0; i < 20; i++ {
		k, _ = k.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	}
	if k.offset != 0 {
		t.Fatalf("offset after paging back = %d, want 0", k.offset)
	}
}

func TestKeymapOverridesRebindKeyboardActions(t *testing.T) {
	keys := keymap.NewRegistry()
	err := keys.ApplyOverrides([]keymap.Override{
		{Scope: keymap.ScopeKeyboard, Action: string(gestures.ActionNextPage), Keys: []string{"n"}},
	})
	if err != nil {
		t.Fatalf("apply overrides: %v", err)
	}

	cfg := testConfig(prefs.NewMemoryStore())
	cfg.Context.Width = 20
	cfg.Keys = keys

	k := NewStandard(cfg)
	k.Init()

	// The overridden key pages the grid.
	k, _ = k.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if k.offset == 0 {
		t.Fatal("override key did not page the grid")
	}

	// The replaced standard key is unbound now.
	before := k.offset
	k, _ = k.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if k.offset != before {
		t.Fatalf("replaced key still pages: offset %d, want %d", k.offset, before)
	}

	// Untouched bindings keep working through the registry.
	k, cmd := k.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatal("tab binding lost after override")
	}
}

func TestEmptyCategoryListRendersNothing(t *testing.T) {
	cfg := testConfig(prefs.NewMemoryStore())
	cfg.Categories = nil
	k := NewStandard(cfg)
	k.Init()
	if view := k.View(); view != "" {
		t.Fatalf("view = %q, want empty", view)
	}
	if err := k.Close(); err != nil {
		t.Fatalf("close on empty keyboard: %v", err)
	}
}
