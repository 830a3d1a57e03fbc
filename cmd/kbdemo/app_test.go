package main

import (
	"context"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keyboardkit/keyboardkit/emoji"
	"github.com/keyboardkit/keyboardkit/feedback"
	"github.com/keyboardkit/keyboardkit/keyboard"
	"github.com/keyboardkit/keyboardkit/keymap"
	"github.com/keyboardkit/keyboardkit/prefs"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	theme := keyboard.MochaTheme()
	kb := keyboard.NewStandard(keyboard.Config{
		Categories: emoji.AllCategories(),
		Style:      keyboard.StandardStyle(theme),
		Context:    keyboard.Context{Width: 40, Height: 10, Theme: theme},
		Store:      prefs.NewMemoryStore(),
	})
	h := feedback.NewStandardHandler(nil, feedback.NoopHapticEngine{})
	a := newApp(context.Background(), kb, keymap.NewRegistry(), h, nil, theme)
	a.Init()
	return a
}

func TestSearchBackspaceTrimsWholeRune(t *testing.T) {
	a := newTestApp(t)
	a.searching = true

	for _, r := range "日本" {
		a.handleSearchKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if a.query != "日本" {
		t.Fatalf("query = %q, want 日本", a.query)
	}

	a.handleSearchKey(tea.KeyMsg{Type: tea.KeyBackspace})
	if a.query != "日" {
		t.Fatalf("query after backspace = %q, want 日", a.query)
	}
	if !utf8.ValidString(a.query) {
		t.Fatalf("query is not valid utf-8: %q", a.query)
	}

	a.handleSearchKey(tea.KeyMsg{Type: tea.KeyBackspace})
	if a.query != "" {
		t.Fatalf("query after second backspace = %q, want empty", a.query)
	}

	// Backspace on an empty query is a no-op.
	a.handleSearchKey(tea.KeyMsg{Type: tea.KeyBackspace})
	if a.query != "" {
		t.Fatalf("query after backspace on empty = %q", a.query)
	}
}
