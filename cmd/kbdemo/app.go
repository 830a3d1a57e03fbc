package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keyboardkit/keyboardkit/emoji"
	"github.com/keyboardkit/keyboardkit/feedback"
	"github.com/keyboardkit/keyboardkit/gestures"
	"github.com/keyboardkit/keyboardkit/internal/database"
	"github.com/keyboardkit/keyboardkit/internal/database/repository"
	"github.com/keyboardkit/keyboardkit/keyboard"
	"github.com/keyboardkit/keyboardkit/keymap"
)

// app hosts the emoji keyboard, routes keys through the keymap
// registry, records insertions and triggers feedback per gesture.
type app struct {
	ctx      context.Context
	keyboard *keyboard.EmojiCategoryKeyboard
	keys     *keymap.Registry
	feedback feedback.Handler
	usage    *repository.UsageRepo
	theme    keyboard.Theme

	typed     []string
	status    string
	searching bool
	query     string
	results   []emoji.Emoji
	width     int
	height    int
}

func newApp(ctx context.Context, kb *keyboard.EmojiCategoryKeyboard, keys *keymap.Registry, h feedback.Handler, usage *repository.UsageRepo, theme keyboard.Theme) *app {
	return &app{
		ctx:      ctx,
		keyboard: kb,
		keys:     keys,
		feedback: h,
		usage:    usage,
		theme:    theme,
	}
}

func (a *app) Init() tea.Cmd {
	return a.keyboard.Init()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.keyboard, _ = a.keyboard.Update(msg)
		return a, nil

	case keyboard.EmojiSelectedMsg:
		return a, a.insert(msg.Emoji, msg.Category.Raw())

	case keyboard.CategorySelectedMsg:
		a.feedback.TriggerFeedback(gestures.GestureTap, gestures.ActionShift)
		a.status = msg.Category.Title()
		return a, nil

	case keyboard.DismissMsg:
		a.feedback.TriggerFeedback(gestures.GestureTap, gestures.ActionDismiss)
		return a, tea.Quit

	case usageErrMsg:
		a.status = "usage store: " + msg.err.Error()
		return a, nil

	case tea.KeyMsg:
		if a.searching {
			return a, a.handleSearchKey(msg)
		}
		return a, a.handleKey(msg)
	}
	return a, nil
}

func (a *app) handleKey(msg tea.KeyMsg) tea.Cmd {
	if b := a.keys.Lookup(msg.String(), keymap.ScopeKeyboard); b != nil {
		switch b.Action {
		case gestures.ActionBackspace:
			if len(a.typed) > 0 {
				a.typed = a.typed[:len(a.typed)-1]
			}
			a.feedback.TriggerFeedback(gestures.GestureTap, gestures.ActionBackspace)
			return nil
		case gestures.ActionCharacter:
			a.searching = true
			a.query = ""
			a.results = nil
			return nil
		}
	}
	// Everything else, including page/category/pick/dismiss actions,
	// routes through the keyboard model's own registry lookup.
	var cmd tea.Cmd
	a.keyboard, cmd = a.keyboard.Update(msg)
	return cmd
}

func (a *app) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.searching = false
		a.query = ""
		a.results = nil
		return nil
	case "enter":
		if len(a.results) > 0 {
			e := a.results[0]
			a.searching = false
			a.query = ""
			a.results = nil
			return a.insert(e, categoryOf(e))
		}
		return nil
	case "backspace":
		if a.query != "" {
			_, size := utf8.DecodeLastRuneInString(a.query)
			a.query = a.query[:len(a.query)-size]
			a.results = emoji.Search(a.keyboard.Categories(), a.query)
		}
		return nil
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		a.query += msg.String()
		a.results = emoji.Search(a.keyboard.Categories(), a.query)
	}
	return nil
}

func (a *app) insert(e emoji.Emoji, category string) tea.Cmd {
	a.typed = append(a.typed, e.Glyph)
	a.feedback.TriggerFeedback(gestures.GestureTap, gestures.ActionEmoji)
	a.status = e.Name
	if a.usage == nil {
		return nil
	}
	ctx := a.ctx
	usage := a.usage
	return func() tea.Msg {
		if err := usage.Record(ctx, e.Glyph, category, database.Now()); err != nil {
			return usageErrMsg{err}
		}
		return nil
	}
}

type usageErrMsg struct{ err error }

// categoryOf resolves which static category a glyph belongs to, for
// usage recording of search hits.
func categoryOf(e emoji.Emoji) string {
	for _, c := range emoji.AllCategories() {
		for _, cand := range c.Emojis() {
			if cand.Glyph == e.Glyph {
				return c.Raw()
			}
		}
	}
	return emoji.FrequentRaw
}

func (a *app) View() string {
	var sections []string

	sections = append(sections, a.keyboard.View())

	typedStyle := lipgloss.NewStyle().Foreground(a.theme.Text)
	sections = append(sections, typedStyle.Render("> "+strings.Join(a.typed, "")))

	if a.searching {
		searchStyle := lipgloss.NewStyle().Foreground(a.theme.Focus)
		line := "/" + a.query
		if len(a.results) > 0 {
			hits := a.results
			if len(hits) > 8 {
				hits = hits[:8]
			}
			glyphs := make([]string, 0, len(hits))
			for _, e := range hits {
				glyphs = append(glyphs, e.Glyph)
			}
			line += "  " + strings.Join(glyphs, " ")
		}
		sections = append(sections, searchStyle.Render(line))
	} else if a.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(a.theme.Muted)
		sections = append(sections, statusStyle.Render(a.status))
	}

	sections = append(sections, a.footer())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *app) footer() string {
	scope := keymap.ScopeKeyboard
	if a.searching {
		scope = keymap.ScopeSearch
	}
	muted := lipgloss.NewStyle().Foreground(a.theme.Muted)
	parts := make([]string, 0, 8)
	for _, b := range a.keys.HelpBindings(scope) {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return muted.Render(strings.Join(parts, " · "))
}
