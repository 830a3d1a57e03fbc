package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keyboardkit/keyboardkit/emoji"
	"github.com/keyboardkit/keyboardkit/feedback"
	"github.com/keyboardkit/keyboardkit/internal/config"
	"github.com/keyboardkit/keyboardkit/internal/database"
	"github.com/keyboardkit/keyboardkit/internal/database/repository"
	"github.com/keyboardkit/keyboardkit/keyboard"
	"github.com/keyboardkit/keyboardkit/keymap"
	"github.com/keyboardkit/keyboardkit/prefs"
)

// maxUsageEvents caps the usage history; the oldest rows beyond the
// cap are pruned at startup.
const maxUsageEvents = 5000

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	usage := repository.NewUsageRepo(db)
	if err := usage.Prune(ctx, maxUsageEvents); err != nil {
		log.Printf("warn: prune usage history: %v", err)
	}

	store, err := prefs.DefaultFileStore()
	if err != nil {
		log.Fatalf("prefs: %v", err)
	}

	keys := keymap.NewRegistry()
	if err := keys.ApplyOverrides(keymapOverrides(cfg)); err != nil {
		log.Fatalf("keymap: %v", err)
	}

	theme := keyboard.MochaTheme()
	if !slices.Contains(keyboard.AccentNames(), cfg.UI.Accent) {
		log.Printf("warn: unknown accent %q, using pink", cfg.UI.Accent)
	}
	theme.Accent = keyboard.AccentByName(cfg.UI.Accent)

	categories := emoji.AllCategories()
	if frequent := emoji.FrequentCategory(ctx, usage, cfg.UI.FrequentLimit); frequent.HasEmojis() {
		categories = append([]emoji.Category{frequent}, categories...)
	}

	handler := buildFeedbackHandler(cfg)

	kb := keyboard.NewStandard(keyboard.Config{
		Categories: categories,
		Style:      keyboard.StandardStyle(theme),
		Context:    keyboard.Context{Theme: theme},
		Store:      store,
		Initial:    initialCategory(cfg, categories),
		Keys:       keys,
	})

	p := tea.NewProgram(newApp(ctx, kb, keys, handler, usage, theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func keymapOverrides(cfg config.Config) []keymap.Override {
	out := make([]keymap.Override, 0, len(cfg.Keymap.Overrides))
	for _, o := range cfg.Keymap.Overrides {
		out = append(out, keymap.Override{Scope: o.Scope, Action: o.Action, Keys: o.Keys})
	}
	return out
}

// initialCategory maps the configured default onto an explicit initial
// selection. An unconfigured or unknown value returns nil so the
// persisted selection applies.
func initialCategory(cfg config.Config, categories []emoji.Category) *emoji.Category {
	raw := cfg.UI.DefaultCategory
	if raw == "" || raw == emoji.Default.Raw() {
		return nil
	}
	c, ok := emoji.ByRaw(categories, raw)
	if !ok {
		return nil
	}
	return &c
}

func buildFeedbackHandler(cfg config.Config) feedback.Handler {
	var audio feedback.AudioEngine
	if cfg.Feedback.Audio {
		audio = feedback.BellAudioEngine{W: os.Stderr}
	}
	h := feedback.NewStandardHandler(audio, feedback.NoopHapticEngine{})
	if !cfg.Feedback.Audio {
		h.Audio = feedback.DisabledAudioConfiguration()
	}
	if !cfg.Feedback.Haptic {
		h.Haptic = feedback.DisabledHapticConfiguration()
	} else {
		h.Haptic.TapFeed = true
	}
	return h
}
