// Package keymap routes terminal keys to keyboard actions. Bindings
// live in per-scope registries with a global fallback, can be
// overridden from configuration, and export help lines for footers.
package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/keyboardkit/keyboardkit/gestures"
)

// Binding ties an action to one or more keys within scopes.
type Binding struct {
	Action gestures.Action
	Keys   []string
	Help   string
	Scopes []string
}

// Override replaces the keys of an existing (scope, action) binding.
type Override struct {
	Scope  string
	Action string
	Keys   []string
}

// Registry holds scope-indexed bindings.
type Registry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

// Well-known scopes.
const (
	ScopeGlobal   = "global"
	ScopeKeyboard = "keyboard"
	ScopeSearch   = "search"
)

// NewRegistry returns the standard demo bindings.
func NewRegistry() *Registry {
	r := &Registry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action gestures.Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Global fallback lookup.
	reg(ScopeGlobal, gestures.ActionDismiss, []string{"ctrl+c"}, "quit")

	reg(ScopeKeyboard, gestures.ActionEmoji, []string{"enter", "space"}, "insert")
	reg(ScopeKeyboard, gestures.ActionBackspace, []string{"backspace"}, "delete")
	reg(ScopeKeyboard, gestures.ActionNextPage, []string{"]", "pgdown"}, "next page")
	reg(ScopeKeyboard, gestures.ActionPrevPage, []string{"[", "pgup"}, "prev page")
	reg(ScopeKeyboard, gestures.ActionTab, []string{"tab"}, "next category")
	reg(ScopeKeyboard, gestures.ActionShift, []string{"shift+tab"}, "prev category")
	reg(ScopeKeyboard, gestures.ActionCharacter, []string{"/"}, "search")
	reg(ScopeKeyboard, gestures.ActionDismiss, []string{"esc", "q"}, "dismiss")

	reg(ScopeSearch, gestures.ActionReturn, []string{"enter"}, "insert top hit")
	reg(ScopeSearch, gestures.ActionDismiss, []string{"esc"}, "clear search")

	return r
}

// NewEmptyRegistry returns a registry with no bindings.
func NewEmptyRegistry() *Registry {
	return &Registry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}
}

// Register adds a binding per scope, skipping scopes where any of its
// keys is already taken.
func (r *Registry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

// BindingsForScope returns the scope's bindings in registration order.
func (r *Registry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves a key in a scope, falling back to the global scope.
func (r *Registry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != ScopeGlobal {
		if b := r.lookupInScope(keyName, ScopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// HelpBindings exports a scope's bindings as bubbles key bindings for
// help footers.
func (r *Registry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		helpKey := b.Keys[0]
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Help)))
	}
	return out
}

func (r *Registry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *Registry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

// ApplyOverrides replaces binding keys from configuration, then
// validates that no key maps to two actions within a scope.
func (r *Registry) ApplyOverrides(overrides []Override) error {
	if r == nil || len(overrides) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action gestures.Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range overrides {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keymap override: scope is required")
		}
		action := gestures.Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keymap override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keymap override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keymap override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keymap override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keymap override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]gestures.Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keymap override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

// ExportOverrides dumps the current bindings in override form, sorted
// for stable serialization.
func (r *Registry) ExportOverrides() []Override {
	if r == nil {
		return nil
	}
	var out []Override
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, Override{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func (r *Registry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}
