package keymap

import (
	"testing"

	"github.com/keyboardkit/keyboardkit/gestures"
)

func TestLookupByScope(t *testing.T) {
	r := NewRegistry()

	b := r.Lookup("backspace", ScopeKeyboard)
	if b == nil {
		t.Fatal("expected backspace binding in keyboard scope")
	}
	if b.Action != gestures.ActionBackspace {
		t.Fatalf("action = %q, want %q", b.Action, gestures.ActionBackspace)
	}

	if got := r.Lookup("backspace", ScopeSearch); got != nil {
		t.Fatalf("did not expect backspace binding in search scope, got %q", got.Action)
	}

	// Global fallback.
	quit := r.Lookup("ctrl+c", ScopeKeyboard)
	if quit == nil {
		t.Fatal("expected global ctrl+c binding from keyboard scope")
	}
	if quit.Action != gestures.ActionDismiss {
		t.Fatalf("ctrl+c action = %q, want %q", quit.Action, gestures.ActionDismiss)
	}
}

func TestLookupNormalizesKeyNames(t *testing.T) {
	r := NewRegistry()

	if b := r.Lookup(" ", ScopeKeyboard); b == nil || b.Action != gestures.ActionEmoji {
		t.Fatal("expected raw space to normalize to the insert binding")
	}
	if b := r.Lookup("RETURN", ScopeKeyboard); b == nil || b.Action != gestures.ActionEmoji {
		t.Fatal("expected RETURN to normalize to enter")
	}
}

func TestNoDuplicateKeyInSameScope(t *testing.T) {
	r := NewEmptyRegistry()

	r.Register(Binding{Action: gestures.ActionEmoji, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: gestures.ActionBackspace, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: gestures.ActionBackspace, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 {
		t.Fatalf("scope_a bindings = %d, want 1", len(a))
	}
	if a[0].Action != gestures.ActionEmoji {
		t.Fatalf("scope_a action = %q, want %q", a[0].Action, gestures.ActionEmoji)
	}

	b := r.BindingsForScope("scope_b")
	if len(b) != 1 {
		t.Fatalf("scope_b bindings = %d, want 1", len(b))
	}
}

func TestHelpBindings(t *testing.T) {
	r := NewEmptyRegistry()
	r.Register(Binding{Action: gestures.ActionNextPage, Keys: []string{"]", "pgdown"}, Help: "next page", Scopes: []string{"scope_help"}})

	help := r.HelpBindings("scope_help")
	if len(help) != 1 {
		t.Fatalf("help binding count = %d, want 1", len(help))
	}
	entry := help[0].Help()
	if entry.Key != "]" {
		t.Fatalf("help key = %q, want %q", entry.Key, "]")
	}
	if entry.Desc != "next page" {
		t.Fatalf("help desc = %q, want %q", entry.Desc, "next page")
	}
}

func TestApplyOverrides(t *testing.T) {
	r := NewRegistry()

	err := r.ApplyOverrides([]Override{
		{Scope: ScopeKeyboard, Action: string(gestures.ActionDismiss), Keys: []string{"x"}},
	})
	if err != nil {
		t.Fatalf("apply overrides: %v", err)
	}
	if b := r.Lookup("x", ScopeKeyboard); b == nil || b.Action != gestures.ActionDismiss {
		t.Fatal("override key not routed to dismiss")
	}
	if b := r.Lookup("esc", ScopeKeyboard); b != nil {
		t.Fatalf("old key still bound to %q", b.Action)
	}
}

func TestApplyOverridesRejectsConflicts(t *testing.T) {
	r := NewRegistry()

	err := r.ApplyOverrides([]Override{
		{Scope: ScopeKeyboard, Action: string(gestures.ActionDismiss), Keys: []string{"tab"}},
	})
	if err == nil {
		t.Fatal("expected conflict error for tab already bound in scope")
	}
}

func TestApplyOverridesRejectsUnknownScopeAndAction(t *testing.T) {
	r := NewRegistry()

	if err := r.ApplyOverrides([]Override{{Scope: "nope", Action: "emoji", Keys: []string{"x"}}}); err == nil {
		t.Fatal("expected unknown-scope error")
	}
	if err := r.ApplyOverrides([]Override{{Scope: ScopeKeyboard, Action: "nope", Keys: []string{"x"}}}); err == nil {
		t.Fatal("expected unknown-action error")
	}
}

func TestExportOverridesIsSorted(t *testing.T) {
	r := NewRegistry()
	out := r.ExportOverrides()
	if len(out) == 0 {
		t.Fatal("expected exported overrides")
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Scope > out[i].Scope {
			t.Fatalf("scopes out of order at %d: %q > %q", i, out[i-1].Scope, out[i].Scope)
		}
		if out[i-1].Scope == out[i].Scope && out[i-1].Action > out[i].Action {
			t.Fatalf("actions out of order at %d", i)
		}
	}
}
