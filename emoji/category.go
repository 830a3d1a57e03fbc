package emoji

// Category is a named grouping of emoji glyphs. The raw identifier is
// stable across releases and is what gets persisted; the title is for
// display only.
type Category struct {
	raw    string
	title  string
	emojis []Emoji
}

// Emoji is a single glyph plus its searchable name.
type Emoji struct {
	Glyph string
	Name  string
}

// NewCategory builds a category with a caller-supplied glyph list.
// Used for dynamic categories such as the frequent-emoji category.
func NewCategory(raw, title string, emojis []Emoji) Category {
	return Category{raw: raw, title: title, emojis: emojis}
}

func (c Category) Raw() string     { return c.raw }
func (c Category) Title() string   { return c.title }
func (c Category) Emojis() []Emoji { return c.emojis }

// Glyphs returns just the glyph strings, in display order.
func (c Category) Glyphs() []string {
	out := make([]string, 0, len(c.emojis))
	for _, e := range c.emojis {
		out = append(out, e.Glyph)
	}
	return out
}

// HasEmojis reports whether the category contributes any glyphs.
// Empty categories are excluded from keyboard menus.
func (c Category) HasEmojis() bool { return len(c.emojis) > 0 }

// IsZero reports whether c is the zero Category.
func (c Category) IsZero() bool { return c.raw == "" }

// Static categories. Raw identifiers mirror the persisted preference
// format and must not change.
var (
	Smileys    = Category{raw: "smileys", title: "Smileys & People", emojis: smileys}
	Animals    = Category{raw: "animals", title: "Animals & Nature", emojis: animals}
	Foods      = Category{raw: "foods", title: "Food & Drink", emojis: foods}
	Activities = Category{raw: "activities", title: "Activity", emojis: activities}
	Travels    = Category{raw: "travels", title: "Travel & Places", emojis: travels}
	Objects    = Category{raw: "objects", title: "Objects", emojis: objects}
	Symbols    = Category{raw: "symbols", title: "Symbols", emojis: symbols}
	Flags      = Category{raw: "flags", title: "Flags", emojis: flags}
)

// Default is the category a keyboard falls back to when no explicit
// selection exists and no persisted selection resolves.
var Default = Smileys

// FrequentRaw is the raw identifier of the dynamic frequent category.
const FrequentRaw = "frequent"

// AllCategories returns the static categories in display order.
func AllCategories() []Category {
	return []Category{Smileys, Animals, Foods, Activities, Travels, Objects, Symbols, Flags}
}

// ByRaw resolves a raw identifier among the given categories. The
// second return is false when no category matches.
func ByRaw(categories []Category, raw string) (Category, bool) {
	for _, c := range categories {
		if c.raw == raw {
			return c, true
		}
	}
	return Category{}, false
}

// WithEmojis filters out categories that have no glyphs. Keyboard
// views only ever offer the filtered list.
func WithEmojis(categories []Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.HasEmojis() {
			out = append(out, c)
		}
	}
	return out
}
