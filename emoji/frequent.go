package emoji

import "context"

// FrequentProvider answers which glyphs the user inserts most often.
// Backed by the sqlite usage store in this repo; callers can supply
// their own.
type FrequentProvider interface {
	MostFrequent(ctx context.Context, limit int) ([]string, error)
	MostRecent(ctx context.Context, limit int) ([]string, error)
}

// FrequentTitle is the display title of the dynamic frequent category.
const FrequentTitle = "Frequently Used"

// FrequentCategory builds the dynamic frequent category from provider
// output. Unknown glyphs are kept with an empty name so recently used
// custom glyphs still render. A nil or failing provider yields an
// empty category, which the standard filter then drops.
func FrequentCategory(ctx context.Context, p FrequentProvider, limit int) Category {
	if p == nil {
		return NewCategory(FrequentRaw, FrequentTitle, nil)
	}
	glyphs, err := p.MostFrequent(ctx, limit)
	if err != nil {
		return NewCategory(FrequentRaw, FrequentTitle, nil)
	}
	emojis := make([]Emoji, 0, len(glyphs))
	for _, g := range glyphs {
		emojis = append(emojis, Emoji{Glyph: g, Name: nameFor(g)})
	}
	return NewCategory(FrequentRaw, FrequentTitle, emojis)
}

func nameFor(glyph string) string {
	for _, c := range AllCategories() {
		for _, e := range c.Emojis() {
			if e.Glyph == glyph {
				return e.Name
			}
		}
	}
	return ""
}
