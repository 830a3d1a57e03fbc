package emoji

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type scoredEmoji struct {
	emoji Emoji
	score int
	dist  int
	order int
}

// Search ranks glyphs across the given categories by how well their
// names match the query. Exact and prefix matches rank above substring
// matches, which rank above word-subsequence matches. Ties break on
// levenshtein distance to the query, then on table order. An empty
// query matches nothing.
func Search(categories []Category, query string) []Emoji {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var scored []scoredEmoji
	order := 0
	seen := make(map[string]bool)
	for _, c := range categories {
		for _, e := range c.Emojis() {
			if seen[e.Glyph] {
				continue
			}
			seen[e.Glyph] = true
			s := matchScore(strings.ToLower(e.Name), q)
			if s == 0 {
				continue
			}
			scored = append(scored, scoredEmoji{
				emoji: e,
				score: s,
				dist:  levenshtein.ComputeDistance(strings.ToLower(e.Name), q),
				order: order,
			})
			order++
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].dist != scored[j].dist {
			return scored[i].dist < scored[j].dist
		}
		return scored[i].order < scored[j].order
	})

	out := make([]Emoji, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.emoji)
	}
	return out
}

func matchScore(name, query string) int {
	switch {
	case name == query:
		return 4
	case strings.HasPrefix(name, query):
		return 3
	case strings.Contains(name, query):
		return 2
	case wordPrefixMatch(name, query):
		return 1
	}
	return 0
}

// wordPrefixMatch reports whether every space-separated word of query
// prefixes some word of name, in order. "gri fac" matches
// "grinning face".
func wordPrefixMatch(name, query string) bool {
	words := strings.Fields(name)
	idx := 0
	for _, qw := range strings.Fields(query) {
		matched := false
		for ; idx < len(words); idx++ {
			if strings.HasPrefix(words[idx], qw) {
				matched = true
				idx++
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
