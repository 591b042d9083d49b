// Package glyph extracts the set of unique renderable glyphs from a source text.
package glyph

import "strings"

// stripped is the punctuation/whitespace class removed from the source text
// before glyph extraction. Covers ASCII and full-width comma/period forms.
const stripped = ",.，。 \t\n\r"

// Extract returns the distinct glyphs of text in first-seen order, with the
// stripped class removed. Empty input yields a nil slice.
func Extract(text string) []rune {
	seen := make(map[rune]struct{})
	var out []rune
	for _, r := range text {
		if strings.ContainsRune(stripped, r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Join concatenates a glyph slice into a string. Used for cache keys and logging.
func Join(glyphs []rune) string {
	return string(glyphs)
}
