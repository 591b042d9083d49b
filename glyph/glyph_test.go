package glyph

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"dedupe keeps first-seen order", "aab", "ab"},
		{"ascii punctuation stripped", "a, b. c", "abc"},
		{"fullwidth punctuation stripped", "山，水。山", "山水"},
		{"whitespace stripped", "a\tb\nc\r d", "abcd"},
		{"only stripped characters", ",. \t\n，。", ""},
		{"order preserved", "the tiger", "theigr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Extract(tt.text))
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractNoDuplicates(t *testing.T) {
	got := Extract("To see a World in a Grain of Sand, And a Heaven in a Wild Flower.")
	seen := make(map[rune]bool)
	for _, r := range got {
		if seen[r] {
			t.Errorf("duplicate glyph %q in extracted set", r)
		}
		seen[r] = true
		if strings.ContainsRune(",. \t\n\r，。", r) {
			t.Errorf("stripped character %q present in extracted set", r)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]rune{'a', '山'}); got != "a山" {
		t.Errorf("Join = %q, want %q", got, "a山")
	}
}
