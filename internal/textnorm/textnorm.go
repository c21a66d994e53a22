// Package textnorm canonicalizes the free-text fields of the venue dataset.
// Venue names and descriptions arrive unnormalized (mixed case, stray
// whitespace, full Vietnamese diacritics), so every matching component in
// the engine goes through one of the two forms produced here.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// StripAccents lowercases, trims, and removes diacritics, yielding an
// ASCII-safe string for loose comparisons ("Phở Hòa" -> "pho hoa").
// The Vietnamese đ does not decompose to a combining mark, so it is
// mapped explicitly.
func StripAccents(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}
	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r == 'đ' {
			r = 'd'
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// NormalizeKeepAccents lowercases, trims, and collapses internal runs of
// whitespace while preserving diacritics. Keyword lists are
// diacritic-sensitive ("chè" is a dessert, "che" could be anything), so
// precise matching uses this form.
func NormalizeKeepAccents(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ContainsWord reports whether keyword occurs in text as a whole word.
// Both sides are normalized with kept accents and padded with spaces
// before the substring test, so "phở" does not match inside "phở'ng"
// style coinages and "trà" does not match inside "nhà trắng".
func ContainsWord(text, keyword string) bool {
	h := " " + NormalizeKeepAccents(text) + " "
	n := " " + NormalizeKeepAccents(keyword) + " "
	return strings.Contains(h, n)
}

// ContainsLoose reports whether keyword occurs in text after both sides
// are accent-stripped. Used for marker phrases where diacritics in the
// source data are unreliable ("Không rõ" vs "khong ro").
func ContainsLoose(text, keyword string) bool {
	return strings.Contains(StripAccents(text), StripAccents(keyword))
}
