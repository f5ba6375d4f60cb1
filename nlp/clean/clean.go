package clean

// Package clean prepares raw Arabic sentences for morphological analysis:
// Unicode canonicalization, diacritic stripping and punctuation-aware
// tokenization. All functions are pure and idempotent.

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const TATWEEL = 'ـ'

// Chained transformers carry internal buffers, so each call builds its own.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// StripDiacritics removes combining marks (harakat, shadda, sukun, tanween)
// and leaves base letters and punctuation untouched.
func StripDiacritics(text string) string {
	result, _, err := transform.String(stripMarks(), text)
	if err != nil {
		return text
	}
	return result
}

// Normalize canonicalizes a raw sentence: NFC, tatweel removal and
// whitespace collapsing.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.Map(dropTatweel, text)
	return strings.Join(strings.Fields(text), " ")
}

func dropTatweel(r rune) rune {
	if r == TATWEEL {
		return -1
	}
	return r
}

// Tokenize splits a sentence on whitespace, then peels leading and trailing
// punctuation off each field into standalone tokens. Token order follows
// the original character order.
func Tokenize(text string) []string {
	tokens := make([]string, 0, 16)
	for _, field := range strings.Fields(text) {
		tokens = appendSplitField(tokens, field)
	}
	return tokens
}

func appendSplitField(tokens []string, field string) []string {
	chars := []rune(field)
	start, end := 0, len(chars)
	for start < end && isTokenPunct(chars[start]) {
		start++
	}
	for end > start && isTokenPunct(chars[end-1]) {
		end--
	}
	for _, r := range chars[:start] {
		tokens = append(tokens, string(r))
	}
	if start < end {
		tokens = append(tokens, string(chars[start:end]))
	}
	for _, r := range chars[end:] {
		tokens = append(tokens, string(r))
	}
	return tokens
}

func isTokenPunct(r rune) bool {
	return unicode.IsPunct(r)
}
