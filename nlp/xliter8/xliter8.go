package xliter8

// Package xliter8 transliterates between Arabic script and the Buckwalter
// ASCII scheme. The mapping is a pure per-rune substitution; runes outside
// the tables (digits, Latin, punctuation) pass through unchanged.

import (
	"strings"
)

type Interface interface {
	To(string) string
	From(string) string
}

const (
	arabicLetters = "ءآأؤإئابةتثجحخدذرزسشصضطظعغفقكلمنهوىي"
	buckLetters   = `'|>&<}AbptvjHxd*rzs$SDTZEgfqklmnhwYy`
	arabicMarks   = "ًٌٍَُِّْٰـ"
	buckMarks     = "FNKaui~o`_"
)

type internalArabic struct {
	A2B map[rune]rune
	B2A map[rune]rune
}

var arabicInstance internalArabic

func init() {
	arabicInstance = internalArabic{
		make(map[rune]rune, len(buckLetters)+len(buckMarks)),
		make(map[rune]rune, len(buckLetters)+len(buckMarks)),
	}
	addPairs(arabicLetters, buckLetters)
	addPairs(arabicMarks, buckMarks)
}

func addPairs(arabic, buckwalter string) {
	buckRunes := []rune(buckwalter)
	i := 0
	for _, ar := range arabic {
		arabicInstance.A2B[ar] = buckRunes[i]
		arabicInstance.B2A[buckRunes[i]] = ar
		i++
	}
}

func mapA2B(input rune) rune {
	if result, exists := arabicInstance.A2B[input]; exists {
		return result
	}
	return input
}

func mapB2A(input rune) rune {
	if result, exists := arabicInstance.B2A[input]; exists {
		return result
	}
	return input
}

type Arabic struct{}

// To transliterates Arabic script to Buckwalter.
func (a *Arabic) To(input string) string {
	return strings.Map(mapA2B, input)
}

// From transliterates Buckwalter back to Arabic script.
func (a *Arabic) From(input string) string {
	return strings.Map(mapB2A, input)
}
