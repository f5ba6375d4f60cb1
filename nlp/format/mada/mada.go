package mada

// Package mada post-processes the report emitted by the MADA morphological
// analyzer for Arabic. Each word in the report carries ranked analyses as
// key:value rows; the top-ranked row is marked with '*'. The reader rebuilds
// four aligned sentence-level representations: diacritized, de-diacritized,
// lemmatized and lemma+POS.

import (
	"strings"

	"arapipe/nlp/clean"
)

const (
	PREF_SENT     = ";;; SENTENCE"
	PREF_WORD     = ";;WORD"
	PREF_NOAN     = ";;NO-ANALYSIS"
	PREF_PRED     = ";;SVM_PREDICTIONS:"
	SENT_BREAK    = "SENTENCE BREAK"
	LINE_SEP      = "--------------"
	ANALYSIS_PREF = '*'

	KV_SEP = ":"

	POS_FIELD  = "pos"
	DIAC_FIELD = "diac"
	LEX_FIELD  = "lex"

	// POS placeholder for words the analyzer could not analyze
	NOAN_TAG   = "NOAN"
	LEXPOS_SEP = "+"

	TOKEN_SEP = " "
)

// Lemma fields carry a disambiguation suffix after one of these delimiters
const LEMMA_DELIMS = "-_"

type LineKind int

const (
	Ignorable LineKind = iota
	SentenceStart
	Analysis
	Word
	NoAnalysis
	SentenceBreak
)

func (k LineKind) String() string {
	switch k {
	case SentenceStart:
		return "SentenceStart"
	case Analysis:
		return "Analysis"
	case Word:
		return "Word"
	case NoAnalysis:
		return "NoAnalysis"
	case SentenceBreak:
		return "SentenceBreak"
	default:
		return "Ignorable"
	}
}

// Line is one classified report line; payload fields are set per kind.
// Undiac and Lemma are derived from Diac and Lex at classification time.
type Line struct {
	Kind LineKind

	// Analysis payload
	POS, Diac, Undiac, Lemma string

	// Word payload
	RawWord string

	// original text, kept for Ignorable lines so strict mode can report it
	Text string

	// set for Ignorable lines that match a known non-record marker,
	// unset for lines the classifier does not recognize at all
	Recognized bool
}

// LemmaOf extracts the lexical root segment of a raw lex field, dropping
// the disambiguation suffix: "drs-1" and "drs_1" both yield "drs".
func LemmaOf(lex string) string {
	if i := strings.IndexAny(lex, LEMMA_DELIMS); i >= 0 {
		return lex[:i]
	}
	return lex
}

// Classify determines the record kind of a single report line. Prefixes are
// checked in a fixed priority order; ";;; SENTENCE" must win over the other
// ";;"-prefixed markers.
func Classify(line string) (Line, error) {
	switch {
	case strings.HasPrefix(line, PREF_SENT):
		return Line{Kind: SentenceStart}, nil
	case len(line) > 0 && line[0] == ANALYSIS_PREF:
		return classifyAnalysis(line)
	case strings.HasPrefix(line, PREF_WORD):
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return Line{}, &MissingFieldError{Field: "word", Text: line}
		}
		return Line{Kind: Word, RawWord: fields[1]}, nil
	case strings.HasPrefix(line, PREF_NOAN):
		return Line{Kind: NoAnalysis}, nil
	case strings.HasPrefix(line, SENT_BREAK):
		return Line{Kind: SentenceBreak}, nil
	default:
		return Line{Kind: Ignorable, Recognized: recognizedIgnorable(line), Text: line}, nil
	}
}

// classifyAnalysis lifts the pos/diac/lex values out of a top-ranked analysis
// row in a single pass over its whitespace-delimited fields. The first field
// is the marker and score, the rest are key:value pairs.
func classifyAnalysis(line string) (Line, error) {
	var result Line
	result.Kind = Analysis
	var haveLex bool
	fields := strings.Fields(line)
	for _, field := range fields[1:] {
		key, value, found := strings.Cut(field, KV_SEP)
		if !found {
			continue
		}
		switch key {
		case POS_FIELD:
			result.POS = value
		case DIAC_FIELD:
			result.Diac = value
		case LEX_FIELD:
			result.Lemma = LemmaOf(value)
			haveLex = true
		}
	}
	if result.POS == "" {
		return Line{}, &MissingFieldError{Field: POS_FIELD, Text: line}
	}
	if result.Diac == "" {
		return Line{}, &MissingFieldError{Field: DIAC_FIELD, Text: line}
	}
	if !haveLex {
		return Line{}, &MissingFieldError{Field: LEX_FIELD, Text: line}
	}
	result.Undiac = clean.StripDiacritics(result.Diac)
	return result, nil
}

// recognizedIgnorable reports whether a non-record line is a known part of
// the report format (separators, SVM predictions, lower-ranked analysis rows,
// blank lines). Strict parsing rejects anything else.
func recognizedIgnorable(line string) bool {
	if len(strings.TrimSpace(line)) == 0 {
		return true
	}
	if line[0] == '^' || line[0] == '_' {
		return true
	}
	if strings.HasPrefix(line, LINE_SEP) {
		return true
	}
	return strings.HasPrefix(line, PREF_PRED)
}
