package mada

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"arapipe/util"
)

const APPROX_SENTENCES = 1024

// CorpusOutput holds the four reconstructed representations, one entry per
// completed sentence, aligned by position and in report order.
type CorpusOutput struct {
	Diac, Undiac, Lex, LexPOS []string
}

func NewCorpusOutput() *CorpusOutput {
	return &CorpusOutput{
		Diac:   make([]string, 0, APPROX_SENTENCES),
		Undiac: make([]string, 0, APPROX_SENTENCES),
		Lex:    make([]string, 0, APPROX_SENTENCES),
		LexPOS: make([]string, 0, APPROX_SENTENCES),
	}
}

func (c *CorpusOutput) Len() int {
	return len(c.Diac)
}

// Output artifact suffixes, appended to the report path
const (
	SUFFIX_DIAC   = ".diac"
	SUFFIX_UNDIAC = ".undiac"
	SUFFIX_LEX    = ".lex"
	SUFFIX_LEXPOS = ".lexPOS"
)

// WriteFiles writes the four artifacts next to base, one sentence per line.
func (c *CorpusOutput) WriteFiles(base string) error {
	tracks := []struct {
		suffix    string
		sentences []string
	}{
		{SUFFIX_DIAC, c.Diac},
		{SUFFIX_UNDIAC, c.Undiac},
		{SUFFIX_LEX, c.Lex},
		{SUFFIX_LEXPOS, c.LexPOS},
	}
	for _, track := range tracks {
		if err := writeSentences(base+track.suffix, track.sentences); err != nil {
			return err
		}
	}
	return nil
}

func writeSentences(filename string, sentences []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, sentence := range sentences {
		if _, err := file.WriteString(sentence); err != nil {
			return err
		}
		if _, err := file.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

type state int

const (
	stateIdle state = iota
	stateInSentence
)

// Accumulator folds a classified line stream into sentence-level tracks.
// It owns all mutable parse state; use a fresh one per report file.
type Accumulator struct {
	state state
	out   *CorpusOutput

	// per-sentence track buffers
	diac, undiac, lex, lexPOS []string

	// last raw word seen, pending its analysis or no-analysis record
	rawWord     string
	wordPending bool

	strict bool
	file   string
	line   int
}

func NewAccumulator(strict bool) *Accumulator {
	return &Accumulator{
		out:    NewCorpusOutput(),
		strict: strict,
	}
}

func (a *Accumulator) Output() *CorpusOutput {
	return a.out
}

// Feed advances the state machine by one classified line.
func (a *Accumulator) Feed(ln Line) error {
	if ln.Kind == Ignorable {
		if a.strict && !ln.Recognized {
			return &UnrecognizedMarkerError{Text: ln.Text, File: a.file, Line: a.line}
		}
		return nil
	}
	switch a.state {
	case stateIdle:
		if ln.Kind != SentenceStart {
			return &MalformedReportError{
				Kind: ln.Kind,
				Msg:  "expected sentence start",
				File: a.file,
				Line: a.line,
			}
		}
		a.openSentence()
	case stateInSentence:
		switch ln.Kind {
		case SentenceStart:
			return &MalformedReportError{
				Kind: ln.Kind,
				Msg:  "nested sentence start",
				File: a.file,
				Line: a.line,
			}
		case Word:
			a.rawWord = ln.RawWord
			a.wordPending = true
		case Analysis:
			// only the top-ranked analysis counts; later rows for the
			// same word are dropped
			if a.wordPending {
				a.append(ln.Diac, ln.Undiac, ln.Lemma, ln.Lemma+LEXPOS_SEP+ln.POS)
				a.wordPending = false
			}
		case NoAnalysis:
			if a.wordPending {
				a.append(a.rawWord, a.rawWord, a.rawWord, a.rawWord+LEXPOS_SEP+NOAN_TAG)
				a.wordPending = false
			}
		case SentenceBreak:
			a.flush()
		}
	}
	return nil
}

func (a *Accumulator) openSentence() {
	a.state = stateInSentence
	a.diac = a.diac[:0]
	a.undiac = a.undiac[:0]
	a.lex = a.lex[:0]
	a.lexPOS = a.lexPOS[:0]
	a.wordPending = false
}

func (a *Accumulator) append(diac, undiac, lex, lexPOS string) {
	a.diac = append(a.diac, diac)
	a.undiac = append(a.undiac, undiac)
	a.lex = append(a.lex, lex)
	a.lexPOS = append(a.lexPOS, lexPOS)
}

// flush commits the in-progress sentence to the output; each sentence is an
// atomic unit of commit, flushed sentences survive later errors.
func (a *Accumulator) flush() {
	a.out.Diac = append(a.out.Diac, strings.Join(a.diac, TOKEN_SEP))
	a.out.Undiac = append(a.out.Undiac, strings.Join(a.undiac, TOKEN_SEP))
	a.out.Lex = append(a.out.Lex, strings.Join(a.lex, TOKEN_SEP))
	a.out.LexPOS = append(a.out.LexPOS, strings.Join(a.lexPOS, TOKEN_SEP))
	a.state = stateIdle
}

// Parse consumes one full report. On error the returned output still holds
// all sentences flushed before the offending line. limit > 0 stops after
// that many sentences.
func Parse(reader io.Reader, strict bool, limit int) (*CorpusOutput, error) {
	return parse(reader, "<reader>", strict, limit)
}

func parse(reader io.Reader, filename string, strict bool, limit int) (*CorpusOutput, error) {
	acc := NewAccumulator(strict)
	acc.file = filename
	scan := bufio.NewScanner(reader)
	scan.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scan.Scan() {
		acc.line++
		ln, err := Classify(scan.Text())
		if err != nil {
			setLocation(err, filename, acc.line)
			return acc.out, err
		}
		if err := acc.Feed(ln); err != nil {
			return acc.out, err
		}
		if limit > 0 && acc.out.Len() >= limit {
			return acc.out, nil
		}
	}
	if err := scan.Err(); err != nil {
		return acc.out, err
	}
	if acc.state == stateInSentence {
		return acc.out, &MalformedReportError{
			Kind: Ignorable,
			Msg:  "end of input with open sentence",
			File: filename,
			Line: acc.line,
		}
	}
	return acc.out, nil
}

func setLocation(err error, filename string, line int) {
	switch e := err.(type) {
	case *MissingFieldError:
		e.File = filename
		e.Line = line
	case *MalformedReportError:
		e.File = filename
		e.Line = line
	case *UnrecognizedMarkerError:
		e.File = filename
		e.Line = line
	}
}

// ParseFile memory-maps and parses a single report file.
func ParseFile(filename string, strict bool, limit int) (*CorpusOutput, error) {
	data, done, err := util.MmapFile(filename)
	if err != nil {
		return nil, err
	}
	defer done()

	return parse(bytes.NewReader(data), filename, strict, limit)
}
