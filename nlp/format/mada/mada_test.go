package mada

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoWordReport = `;;; SENTENCE W1 W2
;;WORD كتب
;;SVM_PREDICTIONS: كتب NOUN
*0.912 diac:كَتَبَ lex:كتب-1 pos:NOUN gen:m
^0.534 diac:كُتُب lex:كتاب_1 pos:NOUN
--------------
;;WORD يكتب
*0.801 diac:يَكْتُبُ lex:كتب pos:VERB
--------------
SENTENCE BREAK
`

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		line string
		kind LineKind
	}{
		{";;; SENTENCE W1 W2", SentenceStart},
		{"*0.912 diac:qaAl lex:qaAl-1 pos:VERB", Analysis},
		{";;WORD qAl", Word},
		{";;NO-ANALYSIS", NoAnalysis},
		{"SENTENCE BREAK", SentenceBreak},
		{"--------------", Ignorable},
		{";;SVM_PREDICTIONS: qAl VERB", Ignorable},
		{"^0.534 diac:qAl lex:qawl_1 pos:NOUN", Ignorable},
		{"", Ignorable},
	}
	for _, c := range cases {
		ln, err := Classify(c.line)
		if err != nil {
			t.Errorf("Classify(%q) failed: %v", c.line, err)
			continue
		}
		if ln.Kind != c.kind {
			t.Errorf("Classify(%q) = %s, expected %s", c.line, ln.Kind, c.kind)
		}
	}
}

func TestClassifyAnalysisFields(t *testing.T) {
	ln, err := Classify("*0.912 gen:m diac:كَتَبَ lex:كتب-1 num:s pos:NOUN")
	if err != nil {
		t.Fatal(err)
	}
	if ln.POS != "NOUN" {
		t.Error("Expected pos NOUN got", ln.POS)
	}
	if ln.Diac != "كَتَبَ" {
		t.Error("Expected diacritized form got", ln.Diac)
	}
	if ln.Undiac != "كتب" {
		t.Error("Expected stripped form كتب got", ln.Undiac)
	}
	if ln.Lemma != "كتب" {
		t.Error("Expected lemma كتب got", ln.Lemma)
	}
}

func TestClassifyAnalysisMissingField(t *testing.T) {
	_, err := Classify("*0.912 diac:qaAl lex:qaAl-1")
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatal("Expected MissingFieldError got", err)
	}
	if missing.Field != POS_FIELD {
		t.Error("Expected missing pos field got", missing.Field)
	}
}

func TestClassifyWordMissingToken(t *testing.T) {
	_, err := Classify(";;WORD")
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatal("Expected MissingFieldError got", err)
	}
}

func TestLemmaOf(t *testing.T) {
	cases := [][2]string{
		{"drs-1", "drs"},
		{"drs_1", "drs"},
		{"drs", "drs"},
		{"qawl_1-2", "qawl"},
	}
	for _, c := range cases {
		if lemma := LemmaOf(c[0]); lemma != c[1] {
			t.Errorf("LemmaOf(%q) = %q, expected %q", c[0], lemma, c[1])
		}
	}
}

func TestParseSingleSentence(t *testing.T) {
	output, err := Parse(strings.NewReader(twoWordReport), false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if output.Len() != 1 {
		t.Fatal("Expected 1 sentence got", output.Len())
	}
	if output.Diac[0] != "كَتَبَ يَكْتُبُ" {
		t.Error("Wrong diacritized sentence:", output.Diac[0])
	}
	if output.Undiac[0] != "كتب يكتب" {
		t.Error("Wrong de-diacritized sentence:", output.Undiac[0])
	}
	if output.Lex[0] != "كتب كتب" {
		t.Error("Wrong lemmatized sentence:", output.Lex[0])
	}
	if output.LexPOS[0] != "كتب+NOUN كتب+VERB" {
		t.Error("Wrong lemma+POS sentence:", output.LexPOS[0])
	}
}

func TestNoAnalysisPlaceholder(t *testing.T) {
	report := `;;; SENTENCE W1
;;WORD xyz
;;NO-ANALYSIS
--------------
SENTENCE BREAK
`
	output, err := Parse(strings.NewReader(report), false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if output.Len() != 1 {
		t.Fatal("Expected 1 sentence got", output.Len())
	}
	for _, track := range []string{output.Diac[0], output.Undiac[0], output.Lex[0]} {
		if track != "xyz" {
			t.Error("Expected raw word placeholder xyz got", track)
		}
	}
	if output.LexPOS[0] != "xyz+"+NOAN_TAG {
		t.Error("Expected xyz+NOAN got", output.LexPOS[0])
	}
}

func TestFirstAnalysisWins(t *testing.T) {
	report := `;;; SENTENCE W1
;;WORD qAl
*0.912 diac:qaAla lex:qaAl-1 pos:VERB
*0.811 diac:qAlu lex:qawl_1 pos:NOUN
SENTENCE BREAK
`
	output, err := Parse(strings.NewReader(report), false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if output.Diac[0] != "qaAla" {
		t.Error("Expected top-ranked analysis qaAla got", output.Diac[0])
	}
	if output.LexPOS[0] != "qaAl+VERB" {
		t.Error("Expected qaAl+VERB got", output.LexPOS[0])
	}
}

func TestMultiSentence(t *testing.T) {
	report := twoWordReport + `;;; SENTENCE W1
;;WORD xyz
;;NO-ANALYSIS
SENTENCE BREAK
`
	output, err := Parse(strings.NewReader(report), false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if output.Len() != 2 {
		t.Fatal("Expected 2 sentences got", output.Len())
	}
	if output.Diac[1] != "xyz" {
		t.Error("Second sentence leaked tokens from the first:", output.Diac[1])
	}
	tracks := [][]string{output.Diac, output.Undiac, output.Lex, output.LexPOS}
	for _, track := range tracks {
		if len(track) != 2 {
			t.Error("Track lengths differ:", len(track))
		}
	}
	for sent := 0; sent < 2; sent++ {
		count := len(strings.Fields(output.Diac[sent]))
		for _, track := range tracks[1:] {
			if len(strings.Fields(track[sent])) != count {
				t.Errorf("Sentence %d has unaligned token counts", sent)
			}
		}
	}
}

func TestNestedSentenceStart(t *testing.T) {
	report := twoWordReport + `;;; SENTENCE W1
;;; SENTENCE W2
`
	output, err := Parse(strings.NewReader(report), false, 0)
	var malformed *MalformedReportError
	if !errors.As(err, &malformed) {
		t.Fatal("Expected MalformedReportError got", err)
	}
	if malformed.Line != 12 {
		t.Error("Expected failure at line 12 got", malformed.Line)
	}
	if output.Len() != 1 {
		t.Error("Flushed sentences should survive the failure, got", output.Len())
	}
}

func TestStrayRecordWhileIdle(t *testing.T) {
	for _, line := range []string{
		"*0.912 diac:qaAla lex:qaAl-1 pos:VERB",
		";;WORD qAl",
		";;NO-ANALYSIS",
		"SENTENCE BREAK",
	} {
		_, err := Parse(strings.NewReader(line+"\n"), false, 0)
		var malformed *MalformedReportError
		if !errors.As(err, &malformed) {
			t.Errorf("Expected MalformedReportError for stray %q got %v", line, err)
		}
	}
}

func TestOpenSentenceAtEOF(t *testing.T) {
	report := `;;; SENTENCE W1
;;WORD qAl
*0.912 diac:qaAla lex:qaAl-1 pos:VERB
`
	_, err := Parse(strings.NewReader(report), false, 0)
	var malformed *MalformedReportError
	if !errors.As(err, &malformed) {
		t.Fatal("Expected MalformedReportError at EOF got", err)
	}
}

func TestStrictUnrecognized(t *testing.T) {
	report := "some stray header\n" + twoWordReport
	if _, err := Parse(strings.NewReader(report), false, 0); err != nil {
		t.Error("Lenient parse should tolerate unknown lines, got", err)
	}
	_, err := Parse(strings.NewReader(report), true, 0)
	var unrecognized *UnrecognizedMarkerError
	if !errors.As(err, &unrecognized) {
		t.Fatal("Expected UnrecognizedMarkerError got", err)
	}
	if unrecognized.Line != 1 {
		t.Error("Expected failure at line 1 got", unrecognized.Line)
	}
}

func TestParseLimit(t *testing.T) {
	report := twoWordReport + twoWordReport
	output, err := Parse(strings.NewReader(report), false, 1)
	if err != nil {
		t.Fatal(err)
	}
	if output.Len() != 1 {
		t.Error("Expected limit to stop after 1 sentence, got", output.Len())
	}
}

func TestWriteFiles(t *testing.T) {
	output, err := Parse(strings.NewReader(twoWordReport), false, 0)
	if err != nil {
		t.Fatal(err)
	}
	base := filepath.Join(t.TempDir(), "corpus.ma")
	if err := output.WriteFiles(base); err != nil {
		t.Fatal(err)
	}
	expected := map[string]string{
		SUFFIX_DIAC:   "كَتَبَ يَكْتُبُ\n",
		SUFFIX_UNDIAC: "كتب يكتب\n",
		SUFFIX_LEX:    "كتب كتب\n",
		SUFFIX_LEXPOS: "كتب+NOUN كتب+VERB\n",
	}
	for suffix, content := range expected {
		data, err := os.ReadFile(base + suffix)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != content {
			t.Errorf("%s content = %q, expected %q", suffix, string(data), content)
		}
	}
}

func TestParseFileMmap(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "corpus.ma")
	if err := os.WriteFile(filename, []byte(twoWordReport), 0644); err != nil {
		t.Fatal(err)
	}
	output, err := ParseFile(filename, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if output.Len() != 1 {
		t.Error("Expected 1 sentence got", output.Len())
	}
}
