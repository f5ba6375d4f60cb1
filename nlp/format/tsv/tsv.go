package tsv

// Package tsv reads tab-separated corpus files where one column holds the
// sentence text and another an optional dialect label.

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

const FIELD_SEPARATOR = '\t'

// Spec selects the columns of interest; DialectCol < 0 disables filtering.
type Spec struct {
	SentenceCol int
	DialectCol  int
	Dialect     string
	SkipHeader  bool
}

func Read(reader io.Reader, spec Spec, limit int) ([]string, error) {
	records := csv.NewReader(reader)
	records.Comma = FIELD_SEPARATOR
	records.FieldsPerRecord = -1
	records.LazyQuotes = true

	var sentences []string
	first := true
	for {
		record, err := records.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first && spec.SkipHeader {
			first = false
			continue
		}
		first = false
		if spec.SentenceCol >= len(record) {
			return nil, fmt.Errorf("row has %d columns, sentence column is %d", len(record), spec.SentenceCol)
		}
		if spec.DialectCol >= 0 {
			if spec.DialectCol >= len(record) || record[spec.DialectCol] != spec.Dialect {
				continue
			}
		}
		sentences = append(sentences, record[spec.SentenceCol])
		if limit > 0 && len(sentences) >= limit {
			break
		}
	}
	return sentences, nil
}

func ReadFile(filename string, spec Spec, limit int) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, spec, limit)
}
