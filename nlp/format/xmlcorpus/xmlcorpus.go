package xmlcorpus

// Package xmlcorpus reads corpora stored as XML documents with one element
// per sentence, yielding sentence text in document order.

import (
	"encoding/xml"
	"io"
	"os"
	"strings"
)

const DEFAULT_ELEMENT = "sentence"

func Read(reader io.Reader, element string, limit int) ([]string, error) {
	if element == "" {
		element = DEFAULT_ELEMENT
	}
	var sentences []string
	decoder := xml.NewDecoder(reader)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != element {
			continue
		}
		var text string
		if err := decoder.DecodeElement(&text, &start); err != nil {
			return nil, err
		}
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}
		sentences = append(sentences, text)
		if limit > 0 && len(sentences) >= limit {
			break
		}
	}
	return sentences, nil
}

func ReadFile(filename string, element string, limit int) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, element, limit)
}
