package raw

// Package raw reads and writes raw corpus files with one untreated
// sentence per line.

import (
	"bufio"
	"io"
	"os"
)

const APPROX_SENTENCES = 1024

func Read(reader io.Reader, limit int) ([]string, error) {
	sentences := make([]string, 0, APPROX_SENTENCES)
	scan := bufio.NewScanner(reader)
	scan.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scan.Scan() {
		line := scan.Text()
		if len(line) == 0 {
			continue
		}
		sentences = append(sentences, line)
		if limit > 0 && len(sentences) >= limit {
			break
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, limit)
}

func Write(writer io.Writer, sentences []string) error {
	for _, sentence := range sentences {
		if _, err := io.WriteString(writer, sentence); err != nil {
			return err
		}
		if _, err := writer.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, sentences []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return Write(file, sentences)
}
