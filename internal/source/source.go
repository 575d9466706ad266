// Package source loads study text from files given on the command line.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than .txt, .md and .pdf.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrEmptyDocument is returned when a file yields no text.
	ErrEmptyDocument = errors.New("input file contains no text")
)

// Document is study text read from a file.
type Document struct {
	Name      string
	Text      string
	PageCount int
}

// Load reads the study text in path. Plain text and markdown files are read
// as is; PDF files have the plain text of every readable page concatenated.
// Surrounding whitespace is trimmed.
func Load(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		text  string
		pages int
		err   error
	)
	switch ext {
	case ".txt", ".md", ".markdown":
		text, err = readText(path)
		pages = 1
	case ".pdf":
		text, pages, err = readPDF(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, path)
	}

	return &Document{
		Name:      filepath.Base(path),
		Text:      text,
		PageCount: pages,
	}, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func readPDF(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var content strings.Builder
	total := r.NumPage()
	for pageNum := 1; pageNum <= total; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if content.Len() > 0 {
			content.WriteString("\n")
		}
		content.WriteString(text)
	}

	return content.String(), total, nil
}
