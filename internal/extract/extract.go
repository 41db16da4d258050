// Package extract pulls plain text out of uploaded research documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeText = "text/plain"

	// minChars is the floor below which an extraction counts as unusable.
	minChars = 20
	// maxChars caps the extracted text handed to the analysis prompt.
	maxChars = 5000
)

var (
	// ErrUnsupportedFileType rejects uploads that are neither PDF nor plain text.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrEmptyExtraction indicates no usable text was recovered.
	ErrEmptyExtraction = errors.New("no readable text found")
)

// FromBytes extracts text from an in-memory upload. PDF parsing uses
// github.com/ledongthuc/pdf; when that fails on a malformed file the raw
// bytes are scraped for printable runs instead, which recovers enough of
// most abstracts to be worth analyzing.
func FromBytes(data []byte, mimeType, fileName string) (string, error) {
	switch normalizeMimeType(mimeType, fileName, data) {
	case mimePDF:
		text, err := extractPDF(data)
		if err != nil || len(strings.TrimSpace(text)) < minChars {
			text = scrapePrintable(data)
		}
		return finalize(text)
	case mimeText:
		return finalize(string(data))
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// scrapePrintable keeps printable ASCII runs and blanks everything else.
func scrapePrintable(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		if (b >= 0x20 && b <= 0x7E) || b == '\n' || b == '\r' || b == '\t' {
			out[i] = b
		} else {
			out[i] = ' '
		}
	}
	return string(out)
}

// finalize collapses whitespace, enforces the usable-text floor and caps
// the output length.
func finalize(text string) (string, error) {
	clean := strings.Join(strings.Fields(text), " ")
	if len(clean) < minChars {
		return "", ErrEmptyExtraction
	}
	if len(clean) > maxChars {
		clean = clean[:maxChars]
	}
	return clean, nil
}

func normalizeMimeType(mimeType, fileName string, data []byte) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if idx := strings.Index(mt, ";"); idx >= 0 {
		mt = strings.TrimSpace(mt[:idx])
	}
	switch mt {
	case mimePDF:
		return mimePDF
	case mimeText, "text/markdown":
		return mimeText
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return mimePDF
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".txt", ".md":
		return mimeText
	}
	return mt
}
