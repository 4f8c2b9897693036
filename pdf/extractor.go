// Package pdf implements notebook.PDFExtractor using ledongthuc/pdf.
package pdf

import (
	"bytes"
	"strings"

	"github.com/fwojciec/notebook"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements notebook.PDFExtractor at compile time.
var _ notebook.PDFExtractor = (*Extractor)(nil)

// Extractor reads the text layer of PDF documents.
// Scanned pages without a text layer yield no text.
type Extractor struct {
	// Limit is the maximum number of characters returned.
	Limit int
}

// NewExtractor creates an Extractor capped at notebook.DefaultPDFTextLimit.
func NewExtractor() *Extractor {
	return &Extractor{Limit: notebook.DefaultPDFTextLimit}
}

// Extract returns the text of all pages joined by newlines, truncated to
// Limit characters. Pages after the limit is reached are not read.
func (e *Extractor) Extract(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", notebook.Errorf(notebook.EPARSE, "empty PDF document")
	}

	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", notebook.Errorf(notebook.EPARSE, "malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", notebook.Errorf(notebook.EPARSE, "open PDF: %v", err)
	}

	var (
		sb       strings.Builder
		n        int
		failed   int
		lastErr  error
		numPages = reader.NumPage()
	)
	for i := 1; i <= numPages; i++ {
		if e.Limit > 0 && n >= e.Limit {
			break
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			failed++
			lastErr = err
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
			n++
		}
		sb.WriteString(pageText)
		n += notebook.TextLen(pageText)
	}

	if numPages > 0 && failed == numPages {
		return "", notebook.Errorf(notebook.EPARSE, "read PDF text: %v", lastErr)
	}

	return notebook.Truncate(sb.String(), e.Limit), nil
}
