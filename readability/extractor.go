// Package readability implements notebook.TextExtractor with go-readability,
// keeping only the main article of a page.
package readability

import (
	"strings"

	"github.com/fwojciec/notebook"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements notebook.TextExtractor at compile time.
var _ notebook.TextExtractor = (*Extractor)(nil)

// Extractor drops navigation, sidebars and footers before sanitizing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the sanitized text of the page's main article.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", notebook.Errorf(notebook.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", notebook.Errorf(notebook.EPARSE, "readability: %v", err)
	}

	return notebook.Sanitize(article.Content), nil
}
