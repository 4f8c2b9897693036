// Package trafilatura implements notebook.TextExtractor with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/notebook"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements notebook.TextExtractor at compile time.
var _ notebook.TextExtractor = (*Extractor)(nil)

// Extractor keeps the main content of a page, falling back to
// readability and dom-distiller heuristics when needed.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the sanitized text of the page's main content.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", notebook.Errorf(notebook.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", notebook.Errorf(notebook.EPARSE, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return notebook.Sanitize(result.ContentText), nil
	}

	content, err := renderNode(result.ContentNode)
	if err != nil {
		return "", notebook.Errorf(notebook.EPARSE, "render content: %v", err)
	}
	return notebook.Sanitize(content), nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
