package notebook

import (
	"net/url"
	"strings"
)

// DocumentType identifies how a document's text is obtained.
type DocumentType string

// Supported document types.
const (
	DocumentText DocumentType = "TEXT"
	DocumentPDF  DocumentType = "PDF"
	DocumentURL  DocumentType = "URL"
)

// Document describes one source supplied with a chat request.
// It is read-only within the pipeline and discarded after the response.
type Document struct {
	Title   string       `json:"title"`
	Type    DocumentType `json:"type"`
	URL     string       `json:"url,omitempty"`
	Content string       `json:"content,omitempty"`
}

// Target returns the URL to fetch for the document, or "" if there is none.
// URL documents from older clients carry the address in Title, so a title
// that is itself an absolute http(s) URL is accepted for DocumentURL.
func (d *Document) Target() string {
	if u := strings.TrimSpace(d.URL); u != "" {
		return u
	}
	if d.Type == DocumentURL && IsWebURL(strings.TrimSpace(d.Title)) {
		return strings.TrimSpace(d.Title)
	}
	return ""
}

// Label returns the title shown for the document in the context.
// Falls back to the target URL when the title is empty.
func (d *Document) Label() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Target()
}

// IsWebURL reports whether s is an absolute http or https URL with a host.
func IsWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ContextBlock is the labeled text produced for one document.
type ContextBlock struct {
	SourceTitle string
	Text        string
}

// String renders the block the way it appears in the assembled context.
func (b ContextBlock) String() string {
	return "SOURCE: " + b.SourceTitle + "\nCONTENU: " + b.Text
}

// ContextSeparator separates blocks in the assembled context.
const ContextSeparator = "\n\n---\n\n"

// FormatContext joins blocks in order using ContextSeparator.
func FormatContext(blocks []ContextBlock) string {
	if len(blocks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ContextSeparator)
}
