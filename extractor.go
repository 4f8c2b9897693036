package notebook

// PDFExtractor converts PDF bytes into plain text.
type PDFExtractor interface {
	// Extract returns the text layer of the document with page boundaries
	// flattened, truncated to the extractor's limit.
	// Malformed or unreadable input returns EPARSE.
	Extract(data []byte) (string, error)
}

// TextExtractor converts an HTML document into the text kept for a page.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}

// TextExtractorFunc adapts a function to the TextExtractor interface.
type TextExtractorFunc func(html string) (string, error)

// ExtractText calls f(html).
func (f TextExtractorFunc) ExtractText(html string) (string, error) {
	return f(html)
}

// SanitizeExtractor is the default TextExtractor. It applies Sanitize.
var SanitizeExtractor TextExtractor = TextExtractorFunc(func(html string) (string, error) {
	return Sanitize(html), nil
})

// LinkDiscoverer finds hyperlinks in an HTML document.
type LinkDiscoverer interface {
	// DiscoverLinks returns the absolute URLs referenced by href attributes,
	// deduplicated and in document order. Values that fail to parse are
	// dropped. No domain filtering is applied.
	DiscoverLinks(html string, baseURL string) []string
}
