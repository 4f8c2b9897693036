package mock

import "github.com/fwojciec/notebook"

var (
	_ notebook.PDFExtractor   = (*PDFExtractor)(nil)
	_ notebook.TextExtractor  = (*TextExtractor)(nil)
	_ notebook.LinkDiscoverer = (*LinkDiscoverer)(nil)
)

// PDFExtractor is a mock implementation of notebook.PDFExtractor.
type PDFExtractor struct {
	ExtractFn func(data []byte) (string, error)
}

func (e *PDFExtractor) Extract(data []byte) (string, error) {
	return e.ExtractFn(data)
}

// TextExtractor is a mock implementation of notebook.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

// LinkDiscoverer is a mock implementation of notebook.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html string, baseURL string) []string
}

func (d *LinkDiscoverer) DiscoverLinks(html string, baseURL string) []string {
	return d.DiscoverLinksFn(html, baseURL)
}
