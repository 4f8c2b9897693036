// Package ingest turns request documents into one bounded context string
// and hands it to the answering capability.
package ingest

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/notebook"
)

// DefaultPDFTimeout bounds the download of one PDF document.
const DefaultPDFTimeout = 10 * time.Second

// Placeholder kinds.
const (
	KindPDF = "PDF"
	KindWeb = "Web"
)

var _ notebook.Resolver = (*Resolver)(nil)

// Resolver produces the context block for one document. It prefers inline
// content, then a PDF download, then a crawl, and never fails: errors are
// replaced by placeholder text.
type Resolver struct {
	Fetcher notebook.Fetcher
	PDF     notebook.PDFExtractor
	Crawler notebook.Crawler

	PDFTimeout time.Duration
	Logger     *slog.Logger
}

// NewResolver returns a Resolver with the default PDF timeout.
func NewResolver(fetcher notebook.Fetcher, pdf notebook.PDFExtractor, crawler notebook.Crawler) *Resolver {
	return &Resolver{
		Fetcher:    fetcher,
		PDF:        pdf,
		Crawler:    crawler,
		PDFTimeout: DefaultPDFTimeout,
	}
}

// Resolve returns the block for doc.
func (r *Resolver) Resolve(ctx context.Context, doc *notebook.Document) notebook.ContextBlock {
	block := notebook.ContextBlock{SourceTitle: doc.Label()}

	switch {
	case notebook.TextLen(doc.Content) >= notebook.MinInlineContentLength:
		block.Text = doc.Content
	case doc.Type == notebook.DocumentPDF && strings.TrimSpace(doc.URL) != "":
		block.Text = r.resolvePDF(ctx, strings.TrimSpace(doc.URL))
	case doc.Type == notebook.DocumentURL && doc.Target() != "":
		block.Text = r.resolveWeb(ctx, doc.Target())
	default:
		block.Text = doc.Content
	}

	return block
}

func (r *Resolver) resolvePDF(ctx context.Context, rawURL string) string {
	if r.PDFTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.PDFTimeout)
		defer cancel()
	}

	resp, err := r.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		r.logger().Warn("pdf download failed", "url", rawURL, "err", err)
		return notebook.Placeholder(KindPDF, err)
	}

	text, err := r.PDF.Extract(resp.Body)
	if err != nil {
		r.logger().Warn("pdf extraction failed", "url", rawURL, "err", err)
		return notebook.Placeholder(KindPDF, err)
	}
	return text
}

func (r *Resolver) resolveWeb(ctx context.Context, rawURL string) string {
	text, err := r.Crawler.Crawl(ctx, rawURL)
	if err != nil {
		r.logger().Warn("crawl failed", "url", rawURL, "err", err)
		return notebook.Placeholder(KindWeb, err)
	}
	if text == "" {
		r.logger().Warn("crawl returned no text", "url", rawURL)
		return notebook.Placeholder(KindWeb, notebook.Errorf(notebook.ENETWORK, "no page could be read from %s", rawURL))
	}
	return text
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
