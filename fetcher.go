package notebook

import (
	"context"
	"mime"
	"strings"
)

// FetchResponse holds the body of a successful fetch.
type FetchResponse struct {
	// URL is the final URL after any transport-level redirects.
	URL string

	// ContentType is the response media type, sniffed when the server omits it.
	ContentType string

	// Body is the raw response body. Textual bodies are UTF-8.
	Body []byte
}

// MediaType returns the lowercased media type without parameters.
func (r *FetchResponse) MediaType() string {
	mt, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		mt, _, _ = strings.Cut(r.ContentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// IsHTML reports whether the body is an HTML document.
func (r *FetchResponse) IsHTML() bool {
	switch r.MediaType() {
	case "text/html", "application/xhtml+xml":
		return true
	}
	return false
}

// IsText reports whether the body is textual (HTML included).
func (r *FetchResponse) IsText() bool {
	mt := r.MediaType()
	switch {
	case strings.HasPrefix(mt, "text/"):
		return true
	case mt == "application/xhtml+xml", mt == "application/xml", mt == "application/json":
		return true
	}
	return false
}

// Fetcher retrieves a single resource over the network.
type Fetcher interface {
	// Fetch performs exactly one GET request and returns the body.
	// It never retries. The context controls timeout and cancellation.
	// Transport failures, non-2xx statuses and timeouts return ENETWORK.
	Fetch(ctx context.Context, url string) (*FetchResponse, error)
}
