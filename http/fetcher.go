// Package http provides the net/http implementation of notebook.Fetcher
// and the HTTP server exposing notebook.ChatService.
package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/notebook"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 32 << 20

// DefaultUserAgent is sent unless overridden with WithUserAgent.
const DefaultUserAgent = "Mozilla/5.0 (compatible; notebook/1.0)"

// Ensure Fetcher implements notebook.Fetcher at compile time.
var _ notebook.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources using a single HTTP GET per call.
// It does not execute JavaScript and never retries.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
	headers     http.Header
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize sets the largest response body accepted, in bytes.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return WithHeader("User-Agent", ua)
}

// WithHeader sets a request header sent with every fetch.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		f.headers.Set(key, value)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
		headers:     http.Header{},
	}
	f.headers.Set("User-Agent", DefaultUserAgent)
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the resource at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*notebook.FetchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, notebook.Errorf(notebook.EPARSE, "invalid URL %q: %v", rawURL, err)
	}
	for key, values := range f.headers {
		req.Header[key] = values
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.networkError(ctx, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, notebook.Errorf(notebook.ENETWORK, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, f.networkError(ctx, rawURL, err)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, notebook.Errorf(notebook.ENETWORK, "response from %s exceeds %d bytes", rawURL, f.maxBodySize)
	}

	result := &notebook.FetchResponse{
		URL:         resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	if result.ContentType == "" {
		result.ContentType = http.DetectContentType(body)
	}
	if result.IsText() {
		result.Body = toUTF8(body, result.ContentType)
	}

	return result, nil
}

// networkError classifies a transport failure as ENETWORK with a readable reason.
func (f *Fetcher) networkError(ctx context.Context, rawURL string, err error) error {
	var urlErr *url.Error
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return notebook.Errorf(notebook.ENETWORK, "timed out fetching %s", rawURL)
	case errors.Is(ctx.Err(), context.Canceled):
		return notebook.Errorf(notebook.ENETWORK, "canceled fetching %s", rawURL)
	case errors.As(err, &urlErr) && urlErr.Timeout():
		return notebook.Errorf(notebook.ENETWORK, "timed out after %s fetching %s", f.timeout, rawURL)
	case errors.As(err, &urlErr):
		return notebook.Errorf(notebook.ENETWORK, "fetch %s: %v", rawURL, urlErr.Err)
	default:
		return notebook.Errorf(notebook.ENETWORK, "fetch %s: %v", rawURL, err)
	}
}

// toUTF8 transcodes a textual body to UTF-8 using the declared or
// detected charset. The body is returned unchanged if decoding fails.
func toUTF8(body []byte, contentType string) []byte {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return body
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return body
	}
	return decoded
}

