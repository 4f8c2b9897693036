// Package crawl implements notebook.Crawler as a budgeted breadth-first
// traversal of a single host.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/notebook"
)

// Default crawl budgets.
const (
	DefaultMaxPages    = 5
	DefaultPageTimeout = 8 * time.Second
)

// Frontier sizing for one crawl.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 1000
	// frontierFalsePositiveRate is the acceptable false positive rate for the prefilter.
	frontierFalsePositiveRate = 0.01
)

// PageMarker is written before the text of every crawled page.
const PageMarker = "--- PAGE: %s ---\n"

// PageSeparator is written between two pages of the aggregate.
const PageSeparator = "\n\n"

var _ notebook.Crawler = (*Crawler)(nil)

// Crawler collects text from the pages reachable from a seed URL on the
// seed's host. A crawl holds no state after it returns.
type Crawler struct {
	Fetcher   notebook.Fetcher
	Extractor notebook.TextExtractor
	Links     notebook.LinkDiscoverer

	// RateLimiter, if set, is waited on before every fetch.
	RateLimiter notebook.DomainLimiter

	// Logger receives one debug line per page. Defaults to discarding.
	Logger *slog.Logger

	// Budgets. Zero values fall back to the package defaults.

	// MaxPages bounds the number of URLs visited, failures included.
	MaxPages int
	// PageTextLimit bounds the characters kept from one page.
	PageTextLimit int
	// TotalTextLimit bounds the characters of the returned aggregate.
	TotalTextLimit int
	// PageTimeout bounds each fetch.
	PageTimeout time.Duration

	// SkipDuplicates drops the text of a page whose extracted text is
	// identical to an earlier page of the same crawl. Links are still followed.
	SkipDuplicates bool
}

// NewCrawler returns a Crawler with default budgets that extracts page
// text with notebook.Sanitize.
func NewCrawler(fetcher notebook.Fetcher, links notebook.LinkDiscoverer) *Crawler {
	return &Crawler{
		Fetcher:        fetcher,
		Extractor:      notebook.SanitizeExtractor,
		Links:          links,
		MaxPages:       DefaultMaxPages,
		PageTextLimit:  notebook.DefaultPageTextLimit,
		TotalTextLimit: notebook.DefaultTotalTextLimit,
		PageTimeout:    DefaultPageTimeout,
	}
}

// Crawl visits at most MaxPages URLs breadth-first from seedURL, following
// only http(s) links on the seed's host (or the host the seed redirects
// to), and returns the page texts joined under page markers. Fetch and extraction failures skip the page.
func (c *Crawler) Crawl(ctx context.Context, seedURL string) (string, error) {
	seed, err := url.Parse(seedURL)
	if err != nil || !isWeb(seed) {
		return "", notebook.Errorf(notebook.EPARSE, "invalid seed URL %q", seedURL)
	}

	s := &crawlState{
		domain:   seed.Hostname(),
		hosts:    map[string]struct{}{strings.ToLower(seed.Hostname()): {}},
		frontier: NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate),
		hashes:   make(map[uint64]struct{}),
	}
	s.frontier.Push(seed.String())

	for s.visited < c.maxPages() && s.chars < c.totalLimit() {
		if ctx.Err() != nil {
			break
		}

		pageURL, ok := s.frontier.Pop()
		if !ok {
			break
		}
		s.visited++

		c.visit(ctx, s, pageURL)
	}

	c.logger().Debug("crawl finished",
		"seed", seedURL,
		"visited", s.visited,
		"queued", s.frontier.Len(),
		"chars", s.chars,
	)

	return notebook.Truncate(s.out.String(), c.totalLimit()), nil
}

// crawlState is private to one Crawl call.
type crawlState struct {
	domain   string
	// hosts whose links are followed: the seed's, plus the one the seed
	// redirected to.
	hosts    map[string]struct{}
	frontier *Frontier
	visited  int
	out      strings.Builder
	chars    int
	hashes   map[uint64]struct{}
}

// visit fetches one page, appends its text and queues its in-scope links.
func (c *Crawler) visit(ctx context.Context, s *crawlState, pageURL string) {
	log := c.logger().With("url", pageURL)

	resp, err := c.fetch(ctx, s.domain, pageURL)
	if err != nil {
		log.Debug("skipping page", "err", err)
		return
	}
	if !resp.IsText() {
		log.Debug("skipping non-text page", "content_type", resp.ContentType)
		return
	}

	base := c.landed(s, pageURL, resp.URL)

	body := string(resp.Body)
	if resp.IsHTML() {
		text, err := c.Extractor.ExtractText(body)
		if err != nil {
			log.Debug("extractor failed, falling back to sanitizer", "err", err)
			text = notebook.Sanitize(body)
		}
		c.appendPage(s, pageURL, notebook.Truncate(text, c.pageLimit()))
	}

	if s.visited < c.maxPages() {
		c.enqueue(s, body, base)
	}
}

// landed returns the URL the page was served from after redirects and
// records it as visited. A redirect of the seed to another host, such as
// example.com to www.example.com, brings that host into scope.
func (c *Crawler) landed(s *crawlState, pageURL, finalURL string) string {
	if finalURL == "" || Normalize(finalURL) == pageURL {
		return pageURL
	}
	u, err := url.Parse(finalURL)
	if err != nil || !isWeb(u) {
		return pageURL
	}
	s.frontier.Mark(finalURL)
	if s.visited == 1 {
		s.hosts[strings.ToLower(u.Hostname())] = struct{}{}
	}
	return finalURL
}

func (c *Crawler) fetch(ctx context.Context, domain, pageURL string) (*notebook.FetchResponse, error) {
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, domain); err != nil {
			return nil, err
		}
	}

	if c.PageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.PageTimeout)
		defer cancel()
	}

	return c.Fetcher.Fetch(ctx, pageURL)
}

func (c *Crawler) appendPage(s *crawlState, pageURL, text string) {
	if c.SkipDuplicates && text != "" {
		h := Fingerprint(text)
		if _, ok := s.hashes[h]; ok {
			c.logger().Debug("skipping duplicate page text", "url", pageURL)
			return
		}
		s.hashes[h] = struct{}{}
	}

	chunk := fmt.Sprintf(PageMarker, pageURL) + text
	if s.out.Len() > 0 {
		chunk = PageSeparator + chunk
	}
	s.out.WriteString(chunk)
	s.chars += notebook.TextLen(chunk)
}

func (c *Crawler) enqueue(s *crawlState, body, pageURL string) {
	for _, link := range c.Links.DiscoverLinks(body, pageURL) {
		u, err := url.Parse(link)
		if err != nil || !isWeb(u) {
			continue
		}
		if _, ok := s.hosts[strings.ToLower(u.Hostname())]; !ok {
			continue
		}
		s.frontier.Push(link)
	}
}

func (c *Crawler) maxPages() int {
	if c.MaxPages <= 0 {
		return DefaultMaxPages
	}
	return c.MaxPages
}

func (c *Crawler) pageLimit() int {
	if c.PageTextLimit <= 0 {
		return notebook.DefaultPageTextLimit
	}
	return c.PageTextLimit
}

func (c *Crawler) totalLimit() int {
	if c.TotalTextLimit <= 0 {
		return notebook.DefaultTotalTextLimit
	}
	return c.TotalTextLimit
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func isWeb(u *url.URL) bool {
	return (u.Scheme == "http" || u.Scheme == "https") && u.Hostname() != ""
}
