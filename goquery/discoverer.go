// Package goquery implements notebook.LinkDiscoverer on top of goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/notebook"
)

// Ensure LinkDiscoverer implements notebook.LinkDiscoverer at compile time.
var _ notebook.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer extracts href attribute values from any element.
// It only reads attributes; it does not filter by domain or scheme.
type LinkDiscoverer struct{}

// NewLinkDiscoverer creates a new LinkDiscoverer.
func NewLinkDiscoverer() *LinkDiscoverer {
	return &LinkDiscoverer{}
}

// DiscoverLinks returns absolute URLs in document order without duplicates.
// Values starting with "/" are resolved against baseURL; any other value
// must already be an absolute URL. Everything else is dropped.
func (d *LinkDiscoverer) DiscoverLinks(html string, baseURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	// A bad base only disables root-relative resolution.
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		base = nil
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		resolved := resolveHref(base, strings.TrimSpace(href))
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links
}

// resolveHref turns an href value into an absolute URL string, or "".
func resolveHref(base *url.URL, href string) string {
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if strings.HasPrefix(href, "/") {
		if base == nil {
			return ""
		}
		return base.ResolveReference(ref).String()
	}

	if !ref.IsAbs() {
		return ""
	}
	return ref.String()
}
