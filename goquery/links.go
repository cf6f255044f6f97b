// Package goquery implements link extraction from article-body markup
// using CSS-selector queries.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/prince50856457/readable"
)

// Defaults for link filtering. Anchors with titles shorter than the
// minimum are navigation crumbs more often than related reading.
const (
	DefaultMinTitleLen = 5
	DefaultMaxLinks    = 10
)

// Ensure LinkExtractor implements readable.LinkExtractor at compile time.
var _ readable.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor collects outbound links from article content.
type LinkExtractor struct {
	minTitleLen int
	maxLinks    int
}

// Option configures a LinkExtractor.
type Option func(*LinkExtractor)

// WithMinTitleLen sets the minimum trimmed anchor-text length for a
// link to qualify. Defaults to DefaultMinTitleLen.
func WithMinTitleLen(n int) Option {
	return func(e *LinkExtractor) {
		e.minTitleLen = n
	}
}

// WithMaxLinks caps the number of links returned.
// Defaults to DefaultMaxLinks.
func WithMaxLinks(n int) Option {
	return func(e *LinkExtractor) {
		e.maxLinks = n
	}
}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor(opts ...Option) *LinkExtractor {
	e := &LinkExtractor{
		minTitleLen: DefaultMinTitleLen,
		maxLinks:    DefaultMaxLinks,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractLinks parses contentHTML and returns qualifying anchors
// resolved against baseURL. Links are deduplicated by (title, url) in
// first-seen document order and truncated to the configured cap.
// Anchors whose href is malformed, non-HTTP, or self-referential are
// dropped silently; a bad link never fails the extraction.
func (e *LinkExtractor) ExtractLinks(contentHTML string, baseURL string) ([]readable.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, readable.Errorf(readable.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, readable.Errorf(readable.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[readable.Link]bool)
	var links []readable.Link

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return true
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return true
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return true
		}

		title := strings.TrimSpace(sel.Text())
		if len(title) < e.minTitleLen {
			return true
		}

		link := readable.Link{Title: title, URL: resolved}
		if seen[link] {
			return true
		}
		seen[link] = true
		links = append(links, link)

		return len(links) < e.maxLinks
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved
// URL is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication
// purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be
// skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
