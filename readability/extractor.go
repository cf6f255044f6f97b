// Package readability provides a readable.Extractor backed by
// go-readability, usable as an alternate engine to the scoring
// heuristic.
package readability

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/prince50856457/readable"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw markup and returns the isolated content.
// The pageURL, when parseable, lets the engine resolve relative
// addresses inside the content; a malformed one only costs that
// resolution.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*readable.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	return &readable.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        strings.TrimSpace(article.TextContent),
	}, nil
}
