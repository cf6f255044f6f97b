package readable

import (
	"context"
	"strings"
)

// Article is the result of one extraction request. All fields are
// derived from a single page; nothing here is shared across requests
// or persisted.
type Article struct {
	// ID is a transient identity for this extraction, used for
	// logging correlation. It is not stable across requests.
	ID string `json:"id,omitempty"`

	// URL is the address the article was extracted from.
	URL string `json:"url"`

	// Title is the page title, when one could be determined.
	Title string `json:"title,omitempty"`

	// Content is the normalized plain text of the article body.
	Content string `json:"content"`

	// Markdown is the article body converted to Markdown.
	Markdown string `json:"markdown,omitempty"`

	// ContentHash is a hash of Content, usable as a weak identity
	// for change detection.
	ContentHash string `json:"contentHash,omitempty"`

	// Links are outbound links discovered inside the article body,
	// deduplicated and capped, in document order.
	Links []Link `json:"relatedLinks"`

	// Blocks is the typed structural breakdown of Content.
	Blocks []Block `json:"blocks"`

	// Concepts are dictionary records matched against Content.
	Concepts []ConceptRecord `json:"keyConcepts"`
}

// Link is an outbound link found inside the article body. URL is
// absolute, resolved against the page's base address; Title is the
// trimmed anchor text.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Validate returns an error if the link contains invalid fields.
func (l *Link) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return Errorf(EINVALID, "link title required")
	}
	if l.URL == "" {
		return Errorf(EINVALID, "link URL required")
	}
	return nil
}

// ExtractResult holds the isolated content of a page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the article body as markup, boilerplate removed.
	ContentHTML string

	// Text is the article body rendered to normalized plain text.
	Text string
}

// Extractor isolates the main article content of a page, removing
// boilerplate (navigation, footers, sidebars, ads).
type Extractor interface {
	// Extract processes raw markup and returns the isolated content.
	// The pageURL is the address the markup was fetched from; it is
	// used for base-address resolution where the engine needs it.
	// An empty Text in the result means no content could be isolated.
	Extract(rawHTML string, pageURL string) (*ExtractResult, error)
}

// LinkExtractor collects outbound links from article-body markup.
type LinkExtractor interface {
	// ExtractLinks parses contentHTML and returns links resolved
	// against baseURL, deduplicated by (title, url) in first-seen
	// order and capped. Anchors that fail to resolve are dropped
	// silently.
	ExtractLinks(contentHTML string, baseURL string) ([]Link, error)
}

// Converter converts article-body markup to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// ArticleService runs the full extraction pipeline for one URL.
type ArticleService interface {
	// ExtractArticle fetches the page at url and isolates its
	// article content. Returns EINVALID for a missing or malformed
	// url, EUNAVAILABLE when the fetch fails, and ENOCONTENT when
	// the pipeline isolates no substantive text.
	ExtractArticle(ctx context.Context, url string) (*Article, error)
}
