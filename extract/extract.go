// Package extract orchestrates the extraction pipeline for a single
// page: fetch, content isolation, list pruning, link collection, text
// rendering, block formatting, and keyword matching. Every request is
// independent; nothing is shared or persisted between requests.
package extract

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/prince50856457/readable"
	"golang.org/x/sync/semaphore"
)

// DefaultFetchTimeout bounds the upstream fetch for one extraction.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMaxInFlight bounds concurrent extractions. Simultaneous large
// document parses are the system's only resource-exhaustion risk, so
// admission is controlled here rather than at the transport.
const DefaultMaxInFlight = 16

// Ensure Service implements readable.ArticleService at compile time.
var _ readable.ArticleService = (*Service)(nil)

// Service runs the extraction pipeline. Construct with NewService.
type Service struct {
	fetcher    readable.Fetcher
	extractor  readable.Extractor
	links      readable.LinkExtractor
	converter  readable.Converter
	dictionary readable.Dictionary
	limiter    *DomainLimiter

	sem          *semaphore.Weighted
	fetchTimeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithConverter adds Markdown conversion of the article body.
func WithConverter(c readable.Converter) Option {
	return func(s *Service) {
		s.converter = c
	}
}

// WithDictionary adds keyword matching against the article text.
func WithDictionary(d readable.Dictionary) Option {
	return func(s *Service) {
		s.dictionary = d
	}
}

// WithDomainLimiter rate-limits fetches per domain.
func WithDomainLimiter(l *DomainLimiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

// WithMaxInFlight bounds concurrent extractions.
// Defaults to DefaultMaxInFlight.
func WithMaxInFlight(n int64) Option {
	return func(s *Service) {
		s.sem = semaphore.NewWeighted(n)
	}
}

// WithFetchTimeout bounds the upstream fetch for one extraction.
// Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.fetchTimeout = d
	}
}

// NewService creates a Service from its pipeline collaborators.
func NewService(fetcher readable.Fetcher, extractor readable.Extractor, links readable.LinkExtractor, opts ...Option) *Service {
	s := &Service{
		fetcher:      fetcher,
		extractor:    extractor,
		links:        links,
		sem:          semaphore.NewWeighted(DefaultMaxInFlight),
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractArticle fetches the page at rawURL and isolates its article
// content. Returns EINVALID for a missing or malformed URL,
// EUNAVAILABLE when the fetch fails, and ENOCONTENT when the pipeline
// isolates no substantive text. A caller-canceled context aborts the
// in-flight fetch; partial state is simply discarded.
func (s *Service) ExtractArticle(ctx context.Context, rawURL string) (*readable.Article, error) {
	pageURL, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, pageURL.Host); err != nil {
			return nil, err
		}
	}

	fetchCtx := ctx
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	rawHTML, err := s.fetcher.Fetch(fetchCtx, pageURL.String())
	if err != nil {
		if readable.ErrorCode(err) == readable.EUNAVAILABLE {
			return nil, err
		}
		return nil, readable.Errorf(readable.EUNAVAILABLE, "fetching %s: %v", pageURL, err)
	}

	result, err := s.extractor.Extract(rawHTML, pageURL.String())
	if err != nil {
		return nil, err
	}
	if result.Text == "" {
		return nil, readable.Errorf(readable.ENOCONTENT, "no substantive content could be isolated from %s", pageURL)
	}

	links, err := s.links.ExtractLinks(result.ContentHTML, pageURL.String())
	if err != nil {
		return nil, err
	}

	article := &readable.Article{
		ID:          uuid.New().String(),
		URL:         pageURL.String(),
		Title:       result.Title,
		Content:     result.Text,
		ContentHash: computeHash(result.Text),
		Links:       links,
		Blocks:      readable.FormatBlocks(result.Text),
	}

	if s.converter != nil && result.ContentHTML != "" {
		markdown, err := s.converter.Convert(result.ContentHTML)
		if err != nil {
			return nil, err
		}
		article.Markdown = markdown
	}

	if s.dictionary != nil {
		article.Concepts = s.dictionary.Match(result.Text)
	}

	return article, nil
}

// validateURL checks the extraction address before any pipeline work.
func validateURL(rawURL string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, readable.Errorf(readable.EINVALID, "extraction URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, readable.Errorf(readable.EINVALID, "invalid URL: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, readable.Errorf(readable.EINVALID, "URL must be absolute http(s): %q", rawURL)
	}
	return u, nil
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
