package mock

import "github.com/prince50856457/readable"

var _ readable.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of readable.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(contentHTML string, baseURL string) ([]readable.Link, error)
}

func (e *LinkExtractor) ExtractLinks(contentHTML string, baseURL string) ([]readable.Link, error) {
	return e.ExtractLinksFn(contentHTML, baseURL)
}
