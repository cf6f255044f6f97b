package mock

import "github.com/prince50856457/readable"

var _ readable.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readable.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string, pageURL string) (*readable.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string, pageURL string) (*readable.ExtractResult, error) {
	return e.ExtractFn(rawHTML, pageURL)
}
