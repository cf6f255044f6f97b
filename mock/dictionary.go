package mock

import "github.com/prince50856457/readable"

var _ readable.Dictionary = (*Dictionary)(nil)

// Dictionary is a mock implementation of readable.Dictionary.
type Dictionary struct {
	MatchFn func(text string) []readable.ConceptRecord
}

func (d *Dictionary) Match(text string) []readable.ConceptRecord {
	return d.MatchFn(text)
}
