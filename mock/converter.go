package mock

import "github.com/prince50856457/readable"

var _ readable.Converter = (*Converter)(nil)

// Converter is a mock implementation of readable.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
