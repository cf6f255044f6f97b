package htmltomarkdown_test

import (
	"testing"

	"github.com/prince50856457/readable"
	"github.com/prince50856457/readable/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()
	_, err := conv.Convert("  ")

	require.Error(t, err)
	assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
}

func TestConverter_ConvertsHeadingsAndLists(t *testing.T) {
	t.Parallel()

	html := `<h1>Title</h1><p>Paragraph text.</p><ul><li>one</li><li>two</li></ul>`

	conv := htmltomarkdown.NewConverter()
	md, err := conv.Convert(html)

	require.NoError(t, err)
	assert.Contains(t, md, "# Title")
	assert.Contains(t, md, "Paragraph text.")
	assert.Contains(t, md, "- one")
}

func TestConverter_ConvertsCodeBlocks(t *testing.T) {
	t.Parallel()

	html := `<pre><code>func main() {}</code></pre>`

	conv := htmltomarkdown.NewConverter()
	md, err := conv.Convert(html)

	require.NoError(t, err)
	assert.Contains(t, md, "```")
	assert.Contains(t, md, "func main() {}")
}
