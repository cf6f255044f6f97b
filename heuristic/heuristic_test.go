package heuristic_test

import (
	"strings"
	"testing"

	"github.com/prince50856457/readable"
	"github.com/prince50856457/readable/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// para builds a paragraph with enough text to register as content.
func para(text string) string {
	return "<p>" + text + " " + strings.Repeat("lorem ipsum dolor sit amet ", 5) + "</p>"
}

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := heuristic.NewExtractor()
	_, err := ext.Extract("", "https://example.com")

	require.Error(t, err)
	assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Page Title</title></head>
<body><article>` + para("Content here.") + para("More content.") + `</article></body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
}

func TestExtractor_SelectsContentDivOverNavDiv(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="article-body">` +
		para("First paragraph of the story.") +
		para("Second paragraph of the story.") +
		para("Third paragraph of the story.") + `</div>
<div class="site-nav"><ul><li><a href="/a">Section A</a></li><li><a href="/b">Section B</a></li></ul></div>
</body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, result.Text, "First paragraph of the story.")
	assert.NotContains(t, result.Text, "Section A")
}

func TestExtractor_RemovesDenylistedTags(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<nav><a href="/home">Home Nav Link</a></nav>
<header>Site Header</header>
<div class="main-content">` + para("Kept article text.") + para("More kept text.") + `</div>
<footer>Copyright Footer</footer>
</body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, result.Text, "Kept article text.")
	assert.NotContains(t, result.Text, "Home Nav Link")
	assert.NotContains(t, result.Text, "Site Header")
	assert.NotContains(t, result.Text, "Copyright Footer")
}

func TestExtractor_RemovesDenylistedClasses(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="post-content">` +
		para("Article text stays.") + para("So does this.") +
		`<div class="social-share">Share on Xitter</div>
<div class="Breadcrumbs">Home &gt; News</div>
<div id="comments">First!</div>
</div></body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, result.Text, "Article text stays.")
	assert.NotContains(t, result.Text, "Share on Xitter")
	assert.NotContains(t, result.Text, "Home > News")
	assert.NotContains(t, result.Text, "First!")
}

func TestExtractor_StripsScriptAndStyleBeforeParsing(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="content">` +
		para("Visible text.") + para("More visible text.") +
		`<script>var hidden = "scriptLeak";</script>
<style>.x { color: red; }</style>
</div></body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, result.Text, "Visible text.")
	assert.NotContains(t, result.Text, "scriptLeak")
	assert.NotContains(t, result.Text, "color: red")
}

func TestExtractor_PrunesLinkHeavyLists(t *testing.T) {
	t.Parallel()

	linkItems := strings.Repeat(`<li><a href="/t">navigation link text here</a></li>`, 8)
	textItems := strings.Repeat(`<li>plain descriptive list item text</li>`, 2)

	html := `<html><body><div class="article">` +
		para("Body text one.") + para("Body text two.") +
		`<ul>` + linkItems + textItems + `</ul>
</div></body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.NotContains(t, result.Text, "navigation link text here")
}

func TestExtractor_KeepsTextHeavyLists(t *testing.T) {
	t.Parallel()

	linkItems := strings.Repeat(`<li><a href="/t">link</a></li>`, 2)
	textItems := strings.Repeat(`<li>plain descriptive list item text goes on and on</li>`, 8)

	html := `<html><body><div class="article">` +
		para("Body text one.") + para("Body text two.") +
		`<ul>` + linkItems + textItems + `</ul>
</div></body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, result.Text, "plain descriptive list item text")
}

func TestExtractor_FallsBackToArticleElement(t *testing.T) {
	t.Parallel()

	// Single short paragraph: no candidate ever qualifies for scoring.
	html := `<html><body><article><p>Tiny.</p></article></body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "Tiny.", result.Text)
}

func TestExtractor_DenylistedOnlyDocumentYieldsEmptyText(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<nav><a href="/">Home</a></nav>
<div class="ad-banner">Buy now</div>
<footer>Footer</footer>
</body></html>`

	ext := heuristic.NewExtractor()
	result, err := ext.Extract(html, "https://example.com")

	require.NoError(t, err)
	assert.Empty(t, result.Text)
}

func TestExtractor_IsIdempotentPerInput(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="content">` +
		para("Stable text.") + para("Second stable paragraph.") +
		`</div></body></html>`

	ext := heuristic.NewExtractor()
	first, err := ext.Extract(html, "https://example.com")
	require.NoError(t, err)
	second, err := ext.Extract(html, "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, readable.FormatBlocks(first.Text), readable.FormatBlocks(second.Text))
}
