// Package heuristic implements content isolation for web pages: a
// scoring pass that picks the subtree most likely to be the article
// body, denylist-based boilerplate removal, and link-density pruning
// of residual navigation lists.
package heuristic

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/prince50856457/readable"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// junkTags are removed from the tree wholesale, with their contents.
var junkTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"form":     true,
	"iframe":   true,
}

// junkClassHints remove an element when its class or id contains any
// of them, case-insensitively. These name structural chrome rather
// than content: navigation, ads, comment sections, share widgets.
var junkClassHints = []string{
	"sidebar", "menu", "navbar", "nav", "ad", "promo", "comments",
	"related", "toc", "table-of-contents", "social-share", "breadcrumbs",
}

// Executable and styling blocks are stripped from the raw markup
// before structural parsing so a partial parse cannot leak their
// contents into the text.
var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
)

// Extractor isolates article content using the scoring heuristic.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML, removes boilerplate subtrees, selects the
// best-scoring candidate as the content root, prunes link-heavy lists
// inside it, and renders the result to markup and normalized text.
// An empty Text in the result is valid: it means no substantive
// content survived, which the caller surfaces as ENOCONTENT.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*readable.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}

	cleaned := scriptBlockRe.ReplaceAllString(rawHTML, "")
	cleaned = styleBlockRe.ReplaceAllString(cleaned, "")

	doc, err := html.Parse(strings.NewReader(cleaned))
	if err != nil {
		return nil, readable.Errorf(readable.EINVALID, "failed to parse HTML: %v", err)
	}

	title := findTitle(doc)
	removeJunk(doc)

	root := selectContentRoot(doc)
	if root == nil {
		return &readable.ExtractResult{Title: title}, nil
	}
	pruneLists(root)

	contentHTML, err := renderNode(root)
	if err != nil {
		return nil, err
	}

	return &readable.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		Text:        RenderText(root),
	}, nil
}

// selectContentRoot walks remaining candidate elements in document
// order and keeps the one with the strictly greatest score; ties keep
// the earlier element. When nothing scores, the first article element
// wins, then the document body.
func selectContentRoot(doc *html.Node) *html.Node {
	var best *html.Node
	var bestScore float64

	walkElements(doc, func(n *html.Node) {
		score, ok := Score(viewOf(n))
		if !ok {
			return
		}
		if best == nil || score > bestScore {
			best = n
			bestScore = score
		}
	})

	if best != nil {
		return best
	}
	if article := findFirst(doc, "article"); article != nil {
		return article
	}
	return findFirst(doc, "body")
}

// pruneLists removes list elements inside the content root whose text
// is majority-hyperlink. Even a correctly-selected article can carry a
// "related topics" or in-page contents list that survived the
// denylist; this pass catches them by content rather than by name.
func pruneLists(root *html.Node) {
	var doomed []*html.Node
	walkElements(root, func(n *html.Node) {
		if n.Data != "ul" && n.Data != "ol" {
			return
		}
		total := len(collectText(n))
		if total == 0 {
			return
		}
		if float64(linkTextLen(n))/float64(total) > linkDensityThreshold {
			doomed = append(doomed, n)
		}
	})
	for _, n := range doomed {
		detach(n)
	}
}

// removeJunk destructively deletes every subtree matching the denylist
// of structural tags and chrome-like class/id substrings.
func removeJunk(n *html.Node) {
	var doomed []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isJunk(c) {
			doomed = append(doomed, c)
			continue
		}
		removeJunk(c)
	}
	for _, c := range doomed {
		n.RemoveChild(c)
	}
}

func isJunk(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if junkTags[n.Data] {
		return true
	}
	classID := classIDOf(n)
	for _, hint := range junkClassHints {
		if strings.Contains(classID, hint) {
			return true
		}
	}
	return false
}

// viewOf projects a tree node onto the scoring function's input shape.
func viewOf(n *html.Node) ElementView {
	return ElementView{
		Tag:         n.Data,
		ClassID:     classIDOf(n),
		TextLen:     len(collectText(n)),
		LinkTextLen: linkTextLen(n),
		Paragraphs:  countElements(n, "p"),
	}
}

// classIDOf returns the element's class and id attributes joined and
// lowercased.
func classIDOf(n *html.Node) string {
	var parts []string
	for _, a := range n.Attr {
		if a.Key == "class" || a.Key == "id" {
			parts = append(parts, a.Val)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// collectText concatenates all text under n.
func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// linkTextLen returns the length of text confined to anchor
// descendants of n.
func linkTextLen(n *html.Node) int {
	total := 0
	walkElements(n, func(c *html.Node) {
		if c.Data == "a" {
			total += len(collectText(c))
		}
	})
	return total
}

// countElements counts descendant elements with the given tag.
func countElements(n *html.Node, tag string) int {
	count := 0
	walkElements(n, func(c *html.Node) {
		if c.Data == tag {
			count++
		}
	})
	return count
}

// walkElements visits every element under n (excluding n itself) in
// document order.
func walkElements(n *html.Node, visit func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			visit(c)
		}
		walkElements(c, visit)
	}
}

// findFirst returns the first element with the given tag in document
// order, or nil.
func findFirst(n *html.Node, tag string) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
	return found
}

// findTitle extracts the document title text.
func findTitle(doc *html.Node) string {
	title := findFirst(doc, "title")
	if title == nil {
		return ""
	}
	return strings.TrimSpace(collectText(title))
}

// detach removes n from its parent.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// renderNode converts an html.Node back to a markup string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
