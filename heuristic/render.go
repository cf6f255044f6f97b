package heuristic

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// blockTags get a block separator appended after their contents so the
// flattened text keeps paragraph boundaries.
var blockTags = map[string]bool{
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"p":          true,
	"li":         true,
	"pre":        true,
	"div":        true,
	"tr":         true,
	"blockquote": true,
}

var (
	horizontalSpaceRe = regexp.MustCompile(`[^\S\n]+`)
	spaceAroundNLRe   = regexp.MustCompile(` ?\n ?`)
	newlineRunRe      = regexp.MustCompile(`\n{3,}`)
)

// RenderText flattens the subtree at n to plain text. Block-level
// elements contribute a double line break after their contents and
// inline breaks become single line breaks, then whitespace is
// normalized: horizontal runs collapse to one space, runs of three or
// more line breaks collapse to exactly two, and the result is trimmed.
func RenderText(n *html.Node) string {
	var sb strings.Builder
	flattenText(n, &sb)
	return normalizeText(sb.String())
}

func flattenText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		sb.WriteString("\n")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flattenText(c, sb)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteString("\n\n")
	}
}

func normalizeText(s string) string {
	s = horizontalSpaceRe.ReplaceAllString(s, " ")
	s = spaceAroundNLRe.ReplaceAllString(s, "\n")
	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
