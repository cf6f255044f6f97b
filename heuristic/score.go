package heuristic

import "strings"

// Scoring weights for candidate selection. An element whose text is
// majority-hyperlink takes the link-density penalty, which dwarfs every
// positive contribution and disqualifies it in practice.
const (
	classBonus           = 25.0
	textLengthDivisor    = 100.0
	textLengthBonusCap   = 50.0
	paragraphWeight      = 5.0
	linkDensityPenalty   = -1000.0
	linkDensityThreshold = 0.5
	minParagraphs        = 2
)

// candidateTags are the block-level tags considered as article-body
// candidates.
var candidateTags = map[string]bool{
	"div":     true,
	"article": true,
	"main":    true,
	"section": true,
}

// contentClassHints are class/id substrings that suggest an element
// carries article content.
var contentClassHints = []string{"article", "post", "content"}

// skipClassHints are class/id substrings that disqualify an element
// outright, before any score is computed.
var skipClassHints = []string{"sidebar", "widget"}

// ElementView is the abstract shape of a candidate element: everything
// the scoring function needs to know, decoupled from any tree library
// so the heuristic is testable against hand-built fixtures.
type ElementView struct {
	// Tag is the lowercase element tag name.
	Tag string

	// ClassID is the element's class and id attributes joined,
	// lowercased.
	ClassID string

	// TextLen is the length of all text under the element.
	TextLen int

	// LinkTextLen is the length of text confined to anchor
	// descendants.
	LinkTextLen int

	// Paragraphs is the count of descendant paragraph elements.
	Paragraphs int
}

// LinkDensity is the fraction of the element's text that sits inside
// anchors. Guarded against empty elements.
func (v ElementView) LinkDensity() float64 {
	total := v.TextLen
	if total < 1 {
		total = 1
	}
	return float64(v.LinkTextLen) / float64(total)
}

// Score computes the content-likelihood score for an element view.
// The second return is false when the element is disqualified and no
// score was computed: candidates named like chrome (sidebar, widget)
// and candidates with fewer than two descendant paragraphs are skipped.
func Score(v ElementView) (float64, bool) {
	if !candidateTags[v.Tag] {
		return 0, false
	}
	for _, hint := range skipClassHints {
		if strings.Contains(v.ClassID, hint) {
			return 0, false
		}
	}
	if v.Paragraphs < minParagraphs {
		return 0, false
	}

	var score float64
	for _, hint := range contentClassHints {
		if strings.Contains(v.ClassID, hint) {
			score += classBonus
			break
		}
	}

	lengthBonus := float64(v.TextLen) / textLengthDivisor
	if lengthBonus > textLengthBonusCap {
		lengthBonus = textLengthBonusCap
	}
	score += lengthBonus

	score += float64(v.Paragraphs) * paragraphWeight

	if v.LinkDensity() > linkDensityThreshold {
		score += linkDensityPenalty
	}

	return score, true
}
