package heuristic_test

import (
	"testing"

	"github.com/prince50856457/readable/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Parallel()

	t.Run("scores a content-like div", func(t *testing.T) {
		t.Parallel()

		view := heuristic.ElementView{
			Tag:        "div",
			ClassID:    "article-body",
			TextLen:    800,
			Paragraphs: 3,
		}

		score, ok := heuristic.Score(view)

		require.True(t, ok)
		// 25 class + 8 length + 15 paragraphs
		assert.InDelta(t, 48.0, score, 0.001)
	})

	t.Run("skips non-candidate tags", func(t *testing.T) {
		t.Parallel()

		_, ok := heuristic.Score(heuristic.ElementView{Tag: "ul", TextLen: 1000, Paragraphs: 5})

		assert.False(t, ok)
	})

	t.Run("disqualifies sidebar and widget class hints", func(t *testing.T) {
		t.Parallel()

		for _, classID := range []string{"left-sidebar", "promo widget"} {
			_, ok := heuristic.Score(heuristic.ElementView{
				Tag:        "div",
				ClassID:    classID,
				TextLen:    1000,
				Paragraphs: 5,
			})
			assert.False(t, ok, classID)
		}
	})

	t.Run("disqualifies elements with fewer than two paragraphs", func(t *testing.T) {
		t.Parallel()

		_, ok := heuristic.Score(heuristic.ElementView{Tag: "div", TextLen: 1000, Paragraphs: 1})

		assert.False(t, ok)
	})

	t.Run("caps the text length bonus", func(t *testing.T) {
		t.Parallel()

		short, ok := heuristic.Score(heuristic.ElementView{Tag: "div", TextLen: 5000, Paragraphs: 2})
		require.True(t, ok)
		long, ok := heuristic.Score(heuristic.ElementView{Tag: "div", TextLen: 500000, Paragraphs: 2})
		require.True(t, ok)

		assert.Equal(t, short, long)
	})

	t.Run("penalizes majority-hyperlink elements by exactly 1000", func(t *testing.T) {
		t.Parallel()

		below := heuristic.ElementView{Tag: "div", TextLen: 1000, LinkTextLen: 500, Paragraphs: 3}
		above := heuristic.ElementView{Tag: "div", TextLen: 1000, LinkTextLen: 501, Paragraphs: 3}

		belowScore, ok := heuristic.Score(below)
		require.True(t, ok)
		aboveScore, ok := heuristic.Score(above)
		require.True(t, ok)

		assert.Positive(t, belowScore)
		assert.InDelta(t, 1000.0, belowScore-aboveScore, 0.001)
		assert.Negative(t, aboveScore)
	})

	t.Run("guards link density against empty text", func(t *testing.T) {
		t.Parallel()

		view := heuristic.ElementView{Tag: "div", TextLen: 0, LinkTextLen: 0, Paragraphs: 2}

		assert.Zero(t, view.LinkDensity())
	})
}
