package readable_test

import (
	"testing"

	"github.com/prince50856457/readable"
	"github.com/stretchr/testify/assert"
)

func TestFormatBlocks(t *testing.T) {
	t.Parallel()

	t.Run("emits heading with level and stripped markers", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("## Getting Started")

		assert.Len(t, blocks, 1)
		assert.Equal(t, readable.BlockHeading, blocks[0].Type)
		assert.Equal(t, 2, blocks[0].Level)
		assert.Equal(t, "Getting Started", blocks[0].Text)
	})

	t.Run("caps heading level at three", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("##### Deep Heading")

		assert.Len(t, blocks, 1)
		assert.Equal(t, 3, blocks[0].Level)
	})

	t.Run("emits non-empty lines as paragraphs", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("First paragraph.\n\nSecond paragraph.")

		assert.Len(t, blocks, 2)
		assert.Equal(t, readable.BlockParagraph, blocks[0].Type)
		assert.Equal(t, "First paragraph.", blocks[0].Text)
		assert.Equal(t, "Second paragraph.", blocks[1].Text)
	})

	t.Run("collects consecutive bullets into one list", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("* one\n* two\n- three")

		assert.Len(t, blocks, 1)
		assert.Equal(t, readable.BlockList, blocks[0].Type)
		assert.Equal(t, []string{"one", "two", "three"}, blocks[0].Items)
	})

	t.Run("blank line terminates a bullet run", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("* one\n\n* two")

		assert.Len(t, blocks, 2)
		assert.Equal(t, []string{"one"}, blocks[0].Items)
		assert.Equal(t, []string{"two"}, blocks[1].Items)
	})

	t.Run("paragraph terminates a bullet run", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("* one\nplain text")

		assert.Len(t, blocks, 2)
		assert.Equal(t, readable.BlockList, blocks[0].Type)
		assert.Equal(t, readable.BlockParagraph, blocks[1].Type)
	})

	t.Run("end of input flushes an open list", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("* one\n* two")

		assert.Len(t, blocks, 1)
		assert.Equal(t, []string{"one", "two"}, blocks[0].Items)
	})

	t.Run("code fence accumulates lines verbatim", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("```\nfunc main() {}\n# not a heading\n```")

		assert.Len(t, blocks, 1)
		assert.Equal(t, readable.BlockCode, blocks[0].Type)
		assert.Equal(t, "func main() {}\n# not a heading", blocks[0].Text)
	})

	t.Run("opening fence flushes an open list first", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("* one\n```\ncode()\n```")

		assert.Len(t, blocks, 2)
		assert.Equal(t, readable.BlockList, blocks[0].Type)
		assert.Equal(t, readable.BlockCode, blocks[1].Type)
	})

	t.Run("unterminated fence still emits accumulated code", func(t *testing.T) {
		t.Parallel()

		blocks := readable.FormatBlocks("```\ncode()")

		assert.Len(t, blocks, 1)
		assert.Equal(t, readable.BlockCode, blocks[0].Type)
		assert.Equal(t, "code()", blocks[0].Text)
	})

	t.Run("formats a full document in order", func(t *testing.T) {
		t.Parallel()

		text := "# Title\n\nSome text\n\n* a\n* b\n\n```\ncode()\n```\n"

		blocks := readable.FormatBlocks(text)

		assert.Equal(t, []readable.Block{
			{Type: readable.BlockHeading, Level: 1, Text: "Title"},
			{Type: readable.BlockParagraph, Text: "Some text"},
			{Type: readable.BlockList, Items: []string{"a", "b"}},
			{Type: readable.BlockCode, Text: "code()"},
		}, blocks)
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		t.Parallel()

		text := "# T\n\npara\n\n* x\n\n```\ny\n```"

		assert.Equal(t, readable.FormatBlocks(text), readable.FormatBlocks(text))
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, readable.FormatBlocks(""))
	})
}
