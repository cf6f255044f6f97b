package readable

import "strings"

// BlockType identifies the kind of a content block.
type BlockType string

// Block kinds produced by FormatBlocks.
const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockCode      BlockType = "code"
)

// Block is one typed unit of formatted article content. Level is set
// for headings (1-3), Items for lists, Text for everything else.
type Block struct {
	Type  BlockType `json:"type"`
	Level int       `json:"level,omitempty"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
}

// MaxHeadingLevel caps heading depth in formatted output.
const MaxHeadingLevel = 3

// formatterState tracks the block formatter's open construct.
type formatterState int

const (
	stateDefault formatterState = iota
	stateInList
	stateInCode
)

// FormatBlocks parses normalized article text into an ordered sequence
// of typed blocks. The scan is a single forward pass over lines: fenced
// code segments are accumulated verbatim until the closing fence,
// bullet runs are collected until a non-bullet line, and every other
// non-empty line becomes a heading or a paragraph. The output is a
// deterministic function of the input.
func FormatBlocks(text string) []Block {
	if text == "" {
		return nil
	}

	var blocks []Block
	state := stateDefault
	var items []string
	var code strings.Builder

	flushList := func() {
		if state == stateInList {
			blocks = append(blocks, Block{Type: BlockList, Items: items})
			items = nil
			state = stateDefault
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		// Fence markers toggle the code segment.
		if strings.HasPrefix(trimmed, "```") {
			if state == stateInCode {
				blocks = append(blocks, Block{Type: BlockCode, Text: strings.TrimSpace(code.String())})
				code.Reset()
				state = stateDefault
			} else {
				flushList()
				state = stateInCode
			}
			continue
		}

		if state == stateInCode {
			// Inside a fence lines are not interpreted.
			code.WriteString(line)
			code.WriteString("\n")
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "#"):
			flushList()
			level := headingLevel(trimmed)
			blocks = append(blocks, Block{
				Type:  BlockHeading,
				Level: level,
				Text:  strings.TrimSpace(strings.TrimLeft(trimmed, "#")),
			})

		case strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- "):
			if state != stateInList {
				state = stateInList
			}
			items = append(items, strings.TrimSpace(trimmed[2:]))

		case trimmed != "":
			flushList()
			blocks = append(blocks, Block{Type: BlockParagraph, Text: trimmed})

		default:
			// A blank line always terminates a bullet run.
			flushList()
		}
	}

	// End of input closes whatever is still open.
	flushList()
	if state == stateInCode {
		blocks = append(blocks, Block{Type: BlockCode, Text: strings.TrimSpace(code.String())})
	}

	return blocks
}

// headingLevel counts leading heading markers, capped at MaxHeadingLevel.
func headingLevel(line string) int {
	level := 0
	for _, r := range line {
		if r != '#' {
			break
		}
		level++
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return level
}
