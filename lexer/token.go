package lexer

// Kind classifies a source line.
type Kind uint8

const (
	Paragraph Kind = iota
	Heading
	CodeBlock
	BlockQuote
	List
	HorizontalRule
	Table
	Footnote
	LineBreak
	EndOfInput
)

var kindNames = [...]string{
	Paragraph:      "PARAGRAPH",
	Heading:        "HEADING",
	CodeBlock:      "CODE_BLOCK",
	BlockQuote:     "BLOCK_QUOTE",
	List:           "LIST",
	HorizontalRule: "HORIZONTAL_RULE",
	Table:          "TABLE",
	Footnote:       "FOOTNOTE",
	LineBreak:      "LINE_BREAK",
	EndOfInput:     "END_OF_INPUT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Token is one classified source line.
type Token struct {
	Kind Kind
	// Text is the source line without its line terminator, exactly as
	// written. It is empty only for EndOfInput.
	Text string
	// Level is the number of '#' of a Heading.
	Level int
	// Ordered distinguishes "1." list markers from "-" markers.
	Ordered bool
	// Line is the 1-based source line number; 0 for EndOfInput.
	Line int
}
