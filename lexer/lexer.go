// Package lexer turns Markdown source into a sequence of line tokens.
//
// Every physical line yields exactly one token, classified by its leading
// marker. The lexer never looks ahead and does not check that a construct is
// well formed; assembling lines into blocks is left to the parser. The only
// state carried from line to line is whether a code fence is open: non-blank
// lines between an opening and a closing fence are emitted as Paragraph
// tokens so that they are never mistaken for markup. Blank lines stay
// LineBreak tokens everywhere.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const fenceMarker = "```"

// Tokenize splits source into lines ("\n" or "\r\n") and classifies each one.
// The result always ends with a single EndOfInput token.
func Tokenize(source string) []Token {
	lines := splitLines(source)
	tokens := make([]Token, 0, len(lines)+1)
	inFence := false
	for i, line := range lines {
		tok := classify(line)
		if inFence {
			if tok.Kind == CodeBlock {
				inFence = false
			} else if tok.Kind != LineBreak {
				tok = Token{Kind: Paragraph, Text: line}
			}
		} else if tok.Kind == CodeBlock {
			inFence = true
		}
		tok.Line = i + 1
		tokens = append(tokens, tok)
	}
	return append(tokens, Token{Kind: EndOfInput})
}

func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func classify(line string) Token {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	switch {
	case trimmed == "":
		return Token{Kind: LineBreak, Text: line}
	case headingLevel(trimmed) > 0:
		return Token{Kind: Heading, Text: line, Level: headingLevel(trimmed)}
	case strings.HasPrefix(trimmed, fenceMarker):
		return Token{Kind: CodeBlock, Text: line}
	case strings.HasPrefix(trimmed, ">"):
		return Token{Kind: BlockQuote, Text: line}
	}
	if ordered, ok := listMarker(trimmed); ok {
		return Token{Kind: List, Text: line, Ordered: ordered}
	}
	switch {
	case isHorizontalRule(trimmed):
		return Token{Kind: HorizontalRule, Text: line}
	case isTableRow(trimmed):
		return Token{Kind: Table, Text: line}
	case isFootnoteDefinition(trimmed):
		return Token{Kind: Footnote, Text: line}
	default:
		return Token{Kind: Paragraph, Text: line}
	}
}

// headingLevel returns the number of leading '#' (1-6) when they are followed
// by whitespace, otherwise 0.
func headingLevel(trimmed string) int {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || !spaceAt(trimmed, level) {
		return 0
	}
	return level
}

// listMarker recognizes "- " and "<digits>. " prefixes.
func listMarker(trimmed string) (ordered bool, ok bool) {
	if strings.HasPrefix(trimmed, "-") {
		return false, spaceAt(trimmed, 1)
	}
	digits := countDigits(trimmed)
	if digits == 0 || digits >= len(trimmed) || trimmed[digits] != '.' {
		return false, false
	}
	return true, spaceAt(trimmed, digits+1)
}

func isHorizontalRule(trimmed string) bool {
	dashes := 0
	for dashes < len(trimmed) && trimmed[dashes] == '-' {
		dashes++
	}
	return dashes >= 3 && strings.TrimSpace(trimmed[dashes:]) == ""
}

func isTableRow(trimmed string) bool {
	row := strings.TrimRightFunc(trimmed, unicode.IsSpace)
	return len(row) >= 3 && row[0] == '|' && row[len(row)-1] == '|'
}

func isFootnoteDefinition(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "[^") {
		return false
	}
	end := strings.IndexByte(trimmed, ']')
	return end > 2 && end+1 < len(trimmed) && trimmed[end+1] == ':'
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func spaceAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}
