package parser

import (
	"strings"
	"unicode"

	"github.com/kk-code-lab/mdast/ast"
	"github.com/kk-code-lab/mdast/inline"
	"github.com/kk-code-lab/mdast/lexer"
)

const fenceMarker = "```"

func (p *parser) paragraph() {
	start := p.pos
	var lines []string
	for p.peek().Kind == lexer.Paragraph {
		lines = append(lines, strings.TrimSpace(p.next().Text))
	}
	p.emit(ast.Paragraph{
		Children: inline.Tokenize(strings.TrimSpace(strings.Join(lines, "\n"))),
		Raw:      p.rawSince(start),
	})
}

func (p *parser) heading() {
	tok := p.next()
	text := strings.TrimLeftFunc(tok.Text, unicode.IsSpace)
	text = strings.TrimSpace(strings.TrimLeft(text, "#"))
	p.emit(ast.Heading{
		Level:    tok.Level,
		Children: inline.Tokenize(text),
		Raw:      tok.Text,
	})
}

// codeBlock consumes an opening fence and every line up to and including the
// next fence. A fence that is never closed runs to the end of input.
func (p *parser) codeBlock() {
	start := p.pos
	open := p.next()
	language, meta := fenceInfo(open.Text)

	var lines []string
	closed := false
	for p.peek().Kind != lexer.EndOfInput {
		tok := p.next()
		if tok.Kind == lexer.CodeBlock {
			closed = true
			break
		}
		lines = append(lines, tok.Text)
	}
	if !closed {
		tracer().Debugf("line %d: code fence is not closed", open.Line)
	}
	p.emit(ast.CodeBlock{
		Language: language,
		Meta:     meta,
		Value:    strings.Join(lines, "\n"),
		Raw:      p.rawSince(start),
	})
}

// fenceInfo splits the text after an opening fence into the language (first
// word) and meta (the rest).
func fenceInfo(line string) (language, meta string) {
	info := strings.TrimLeftFunc(line, unicode.IsSpace)
	info = strings.TrimPrefix(info, fenceMarker)
	info = strings.TrimSpace(strings.TrimLeft(info, "`"))
	if info == "" {
		return "", ""
	}
	end := strings.IndexFunc(info, unicode.IsSpace)
	if end < 0 {
		return info, ""
	}
	return info[:end], strings.TrimSpace(info[end:])
}

func (p *parser) blockQuote() {
	start := p.pos
	var lines []string
	for p.peek().Kind == lexer.BlockQuote {
		lines = append(lines, stripQuoteMarker(p.next().Text))
	}
	callout, ok := calloutKind(lines[0])
	if ok {
		lines = lines[1:]
	}
	p.emit(ast.BlockQuote{
		Children: p.sub(strings.Join(lines, "\n")),
		Callout:  callout,
		Raw:      p.rawSince(start),
	})
}

// stripQuoteMarker removes the '>' marker and at most one space after it.
func stripQuoteMarker(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	line = strings.TrimPrefix(line, ">")
	return strings.TrimPrefix(line, " ")
}

// calloutKind recognizes a line consisting of "[!KIND]" only.
func calloutKind(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[!") || !strings.HasSuffix(line, "]") {
		return "", false
	}
	kind := line[2 : len(line)-1]
	if kind == "" || strings.ContainsRune(kind, ']') {
		return "", false
	}
	return kind, true
}

func (p *parser) horizontalRule() {
	p.emit(ast.HorizontalRule{Value: p.next().Text})
}
