package parser

import (
	"strings"
	"unicode"

	"github.com/kk-code-lab/mdast/ast"
	"github.com/kk-code-lab/mdast/lexer"
)

// footnote consumes a "[^name]: text" definition and its indented
// continuation lines. The body is registered under name and also emitted in
// place; a later definition of the same name replaces the indexed body.
func (p *parser) footnote() {
	start := p.pos
	def := p.next()
	name, text := footnoteMarker(def.Text)
	contIndent := indentOf(def.Text) + 2
	isContinuation := func(tok lexer.Token) bool {
		return indentOf(tok.Text) >= contIndent
	}

	lines := []string{text}
loop:
	for {
		tok := p.peek()
		switch {
		case tok.Kind == lexer.LineBreak:
			blanks, ok := p.blankRunContinues(isContinuation)
			if !ok {
				break loop
			}
			for _, blank := range p.tokens[p.pos : p.pos+blanks] {
				lines = append(lines, dropIndent(blank.Text, contIndent))
			}
			p.pos += blanks
		case tok.Kind == lexer.EndOfInput:
			break loop
		case isContinuation(tok):
			lines = append(lines, dropIndent(p.next().Text, contIndent))
		default:
			break loop
		}
	}

	children := p.sub(strings.Join(lines, "\n"))
	if _, dup := p.footnotes[name]; dup {
		tracer().Debugf("line %d: footnote %q defined again, replacing earlier definition", def.Line, name)
	}
	p.footnotes[name] = children
	p.emit(ast.Footnote{
		Name:     name,
		Children: children,
		Raw:      p.rawSince(start),
	})
}

// footnoteMarker splits "[^name]: text" into name and text.
func footnoteMarker(line string) (name, text string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	end := strings.IndexByte(line, ']')
	return line[2:end], strings.TrimLeftFunc(line[end+2:], unicode.IsSpace)
}
