package parser

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/mdast/ast"
	"github.com/kk-code-lab/mdast/inline"
	"github.com/kk-code-lab/mdast/lexer"
)

// Parse parses source into a Program. Footnote definitions found anywhere in
// the document, nested ones included, are indexed in Program.Footnotes.
func Parse(source string, opts ...Option) *ast.Program {
	cfg := newConfig(opts)
	source = cfg.prepare(source)
	footnotes := make(map[string][]ast.Node)
	return &ast.Program{
		Children:  parseDocument(source, cfg, 0, footnotes),
		Footnotes: footnotes,
		Raw:       source,
	}
}

// parseDocument parses source at the given nesting depth. Footnote
// definitions are registered in footnotes.
func parseDocument(source string, cfg *config, depth int, footnotes map[string][]ast.Node) []ast.Node {
	if depth >= cfg.maxDepth {
		tracer().Debugf("nesting limit %d reached, keeping %d bytes as paragraph", cfg.maxDepth, len(source))
		return flatten(source)
	}
	p := &parser{
		cfg:       cfg,
		tokens:    lexer.Tokenize(source),
		depth:     depth,
		children:  []ast.Node{},
		footnotes: footnotes,
	}
	p.run()
	return p.children
}

func flatten(source string) []ast.Node {
	text := strings.TrimSpace(source)
	if text == "" {
		return []ast.Node{}
	}
	return []ast.Node{ast.Paragraph{Children: inline.Tokenize(text), Raw: source}}
}

type parser struct {
	cfg       *config
	tokens    []lexer.Token
	pos       int
	depth     int
	children  []ast.Node
	footnotes map[string][]ast.Node
}

func (p *parser) run() {
	for p.peek().Kind != lexer.EndOfInput {
		switch tok := p.peek(); tok.Kind {
		case lexer.Paragraph:
			p.paragraph()
		case lexer.Heading:
			p.heading()
		case lexer.CodeBlock:
			p.codeBlock()
		case lexer.BlockQuote:
			p.blockQuote()
		case lexer.List:
			p.list()
		case lexer.HorizontalRule:
			p.horizontalRule()
		case lexer.Table:
			p.table()
		case lexer.Footnote:
			p.footnote()
		case lexer.LineBreak:
			p.pos++
		default:
			panic(fmt.Sprintf("parser: unexpected %s token on line %d", tok.Kind, tok.Line))
		}
	}
}

// peek returns the current token. The token stream always ends with
// EndOfInput and no handler moves past it.
func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *parser) emit(node ast.Node) {
	p.children = append(p.children, node)
}

// rawSince joins the source lines of the tokens consumed since start.
func (p *parser) rawSince(start int) string {
	return p.rawRange(start, p.pos)
}

func (p *parser) rawRange(start, end int) string {
	lines := make([]string, 0, end-start)
	for _, tok := range p.tokens[start:end] {
		lines = append(lines, tok.Text)
	}
	return strings.Join(lines, "\n")
}

// sub parses a nested region one level deeper than p.
func (p *parser) sub(source string) []ast.Node {
	return parseDocument(source, p.cfg, p.depth+1, p.footnotes)
}

// blankRunContinues reports whether the blank lines at the current position
// are followed by a token accepted by cont, and how many blank lines there
// are.
func (p *parser) blankRunContinues(cont func(lexer.Token) bool) (int, bool) {
	i := p.pos
	for p.tokens[i].Kind == lexer.LineBreak {
		i++
	}
	next := p.tokens[i]
	return i - p.pos, next.Kind != lexer.EndOfInput && cont(next)
}

// indentOf counts the leading spaces of line.
func indentOf(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// dropIndent removes up to n leading spaces.
func dropIndent(line string, n int) string {
	if i := indentOf(line); i < n {
		n = i
	}
	return line[n:]
}
