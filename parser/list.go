package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kk-code-lab/mdast/ast"
	"github.com/kk-code-lab/mdast/lexer"
)

// list consumes a run of list items of the same kind.
//
// Lines indented at least two spaces past the first marker continue the
// current item, nested lists included; they are parsed together with the
// item's first line as a document of their own. A marker of the same kind at
// the first marker's level starts the next item. Anything else ends the
// list. Blank lines are kept only when the list goes on after them.
func (p *parser) list() {
	start := p.pos
	first := p.peek()
	ordered := first.Ordered
	contIndent := indentOf(first.Text) + 2

	isContinuation := func(tok lexer.Token) bool {
		return indentOf(tok.Text) >= contIndent
	}
	isSibling := func(tok lexer.Token) bool {
		return tok.Kind == lexer.List && tok.Ordered == ordered && indentOf(tok.Text) < contIndent
	}

	items := []ast.ListItem{}
	var lines []string
	itemStart := p.pos
	flush := func(end int) {
		if lines == nil {
			return
		}
		checked, text := checkbox(lines[0])
		lines[0] = text
		items = append(items, ast.ListItem{
			Children: p.sub(strings.Join(lines, "\n")),
			Checked:  checked,
			Raw:      p.rawRange(itemStart, end),
		})
		lines = nil
	}

loop:
	for {
		tok := p.peek()
		switch {
		case tok.Kind == lexer.LineBreak:
			blanks, ok := p.blankRunContinues(func(next lexer.Token) bool {
				return isContinuation(next) || isSibling(next)
			})
			if !ok {
				break loop
			}
			if isContinuation(p.tokens[p.pos+blanks]) {
				for _, blank := range p.tokens[p.pos : p.pos+blanks] {
					lines = append(lines, dropIndent(blank.Text, contIndent))
				}
			}
			p.pos += blanks
		case tok.Kind == lexer.EndOfInput:
			break loop
		case isContinuation(tok):
			lines = append(lines, dropIndent(p.next().Text, contIndent))
		case isSibling(tok):
			flush(p.lastContent(itemStart))
			itemStart = p.pos
			lines = []string{stripListMarker(p.next().Text)}
		default:
			break loop
		}
	}
	flush(p.lastContent(itemStart))

	raw := p.rawSince(start)
	if ordered {
		p.emit(ast.OrderedList{Children: items, Start: listStart(first.Text), Raw: raw})
		return
	}
	p.emit(ast.UnorderedList{Children: items, Raw: raw})
}

// lastContent returns the position after the last non-blank token consumed
// since start.
func (p *parser) lastContent(start int) int {
	end := p.pos
	for end > start && p.tokens[end-1].Kind == lexer.LineBreak {
		end--
	}
	return end
}

// stripListMarker removes the "-" or "<digits>." marker and one whitespace
// character after it.
func stripListMarker(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.HasPrefix(line, "-") {
		line = line[1:]
	} else {
		line = strings.TrimLeft(line, "0123456789")
		line = strings.TrimPrefix(line, ".")
	}
	if r, size := utf8.DecodeRuneInString(line); size > 0 && unicode.IsSpace(r) {
		line = line[size:]
	}
	return line
}

// checkbox splits a leading "[c] " marker off an item's first line.
func checkbox(line string) (checked, rest string) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, "[") {
		return "", line
	}
	mark, size := utf8.DecodeRuneInString(trimmed[1:])
	after := trimmed[1+size:]
	if size == 0 || !strings.HasPrefix(after, "]") {
		return "", line
	}
	after = after[1:]
	space, n := utf8.DecodeRuneInString(after)
	if n == 0 || !unicode.IsSpace(space) {
		return "", line
	}
	return string(mark), after[n:]
}

// listStart reads the number of an ordered list's first marker. Numbers that
// do not fit an int yield 0.
func listStart(line string) int {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	digits := len(line) - len(strings.TrimLeft(line, "0123456789"))
	n, err := strconv.Atoi(line[:digits])
	if err != nil {
		return 0
	}
	return n
}
